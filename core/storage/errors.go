package storage

import (
	"net/http"

	"github.com/minio/minio-go/v7"
)

// IsNotFound reports whether err is an S3 "missing object or bucket" response.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchObject", "NoSuchBucket", "NotFound":
		return true
	}
	return resp.Code == "" && resp.StatusCode == http.StatusNotFound
}
