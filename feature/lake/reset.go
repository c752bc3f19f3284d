package lake

import (
	"context"
	"fmt"

	"quotes-lake/core/metrics"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ResetReport summarises a Reset call.
type ResetReport struct {
	Buckets        []string `json:"buckets"`
	ObjectsRemoved int      `json:"objects_removed"`
	Failures       int      `json:"failures"`
}

// Reset deletes every object of every bucket on the server, then the buckets themselves.
// It is irreversible and not limited to the configured layout.
// Per-object delete failures are logged and counted; a bucket that cannot be
// removed aborts the reset.
func (s *Store) Reset(ctx context.Context) (*ResetReport, error) {
	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		metrics.RecordStorageOperation("reset", err)
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	report := &ResetReport{Buckets: []string{}}
	for _, bucket := range buckets {
		s.logger.Info("Processing bucket", zap.String("bucket", bucket.Name))

		objects, err := s.collectObjects(ctx, bucket.Name)
		if err != nil {
			metrics.RecordStorageOperation("reset", err)
			return report, err
		}

		objectsCh := make(chan minio.ObjectInfo, len(objects))
		for _, obj := range objects {
			objectsCh <- obj
		}
		close(objectsCh)

		failures := 0
		for rErr := range s.client.RemoveObjects(ctx, bucket.Name, objectsCh, minio.RemoveObjectsOptions{}) {
			failures++
			s.logger.Error("Delete error",
				zap.String("bucket", bucket.Name),
				zap.String("key", rErr.ObjectName),
				zap.Error(rErr.Err))
		}
		report.Failures += failures
		report.ObjectsRemoved += len(objects) - failures

		if err := s.client.RemoveBucket(ctx, bucket.Name); err != nil {
			metrics.RecordStorageOperation("reset", err)
			return report, fmt.Errorf("failed to remove bucket %s: %w", bucket.Name, err)
		}
		report.Buckets = append(report.Buckets, bucket.Name)
		s.logger.Info("Bucket removed", zap.String("bucket", bucket.Name))
	}

	metrics.RecordStorageOperation("reset", nil)
	s.logger.Info("Object store reset completed",
		zap.Int("buckets", len(report.Buckets)),
		zap.Int("objects", report.ObjectsRemoved))
	return report, nil
}

func (s *Store) collectObjects(ctx context.Context, bucket string) ([]minio.ObjectInfo, error) {
	var objects []minio.ObjectInfo
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, obj.Err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}
