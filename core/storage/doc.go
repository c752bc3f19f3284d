// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so that higher layers
// (the lake store, integrity checks) can be unit tested with core/storage/mocks.
//
// # Operations
//
//   - Buckets: BucketExists, MakeBucket, ListBuckets, RemoveBucket.
//   - Objects: PutObject/FPutObject, GetObject/FGetObject, StatObject, ListObjects.
//   - Deletion: RemoveObject, RemoveObjects (batched).
//
// IsNotFound normalises the S3 error codes that mean "object or bucket missing".
//
// The bucket/space naming convention lives in the layout subpackage.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "bucket-bronze")
package storage
