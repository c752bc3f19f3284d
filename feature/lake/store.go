package lake

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quotes-lake/core/metrics"
	"quotes-lake/core/storage"
	"quotes-lake/core/storage/layout"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	// ErrUnknownSpace is returned when a bucket/space pair is not part of the layout.
	ErrUnknownSpace = errors.New("unknown bucket or space")
	// ErrObjectNotFound is returned when the targeted object does not exist.
	ErrObjectNotFound = errors.New("object not found")
	// ErrLocalFileNotFound is returned when an upload source is missing from the staging folder.
	ErrLocalFileNotFound = errors.New("local object not found")
)

// Store places pipeline artifacts into the object store following the layout.
type Store struct {
	client   storage.Client
	layout   layout.Layout
	localDir string
	logger   *zap.Logger
	debug    bool
	now      func() time.Time
}

// PutResult holds the keys written by Put. BackupKey is empty when the space has no backup.
type PutResult struct {
	Bucket    string `json:"bucket"`
	FlowKey   string `json:"flow_key"`
	BackupKey string `json:"backup_key,omitempty"`
}

// ObjectEntry is one listed object.
type ObjectEntry struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// NewStore creates a store and makes sure the local staging folder exists.
func NewStore(client storage.Client, l layout.Layout, localDir string, logger *zap.Logger, debug bool) (*Store, error) {
	abs, err := filepath.Abs(localDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve local storage folder %q: %w", localDir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure local storage folder %q: %w", localDir, err)
	}

	return &Store{
		client:   client,
		layout:   l,
		localDir: abs,
		logger:   logger,
		debug:    debug,
		now:      time.Now,
	}, nil
}

// Layout returns the bucket/space layout the store works with.
func (s *Store) Layout() layout.Layout {
	return s.layout
}

// LocalDir returns the absolute path of the local staging folder.
func (s *Store) LocalDir() string {
	return s.localDir
}

// LocalPath returns the staging path of a local object name.
func (s *Store) LocalPath(name string) string {
	return filepath.Join(s.localDir, filepath.FromSlash(name))
}

func (s *Store) space(bucket, space string) (layout.Space, error) {
	sp, ok := s.layout.Space(bucket, space)
	if !ok {
		return layout.Space{}, fmt.Errorf("%w: %s/%s", ErrUnknownSpace, bucket, space)
	}
	return sp, nil
}

// EnsureLayout creates every configured bucket and the flow/backup folders of its spaces.
// Existing buckets and folders are left untouched.
func (s *Store) EnsureLayout(ctx context.Context) error {
	for _, bucket := range s.layout.Buckets {
		exists, err := s.client.BucketExists(ctx, bucket.Name)
		if err != nil {
			return fmt.Errorf("failed to check bucket %s: %w", bucket.Name, err)
		}
		if !exists {
			if err := s.client.MakeBucket(ctx, bucket.Name, minio.MakeBucketOptions{}); err != nil {
				metrics.RecordStorageOperation("make_bucket", err)
				return fmt.Errorf("failed to create bucket %s: %w", bucket.Name, err)
			}
			metrics.RecordStorageOperation("make_bucket", nil)
			s.logger.Info("Created bucket", zap.String("bucket", bucket.Name))
		}

		for _, space := range bucket.Spaces {
			for _, folder := range space.Folders() {
				if _, err := s.EnsureFolder(ctx, bucket.Name, folder); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// EnsureFolder creates a zero-byte "<folder>/" marker when nothing exists under the prefix.
// It reports whether a marker was created.
func (s *Store) EnsureFolder(ctx context.Context, bucket, folder string) (bool, error) {
	prefix := folder
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	found, err := s.hasPrefix(ctx, bucket, prefix)
	if err != nil {
		return false, fmt.Errorf("failed to ensure folder %s in bucket %s: %w", prefix, bucket, err)
	}
	if found {
		return false, nil
	}

	_, err = s.client.PutObject(ctx, bucket, prefix, strings.NewReader(""), 0, minio.PutObjectOptions{})
	metrics.RecordStorageOperation("make_folder", err)
	if err != nil {
		return false, fmt.Errorf("failed to ensure folder %s in bucket %s: %w", prefix, bucket, err)
	}
	s.logger.Info("Created folder", zap.String("bucket", bucket), zap.String("folder", prefix))
	return true, nil
}

func (s *Store) hasPrefix(ctx context.Context, bucket, prefix string) (bool, error) {
	// Cancelling stops the lister goroutine once the first entry is read.
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true, MaxKeys: 1}
	for obj := range s.client.ListObjects(listCtx, bucket, opts) {
		if obj.Err != nil {
			return false, obj.Err
		}
		return true, nil
	}
	return false, nil
}

// Exists reports whether an object key exists. Missing objects or buckets yield false;
// any other error is returned.
func (s *Store) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if storage.IsNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s in bucket %s: %w", key, bucket, err)
}

// Put uploads a staged file into the flow folder of a space, and a timestamped copy
// into its backup folder when the space is backed up. remoteName renames the flow
// object; empty keeps localName.
func (s *Store) Put(ctx context.Context, bucket, space, localName, remoteName string) (*PutResult, error) {
	localPath := s.LocalPath(localName)
	if _, err := os.Stat(localPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if s.debug {
				return nil, fmt.Errorf("%w: %q", ErrLocalFileNotFound, localPath)
			}
			return nil, fmt.Errorf("%w: %q", ErrLocalFileNotFound, localName)
		}
		return nil, fmt.Errorf("failed to stat local object %q: %w", localName, err)
	}

	sp, err := s.space(bucket, space)
	if err != nil {
		return nil, err
	}

	name := remoteName
	if name == "" {
		name = localName
	}
	result := &PutResult{Bucket: bucket, FlowKey: sp.FlowPath() + "/" + name}

	if err := s.upload(ctx, bucket, result.FlowKey, localPath); err != nil {
		return nil, err
	}

	if !sp.Backup {
		return result, nil
	}

	backupKey, err := s.freeBackupKey(ctx, bucket, sp, localName)
	if err != nil {
		return nil, err
	}
	if err := s.upload(ctx, bucket, backupKey, localPath); err != nil {
		return nil, err
	}
	result.BackupKey = backupKey

	return result, nil
}

// freeBackupKey returns "<space>/<backup>/<stem>-<timestamp><ext>", appending "_" to the
// name until no object holds the key.
func (s *Store) freeBackupKey(ctx context.Context, bucket string, sp layout.Space, localName string) (string, error) {
	stem, ext := splitName(localName)
	name := stem + "-" + Timestamp(s.now())

	for {
		key := sp.BackupPath() + "/" + name + ext
		exists, err := s.Exists(ctx, bucket, key)
		if err != nil {
			return "", err
		}
		if !exists {
			return key, nil
		}
		name += "_"
	}
}

func (s *Store) upload(ctx context.Context, bucket, key, localPath string) error {
	_, err := s.client.FPutObject(ctx, bucket, key, localPath, minio.PutObjectOptions{})
	metrics.RecordStorageOperation("put", err)
	if err != nil {
		return fmt.Errorf("failed to upload %s into bucket %s: %w", key, bucket, err)
	}
	s.logger.Info("Uploaded object", zap.String("bucket", bucket), zap.String("key", key))
	return nil
}

// List returns every object under prefix, recursively.
func (s *Store) List(ctx context.Context, bucket, prefix string) ([]ObjectEntry, error) {
	entries := []ObjectEntry{}
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			metrics.RecordStorageOperation("list", obj.Err)
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, obj.Err)
		}
		entries = append(entries, ObjectEntry{Name: obj.Key, Size: obj.Size, Modified: obj.LastModified})
	}
	metrics.RecordStorageOperation("list", nil)
	return entries, nil
}

// PullFlow downloads a flow object of a space into the staging folder and returns the local path.
func (s *Store) PullFlow(ctx context.Context, bucket, space, name string) (string, error) {
	sp, err := s.space(bucket, space)
	if err != nil {
		return "", err
	}
	return s.pull(ctx, bucket, sp.FlowPath()+"/"+name, name)
}

// PullBackup downloads a backup object of a space into the staging folder and returns the local path.
func (s *Store) PullBackup(ctx context.Context, bucket, space, name string) (string, error) {
	sp, err := s.space(bucket, space)
	if err != nil {
		return "", err
	}
	return s.pull(ctx, bucket, sp.BackupPath()+"/"+name, name)
}

func (s *Store) pull(ctx context.Context, bucket, key, name string) (string, error) {
	localPath := s.LocalPath(name)
	err := s.client.FGetObject(ctx, bucket, key, localPath, minio.GetObjectOptions{})
	metrics.RecordStorageOperation("get", err)
	if err != nil {
		if storage.IsNotFound(err) {
			return "", fmt.Errorf("%w: %s/%s", ErrObjectNotFound, bucket, key)
		}
		return "", fmt.Errorf("failed to download %s from bucket %s: %w", key, bucket, err)
	}
	s.logger.Info("Downloaded object", zap.String("bucket", bucket), zap.String("key", key))
	return localPath, nil
}

// DeleteFlow removes a flow object of a space.
func (s *Store) DeleteFlow(ctx context.Context, bucket, space, name string) error {
	sp, err := s.space(bucket, space)
	if err != nil {
		return err
	}
	return s.delete(ctx, bucket, sp.FlowPath()+"/"+name)
}

// DeleteBackup removes a backup object of a space.
func (s *Store) DeleteBackup(ctx context.Context, bucket, space, name string) error {
	sp, err := s.space(bucket, space)
	if err != nil {
		return err
	}
	return s.delete(ctx, bucket, sp.BackupPath()+"/"+name)
}

// delete returns ErrObjectNotFound when the key does not exist.
func (s *Store) delete(ctx context.Context, bucket, key string) error {
	exists, err := s.Exists(ctx, bucket, key)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s/%s", ErrObjectNotFound, bucket, key)
	}

	err = s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
	metrics.RecordStorageOperation("delete", err)
	if err != nil {
		return fmt.Errorf("failed to delete %s from bucket %s: %w", key, bucket, err)
	}
	s.logger.Info("Deleted object", zap.String("bucket", bucket), zap.String("key", key))
	return nil
}
