package lake

import (
	"context"
	"os"
	"testing"
	"time"

	"quotes-lake/core/storage"
	"quotes-lake/core/storage/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/minio"
	"go.uber.org/zap"
)

const (
	minioImage    = "minio/minio:RELEASE.2024-01-16T16-07-38Z"
	minioUsername = "minioadmin"
	minioPassword = "minioadmin"
)

func setupMinIOStore(ctx context.Context, t *testing.T) *Store {
	t.Helper()
	container, err := minio.Run(ctx, minioImage,
		minio.WithUsername(minioUsername),
		minio.WithPassword(minioPassword),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate MinIO container: %v", err)
		}
	})

	endpoint, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := storage.NewClient(storage.Config{
		Endpoint:       endpoint,
		AccessKey:      minioUsername,
		SecretKey:      minioPassword,
		TimeoutSeconds: 10,
	})
	require.NoError(t, err)

	store, err := NewStore(client, layout.Default(), t.TempDir(), zap.NewNop(), true)
	require.NoError(t, err)
	return store
}

func TestStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()
	store := setupMinIOStore(ctx, t)

	require.NoError(t, store.EnsureLayout(ctx))
	report, err := store.Status(ctx)
	require.NoError(t, err)
	assert.True(t, report.OK(), "missing: %v", report.MissingFolders)

	// A second provisioning pass must not fail on existing buckets and folders.
	require.NoError(t, store.EnsureLayout(ctx))

	require.NoError(t, os.WriteFile(store.LocalPath("quotes.jsonl"), []byte(`{"text":"hi"}`+"\n"), 0o644))
	first, err := store.Put(ctx, "bucket-bronze", "space-site-quotes", "quotes.jsonl", "")
	require.NoError(t, err)
	second, err := store.Put(ctx, "bucket-bronze", "space-site-quotes", "quotes.jsonl", "")
	require.NoError(t, err)
	assert.Equal(t, first.FlowKey, second.FlowKey)
	assert.NotEqual(t, first.BackupKey, second.BackupKey)

	entries, err := store.List(ctx, "bucket-bronze", "space-site-quotes/backup-dir/quotes-")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, os.Remove(store.LocalPath("quotes.jsonl")))
	path, err := store.PullFlow(ctx, "bucket-bronze", "space-site-quotes", "quotes.jsonl")
	require.NoError(t, err)
	assert.FileExists(t, path)

	require.NoError(t, store.DeleteFlow(ctx, "bucket-bronze", "space-site-quotes", "quotes.jsonl"))
	assert.ErrorIs(t, store.DeleteFlow(ctx, "bucket-bronze", "space-site-quotes", "quotes.jsonl"), ErrObjectNotFound)

	reset, err := store.Reset(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, layout.DefaultBuckets, reset.Buckets)
	assert.Zero(t, reset.Failures)
}
