package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
buckets:
  - name: bucket-raw
    spaces:
      - name: space-site-quotes
        flow_dir: incoming
        backup_dir: history
        backup: true
      - name: space-scratch
        flow_dir: tmp
`

func TestLoad(t *testing.T) {
	t.Run("EmptyPathUsesDefault", func(t *testing.T) {
		l, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), l)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "layout.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

		l, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"bucket-raw"}, l.BucketNames())
		assert.True(t, l.Backup("bucket-raw", "space-site-quotes"))
		assert.False(t, l.Backup("bucket-raw", "space-scratch"))

		dir, _ := l.BackupDir("bucket-raw", "space-site-quotes")
		assert.Equal(t, "history", dir)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Malformed", "buckets: [\n"},
		{"NoBuckets", "buckets: []\n"},
		{"BadBucketName", "buckets:\n  - name: Bucket_Upper\n"},
		{"DuplicateBucket", "buckets:\n  - name: bucket-a\n  - name: bucket-a\n"},
		{"DuplicateSpace", "buckets:\n  - name: bucket-a\n    spaces:\n      - {name: s, flow_dir: f}\n      - {name: s, flow_dir: g}\n"},
		{"MissingFlowDir", "buckets:\n  - name: bucket-a\n    spaces:\n      - {name: s}\n"},
		{"BackupWithoutDir", "buckets:\n  - name: bucket-a\n    spaces:\n      - {name: s, flow_dir: f, backup: true}\n"},
		{"SlashInSpace", "buckets:\n  - name: bucket-a\n    spaces:\n      - {name: a/b, flow_dir: f}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
