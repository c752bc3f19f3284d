package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout() Layout {
	return Layout{Buckets: []Bucket{
		{Name: "bucket-bronze", Spaces: []Space{
			{Name: "space-a", FlowDir: "flow", BackupDir: "bck", Backup: true},
			{Name: "space-b", FlowDir: "in", BackupDir: "old", Backup: false},
		}},
		{Name: "bucket-gold", Spaces: []Space{
			{Name: "space-a", FlowDir: "gold-flow", BackupDir: "gold-bck", Backup: true},
		}},
	}}
}

func TestDefault(t *testing.T) {
	l := Default()

	assert.Equal(t, []string{"bucket-bronze", "bucket-silver", "bucket-gold"}, l.BucketNames())
	for _, b := range l.BucketNames() {
		assert.Equal(t, DefaultSpaces, l.SpaceNames(b))
	}
	assert.Len(t, l.BackedUpSpaces(), 12)
	assert.Empty(t, l.NotBackedUpSpaces())
	require.NoError(t, l.Validate())

	dir, ok := l.FlowDir("bucket-gold", "space-site-books")
	assert.True(t, ok)
	assert.Equal(t, "flow-dir", dir)
}

func TestLayout_Lookups(t *testing.T) {
	l := testLayout()

	t.Run("Bucket", func(t *testing.T) {
		b, ok := l.Bucket("bucket-gold")
		assert.True(t, ok)
		assert.Equal(t, "bucket-gold", b.Name)

		_, ok = l.Bucket("bucket-missing")
		assert.False(t, ok)
	})

	t.Run("Space", func(t *testing.T) {
		s, ok := l.Space("bucket-gold", "space-a")
		assert.True(t, ok)
		assert.Equal(t, "gold-flow", s.FlowDir)

		_, ok = l.Space("bucket-gold", "space-b")
		assert.False(t, ok)
		_, ok = l.Space("bucket-missing", "space-a")
		assert.False(t, ok)
	})

	t.Run("SpaceNames", func(t *testing.T) {
		assert.Equal(t, []string{"space-a", "space-b"}, l.SpaceNames("bucket-bronze"))
		assert.Equal(t, []string{}, l.SpaceNames("bucket-missing"))
	})

	t.Run("HasSpace", func(t *testing.T) {
		assert.True(t, l.HasSpace("bucket-bronze", "space-b"))
		assert.False(t, l.HasSpace("bucket-gold", "space-b"))
	})

	t.Run("Backup", func(t *testing.T) {
		assert.True(t, l.Backup("bucket-bronze", "space-a"))
		assert.False(t, l.Backup("bucket-bronze", "space-b"))
		assert.False(t, l.Backup("bucket-missing", "space-a"))
	})

	t.Run("Dirs", func(t *testing.T) {
		dir, ok := l.BackupDir("bucket-bronze", "space-b")
		assert.True(t, ok)
		assert.Equal(t, "old", dir)

		dir, ok = l.FlowDir("bucket-bronze", "space-missing")
		assert.False(t, ok)
		assert.Empty(t, dir)
	})

	t.Run("BackupPartition", func(t *testing.T) {
		assert.Equal(t, []SpaceRef{
			{Bucket: "bucket-bronze", Space: "space-a"},
			{Bucket: "bucket-gold", Space: "space-a"},
		}, l.BackedUpSpaces())
		assert.Equal(t, []SpaceRef{{Bucket: "bucket-bronze", Space: "space-b"}}, l.NotBackedUpSpaces())
	})
}

func TestSpace_Paths(t *testing.T) {
	s := Space{Name: "space-a", FlowDir: "flow", BackupDir: "bck", Backup: true}
	assert.Equal(t, "space-a/flow", s.FlowPath())
	assert.Equal(t, "space-a/bck", s.BackupPath())
	assert.Equal(t, []string{"space-a/flow", "space-a/bck"}, s.Folders())

	s.Backup = false
	assert.Equal(t, []string{"space-a/flow"}, s.Folders())
}

func TestLayout_WriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testLayout().WriteSummary(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Bucket: bucket-bronze\n"))
	assert.Contains(t, out, "  Space: space-a, Flow dir: flow, Backup dir: bck, Backup: yes\n")
	assert.Contains(t, out, "  Space: space-b, Flow dir: in, Backup dir: old, Backup: no\n")
	assert.Contains(t, out, "Bucket: bucket-gold\n")
}
