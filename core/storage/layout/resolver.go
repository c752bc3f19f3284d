package layout

import (
	"fmt"
	"io"
)

// Bucket returns the bucket with the given name.
func (l Layout) Bucket(name string) (Bucket, bool) {
	for _, b := range l.Buckets {
		if b.Name == name {
			return b, true
		}
	}
	return Bucket{}, false
}

// Space returns the space configuration for the given bucket and space name.
func (l Layout) Space(bucket, space string) (Space, bool) {
	b, ok := l.Bucket(bucket)
	if !ok {
		return Space{}, false
	}
	for _, s := range b.Spaces {
		if s.Name == space {
			return s, true
		}
	}
	return Space{}, false
}

// BucketNames returns all bucket names in declaration order.
func (l Layout) BucketNames() []string {
	names := make([]string, 0, len(l.Buckets))
	for _, b := range l.Buckets {
		names = append(names, b.Name)
	}
	return names
}

// SpaceNames returns the space names of a bucket, or an empty slice for an unknown bucket.
func (l Layout) SpaceNames(bucket string) []string {
	b, ok := l.Bucket(bucket)
	if !ok {
		return []string{}
	}
	names := make([]string, 0, len(b.Spaces))
	for _, s := range b.Spaces {
		names = append(names, s.Name)
	}
	return names
}

// HasSpace reports whether the bucket contains the given space.
func (l Layout) HasSpace(bucket, space string) bool {
	_, ok := l.Space(bucket, space)
	return ok
}

// BackedUpSpaces lists every space with backups enabled.
func (l Layout) BackedUpSpaces() []SpaceRef {
	return l.spacesWhere(func(s Space) bool { return s.Backup })
}

// NotBackedUpSpaces lists every space with backups disabled.
func (l Layout) NotBackedUpSpaces() []SpaceRef {
	return l.spacesWhere(func(s Space) bool { return !s.Backup })
}

func (l Layout) spacesWhere(keep func(Space) bool) []SpaceRef {
	refs := []SpaceRef{}
	for _, b := range l.Buckets {
		for _, s := range b.Spaces {
			if keep(s) {
				refs = append(refs, SpaceRef{Bucket: b.Name, Space: s.Name})
			}
		}
	}
	return refs
}

// FlowDir returns the flow directory name of a space.
func (l Layout) FlowDir(bucket, space string) (string, bool) {
	s, ok := l.Space(bucket, space)
	return s.FlowDir, ok
}

// Backup reports whether uploads into the space are backed up. Unknown spaces are not.
func (l Layout) Backup(bucket, space string) bool {
	s, ok := l.Space(bucket, space)
	return ok && s.Backup
}

// BackupDir returns the backup directory name of a space.
func (l Layout) BackupDir(bucket, space string) (string, bool) {
	s, ok := l.Space(bucket, space)
	return s.BackupDir, ok
}

// FlowPath returns the "<space>/<flow dir>" prefix of a space.
func (s Space) FlowPath() string {
	return s.Name + "/" + s.FlowDir
}

// BackupPath returns the "<space>/<backup dir>" prefix of a space.
func (s Space) BackupPath() string {
	return s.Name + "/" + s.BackupDir
}

// Folders returns the folder prefixes a space needs in its bucket.
func (s Space) Folders() []string {
	if s.Backup {
		return []string{s.FlowPath(), s.BackupPath()}
	}
	return []string{s.FlowPath()}
}

// WriteSummary prints a human readable overview of buckets and spaces.
func (l Layout) WriteSummary(w io.Writer) error {
	for _, b := range l.Buckets {
		if _, err := fmt.Fprintf(w, "Bucket: %s\n", b.Name); err != nil {
			return err
		}
		for _, s := range b.Spaces {
			backup := "no"
			if s.Backup {
				backup = "yes"
			}
			if _, err := fmt.Fprintf(w, "  Space: %s, Flow dir: %s, Backup dir: %s, Backup: %s\n",
				s.Name, s.FlowDir, s.BackupDir, backup); err != nil {
				return err
			}
		}
	}
	return nil
}
