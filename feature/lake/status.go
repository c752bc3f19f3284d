package lake

import (
	"context"
	"fmt"
	"strings"
)

// StructureReport lists what the object store lacks compared with the layout.
// Folders are reported as "<bucket>/<space>/<dir>".
type StructureReport struct {
	MissingBuckets []string `json:"missing_buckets"`
	MissingFolders []string `json:"missing_folders"`
}

// OK reports whether nothing is missing.
func (r StructureReport) OK() bool {
	return len(r.MissingBuckets) == 0 && len(r.MissingFolders) == 0
}

// Status compares the object store with the layout without modifying anything.
func (s *Store) Status(ctx context.Context) (*StructureReport, error) {
	report := &StructureReport{MissingBuckets: []string{}, MissingFolders: []string{}}

	for _, bucket := range s.layout.Buckets {
		exists, err := s.client.BucketExists(ctx, bucket.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check bucket %s: %w", bucket.Name, err)
		}

		if !exists {
			report.MissingBuckets = append(report.MissingBuckets, bucket.Name)
			for _, space := range bucket.Spaces {
				for _, folder := range space.Folders() {
					report.MissingFolders = append(report.MissingFolders, bucket.Name+"/"+folder)
				}
			}
			continue
		}

		for _, space := range bucket.Spaces {
			for _, folder := range space.Folders() {
				found, err := s.hasPrefix(ctx, bucket.Name, strings.TrimSuffix(folder, "/")+"/")
				if err != nil {
					return nil, fmt.Errorf("failed to check folder %s in bucket %s: %w", folder, bucket.Name, err)
				}
				if !found {
					report.MissingFolders = append(report.MissingFolders, bucket.Name+"/"+folder)
				}
			}
		}
	}

	return report, nil
}
