package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"quotes-lake/feature/lake"
	"quotes-lake/feature/quotes/models"

	"gorm.io/gorm"
)

// ObjectLister lists objects of a bucket.
type ObjectLister interface {
	List(ctx context.Context, bucket, prefix string) ([]lake.ObjectEntry, error)
}

// RunsTarget locates the backup copies written by pipeline runs.
type RunsTarget struct {
	Bucket string
	// Prefix is the backup folder of the pipeline space, without trailing slash.
	Prefix string
}

// RunsReport compares recorded runs with the backup objects in the lake.
type RunsReport struct {
	Status string `json:"status"` // "ok", "error"
	Runs   int    `json:"runs"`
	// MissingBackups lists run ids whose recorded backup object is gone.
	MissingBackups []string `json:"missing_backups"`
	// Orphans lists backup objects no succeeded run refers to.
	Orphans []string `json:"orphans"`
}

// CheckRuns reconciles succeeded runs against the backup folder of the pipeline space.
func CheckRuns(ctx context.Context, db *gorm.DB, lister ObjectLister, target RunsTarget) (*RunsReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var runs []models.Run
	err := db.WithContext(ctx).
		Where("status = ? AND backup_key <> ?", models.RunSucceeded, "").
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load runs: %w", err)
	}

	prefix := strings.TrimSuffix(target.Prefix, "/") + "/"
	objects, err := lister.List(ctx, target.Bucket, prefix)
	if err != nil {
		return nil, err
	}

	stored := make(map[string]bool, len(objects))
	for _, obj := range objects {
		if obj.Name == prefix {
			continue // folder marker
		}
		stored[obj.Name] = true
	}

	report := &RunsReport{Status: "ok", Runs: len(runs), MissingBackups: []string{}, Orphans: []string{}}
	referenced := make(map[string]bool, len(runs))
	for _, run := range runs {
		referenced[run.BackupKey] = true
		if !stored[run.BackupKey] {
			report.MissingBackups = append(report.MissingBackups, run.ID)
		}
	}
	for key := range stored {
		if !referenced[key] {
			report.Orphans = append(report.Orphans, key)
		}
	}

	sort.Strings(report.MissingBackups)
	sort.Strings(report.Orphans)
	if len(report.MissingBackups) > 0 || len(report.Orphans) > 0 {
		report.Status = "error"
	}
	return report, nil
}
