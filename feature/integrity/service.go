package integrity

import (
	"context"

	"quotes-lake/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Lake is the object store view the checks need.
type Lake interface {
	checks.LayoutProvisioner
	checks.ObjectLister
}

// Service handles integrity checks.
type Service struct {
	storage Lake
	db      *gorm.DB
	runs    checks.RunsTarget
	logger  *zap.Logger
}

// NewService creates a new integrity service. db may be nil when no database is configured.
func NewService(storage Lake, db *gorm.DB, runs checks.RunsTarget, logger *zap.Logger) *Service {
	return &Service{
		storage: storage,
		db:      db,
		runs:    runs,
		logger:  logger,
	}
}

// HasDatabase reports whether a database connection is configured.
func (s *Service) HasDatabase() bool {
	return s.db != nil
}

// CheckStorage reports the missing buckets and folders.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.storage)
}

// FixStorage provisions the missing buckets and folders.
func (s *Service) FixStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.FixStorage(ctx, s.storage, s.logger)
}

// CheckDatabase compares the live schema with the models.
func (s *Service) CheckDatabase() (*checks.DatabaseReport, error) {
	return checks.CheckDatabase(s.db)
}

// CheckRuns compares recorded runs with their backup copies.
func (s *Service) CheckRuns(ctx context.Context) (*checks.RunsReport, error) {
	return checks.CheckRuns(ctx, s.db, s.storage, s.runs)
}

// Report is the combined result of every check.
type Report struct {
	Healthy  bool `json:"healthy"`
	Storage  any  `json:"storage"`
	Database any  `json:"database,omitempty"`
	Runs     any  `json:"runs,omitempty"`
}

// CheckAll runs every check. Failing checks are reported inline.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{Healthy: true}

	if storage, err := s.CheckStorage(ctx); err != nil {
		report.Storage = map[string]string{"status": "error", "error": err.Error()}
		report.Healthy = false
	} else {
		report.Storage = storage
		report.Healthy = report.Healthy && storage.Status == "ok"
	}

	if !s.HasDatabase() {
		return report
	}
	if db, err := s.CheckDatabase(); err != nil {
		report.Database = map[string]string{"status": "error", "error": err.Error()}
		report.Healthy = false
	} else {
		report.Database = db
		report.Healthy = report.Healthy && db.Matched
	}

	if runs, err := s.CheckRuns(ctx); err != nil {
		report.Runs = map[string]string{"status": "error", "error": err.Error()}
		report.Healthy = false
	} else {
		report.Runs = runs
		report.Healthy = report.Healthy && runs.Status == "ok"
	}
	return report
}
