package quotes

import (
	"context"
	"fmt"
	"time"

	"quotes-lake/feature/quotes/models"

	"gorm.io/gorm"
)

const insertBatchSize = 100

// Repository persists raw quotes and pipeline runs.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on an open connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SaveQuotes inserts quotes in batches. Generated ids are written back.
func (r *Repository) SaveQuotes(ctx context.Context, quotes []models.RawQuote) error {
	if len(quotes) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(&quotes, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to save %d quotes: %w", len(quotes), err)
	}
	return nil
}

// ListQuotes returns the most recently stored quotes, newest first.
func (r *Repository) ListQuotes(ctx context.Context, limit int) ([]models.RawQuote, error) {
	var quotes []models.RawQuote
	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&quotes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

// CountQuotes returns the number of stored quotes.
func (r *Repository) CountQuotes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RawQuote{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count quotes: %w", err)
	}
	return count, nil
}

// StartRun records a new running pipeline execution.
func (r *Repository) StartRun(ctx context.Context, id, source string, startedAt time.Time) error {
	run := models.Run{ID: id, Source: source, Status: models.RunRunning, StartedAt: startedAt}
	if err := r.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", id, err)
	}
	return nil
}

// FinishRun stores the outcome of a run.
func (r *Repository) FinishRun(ctx context.Context, run *models.Run) error {
	err := r.db.WithContext(ctx).Model(&models.Run{}).Where("id = ?", run.ID).Updates(map[string]any{
		"status":       run.Status,
		"finished_at":  run.FinishedAt,
		"pages":        run.Pages,
		"quotes_count": run.QuotesCount,
		"flow_key":     run.FlowKey,
		"backup_key":   run.BackupKey,
		"error":        run.Error,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to finish run %s: %w", run.ID, err)
	}
	return nil
}
