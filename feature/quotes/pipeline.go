package quotes

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"quotes-lake/core/metrics"
	"quotes-lake/feature/lake"
	"quotes-lake/feature/quotes/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Source produces the raw quotes of a crawl.
type Source interface {
	Scrape(ctx context.Context, maxPages int) (*ScrapeResult, error)
}

// QuoteStore persists raw quotes and run records.
type QuoteStore interface {
	SaveQuotes(ctx context.Context, quotes []models.RawQuote) error
	StartRun(ctx context.Context, id, source string, startedAt time.Time) error
	FinishRun(ctx context.Context, run *models.Run) error
}

// Placer uploads staged artifacts into the object store.
type Placer interface {
	LocalPath(name string) string
	Put(ctx context.Context, bucket, space, localName, remoteName string) (*lake.PutResult, error)
}

// RunReport summarises a pipeline run.
type RunReport struct {
	RunID     string          `json:"run_id"`
	Pages     int             `json:"pages"`
	Quotes    int             `json:"quotes"`
	Saved     bool            `json:"saved"`
	Artifact  string          `json:"artifact"`
	Placement *lake.PutResult `json:"placement"`
	Partial   string          `json:"partial,omitempty"`
	Duration  time.Duration   `json:"duration"`
}

// Pipeline runs the extract and raw load steps.
type Pipeline struct {
	cfg    Config
	source Source
	repo   QuoteStore
	placer Placer
	logger *zap.Logger
	now    func() time.Time
}

// NewPipeline creates a pipeline. repo may be nil to skip the database.
func NewPipeline(cfg Config, source Source, repo QuoteStore, placer Placer, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		source: source,
		repo:   repo,
		placer: placer,
		logger: logger,
		now:    time.Now,
	}
}

// ArtifactName returns the staging file name of a run.
func ArtifactName(runID string) string {
	return "quotes-" + runID + ".jsonl"
}

// Run scrapes up to maxPages pages, stores the quotes and places the JSONL
// artifact into the configured space.
func (p *Pipeline) Run(ctx context.Context, maxPages int) (report *RunReport, err error) {
	started := p.now()
	runID := uuid.NewString()
	l := p.logger.With(zap.String("run_id", runID))
	report = &RunReport{RunID: runID, Artifact: ArtifactName(runID)}

	if p.repo != nil {
		if err := p.repo.StartRun(ctx, runID, p.cfg.BaseURL, started); err != nil {
			return nil, err
		}
	}

	defer func() {
		finished := p.now()
		report.Duration = finished.Sub(started)
		metrics.RecordPipelineRun(err == nil, report.Duration.Seconds(), finished.Unix())
		p.finish(context.WithoutCancel(ctx), l, report, finished, err)
	}()

	l.Info("Pipeline started", zap.String("source", p.cfg.BaseURL), zap.Int("max_pages", maxPages))

	result, err := p.source.Scrape(ctx, maxPages)
	if err != nil {
		return report, fmt.Errorf("scrape failed: %w", err)
	}
	report.Pages = result.Pages
	report.Quotes = len(result.Quotes)
	if result.Err != nil {
		report.Partial = result.Err.Error()
	}

	for i := range result.Quotes {
		result.Quotes[i].RunID = &runID
	}

	if err := writeJSONL(p.placer.LocalPath(report.Artifact), result.Quotes); err != nil {
		return report, err
	}

	if p.repo != nil {
		if err := p.repo.SaveQuotes(ctx, result.Quotes); err != nil {
			return report, err
		}
		report.Saved = true
	}

	placement, err := p.placer.Put(ctx, p.cfg.Bucket, p.cfg.Space, report.Artifact, p.cfg.ObjectName)
	if err != nil {
		return report, fmt.Errorf("placement failed: %w", err)
	}
	report.Placement = placement

	l.Info("Pipeline completed",
		zap.Int("pages", report.Pages),
		zap.Int("quotes", report.Quotes),
		zap.String("flow_key", placement.FlowKey),
		zap.String("backup_key", placement.BackupKey))
	return report, nil
}

func (p *Pipeline) finish(ctx context.Context, l *zap.Logger, report *RunReport, finished time.Time, runErr error) {
	if runErr != nil {
		l.Error("Pipeline failed", zap.Error(runErr))
	}
	if p.repo == nil {
		return
	}

	run := &models.Run{
		ID:          report.RunID,
		Status:      models.RunSucceeded,
		FinishedAt:  &finished,
		Pages:       int64(report.Pages),
		QuotesCount: int64(report.Quotes),
	}
	if report.Placement != nil {
		run.FlowKey = report.Placement.FlowKey
		run.BackupKey = report.Placement.BackupKey
	}
	if runErr != nil {
		run.Status = models.RunFailed
		run.Error = runErr.Error()
	}
	if err := p.repo.FinishRun(ctx, run); err != nil {
		l.Error("Failed to record run outcome", zap.Error(err))
	}
}

// writeJSONL writes one JSON document per line.
func writeJSONL(path string, quotes []models.RawQuote) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create artifact %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, q := range quotes {
		if err := enc.Encode(q); err != nil {
			return fmt.Errorf("failed to encode quote: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	return f.Close()
}
