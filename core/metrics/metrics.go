// Package metrics provides Prometheus metrics for the quotes pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StorageOperations tracks object store operations.
	StorageOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quotes_lake_storage_operations_total",
		Help: "Total number of object storage operations",
	}, []string{"operation", "status"})

	// PagesFetched tracks scraped pages.
	PagesFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quotes_lake_pages_fetched_total",
		Help: "Total number of pages fetched by the scraper",
	}, []string{"status"})

	// QuotesScraped tracks quotes extracted from pages.
	QuotesScraped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quotes_lake_quotes_scraped_total",
		Help: "Total number of quotes extracted",
	})

	// PipelineRuns tracks ETL runs.
	PipelineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quotes_lake_pipeline_runs_total",
		Help: "Total number of pipeline runs",
	}, []string{"status"})

	// PipelineDuration tracks the duration of ETL runs.
	PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quotes_lake_pipeline_duration_seconds",
		Help:    "Duration of pipeline runs in seconds",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})

	// LastRunTimestamp tracks when the last successful run finished.
	LastRunTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quotes_lake_last_success_timestamp",
		Help: "Unix timestamp of the last successful pipeline run",
	})
)

func status(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// RecordStorageOperation records an object store operation.
func RecordStorageOperation(operation string, err error) {
	StorageOperations.WithLabelValues(operation, status(err == nil)).Inc()
}

// RecordPageFetch records a page fetch outcome.
func RecordPageFetch(success bool) {
	PagesFetched.WithLabelValues(status(success)).Inc()
}

// RecordPipelineRun records a pipeline run outcome and duration.
func RecordPipelineRun(success bool, seconds float64, finishedAt int64) {
	PipelineRuns.WithLabelValues(status(success)).Inc()
	PipelineDuration.Observe(seconds)
	if success {
		LastRunTimestamp.Set(float64(finishedAt))
	}
}
