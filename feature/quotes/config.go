package quotes

import "time"

// Config holds configuration for the quotes scraper and pipeline.
type Config struct {
	// BaseURL is the first page of the quotes site.
	BaseURL string `mapstructure:"base_url" default:"https://quotes.toscrape.com"`
	// Delay is the politeness pause after each fetched page.
	Delay time.Duration `mapstructure:"delay" default:"1s"`
	// Timeout bounds a single HTTP request.
	Timeout time.Duration `mapstructure:"timeout" default:"30s"`
	// FetchAttempts is the total number of tries per page.
	FetchAttempts int `mapstructure:"fetch_attempts" default:"2"`
	// RetryMin and RetryMax bound the exponential wait between tries.
	RetryMin time.Duration `mapstructure:"retry_min" default:"2s"`
	RetryMax time.Duration `mapstructure:"retry_max" default:"10s"`
	// MaxPages caps a crawl when the caller passes 0.
	MaxPages int `mapstructure:"max_pages" default:"20"`
	// Bucket and Space receive the pipeline artifact.
	Bucket string `mapstructure:"bucket" default:"bucket-bronze"`
	Space  string `mapstructure:"space" default:"space-site-quotes"`
	// ObjectName is the flow object name of the artifact.
	ObjectName string `mapstructure:"object_name" default:"quotes.jsonl"`
}
