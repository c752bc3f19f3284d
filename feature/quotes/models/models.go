package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
	// Europe/Paris must resolve on hosts without a zoneinfo database.
	_ "time/tzdata"
)

// ScrapeLocation is the zone raw records are stamped in.
const ScrapeLocation = "Europe/Paris"

// StringList is a list of strings stored as a JSON array column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode string list: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

// RawQuote is a quote exactly as extracted from the source page.
type RawQuote struct {
	ID        int64      `gorm:"column:id;primaryKey;type:int8" json:"-"`
	RunID     *string    `gorm:"column:run_id;type:varchar" json:"run_id,omitempty"`
	Text      string     `gorm:"column:text;type:text" json:"text"`
	Author    string     `gorm:"column:author;type:text" json:"author"`
	AuthorURL string     `gorm:"column:author_url;type:text" json:"author_url"`
	Tags      StringList `gorm:"column:tags;type:jsonb" json:"tags"`
	PageURL   string     `gorm:"column:page_url;type:text" json:"page_url"`
	ScrapedAt time.Time  `gorm:"column:scraped_at;type:timestamptz" json:"scraped_at"`
}

// TableName overrides the table name.
func (RawQuote) TableName() string {
	return "raw_quotes"
}

// NewRawQuote builds a quote stamped with the current time in Europe/Paris.
func NewRawQuote(text, author, authorURL string, tags []string) RawQuote {
	if tags == nil {
		tags = []string{}
	}
	return RawQuote{
		Text:      text,
		Author:    author,
		AuthorURL: authorURL,
		Tags:      tags,
		ScrapedAt: scrapeNow(),
	}
}

func scrapeNow() time.Time {
	loc, err := time.LoadLocation(ScrapeLocation)
	if err != nil {
		return time.Now().UTC()
	}
	return time.Now().In(loc)
}

// Run statuses.
const (
	RunRunning   = "running"
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

// Run records one pipeline execution.
type Run struct {
	ID          string     `gorm:"column:id;primaryKey;type:varchar" json:"id"`
	Source      string     `gorm:"column:source;type:text" json:"source"`
	Status      string     `gorm:"column:status;type:text" json:"status"`
	StartedAt   time.Time  `gorm:"column:started_at;type:timestamptz" json:"started_at"`
	FinishedAt  *time.Time `gorm:"column:finished_at;type:timestamptz" json:"finished_at,omitempty"`
	Pages       int64      `gorm:"column:pages;type:int8" json:"pages"`
	QuotesCount int64      `gorm:"column:quotes_count;type:int8" json:"quotes_count"`
	FlowKey     string     `gorm:"column:flow_key;type:text" json:"flow_key,omitempty"`
	BackupKey   string     `gorm:"column:backup_key;type:text" json:"backup_key,omitempty"`
	Error       string     `gorm:"column:error;type:text" json:"error,omitempty"`
}

// TableName overrides the table name.
func (Run) TableName() string {
	return "etl_runs"
}

// Tables lists the models backing the relational schema.
func Tables() []any {
	return []any{Run{}, RawQuote{}}
}
