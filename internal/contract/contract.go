// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/examviz/schema"
)

// TableSource defines where the three tabular datasets come from.
// This allows the pipeline to be tested without CSV files or a database on disk.
type TableSource interface {
	// LoadTimeline returns the per-year document timeline.
	LoadTimeline(ctx context.Context) ([]schema.TimelineRow, error)

	// LoadSubjectNames returns the subject code to display name lookup.
	LoadSubjectNames(ctx context.Context) ([]schema.SubjectName, error)

	// LoadSubjectYears returns the merged per-subject per-year counts.
	LoadSubjectYears(ctx context.Context) ([]schema.SubjectYearRecord, error)

	// Describe returns a human-readable location for progress output.
	Describe() string

	// Close releases any underlying handle.
	Close() error
}

// SourceStore is a TableSource backed by an SQL database.
type SourceStore interface {
	TableSource

	// GetStatus returns connection and table size information.
	GetStatus(ctx context.Context) (schema.SourceStatus, error)
}
