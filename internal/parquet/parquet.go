// Package parquet provides data structures and functions for exporting archive
// aggregates to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/schema"
	"github.com/parquet-go/parquet-go"
)

// SubjectTotalRow is one ranked subject total.
type SubjectTotalRow struct {
	// Rank is the 1-based position after sorting by document count
	Rank int32 `parquet:"rank,snappy"`

	// Subject is the subject name as written in the archive
	Subject string `parquet:"subject,snappy"`

	// DocumentCount is the subject total across all years
	DocumentCount int64 `parquet:"document_count,snappy"`

	// Label is the highlight group (English, Gaelic, Other)
	Label string `parquet:"label,snappy"`
}

// TimelineYearRow is one year of the document timeline.
type TimelineYearRow struct {
	// Year is the calendar year
	Year int32 `parquet:"year,snappy"`

	// DocumentCount is the number of archived documents for the year
	DocumentCount int64 `parquet:"document_count,snappy"`

	// NoRecord is true for the years annotated as having no records
	NoRecord bool `parquet:"no_record,snappy"`
}

// SubjectTotalRows converts ranked totals into Parquet rows.
func SubjectTotalRows(totals []schema.SubjectTotal) []SubjectTotalRow {
	rows := make([]SubjectTotalRow, len(totals))
	for i, t := range totals {
		rows[i] = SubjectTotalRow{
			Rank:          int32(i + 1),
			Subject:       t.Subject,
			DocumentCount: int64(t.DocumentCount),
			Label:         contract.GetPlainLabel(t.Subject),
		}
	}
	return rows
}

// TimelineYearRows converts the timeline into Parquet rows.
func TimelineYearRows(timeline []schema.TimelineRow) []TimelineYearRow {
	rows := make([]TimelineYearRow, len(timeline))
	for i, r := range timeline {
		rows[i] = TimelineYearRow{
			Year:          int32(r.Year),
			DocumentCount: int64(r.DocumentCount),
			NoRecord:      schema.IsNoRecordYear(r.Year),
		}
	}
	return rows
}

// WriteSubjectTotalsParquet writes subject totals to a Parquet file.
func WriteSubjectTotalsParquet(data []SubjectTotalRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteTimelineParquet writes timeline rows to a Parquet file.
func WriteTimelineParquet(data []TimelineYearRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// writeRows writes rows with a schema inferred from the struct tags of T.
func writeRows[T any](data []T, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close flushes the footer; a failure here leaves an unreadable file
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
