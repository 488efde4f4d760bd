package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/internal/parquet"
	"github.com/huangsam/examviz/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Parquet file suffixes appended to --output-file.
const (
	SubjectTotalsParquetSuffix = ".subject_totals.parquet"
	TimelineParquetSuffix      = ".timeline.parquet"
)

// WriteSubjectTotals outputs ranked subject totals, dispatching based on the output format configured.
// The timeline is only used by the Parquet export.
func WriteSubjectTotals(totals []schema.SubjectTotal, timeline []schema.TimelineRow, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSubjectTotalsJSON(w, totals)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSubjectTotalsCSV(w, totals)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeSubjectTotalsParquet(totals, timeline, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSubjectTable(w, totals, cfg)
		}, "Wrote table")
	}
	return nil
}

// writeSubjectTable generates and writes the human-readable table.
func writeSubjectTable(w io.Writer, totals []schema.SubjectTotal, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Subject", "Documents", "Label"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTableSubjectWidth(cfg)
	var data [][]string
	sum := 0
	for i, t := range totals {
		label := contract.GetPlainLabel(t.Subject)
		if cfg.UseColors {
			label = contract.GetColorLabel(t.Subject)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateLabel(t.Subject, maxWidth),
			strconv.Itoa(t.DocumentCount),
			label,
		})
		sum += t.DocumentCount
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d subjects (total documents: %d)\n", len(totals), sum)
	return err
}

// writeSubjectTotalsCSV writes rank, subject, count and label rows.
func writeSubjectTotalsCSV(w io.Writer, totals []schema.SubjectTotal) error {
	header := []string{"rank", "subject", "document_count", "label"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, t := range totals {
			rec := []string{
				strconv.Itoa(i + 1),
				t.Subject,
				strconv.Itoa(t.DocumentCount),
				contract.GetPlainLabel(t.Subject),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeSubjectTotalsJSON writes totals with rank and label added.
func writeSubjectTotalsJSON(w io.Writer, totals []schema.SubjectTotal) error {
	type JSONSubjectTotal struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.SubjectTotal
	}

	output := make([]JSONSubjectTotal, len(totals))
	for i, t := range totals {
		output[i] = JSONSubjectTotal{
			Rank:         i + 1,
			Label:        contract.GetPlainLabel(t.Subject),
			SubjectTotal: t,
		}
	}
	return writeJSON(w, output)
}

// writeSubjectTotalsParquet writes two Parquet files next to the output file prefix.
func writeSubjectTotalsParquet(totals []schema.SubjectTotal, timeline []schema.TimelineRow, prefix string) error {
	totalsPath := prefix + SubjectTotalsParquetSuffix
	if err := parquet.WriteSubjectTotalsParquet(parquet.SubjectTotalRows(totals), totalsPath); err != nil {
		return err
	}
	timelinePath := prefix + TimelineParquetSuffix
	if err := parquet.WriteTimelineParquet(parquet.TimelineYearRows(timeline), timelinePath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s and %s\n", totalsPath, timelinePath)
	return nil
}
