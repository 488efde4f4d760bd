// Package core has core logic for loading, aggregating and rendering the archive.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/huangsam/examviz/core/agg"
	"github.com/huangsam/examviz/core/algo"
	"github.com/huangsam/examviz/core/render"
	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/internal/outwriter"
	"github.com/huangsam/examviz/internal/source"
	"github.com/huangsam/examviz/schema"
)

// ExecutorFunc defines the function signature for the commands that print results.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// chartJob pairs an output file with the renderer that fills it.
type chartJob struct {
	name   string
	file   string
	dest   *string
	render func(io.Writer) error
}

// ExecutePipeline runs the full load, aggregate, render and write sequence.
// It returns ErrDataDirNotFound or a MissingFileError before any output is
// written when the inputs are absent.
func ExecutePipeline(ctx context.Context, cfg *contract.Config) (schema.RunResult, error) {
	var result schema.RunResult
	out := progressWriter(ctx)

	src, err := OpenSource(cfg)
	if err != nil {
		return result, err
	}
	defer func() { _ = src.Close() }()

	outwriter.PrintHeader(out, src.Describe(), cfg.DataDir, cfg.OutputDir)

	_, _ = fmt.Fprintln(out, "\n📂 Loading data...")
	tables, err := LoadTables(ctx, src)
	if err != nil {
		return result, err
	}
	_, _ = fmt.Fprintf(out, "   Loaded %d timeline rows, %d subject names, %d subject/year rows\n",
		len(tables.Timeline), len(tables.SubjectNames), len(tables.SubjectYears))

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return result, fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	style := render.NewStyle(cfg.Palette, cfg.DPI)
	totals := agg.SubjectTotals(tables.SubjectYears, schema.LanguageSubjects)
	result.SubjectTotals = totals

	_, _ = fmt.Fprintln(out, "\n📈 Creating charts...")
	jobs := []chartJob{
		{
			name: "timeline", file: schema.TimelineChartFile, dest: &result.Charts.Timeline,
			render: func(w io.Writer) error { return render.RenderTimeline(w, tables.Timeline, style) },
		},
		{
			name: "language subjects", file: schema.LanguageSubjectsChartFile, dest: &result.Charts.LanguageSubjects,
			render: func(w io.Writer) error { return render.RenderLanguageSubjects(w, totals, style) },
		},
		{
			name: "language trends", file: schema.LanguageTrendsChartFile, dest: &result.Charts.LanguageTrends,
			render: func(w io.Writer) error { return render.RenderLanguageTrends(w, tables.SubjectYears, style) },
		},
	}
	for _, job := range jobs {
		path := filepath.Join(cfg.OutputDir, job.file)
		err := render.WriteChart(path, job.render)
		if errors.Is(err, contract.ErrNoData) {
			contract.LogWarn(fmt.Sprintf("skipping %s chart", job.name), err)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("failed to render %s chart: %w", job.name, err)
		}
		*job.dest = path
		_, _ = fmt.Fprintf(out, "   🖼️  %s\n", path)
	}

	_, _ = fmt.Fprintln(out, "\n💬 Extracting quotes...")
	quotes, err := ExtractQuotesFromFile(filepath.Join(cfg.DataDir, schema.CorpusFile))
	if err != nil {
		contract.LogWarn("using fallback quote", err)
	}
	result.Quotes = quotes
	if result.QuotesFile, err = outwriter.WriteQuotesFile(cfg.OutputDir, quotes); err != nil {
		return result, err
	}
	_, _ = fmt.Fprintf(out, "   💾 %d quotes to %s\n", len(quotes), result.QuotesFile)

	_, _ = fmt.Fprintln(out, "\n🧮 Generating statistics...")
	result.Statistics, result.Matches = agg.GenerateStatistics(tables)
	if result.StatisticsFile, err = outwriter.WriteStatisticsFile(cfg.OutputDir, result.Statistics); err != nil {
		return result, err
	}
	_, _ = fmt.Fprintf(out, "   💾 statistics to %s\n", result.StatisticsFile)

	warnUnmatched(result.Matches)
	warnNoRecordMismatch(tables.Timeline)

	outwriter.PrintSummary(out, result)
	return result, nil
}

// OpenSource returns the table source selected by cfg. The CSV source
// requires the data directory to exist.
func OpenSource(cfg *contract.Config) (contract.TableSource, error) {
	switch cfg.Source {
	case schema.CSVSource, "":
		if err := CheckDataDir(cfg.DataDir); err != nil {
			return nil, err
		}
		return NewCSVSource(cfg.DataDir), nil
	default:
		return source.NewSQLSource(cfg.Source, cfg.SourceDBConnect)
	}
}

// GetStatistics loads the tables and computes the statistics without writing files.
func GetStatistics(ctx context.Context, cfg *contract.Config) (schema.Statistics, schema.StatisticsMatches, error) {
	tables, err := loadFromConfig(ctx, cfg)
	if err != nil {
		return schema.Statistics{}, schema.StatisticsMatches{}, err
	}
	stats, matches := agg.GenerateStatistics(tables)
	return stats, matches, nil
}

// GetSubjectTotals loads the tables and returns ranked per-subject totals,
// restricted to the language subjects when cfg.Languages is set.
func GetSubjectTotals(ctx context.Context, cfg *contract.Config) ([]schema.SubjectTotal, []schema.TimelineRow, error) {
	tables, err := loadFromConfig(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	var subjects []string
	if cfg.Languages {
		subjects = schema.LanguageSubjects
	}
	totals := algo.RankSubjects(agg.SubjectTotals(tables.SubjectYears, subjects), cfg.Limit)
	return totals, tables.Timeline, nil
}

// GetQuotes extracts quotes from the corpus in the data directory.
func GetQuotes(cfg *contract.Config) ([]schema.Quote, error) {
	return ExtractQuotesFromFile(filepath.Join(cfg.DataDir, schema.CorpusFile))
}

// ExecuteSubjects prints the per-subject totals in the configured output format.
func ExecuteSubjects(ctx context.Context, cfg *contract.Config) error {
	totals, timeline, err := GetSubjectTotals(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteSubjectTotals(totals, timeline, cfg)
}

// loadFromConfig opens the configured source and reads every table.
func loadFromConfig(ctx context.Context, cfg *contract.Config) (schema.Tables, error) {
	src, err := OpenSource(cfg)
	if err != nil {
		return schema.Tables{}, err
	}
	defer func() { _ = src.Close() }()
	return LoadTables(ctx, src)
}

// progressWriter returns stdout, or a discarding writer when the context
// suppresses headers.
func progressWriter(ctx context.Context) io.Writer {
	if shouldSuppressHeader(ctx) {
		return io.Discard
	}
	return os.Stdout
}

// warnUnmatched reports filters that matched no rows and were reported as zero.
func warnUnmatched(matches schema.StatisticsMatches) {
	if !matches.WarYears {
		contract.LogWarn(fmt.Sprintf("no timeline rows between %d and %d; war_year_drop reported as 0",
			schema.WarStartYear, schema.WarEndYear), nil)
	}
	if !matches.English {
		contract.LogWarn(fmt.Sprintf("no %s rows; english_dominance reported as 0", schema.EnglishSubject), nil)
	}
	if !matches.Gaelic {
		contract.LogWarn(fmt.Sprintf("no subjects containing %s; gaelic_presence reported as 0", schema.GaelicToken), nil)
	}
}

// warnNoRecordMismatch compares the fixed no-record annotation with the
// years the timeline actually leaves empty.
func warnNoRecordMismatch(timeline []schema.TimelineRow) {
	derived := agg.NoRecordYears(timeline)
	if slices.Equal(derived, schema.NoRecordYears) {
		return
	}
	contract.LogWarn(fmt.Sprintf("timeline marks %s as no-record years but the data has no records for %s",
		joinYears(schema.NoRecordYears), joinYears(derived)), nil)
}

// joinYears formats years as a comma-separated list.
func joinYears(years []int) string {
	if len(years) == 0 {
		return "none"
	}
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = fmt.Sprint(y)
	}
	return strings.Join(parts, ", ")
}
