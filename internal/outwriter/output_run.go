package outwriter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/huangsam/examviz/schema"
)

const banner = "=================================================="

// WriteStatisticsFile writes stats to statistics.json in dir and returns its path.
func WriteStatisticsFile(dir string, stats schema.Statistics) (string, error) {
	return writeJSONFile(dir, schema.StatisticsFile, stats)
}

// WriteQuotesFile writes quotes to quotes.json in dir and returns its path.
func WriteQuotesFile(dir string, quotes []schema.Quote) (string, error) {
	return writeJSONFile(dir, schema.QuotesFile, quotes)
}

// PrintHeader prints the run banner with the resolved locations.
func PrintHeader(w io.Writer, source, dataDir, outputDir string) {
	_, _ = fmt.Fprintln(w, banner)
	_, _ = fmt.Fprintln(w, "Scottish Exam Data Processing")
	_, _ = fmt.Fprintln(w, banner)
	_, _ = fmt.Fprintf(w, "Source: %s\n", source)
	_, _ = fmt.Fprintf(w, "Data directory: %s\n", dataDir)
	_, _ = fmt.Fprintf(w, "Output directory: %s\n", outputDir)
	_, _ = fmt.Fprintln(w, banner)
}

// PrintDataDirMissing explains the expected layout when the data directory is absent.
func PrintDataDirMissing(w io.Writer, dataDir string) {
	_, _ = fmt.Fprintf(w, "\nERROR: Data directory not found: %s\n", dataDir)
	_, _ = fmt.Fprintf(w, "Please make sure the '%s' folder exists, or point --data-dir at it.\n", filepath.Base(dataDir))
	_, _ = fmt.Fprintln(w, "\nExpected directory structure:")
	_, _ = fmt.Fprintln(w, "  your_project_folder/")
	_, _ = fmt.Fprintf(w, "  └── %s/\n", filepath.Base(dataDir))
	for i, name := range schema.RequiredDataFiles {
		branch := "├──"
		if i == len(schema.RequiredDataFiles)-1 {
			branch = "└──"
		}
		_, _ = fmt.Fprintf(w, "      %s %s\n", branch, name)
	}
}

// PrintMissingFile reports a missing data file and lists every required file.
func PrintMissingFile(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "\nERROR: %v\n", err)
	_, _ = fmt.Fprintln(w, "\nPlease make sure all required data files are in the data folder:")
	for _, name := range schema.RequiredDataFiles {
		_, _ = fmt.Fprintf(w, "  - %s\n", name)
	}
}

// PrintSummary prints the headline statistics and every file the run produced.
func PrintSummary(w io.Writer, result schema.RunResult) {
	stats := result.Statistics
	_, _ = fmt.Fprintf(w, "\n%s\n", banner)
	_, _ = fmt.Fprintln(w, "Processing Complete!")
	_, _ = fmt.Fprintln(w, banner)
	_, _ = fmt.Fprintf(w, "Total Years: %d\n", stats.TotalYears)
	_, _ = fmt.Fprintf(w, "Total Documents: %d\n", stats.TotalDocuments)
	_, _ = fmt.Fprintf(w, "English Documents: %d\n", stats.EnglishDominance)
	_, _ = fmt.Fprintf(w, "Gaelic Documents: %d\n", stats.GaelicPresence)

	var unmatched []string
	if !result.Matches.WarYears {
		unmatched = append(unmatched, "war years")
	}
	if !result.Matches.English {
		unmatched = append(unmatched, schema.EnglishSubject)
	}
	if !result.Matches.Gaelic {
		unmatched = append(unmatched, schema.GaelicToken)
	}
	if len(unmatched) > 0 {
		_, _ = fmt.Fprintf(w, "No matching rows for: %s (reported as 0)\n", strings.Join(unmatched, ", "))
	}

	_, _ = fmt.Fprintln(w, "\nGenerated files:")
	for _, path := range []string{
		result.Charts.Timeline,
		result.Charts.LanguageSubjects,
		result.Charts.LanguageTrends,
		result.StatisticsFile,
		result.QuotesFile,
	} {
		if path != "" {
			_, _ = fmt.Fprintf(w, "  - %s\n", path)
		}
	}
	_, _ = fmt.Fprintln(w, banner)
}
