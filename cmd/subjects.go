package cmd

import (
	"github.com/huangsam/examviz/core"
	"github.com/huangsam/examviz/internal/contract"
	"github.com/spf13/cobra"
)

// subjectsCmd prints per-subject document totals.
var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "Show subjects ranked by archived document count.",
	Long: `Sum the merged subject/year table per subject and rank the result.

ENGLISH and the Gaelic family are labelled the same way the language chart
colours them.

Examples:
  # Every subject, largest first
  examviz subjects

  # The language subjects only
  examviz subjects --languages

  # Top ten subjects as CSV
  examviz subjects --limit 10 --output csv --output-file subjects.csv

  # Subject totals and the timeline as Parquet for DuckDB or pandas
  examviz subjects --output parquet --output-file archive`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runExecutor(core.ExecuteSubjects); err != nil {
			contract.LogFatal("Cannot compute subject totals", err)
		}
	},
}

// runExecutor runs fn and prints guidance instead of failing on missing inputs.
func runExecutor(fn core.ExecutorFunc) error {
	return handleMissingInputs(fn(rootCtx, cfg), cfg.DataDir)
}
