// Package cmd defines the command-line interface for examviz.
package cmd

import (
	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(sourceCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the source subcommands to the parent source command
	sourceCmd.AddCommand(sourceMigrateCmd)
	sourceCmd.AddCommand(sourceImportCmd)
	sourceCmd.AddCommand(sourceStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("data-dir", contract.DefaultDataDir, "Directory holding the archive CSV and text files")
	rootCmd.PersistentFlags().String("output-dir", contract.DefaultOutputDir, "Directory receiving the charts and JSON files")
	rootCmd.PersistentFlags().String("source", string(schema.CSVSource), "Table source: csv or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("source-db-connect", "", "Database connection string for sqlite/mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("dpi", contract.DefaultDPI, "Chart resolution in dots per inch")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of subjectsCmd to Viper
	subjectsCmd.Flags().Bool("languages", false, "Only show the language subjects")
	subjectsCmd.Flags().IntP("limit", "l", 0, "Number of subjects to display (0 = all)")
	if err := viper.BindPFlags(subjectsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding subjects flags", err)
	}

	// Bind all flags of sourceMigrateCmd to Viper
	sourceMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(sourceMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding source migrate flags", err)
	}
}
