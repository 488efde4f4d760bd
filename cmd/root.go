package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/examviz/core"
	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/internal/outwriter"
	"github.com/huangsam/examviz/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd runs the whole pipeline when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "examviz",
	Short: "Chart and summarize the Scottish exam document archive.",
	Long: `Examviz loads the exam document archive (a per-year timeline, subject names and
per-subject per-year counts), renders three charts and writes summary files.

Outputs written to the output directory:
- timeline_chart.png           Documents per year with the war years shaded
- language_subjects_chart.png  Documents per language subject
- language_trends_chart.png    Language subjects over time
- statistics.json              Years spanned, totals, war years, English and Gaelic counts
- quotes.json                  Sentences about the English requirement

Examples:
  # Run with the data folder in the current directory
  examviz

  # Read inputs from elsewhere and write outputs to a report folder
  examviz --data-dir ~/archive/data --output-dir report

  # Read the tables from a SQLite database provisioned with 'examviz source'
  examviz --source sqlite --source-db-connect archive.db`,
	Version:            version,
	Args:               cobra.NoArgs,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runPipeline(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot process archive", err)
		}
	},
}

// runPipeline runs the full pipeline for the root command.
func runPipeline(ctx context.Context, c *contract.Config) error {
	_, err := core.ExecutePipeline(ctx, c)
	return handleMissingInputs(err, c.DataDir)
}

// handleMissingInputs turns a missing data directory or data file into
// printed guidance. Missing inputs are not failures, so nil is returned for them.
func handleMissingInputs(err error, dataDir string) error {
	var missing *contract.MissingFileError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, contract.ErrDataDirNotFound):
		outwriter.PrintDataDirMissing(os.Stdout, dataDir)
		return nil
	case errors.As(err, &missing):
		outwriter.PrintMissingFile(os.Stdout, missing)
		return nil
	default:
		return err
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setConfigPaths()

	// Set environment variable prefix
	viper.SetEnvPrefix("EXAMVIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("data-dir", contract.DefaultDataDir)
	viper.SetDefault("output-dir", contract.DefaultOutputDir)
	viper.SetDefault("source", schema.CSVSource)
	viper.SetDefault("source-db-connect", "")
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("dpi", contract.DefaultDPI)
	viper.SetDefault("color", "yes")
}

// setConfigPaths points viper at --config or the default .examviz.yaml locations.
func setConfigPaths() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		return
	}
	viper.SetConfigName(".examviz") // Name of config file (without extension)
	viper.SetConfigType("yaml")     // We'll use YAML format
	viper.AddConfigPath(".")        // Look in the current directory
	viper.AddConfigPath("$HOME")    // Look in the home directory
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := loadConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	setConfigPaths()

	// Load config file if present
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
