package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/examviz/core"
	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/internal/source"
	"github.com/huangsam/examviz/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// sourceSetup loads minimal configuration needed for source operations.
// This is used by commands that need database access without full shared setup.
func sourceSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get source-related config values
	backend := schema.SourceBackend(viper.GetString("source"))
	connStr := viper.GetString("source-db-connect")

	if backend == schema.CSVSource || backend == "" {
		return fmt.Errorf("source commands need --source sqlite, mysql or postgresql")
	}
	if _, ok := schema.ValidSourceBackends[backend]; !ok {
		return fmt.Errorf("invalid source '%s'. must be csv, sqlite, mysql, postgresql", backend)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	dataDir, err := filepath.Abs(viper.GetString("data-dir"))
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}

	cfg.Source = backend
	cfg.SourceDBConnect = connStr
	cfg.DataDir = dataDir

	return nil
}

// sourceSetupWrapper wraps sourceSetup to provide PreRunE for source commands.
func sourceSetupWrapper(_ *cobra.Command, _ []string) error {
	return sourceSetup()
}

// sourceCmd focused on SQL archive management.
//
// Note: Source subcommands use minimal initialization (sourceSetup) instead of
// the full sharedSetup used by the pipeline. This avoids palette and output
// validation for simple database operations.
var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage an SQL copy of the archive tables",
	Long: `Manage a database holding the three archive tables.

Once provisioned and imported, the pipeline and the subjects command can read
the tables from the database with --source instead of the CSV files.

Supported backends: SQLite, MySQL, PostgreSQL

Subcommands:
  migrate - Run database schema migrations
  import  - Copy the CSV tables from the data directory into the database
  status  - Show row counts per table

Examples:
  # Provision and fill a SQLite archive
  examviz source migrate --source sqlite --source-db-connect archive.db
  examviz source import --source sqlite --source-db-connect archive.db

  # Run the pipeline from the database
  examviz --source sqlite --source-db-connect archive.db`,
}

// sourceMigrateCmd runs database migrations for the archive tables.
var sourceMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the archive tables.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  examviz source migrate --source postgresql --source-db-connect "host=localhost dbname=archive"

  # Rollback to the initial state
  examviz source migrate --source sqlite --source-db-connect archive.db --target-version 0`,
	PreRunE: sourceSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := source.MigrateSource(cfg.Source, cfg.SourceDBConnect, targetVersion, os.Stdout); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

// sourceImportCmd copies the CSV tables into the database.
var sourceImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the database tables with the CSV files of the data directory",
	Long: `Load doc_timeline.csv, subject_names.csv and
merged_textinfo_by_subject_and_year.csv from --data-dir and replace the
contents of the matching tables in one transaction.

Run 'examviz source migrate' first.

Examples:
  examviz source import --source sqlite --source-db-connect archive.db --data-dir data`,
	PreRunE: sourceSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := handleMissingInputs(importTables(), cfg.DataDir); err != nil {
			contract.LogFatal("Failed to import archive tables", err)
		}
	},
}

// sourceStatusCmd shows table sizes.
var sourceStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display connection details and row counts per table",
	Long: `Show the backend, whether the connection succeeded and how many rows each
archive table holds.

Examples:
  examviz source status --source sqlite --source-db-connect archive.db`,
	PreRunE: sourceSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		src, err := source.NewSQLSource(cfg.Source, cfg.SourceDBConnect)
		if err != nil {
			contract.LogFatal("Failed to open source", err)
		}
		defer func() { _ = src.Close() }()

		status, err := src.GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get source status", err)
		}
		source.PrintSourceStatus(os.Stdout, status)
	},
}

// importTables reads the CSV tables and writes them to the configured database.
func importTables() error {
	if err := core.CheckDataDir(cfg.DataDir); err != nil {
		return err
	}
	tables, err := core.LoadTables(rootCtx, core.NewCSVSource(cfg.DataDir))
	if err != nil {
		return err
	}

	dst, err := source.NewSQLSource(cfg.Source, cfg.SourceDBConnect)
	if err != nil {
		return err
	}
	defer func() { _ = dst.Close() }()

	if err := dst.ImportTables(rootCtx, tables); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "💾 Imported %d timeline rows, %d subject names, %d subject/year rows into %s\n",
		len(tables.Timeline), len(tables.SubjectNames), len(tables.SubjectYears), dst.Describe())
	return nil
}
