package contract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/huangsam/examviz/schema"
)

// Default values for configuration.
const (
	DefaultDataDir   = "data"
	DefaultOutputDir = "."
	DefaultDPI       = 150
	MinDPI           = 50
	MaxDPI           = 600
	MaxResultLimit   = 1000
)

// hexColorPattern accepts RRGGBB with an optional leading '#'.
var hexColorPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// PaletteRawInput holds optional colour overrides from the YAML config file.
type PaletteRawInput struct {
	Background *string `mapstructure:"background"`
	Primary    *string `mapstructure:"primary"`
	Secondary  *string `mapstructure:"secondary"`
	Light      *string `mapstructure:"light"`
	Border     *string `mapstructure:"border"`
	Highlight  *string `mapstructure:"highlight"`
}

// Config holds the runtime configuration for a run.
// This struct remains the "final, validated" config.
type Config struct {
	DataDir   string // Absolute path of the directory holding the input files
	OutputDir string // Absolute path of the directory receiving charts and JSON

	Source          schema.SourceBackend
	SourceDBConnect string // Please use env var as this is plaintext

	Output     schema.OutputMode
	OutputFile string
	Languages  bool // Restrict subject totals to the language subjects
	Limit      int  // Maximum subject totals to show (0 = all)
	Width      int  // Terminal width override (0 = auto-detect)

	DPI     int
	Palette schema.Palette

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	DataDir         string `mapstructure:"data-dir"`
	OutputDir       string `mapstructure:"output-dir"`
	Source          string `mapstructure:"source"`
	SourceDBConnect string `mapstructure:"source-db-connect"`
	Output          string `mapstructure:"output"`
	OutputFile      string `mapstructure:"output-file"`
	DPI             int    `mapstructure:"dpi"`
	Width           int    `mapstructure:"width"`
	Color           string `mapstructure:"color"`

	// --- Fields from subjectsCmd.Flags() ---
	Languages bool `mapstructure:"languages"`
	Limit     int  `mapstructure:"limit"`

	// --- Palette overrides from config file ---
	Palette PaletteRawInput `mapstructure:"palette"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateSourceConfig(cfg, input); err != nil {
		return err
	}
	if err := processPalette(cfg, input); err != nil {
		return err
	}
	return resolveDirectories(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL sources.
func ValidateDatabaseConnectionString(backend schema.SourceBackend, connStr string) error {
	switch backend {
	case schema.CSVSource:
		return nil
	case schema.SQLiteSource:
		if connStr == "" {
			return fmt.Errorf("source-db-connect is required when using %s source (path to the database file)", backend)
		}
	case schema.MySQLSource:
		if connStr == "" {
			return fmt.Errorf("source-db-connect is required when using %s source", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLSource:
		if connStr == "" {
			return fmt.Errorf("source-db-connect is required when using %s source", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// NormalizeHexColor validates a hex colour and returns it with a leading '#' in upper case.
func NormalizeHexColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !hexColorPattern.MatchString(s) {
		return "", fmt.Errorf("invalid hex color %q (expected RRGGBB or #RRGGBB)", s)
	}
	return "#" + strings.ToUpper(strings.TrimPrefix(s, "#")), nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Languages = input.Languages
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.Limit = input.Limit

	if input.DPI < MinDPI || input.DPI > MaxDPI {
		return fmt.Errorf("dpi must be between %d and %d (received %d)", MinDPI, MaxDPI, input.DPI)
	}
	cfg.DPI = input.DPI

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	return nil
}

// validateSourceConfig validates the table source backend and its connection string.
func validateSourceConfig(cfg *Config, input *ConfigRawInput) error {
	source := strings.ToLower(input.Source)
	if source == "" {
		source = string(schema.CSVSource)
	}
	cfg.Source = schema.SourceBackend(source)
	if _, ok := schema.ValidSourceBackends[cfg.Source]; !ok {
		return fmt.Errorf("invalid source '%s'. must be csv, sqlite, mysql, postgresql", input.Source)
	}
	cfg.SourceDBConnect = input.SourceDBConnect
	return ValidateDatabaseConnectionString(cfg.Source, cfg.SourceDBConnect)
}

// processPalette starts from the default palette and applies any overrides.
func processPalette(cfg *Config, input *ConfigRawInput) error {
	palette := schema.DefaultPalette()
	overrides := []struct {
		name  string
		value *string
		dest  *string
	}{
		{"background", input.Palette.Background, &palette.Background},
		{"primary", input.Palette.Primary, &palette.Primary},
		{"secondary", input.Palette.Secondary, &palette.Secondary},
		{"light", input.Palette.Light, &palette.Light},
		{"border", input.Palette.Border, &palette.Border},
		{"highlight", input.Palette.Highlight, &palette.Highlight},
	}
	for _, o := range overrides {
		if o.value == nil {
			continue
		}
		normalized, err := NormalizeHexColor(*o.value)
		if err != nil {
			return fmt.Errorf("palette.%s: %w", o.name, err)
		}
		*o.dest = normalized
	}
	cfg.Palette = palette
	return nil
}

// resolveDirectories turns the data and output directories into absolute paths.
func resolveDirectories(cfg *Config, input *ConfigRawInput) error {
	dataDir := input.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	absData, err := filepath.Abs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to resolve data directory %q: %w", dataDir, err)
	}
	cfg.DataDir = absData

	outputDir := input.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory %q: %w", outputDir, err)
	}
	cfg.OutputDir = absOut
	return nil
}
