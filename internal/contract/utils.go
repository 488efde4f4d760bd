package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/examviz/schema"
)

// Subject label constants.
const (
	EnglishValue = "English" // English is the dominant subject
	GaelicValue  = "Gaelic"  // Gaelic family subjects
	OtherValue   = "Other"   // Any other subject
)

// Color variables for console output.
var (
	EnglishColor = color.New(color.FgGreen, color.Bold) // EnglishColor matches the primary bar on the chart.
	GaelicColor  = color.New(color.FgRed, color.Bold)   // GaelicColor matches the red Gaelic bars.
	OtherColor   = color.New(color.FgCyan)              // OtherColor represents an unhighlighted subject.
)

// GetPlainLabel returns the highlight group of a subject.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(subject string) string {
	switch {
	case subject == schema.EnglishSubject:
		return EnglishValue
	case schema.IsGaelicSubject(subject):
		return GaelicValue
	default:
		return OtherValue
	}
}

// GetColorLabel returns a colored label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(subject string) string {
	text := GetPlainLabel(subject)

	switch text {
	case EnglishValue:
		return EnglishColor.Sprint(text)
	case GaelicValue:
		return GaelicColor.Sprint(text)
	default:
		return OtherColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err == nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warn %s\n", msg)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateLabel truncates a label to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for "..." and at least one character.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
