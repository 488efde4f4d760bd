package outwriter

import (
	"os"

	"github.com/huangsam/examviz/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableSubjectWidth calculates the maximum width for subject names in table output
// based on terminal width.
func GetMaxTableSubjectWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Documents + Label with borders and padding
	baseWidth := 30 + 20

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 50 {
		return 50
	}
	return available
}
