// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Report header components
	FilePath lipgloss.Style
	Kind     lipgloss.Style
	Header   lipgloss.Style

	// Fact components
	FactLabel  lipgloss.Style
	FactValue  lipgloss.Style
	Offset     lipgloss.Style
	Diagnostic lipgloss.Style

	// Hex dump components
	HexOffset lipgloss.Style
	HexBytes  lipgloss.Style
	HexASCII  lipgloss.Style

	// Summary and status
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		FilePath: lipgloss.NewStyle().Bold(true),
		Kind:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Header:   lipgloss.NewStyle().Bold(true),

		FactLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		FactValue:  lipgloss.NewStyle(),
		Offset:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Diagnostic: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		HexOffset: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		HexBytes:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		HexASCII:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		FilePath:   plain,
		Kind:       plain,
		Header:     plain,
		FactLabel:  plain,
		FactValue:  plain,
		Offset:     plain,
		Diagnostic: plain,
		HexOffset:  plain,
		HexBytes:   plain,
		HexASCII:   plain,
		Success:    plain,
		Failure:    plain,
		Dim:        plain,
		Bold:       plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
