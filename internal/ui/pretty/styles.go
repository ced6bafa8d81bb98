// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// The palette sticks to the standard 16 ANSI slots so output follows the
// user's terminal theme instead of imposing one.
const (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorCyan   = lipgloss.Color("14")
	colorWhite  = lipgloss.Color("7")
	colorGray   = lipgloss.Color("8")
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Diagnostic components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	RuleID     lipgloss.Style
	Message    lipgloss.Style
	Suggestion lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableErrorRow  lipgloss.Style
	TableWarnRow   lipgloss.Style
	TableFixable   lipgloss.Style
	TableLegend    lipgloss.Style
	TableSeparator lipgloss.Style

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

func newColorStyles() *Styles {
	base := lipgloss.NewStyle()
	dim := base.Foreground(colorGray)

	return &Styles{
		Error:   base.Foreground(colorRed).Bold(true),
		Warning: base.Foreground(colorYellow).Bold(true),

		FilePath:   base.Bold(true),
		Location:   dim,
		RuleID:     dim,
		Message:    base,
		Suggestion: base.Foreground(colorGreen).Italic(true),
		SourceLine: base.Foreground(colorWhite),
		Caret:      base.Foreground(colorRed),

		DiffHeader:  base.Bold(true),
		DiffHunk:    base.Foreground(colorCyan),
		DiffAdd:     base.Foreground(colorGreen),
		DiffRemove:  base.Foreground(colorRed),
		DiffContext: dim,

		SummaryTitle: base.Bold(true),
		SummaryValue: base,
		Success:      base.Foreground(colorGreen).Bold(true),
		Failure:      base.Foreground(colorRed).Bold(true),

		TableHeader:    base.Bold(true).Foreground(colorWhite),
		TableErrorRow:  base.Foreground(colorRed),
		TableWarnRow:   base.Foreground(colorYellow),
		TableFixable:   base.Foreground(colorGreen),
		TableLegend:    dim.Italic(true),
		TableSeparator: dim,

		Dim:  dim,
		Bold: base.Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		FilePath:       plain,
		Location:       plain,
		RuleID:         plain,
		Message:        plain,
		Suggestion:     plain,
		SourceLine:     plain,
		Caret:          plain,
		DiffHeader:     plain,
		DiffHunk:       plain,
		DiffAdd:        plain,
		DiffRemove:     plain,
		DiffContext:    plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableErrorRow:  plain,
		TableWarnRow:   plain,
		TableFixable:   plain,
		TableLegend:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled reports whether color output should be used for writer.
// Mode is "auto", "always", or "never". In auto mode color requires a TTY
// and an unset NO_COLOR (https://no-color.org/).
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
