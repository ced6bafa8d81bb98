package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/lint"
)

// FormatDiagnostic formats a single diagnostic for terminal output using the
// full rule name. Pass an empty path when the surrounding output already
// names the file (grouped mode).
func (s *Styles) FormatDiagnostic(path string, diag *lint.Diagnostic, showContext bool, sourceLine string) string {
	return s.FormatDiagnosticWithFormat(path, diag, showContext, sourceLine, config.RuleFormatFull)
}

// FormatDiagnosticWithFormat formats a diagnostic with a configurable rule
// identifier format.
func (s *Styles) FormatDiagnosticWithFormat(path string, diag *lint.Diagnostic, showContext bool, sourceLine string, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	// Location: line:col, prefixed with the path in flat mode.
	location := fmt.Sprintf("%d:%d", diag.Line, diag.Column)
	if path != "" {
		location = s.FilePath.Render(path) + ":" + location
	}

	severity := s.FormatSeverity(diag.Severity)

	ruleIdentifier := config.FormatRuleName(ruleFormat, diag.RuleID, diag.Kind)
	ruleDisplay := s.RuleID.Render(ruleIdentifier)

	// Main line: location  severity  message  rule
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(diag.Message),
		ruleDisplay,
	))

	// Source context
	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.Column, caretWidth(diag)))
	}

	// Suggestions
	for _, sug := range diag.Suggestions {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(sug.Description) + "\n")
	}

	return builder.String()
}

// caretWidth returns how many columns the caret marker should span.
// Multi-line diagnostics get a single caret at the start position.
func caretWidth(diag *lint.Diagnostic) int {
	if diag.EndLine == diag.Line && diag.EndColumn > diag.Column {
		return diag.EndColumn - diag.Column
	}
	return 1
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarn:
		return s.Warning.Render("warn")
	default:
		return sev.String()
	}
}

// FormatSourceContext formats the source line with a caret marker spanning
// width columns.
func (s *Styles) FormatSourceContext(line string, column, width int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	// Source line
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	// Caret marker
	if column > 0 {
		if width < 1 {
			width = 1
		}
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render(strings.Repeat("^", width)) + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount == 1 {
		header += s.Dim.Render(" (1 issue)")
	} else if issueCount > 1 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
