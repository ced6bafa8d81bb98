package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/runner"
)

const summaryDividerWidth = 40

// severityCounts pulls the error and warning tallies out of the stats map
// using the canonical severity names, so the keys cannot drift from the
// runner's accounting.
func severityCounts(stats runner.Stats) (errors, warnings int) {
	errors = stats.DiagnosticsBySeverity[config.SeverityError.String()]
	warnings = stats.DiagnosticsBySeverity[config.SeverityWarn.String()]
	return errors, warnings
}

// countNoun returns "n singular" or "n plural".
func countNoun(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues (8 errors, 4 warnings) in 3 files, 6 fixable".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	fixed := ""
	if stats.DiagnosticsFixed > 0 {
		fixed = s.Success.Render(fmt.Sprintf("%d fixed in %s",
			stats.DiagnosticsFixed, countNoun(stats.FilesModified, "file", "files")))
	}

	if stats.DiagnosticsTotal == 0 {
		line := s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		if fixed != "" {
			line += ", " + fixed
		}
		return line + "\n"
	}

	errors, warnings := severityCounts(stats)

	head := countNoun(stats.DiagnosticsTotal, "issue", "issues")
	var bySeverity []string
	if errors > 0 {
		bySeverity = append(bySeverity, s.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings > 0 {
		bySeverity = append(bySeverity, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if len(bySeverity) > 0 {
		head += fmt.Sprintf(" (%s)", strings.Join(bySeverity, ", "))
	}

	parts := []string{
		head,
		"in " + countNoun(stats.FilesWithIssues, "file", "files"),
	}
	if stats.DiagnosticsFixable > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", stats.DiagnosticsFixable)))
	}
	if fixed != "" {
		parts = append(parts, fixed)
	}

	return strings.Join(parts, ", ") + "\n"
}

// summaryRow is one aligned label/value line in the summary block.
type summaryRow struct {
	indent string
	label  string
	value  string
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	errors, warnings := severityCounts(stats)

	rows := []summaryRow{
		{"  ", "Files checked:", s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed))},
	}
	if stats.FilesWithIssues > 0 {
		rows = append(rows, summaryRow{"  ", "Files with issues:", s.Failure.Render(strconv.Itoa(stats.FilesWithIssues))})
	}
	if stats.FilesModified > 0 {
		rows = append(rows, summaryRow{"  ", "Files modified:", s.Success.Render(strconv.Itoa(stats.FilesModified))})
	}
	if stats.CacheHits > 0 {
		rows = append(rows, summaryRow{"  ", "From cache:", s.SummaryValue.Render(strconv.Itoa(stats.CacheHits))})
	}

	rows = append(rows, summaryRow{}) // blank separator

	rows = append(rows, summaryRow{"  ", "Total issues:", s.SummaryValue.Render(strconv.Itoa(stats.DiagnosticsTotal))})
	if errors > 0 {
		rows = append(rows, summaryRow{"    ", "Errors:", s.Error.Render(strconv.Itoa(errors))})
	}
	if warnings > 0 {
		rows = append(rows, summaryRow{"    ", "Warnings:", s.Warning.Render(strconv.Itoa(warnings))})
	}

	var builder strings.Builder
	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Pad labels so values line up in one column.
	const labelColumn = 21
	for _, row := range rows {
		if row.label == "" {
			builder.WriteString("\n")
			continue
		}
		pad := labelColumn - len(row.indent) - len(row.label)
		if pad < 1 {
			pad = 1
		}
		builder.WriteString(row.indent + row.label + strings.Repeat(" ", pad) + row.value + "\n")
	}

	builder.WriteString("\n")

	switch {
	case errors > 0:
		builder.WriteString(s.Failure.Render("Lint failed with errors"))
	case warnings > 0:
		builder.WriteString(s.Warning.Render("Lint completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Lint passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
