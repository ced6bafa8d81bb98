package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/lint"
	"github.com/yaklabco/gojslint/pkg/runner"
)

const (
	fixableSymbol    = "+"
	columnGap        = 2
	fixableColWidth  = 3
	minFileWidth     = 20
	minLocWidth      = 10
	minMessageWidth  = 35
	minRuleWidth     = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow is one diagnostic prepared for tabular display.
type TableRow struct {
	File     string
	Location string
	Message  string
	RuleID   string
	Severity config.Severity
	Fixable  bool
}

func tableRowFor(path string, diag *lint.Diagnostic) TableRow {
	return TableRow{
		File:     path,
		Location: fmt.Sprintf("%d:%d", diag.Line, diag.Column),
		Message:  diag.Message,
		RuleID:   diag.RuleID,
		Severity: diag.Severity,
		Fixable:  diag.HasFix(),
	}
}

// rowsForFile converts a file's diagnostics into table rows. Files that were
// skipped or came back clean yield nil.
func rowsForFile(file runner.FileOutcome) []TableRow {
	if file.Result == nil || file.Result.LintResult == nil {
		return nil
	}
	messages := file.Result.LintResult.Messages
	if len(messages) == 0 {
		return nil
	}
	rows := make([]TableRow, 0, len(messages))
	for i := range messages {
		rows = append(rows, tableRowFor(file.Path, &messages[i]))
	}
	return rows
}

// tableLayout holds computed column widths. A zero file width means the FILE
// column is omitted, as in per-file tables where the path is in the heading.
type tableLayout struct {
	file    int
	loc     int
	message int
	rule    int
}

func (l tableLayout) columnCount() int {
	if l.file > 0 {
		return 5 // FILE, LOC, MESSAGE, RULE, fixable mark
	}
	return 4
}

func (l tableLayout) totalWidth() int {
	return l.file + l.loc + l.message + l.rule +
		columnGap*l.columnCount() + fixableColWidth
}

// fitLayout sizes each column to its widest cell, then shrinks the message
// column and finally the file column until the table fits the terminal.
func fitLayout(rows []TableRow, withFile bool, termWidth int) tableLayout {
	l := tableLayout{loc: minLocWidth, message: minMessageWidth, rule: minRuleWidth}
	if withFile {
		l.file = minFileWidth
	}

	for _, row := range rows {
		if withFile {
			l.file = max(l.file, len(row.File))
		}
		l.loc = max(l.loc, len(row.Location))
		l.message = max(l.message, len(row.Message))
		l.rule = max(l.rule, len(row.RuleID))
	}

	if over := l.totalWidth() - termWidth; over > 0 {
		l.message = max(minMessageWidth, l.message-over)
	}
	if over := l.totalWidth() - termWidth; over > 0 && withFile {
		l.file = max(minFileWidth, l.file-over)
	}
	return l
}

// TableFormatter renders diagnostics as aligned, severity-colored tables.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a table formatter for the given terminal width.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatTable renders every file's diagnostics as a single table, with files
// separated by light rules and a legend underneath.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil {
		return ""
	}

	var groups [][]TableRow
	var all []TableRow
	for _, file := range result.Files {
		rows := rowsForFile(file)
		if len(rows) == 0 {
			continue
		}
		groups = append(groups, rows)
		all = append(all, rows...)
	}
	if len(groups) == 0 {
		return ""
	}

	layout := fitLayout(all, true, t.termWidth)

	var b strings.Builder
	b.WriteString(t.renderHeader(layout))
	b.WriteString("\n")
	b.WriteString(t.renderSeparator(layout, heavySeparator))
	b.WriteString("\n")

	for i, group := range groups {
		if i > 0 {
			b.WriteString(t.renderSeparator(layout, lightSeparator))
			b.WriteString("\n")
		}
		for _, row := range group {
			b.WriteString(t.renderRow(layout, row))
			b.WriteString("\n")
		}
	}

	b.WriteString(t.renderSeparator(layout, heavySeparator))
	b.WriteString("\n")
	b.WriteString(t.renderLegend())
	b.WriteString("\n")
	return b.String()
}

// FormatFileTable renders one file's diagnostics without the FILE column,
// followed by that file's issue totals.
func (t *TableFormatter) FormatFileTable(file runner.FileOutcome) string {
	rows := rowsForFile(file)
	if len(rows) == 0 {
		return ""
	}

	layout := fitLayout(rows, false, t.termWidth)

	var b strings.Builder
	b.WriteString(t.renderHeader(layout))
	b.WriteString("\n")
	b.WriteString(t.renderSeparator(layout, heavySeparator))
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString(t.renderRow(layout, row))
		b.WriteString("\n")
	}

	b.WriteString(t.renderSeparator(layout, heavySeparator))
	b.WriteString("\n")
	b.WriteString(t.renderFileTotals(rows))
	b.WriteString("\n")
	return b.String()
}

func (t *TableFormatter) renderHeader(l tableLayout) string {
	cells := make([]string, 0, l.columnCount())
	if l.file > 0 {
		cells = append(cells, pad("FILE", l.file))
	}
	cells = append(cells,
		pad("LOC", l.loc),
		pad("MESSAGE", l.message),
		pad("RULE", l.rule),
		" ", // blank heading over the fixable mark
	)
	return t.styles.TableHeader.Render(" " + strings.Join(cells, "  "))
}

func (t *TableFormatter) renderSeparator(l tableLayout, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, l.totalWidth()))
}

func (t *TableFormatter) renderRow(l tableLayout, row TableRow) string {
	cells := make([]string, 0, l.columnCount())
	if l.file > 0 {
		cells = append(cells, pad(clipPath(row.File, l.file), l.file))
	}
	cells = append(cells,
		pad(clip(row.Location, l.loc), l.loc),
		pad(clip(row.Message, l.message), l.message),
		pad(clip(row.RuleID, l.rule), l.rule),
	)

	mark := " "
	if row.Fixable {
		mark = t.styles.TableFixable.Render(fixableSymbol)
	}
	cells = append(cells, mark)

	return t.rowStyle(row.Severity).Render(" " + strings.Join(cells, "  "))
}

func (t *TableFormatter) rowStyle(severity config.Severity) lipgloss.Style {
	switch severity {
	case config.SeverityError:
		return t.styles.TableErrorRow
	case config.SeverityWarn:
		return t.styles.TableWarnRow
	default:
		return lipgloss.NewStyle()
	}
}

func (t *TableFormatter) renderLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(
			fmt.Sprintf(" Legend: %s = fixable", fixableSymbol),
		)
	}
	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s = error  %s = warn  %s = fixable",
			t.styles.TableErrorRow.Render(" error "),
			t.styles.TableWarnRow.Render(" warn "),
			t.styles.TableFixable.Render(fixableSymbol)),
	)
}

// renderFileTotals renders the per-file footer, e.g. "2 errors | 1 fixable".
func (t *TableFormatter) renderFileTotals(rows []TableRow) string {
	var errors, warnings, fixable int
	for _, row := range rows {
		switch row.Severity {
		case config.SeverityError:
			errors++
		case config.SeverityWarn:
			warnings++
		}
		if row.Fixable {
			fixable++
		}
	}

	var parts []string
	if errors > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if fixable > 0 {
		parts = append(parts, t.styles.TableFixable.Render(fmt.Sprintf("%d fixable", fixable)))
	}
	return " " + strings.Join(parts, " | ")
}

// FormatTableSummary renders the closing stats line shown under a table.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats, duration string) string {
	errors, warnings := severityCounts(stats)

	parts := []string{fmt.Sprintf("%d files checked", stats.FilesProcessed)}
	if errors > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if stats.DiagnosticsFixable > 0 {
		parts = append(parts, t.styles.TableFixable.Render(fmt.Sprintf("%d fixable", stats.DiagnosticsFixable)))
	}
	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}
	return " " + strings.Join(parts, " | ")
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// clip shortens s to width, marking the cut with an ellipsis.
func clip(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// clipPath shortens a path from the front so the file name stays visible.
func clipPath(path string, width int) string {
	if len(path) <= width {
		return path
	}
	if width <= 3 {
		return path[len(path)-width:]
	}
	return "..." + path[len(path)-width+3:]
}
