package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/gojslint/internal/ui/pretty"
	"github.com/yaklabco/gojslint/pkg/analysis"
	"github.com/yaklabco/gojslint/pkg/config"
)

// summaryWidth is the divider width shared by both aggregate tables.
const summaryWidth = 90

const (
	maxRuleChars = 28 // rule names clip from the right past this
	maxPathChars = 58 // file paths clip from the left past this
)

// A summaryColumn is one column of an aggregate table. Numeric columns
// right-align, name columns left-align.
type summaryColumn struct {
	title string
	width int
	right bool
}

// cell pads s to the column width. Padding happens before styling so
// ANSI escapes never skew the alignment.
func (c summaryColumn) cell(s string) string {
	gap := c.width - len(s)
	if gap <= 0 {
		return s
	}
	fill := strings.Repeat(" ", gap)
	if c.right {
		return fill + s
	}
	return s + fill
}

var ruleColumns = []summaryColumn{
	{title: "Rule", width: 30},
	{title: "Count", width: 7, right: true},
	{title: "Errors", width: 7, right: true},
	{title: "Warnings", width: 8, right: true},
	{title: "Fixable", width: 8, right: true},
}

var fileColumns = []summaryColumn{
	{title: "File", width: 60},
	{title: "Count", width: 7, right: true},
	{title: "Errors", width: 7, right: true},
	{title: "Warnings", width: 8, right: true},
}

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Issues == 0 {
		fmt.Fprintln(r.out, r.styles.Success.Render("No issues found"))
		return nil
	}

	first, second := r.renderRuleTable, r.renderFileTable
	if r.opts.SummaryOrder == config.SummaryOrderFiles {
		first, second = second, first
	}
	first(report)
	fmt.Fprintln(r.out)
	second(report)

	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)

	return nil
}

// printHeading writes a table title, its column header row, and the
// dividers around them.
func (r *SummaryRenderer) printHeading(title string, columns []summaryColumn) {
	divider := r.styles.TableSeparator.Render(strings.Repeat("─", summaryWidth))

	fmt.Fprintln(r.out, r.styles.Bold.Render(title))
	fmt.Fprintln(r.out, divider)

	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = r.styles.TableHeader.Render(col.cell(col.title))
	}
	fmt.Fprintln(r.out, strings.Join(cells, " "))
	fmt.Fprintln(r.out, divider)
}

// severityStyle picks the accent for a name cell: error rows win over
// warning rows, clean rows stay plain.
func (r *SummaryRenderer) severityStyle(errors, warnings int) func(string) string {
	switch {
	case errors > 0:
		return func(s string) string { return r.styles.TableErrorRow.Render(s) }
	case warnings > 0:
		return func(s string) string { return r.styles.TableWarnRow.Render(s) }
	}
	return func(s string) string { return s }
}

func (r *SummaryRenderer) renderRuleTable(report *analysis.Report) {
	rules := report.ByRule
	if len(rules) == 0 {
		return
	}

	r.printHeading("Rules Summary", ruleColumns)

	for _, rule := range rules {
		name := config.FormatRuleName(r.opts.RuleFormat, rule.RuleID, rule.Kind)
		cells := []string{
			r.severityStyle(rule.Errors, rule.Warnings)(ruleColumns[0].cell(clipTail(name, maxRuleChars))),
			ruleColumns[1].cell(strconv.Itoa(rule.Issues)),
			ruleColumns[2].cell(strconv.Itoa(rule.Errors)),
			ruleColumns[3].cell(strconv.Itoa(rule.Warnings)),
			r.fixableCell(rule.Fixable),
		}
		fmt.Fprintln(r.out, strings.Join(cells, " "))
	}
}

func (r *SummaryRenderer) fixableCell(fixable bool) string {
	col := ruleColumns[len(ruleColumns)-1]
	if !fixable {
		return col.cell("")
	}
	return r.styles.Success.Render(col.cell("✓"))
}

func (r *SummaryRenderer) renderFileTable(report *analysis.Report) {
	files := report.ByFile
	if len(files) == 0 {
		return
	}

	r.printHeading("Files Summary", fileColumns)

	for _, file := range files {
		cells := []string{
			r.severityStyle(file.Errors, file.Warnings)(fileColumns[0].cell(clipHead(file.Path, maxPathChars))),
			fileColumns[1].cell(strconv.Itoa(file.Issues)),
			fileColumns[2].cell(strconv.Itoa(file.Errors)),
			fileColumns[3].cell(strconv.Itoa(file.Warnings)),
		}
		fmt.Fprintln(r.out, strings.Join(cells, " "))
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	issues := fmt.Sprintf("%d %s", totals.Issues, plural(totals.Issues, "issue", "issues"))
	if breakdown := r.severityBreakdown(totals); breakdown != "" {
		issues += " (" + breakdown + ")"
	}
	files := fmt.Sprintf("in %d %s", totals.FilesWithIssues, plural(totals.FilesWithIssues, "file", "files"))

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+issues+" "+files)
}

func (r *SummaryRenderer) severityBreakdown(totals analysis.Totals) string {
	var parts []string
	if totals.Errors > 0 {
		parts = append(parts, r.styles.Error.Render(fmt.Sprintf("%d errors", totals.Errors)))
	}
	if totals.Warnings > 0 {
		parts = append(parts, r.styles.Warning.Render(fmt.Sprintf("%d warnings", totals.Warnings)))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// clipTail shortens s from the right so the rule prefix stays visible.
func clipTail(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}

// clipHead shortens s from the left so the file name stays visible.
func clipHead(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return "…" + s[len(s)-limit+1:]
}
