package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/gojslint/internal/ui/pretty"
	"github.com/yaklabco/gojslint/pkg/runner"
)

// defaultTermWidth is used when the writer is not a terminal.
const defaultTermWidth = 100

// TableReporter formats results as a styled table with color-coded rows.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, colorEnabled, terminalWidth(opts.Writer)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	issues := result.TotalIssues()
	if issues == 0 {
		if r.opts.ShowSummary {
			r.writeAllPassed(result.Stats.FilesProcessed)
		}
		return 0, nil
	}

	if r.opts.PerFile {
		r.writePerFile(result)
	} else {
		r.writeCombined(result)
	}

	return issues, nil
}

func (r *TableReporter) writeAllPassed(filesProcessed int) {
	fmt.Fprintln(r.bw)
	fmt.Fprintln(r.bw, r.styles.Success.Render("All files passed!"))
	fmt.Fprintln(r.bw, r.styles.Dim.Render(fmt.Sprintf("%d files checked", filesProcessed)))
}

// writeCombined renders every file's rows in one table.
func (r *TableReporter) writeCombined(result *runner.Result) {
	fmt.Fprint(r.bw, r.formatter.FormatTable(result))

	if !r.opts.ShowSummary {
		return
	}

	fmt.Fprintln(r.bw, r.formatter.FormatTableSummary(result.Stats, ""))
	fmt.Fprintln(r.bw)
	if result.HasFixable() {
		r.writeFixHint()
	}
}

// writePerFile renders one table per file with issues, then an overall
// summary block.
func (r *TableReporter) writePerFile(result *runner.Result) {
	withIssues := 0
	for _, file := range result.Files {
		if len(file.Diagnostics()) == 0 {
			continue
		}
		withIssues++

		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.Bold.Render(file.Path))
		fmt.Fprint(r.bw, r.formatter.FormatFileTable(file))
	}

	if !r.opts.ShowSummary || withIssues == 0 {
		return
	}

	fmt.Fprintln(r.bw)
	fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("═", 80)))
	fmt.Fprintln(r.bw, r.styles.Bold.Render("Overall Summary"))
	fmt.Fprintln(r.bw, r.formatter.FormatTableSummary(result.Stats, ""))

	if result.HasFixable() {
		fmt.Fprintln(r.bw)
		r.writeFixHint()
	}
}

func (r *TableReporter) writeFixHint() {
	fmt.Fprintln(r.bw, r.styles.Dim.Render("Run with --fix to auto-repair fixable issues"))
}

// terminalWidth asks the writer for its width, falling back to a fixed
// default when the writer is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}
