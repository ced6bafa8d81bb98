package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gojslint/internal/ui/pretty"
	"github.com/yaklabco/gojslint/pkg/jsast"
	"github.com/yaklabco/gojslint/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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

	var total int
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
			continue
		}
		total += r.writeFileDiagnostics(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// writeFileDiagnostics renders one file's diagnostics. Grouped mode gets
// a file header and a trailing blank line; flat mode prefixes every
// diagnostic with the path instead.
func (r *TextReporter) writeFileDiagnostics(file runner.FileOutcome) int {
	messages := file.Diagnostics()
	if len(messages) == 0 {
		return 0
	}

	pathPrefix := file.Path
	if r.opts.GroupByFile {
		pathPrefix = ""
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, len(messages)))
	}

	for i := range messages {
		diag := &messages[i]

		var sourceLine string
		if r.opts.ShowContext && file.Result.Snapshot != nil {
			sourceLine = sourceLineFor(file.Result.Snapshot, diag.Line)
		}

		fmt.Fprint(r.bw, r.styles.FormatDiagnosticWithFormat(
			pathPrefix, diag, r.opts.ShowContext, sourceLine, r.opts.RuleFormat))
	}

	if r.opts.GroupByFile {
		fmt.Fprintln(r.bw)
	}
	return len(messages)
}

// sourceLineFor pulls one line out of a file snapshot via its
// pre-computed line index, so rendering context never re-splits the
// file content per diagnostic.
func sourceLineFor(snapshot *jsast.FileSnapshot, lineNum int) string {
	if snapshot == nil {
		return ""
	}
	content := snapshot.LineContent(lineNum)
	if content == nil {
		return ""
	}
	return string(content)
}
