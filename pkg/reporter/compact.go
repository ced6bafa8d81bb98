package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/yaklabco/gojslint/internal/ui/pretty"
	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/runner"
)

// CompactReporter writes one grep-style line per diagnostic:
//
//	src/app.js:3:5: error: Unexpected for loop (no-loops)
//
// The format is stable and machine-friendly; editors and CI grep it.
type CompactReporter struct {
	opts       Options
	bw         *bufio.Writer
	errorColor *color.Color
	warnColor  *color.Color
	pathColor  *color.Color
	ruleColor  *color.Color
}

// NewCompactReporter creates a new compact reporter.
func NewCompactReporter(opts Options) *CompactReporter {
	r := &CompactReporter{
		opts:       opts,
		bw:         bufio.NewWriterSize(opts.Writer, bufWriterSize),
		errorColor: color.New(color.FgRed, color.Bold),
		warnColor:  color.New(color.FgYellow, color.Bold),
		pathColor:  color.New(color.Bold),
		ruleColor:  color.New(color.FgHiBlack),
	}

	if pretty.IsColorEnabled(opts.Color, opts.Writer) {
		r.errorColor.EnableColor()
		r.warnColor.EnableColor()
		r.pathColor.EnableColor()
		r.ruleColor.EnableColor()
	} else {
		r.errorColor.DisableColor()
		r.warnColor.DisableColor()
		r.pathColor.DisableColor()
		r.ruleColor.DisableColor()
	}

	return r
}

// Report implements Reporter.
func (r *CompactReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: error: %v\n", r.pathColor.Sprint(file.Path), file.Error)
			continue
		}

		if file.Result == nil || file.Result.LintResult == nil {
			continue
		}

		messages := file.Result.LintResult.Messages
		for i := range messages {
			diag := &messages[i]

			severity := r.warnColor.Sprint("warn")
			if diag.Severity == config.SeverityError {
				severity = r.errorColor.Sprint("error")
			}

			ruleName := config.FormatRuleName(r.opts.RuleFormat, diag.RuleID, diag.Kind)

			fmt.Fprintf(r.bw, "%s:%d:%d: %s: %s %s\n",
				r.pathColor.Sprint(file.Path),
				diag.Line,
				diag.Column,
				severity,
				diag.Message,
				r.ruleColor.Sprintf("(%s)", ruleName),
			)
			total++
		}
	}

	if r.opts.ShowSummary && total > 0 {
		issueWord := "issues"
		if total == 1 {
			issueWord = "issue"
		}
		fmt.Fprintf(r.bw, "\n%d %s\n", total, issueWord)
	}

	return total, nil
}
