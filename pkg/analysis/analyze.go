package analysis

import (
	"cmp"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/fix"
	"github.com/yaklabco/gojslint/pkg/lint"
	"github.com/yaklabco/gojslint/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Analyze transforms a runner.Result into a Report in a single pass over
// the diagnostics. Files whose lint run failed outright count toward
// Totals.Files but contribute nothing else.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}
	if result == nil {
		return report
	}

	agg := newAggregator()

	for _, file := range result.Files {
		report.Totals.Files++

		messages := file.Diagnostics()
		if len(messages) == 0 {
			continue
		}
		report.Totals.FilesWithIssues++

		path := displayPath(file.Path, opts.WorkingDir)
		for i := range messages {
			diag := &messages[i]
			tallyTotals(&report.Totals, diag)
			agg.record(path, diag)

			if opts.IncludeDiagnostics {
				report.Diagnostics = append(report.Diagnostics, newDiagnosticEntry(path, diag))
			}
		}
	}

	if opts.IncludeByRule {
		report.ByRule = agg.byRule(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = agg.byFile(opts)
	}

	return report
}

func tallyTotals(totals *Totals, diag *lint.Diagnostic) {
	totals.Issues++
	switch diag.Severity {
	case config.SeverityError:
		totals.Errors++
	case config.SeverityWarn:
		totals.Warnings++
	}
	if diag.HasFix() {
		totals.Fixable++
	}
}

// displayPath makes a path relative to workDir for reporting. An empty
// workDir or failed conversion keeps the path as-is.
func displayPath(path, workDir string) string {
	if workDir == "" {
		return path
	}
	if rel, err := filepath.Rel(workDir, path); err == nil {
		return rel
	}
	return path
}

// aggregator accumulates the per-rule and per-file views. Buckets embed
// the public analysis structs and carry the membership sets alongside.
type aggregator struct {
	rules map[string]*ruleBucket
	files map[string]*fileBucket
}

type ruleBucket struct {
	RuleAnalysis
	files map[string]struct{}
}

type fileBucket struct {
	FileAnalysis
	rules map[string]struct{}
}

func newAggregator() *aggregator {
	return &aggregator{
		rules: make(map[string]*ruleBucket),
		files: make(map[string]*fileBucket),
	}
}

func (a *aggregator) record(path string, diag *lint.Diagnostic) {
	file := a.fileFor(path)
	file.Issues++
	file.rules[diag.RuleID] = struct{}{}

	rule := a.ruleFor(diag)
	rule.Issues++
	rule.files[path] = struct{}{}

	switch diag.Severity {
	case config.SeverityError:
		file.Errors++
		rule.Errors++
	case config.SeverityWarn:
		file.Warnings++
		rule.Warnings++
	}
	if diag.HasFix() {
		rule.Fixable = true
	}
}

func (a *aggregator) fileFor(path string) *fileBucket {
	bucket, ok := a.files[path]
	if !ok {
		bucket = &fileBucket{
			FileAnalysis: FileAnalysis{Path: path},
			rules:        make(map[string]struct{}),
		}
		a.files[path] = bucket
	}
	return bucket
}

func (a *aggregator) ruleFor(diag *lint.Diagnostic) *ruleBucket {
	bucket, ok := a.rules[diag.RuleID]
	if !ok {
		bucket = &ruleBucket{
			RuleAnalysis: RuleAnalysis{
				RuleID:   diag.RuleID,
				Category: diag.Category,
				Kind:     diag.Kind,
			},
			files: make(map[string]struct{}),
		}
		a.rules[diag.RuleID] = bucket
	}
	return bucket
}

func (a *aggregator) byRule(opts Options) []RuleAnalysis {
	out := make([]RuleAnalysis, 0, len(a.rules))
	for _, bucket := range a.rules {
		bucket.Files = slices.Sorted(maps.Keys(bucket.files))
		out = append(out, bucket.RuleAnalysis)
	}
	sortView(out, opts,
		func(r RuleAnalysis) string { return r.RuleID },
		func(r RuleAnalysis) (int, int, int) { return r.Errors, r.Warnings, r.Issues })
	return out
}

func (a *aggregator) byFile(opts Options) []FileAnalysis {
	out := make([]FileAnalysis, 0, len(a.files))
	for _, bucket := range a.files {
		bucket.Rules = slices.Sorted(maps.Keys(bucket.rules))
		out = append(out, bucket.FileAnalysis)
	}
	sortView(out, opts,
		func(f FileAnalysis) string { return f.Path },
		func(f FileAnalysis) (int, int, int) { return f.Errors, f.Warnings, f.Issues })
	return out
}

// sortView orders a by-rule or by-file slice. Alphabetical order is
// always ascending and severity order always ranks errors first; only
// count order honors SortDesc.
func sortView[T any](items []T, opts Options, alphaKey func(T) string, counts func(T) (errors, warnings, issues int)) {
	slices.SortFunc(items, func(left, right T) int {
		switch opts.SortBy {
		case SortByAlpha:
			return cmp.Compare(alphaKey(left), alphaKey(right))
		case SortBySeverity:
			leftErrs, leftWarns, leftIssues := counts(left)
			rightErrs, rightWarns, rightIssues := counts(right)
			if c := cmp.Compare(rightErrs, leftErrs); c != 0 {
				return c
			}
			if c := cmp.Compare(rightWarns, leftWarns); c != 0 {
				return c
			}
			return cmp.Compare(rightIssues, leftIssues)
		default: // SortByCount
			_, _, leftIssues := counts(left)
			_, _, rightIssues := counts(right)
			c := cmp.Compare(leftIssues, rightIssues)
			if opts.SortDesc {
				c = -c
			}
			return c
		}
	})
}

func newDiagnosticEntry(path string, diag *lint.Diagnostic) DiagnosticEntry {
	entry := DiagnosticEntry{
		FilePath:  path,
		RuleID:    diag.RuleID,
		Category:  diag.Category,
		Severity:  diag.Severity.String(),
		Message:   diag.Message,
		Line:      diag.Line,
		Column:    diag.Column,
		EndLine:   diag.EndLine,
		EndColumn: diag.EndColumn,
		NodeKind:  diag.NodeKind,
		Fixable:   diag.HasFix(),
		Fix:       fixEntry(diag.Fix),
	}
	for _, s := range diag.Suggestions {
		entry.Suggestions = append(entry.Suggestions, SuggestionEntry{
			Description: s.Description,
			Fix:         fixEntry(s.Fix),
		})
	}
	return entry
}

func fixEntry(edit *fix.TextEdit) *FixEntry {
	if edit == nil {
		return nil
	}
	return &FixEntry{
		StartOffset: edit.StartOffset,
		EndOffset:   edit.EndOffset,
		NewText:     edit.NewText,
	}
}
