package runner

import "github.com/yaklabco/gojslint/pkg/lint"

// FileOutcome wraps PipelineResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// May be nil if the file encountered an error during processing.
	Result *lint.PipelineResult

	// Error is set if the file could not be processed. The run itself
	// continues; callers surface these as warnings.
	Error error

	// CacheHit is true if the result came from the cache without analysis.
	CacheHit bool
}

// Diagnostics returns the outcome's messages, or nil when the file
// errored or produced no lint result.
func (o FileOutcome) Diagnostics() []lint.Diagnostic {
	if o.Result == nil || o.Result.LintResult == nil {
		return nil
	}
	return o.Result.Messages
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files skipped (e.g., due to concurrent modification).
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// CacheHits is the number of files answered from the result cache.
	CacheHits int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsFixable is the number of diagnostics that have auto-fixes.
	DiagnosticsFixable int

	// DiagnosticsBySeverity maps severity names to counts.
	DiagnosticsBySeverity map[string]int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// FilesModified is the number of files that were modified by fixes.
	FilesModified int

	// DiagnosticsFixed is the total number of edits applied across all files.
	DiagnosticsFixed int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, in the same
	// order Discover produced them.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any diagnostics with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsBySeverity["error"] > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// TotalIssues counts diagnostics across all files.
func (r *Result) TotalIssues() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, outcome := range r.Files {
		total += len(outcome.Diagnostics())
	}
	return total
}

// HasFixable reports whether any diagnostic carries an auto-fix.
func (r *Result) HasFixable() bool {
	if r == nil {
		return false
	}
	for _, outcome := range r.Files {
		msgs := outcome.Diagnostics()
		for i := range msgs {
			if msgs[i].HasFix() {
				return true
			}
		}
	}
	return false
}

// LintResults returns the per-file lint results for files that produced one,
// in run order. Reporters consume this view.
func (r *Result) LintResults() []*lint.LintResult {
	if r == nil {
		return nil
	}
	results := make([]*lint.LintResult, 0, len(r.Files))
	for _, outcome := range r.Files {
		if outcome.Result != nil && outcome.Result.LintResult != nil {
			results = append(results, outcome.Result.LintResult)
		}
	}
	return results
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	if outcome.CacheHit {
		r.Stats.CacheHits++
	}

	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
	}

	if outcome.Result.Written {
		r.Stats.FilesModified++
	}

	r.Stats.DiagnosticsFixed += outcome.Result.EditsApplied

	if outcome.Result.LintResult != nil {
		diagCount := outcome.Result.IssueCount()
		r.Stats.DiagnosticsTotal += diagCount
		r.Stats.DiagnosticsFixable += outcome.Result.FixableCount()

		if diagCount > 0 {
			r.Stats.FilesWithIssues++
		}

		for _, diag := range outcome.Result.Messages {
			r.Stats.DiagnosticsBySeverity[diag.Severity.String()]++
		}
	}
}
