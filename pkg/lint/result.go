package lint

import "github.com/yaklabco/gojslint/pkg/config"

// LintResult holds every diagnostic for one analyzed file.
//
// The four counts are a pure function of Messages: they are derived by
// NewLintResult and never tracked as independent counters, so they cannot
// drift from the message list.
type LintResult struct {
	// FilePath is the path of the analyzed file.
	FilePath string

	// Messages are the surviving diagnostics in report order.
	Messages []Diagnostic

	// ErrorCount is the number of error-severity messages.
	ErrorCount int

	// WarningCount is the number of warn-severity messages.
	WarningCount int

	// FixableErrorCount is the number of error-severity messages with a fix.
	FixableErrorCount int

	// FixableWarningCount is the number of warn-severity messages with a fix.
	FixableWarningCount int
}

// NewLintResult builds a LintResult for path, deriving all counts from
// messages.
func NewLintResult(path string, messages []Diagnostic) *LintResult {
	result := &LintResult{
		FilePath: path,
		Messages: messages,
	}

	for i := range messages {
		fixable := messages[i].HasFix()
		switch messages[i].Severity {
		case config.SeverityError:
			result.ErrorCount++
			if fixable {
				result.FixableErrorCount++
			}
		case config.SeverityWarn:
			result.WarningCount++
			if fixable {
				result.FixableWarningCount++
			}
		}
	}

	return result
}

// HasIssues returns true if any diagnostics were found.
func (r *LintResult) HasIssues() bool {
	return len(r.Messages) > 0
}

// HasErrors returns true if any error-severity diagnostics were found.
func (r *LintResult) HasErrors() bool {
	return r.ErrorCount > 0
}

// IssueCount returns the total number of diagnostics.
func (r *LintResult) IssueCount() int {
	return len(r.Messages)
}

// FixableCount returns the number of diagnostics with an automatic fix.
func (r *LintResult) FixableCount() int {
	return r.FixableErrorCount + r.FixableWarningCount
}
