package analysis

import "time"

// Report is the aggregate view of one lint run, computed once by Analyze
// and shared by every renderer.
type Report struct {
	// Diagnostics is the flat list for detailed output.
	Diagnostics []DiagnosticEntry `json:"diagnostics,omitempty"`

	// ByFile groups diagnostics by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByRule groups diagnostics by rule.
	ByRule []RuleAnalysis `json:"byRule,omitempty"`

	// Totals holds the run-wide counters.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// DiagnosticEntry is one diagnostic in report form. Positions are
// 1-based; offsets in the attached fix are byte offsets.
type DiagnosticEntry struct {
	FilePath    string            `json:"filePath"`
	RuleID      string            `json:"ruleId"`
	Category    string            `json:"category,omitempty"`
	Severity    string            `json:"severity"`
	Message     string            `json:"message"`
	Line        int               `json:"line"`
	Column      int               `json:"column"`
	EndLine     int               `json:"endLine"`
	EndColumn   int               `json:"endColumn"`
	NodeKind    string            `json:"nodeKind,omitempty"`
	Fixable     bool              `json:"fixable"`
	Fix         *FixEntry         `json:"fix,omitempty"`
	Suggestions []SuggestionEntry `json:"suggestions,omitempty"`
}

// FixEntry is the byte-offset rewrite attached to a fixable diagnostic.
type FixEntry struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// SuggestionEntry is a manual rewrite offered alongside a diagnostic.
type SuggestionEntry struct {
	Description string    `json:"description"`
	Fix         *FixEntry `json:"fix,omitempty"`
}

// Totals holds the run-wide counters.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	Issues          int `json:"totalIssues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Fixable         int `json:"fixable"`
}

// HasIssues reports whether any diagnostics were recorded.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// HasErrors reports whether any error-severity diagnostics were recorded.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileAnalysis is the per-file aggregate: counts plus the names of the
// rules that fired there.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Rules    []string `json:"rules,omitempty"`
}

// RuleAnalysis is the per-rule aggregate: counts plus the files the rule
// fired in.
type RuleAnalysis struct {
	RuleID   string   `json:"ruleId"`
	Category string   `json:"category,omitempty"`
	Kind     string   `json:"kind,omitempty"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Fixable  bool     `json:"fixable"`
	Files    []string `json:"files,omitempty"`
}
