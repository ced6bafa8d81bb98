package analysis

import "github.com/yaklabco/gojslint/pkg/config"

// SortField names an ordering for the ByFile and ByRule views.
type SortField string

const (
	// SortByCount orders by issue count.
	SortByCount SortField = "count"
	// SortByAlpha orders by rule name or file path.
	SortByAlpha SortField = "alpha"
	// SortBySeverity orders errors-first.
	SortBySeverity SortField = "severity"
)

// IsValid reports whether s names a known sort order.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	}
	return false
}

// Options configures the Analyze function. The Include flags let callers
// skip views they will not render; totals are always computed.
type Options struct {
	// IncludeDiagnostics includes the flat diagnostics list.
	IncludeDiagnostics bool

	// IncludeByFile includes the per-file view.
	IncludeByFile bool

	// IncludeByRule includes the per-rule view.
	IncludeByRule bool

	// SortBy orders the ByFile and ByRule views.
	SortBy SortField

	// SortDesc reverses count order (highest first). Alpha and severity
	// orders ignore it.
	SortDesc bool

	// RuleFormat controls how rule identifiers appear. Renderers apply
	// it; the report itself stores raw rule names.
	RuleFormat config.RuleFormat

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with every view enabled, ordered by
// descending issue count.
func DefaultOptions() Options {
	return Options{
		IncludeDiagnostics: true,
		IncludeByFile:      true,
		IncludeByRule:      true,
		SortBy:             SortByCount,
		SortDesc:           true,
		RuleFormat:         config.RuleFormatFull,
	}
}
