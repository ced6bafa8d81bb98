package lint

import (
	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/fix"
	"github.com/yaklabco/gojslint/pkg/jsast"
)

// Fixability states whether a diagnostic carries an automatically applicable
// rewrite or requires human judgment.
type Fixability string

const (
	// FixabilityFixable marks diagnostics with an attached fix edit.
	FixabilityFixable Fixability = "fixable"

	// FixabilityManual marks diagnostics that need a human decision.
	FixabilityManual Fixability = "manual"
)

// Diagnostic is a single finalized lint message. Immutable once constructed.
type Diagnostic struct {
	// RuleID is the name of the rule that produced this diagnostic. For
	// composed rules this is the composed name.
	RuleID string

	// Severity is the resolved severity (warn or error; off never reaches
	// a diagnostic).
	Severity config.Severity

	// Category is the owning rule's category.
	Category string

	// Kind is the owning rule's kind label ("problem", "suggestion",
	// "layout"), used by the combined rule name format.
	Kind string

	// Fixability is "fixable" when Fix is attached, "manual" otherwise.
	Fixability Fixability

	// Message is the rendered message text.
	Message string

	// Line and Column are the 1-based start position.
	Line   int
	Column int

	// EndLine and EndColumn are the 1-based end position.
	EndLine   int
	EndColumn int

	// NodeKind names the syntax-tree node kind the diagnostic was
	// reported against (empty for position-only reports).
	NodeKind string

	// Fix is the automatic rewrite for this diagnostic, if any. Offsets
	// refer to the file content the rule analyzed.
	Fix *fix.TextEdit

	// Suggestions are alternative manual rewrites. Mutually exclusive
	// with Fix.
	Suggestions []Suggestion
}

// HasFix returns true if this diagnostic carries an automatic fix.
func (d *Diagnostic) HasFix() bool {
	return d.Fix != nil
}

// SourcePosition returns the diagnostic position as a SourcePosition.
func (d *Diagnostic) SourcePosition() jsast.SourcePosition {
	return jsast.SourcePosition{
		StartLine:   d.Line,
		StartColumn: d.Column,
		EndLine:     d.EndLine,
		EndColumn:   d.EndColumn,
	}
}

// Suggestion is a finalized alternative rewrite attached to a diagnostic.
type Suggestion struct {
	// Description explains what applying the suggestion does.
	Description string

	// Fix is the concrete edit for this suggestion.
	Fix *fix.TextEdit
}

// SuggestionDescriptor describes one suggestion in a report call.
type SuggestionDescriptor struct {
	// Description explains what applying the suggestion does.
	Description string

	// Fix builds the suggestion's edit using the fixer capability.
	Fix func(f *fix.Fixer) *fix.TextEdit
}

// ReportDescriptor is the argument to RuleContext.Report. At most one of
// Fix and Suggestions is meaningful; when both are set, a successfully
// evaluated Fix wins.
type ReportDescriptor struct {
	// Node is the syntax-tree node the violation is reported against.
	// May be nil for position-only reports on empty files.
	Node *jsast.Node

	// MessageID selects the template from the rule's Messages map.
	MessageID string

	// Data supplies {{placeholder}} substitutions for the template.
	Data map[string]string

	// Fix builds the automatic rewrite using the fixer capability.
	// Only honored when the owning rule is Fixable.
	Fix func(f *fix.Fixer) *fix.TextEdit

	// Suggestions are alternative manual rewrites.
	Suggestions []SuggestionDescriptor
}
