// Package lint provides the rule engine, diagnostics, suppression handling,
// and registry for gojslint.
package lint

import (
	"strings"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/jsast"
)

// RuleKind classifies what a rule checks. Kinds are ordered by strictness:
// Problem > Suggestion > Layout.
type RuleKind int

const (
	// RuleKindLayout marks rules about formatting and whitespace.
	RuleKindLayout RuleKind = iota

	// RuleKindSuggestion marks rules proposing a better way to write code.
	RuleKindSuggestion

	// RuleKindProblem marks rules reporting likely bugs.
	RuleKindProblem
)

// String returns the lowercase kind name.
func (k RuleKind) String() string {
	switch k {
	case RuleKindProblem:
		return "problem"
	case RuleKindSuggestion:
		return "suggestion"
	case RuleKindLayout:
		return "layout"
	default:
		return "unknown"
	}
}

// IsValid reports whether k is one of the declared kinds.
func (k RuleKind) IsValid() bool {
	return k >= RuleKindLayout && k <= RuleKindProblem
}

// VisitorFunc is called for every node of a subscribed kind during the walk.
type VisitorFunc func(node *jsast.Node)

// VisitorMap maps node kinds to visitor callbacks. The synthetic
// jsast.KindFile key registers a whole-file visitor that fires exactly once
// per file, with the root node, before the per-node walk.
type VisitorMap map[jsast.NodeKind]VisitorFunc

// Rule is a declarative lint rule definition.
//
// Rules are immutable once constructed: the engine, registry, and composer
// never modify a registered rule, and composition builds a new Rule from its
// inputs. A Rule subscribes to node kinds by returning a VisitorMap from
// Create; visitors report violations through the RuleContext they were
// created with.
type Rule struct {
	// Name uniquely identifies the rule, optionally namespaced as
	// "plugin/rule" (e.g., "style/max-params").
	Name string

	// Kind classifies the rule: problem, suggestion, or layout.
	Kind RuleKind

	// Description explains what the rule checks.
	Description string

	// Category groups related rules for reporting (e.g., "functional").
	Category string

	// Recommended is the severity this rule carries in the recommended
	// preset. SeverityOff means the rule is opt-in.
	Recommended config.Severity

	// Fixable indicates the rule can propose automatic text rewrites.
	Fixable bool

	// Messages maps messageId to a template with {{placeholder}} syntax.
	Messages map[string]string

	// Create builds the rule's visitors for one file analysis. It is
	// invoked once per file with a fresh RuleContext.
	Create func(ctx *RuleContext) VisitorMap
}

// ShortName returns the rule name without its plugin namespace.
func (r *Rule) ShortName() string {
	if idx := strings.LastIndex(r.Name, "/"); idx >= 0 {
		return r.Name[idx+1:]
	}
	return r.Name
}

// Validate checks the structural requirements every rule must meet.
// Violations are configuration errors: they indicate a mistake by the rule
// author and are raised at registration time, never at dispatch time.
func (r *Rule) Validate() error {
	if r == nil {
		return newConfigError("rule is nil")
	}
	if strings.TrimSpace(r.Name) == "" {
		return newConfigError("rule has an empty name")
	}
	if !r.Kind.IsValid() {
		return newConfigError("rule %q has invalid kind %d", r.Name, int(r.Kind))
	}
	if strings.TrimSpace(r.Description) == "" {
		return newConfigError("rule %q has an empty description", r.Name)
	}
	if len(r.Messages) == 0 {
		return newConfigError("rule %q has no message templates", r.Name)
	}
	if r.Create == nil {
		return newConfigError("rule %q has no visitor factory", r.Name)
	}
	return nil
}

// Plugin bundles rules under a shared namespace.
type Plugin struct {
	// Name is the namespace prefix (e.g., "style").
	Name string

	// Rules are the plugin's rule definitions, named WITHOUT the prefix.
	Rules []*Rule
}
