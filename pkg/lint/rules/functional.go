package rules

import (
	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/jsast"
	"github.com/yaklabco/gojslint/pkg/lint"
)

// NewNoLoopsRule creates the no-loops rule: imperative loop statements
// should be replaced with array methods.
func NewNoLoopsRule() *lint.Rule {
	return &lint.Rule{
		Name:        "no-loops",
		Kind:        lint.RuleKindSuggestion,
		Description: "Disallow imperative loop statements",
		Category:    "functional",
		Recommended: config.SeverityWarn,
		Messages: map[string]string{
			"unexpected": "Unexpected {{type}} loop, prefer map, filter, or reduce.",
		},
		Create: func(ctx *lint.RuleContext) lint.VisitorMap {
			report := func(node *jsast.Node) {
				ctx.Report(lint.ReportDescriptor{
					Node:      node,
					MessageID: "unexpected",
					Data:      map[string]string{"type": loopKeyword(node.Kind)},
				})
			}
			return lint.VisitorMap{
				jsast.KindForStatement:   report,
				jsast.KindForInStatement: report,
				jsast.KindWhileStatement: report,
				jsast.KindDoStatement:    report,
			}
		},
	}
}

// loopKeyword names the loop form for the diagnostic message.
func loopKeyword(kind jsast.NodeKind) string {
	switch kind {
	case jsast.KindForStatement:
		return "for"
	case jsast.KindForInStatement:
		return "for-in/for-of"
	case jsast.KindWhileStatement:
		return "while"
	case jsast.KindDoStatement:
		return "do-while"
	default:
		return "loop"
	}
}

// NewNoClassRule creates the no-class rule: class syntax should be replaced
// with functions and plain objects.
func NewNoClassRule() *lint.Rule {
	return &lint.Rule{
		Name:        "no-class",
		Kind:        lint.RuleKindSuggestion,
		Description: "Disallow class declarations and expressions",
		Category:    "functional",
		Recommended: config.SeverityWarn,
		Messages: map[string]string{
			"unexpected": "Unexpected class, use functions and plain objects.",
		},
		Create: func(ctx *lint.RuleContext) lint.VisitorMap {
			report := func(node *jsast.Node) {
				ctx.Report(lint.ReportDescriptor{
					Node:      node,
					MessageID: "unexpected",
				})
			}
			return lint.VisitorMap{
				jsast.KindClassDeclaration: report,
				jsast.KindClassExpression:  report,
			}
		},
	}
}

// mutationTargetMax caps how much of the assigned expression is echoed in
// the message.
const mutationTargetMax = 40

// NewNoMutationRule creates the no-mutation rule: reassignment and mutating
// update operators are reported.
//
// Declarations with initializers are not mutations; only assignment and
// update expressions on existing bindings are flagged.
func NewNoMutationRule() *lint.Rule {
	return &lint.Rule{
		Name:        "no-mutation",
		Kind:        lint.RuleKindSuggestion,
		Description: "Disallow mutating variables and object members",
		Category:    "functional",
		Recommended: config.SeverityWarn,
		Messages: map[string]string{
			"mutation": "Unexpected mutation of {{target}}, prefer immutable data.",
		},
		Create: func(ctx *lint.RuleContext) lint.VisitorMap {
			report := func(node *jsast.Node) {
				ctx.Report(lint.ReportDescriptor{
					Node:      node,
					MessageID: "mutation",
					Data:      map[string]string{"target": mutationTarget(node)},
				})
			}
			return lint.VisitorMap{
				jsast.KindAssignmentExpression:          report,
				jsast.KindAugmentedAssignmentExpression: report,
				jsast.KindUpdateExpression:              report,
			}
		},
	}
}

// mutationTarget extracts the mutated expression's source text for the
// message. The first child is the assignment target (or the update
// expression's argument).
func mutationTarget(node *jsast.Node) string {
	target := node.FirstChild
	if target == nil {
		return "value"
	}

	text := string(target.Text())
	if text == "" {
		return "value"
	}
	if len(text) > mutationTargetMax {
		text = text[:mutationTargetMax] + "..."
	}
	return text
}
