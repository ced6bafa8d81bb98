package rules

import (
	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/fix"
	"github.com/yaklabco/gojslint/pkg/jsast"
	"github.com/yaklabco/gojslint/pkg/lint"
)

// NewNoConsoleRule creates the no-console rule: console calls are debugging
// leftovers that should not ship.
func NewNoConsoleRule() *lint.Rule {
	return &lint.Rule{
		Name:        "no-console",
		Kind:        lint.RuleKindSuggestion,
		Description: "Disallow the use of console",
		Category:    "debugging",
		Recommended: config.SeverityWarn,
		Messages: map[string]string{
			"unexpected": "Unexpected console statement.",
		},
		Create: func(ctx *lint.RuleContext) lint.VisitorMap {
			return lint.VisitorMap{
				jsast.KindMemberExpression: func(node *jsast.Node) {
					if !objectIsIdentifier(node, "console") {
						return
					}
					ctx.Report(lint.ReportDescriptor{
						Node:      node,
						MessageID: "unexpected",
						Suggestions: []lint.SuggestionDescriptor{{
							Description: "Remove this console call",
							Fix: func(f *fix.Fixer) *fix.TextEdit {
								stmt := enclosingStatement(node)
								if stmt == nil || stmt.Kind != jsast.KindExpressionStatement {
									return nil
								}
								return f.Delete(stmt.Start, stmt.End)
							},
						}},
					})
				},
			}
		},
	}
}

// NewNoDebuggerRule creates the no-debugger rule. A debugger statement left
// in shipped code halts execution under devtools, so the recommended
// severity is error and the fix deletes the statement.
func NewNoDebuggerRule() *lint.Rule {
	return &lint.Rule{
		Name:        "no-debugger",
		Kind:        lint.RuleKindProblem,
		Description: "Disallow debugger statements",
		Category:    "debugging",
		Recommended: config.SeverityError,
		Fixable:     true,
		Messages: map[string]string{
			"unexpected": "Unexpected debugger statement.",
		},
		Create: func(ctx *lint.RuleContext) lint.VisitorMap {
			return lint.VisitorMap{
				jsast.KindDebuggerStatement: func(node *jsast.Node) {
					ctx.Report(lint.ReportDescriptor{
						Node:      node,
						MessageID: "unexpected",
						Fix: func(f *fix.Fixer) *fix.TextEdit {
							return f.Delete(node.Start, node.End)
						},
					})
				},
			}
		},
	}
}

// NewNoEvalRule creates the no-eval rule: direct eval executes arbitrary
// strings as code.
func NewNoEvalRule() *lint.Rule {
	return &lint.Rule{
		Name:        "no-eval",
		Kind:        lint.RuleKindProblem,
		Description: "Disallow the use of eval",
		Category:    "security",
		Recommended: config.SeverityError,
		Messages: map[string]string{
			"unexpected": "eval() is not allowed, it executes arbitrary code.",
		},
		Create: func(ctx *lint.RuleContext) lint.VisitorMap {
			return lint.VisitorMap{
				jsast.KindCallExpression: func(node *jsast.Node) {
					callee := node.FirstChild
					if callee == nil || callee.Kind != jsast.KindIdentifier {
						return
					}
					if string(callee.Text()) != "eval" {
						return
					}
					ctx.Report(lint.ReportDescriptor{
						Node:      node,
						MessageID: "unexpected",
					})
				},
			}
		},
	}
}

// objectIsIdentifier reports whether the member expression's object is a
// bare identifier with the given name.
func objectIsIdentifier(member *jsast.Node, name string) bool {
	object := member.FirstChild
	if object == nil || object.Kind != jsast.KindIdentifier {
		return false
	}
	return string(object.Text()) == name
}

// enclosingStatement climbs to the nearest statement ancestor, or nil when
// the node is not inside one.
func enclosingStatement(node *jsast.Node) *jsast.Node {
	for cur := node.Parent; cur != nil; cur = cur.Parent {
		if cur.Kind.IsStatement() {
			return cur
		}
	}
	return nil
}
