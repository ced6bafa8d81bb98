package rules

import (
	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/fix"
	"github.com/yaklabco/gojslint/pkg/jsast"
	"github.com/yaklabco/gojslint/pkg/lint"
)

// NewNoVarRule creates the no-var rule: var declarations should use let or
// const. The fix rewrites the var keyword to let, which preserves program
// behavior except for hoisting edge cases the author should review.
func NewNoVarRule() *lint.Rule {
	return &lint.Rule{
		Name:        "no-var",
		Kind:        lint.RuleKindSuggestion,
		Description: "Require let or const instead of var",
		Category:    "modernization",
		Recommended: config.SeverityWarn,
		Fixable:     true,
		Messages: map[string]string{
			"useLet": "Unexpected var, use let or const instead.",
		},
		Create: func(ctx *lint.RuleContext) lint.VisitorMap {
			return lint.VisitorMap{
				jsast.KindVariableDeclaration: func(node *jsast.Node) {
					ctx.Report(lint.ReportDescriptor{
						Node:      node,
						MessageID: "useLet",
						Fix: func(f *fix.Fixer) *fix.TextEdit {
							end := node.Start + len("var")
							if node.Start < 0 || end > len(ctx.File.Content) {
								return nil
							}
							if string(ctx.File.Content[node.Start:end]) != "var" {
								return nil
							}
							return f.ReplaceRange(node.Start, end, "let")
						},
					})
				},
			}
		},
	}
}
