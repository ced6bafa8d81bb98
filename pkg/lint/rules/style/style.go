// Package style provides the namespaced style/ rule plugin for gojslint.
// Its rules are registered under "style/<name>" via lint.RegisterPlugin.
package style

import (
	"strconv"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/jsast"
	"github.com/yaklabco/gojslint/pkg/lint"
)

// defaultMaxParams is the parameter limit when the "max" option is unset.
const defaultMaxParams = 4

// NewMaxParamsRule creates the max-params rule: functions with long
// parameter lists should take an options object instead. Opt-in (off in
// the recommended preset).
func NewMaxParamsRule() *lint.Rule {
	return &lint.Rule{
		Name:        "max-params",
		Kind:        lint.RuleKindSuggestion,
		Description: "Enforce a maximum number of function parameters",
		Category:    "style",
		Recommended: config.SeverityOff,
		Messages: map[string]string{
			"tooMany": "Function has {{count}} parameters, maximum allowed is {{max}}.",
		},
		Create: func(ctx *lint.RuleContext) lint.VisitorMap {
			maxParams := ctx.OptionInt("max", defaultMaxParams)

			check := func(node *jsast.Node) {
				params := node.ChildByKind(jsast.KindFormalParameters)
				if params == nil {
					return
				}
				count := params.ChildCount()
				if count <= maxParams {
					return
				}
				ctx.Report(lint.ReportDescriptor{
					Node:      node,
					MessageID: "tooMany",
					Data: map[string]string{
						"count": strconv.Itoa(count),
						"max":   strconv.Itoa(maxParams),
					},
				})
			}

			return lint.VisitorMap{
				jsast.KindFunctionDeclaration: check,
				jsast.KindFunctionExpression:  check,
				jsast.KindArrowFunction:       check,
				jsast.KindMethodDefinition:    check,
			}
		},
	}
}

// NewNoEmptyBlockRule creates the no-empty-block rule. A block containing
// only a comment counts as non-empty, matching the usual "intentionally
// blank" escape hatch.
func NewNoEmptyBlockRule() *lint.Rule {
	return &lint.Rule{
		Name:        "no-empty-block",
		Kind:        lint.RuleKindSuggestion,
		Description: "Disallow empty block statements",
		Category:    "style",
		Recommended: config.SeverityWarn,
		Messages: map[string]string{
			"empty": "Empty block statement.",
		},
		Create: func(ctx *lint.RuleContext) lint.VisitorMap {
			return lint.VisitorMap{
				jsast.KindStatementBlock: func(node *jsast.Node) {
					if node.HasChildren() {
						return
					}
					ctx.Report(lint.ReportDescriptor{
						Node:      node,
						MessageID: "empty",
					})
				},
			}
		},
	}
}

// Plugin returns the style plugin bundle for registration.
func Plugin() lint.Plugin {
	return lint.Plugin{
		Name: "style",
		Rules: []*lint.Rule{
			NewMaxParamsRule(),
			NewNoEmptyBlockRule(),
		},
	}
}
