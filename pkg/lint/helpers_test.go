package lint

import (
	"context"
	"sync/atomic"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/jsast"
)

// buildFile assembles a FileSnapshot around a hand-built tree.
func buildFile(content string, build func(root *jsast.Node)) *jsast.FileSnapshot {
	file := jsast.NewFileSnapshot("test.js", []byte(content))
	root := jsast.NewProgram(0, len(content))
	if build != nil {
		build(root)
	}
	jsast.SetFile(root, file)
	file.Root = root
	return file
}

// child appends a new node of the given kind under parent.
func child(parent *jsast.Node, kind jsast.NodeKind, start, end int) *jsast.Node {
	n := jsast.NewNode(kind, start, end)
	jsast.AppendChild(parent, n)
	return n
}

// kindCountRule builds a rule that reports once for every node of the
// subscribed kinds.
func kindCountRule(name string, kinds ...jsast.NodeKind) *Rule {
	return &Rule{
		Name:        name,
		Kind:        RuleKindSuggestion,
		Description: "Reports every node of the subscribed kinds",
		Category:    "test",
		Recommended: config.SeverityWarn,
		Messages:    map[string]string{"found": "Found a node."},
		Create: func(ctx *RuleContext) VisitorMap {
			vm := make(VisitorMap, len(kinds))
			for _, kind := range kinds {
				vm[kind] = func(node *jsast.Node) {
					ctx.Report(ReportDescriptor{Node: node, MessageID: "found"})
				}
			}
			return vm
		},
	}
}

// resolvedWarn wraps a rule as enabled at warn severity with no options.
func resolvedWarn(rule *Rule) ResolvedRule {
	return ResolvedRule{Rule: rule, Enabled: true, Severity: config.SeverityWarn}
}

// resolvedAt wraps a rule as enabled at the given severity.
func resolvedAt(rule *Rule, severity config.Severity) ResolvedRule {
	return ResolvedRule{Rule: rule, Enabled: true, Severity: severity}
}

// stubParser is a Parser producing a snapshot whose tree is shaped by the
// optional build callback. Parse calls are counted so tests can assert on
// parse activity.
type stubParser struct {
	calls atomic.Int64
	err   error
	build func(file *jsast.FileSnapshot, root *jsast.Node)
}

func (p *stubParser) Parse(_ context.Context, path string, content []byte) (*jsast.FileSnapshot, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}

	file := jsast.NewFileSnapshot(path, content)
	root := jsast.NewProgram(0, len(content))
	if p.build != nil {
		p.build(file, root)
	}
	jsast.SetFile(root, file)
	file.Root = root
	return file, nil
}
