package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/jsast"
	"github.com/yaklabco/gojslint/pkg/lint"
)

// buildFile assembles a FileSnapshot around a hand-built tree, so rule
// tests control the exact node shapes. Offsets in the build callback refer
// to content.
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

// child creates a node spanning [start, end) and appends it to parent.
func child(parent *jsast.Node, kind jsast.NodeKind, start, end int) *jsast.Node {
	n := jsast.NewNode(kind, start, end)
	jsast.AppendChild(parent, n)
	return n
}

// runRule lints the snapshot with a single rule at its recommended
// severity (warn when the rule is recommended off).
func runRule(t *testing.T, rule *lint.Rule, file *jsast.FileSnapshot, options map[string]any) *lint.LintResult {
	t.Helper()

	severity := rule.Recommended
	if severity == config.SeverityOff {
		severity = config.SeverityWarn
	}

	resolved := lint.ResolvedRule{
		Rule:     rule,
		Enabled:  true,
		Severity: severity,
		Options:  options,
	}

	engine := lint.NewEngine(nil)
	result, err := engine.AnalyzeSnapshot(context.Background(), file, []lint.ResolvedRule{resolved})
	require.NoError(t, err)
	return result
}
