package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/jsast"
	"github.com/yaklabco/gojslint/pkg/lint"
)

// buildConsoleCall assembles the tree for "<object>.log(x);".
func buildConsoleCall(content, object string) *jsast.FileSnapshot {
	return buildFile(content, func(root *jsast.Node) {
		stmtEnd := strings.Index(content, ";") + 1
		stmt := child(root, jsast.KindExpressionStatement, 0, stmtEnd)
		call := child(stmt, jsast.KindCallExpression, 0, stmtEnd-1)
		member := child(call, jsast.KindMemberExpression, 0, len(object)+4)
		child(member, jsast.KindIdentifier, 0, len(object))
		child(member, jsast.KindIdentifier, len(object)+1, len(object)+4)
		child(call, jsast.KindArguments, len(object)+4, stmtEnd-1)
	})
}

func TestNoConsoleRule(t *testing.T) {
	content := "console.log(x);\n"
	file := buildConsoleCall(content, "console")

	result := runRule(t, NewNoConsoleRule(), file, nil)

	require.Len(t, result.Messages, 1)
	d := result.Messages[0]
	assert.Equal(t, "no-console", d.RuleID)
	assert.Equal(t, "Unexpected console statement.", d.Message)

	// Not auto-fixable, but carries a removal suggestion for the
	// enclosing statement.
	assert.False(t, d.HasFix())
	assert.Equal(t, lint.FixabilityManual, d.Fixability)
	require.Len(t, d.Suggestions, 1)
	sug := d.Suggestions[0]
	assert.Equal(t, "Remove this console call", sug.Description)
	require.NotNil(t, sug.Fix)
	assert.Equal(t, 0, sug.Fix.StartOffset)
	assert.Equal(t, strings.Index(content, ";")+1, sug.Fix.EndOffset)
	assert.Empty(t, sug.Fix.NewText)
}

func TestNoConsoleRule_OtherObjects(t *testing.T) {
	content := "logger.log(x);\n"
	file := buildConsoleCall(content, "logger")

	result := runRule(t, NewNoConsoleRule(), file, nil)
	assert.Empty(t, result.Messages)
}

func TestNoConsoleRule_NestedMemberReportsOnce(t *testing.T) {
	// console.log.bind(y); has two member expressions; only the inner
	// one has console as its object identifier.
	content := "console.log.bind(y);\n"
	file := buildFile(content, func(root *jsast.Node) {
		stmt := child(root, jsast.KindExpressionStatement, 0, 20)
		call := child(stmt, jsast.KindCallExpression, 0, 19)
		outer := child(call, jsast.KindMemberExpression, 0, 16)
		inner := child(outer, jsast.KindMemberExpression, 0, 11)
		child(inner, jsast.KindIdentifier, 0, 7)
		child(inner, jsast.KindIdentifier, 8, 11)
		child(outer, jsast.KindIdentifier, 12, 16)
	})

	result := runRule(t, NewNoConsoleRule(), file, nil)
	assert.Len(t, result.Messages, 1)
}

func TestNoDebuggerRule(t *testing.T) {
	content := "debugger;\n"
	file := buildFile(content, func(root *jsast.Node) {
		child(root, jsast.KindDebuggerStatement, 0, 9)
	})

	result := runRule(t, NewNoDebuggerRule(), file, nil)

	require.Len(t, result.Messages, 1)
	d := result.Messages[0]
	assert.Equal(t, "no-debugger", d.RuleID)
	assert.Equal(t, config.SeverityError, d.Severity)
	assert.Equal(t, "DebuggerStatement", d.NodeKind)

	require.True(t, d.HasFix())
	assert.Equal(t, 0, d.Fix.StartOffset)
	assert.Equal(t, 9, d.Fix.EndOffset)
	assert.Empty(t, d.Fix.NewText)
}

func TestNoDebuggerRule_Metadata(t *testing.T) {
	rule := NewNoDebuggerRule()

	assert.Equal(t, lint.RuleKindProblem, rule.Kind)
	assert.Equal(t, config.SeverityError, rule.Recommended)
	assert.True(t, rule.Fixable)
}

func TestNoEvalRule(t *testing.T) {
	tests := []struct {
		name      string
		callee    string
		wantDiags int
	}{
		{name: "direct eval", callee: "eval", wantDiags: 1},
		{name: "different function", callee: "myEval", wantDiags: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := tt.callee + "(code);\n"
			file := buildFile(content, func(root *jsast.Node) {
				stmt := child(root, jsast.KindExpressionStatement, 0, len(content)-1)
				call := child(stmt, jsast.KindCallExpression, 0, len(content)-2)
				child(call, jsast.KindIdentifier, 0, len(tt.callee))
			})

			result := runRule(t, NewNoEvalRule(), file, nil)
			assert.Len(t, result.Messages, tt.wantDiags)

			if tt.wantDiags > 0 {
				assert.Equal(t, "no-eval", result.Messages[0].RuleID)
				assert.Equal(t, config.SeverityError, result.Messages[0].Severity)
			}
		})
	}
}

func TestNoEvalRule_MethodCallIgnored(t *testing.T) {
	// obj.eval(x) is a member call, not a direct eval.
	content := "obj.eval(x);\n"
	file := buildFile(content, func(root *jsast.Node) {
		stmt := child(root, jsast.KindExpressionStatement, 0, 12)
		call := child(stmt, jsast.KindCallExpression, 0, 11)
		member := child(call, jsast.KindMemberExpression, 0, 8)
		child(member, jsast.KindIdentifier, 0, 3)
		child(member, jsast.KindIdentifier, 4, 8)
	})

	result := runRule(t, NewNoEvalRule(), file, nil)
	assert.Empty(t, result.Messages)
}
