package reporter_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/lint"
	"github.com/yaklabco/gojslint/pkg/reporter"
	"github.com/yaklabco/gojslint/pkg/runner"
)

// The summary format goes through the analysis facade rather than reading
// runner.Result directly. The issue count it returns must still match the
// raw diagnostic count so exit codes stay consistent across formats.
func TestReporter_FacadeReturnsIssueCount(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatSummary,
		Color:  "never",
	})
	require.NoError(t, err)

	messages := []lint.Diagnostic{
		{
			RuleID:     "no-loops",
			Severity:   config.SeverityError,
			Category:   "functional",
			Fixability: lint.FixabilityManual,
			Message:    "Unexpected for loop.",
			Line:       2,
			Column:     1,
		},
		{
			RuleID:     "no-var",
			Severity:   config.SeverityWarn,
			Category:   "declarations",
			Fixability: lint.FixabilityManual,
			Message:    "Use let or const instead of var.",
			Line:       7,
			Column:     1,
		},
		{
			RuleID:     "no-var",
			Severity:   config.SeverityWarn,
			Category:   "declarations",
			Fixability: lint.FixabilityManual,
			Message:    "Use let or const instead of var.",
			Line:       9,
			Column:     5,
		},
	}

	result := &runner.Result{
		Files: []runner.FileOutcome{{
			Path: "src/app.js",
			Result: &lint.PipelineResult{
				LintResult: lint.NewLintResult("src/app.js", messages),
				Path:       "src/app.js",
			},
		}},
		Stats: runner.Stats{
			FilesProcessed:        1,
			FilesWithIssues:       1,
			DiagnosticsTotal:      3,
			DiagnosticsBySeverity: map[string]int{"error": 1, "warn": 2},
		},
	}

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NotEmpty(t, buf.String())
}
