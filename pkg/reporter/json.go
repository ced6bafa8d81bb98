package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gojslint/pkg/lint"
	"github.com/yaklabco/gojslint/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Modified    bool             `json:"modified,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	RuleID      string           `json:"ruleId"`
	Category    string           `json:"category,omitempty"`
	Severity    string           `json:"severity"`
	Fixability  string           `json:"fixability"`
	Message     string           `json:"message"`
	Line        int              `json:"line"`
	Column      int              `json:"column"`
	EndLine     int              `json:"endLine"`
	EndColumn   int              `json:"endColumn"`
	NodeKind    string           `json:"nodeKind,omitempty"`
	Fix         *JSONFix         `json:"fix,omitempty"`
	Suggestions []JSONSuggestion `json:"suggestions,omitempty"`
}

// JSONFix represents a proposed fix.
type JSONFix struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// JSONSuggestion represents a manual rewrite offered with a diagnostic.
type JSONSuggestion struct {
	Description string   `json:"description"`
	Fix         *JSONFix `json:"fix,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesModified   int            `json:"filesModified"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	Fixable         int            `json:"fixable"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	// Pre-allocate if we have files
	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        file.Path,
			Diagnostics: make([]JSONDiagnostic, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Result != nil {
			fileResult.Modified = file.Result.Written

			if file.Result.LintResult != nil {
				messages := file.Result.LintResult.Messages
				for i := range messages {
					jsonDiag := buildJSONDiagnostic(&messages[i])
					fileResult.Diagnostics = append(fileResult.Diagnostics, jsonDiag)
					output.Summary.TotalIssues++
					if jsonDiag.Fix != nil {
						output.Summary.Fixable++
					}
					output.Summary.BySeverity[jsonDiag.Severity]++
				}
			}
		}

		if len(fileResult.Diagnostics) > 0 {
			output.Summary.FilesWithIssues++
		}
		if fileResult.Modified {
			output.Summary.FilesModified++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}

// buildJSONDiagnostic converts a lint diagnostic to its JSON shape.
func buildJSONDiagnostic(diag *lint.Diagnostic) JSONDiagnostic {
	jsonDiag := JSONDiagnostic{
		RuleID:     diag.RuleID,
		Category:   diag.Category,
		Severity:   diag.Severity.String(),
		Fixability: string(diag.Fixability),
		Message:    diag.Message,
		Line:       diag.Line,
		Column:     diag.Column,
		EndLine:    diag.EndLine,
		EndColumn:  diag.EndColumn,
		NodeKind:   diag.NodeKind,
	}

	if diag.Fix != nil {
		jsonDiag.Fix = &JSONFix{
			StartOffset: diag.Fix.StartOffset,
			EndOffset:   diag.Fix.EndOffset,
			NewText:     diag.Fix.NewText,
		}
	}

	for _, s := range diag.Suggestions {
		js := JSONSuggestion{Description: s.Description}
		if s.Fix != nil {
			js.Fix = &JSONFix{
				StartOffset: s.Fix.StartOffset,
				EndOffset:   s.Fix.EndOffset,
				NewText:     s.Fix.NewText,
			}
		}
		jsonDiag.Suggestions = append(jsonDiag.Suggestions, js)
	}

	return jsonDiag
}
