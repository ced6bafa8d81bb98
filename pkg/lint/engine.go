package lint

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/yaklabco/gojslint/pkg/jsast"
)

// Engine coordinates parsing and rule execution for one file at a time.
// Concurrency across files belongs to the runner; an Engine itself holds
// no per-file state and is safe for concurrent use when its Parser is.
type Engine struct {
	// Parser parses source files into FileSnapshots.
	Parser Parser
}

// NewEngine creates an Engine around the given parser.
func NewEngine(parser Parser) *Engine {
	return &Engine{Parser: parser}
}

// AnalyzeFile reads, parses, and lints a single file from disk.
//
// With no rules to run the file is not even opened; the result is empty.
func (e *Engine) AnalyzeFile(ctx context.Context, path string, rules []ResolvedRule) (*LintResult, error) {
	if len(rules) == 0 {
		return NewLintResult(path, nil), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, categorizeReadError(path, err)
	}

	return e.AnalyzeContent(ctx, path, content, rules)
}

// AnalyzeContent parses and lints in-memory content.
func (e *Engine) AnalyzeContent(ctx context.Context, path string, content []byte, rules []ResolvedRule) (*LintResult, error) {
	if len(rules) == 0 {
		return NewLintResult(path, nil), nil
	}

	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParseFailure, path, err)
	}

	return e.AnalyzeSnapshot(ctx, snapshot, rules)
}

// AnalyzeSnapshot lints an already-parsed snapshot.
//
// Every rule's visitor factory runs first, then the tree is walked exactly
// once with all visitors dispatched by node kind. Diagnostics come back
// sorted by position, then rule name; the result's counts are derived from
// that final list.
func (e *Engine) AnalyzeSnapshot(ctx context.Context, snapshot *jsast.FileSnapshot, rules []ResolvedRule) (*LintResult, error) {
	if snapshot == nil {
		return NewLintResult("", nil), nil
	}
	if len(rules) == 0 {
		return NewLintResult(snapshot.Path, nil), nil
	}

	suppressions := BuildSuppressions(snapshot)

	table := newDispatchTable()
	for _, rr := range rules {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("analysis cancelled: %w", ctx.Err())
		default:
		}
		table.add(NewRuleContext(ctx, snapshot, rr, suppressions))
	}

	table.run(snapshot.Root)

	messages := table.collect()
	sortDiagnostics(messages)

	return NewLintResult(snapshot.Path, messages), nil
}

// sortDiagnostics orders messages by start position, then rule name.
// The sort is stable so one rule's repeated reports on a node keep their
// emission order.
func sortDiagnostics(diags []Diagnostic) {
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Column, b.Column); c != 0 {
			return c
		}
		return cmp.Compare(a.RuleID, b.RuleID)
	})
}
