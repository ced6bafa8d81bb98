// Package reporter formats lint results for terminals, editors, and CI.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gojslint/pkg/runner"
)

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result. It returns
	// the number of issues reported and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// builders maps each format to its reporter constructor.
var builders = map[Format]func(Options) Reporter{
	FormatText:    func(o Options) Reporter { return NewTextReporter(o) },
	FormatCompact: func(o Options) Reporter { return NewCompactReporter(o) },
	FormatTable:   func(o Options) Reporter { return NewTableReporter(o) },
	FormatJSON:    func(o Options) Reporter { return NewJSONReporter(o) },
	FormatSARIF:   func(o Options) Reporter { return NewSARIFReporter(o) },
	FormatDiff:    func(o Options) Reporter { return NewDiffReporter(o) },
	FormatSummary: func(o Options) Reporter { return newRendererFacade(NewSummaryRenderer(o), o) },
}

// New creates a Reporter for the given options.
func New(opts Options) (Reporter, error) {
	opts = opts.withDefaults()

	build, ok := builders[opts.Format]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
	return build(opts), nil
}
