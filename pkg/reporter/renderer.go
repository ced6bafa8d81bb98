package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gojslint/pkg/analysis"
	"github.com/yaklabco/gojslint/pkg/runner"
)

// Renderer formats an analysis.Report for output. Unlike a Reporter it
// never sees the raw runner result, only the aggregated view.
type Renderer interface {
	// Render writes the formatted report to the configured output.
	Render(ctx context.Context, report *analysis.Report) error
}

var _ Reporter = (*reporterFacade)(nil)

// reporterFacade adapts a Renderer to the Reporter interface by running
// the analysis step itself.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

func newRendererFacade(renderer Renderer, opts Options) *reporterFacade {
	return &reporterFacade{
		renderer: renderer,
		analysisOpts: analysis.Options{
			IncludeDiagnostics: true,
			IncludeByFile:      true,
			IncludeByRule:      true,
			SortBy:             analysis.SortByCount,
			SortDesc:           true,
			RuleFormat:         opts.RuleFormat,
			WorkingDir:         opts.WorkingDir,
		},
	}
}

// Report implements Reporter. The issue count comes from the aggregated
// totals so it matches what the renderer displayed.
func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.Issues, nil
}
