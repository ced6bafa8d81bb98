package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/gojslint/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Destinations. Writer receives results, ErrorWriter receives
	// per-file failure notes.
	Writer      io.Writer
	ErrorWriter io.Writer

	// Format selects the output format.
	Format Format

	// Color is "auto", "always", or "never".
	Color string

	// Presentation knobs.

	// ShowContext includes the offending source line under each diagnostic.
	ShowContext bool

	// ShowSummary appends aggregate statistics after results.
	ShowSummary bool

	// GroupByFile clusters diagnostics under a per-file header.
	GroupByFile bool

	// Compact minifies output where the format supports it (JSON).
	Compact bool

	// PerFile emits a separate table per file instead of one combined table.
	PerFile bool

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat config.RuleFormat

	// SummaryOrder controls which aggregate table leads in summary output.
	SummaryOrder config.SummaryOrder

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string

	// Version is the tool version embedded in machine-readable output
	// (SARIF). Empty means a development build.
	Version string
}

// withDefaults fills unset destinations and format.
func (o Options) withDefaults() Options {
	if o.Writer == nil {
		o.Writer = os.Stdout
	}
	if o.ErrorWriter == nil {
		o.ErrorWriter = os.Stderr
	}
	if o.Format == "" {
		o.Format = FormatText
	}
	return o
}

// DefaultOptions returns the options used when the CLI passes nothing.
func DefaultOptions() Options {
	return Options{
		Color:        "auto",
		ShowContext:  true,
		ShowSummary:  true,
		GroupByFile:  true,
		RuleFormat:   config.RuleFormatFull,
		SummaryOrder: config.SummaryOrderRules,
	}.withDefaults()
}
