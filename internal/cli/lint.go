package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gojslint/internal/configloader"
	"github.com/yaklabco/gojslint/internal/logging"
	"github.com/yaklabco/gojslint/pkg/cache"
	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/lint"
	"github.com/yaklabco/gojslint/pkg/lint/rules"
	"github.com/yaklabco/gojslint/pkg/parser/treesitter"
	"github.com/yaklabco/gojslint/pkg/reporter"
	"github.com/yaklabco/gojslint/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format        string
	dialect       string
	preset        string
	ignore        []string
	enable        []string
	disable       []string
	fixRules      []string
	cacheLocation string
	strict        bool
	noContext     bool
	compact       bool
	perFile       bool
	ruleFormat    string
	summaryOrder  string
	cpuprofile    string
	memprofile    string
	traceFile     string
}

func newLintCommand(info BuildInfo) *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint JavaScript and TypeScript files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags, info.Version)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint JavaScript and TypeScript files for correctness and style issues.

By default, lints all .js, .jsx, .mjs, .cjs, .ts and .tsx files in the
current directory and subdirectories. Specify paths to lint specific
files or directories.

Examples:
  gojslint lint                    # Lint current directory
  gojslint lint src/               # Lint src directory
  gojslint lint app.ts             # Lint single file
  gojslint lint --fix              # Lint and auto-fix issues
  gojslint lint --fix --dry-run    # Show fixes without applying
  gojslint lint --format json      # Output as JSON for CI
  gojslint lint --strict           # Treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags, version string) error {
	logger := logging.Default()

	stopProfiling, err := startProfiling(flags)
	if err != nil {
		return fmt.Errorf("start profiling: %w", err)
	}
	defer stopProfiling()

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("dialect") {
		cfg.Dialect = config.Dialect(flags.dialect)
	}
	if cmd.Flags().Changed("preset") {
		cfg.Preset = flags.preset
	}
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.FixRules = flags.fixRules
	cfg.Cache.Location = flags.cacheLocation

	// Load and merge configuration.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	// Get working directory for config discovery.
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	// Build load options.
	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return &ExitError{
			Code: ExitConfigError,
			Err:  errors.Join(errors.New("failed to load configuration"), err),
		}
	}

	finalCfg := loadResult.Config

	// Log warnings from config loading.
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	// Log loaded configuration files.
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldDialect, finalCfg.Dialect,
		logging.FieldPreset, finalCfg.Preset,
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// Resolve the output format up front so an invalid value fails before
	// any linting happens.
	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		code := ExitConfigError
		if cmd.Flags().Changed("format") {
			code = ExitInvalidUsage
		}
		return &ExitError{Code: code, Err: err}
	}

	// Create the parser based on dialect.
	parser := treesitter.New(string(finalCfg.Dialect))

	// Create the lint engine and the safety pipeline around it.
	engine := lint.NewEngine(parser)
	pipeline := lint.NewPipeline(engine)

	// Create the runner.
	lintRunner := runner.New(pipeline)

	// Resolve the rule set up front so the run and the cache fingerprint
	// see the same rules in the same order.
	rules := lint.ResolveRules(lint.DefaultRegistry, finalCfg)

	resultCache := openResultCache(logger, finalCfg)

	// Build runner options.
	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Rules:        rules,
		Config:       finalCfg,
		Cache:        resultCache,
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	progress := newLintProgress(colorMode)
	runOpts.Progress = progress.update

	logger.Debug("starting lint run",
		"paths", runOpts.Paths,
		"working_dir", runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldCache, resultCache != nil,
	)

	// Run linting.
	result, err := lintRunner.Run(ctx, runOpts)
	progress.finish()
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	// Persist the cache for the next run. A failed save costs a warm
	// start, not correctness.
	if resultCache != nil {
		if err := resultCache.Save(ctx); err != nil {
			logger.Warn("cache save failed", "error", err)
		}
	}

	// Create reporter.
	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		ErrorWriter:  cmd.ErrOrStderr(),
		Format:       format,
		Color:        colorMode,
		ShowContext:  !flags.noContext,
		ShowSummary:  true,
		GroupByFile:  true,
		Compact:      flags.compact,
		PerFile:      flags.perFile,
		RuleFormat:   config.RuleFormat(flags.ruleFormat),
		SummaryOrder: config.SummaryOrder(flags.summaryOrder),
		WorkingDir:   workDir,
		Version:      version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	// Report results.
	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", "error", err)
		return fmt.Errorf("report results: %w", err)
	}

	// Determine exit code based on result.
	exitCode := ExitCodeFromResult(result, flags.strict)
	if exitCode != ExitSuccess {
		return &ExitError{Code: exitCode, Err: ErrLintIssuesFound}
	}

	return nil
}

// openResultCache opens the on-disk result cache, or returns nil when
// caching is disabled or no usable location exists. The runner itself
// skips the cache for fix and dry-run passes.
func openResultCache(logger *log.Logger, cfg *config.Config) *cache.Cache {
	if !cfg.Cache.Enabled || cfg.NoCache {
		return nil
	}

	location := cfg.Cache.Location
	if location == "" {
		var err error
		location, err = cache.DefaultLocation()
		if err != nil {
			logger.Warn("cache disabled: no cache directory", "error", err)
			return nil
		}
	}

	return cache.Open(location)
}

// lintProgress renders a progress bar on stderr while files are being
// linted. It stays silent when stderr is not a terminal so CI logs and
// piped output are unaffected.
type lintProgress struct {
	enabled bool
	color   bool

	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

func newLintProgress(colorMode string) *lintProgress {
	fd := os.Stderr.Fd()
	return &lintProgress{
		enabled: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		color:   colorMode != "never",
	}
}

// update implements runner.Options.Progress. The total is only known
// once discovery finishes, so the bar is created on the first call and
// advanced one step per call.
func (p *lintProgress) update(_, total int) {
	if !p.enabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(p.color),
			progressbar.OptionSetWidth(18),
			progressbar.OptionSetDescription("linting"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: "░",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(false),
		)
	}

	_ = p.bar.Add(1)
}

// finish clears the bar so the report starts on a clean line.
func (p *lintProgress) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	fmt.Fprintln(os.Stderr)
	p.bar = nil
}

// startProfiling starts the profilers requested via flags and returns a
// stop function. The stop function is safe to call when nothing was
// started.
func startProfiling(flags *lintFlags) (func(), error) {
	var stops []func()

	stopAll := func() {
		// Reverse order: trace and CPU profile stop before the heap
		// snapshot is taken.
		for i := len(stops) - 1; i >= 0; i-- {
			stops[i]()
		}
	}

	if flags.cpuprofile != "" {
		f, err := os.Create(flags.cpuprofile)
		if err != nil {
			return nil, fmt.Errorf("create cpu profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("start cpu profile: %w", err)
		}
		stops = append(stops, func() {
			pprof.StopCPUProfile()
			f.Close()
		})
	}

	if flags.traceFile != "" {
		f, err := os.Create(flags.traceFile)
		if err != nil {
			stopAll()
			return nil, fmt.Errorf("create trace file: %w", err)
		}
		if err := trace.Start(f); err != nil {
			f.Close()
			stopAll()
			return nil, fmt.Errorf("start trace: %w", err)
		}
		stops = append(stops, func() {
			trace.Stop()
			f.Close()
		})
	}

	if flags.memprofile != "" {
		path := flags.memprofile
		stops = append(stops, func() {
			f, err := os.Create(path)
			if err != nil {
				logging.Default().Warn("create mem profile failed", "error", err)
				return
			}
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				logging.Default().Warn("write mem profile failed", "error", err)
			}
		})
	}

	return stopAll, nil
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix issues")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, compact, table, json, sarif, diff, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule names to disable")
	cmd.Flags().StringSliceVar(&flags.fixRules, "fix-rules", nil, "limit auto-fix to specific rules")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().BoolVar(&cfg.NoCache, "no-cache", false, "disable the result cache for this run")
	cmd.Flags().StringVar(&flags.cacheLocation, "cache-location", "", "result cache file path (default: XDG cache dir)")
	cmd.Flags().StringVar(&flags.dialect, "dialect", "auto", "parser dialect: auto, javascript, typescript")
	cmd.Flags().StringVar(&flags.preset, "preset", "recommended",
		"rule preset: "+strings.Join(rules.PackNames(), ", "))
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false, "output separate report for each file (table format)")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "full",
		"rule name format in output: full, short, or combined")
	cmd.Flags().StringVar(&flags.summaryOrder, "summary-order", "rules",
		"order of tables in summary output: rules, files")

	// Profiling flags.
	cmd.Flags().StringVar(&flags.cpuprofile, "cpuprofile", "", "write CPU profile to file")
	cmd.Flags().StringVar(&flags.memprofile, "memprofile", "", "write memory profile to file")
	cmd.Flags().StringVar(&flags.traceFile, "trace", "", "write execution trace to file")
}
