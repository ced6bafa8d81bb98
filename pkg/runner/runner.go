package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gojslint/pkg/cache"
	"github.com/yaklabco/gojslint/pkg/lint"
)

// Runner orchestrates multi-file linting using a lint.Pipeline.
type Runner struct {
	// Pipeline handles per-file processing with safety guarantees.
	Pipeline *lint.Pipeline

	// Options are the defaults used by Lint. Run takes its own.
	Options Options
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// NewWithOptions creates a Runner whose Lint calls start from opts.
func NewWithOptions(pipeline *lint.Pipeline, opts Options) *Runner {
	return &Runner{Pipeline: pipeline, Options: opts}
}

// Lint discovers files matching patterns and processes them. It is Run with
// the runner's default options, patterns as the paths, and ignorePatterns
// merged into the exclude globs.
func (r *Runner) Lint(ctx context.Context, patterns, ignorePatterns []string) (*Result, error) {
	opts := r.Options
	opts.Paths = patterns
	if len(ignorePatterns) > 0 {
		merged := make([]string, 0, len(opts.ExcludeGlobs)+len(ignorePatterns))
		merged = append(merged, opts.ExcludeGlobs...)
		merged = append(merged, ignorePatterns...)
		opts.ExcludeGlobs = merged
	}
	return r.Run(ctx, opts)
}

// Run discovers files under opts.Paths and processes them concurrently.
//
// The worker pool shares a single atomic cursor over the discovered file
// list and writes each outcome into a pre-allocated slot, so the output
// order is always the discovery order no matter which worker finishes
// first, and no locking is needed around results. Per-file failures and
// panics land in their slot's Error; they never stop the other workers.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Stats: newStats()}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	pipelineOpts := lint.PipelineOptionsFromConfig(opts.Config)

	// Cache keys fingerprint the content a run started from, so a run
	// that rewrites files can neither trust nor produce valid entries.
	resultCache := opts.Cache
	if pipelineOpts.Fix || pipelineOpts.DryRun {
		resultCache = nil
	}
	fingerprint := cache.Fingerprint(opts.Rules)

	// One file: run inline, skip the pool.
	if len(files) == 1 {
		result.accumulate(r.processOne(ctx, files[0], opts.Rules, pipelineOpts, resultCache, fingerprint))
		if opts.Progress != nil {
			opts.Progress(1, 1)
		}
		if ctx.Err() != nil {
			return result, fmt.Errorf("run cancelled: %w", ctx.Err())
		}
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	outcomes := make([]FileOutcome, len(files))
	var cursor, completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for range jobs {
		g.Go(func() error {
			for {
				idx := cursor.Add(1) - 1
				if idx >= int64(len(files)) {
					return nil
				}

				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				outcomes[idx] = r.processOne(gctx, files[idx], opts.Rules, pipelineOpts, resultCache, fingerprint)
				if opts.Progress != nil {
					opts.Progress(int(completed.Add(1)), len(files))
				}
			}
		})
	}

	waitErr := g.Wait()

	for _, outcome := range outcomes {
		// Slots past the cursor at cancellation time stay empty.
		if outcome.Path == "" {
			continue
		}
		result.accumulate(outcome)
	}

	if waitErr != nil {
		return result, fmt.Errorf("run cancelled: %w", waitErr)
	}

	return result, nil
}

// processOne runs the full per-file pipeline for one path, consulting the
// cache on either side of the analysis. Failures never escape: an error or
// panic becomes the outcome's Error and the pool keeps going.
func (r *Runner) processOne(
	ctx context.Context,
	path string,
	rules []lint.ResolvedRule,
	opts lint.PipelineOptions,
	resultCache *cache.Cache,
	fingerprint []string,
) (outcome FileOutcome) {
	outcome = FileOutcome{Path: path}

	defer func() {
		if rec := recover(); rec != nil {
			outcome.Result = nil
			outcome.Error = fmt.Errorf("panic processing %s: %v", path, rec)
		}
	}()

	var key string
	if resultCache != nil {
		key = cacheKey(path, rules, fingerprint)
		if key != "" {
			if hit, ok := resultCache.Get(key); ok {
				outcome.Result = &lint.PipelineResult{LintResult: hit, Path: path}
				outcome.CacheHit = true
				return outcome
			}
		}
	}

	pr, err := r.Pipeline.ProcessFile(ctx, path, rules, opts)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Result = pr

	if resultCache != nil && key != "" && pr.LintResult != nil {
		resultCache.Put(key, pr.LintResult)
	}

	return outcome
}

// cacheKey builds the lookup key for path. The stat-based key is cheap;
// when stat fails the content-based key keeps correctness at the price of
// an extra read. Empty means no usable key, which disables the cache for
// this file and lets the pipeline surface the underlying error.
func cacheKey(path string, rules []lint.ResolvedRule, fingerprint []string) string {
	info, err := os.Stat(path)
	if err == nil {
		return cache.Key(path, info.ModTime(), info.Size(), fingerprint)
	}

	content, readErr := os.ReadFile(path)
	if readErr != nil {
		return ""
	}
	return cache.ContentKey(path, content, cache.Names(rules))
}
