package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/fix"
	"github.com/yaklabco/gojslint/pkg/fsutil"
	"github.com/yaklabco/gojslint/pkg/jsast"
)

// DefaultMaxFixPasses is the maximum number of fix passes to prevent infinite
// loops. This should be sufficient for most files - if more passes are needed,
// there may be rules whose fixes keep triggering each other.
const DefaultMaxFixPasses = 10

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates a parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult contains the result of processing a single file through the
// safety pipeline.
type PipelineResult struct {
	// LintResult holds the diagnostics from the FINAL pass. For multi-pass
	// fixing, this reflects the state after all passes.
	*LintResult

	// Path is the file path that was processed.
	Path string

	// Snapshot is the parsed view of the content the final messages refer
	// to. Renderers use it for source-context lines. Nil when the result
	// came from the cache.
	Snapshot *jsast.FileSnapshot

	// OriginalInfo is the file state before processing.
	OriginalInfo *fsutil.FileInfo

	// Modified is true if the file content was changed.
	Modified bool

	// ModifiedContent is the new content after applying edits (nil if not modified).
	ModifiedContent []byte

	// Diff is the unified diff for dry-run mode (nil if not in dry-run).
	Diff *fix.Diff

	// Skipped is true if the file was skipped (e.g., due to concurrent modification).
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool

	// FixPasses is the number of fix passes that applied at least one edit.
	FixPasses int

	// EditsApplied is the total number of edits applied across all passes.
	EditsApplied int

	// EditsSkipped counts edits dropped because they fell out of bounds
	// after an overlapping edit was applied first.
	EditsSkipped int
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	if pr.Skipped {
		return "skipped: " + pr.SkipReason
	}
	if pr.Written {
		if pr.BackupCreated {
			return "fixed (backup created)"
		}
		return "fixed"
	}
	if pr.Modified {
		return "changes pending"
	}
	if pr.LintResult != nil && pr.HasIssues() {
		return "issues found"
	}
	return "ok"
}

// PipelineOptions controls safety pipeline behavior.
type PipelineOptions struct {
	// Fix enables auto-fix mode.
	Fix bool

	// DryRun generates diffs without writing files.
	DryRun bool

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification detection.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool

	// ReParseAfterFix re-parses the modified content to validate fixes.
	ReParseAfterFix bool

	// MaxFixPasses limits the number of fix iterations to prevent infinite
	// loops. Edits skipped for overlap in one pass are usually picked up by
	// the next. Set to 0 to use DefaultMaxFixPasses.
	MaxFixPasses int
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Fix:                 false,
		DryRun:              false,
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
		ReParseAfterFix:     false,
	}
}

// Pipeline orchestrates the safe processing of a single file.
type Pipeline struct {
	// Engine is the lint engine used for parsing and rule execution.
	Engine *Engine
}

// NewPipeline creates a new safety pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile runs the full safety pipeline for a single file.
//
// The pipeline performs the following steps:
//  1. Read and hash the original file.
//  2. Multi-pass fix loop (if fix mode enabled):
//     a. Run the lint engine.
//     b. Collect edits from diagnostics of auto-fix enabled rules.
//     c. Apply edits in memory, right to left.
//     d. Repeat with modified content until stable or max passes.
//  3. Optionally re-parse to validate fixes.
//  4. Generate diff (if dry-run mode).
//  5. Check for concurrent modifications.
//  6. Create backup (if enabled).
//  7. Write the modified content atomically.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	rules []ResolvedRule,
	opts PipelineOptions,
) (*PipelineResult, error) {
	if len(rules) == 0 {
		return &PipelineResult{LintResult: NewLintResult(path, nil), Path: path}, nil
	}

	// Step 1: Read and hash the original file.
	originalContent, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.process(ctx, path, originalContent, rules, opts)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	if !result.Modified {
		return result, nil
	}

	// Step 4: Handle dry-run mode.
	if opts.DryRun {
		result.Diff = fix.GenerateDiff(path, originalContent, result.ModifiedContent)
		return result, nil
	}

	// Step 5: Check for concurrent modifications before writing.
	modified, err := p.checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	// Step 6: Create backup if enabled.
	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	// Step 7: Write the modified content atomically.
	if err := fsutil.WriteAtomic(ctx, path, result.ModifiedContent, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent processes in-memory content without file I/O.
// This is useful for testing or when content is already loaded.
// It supports multi-pass fixing just like ProcessFile.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	originalContent []byte,
	rules []ResolvedRule,
	opts PipelineOptions,
) (*PipelineResult, error) {
	if len(rules) == 0 {
		return &PipelineResult{LintResult: NewLintResult(path, nil), Path: path}, nil
	}

	result, err := p.process(ctx, path, originalContent, rules, opts)
	if err != nil {
		return nil, err
	}

	if result.Modified && opts.DryRun {
		result.Diff = fix.GenerateDiff(path, originalContent, result.ModifiedContent)
	}

	return result, nil
}

// process runs the analyze/fix loop over in-memory content and the optional
// re-parse validation. Steps 1 and 4-7 of the pipeline belong to the callers.
func (p *Pipeline) process(
	ctx context.Context,
	path string,
	originalContent []byte,
	rules []ResolvedRule,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{
		Path: path,
	}

	maxPasses := opts.MaxFixPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxFixPasses
	}

	autofix := autoFixSet(rules)
	content := originalContent
	var lintResult *LintResult
	var snapshot *jsast.FileSnapshot

	// Step 2: Multi-pass fix loop. Each pass re-lints the current content,
	// so every edit is validated against the buffer it will splice into.
	for range maxPasses {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
		default:
		}

		parsed, parseErr := p.Engine.Parser.Parse(ctx, path, content)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrParseFailure, path, parseErr)
		}
		snapshot = parsed

		var lintErr error
		lintResult, lintErr = p.Engine.AnalyzeSnapshot(ctx, snapshot, rules)
		if lintErr != nil {
			return nil, lintErr
		}

		if !opts.Fix {
			break
		}

		edits := collectFixEdits(lintResult.Messages, autofix)
		if len(edits) == 0 {
			break
		}

		fix.SortEdits(edits)
		merged, _ := fix.MergeDeletions(edits)

		next, applied, skipped := fix.Apply(content, merged)
		result.EditsSkipped += len(skipped)
		if len(applied) == 0 {
			break
		}

		content = next
		result.FixPasses++
		result.EditsApplied += len(applied)
		result.Modified = true
	}

	result.LintResult = lintResult
	result.Snapshot = snapshot
	result.ModifiedContent = content

	if !result.Modified {
		result.ModifiedContent = nil
		return result, nil
	}

	// Step 3: Optional re-parse to validate fixes.
	if opts.ReParseAfterFix {
		if _, err := p.Engine.Parser.Parse(ctx, path, content); err != nil {
			result.Skipped = true
			result.SkipReason = fmt.Sprintf("re-parse failed: %v", err)
			result.Modified = false
			result.ModifiedContent = nil
			return result, nil
		}
	}

	return result, nil
}

// FixOutcome summarizes an ApplyFixes run over many results.
type FixOutcome struct {
	// FilesModified is the number of files written with at least one edit.
	FilesModified int

	// EditsApplied is the total number of edits applied.
	EditsApplied int

	// EditsSkipped is the total number of edits dropped as out of bounds.
	EditsSkipped int

	// Failures maps file paths to the error that prevented fixing them.
	Failures map[string]error
}

// ApplyFixes applies the collected fixes from prior lint results to the
// files on disk, one right-to-left pass per file.
//
// Each file is re-read fresh; edits that no longer fit the current content
// are skipped rather than failing the file. A file is written only when at
// least one edit applied. Per-file failures are recorded in the outcome and
// do not abort the run.
func (p *Pipeline) ApplyFixes(
	ctx context.Context,
	results []*LintResult,
	rules []ResolvedRule,
	opts PipelineOptions,
) (*FixOutcome, error) {
	outcome := &FixOutcome{Failures: make(map[string]error)}
	autofix := autoFixSet(rules)

	for _, result := range results {
		select {
		case <-ctx.Done():
			return outcome, fmt.Errorf("fixing cancelled: %w", ctx.Err())
		default:
		}

		if result == nil {
			continue
		}
		edits := collectFixEdits(result.Messages, autofix)
		if len(edits) == 0 {
			continue
		}

		content, info, err := fsutil.ReadFile(ctx, result.FilePath)
		if err != nil {
			outcome.Failures[result.FilePath] = categorizeError(err)
			continue
		}

		fix.SortEdits(edits)
		merged, _ := fix.MergeDeletions(edits)
		fixed, applied, skipped := fix.Apply(content, merged)
		outcome.EditsSkipped += len(skipped)
		if len(applied) == 0 {
			continue
		}

		if opts.Backup.Enabled {
			if _, err := fsutil.CreateBackup(ctx, result.FilePath, opts.Backup); err != nil {
				outcome.Failures[result.FilePath] = fmt.Errorf("create backup: %w", err)
				continue
			}
		}

		if err := fsutil.WriteAtomic(ctx, result.FilePath, fixed, info.Mode); err != nil {
			outcome.Failures[result.FilePath] = fmt.Errorf("%w: %w", ErrWriteFailure, err)
			continue
		}

		outcome.FilesModified++
		outcome.EditsApplied += len(applied)
	}

	return outcome, nil
}

// autoFixSet collects the names of rules with auto-fix enabled.
func autoFixSet(rules []ResolvedRule) map[string]bool {
	set := make(map[string]bool, len(rules))
	for _, rr := range rules {
		if rr.AutoFix {
			set[rr.Rule.Name] = true
		}
	}
	return set
}

// collectFixEdits gathers the fix edits from diagnostics whose rule has
// auto-fix enabled.
func collectFixEdits(messages []Diagnostic, autofix map[string]bool) []fix.TextEdit {
	var edits []fix.TextEdit
	for i := range messages {
		d := &messages[i]
		if d.Fix == nil || !autofix[d.RuleID] {
			continue
		}
		edits = append(edits, *d.Fix)
	}
	return edits
}

// checkModified checks if a file has been modified since it was read.
func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	var modified bool
	var err error

	if strict {
		modified, err = fsutil.CheckModified(ctx, info)
	} else {
		modified, err = fsutil.CheckModifiedQuick(ctx, info)
	}

	if err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}
	return modified, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
// It uses errors.Is for robust error detection rather than string matching.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	// Check for file not found errors.
	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	// Check for permission errors.
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// categorizeReadError maps a direct file read failure onto the pipeline
// sentinels, keeping the path in the message.
func categorizeReadError(path string, err error) error {
	return fmt.Errorf("read %s: %w", path, categorizeError(err))
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrParseFailure) ||
		errors.Is(err, ErrWriteFailure)
}

// BackupConfigFromConfig creates an fsutil.BackupConfig from config.Config.
func BackupConfigFromConfig(cfg *config.Config) fsutil.BackupConfig {
	if cfg == nil {
		return fsutil.DefaultBackupConfig()
	}
	return fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled && !cfg.NoBackups,
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return DefaultPipelineOptions()
	}
	return PipelineOptions{
		Fix:                 cfg.Fix,
		DryRun:              cfg.DryRun,
		Backup:              BackupConfigFromConfig(cfg),
		StrictRaceDetection: true,
		ReParseAfterFix:     false,
	}
}
