// Package runner provides multi-file linting orchestration.
package runner

import (
	"github.com/yaklabco/gojslint/pkg/cache"
	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/langdetect"
	"github.com/yaklabco/gojslint/pkg/lint"
)

// DefaultIgnoreFile is the gitignore-style file consulted during discovery.
const DefaultIgnoreFile = ".gojslintignore"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered lintable source. Defaults to DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// IgnoreFile names the gitignore-style ignore file looked up in
	// WorkingDir. Defaults to DefaultIgnoreFile. A missing file is fine.
	IgnoreFile string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Rules is the resolved rule set for this run, severities already
	// applied. Configuration resolution happens before the runner; an
	// empty set means every file comes back clean without being read.
	Rules []lint.ResolvedRule

	// Config is the resolved configuration for this run.
	Config *config.Config

	// Cache holds lint results across runs. Nil disables caching.
	Cache *cache.Cache

	// Progress, when non-nil, is invoked after each file finishes with the
	// number of completed files and the discovery total. Workers call it
	// concurrently, so it must be safe for concurrent use.
	Progress func(completed, total int)
}

// DefaultExtensions returns the extensions treated as lintable source.
func DefaultExtensions() []string {
	return langdetect.Extensions()
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// effectiveIgnoreFile returns the ignore file name, defaulting if empty.
func (o Options) effectiveIgnoreFile() string {
	if o.IgnoreFile == "" {
		return DefaultIgnoreFile
	}
	return o.IgnoreFile
}
