package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// System is the system-wide config path (e.g., /etc/gojslint/config.yaml).
	System string

	// User is the user-level config path (e.g., ~/.config/gojslint/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.gojslint.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string

	// ESLint is a detected ESLint config file path.
	ESLint string
}

// projectConfigNames are the project config file names, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigNames = []string{
	".gojslint.yml",
	".gojslint.yaml",
	"gojslint.yml",
	"gojslint.yaml",
}

// baseConfigNames are the file names tried inside the system and user
// config directories.
//
//nolint:gochecknoglobals // Read-only lookup table.
var baseConfigNames = []string{"config.yaml", "config.yml"}

// eslintConfigNames are the ESLint config files we detect for migration,
// ordered the way ESLint itself resolves them.
//
//nolint:gochecknoglobals // Read-only lookup table.
var eslintConfigNames = []string{
	".eslintrc.json",
	".eslintrc.yaml",
	".eslintrc.yml",
	".eslintrc.js",
	".eslintrc.cjs",
	"eslint.config.js",
	"eslint.config.mjs",
	"eslint.config.cjs",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations:
// system config under /etc/gojslint (ProgramData on Windows), user
// config under $XDG_CONFIG_HOME/gojslint, project config by walking
// upward from workDir, and any ESLint config eligible for migration.
//
// Missing files are represented as empty strings, not errors.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstExisting(systemConfigDir(), baseConfigNames...),
		User:    firstExisting(userConfigDir(), baseConfigNames...),
		Project: project,
		ESLint:  FindESLintConfig(workDir),
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS == "windows" {
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return filepath.Join(programData, "gojslint")
	}
	return "/etc/gojslint"
}

func userConfigDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "gojslint")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gojslint")
}

// FindProjectConfig walks upward from startDir looking for a project
// config file. The walk stops after checking a VCS root or the home
// directory, so a config in the repository root is still found but one
// stray file above it never leaks into unrelated projects.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// No home boundary then; the VCS and filesystem-root stops remain.
		home = ""
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		if path := firstExisting(dir, projectConfigNames...); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if isVCSRoot(dir) || dir == home || parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// FindESLintConfig returns the ESLint config in dir that ESLint itself
// would resolve first, or empty string when none exists.
func FindESLintConfig(dir string) string {
	return firstExisting(dir, eslintConfigNames...)
}

// firstExisting returns the first of names under dir that exists as a
// regular file. An empty dir short-circuits to "" so a missing config
// home never turns into a relative-path lookup.
func firstExisting(dir string, names ...string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// isVCSRoot returns true if the directory contains a VCS root marker.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// IsJavaScriptConfig returns true if the path is a JavaScript config file.
// These cannot be converted and require user action.
func IsJavaScriptConfig(path string) bool {
	switch filepath.Ext(path) {
	case ".js", ".cjs", ".mjs":
		return true
	default:
		return false
	}
}

// IsJSONConfig returns true if the path is a JSON config file.
func IsJSONConfig(path string) bool {
	switch filepath.Ext(path) {
	case ".json", ".jsonc":
		return true
	default:
		return false
	}
}
