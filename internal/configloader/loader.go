// Package configloader resolves the effective lint configuration. It
// layers XDG-style discovery, hierarchical merging, environment
// variables, validation, and ESLint config migration on top of the
// plain config types.
package configloader

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/lint"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// migratedConfigHeader is prepended when a converted config is written to disk.
const migratedConfigHeader = `# gojslint configuration
# See: https://github.com/yaklabco/gojslint`

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// IgnoreESLint skips ESLint config detection and migration.
	IgnoreESLint bool

	// Verbose enables logging of configuration resolution steps.
	Verbose bool

	// NonInteractive disables interactive prompts (e.g., in CI).
	NonInteractive bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string

	// MigrationPerformed is true if an ESLint config was converted.
	MigrationPerformed bool
}

// fileLayer is one file-backed configuration source in the merge chain.
type fileLayer struct {
	name string
	path string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOJSLINT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gojslint.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gojslint/config.yaml)
//  6. System config (/etc/gojslint/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	if opts.ExplicitPath != "" {
		paths.Explicit = opts.ExplicitPath
	}

	result := &LoadResult{Paths: paths}

	if !opts.IgnoreESLint {
		migrated, err := maybeMigrateESLint(paths, result, opts)
		if err != nil {
			return nil, err
		}
		if migrated {
			// The migration just wrote a project config; pick it up.
			if paths, err = DiscoverPaths(ctx, workDir); err != nil {
				return nil, fmt.Errorf("discover paths after migration: %w", err)
			}
			result.Paths = paths
		}
	}

	cfg := config.NewConfig()
	for _, layer := range fileLayers(paths, opts) {
		if layer.path == "" {
			continue
		}
		fileCfg, err := readConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}
	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	// Rule keys may use registered aliases like "max-params"; fold them
	// onto canonical names before validating.
	canonicalizeRuleKeys(cfg, lint.DefaultRegistry, result)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	result.Config = cfg
	return result, nil
}

// fileLayers lists the file-backed sources in merge order, lowest
// precedence first. Suppressed layers are left out; empty paths are
// kept and skipped by the caller.
func fileLayers(paths *ConfigPaths, opts LoadOptions) []fileLayer {
	layers := make([]fileLayer, 0, 4)
	if !opts.IgnoreSystemConfig {
		layers = append(layers, fileLayer{"system", paths.System})
	}
	if !opts.IgnoreUserConfig {
		layers = append(layers, fileLayer{"user", paths.User})
	}
	if !opts.IgnoreProjectConfig {
		layers = append(layers, fileLayer{"project", paths.Project})
	}
	return append(layers, fileLayer{"explicit", opts.ExplicitPath})
}

// readConfigFile parses one YAML configuration file.
func readConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &config.Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleConfig)
	}
	return cfg, nil
}

// maybeMigrateESLint offers to convert a detected ESLint config when no
// project config exists yet. Returns true when a conversion was written.
func maybeMigrateESLint(paths *ConfigPaths, result *LoadResult, opts LoadOptions) (bool, error) {
	switch {
	case paths.Project != "":
		// A gojslint config wins over any ESLint leftovers.
		if paths.ESLint != "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("both .gojslint.yml and %s exist; using .gojslint.yml", paths.ESLint))
		}
		return false, nil
	case paths.ESLint == "":
		return false, nil
	case !CanMigrate(paths.ESLint):
		result.Warnings = append(result.Warnings, GetMigrationWarning(paths.ESLint))
		return false, nil
	case opts.NonInteractive || !stdinIsTerminal():
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("found %s but no .gojslint.yml; run 'gojslint migrate' to convert", paths.ESLint))
		return false, nil
	}

	ok, err := confirmMigration(paths.ESLint)
	if err != nil || !ok {
		return false, err
	}

	migration, err := ConvertESLintConfig(paths.ESLint)
	if err != nil {
		return false, fmt.Errorf("convert ESLint config: %w", err)
	}
	result.Warnings = append(result.Warnings, migration.Warnings...)

	const outputPath = ".gojslint.yml"
	content, err := migration.Config.ToYAMLWithHeader(migratedConfigHeader)
	if err != nil {
		return false, fmt.Errorf("serialize migrated config: %w", err)
	}
	if err := os.WriteFile(outputPath, content, configFilePermissions); err != nil {
		return false, fmt.Errorf("write migrated config: %w", err)
	}

	result.MigrationPerformed = true
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("migrated %s to %s; the old file is untouched", paths.ESLint, outputPath))
	return true, nil
}

// confirmMigration asks on stdin whether to convert. Enter defaults to yes.
func confirmMigration(eslintPath string) (bool, error) {
	prompt := fmt.Sprintf("Found %s but no .gojslint.yml\nConvert to gojslint format? [Y/n] ", eslintPath)
	if _, err := os.Stdout.WriteString(prompt); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	switch strings.TrimSpace(strings.ToLower(response)) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// canonicalizeRuleKeys folds rule aliases onto canonical names so the
// rest of the pipeline only ever sees one key per rule. Unknown keys
// pass through untouched for validation to flag. When two keys resolve
// to the same rule the last one read wins, with a warning; map order
// makes "last" arbitrary, which the warning text owns up to.
func canonicalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	if len(cfg.Rules) == 0 {
		return
	}

	canonical := make(map[string]config.RuleConfig, len(cfg.Rules))
	claimedBy := make(map[string]string, len(cfg.Rules))

	for key, ruleCfg := range cfg.Rules {
		name, _, found := registry.Resolve(key)
		if !found {
			canonical[key] = ruleCfg
			continue
		}
		if prior, dup := claimedBy[name]; dup {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s; using last value",
					prior, key, name))
		}
		claimedBy[name] = key
		canonical[name] = ruleCfg
	}

	cfg.Rules = canonical
}
