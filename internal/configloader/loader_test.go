package configloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gojslint/pkg/config"
	_ "github.com/yaklabco/gojslint/pkg/lint/rules" // Register rules
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	// Create temp directory with no config files
	tmpDir := t.TempDir()

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	result, err := opts.load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}

	// Check defaults are applied
	if result.Config.Dialect != config.DialectAuto {
		t.Errorf("expected dialect %q, got %q", config.DialectAuto, result.Config.Dialect)
	}
	if result.Config.Preset != "recommended" {
		t.Errorf("expected preset %q, got %q", "recommended", result.Config.Preset)
	}
}

func (o LoadOptions) load(ctx context.Context) (*LoadResult, error) {
	return Load(ctx, o)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a project config
	// Note: jobs is a CLI-only option (yaml:"-"), so it won't be loaded from file
	configContent := `
dialect: typescript
rules:
  no-loops:
    enabled: false
`
	configPath := filepath.Join(tmpDir, ".gojslint.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Dialect != config.DialectTypeScript {
		t.Errorf("expected dialect %q, got %q", config.DialectTypeScript, result.Config.Dialect)
	}

	// Check that the rule config was loaded
	noLoops, ok := result.Config.Rules["no-loops"]
	if !ok {
		t.Fatal("no-loops rule not found in config")
	}
	if noLoops.Enabled == nil || *noLoops.Enabled {
		t.Error("expected no-loops to be disabled")
	}

	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a custom config
	// Note: format is a CLI-only option (yaml:"-"), so we test dialect instead
	configContent := `
dialect: javascript
severity_default: error
`
	customPath := filepath.Join(tmpDir, "custom-config.yml")
	if err := os.WriteFile(customPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		ExplicitPath:       customPath,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Dialect != config.DialectJavaScript {
		t.Errorf("expected dialect %q, got %q", config.DialectJavaScript, result.Config.Dialect)
	}

	if result.Config.SeverityDefault != config.SeverityError {
		t.Errorf("expected severity_default %q, got %q", config.SeverityError, result.Config.SeverityDefault)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a project config
	configContent := `
dialect: javascript
`
	configPath := filepath.Join(tmpDir, ".gojslint.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	cliCfg := &config.Config{
		Dialect: config.DialectTypeScript,
		Jobs:    8,
		Fix:     true,
	}
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
		CLIConfig:          cliCfg,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// CLI should override project config
	if result.Config.Dialect != config.DialectTypeScript {
		t.Errorf("expected dialect %q (CLI override), got %q", config.DialectTypeScript, result.Config.Dialect)
	}

	if result.Config.Jobs != 8 {
		t.Errorf("expected jobs 8 (CLI override), got %d", result.Config.Jobs)
	}

	if !result.Config.Fix {
		t.Error("expected fix true (CLI override)")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	// t.Setenv is incompatible with t.Parallel
	t.Setenv("GOJSLINT_DIALECT", "typescript")
	t.Setenv("GOJSLINT_JOBS", "4")

	tmpDir := t.TempDir()

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Dialect != config.DialectTypeScript {
		t.Errorf("expected dialect %q (env override), got %q", config.DialectTypeScript, result.Config.Dialect)
	}
	if result.Config.Jobs != 4 {
		t.Errorf("expected jobs 4 (env override), got %d", result.Config.Jobs)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create an invalid config
	configContent := `
dialect: invalid-dialect
`
	configPath := filepath.Join(tmpDir, ".gojslint.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	_, err := Load(ctx, opts)
	if err == nil {
		t.Fatal("expected validation error for invalid dialect")
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	opts := LoadOptions{
		WorkingDir:         t.TempDir(),
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	_, err := Load(ctx, opts)
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestLoader_NormalizesRuleKeys(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create temp config file using aliases instead of canonical names
	content := `
rules:
  max-params:
    enabled: true
    severity: error
  no-empty:
    enabled: false
`
	configPath := filepath.Join(tmpDir, ".gojslint.yml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Should be normalized to canonical names internally
	_, hasCanonical := result.Config.Rules["style/max-params"]
	_, hasAlias := result.Config.Rules["max-params"]

	if !hasCanonical {
		t.Error("expected style/max-params to be present after normalization")
	}
	if hasAlias {
		t.Error("expected max-params to be removed after normalization")
	}

	// Check style/no-empty-block (no-empty alias)
	noEmpty, hasNoEmpty := result.Config.Rules["style/no-empty-block"]
	if !hasNoEmpty {
		t.Error("expected style/no-empty-block to be present after normalization")
	} else if noEmpty.Enabled == nil || *noEmpty.Enabled {
		t.Error("expected style/no-empty-block to be disabled")
	}

	maxParams := result.Config.Rules["style/max-params"]
	if maxParams.Severity == nil || *maxParams.Severity != config.SeverityError {
		t.Error("expected style/max-params severity to be error")
	}
}

func TestLoader_WarnsDuplicateRules(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create config with both canonical name and alias for same rule
	content := `
rules:
  style/max-params:
    enabled: false
  max-params:
    enabled: true
`
	configPath := filepath.Join(tmpDir, ".gojslint.yml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Should have a warning about duplicate rule
	foundWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "duplicate") && strings.Contains(w, "style/max-params") {
			foundWarning = true
			break
		}
	}
	if !foundWarning {
		t.Errorf("expected warning about duplicate rule, got warnings: %v", result.Warnings)
	}

	// Verify the rule is normalized to the canonical name and has a value
	// Note: which value "wins" is undefined since Go map iteration order is non-deterministic
	maxParams, ok := result.Config.Rules["style/max-params"]
	if !ok {
		t.Fatal("expected style/max-params in config")
	}
	if maxParams.Enabled == nil {
		t.Error("expected style/max-params.Enabled to be set")
	}
}
