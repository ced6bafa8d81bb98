package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/gojslint/pkg/config"
	_ "github.com/yaklabco/gojslint/pkg/lint/rules" // Register rules
)

func TestConvertESLintConfig_JSON(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create an ESLint JSON config
	configContent := `{
  "rules": {
    "no-var": "error",
    "no-console": "off",
    "max-params": ["warn", {"max": 4}],
    "no-debugger": 2
  }
}`
	configPath := filepath.Join(tmpDir, ".eslintrc.json")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := ConvertESLintConfig(configPath)
	if err != nil {
		t.Fatalf("ConvertESLintConfig() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("result.Config is nil")
	}

	// Check no-var is enabled at error severity
	noVar, ok := result.Config.Rules["no-var"]
	if !ok {
		t.Fatal("no-var rule not found in config")
	}
	if noVar.Enabled == nil || !*noVar.Enabled {
		t.Error("expected no-var to be enabled")
	}
	if noVar.Severity == nil || *noVar.Severity != config.SeverityError {
		t.Error("expected no-var severity to be error")
	}

	// Check no-console is disabled
	noConsole, ok := result.Config.Rules["no-console"]
	if !ok {
		t.Fatal("no-console rule not found in config")
	}
	if noConsole.Enabled == nil || *noConsole.Enabled {
		t.Error("expected no-console to be disabled")
	}

	// Check max-params maps to style/max-params with options
	maxParams, ok := result.Config.Rules["style/max-params"]
	if !ok {
		t.Fatal("style/max-params rule not found in config")
	}
	if maxParams.Severity == nil || *maxParams.Severity != config.SeverityWarn {
		t.Error("expected style/max-params severity to be warn")
	}
	if maxParams.Options == nil {
		t.Fatal("style/max-params options is nil")
	}
	if max, ok := maxParams.Options["max"].(int); !ok || max != 4 {
		t.Errorf("expected max 4, got %v", maxParams.Options["max"])
	}

	// Check numeric severity form
	noDebugger, ok := result.Config.Rules["no-debugger"]
	if !ok {
		t.Fatal("no-debugger rule not found in config")
	}
	if noDebugger.Severity == nil || *noDebugger.Severity != config.SeverityError {
		t.Error("expected no-debugger severity to be error")
	}
}

func TestConvertESLintConfig_YAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create an ESLint YAML config
	configContent := `
rules:
  no-var: error
  no-eval: 2
  max-params:
    - warn
    - 3
`
	configPath := filepath.Join(tmpDir, ".eslintrc.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := ConvertESLintConfig(configPath)
	if err != nil {
		t.Fatalf("ConvertESLintConfig() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("result.Config is nil")
	}

	// Bare numeric option transfers under "max"
	maxParams, ok := result.Config.Rules["style/max-params"]
	if !ok {
		t.Fatal("style/max-params rule not found in config")
	}
	if maxParams.Options == nil {
		t.Fatal("style/max-params options is nil")
	}
	if max, ok := maxParams.Options["max"].(int); !ok || max != 3 {
		t.Errorf("expected max 3, got %v", maxParams.Options["max"])
	}
}

func TestConvertESLintConfig_PluginAliases(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a config using plugin-scoped rule names
	configContent := `{
  "rules": {
    "functional/no-loop-statements": "error",
    "fp/no-class": "warn",
    "no-empty": "warn"
  }
}`
	configPath := filepath.Join(tmpDir, ".eslintrc.json")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := ConvertESLintConfig(configPath)
	if err != nil {
		t.Fatalf("ConvertESLintConfig() error = %v", err)
	}

	// Plugin names should be normalized to our rule names
	if _, ok := result.Config.Rules["no-loops"]; !ok {
		t.Error("functional/no-loop-statements should be normalized to no-loops")
	}

	if _, ok := result.Config.Rules["no-class"]; !ok {
		t.Error("fp/no-class should be normalized to no-class")
	}

	if _, ok := result.Config.Rules["style/no-empty-block"]; !ok {
		t.Error("no-empty should be normalized to style/no-empty-block")
	}
}

func TestConvertESLintConfig_UnknownRules(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a config with rules we have no counterpart for
	configContent := `{
  "rules": {
    "semi": ["error", "always"],
    "no-var": "error"
  }
}`
	configPath := filepath.Join(tmpDir, ".eslintrc.json")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := ConvertESLintConfig(configPath)
	if err != nil {
		t.Fatalf("ConvertESLintConfig() error = %v", err)
	}

	// Unknown rules warn and are skipped
	if len(result.Warnings) == 0 {
		t.Error("expected warning about unknown rule semi")
	}
	if _, ok := result.Config.Rules["semi"]; ok {
		t.Error("semi should not be carried into the config")
	}

	// Known rules still convert
	if _, ok := result.Config.Rules["no-var"]; !ok {
		t.Error("no-var should be in config")
	}
}

func TestConvertESLintConfig_SpecialKeys(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a config with special keys
	configContent := `{
  "$schema": "https://example.com/schema.json",
  "extends": "eslint:recommended",
  "ignorePatterns": ["dist/**", "node_modules/**"],
  "parser": "@typescript-eslint/parser",
  "overrides": [{"files": ["*.test.js"], "rules": {}}],
  "rules": {
    "no-var": "error"
  }
}`
	configPath := filepath.Join(tmpDir, ".eslintrc.json")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := ConvertESLintConfig(configPath)
	if err != nil {
		t.Fatalf("ConvertESLintConfig() error = %v", err)
	}

	// extends maps to a preset
	if result.Config.Preset != "recommended" {
		t.Errorf("expected preset recommended, got %q", result.Config.Preset)
	}

	// ignorePatterns map to ignore globs
	if len(result.Config.Ignore) != 2 {
		t.Errorf("expected 2 ignore patterns, got %v", result.Config.Ignore)
	}

	// TypeScript parser selects the typescript dialect
	if result.Config.Dialect != config.DialectTypeScript {
		t.Errorf("expected dialect typescript, got %q", result.Config.Dialect)
	}

	// overrides produce a warning
	if len(result.Warnings) == 0 {
		t.Error("expected warning about overrides")
	}

	// Rules should still be processed
	if _, ok := result.Config.Rules["no-var"]; !ok {
		t.Error("no-var should be in config")
	}
}

func TestConvertESLintConfig_JavaScript(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a JavaScript config file
	configPath := filepath.Join(tmpDir, ".eslintrc.cjs")
	if err := os.WriteFile(configPath, []byte("module.exports = {}"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := ConvertESLintConfig(configPath)
	if err == nil {
		t.Fatal("expected error for JavaScript config file")
	}
}

func TestConvertESLintConfig_InvalidJSON(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create an invalid JSON config
	configPath := filepath.Join(tmpDir, ".eslintrc.json")
	if err := os.WriteFile(configPath, []byte("{ invalid json }"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := ConvertESLintConfig(configPath)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestConvertESLintConfig_JSONWithComments(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// ESLint allows comments in .eslintrc.json
	configContent := `{
  // This is a comment
  "rules": {
    "no-var": "error",
    /* Multi-line
       comment */
    "no-eval": "warn"
  }
}`
	configPath := filepath.Join(tmpDir, ".eslintrc.json")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := ConvertESLintConfig(configPath)
	if err != nil {
		t.Fatalf("ConvertESLintConfig() error = %v", err)
	}

	// Check rules were parsed correctly
	if _, ok := result.Config.Rules["no-var"]; !ok {
		t.Error("no-var should be in config")
	}
	if _, ok := result.Config.Rules["no-eval"]; !ok {
		t.Error("no-eval should be in config")
	}
}

func TestCanMigrate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected bool
	}{
		{".eslintrc.json", true},
		{".eslintrc.yaml", true},
		{".eslintrc.yml", true},
		{".eslintrc.js", false},
		{".eslintrc.cjs", false},
		{"eslint.config.mjs", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			result := CanMigrate(tt.path)
			if result != tt.expected {
				t.Errorf("CanMigrate(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestIsJavaScriptConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected bool
	}{
		{".eslintrc.js", true},
		{".eslintrc.cjs", true},
		{"eslint.config.mjs", true},
		{".eslintrc.json", false},
		{".eslintrc.yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			result := IsJavaScriptConfig(tt.path)
			if result != tt.expected {
				t.Errorf("IsJavaScriptConfig(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}
