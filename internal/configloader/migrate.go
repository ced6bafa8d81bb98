package configloader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gojslint/pkg/config"
)

// MigrationResult contains the result of converting an ESLint config.
type MigrationResult struct {
	// Config is the converted gojslint configuration.
	Config *config.Config

	// Warnings contains non-fatal issues encountered during conversion.
	Warnings []string

	// SourcePath is the path to the original ESLint config.
	SourcePath string
}

// ConvertESLintConfig converts an ESLint config file to gojslint format.
// Returns the converted config, any warnings, and an error if conversion failed.
func ConvertESLintConfig(path string) (*MigrationResult, error) {
	result := &MigrationResult{
		SourcePath: path,
	}

	// Flat configs and .eslintrc.js are executable JavaScript
	if IsJavaScriptConfig(path) {
		return nil, fmt.Errorf("cannot convert JavaScript config file %q; please create a gojslint config manually", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var raw map[string]any
	if IsJSONConfig(path) {
		if err := parseJSONC(content, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	}

	cfg := config.NewConfig()

	processSpecialKeys(cfg, raw, result)

	if rules, ok := raw["rules"].(map[string]any); ok {
		for key, value := range rules {
			processRuleKey(cfg, key, value, result)
		}
	}

	result.Config = cfg
	return result, nil
}

// parseJSONC parses JSON with comments (JSONC format).
// ESLint allows comments in .eslintrc.json, so strip them before parsing.
func parseJSONC(content []byte, target any) error {
	if err := json.Unmarshal(content, target); err == nil {
		return nil
	}

	// The direct parse fails on JSONC; strip comments and retry.
	stripped := stripJSONComments(content)
	if err := json.Unmarshal(stripped, target); err != nil {
		return fmt.Errorf("unmarshal stripped JSON: %w", err)
	}
	return nil
}

// stripJSONComments removes JavaScript-style comments from JSON content.
func stripJSONComments(content []byte) []byte {
	var result []byte
	inString := false
	inSingleComment := false
	inMultiComment := false

	for idx := 0; idx < len(content); idx++ {
		char := content[idx]

		if inSingleComment {
			if char == '\n' {
				inSingleComment = false
				result = append(result, char)
			}
			continue
		}

		if inMultiComment {
			if char == '*' && idx+1 < len(content) && content[idx+1] == '/' {
				inMultiComment = false
				idx++ // skip the closing /
			}
			continue
		}

		if inString {
			result = append(result, char)
			if char == '\\' && idx+1 < len(content) {
				idx++
				result = append(result, content[idx])
			} else if char == '"' {
				inString = false
			}
			continue
		}

		if char == '"' {
			inString = true
			result = append(result, char)
			continue
		}

		if char == '/' && idx+1 < len(content) {
			next := content[idx+1]
			if next == '/' {
				inSingleComment = true
				idx++
				continue
			}
			if next == '*' {
				inMultiComment = true
				idx++
				continue
			}
		}

		result = append(result, char)
	}

	return result
}

// processSpecialKeys handles ESLint top-level configuration keys.
func processSpecialKeys(cfg *config.Config, raw map[string]any, result *MigrationResult) {
	// "extends" maps to a preset where a counterpart exists
	switch extends := raw["extends"].(type) {
	case string:
		applyExtends(cfg, extends, result)
	case []any:
		for _, entry := range extends {
			if name, ok := entry.(string); ok {
				applyExtends(cfg, name, result)
			}
		}
	}

	// "ignorePatterns" maps to our ignore globs
	switch patterns := raw["ignorePatterns"].(type) {
	case string:
		cfg.Ignore = append(cfg.Ignore, patterns)
	case []any:
		for _, entry := range patterns {
			if pattern, ok := entry.(string); ok {
				cfg.Ignore = append(cfg.Ignore, pattern)
			}
		}
	}

	// A TypeScript parser means the project lints TypeScript
	if parserOptions, ok := raw["parser"].(string); ok {
		if strings.Contains(parserOptions, "typescript") {
			cfg.Dialect = config.DialectTypeScript
		}
	}

	// "overrides" carries per-glob rule sets we do not model
	if _, ok := raw["overrides"]; ok {
		result.Warnings = append(result.Warnings,
			"'overrides' blocks are not supported; only the top-level rules were converted")
	}

	// Keys that have no gojslint counterpart and need no warning:
	// env, globals, plugins, parserOptions, root, settings, $schema.
}

// applyExtends maps a single "extends" entry to a preset or warns.
func applyExtends(cfg *config.Config, extends string, result *MigrationResult) {
	if preset := PresetForExtends(extends); preset != "" {
		cfg.Preset = preset
		return
	}

	result.Warnings = append(result.Warnings,
		fmt.Sprintf("'extends: %q' has no gojslint counterpart; review the converted rules", extends))
}

// processRuleKey processes a single entry from the ESLint rules map.
func processRuleKey(cfg *config.Config, key string, value any, result *MigrationResult) {
	ruleName := NormalizeESLintRule(key)
	if ruleName == "" {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("rule %q has no gojslint counterpart; skipping", key))
		return
	}

	ruleCfg, err := convertRuleValue(value)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("rule %q: %v; skipping", key, err))
		return
	}

	cfg.Rules[ruleName] = ruleCfg
}

// convertRuleValue converts an ESLint rule value to our RuleConfig.
// ESLint values are a severity ("off"/"warn"/"error" or 0/1/2) or an array
// of [severity, option...].
func convertRuleValue(value any) (config.RuleConfig, error) {
	cfg := config.RuleConfig{}

	switch typedVal := value.(type) {
	case string, int, float64:
		sev, err := convertESLintSeverity(typedVal)
		if err != nil {
			return cfg, err
		}
		applySeverity(&cfg, sev)
	case []any:
		if len(typedVal) == 0 {
			return cfg, fmt.Errorf("empty rule entry")
		}
		sev, err := convertESLintSeverity(typedVal[0])
		if err != nil {
			return cfg, err
		}
		applySeverity(&cfg, sev)
		if opts := convertRuleOptions(typedVal[1:]); len(opts) > 0 {
			cfg.Options = opts
		}
	case nil:
		// Explicitly null means disabled
		disabled := false
		cfg.Enabled = &disabled
	default:
		return cfg, fmt.Errorf("unsupported value type %T", value)
	}

	return cfg, nil
}

// applySeverity sets the Enabled/Severity pair for a converted severity.
func applySeverity(cfg *config.RuleConfig, sev config.Severity) {
	if sev == config.SeverityOff {
		disabled := false
		cfg.Enabled = &disabled
		return
	}

	enabled := true
	cfg.Enabled = &enabled
	cfg.Severity = &sev
}

// convertESLintSeverity converts an ESLint severity value to ours.
// Both the numeric (0/1/2) and named ("off"/"warn"/"error") forms appear in
// the wild; JSON numbers decode as float64.
func convertESLintSeverity(value any) (config.Severity, error) {
	switch v := value.(type) {
	case string:
		return config.ParseSeverity(v)
	case int:
		sev := config.Severity(v)
		if !sev.IsValid() {
			return config.SeverityOff, fmt.Errorf("invalid severity %d", v)
		}
		return sev, nil
	case float64:
		sev := config.Severity(int(v))
		if !sev.IsValid() {
			return config.SeverityOff, fmt.Errorf("invalid severity %v", v)
		}
		return sev, nil
	default:
		return config.SeverityOff, fmt.Errorf("invalid severity value type %T", value)
	}
}

// convertRuleOptions converts ESLint positional rule options to an options map.
// Object options transfer keyed as-is; a bare scalar transfers under "max",
// which covers the numeric-limit rules (ESLint's max-params allows both
// ["error", 3] and ["error", {"max": 3}]).
func convertRuleOptions(extra []any) map[string]any {
	opts := make(map[string]any)

	for _, entry := range extra {
		switch typedVal := entry.(type) {
		case map[string]any:
			for key, optVal := range typedVal {
				opts[key] = normalizeOptionValue(optVal)
			}
		case float64:
			opts["max"] = int(typedVal)
		case int:
			opts["max"] = typedVal
		}
	}

	if len(opts) == 0 {
		return nil
	}
	return opts
}

// normalizeOptionValue converts JSON numbers to ints where they are whole,
// so converted options round-trip through YAML cleanly.
func normalizeOptionValue(value any) any {
	if f, ok := value.(float64); ok && f == float64(int(f)) {
		return int(f)
	}
	return value
}

// GenerateMigrationHeader returns a header comment for migrated configs.
func GenerateMigrationHeader(sourcePath string) string {
	return fmt.Sprintf(`# gojslint configuration
# Migrated from: %s
# See: https://github.com/yaklabco/gojslint
`, filepath.Base(sourcePath))
}

// CanMigrate returns true if the config file can be migrated.
// JavaScript config files cannot be migrated.
func CanMigrate(path string) bool {
	return !IsJavaScriptConfig(path)
}

// GetMigrationWarning returns a warning message for files that cannot be migrated.
func GetMigrationWarning(path string) string {
	if IsJavaScriptConfig(path) {
		ext := filepath.Ext(path)
		return fmt.Sprintf("JavaScript config file (%s) cannot be converted automatically; "+
			"please create a .gojslint.yml file manually or run 'gojslint init'", ext)
	}
	return ""
}
