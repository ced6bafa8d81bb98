package configloader

import (
	"fmt"
	"path/filepath"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/lint"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.no-var.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

func (e *ValidationError) Error() string {
	prefix := ""
	switch {
	case e.FilePath != "" && e.Line > 0:
		prefix = fmt.Sprintf("%s:%d: ", e.FilePath, e.Line)
	case e.FilePath != "":
		prefix = e.FilePath + ": "
	}
	if e.Field != "" {
		return prefix + e.Field + ": " + e.Message
	}
	return prefix + e.Message
}

// ValidationResult accumulates validation findings. Errors prevent
// loading; warnings surface through LoadResult but do not block.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Dialect != "" && !cfg.Dialect.IsValid() {
		result.fail("dialect", cfg.Dialect,
			"invalid dialect %q; must be one of: auto, javascript, typescript", cfg.Dialect)
	}
	if !cfg.SeverityDefault.IsValid() {
		result.fail("severity_default", cfg.SeverityDefault,
			"invalid severity %q; must be one of: off, warn, error", cfg.SeverityDefault)
	}
	if !lint.ValidPreset(cfg.Preset) {
		result.fail("preset", cfg.Preset,
			"invalid preset %q; must be one of: recommended, strict, all", cfg.Preset)
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.fail("format", cfg.Format,
			"invalid format %q; must be one of: text, compact, table, json, sarif, diff, summary", cfg.Format)
	}
	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}
	if mode := cfg.Backups.Mode; mode != "" && mode != "sidecar" && mode != "none" {
		result.fail("backups.mode", mode,
			"invalid backup mode %q; must be one of: sidecar, none", mode)
	}

	result.checkRules(cfg.Rules)
	result.checkIgnorePatterns(cfg.Ignore)

	return result
}

// checkRules validates per-rule configuration. Unknown rule names are
// warnings rather than errors so a shared config can carry rules this
// build does not know about.
func (r *ValidationResult) checkRules(rules map[string]config.RuleConfig) {
	for ruleKey, ruleCfg := range rules {
		if _, _, found := lint.DefaultRegistry.Resolve(ruleKey); !found {
			r.warn("rules."+ruleKey, ruleKey, "unknown rule %q; it will be ignored", ruleKey)
		}
		if ruleCfg.Severity != nil && !ruleCfg.Severity.IsValid() {
			r.fail("rules."+ruleKey+".severity", *ruleCfg.Severity,
				"invalid severity %q; must be one of: off, warn, error", *ruleCfg.Severity)
		}
	}
}

// checkIgnorePatterns rejects malformed globs up front rather than
// letting them silently match nothing during discovery.
func (r *ValidationResult) checkIgnorePatterns(patterns []string) {
	for i, pattern := range patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			r.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}
}
