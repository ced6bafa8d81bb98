package lint

import "github.com/yaklabco/gojslint/pkg/config"

// Built-in rule presets.
const (
	// PresetRecommended enables rules with a non-off recommended severity.
	PresetRecommended = "recommended"
	// PresetStrict enables every registered rule at error severity.
	PresetStrict = "strict"
	// PresetAll enables every registered rule at its recommended severity,
	// falling back to the configured default for rules recommended off.
	PresetAll = "all"
)

// ValidPreset reports whether name is a known preset. The empty string is
// valid and means recommended.
func ValidPreset(name string) bool {
	switch name {
	case "", PresetRecommended, PresetStrict, PresetAll:
		return true
	default:
		return false
	}
}

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule *Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for diagnostics from this rule.
	// Always warn or error for an enabled rule.
	Severity config.Severity

	// AutoFix indicates whether fixes from this rule may be applied.
	AutoFix bool

	// Options is the rule-specific option map (may be nil).
	Options map[string]any
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules with their resolved configuration, in the
// registry's sorted name order.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule. Sources apply
// in increasing precedence: preset, per-rule config, CLI enable/disable.
func resolveRule(rule *Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.Recommended != config.SeverityOff,
		Severity: rule.Recommended,
		AutoFix:  false,
		Options:  nil,
	}

	if cfg == nil {
		return rr
	}

	// Preset base.
	switch cfg.Preset {
	case "", PresetRecommended:
		// Defaults above already reflect the recommended set.
	case PresetStrict:
		rr.Enabled = true
		rr.Severity = config.SeverityError
	case PresetAll:
		rr.Enabled = true
		if rr.Severity == config.SeverityOff {
			rr.Severity = fallbackSeverity(cfg)
		}
	}

	// Per-rule config. A severity both sets the level and toggles the rule
	// (off disables); an explicit enabled flag then has the final word.
	if ruleCfg, ok := cfg.Rules[rule.Name]; ok {
		if ruleCfg.Severity != nil {
			rr.Severity = *ruleCfg.Severity
			rr.Enabled = *ruleCfg.Severity != config.SeverityOff
		}
		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		rr.Options = ruleCfg.Options
	}

	// CLI flags beat the config file. Disable wins over enable when a rule
	// is named in both lists.
	if matchesAny(rule, cfg.EnableRules) {
		rr.Enabled = true
	}
	if matchesAny(rule, cfg.DisableRules) {
		rr.Enabled = false
	}

	// An enabled rule always carries a reporting severity.
	if rr.Enabled && (rr.Severity == config.SeverityOff || !rr.Severity.IsValid()) {
		rr.Severity = fallbackSeverity(cfg)
	}

	rr.AutoFix = resolveAutoFix(rule, cfg)
	return rr
}

// resolveAutoFix decides whether fixes from the rule may be applied:
// the rule must be fixable, not opted out in config, pass any --fix-rules
// filter, and --fix must be set.
func resolveAutoFix(rule *Rule, cfg *config.Config) bool {
	if !rule.Fixable || !cfg.Fix {
		return false
	}

	if ruleCfg, ok := cfg.Rules[rule.Name]; ok {
		if ruleCfg.AutoFix != nil && !*ruleCfg.AutoFix {
			return false
		}
	}

	if len(cfg.FixRules) > 0 && !matchesAny(rule, cfg.FixRules) {
		return false
	}

	return true
}

// matchesAny reports whether any name in the list refers to the rule,
// by full name or short name.
func matchesAny(rule *Rule, names []string) bool {
	for _, name := range names {
		if name == rule.Name || name == rule.ShortName() {
			return true
		}
	}
	return false
}

// fallbackSeverity is the severity for rules enabled without one.
func fallbackSeverity(cfg *config.Config) config.Severity {
	if cfg != nil && cfg.SeverityDefault.IsValid() && cfg.SeverityDefault != config.SeverityOff {
		return cfg.SeverityDefault
	}
	return config.SeverityWarn
}
