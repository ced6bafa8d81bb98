package configloader

import (
	"maps"

	"github.com/yaklabco/gojslint/pkg/config"
)

// merge layers override on top of base and returns the combined config.
// A zero value in the overriding layer means "not set" and leaves the
// base value alone; slices replace wholesale; rule maps merge per key.
//
// Two consequences worth knowing: a layer cannot reset SeverityDefault
// back to off (off is the zero value), and plain bools like Fix can only
// be switched on by a layer, never off. The explicit off switches
// (NoCache, NoBackups, per-rule enabled) exist for that reason.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	out := *base

	out.Dialect = overlay(base.Dialect, override.Dialect)
	out.SeverityDefault = overlay(base.SeverityDefault, override.SeverityDefault)
	out.Preset = overlay(base.Preset, override.Preset)
	out.Format = overlay(base.Format, override.Format)
	out.RuleFormat = overlay(base.RuleFormat, override.RuleFormat)
	out.Jobs = overlay(base.Jobs, override.Jobs)

	out.Fix = base.Fix || override.Fix
	out.DryRun = base.DryRun || override.DryRun
	out.NoBackups = base.NoBackups || override.NoBackups
	out.NoCache = base.NoCache || override.NoCache

	out.Backups.Enabled = base.Backups.Enabled || override.Backups.Enabled
	out.Backups.Mode = overlay(base.Backups.Mode, override.Backups.Mode)
	out.Cache.Enabled = base.Cache.Enabled || override.Cache.Enabled
	out.Cache.Location = overlay(base.Cache.Location, override.Cache.Location)

	out.Rules = mergeRules(base.Rules, override.Rules)

	// nil means "not set"; a non-nil empty slice clears the base list.
	out.Ignore = overlaySlice(base.Ignore, override.Ignore)
	out.EnableRules = overlaySlice(base.EnableRules, override.EnableRules)
	out.DisableRules = overlaySlice(base.DisableRules, override.DisableRules)
	out.FixRules = overlaySlice(base.FixRules, override.FixRules)

	return &out
}

// overlay returns override unless it is the zero value, in which case
// base survives.
func overlay[T comparable](base, override T) T {
	var zero T
	if override == zero {
		return base
	}
	return override
}

func overlaySlice[T any](base, override []T) []T {
	if override == nil {
		return base
	}
	return override
}

// mergeRules combines rule maps key by key. Keys present in both get
// their configs merged field-wise; the result is always a fresh map so
// neither input is mutated.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if base == nil && override == nil {
		return nil
	}

	out := make(map[string]config.RuleConfig, len(base)+len(override))
	maps.Copy(out, base)
	for key, rc := range override {
		if existing, ok := out[key]; ok {
			rc = mergeRuleConfig(existing, rc)
		}
		out[key] = rc
	}
	return out
}

// mergeRuleConfig overlays one rule's config on another. The tri-state
// pointers carry "not set" as nil, so any non-nil override wins; options
// merge per key into a fresh map.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	out := base

	if override.Enabled != nil {
		out.Enabled = override.Enabled
	}
	if override.Severity != nil {
		out.Severity = override.Severity
	}
	if override.AutoFix != nil {
		out.AutoFix = override.AutoFix
	}

	if len(override.Options) > 0 {
		merged := make(map[string]any, len(base.Options)+len(override.Options))
		maps.Copy(merged, base.Options)
		maps.Copy(merged, override.Options)
		out.Options = merged
	}

	return out
}
