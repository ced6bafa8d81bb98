// Package configloader provides configuration loading and resolution.
package configloader

import "github.com/yaklabco/gojslint/pkg/lint"

// eslintRuleAliases maps ESLint rule names to their canonical gojslint rule
// names. This enables migration of .eslintrc files where the ESLint ecosystem
// names a check differently, including the plugin-scoped names from
// eslint-plugin-functional and eslint-plugin-fp.
//
//nolint:gochecknoglobals // Read-only lookup table.
var eslintRuleAliases = map[string]string{
	// Core ESLint names that match ours directly.
	"no-var":      "no-var",
	"no-console":  "no-console",
	"no-debugger": "no-debugger",
	"no-eval":     "no-eval",

	// Core names whose gojslint counterpart is namespaced.
	"max-params": "style/max-params",
	"no-empty":   "style/no-empty-block",

	// eslint-plugin-functional.
	"functional/no-loop-statements": "no-loops",
	"functional/no-loop-statement":  "no-loops",
	"functional/no-classes":         "no-class",
	"functional/no-class":           "no-class",
	"functional/immutable-data":     "no-mutation",

	// eslint-plugin-fp.
	"fp/no-loops":    "no-loops",
	"fp/no-class":    "no-class",
	"fp/no-mutation": "no-mutation",
}

// eslintExtendsPresets maps ESLint "extends" entries to gojslint presets.
// Entries not listed here produce a migration warning instead.
//
//nolint:gochecknoglobals // Read-only lookup table.
var eslintExtendsPresets = map[string]string{
	"eslint:recommended":               lint.PresetRecommended,
	"eslint:all":                       lint.PresetAll,
	"plugin:functional/recommended":    lint.PresetRecommended,
	"plugin:functional/strict":         lint.PresetStrict,
	"plugin:functional/all":            lint.PresetAll,
	"plugin:fp/recommended":            lint.PresetRecommended,
	"plugin:@typescript-eslint/strict": lint.PresetStrict,
}

// NormalizeESLintRule converts an ESLint rule name to the canonical gojslint
// rule name. Returns the empty string if the name has no counterpart here.
func NormalizeESLintRule(key string) string {
	// Check the explicit alias table first: it covers plugin-scoped names
	// the registry knows nothing about.
	if name, ok := eslintRuleAliases[key]; ok {
		return name
	}

	// Fall back to the registry, which resolves canonical names and the
	// aliases rules register for themselves.
	if canonical, _, found := lint.DefaultRegistry.Resolve(key); found {
		return canonical
	}

	return ""
}

// PresetForExtends maps an ESLint "extends" entry to a gojslint preset name.
// Returns the empty string for entries with no counterpart.
func PresetForExtends(extends string) string {
	return eslintExtendsPresets[extends]
}
