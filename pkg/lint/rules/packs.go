package rules

import (
	"github.com/yaklabco/gojslint/pkg/lint"
)

// Pack describes a built-in rule preset. Presets are resolved against rule
// metadata by lint.ResolveRules; a Pack is the displayable description of
// one preset, used where presets are offered to the user.
type Pack struct {
	// Name is the preset identifier ("recommended", "strict", "all").
	Name string

	// Description explains the purpose and characteristics of the pack.
	Description string
}

// Packs returns all built-in rule packs.
func Packs() []Pack {
	return []Pack{
		{
			Name:        lint.PresetRecommended,
			Description: "Rules with a recommended severity, at that severity",
		},
		{
			Name:        lint.PresetStrict,
			Description: "Every rule enabled at error severity",
		},
		{
			Name:        lint.PresetAll,
			Description: "Every rule enabled, opt-in rules at the default severity",
		},
	}
}

// PackNames returns the names of all available packs, in display order.
func PackNames() []string {
	packs := Packs()
	names := make([]string, len(packs))
	for i, p := range packs {
		names[i] = p.Name
	}
	return names
}
