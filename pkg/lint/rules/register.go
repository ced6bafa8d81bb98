package rules

import (
	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/lint"
	"github.com/yaklabco/gojslint/pkg/lint/rules/style"
)

// RegisterAll registers all built-in rules with the given registry.
// Registration failures are rule-author bugs, so they panic.
func RegisterAll(registry *lint.Registry) {
	// Functional rules
	registry.MustRegister(NewNoLoopsRule())
	registry.MustRegister(NewNoClassRule())
	registry.MustRegister(NewNoMutationRule())

	// Declaration rules
	registry.MustRegister(NewNoVarRule())

	// Safety rules
	registry.MustRegister(NewNoConsoleRule())
	registry.MustRegister(NewNoDebuggerRule())
	registry.MustRegister(NewNoEvalRule())

	// Namespaced style plugin (style/max-params, style/no-empty-block)
	registry.MustRegisterPlugin(style.Plugin())
}

// RegisterAliases registers the shorthand names ESLint configurations use
// for rules whose canonical name here is namespaced or differs.
func RegisterAliases(registry *lint.Registry) {
	// style/max-params is plain max-params in ESLint configs.
	registry.RegisterAlias("max-params", "style/max-params")

	// style/no-empty-block matches ESLint's no-empty.
	registry.RegisterAlias("no-empty", "style/no-empty-block")
}

// ruleInfos adapts the registry's rule list to config's template metadata.
func ruleInfos(registry *lint.Registry) []config.RuleInfo {
	registered := registry.Rules()
	infos := make([]config.RuleInfo, 0, len(registered))
	for _, rule := range registered {
		infos = append(infos, config.RuleInfo{
			Name:        rule.Name,
			Description: rule.Description,
			Category:    rule.Category,
			Kind:        rule.Kind.String(),
			Recommended: rule.Recommended,
			Fixable:     rule.Fixable,
		})
	}
	return infos
}

// init registers all built-in rules with the default registry and exposes
// their metadata to config template generation.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterAliases(lint.DefaultRegistry)
	config.DefaultRuleInfoProvider = func() []config.RuleInfo {
		return ruleInfos(lint.DefaultRegistry)
	}
}
