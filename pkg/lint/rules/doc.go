// Package rules provides the built-in lint rules for gojslint.
//
// # Rule Domains
//
//   - Functional style:
//
//   - no-loops - Disallow imperative loop statements
//
//   - no-class - Disallow class declarations and expressions
//
//   - no-mutation - Disallow mutating variables and object members
//
//   - Declarations:
//
//   - no-var - Require let or const instead of var (fixable)
//
//   - Safety and debugging:
//
//   - no-console - Disallow the use of console
//
//   - no-debugger - Disallow debugger statements (fixable)
//
//   - no-eval - Disallow the use of eval
//
//   - Style (namespaced plugin, pkg/lint/rules/style):
//
//   - style/max-params - Enforce a maximum number of function parameters
//
//   - style/no-empty-block - Disallow empty block statements
//
// # Rule Names
//
// Core rules use their plain ESLint-compatible names. Plugin rules are
// namespaced as "plugin/rule"; RegisterAliases adds the plain ESLint names
// as aliases where they differ.
//
// # Rule Packs
//
// Packs are the built-in presets resolved by lint.ResolveRules:
//
//   - recommended: rules with a recommended severity, at that severity
//   - strict: every rule enabled at error severity
//   - all: every rule enabled, opt-in rules at the default severity
//
// Use Packs or PackNames to access pack definitions programmatically.
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll. Each rule
// is a declarative lint.Rule with a Create factory returning the visitors
// the rule subscribes to.
package rules
