package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all rules with their documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// Preset names the rule pack in the generated config.
	// Empty means "recommended".
	Preset string

	// Dialect names the parser dialect in the generated config.
	// Empty means "auto".
	Dialect string

	// SeverityDefault, when set, writes an uncommented default severity.
	SeverityDefault string

	// IncludeRules is a list of rule names to include.
	// If empty, all rules are included.
	IncludeRules []string

	// IncludeDefaults includes fields that match the default values.
	IncludeDefaults bool
}

// presetOrDefault returns the preset to render, defaulting to recommended.
func (o TemplateOptions) presetOrDefault() string {
	if o.Preset == "" {
		return "recommended"
	}
	return o.Preset
}

// dialectOrDefault returns the dialect to render, defaulting to auto.
func (o TemplateOptions) dialectOrDefault() string {
	if o.Dialect == "" {
		return string(DialectAuto)
	}
	return o.Dialect
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	Name        string
	Description string
	Category    string
	Kind        string
	Recommended Severity
	Fixable     bool
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the lint rules package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate(opts)
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON(opts)
	}

	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Parser dialect: auto, javascript, or typescript
`)
	fmt.Fprintf(&buf, "dialect: %s\n", opts.dialectOrDefault())

	buf.WriteString(`
# Rule pack to start from: recommended, strict, or all
`)
	fmt.Fprintf(&buf, "preset: %s\n", opts.presetOrDefault())

	buf.WriteString(`
# Default severity for rules enabled without one: off, warn, or error
`)
	if opts.SeverityDefault != "" {
		fmt.Fprintf(&buf, "severity_default: %s\n", opts.SeverityDefault)
	} else {
		buf.WriteString("# severity_default: warn\n")
	}

	buf.WriteString(`
# Number of parallel workers (0 = auto)
# jobs: 0

# File patterns to ignore (glob patterns)
# ignore:
#   - "node_modules/**"
#   - "dist/**"

# Rule-specific configuration
# rules:
#   no-loops:
#     enabled: true
#     severity: error
#   style/max-params:
#     enabled: true
#     options:
#       max: 4
`)

	return buf.Bytes(), nil
}

// generateFullTemplate creates a full template with all rules documented.
func generateFullTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON(opts)
	}

	var buf bytes.Buffer

	buf.WriteString(`# gojslint configuration - Full Template
# See: https://github.com/yaklabco/gojslint
#
# This template includes all available rules with their default settings.
# Uncomment and modify settings as needed.

# Parser dialect: auto, javascript, or typescript
`)
	fmt.Fprintf(&buf, "dialect: %s\n", opts.dialectOrDefault())

	buf.WriteString(`
# Rule pack to start from: recommended, strict, or all
`)
	fmt.Fprintf(&buf, "preset: %s\n", opts.presetOrDefault())

	buf.WriteString(`
# Default severity for rules enabled without one: off, warn, or error
`)
	severityDefault := opts.SeverityDefault
	if severityDefault == "" {
		severityDefault = SeverityWarn.String()
	}
	fmt.Fprintf(&buf, "severity_default: %s\n", severityDefault)

	buf.WriteString(`
# Enable auto-fix mode
fix: false

# Show changes without applying them (requires fix: true)
dry_run: false

# Number of parallel workers (0 = auto based on CPU cores)
jobs: 0

# Output format: text, compact, json, sarif, summary, or diff
format: text

# Backup configuration for auto-fix
backups:
  enabled: true
  mode: sidecar

# Result cache
cache:
  enabled: true
  # location: ~/.cache/gojslint/results.bin

# File patterns to ignore (glob patterns)
ignore:
  - "node_modules/**"
  - "dist/**"
  - "coverage/**"

# Rules to explicitly enable (overrides the preset)
# enable_rules:
#   - no-console
#   - no-eval

# Rules to explicitly disable
# disable_rules:
#   - no-loops

# Rules to allow auto-fixing
# fix_rules:
#   - no-var
#   - no-debugger

# Rule-specific configuration
rules:
`)

	// Get rule information
	rules := getRuleInfos()

	// Filter by IncludeRules if specified
	if len(opts.IncludeRules) > 0 {
		includeSet := make(map[string]bool)
		for _, name := range opts.IncludeRules {
			includeSet[name] = true
		}
		filtered := make([]RuleInfo, 0)
		for _, r := range rules {
			if includeSet[r.Name] {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	// Sort by name
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Name < rules[j].Name
	})

	// Write each rule
	for _, rule := range rules {
		buf.WriteString(fmt.Sprintf("\n  # %s (%s)\n", rule.Name, rule.Kind))
		buf.WriteString(fmt.Sprintf("  # %s\n", wrapComment(rule.Description, commentWrapWidth)))
		if rule.Category != "" {
			buf.WriteString(fmt.Sprintf("  # Category: %s\n", rule.Category))
		}
		if rule.Fixable {
			buf.WriteString("  # Auto-fix: yes\n")
		}
		buf.WriteString(fmt.Sprintf("  %s:\n", rule.Name))
		buf.WriteString(fmt.Sprintf("    enabled: %t\n", rule.Recommended != SeverityOff))
		buf.WriteString(fmt.Sprintf("    severity: %s\n", rule.Recommended))
		buf.WriteString("    # options:\n")
		buf.WriteString("    #   key: value\n")
	}

	return buf.Bytes(), nil
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}

	// Fallback mirroring the built-in registry, for callers that never
	// import the rules package.
	return []RuleInfo{
		{
			Name: "no-loops", Kind: "suggestion", Recommended: SeverityWarn,
			Description: "Disallow imperative loop statements",
			Category:    "functional",
		},
		{
			Name: "no-class", Kind: "suggestion", Recommended: SeverityWarn,
			Description: "Disallow class declarations and expressions",
			Category:    "functional",
		},
		{
			Name: "no-mutation", Kind: "suggestion", Recommended: SeverityWarn,
			Description: "Disallow mutating variables and object members",
			Category:    "functional",
		},
		{
			Name: "no-var", Kind: "suggestion", Recommended: SeverityWarn,
			Description: "Require let or const instead of var",
			Category:    "modernization", Fixable: true,
		},
		{
			Name: "no-console", Kind: "suggestion", Recommended: SeverityWarn,
			Description: "Disallow the use of console",
			Category:    "debugging",
		},
		{
			Name: "no-debugger", Kind: "problem", Recommended: SeverityError,
			Description: "Disallow debugger statements",
			Category:    "debugging", Fixable: true,
		},
		{
			Name: "no-eval", Kind: "problem", Recommended: SeverityError,
			Description: "Disallow the use of eval",
			Category:    "security",
		},
		{
			Name: "style/max-params", Kind: "suggestion", Recommended: SeverityOff,
			Description: "Enforce a maximum number of function parameters",
			Category:    "style",
		},
		{
			Name: "style/no-empty-block", Kind: "suggestion", Recommended: SeverityWarn,
			Description: "Disallow empty block statements",
			Category:    "style",
		},
	}
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateToJSON renders the template settings as JSON. Comments cannot
// carry over, so the JSON form is built from the same defaults rather than
// parsed out of the YAML text.
func templateToJSON(opts TemplateOptions) ([]byte, error) {
	severityDefault := opts.SeverityDefault
	if severityDefault == "" {
		severityDefault = SeverityWarn.String()
	}

	cfg := map[string]any{
		"dialect":          opts.dialectOrDefault(),
		"preset":           opts.presetOrDefault(),
		"severity_default": severityDefault,
		"fix":              false,
		"dry_run":          false,
		"jobs":             0,
		"format":           "text",
		"backups": map[string]any{
			"enabled": true,
			"mode":    "sidecar",
		},
		"cache": map[string]any{
			"enabled": true,
		},
		"ignore": []string{"node_modules/**", "dist/**", "coverage/**"},
		"rules":  map[string]any{},
	}

	rulesMap := make(map[string]any)
	for _, r := range getRuleInfos() {
		rulesMap[r.Name] = map[string]any{
			"enabled":  r.Recommended != SeverityOff,
			"severity": r.Recommended.String(),
		}
	}
	cfg["rules"] = rulesMap

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gojslint configuration
# See: https://github.com/yaklabco/gojslint`
}
