package lint

import (
	"strings"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/jsast"
)

// ComposeOverrides optionally overrides metadata of a composed rule.
// Zero-value fields (nil pointers, empty strings, nil maps) leave the
// corresponding merged value in place.
type ComposeOverrides struct {
	Name        string
	Kind        *RuleKind
	Description string
	Category    string
	Recommended *config.Severity
	Messages    map[string]string
}

// Compose merges multiple rules into a single rule that runs all of them
// in one visitor pass.
//
// The composed rule's kind is the strictest among inputs; description,
// category, and recommended severity take the last non-zero input; message
// templates are unioned with later inputs winning on key collision;
// overrides apply last. The composed Create invokes every component factory
// with the same context, so all diagnostics carry the composed rule's name.
//
// Composing zero rules is a configuration error. Composing exactly one rule
// with no overrides returns that rule unchanged.
func Compose(rules []*Rule, overrides *ComposeOverrides) (*Rule, error) {
	if len(rules) == 0 {
		return nil, newConfigError("cannot compose an empty rule set")
	}
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
	}
	if len(rules) == 1 && overrides == nil {
		return rules[0], nil
	}

	composed := &Rule{
		Name: composedName(rules),
		Kind: RuleKindLayout,
	}

	for _, rule := range rules {
		if rule.Kind > composed.Kind {
			composed.Kind = rule.Kind
		}
		if rule.Description != "" {
			composed.Description = rule.Description
		}
		if rule.Category != "" {
			composed.Category = rule.Category
		}
		if rule.Recommended != config.SeverityOff {
			composed.Recommended = rule.Recommended
		}
		composed.Fixable = composed.Fixable || rule.Fixable
	}

	composed.Messages = make(map[string]string)
	for _, rule := range rules {
		for id, template := range rule.Messages {
			composed.Messages[id] = template
		}
	}

	if overrides != nil {
		if overrides.Name != "" {
			composed.Name = overrides.Name
		}
		if overrides.Kind != nil {
			composed.Kind = *overrides.Kind
		}
		if overrides.Description != "" {
			composed.Description = overrides.Description
		}
		if overrides.Category != "" {
			composed.Category = overrides.Category
		}
		if overrides.Recommended != nil {
			composed.Recommended = *overrides.Recommended
		}
		for id, template := range overrides.Messages {
			composed.Messages[id] = template
		}
	}

	parts := make([]*Rule, len(rules))
	copy(parts, rules)
	composed.Create = func(ctx *RuleContext) VisitorMap {
		return mergeVisitors(parts, ctx)
	}

	return composed, nil
}

// composedName derives the default name: "composed:" plus the short names
// of all inputs joined by "+".
func composedName(rules []*Rule) string {
	shorts := make([]string, len(rules))
	for i, rule := range rules {
		shorts[i] = rule.ShortName()
	}
	return "composed:" + strings.Join(shorts, "+")
}

// mergeVisitors invokes every component factory with the same context and
// unions the resulting maps. For each node kind, the merged visitor calls
// each component's visitor in input order; components that did not subscribe
// to a kind are skipped for that kind.
func mergeVisitors(parts []*Rule, ctx *RuleContext) VisitorMap {
	maps := make([]VisitorMap, 0, len(parts))
	for _, part := range parts {
		if part.Create == nil {
			continue
		}
		if vm := part.Create(ctx); vm != nil {
			maps = append(maps, vm)
		}
	}

	merged := make(VisitorMap)
	for _, vm := range maps {
		for kind := range vm {
			if _, done := merged[kind]; done {
				continue
			}

			var fns []VisitorFunc
			for _, m := range maps {
				if fn, ok := m[kind]; ok && fn != nil {
					fns = append(fns, fn)
				}
			}
			merged[kind] = func(node *jsast.Node) {
				for _, fn := range fns {
					fn(node)
				}
			}
		}
	}

	return merged
}
