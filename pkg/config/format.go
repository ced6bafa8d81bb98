package config

import "strings"

// FormatRuleName renders a rule name according to the given format.
// fullName is the registered name, possibly plugin-qualified
// ("style/max-params"); kind is the rule kind label ("problem",
// "suggestion", "layout").
func FormatRuleName(format RuleFormat, fullName, kind string) string {
	if fullName == "" {
		return fullName
	}

	switch format {
	case RuleFormatShort:
		return ShortRuleName(fullName)
	case RuleFormatCombined:
		if kind == "" {
			return fullName
		}
		return fullName + " (" + kind + ")"
	case RuleFormatFull:
		return fullName
	default:
		// Default to the full name
		return fullName
	}
}

// ShortRuleName strips the plugin qualifier, if any.
func ShortRuleName(fullName string) string {
	if i := strings.LastIndex(fullName, "/"); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}
