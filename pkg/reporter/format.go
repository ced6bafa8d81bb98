package reporter

import (
	"fmt"
	"slices"
	"strings"
)

// Format selects an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText    Format = "text"
	FormatCompact Format = "compact"
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatSARIF   Format = "sarif"
	FormatDiff    Format = "diff"
	FormatSummary Format = "summary"
)

// allFormats lists every format in help-text order.
var allFormats = []Format{
	FormatText,
	FormatCompact,
	FormatTable,
	FormatJSON,
	FormatSARIF,
	FormatDiff,
	FormatSummary,
}

// ParseFormat parses a format name. The empty string selects text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	format := Format(name)
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: %s", name, formatList())
	}
	return format, nil
}

func formatList() string {
	names := make([]string, len(allFormats))
	for i, f := range allFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return slices.Contains(allFormats, f)
}
