package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity is the closed set of diagnostic severity levels. The numeric
// values are part of the configuration format: 0 disables a rule, 1 reports
// without failing the run, 2 reports and fails the run.
type Severity int

const (
	SeverityOff   Severity = 0
	SeverityWarn  Severity = 1
	SeverityError Severity = 2
)

// String returns the canonical name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// IsValid returns true if s is one of the three defined levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityOff, SeverityWarn, SeverityError:
		return true
	default:
		return false
	}
}

// ParseSeverity accepts the named form ("off"/"warn"/"error") and the
// numeric form ("0"/"1"/"2"). "warning" is accepted as an alias for "warn".
func ParseSeverity(v string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "off", "0":
		return SeverityOff, nil
	case "warn", "warning", "1":
		return SeverityWarn, nil
	case "error", "2":
		return SeverityError, nil
	default:
		return SeverityOff, fmt.Errorf("invalid severity %q (want off, warn, error, or 0-2)", v)
	}
}

// MarshalYAML writes the named form so generated configs stay readable.
func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML accepts both names and numbers.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var num int
	if err := value.Decode(&num); err == nil {
		sev := Severity(num)
		if !sev.IsValid() {
			return fmt.Errorf("invalid severity %d (want 0, 1, or 2)", num)
		}
		*s = sev
		return nil
	}

	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("invalid severity value: %w", err)
	}

	sev, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}
