// Package config defines core configuration types for gojslint.
// These types are pure data structures with no dependency on any particular
// loader; internal/configloader handles discovery, merging, and validation.
package config

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `mapstructure:"enabled" yaml:"enabled"`
	Severity *Severity      `mapstructure:"severity" yaml:"severity"`
	AutoFix  *bool          `mapstructure:"auto_fix" yaml:"auto_fix"`
	Options  map[string]any `mapstructure:"options" yaml:"options"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode"` // "sidecar", "xdg", etc.
}

// CacheConfig controls the on-disk result cache.
type CacheConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Location is the cache file path. Empty means the XDG cache
	// directory (~/.cache/gojslint/results.bin).
	Location string `mapstructure:"location" yaml:"location"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatCompact OutputFormat = "compact"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is one of the supported outputs.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatCompact, FormatTable, FormatJSON, FormatSARIF, FormatDiff, FormatSummary:
		return true
	default:
		return false
	}
}

// RuleFormat controls how rule names appear in output.
type RuleFormat string

const (
	RuleFormatFull     RuleFormat = "full"     // "style/max-params"
	RuleFormatShort    RuleFormat = "short"    // "max-params"
	RuleFormatCombined RuleFormat = "combined" // "style/max-params (suggestion)"
)

// SummaryOrder controls the order of tables in summary output.
type SummaryOrder string

const (
	// SummaryOrderRules shows the rules table first (default).
	SummaryOrderRules SummaryOrder = "rules"
	// SummaryOrderFiles shows the files table first.
	SummaryOrderFiles SummaryOrder = "files"
)

// IsValid returns true if the summary order is valid.
func (s SummaryOrder) IsValid() bool {
	switch s {
	case SummaryOrderRules, SummaryOrderFiles:
		return true
	default:
		return false
	}
}

// Dialect selects the grammar used for parsing.
type Dialect string

const (
	// DialectAuto picks the grammar per file from its extension and content.
	DialectAuto       Dialect = "auto"
	DialectJavaScript Dialect = "javascript"
	DialectTypeScript Dialect = "typescript"
)

// IsValid returns true if the dialect is one of the supported grammars.
func (d Dialect) IsValid() bool {
	switch d {
	case DialectAuto, DialectJavaScript, DialectTypeScript:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for gojslint.
type Config struct {
	// Dialect selects the parser grammar ("auto", "javascript", "typescript").
	Dialect Dialect `mapstructure:"dialect" yaml:"dialect"`

	// SeverityDefault is the severity for rules enabled without one.
	SeverityDefault Severity `mapstructure:"severity_default" yaml:"severity_default"`

	// Preset selects a built-in rule pack ("recommended", "strict", "all").
	Preset string `mapstructure:"preset" yaml:"preset"`

	// Rules contains per-rule configuration keyed by rule name.
	Rules map[string]RuleConfig `mapstructure:"rules" yaml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups"`

	// Cache configures the on-disk result cache.
	Cache CacheConfig `mapstructure:"cache" yaml:"cache"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `mapstructure:"-" yaml:"-"`

	// DryRun shows what would be fixed without making changes.
	DryRun bool `mapstructure:"-" yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// RuleFormat controls how rule names appear in output.
	RuleFormat RuleFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-"`

	// EnableRules contains rule names to explicitly enable.
	EnableRules []string `mapstructure:"-" yaml:"-"`

	// DisableRules contains rule names to explicitly disable.
	DisableRules []string `mapstructure:"-" yaml:"-"`

	// FixRules limits auto-fixing to specific rule names.
	FixRules []string `mapstructure:"-" yaml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `mapstructure:"-" yaml:"-"`

	// NoCache disables the result cache for this run.
	NoCache bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Dialect:         DialectAuto,
		SeverityDefault: SeverityWarn,
		Preset:          "recommended",
		Rules:           make(map[string]RuleConfig),
		Ignore:          nil,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Format:     FormatText,
		RuleFormat: RuleFormatFull,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}
