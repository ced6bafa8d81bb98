package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gojslint/pkg/config"
)

// envVarPrefix is the prefix for all gojslint environment variables.
const envVarPrefix = "GOJSLINT_"

// envSetter applies one environment value to the config.
type envSetter func(cfg *config.Config, value, envVar string) error

// envSetters maps each variable (by suffix, so DIALECT handles
// GOJSLINT_DIALECT) to the function that parses and applies it.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envSetters = map[string]envSetter{
	"DIALECT": func(cfg *config.Config, v, _ string) error {
		cfg.Dialect = config.Dialect(v)
		return nil
	},
	"SEVERITY_DEFAULT": func(cfg *config.Config, v, envVar string) error {
		sev, err := config.ParseSeverity(v)
		if err != nil {
			return fmt.Errorf("invalid severity for %s: %w", envVar, err)
		}
		cfg.SeverityDefault = sev
		return nil
	},
	"PRESET": func(cfg *config.Config, v, _ string) error {
		cfg.Preset = v
		return nil
	},
	"FORMAT": func(cfg *config.Config, v, _ string) error {
		cfg.Format = config.OutputFormat(v)
		return nil
	},
	"BACKUPS_MODE": func(cfg *config.Config, v, _ string) error {
		cfg.Backups.Mode = v
		return nil
	},
	"CACHE_LOCATION": func(cfg *config.Config, v, _ string) error {
		cfg.Cache.Location = v
		return nil
	},
	"JOBS": func(cfg *config.Config, v, envVar string) error {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, v)
		}
		cfg.Jobs = jobs
		return nil
	},
	"IGNORE": func(cfg *config.Config, v, _ string) error {
		cfg.Ignore = splitEnvList(v)
		return nil
	},
	"FIX":             boolEnv(func(cfg *config.Config, b bool) { cfg.Fix = b }),
	"DRY_RUN":         boolEnv(func(cfg *config.Config, b bool) { cfg.DryRun = b }),
	"BACKUPS_ENABLED": boolEnv(func(cfg *config.Config, b bool) { cfg.Backups.Enabled = b }),
	"NO_BACKUPS":      boolEnv(func(cfg *config.Config, b bool) { cfg.NoBackups = b }),
	"NO_CACHE":        boolEnv(func(cfg *config.Config, b bool) { cfg.NoCache = b }),
}

// boolEnv wraps a bool assignment with the shared parsing and error text.
func boolEnv(assign func(*config.Config, bool)) envSetter {
	return func(cfg *config.Config, value, envVar string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		assign(cfg, b)
		return nil
	}
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with GOJSLINT_ (e.g., GOJSLINT_DIALECT); empty
// values count as unset.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for suffix, apply := range envSetters {
		envVar := envVarPrefix + suffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if err := apply(cfg, value, envVar); err != nil {
			return err
		}
	}
	return nil
}

// splitEnvList parses a comma-separated value, trimming whitespace and
// dropping empty elements.
func splitEnvList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
