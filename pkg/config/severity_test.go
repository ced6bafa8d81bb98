package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojslint/pkg/config"
)

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "off", config.SeverityOff.String())
	assert.Equal(t, "warn", config.SeverityWarn.String())
	assert.Equal(t, "error", config.SeverityError.String())
	assert.Equal(t, "severity(7)", config.Severity(7).String())
}

func TestSeverity_IsValid(t *testing.T) {
	assert.True(t, config.SeverityOff.IsValid())
	assert.True(t, config.SeverityWarn.IsValid())
	assert.True(t, config.SeverityError.IsValid())
	assert.False(t, config.Severity(-1).IsValid())
	assert.False(t, config.Severity(3).IsValid())
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input   string
		want    config.Severity
		wantErr bool
	}{
		{"off", config.SeverityOff, false},
		{"warn", config.SeverityWarn, false},
		{"warning", config.SeverityWarn, false},
		{"error", config.SeverityError, false},
		{"0", config.SeverityOff, false},
		{"1", config.SeverityWarn, false},
		{"2", config.SeverityError, false},
		{"ERROR", config.SeverityError, false},
		{"  warn  ", config.SeverityWarn, false},
		{"fatal", 0, true},
		{"3", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := config.ParseSeverity(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity_Ordering(t *testing.T) {
	// The numeric values carry meaning: higher is more severe.
	assert.Less(t, int(config.SeverityOff), int(config.SeverityWarn))
	assert.Less(t, int(config.SeverityWarn), int(config.SeverityError))
}
