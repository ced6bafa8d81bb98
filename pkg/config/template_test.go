package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojslint/pkg/config"
)

func TestGenerateTemplate_Minimal(t *testing.T) {
	out, err := config.GenerateTemplate(config.TemplateOptions{})
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "dialect: auto")
	assert.Contains(t, text, "preset: recommended")
	// Without an explicit choice the severity line stays commented.
	assert.Contains(t, text, "# severity_default:")
}

func TestGenerateTemplate_MinimalWithChoices(t *testing.T) {
	out, err := config.GenerateTemplate(config.TemplateOptions{
		Preset:          "strict",
		Dialect:         "typescript",
		SeverityDefault: "error",
	})
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "dialect: typescript")
	assert.Contains(t, text, "preset: strict")
	assert.Contains(t, text, "severity_default: error")
	assert.NotContains(t, text, "# severity_default:")
}

func TestGenerateTemplate_Full(t *testing.T) {
	out, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "fix: false")
	assert.Contains(t, text, "cache:")
	assert.Contains(t, text, "no-var:")
	assert.Contains(t, text, "style/max-params:")
	// Opt-in rules render disabled.
	assert.Contains(t, text, "severity: off")
}

func TestGenerateTemplate_FullIncludeRules(t *testing.T) {
	out, err := config.GenerateTemplate(config.TemplateOptions{
		Full:         true,
		IncludeRules: []string{"no-class"},
	})
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "no-class:")
	assert.NotContains(t, text, "no-mutation")
}

func TestGenerateTemplate_JSON(t *testing.T) {
	out, err := config.GenerateTemplate(config.TemplateOptions{Format: "json"})
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(out, &parsed))

	assert.Equal(t, "auto", parsed["dialect"])
	assert.Equal(t, "recommended", parsed["preset"])
	assert.Equal(t, "warn", parsed["severity_default"])

	rules, ok := parsed["rules"].(map[string]any)
	require.True(t, ok, "rules should be an object")
	assert.Contains(t, rules, "no-var")
	assert.Contains(t, rules, "style/no-empty-block")
}

func TestGenerateTemplate_JSONWithChoices(t *testing.T) {
	out, err := config.GenerateTemplate(config.TemplateOptions{
		Format:          "json",
		Preset:          "all",
		Dialect:         "javascript",
		SeverityDefault: "error",
	})
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(out, &parsed))

	assert.Equal(t, "javascript", parsed["dialect"])
	assert.Equal(t, "all", parsed["preset"])
	assert.Equal(t, "error", parsed["severity_default"])
}
