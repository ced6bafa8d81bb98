package pretty_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojslint/internal/ui/pretty"
)

func TestNewStyles_NoColorIsPassthrough(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	// Every style must leave text untouched when color is off.
	rendered := map[string]string{
		"Error":        styles.Error.Render("x"),
		"Warning":      styles.Warning.Render("x"),
		"FilePath":     styles.FilePath.Render("x"),
		"RuleID":       styles.RuleID.Render("x"),
		"SourceLine":   styles.SourceLine.Render("x"),
		"Caret":        styles.Caret.Render("x"),
		"DiffAdd":      styles.DiffAdd.Render("x"),
		"DiffRemove":   styles.DiffRemove.Render("x"),
		"SummaryTitle": styles.SummaryTitle.Render("x"),
		"Success":      styles.Success.Render("x"),
		"TableHeader":  styles.TableHeader.Render("x"),
		"Dim":          styles.Dim.Render("x"),
		"Bold":         styles.Bold.Render("x"),
	}
	for name, got := range rendered {
		assert.Equal(t, "x", got, "%s should not add formatting without color", name)
	}
}

func TestNewStyles_ColorRendersText(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// Lipgloss may strip ANSI codes outside a TTY, so only assert the text
	// itself survives rendering.
	assert.Contains(t, styles.Error.Render("boom"), "boom")
	assert.Contains(t, styles.Success.Render("clean"), "clean")
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name    string
		mode    string
		writer  io.Writer
		noColor string
		want    bool
	}{
		{name: "always", mode: "always", writer: &buf, want: true},
		{name: "never on stdout", mode: "never", writer: os.Stdout, want: false},
		{name: "auto with non-TTY writer", mode: "auto", writer: &buf, want: false},
		{name: "auto with NO_COLOR set", mode: "auto", writer: os.Stdout, noColor: "1", want: false},
		{name: "empty mode behaves as auto", mode: "", writer: &buf, want: false},
		{name: "unknown mode behaves as auto", mode: "whatever", writer: &buf, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)

			got := pretty.IsColorEnabled(tt.mode, tt.writer)
			assert.Equal(t, tt.want, got)
		})
	}
}
