package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gojslint/internal/ui/pretty"
)

// helpStyles holds the Lipgloss styles used for help output. Example text,
// aliases, and type indicators all share the dim style.
type helpStyles struct {
	command    lipgloss.Style
	heading    lipgloss.Style
	subcommand lipgloss.Style
	flag       lipgloss.Style
	desc       lipgloss.Style
	dim        lipgloss.Style
}

func newHelpStyles(colorEnabled bool) *helpStyles {
	base := lipgloss.NewStyle()
	if !colorEnabled {
		return &helpStyles{
			command:    base,
			heading:    base,
			subcommand: base,
			flag:       base,
			desc:       base,
			dim:        base,
		}
	}

	return &helpStyles{
		command:    base.Foreground(lipgloss.Color("14")).Bold(true),
		heading:    base.Foreground(lipgloss.Color("11")).Bold(true),
		subcommand: base.Foreground(lipgloss.Color("10")),
		flag:       base.Foreground(lipgloss.Color("12")),
		desc:       base,
		dim:        base.Foreground(lipgloss.Color("8")),
	}
}

// helpFormatter renders styled help output for Cobra commands.
type helpFormatter struct {
	styles *helpStyles
}

// newHelpFormatter creates a help formatter for the given color mode
// ("auto", "always", "never") and output writer.
func newHelpFormatter(colorMode string, writer io.Writer) *helpFormatter {
	return &helpFormatter{
		styles: newHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

// installHelpStyling replaces the usage and help renderers on a command
// tree with styled equivalents; subcommands inherit them. The formatter
// is built per render, after flag parsing, so --color is honored.
func installHelpStyling(root *cobra.Command) {
	root.SetUsageFunc(func(command *cobra.Command) error {
		return renderHelpTemplate(command, "usage", usageTemplate)
	})

	root.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := renderHelpTemplate(command, "help", helpTemplate); err != nil {
			command.PrintErrln(err)
		}
	})
}

func renderHelpTemplate(command *cobra.Command, name, text string) error {
	h := helpFormatterFor(command)
	tmpl, err := template.New(name).Funcs(h.templateFuncs()).Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", name, err)
	}
	return tmpl.Execute(command.OutOrStdout(), command)
}

// helpFormatterFor resolves the color mode from the root --color flag and
// targets the command's configured output writer.
func helpFormatterFor(command *cobra.Command) *helpFormatter {
	mode := "auto"
	if flag := command.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return newHelpFormatter(mode, command.OutOrStdout())
}

func (h *helpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"styleCommand":            h.styles.command.Render,
		"styleHeading":            h.styles.heading.Render,
		"styleSubcommand":         h.styles.subcommand.Render,
		"styleDescription":        h.styles.desc.Render,
		"styleDim":                h.styles.dim.Render,
		"styleFlagsUsage":         h.styleFlagsUsage,
		"join":                    strings.Join,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

// usageTemplate mirrors Cobra's default usage template with style hooks.
const usageTemplate = `{{ styleHeading "Usage:" }}
  {{if .Runnable}}{{ styleCommand .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ styleCommand .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ styleHeading "Aliases:" }}
  {{ styleDim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleDim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ styleDescription .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlagsUsage .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlagsUsage .InheritedFlags }}
{{- end}}

{{- if .HasHelpSubCommands}}

{{ styleHeading "Additional help topics:" }}{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{ styleSubcommand (rpad .CommandPath .CommandPathPadding) }} {{ styleDescription .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

// helpTemplate prefixes the usage template with the long description.
const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ styleCommand .CommandPath }}{{if .Version}} {{ styleDim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}` + usageTemplate

// flagDescGap matches the column gap pflag leaves between a flag and its
// description.
var flagDescGap = regexp.MustCompile(`\s{2,}`)

// styleFlagsUsage restyles the FlagUsages output of a pflag FlagSet,
// keeping pflag's own alignment.
func (h *helpFormatter) styleFlagsUsage(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine styles one "  -f, --flag type   description" line.
func (h *helpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return line
	}
	indent := line[:len(line)-len(trimmed)]

	// pflag separates the flag column from the description with 2+ spaces.
	flagPart := trimmed
	descPart := ""
	if loc := flagDescGap.FindStringIndex(trimmed); loc != nil {
		flagPart = trimmed[:loc[0]]
		descPart = trimmed[loc[1]:]
	}

	var b strings.Builder
	b.WriteString(indent)
	for i, token := range strings.Fields(flagPart) {
		if i > 0 {
			b.WriteString(" ")
		}
		switch {
		case strings.HasPrefix(token, "-"):
			// Style the flag name, keeping any trailing comma plain.
			name := strings.TrimSuffix(token, ",")
			b.WriteString(h.styles.flag.Render(name))
			b.WriteString(token[len(name):])
		default:
			// Type indicator (string, int, ...).
			b.WriteString(h.styles.dim.Render(token))
		}
	}

	if descPart != "" {
		b.WriteString("   ")
		b.WriteString(h.styles.desc.Render(descPart))
	}
	return b.String()
}

// rpad pads a string to the given width.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

// trimTrailingWhitespaces removes trailing whitespace from each line.
func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
