package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gojslint/internal/logging"
	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/lint/rules"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force       bool
	full        bool
	interactive bool
	format      string
	output      string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gojslint configuration file",
		Long: `Create a new .gojslint.yml configuration file in the current directory
with sensible defaults. The file can be customized to enable/disable rules,
change severities, and configure other options.

Examples:
  gojslint init                   Create minimal .gojslint.yml
  gojslint init --full            Create full config with all rules documented
  gojslint init --interactive     Guided setup wizard
  gojslint init --format json     Create .gojslint.json instead
  gojslint init --output custom.yml  Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all rules documented")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "Guided setup wizard")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .gojslint.yml or .gojslint.json)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	// Validate format
	if flags.format != "yaml" && flags.format != "json" {
		return fmt.Errorf("invalid format %q: must be yaml or json", flags.format)
	}

	tmplOpts := config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	}
	outputPath := flags.output

	if flags.interactive {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			logger.Warn("stdin is not a terminal, skipping wizard and using defaults")
		} else {
			choices, err := runInitWizard(defaultInitPath(flags.format, outputPath))
			if err != nil {
				return err
			}
			tmplOpts.Preset = choices.preset
			tmplOpts.Dialect = choices.dialect
			tmplOpts.SeverityDefault = choices.severity
			outputPath = choices.output
		}
	}

	// Determine output path
	if outputPath == "" {
		outputPath = defaultInitPath(flags.format, "")
	}

	// Make path absolute
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.GenerateTemplate(tmplOpts)
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	// Write file
	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)

	if flags.full {
		logger.Info("full template includes all rules with documentation")
	}

	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'gojslint rules' to see all available rules")

	return nil
}

// defaultInitPath returns the conventional config file name for the format,
// preferring an explicit path when one was given.
func defaultInitPath(format, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if format == "json" {
		return ".gojslint.json"
	}
	return ".gojslint.yml"
}

// initChoices holds the answers collected by the setup wizard.
type initChoices struct {
	preset   string
	dialect  string
	severity string
	output   string
}

// runInitWizard walks the user through preset, dialect, and severity
// selection. It requires a terminal on stdin.
func runInitWizard(defaultPath string) (initChoices, error) {
	var choices initChoices

	fmt.Println()
	fmt.Println("gojslint Configuration Setup")
	fmt.Println("============================")
	fmt.Println()

	// Preset selection, described by the built-in packs.
	packs := rules.Packs()

	presetTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Name | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Name | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Name | green }}",
	}

	presetPrompt := promptui.Select{
		Label:     "Which rule preset should the project start from?",
		Items:     packs,
		Templates: presetTemplates,
	}

	presetIdx, _, err := presetPrompt.Run()
	if err != nil {
		return choices, fmt.Errorf("preset selection cancelled: %w", err)
	}
	choices.preset = packs[presetIdx].Name

	fmt.Println()

	// Dialect selection
	dialects := []struct {
		Label       string
		Description string
		Value       string
	}{
		{"Auto", "Pick the grammar per file from extension and content", string(config.DialectAuto)},
		{"JavaScript", "Parse everything as JavaScript", string(config.DialectJavaScript)},
		{"TypeScript", "Parse everything as TypeScript", string(config.DialectTypeScript)},
	}

	dialectTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	dialectPrompt := promptui.Select{
		Label:     "Which dialect does the project use?",
		Items:     dialects,
		Templates: dialectTemplates,
	}

	dialectIdx, _, err := dialectPrompt.Run()
	if err != nil {
		return choices, fmt.Errorf("dialect selection cancelled: %w", err)
	}
	choices.dialect = dialects[dialectIdx].Value

	fmt.Println()

	// Default severity selection
	severities := []struct {
		Label       string
		Description string
		Value       string
	}{
		{"Warn", "Report issues without failing the run", config.SeverityWarn.String()},
		{"Error", "Issues fail the run (exit code 1)", config.SeverityError.String()},
	}

	severityTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	severityPrompt := promptui.Select{
		Label:     "Default severity for rules enabled without one?",
		Items:     severities,
		Templates: severityTemplates,
	}

	severityIdx, _, err := severityPrompt.Run()
	if err != nil {
		return choices, fmt.Errorf("severity selection cancelled: %w", err)
	}
	choices.severity = severities[severityIdx].Value

	fmt.Println()

	// Output path prompt
	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultPath,
	}

	outputPath, err := outputPrompt.Run()
	if err != nil {
		return choices, fmt.Errorf("output path input cancelled: %w", err)
	}
	if outputPath == "" {
		outputPath = defaultPath
	}
	choices.output = outputPath

	fmt.Println()

	return choices, nil
}
