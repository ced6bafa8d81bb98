package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gojslint/internal/configloader"
	"github.com/yaklabco/gojslint/internal/logging"
)

func newMigrateCommand() *cobra.Command {
	var (
		force  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "migrate [input]",
		Short: "Convert an ESLint configuration to gojslint format",
		Long: `Convert an existing ESLint configuration file (.eslintrc.json,
.eslintrc.yaml, etc.) to gojslint format (.gojslint.yml).

With no input argument the command searches the current directory for an
ESLint configuration to convert.

JavaScript configuration files (.eslintrc.js, eslint.config.mjs) cannot
be converted automatically and require manual migration.

Examples:
  gojslint migrate                       Auto-detect and convert ESLint config
  gojslint migrate .eslintrc.json        Convert specific file
  gojslint migrate --output config.yml   Write to custom output path`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return runMigrate(input, output, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing output file")
	cmd.Flags().StringVarP(&output, "output", "o", ".gojslint.yml", "Output file path")

	return cmd
}

func runMigrate(input, output string, force bool) error {
	logger := logging.NewInteractive()

	inputPath, err := resolveMigrationSource(logger, input)
	if err != nil {
		return err
	}

	// Refuse to clobber the target before doing any conversion work.
	outputPath, err := resolveMigrationTarget(logger, output, force)
	if err != nil {
		return err
	}

	result, err := configloader.ConvertESLintConfig(inputPath)
	if err != nil {
		return fmt.Errorf("convert configuration: %w", err)
	}
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	header := configloader.GenerateMigrationHeader(inputPath)
	content, err := result.Config.ToYAMLWithHeader(header)
	if err != nil {
		return fmt.Errorf("serialize configuration: %w", err)
	}
	if err := os.WriteFile(outputPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	logger.Info("migration complete", logging.FieldInput, inputPath, logging.FieldOutput, output)
	if len(result.Warnings) > 0 {
		logger.Warn("review warnings above and verify the migrated configuration")
	}
	logger.Info("you can now delete the old ESLint configuration file")

	return nil
}

// resolveMigrationSource picks the ESLint config to convert. With no
// explicit input it scans the working directory, so a bare
// "gojslint migrate" inside a project just works.
func resolveMigrationSource(logger *log.Logger, input string) (string, error) {
	if input == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		input = configloader.FindESLintConfig(cwd)
		if input == "" {
			return "", errors.New("no ESLint configuration file found in current directory")
		}
		logger.Info("found ESLint config", logging.FieldPath, input)
	}

	if _, err := os.Stat(input); os.IsNotExist(err) {
		return "", fmt.Errorf("input file does not exist: %s", input)
	}
	if !configloader.CanMigrate(input) {
		return "", fmt.Errorf("migration not supported: %s", configloader.GetMigrationWarning(input))
	}
	return input, nil
}

// resolveMigrationTarget makes the output path absolute and guards
// against overwriting an existing file unless --force was given.
func resolveMigrationTarget(logger *log.Logger, output string, force bool) (string, error) {
	abs, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	if _, err := os.Stat(abs); err == nil {
		if !force {
			return "", fmt.Errorf("output file %q already exists; use --force to overwrite", output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, output)
	}
	return abs, nil
}
