// Package cli provides the Cobra command structure for gojslint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gojslint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gojslint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:     "gojslint",
		Version: info.Version,
		Short:   "A blisteringly fast, self-fixing JavaScript and TypeScript linter",
		Long: `gojslint is a blisteringly fast, self-fixing JavaScript and TypeScript
linter written in Go.

It parses sources with tree-sitter and runs every enabled rule in a single
pass over the syntax tree, covering both correctness and style checks.
gojslint can automatically fix many issues while ensuring safety through
conflict detection, dry-run mode, and optional backups.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags. Subcommands read config and color back through the
	// flag set once parsing has happened.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(
		newLintCommand(info),
		newRulesCommand(),
		newInitCommand(),
		newMigrateCommand(),
		newVersionCommand(info),
	)

	installHelpStyling(rootCmd)

	return rootCmd
}
