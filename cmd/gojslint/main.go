// Package main is the entry point for the gojslint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gojslint/internal/cli"
	"github.com/yaklabco/gojslint/internal/logging"

	// Register the built-in rules.
	_ "github.com/yaklabco/gojslint/pkg/lint/rules"
)

// Injected at build time through -ldflags (see stavefile.go).
//
//nolint:gochecknoglobals // ldflags targets must be package-level
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	err := root.Execute()
	if err == nil {
		return 0
	}

	// Lint findings were already rendered by the reporter; anything else
	// deserves a log line before the non-zero exit.
	if !errors.Is(err, cli.ErrLintIssuesFound) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}
	return cli.ResolveExitCode(err)
}
