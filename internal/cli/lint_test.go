package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yaklabco/gojslint/internal/cli"
)

func TestLintCommand_RuleFormatFlag(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	lintCmd, _, err := cmd.Find([]string{"lint"})
	if err != nil {
		t.Fatalf("lint command not found: %v", err)
	}

	// Check flag exists
	flag := lintCmd.Flags().Lookup("rule-format")
	assert.NotNil(t, flag, "rule-format flag should exist")
	assert.Equal(t, "full", flag.DefValue, "default value should be 'full'")
}

func TestLintCommand_SummaryOrderFlag(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	lintCmd, _, err := cmd.Find([]string{"lint"})
	if err != nil {
		t.Fatalf("lint command not found: %v", err)
	}

	// Check summary-order flag exists
	flag := lintCmd.Flags().Lookup("summary-order")
	assert.NotNil(t, flag, "summary-order flag should exist")
	assert.Equal(t, "rules", flag.DefValue, "default value should be 'rules'")

	// Check format flag includes "summary"
	formatFlag := lintCmd.Flags().Lookup("format")
	assert.NotNil(t, formatFlag, "format flag should exist")
	assert.Contains(t, formatFlag.Usage, "summary", "format flag help should include 'summary'")
}

func TestLintCommand_CacheFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	lintCmd, _, err := cmd.Find([]string{"lint"})
	if err != nil {
		t.Fatalf("lint command not found: %v", err)
	}

	noCache := lintCmd.Flags().Lookup("no-cache")
	assert.NotNil(t, noCache, "no-cache flag should exist")
	assert.Equal(t, "false", noCache.DefValue, "no-cache should default to off")

	location := lintCmd.Flags().Lookup("cache-location")
	assert.NotNil(t, location, "cache-location flag should exist")
	assert.Equal(t, "", location.DefValue, "cache-location should default to empty")
}

func TestLintCommand_DialectFlag(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	lintCmd, _, err := cmd.Find([]string{"lint"})
	if err != nil {
		t.Fatalf("lint command not found: %v", err)
	}

	dialect := lintCmd.Flags().Lookup("dialect")
	assert.NotNil(t, dialect, "dialect flag should exist")
	assert.Equal(t, "auto", dialect.DefValue, "dialect should default to auto")

	preset := lintCmd.Flags().Lookup("preset")
	assert.NotNil(t, preset, "preset flag should exist")
	assert.Equal(t, "recommended", preset.DefValue, "preset should default to recommended")
}

func TestExitCodeFromResult_NilResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(nil, false))
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(nil, true))
}
