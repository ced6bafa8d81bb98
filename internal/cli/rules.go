package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gojslint/internal/logging"
	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

// ruleInfo is the JSON projection of a registered rule.
type ruleInfo struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Recommended string `json:"recommended"`
	Fixable     bool   `json:"fixable"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their names, descriptions,
recommended severity, and whether they support auto-fixing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()

			if config.OutputFormat(flags.format) == config.FormatJSON {
				return writeRulesJSON(cmd.OutOrStdout(), rules)
			}
			printRulesText(rules, config.RuleFormat(flags.ruleFormat))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "full",
		"rule name format in output: full, short, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// printRulesText logs one line per rule through the interactive logger.
func printRulesText(rules []*lint.Rule, format config.RuleFormat) {
	logger := logging.NewInteractive()

	if len(rules) == 0 {
		logger.Info("no rules registered")
		return
	}

	logger.Info("available rules")

	for _, rule := range rules {
		fixable := "-"
		if rule.Fixable {
			fixable = "yes"
		}

		logger.Info(config.FormatRuleName(format, rule.Name, rule.Kind.String()),
			logging.FieldSeverity, rule.Recommended.String(),
			logging.FieldFixable, fixable,
			logging.FieldDescription, rule.Description,
		)
	}
}

// writeRulesJSON renders the rule list as an indented JSON array.
func writeRulesJSON(w io.Writer, rules []*lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			Name:        rule.Name,
			Kind:        rule.Kind.String(),
			Category:    rule.Category,
			Description: rule.Description,
			Recommended: rule.Recommended.String(),
			Fixable:     rule.Fixable,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
