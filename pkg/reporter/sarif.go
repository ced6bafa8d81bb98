package reporter

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/lint"
	"github.com/yaklabco/gojslint/pkg/runner"
)

// Only the subset of SARIF 2.1.0 that gojslint emits is modeled here;
// the property names follow the published schema.
const (
	sarifVersion   = "2.1.0"
	sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
)

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string           `json:"id"`
	Name             string           `json:"name,omitempty"`
	ShortDescription sarifText        `json:"shortDescription,omitempty"`
	DefaultConfig    *sarifRuleConfig `json:"defaultConfiguration,omitempty"`
	Properties       map[string]any   `json:"properties,omitempty"`
}

// sarifText covers the schema's message and multiformatMessageString
// objects; gojslint only ever fills the plain-text field of either.
type sarifText struct {
	Text string `json:"text"`
}

type sarifRuleConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifText       `json:"message"`
	Locations []sarifLocation `json:"locations"`
	Fixes     []sarifFix      `json:"fixes,omitempty"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

type sarifFix struct {
	Description     sarifText             `json:"description"`
	ArtifactChanges []sarifArtifactChange `json:"artifactChanges"`
}

type sarifArtifactChange struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Replacements     []sarifReplacement    `json:"replacements"`
}

type sarifReplacement struct {
	DeletedRegion   sarifRegion `json:"deletedRegion"`
	InsertedContent *sarifText  `json:"insertedContent,omitempty"`
}

// SARIFReporter renders results as a SARIF 2.1.0 log for code-scanning
// integrations.
type SARIFReporter struct {
	opts Options
	out  io.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{opts: opts, out: opts.Writer}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	run := r.buildRun(result)
	doc := sarifLog{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []sarifRun{run},
	}

	encoder := json.NewEncoder(r.out)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(doc); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}
	return len(run.Results), nil
}

// buildRun collects every diagnostic into a single SARIF run, registering
// each rule in the driver the first time it appears.
func (r *SARIFReporter) buildRun(result *runner.Result) sarifRun {
	driver := sarifDriver{
		Name:           "gojslint",
		Version:        cmp.Or(r.opts.Version, "dev"),
		InformationURI: "https://github.com/yaklabco/gojslint",
		Rules:          []sarifRule{},
	}
	results := []sarifResult{}
	if result == nil {
		return sarifRun{Tool: sarifTool{Driver: driver}, Results: results}
	}

	seen := make(map[string]bool)
	for _, file := range result.Files {
		if file.Result == nil || file.Result.LintResult == nil {
			continue
		}
		// Artifact URIs use forward slashes regardless of platform.
		uri := filepath.ToSlash(file.Path)

		messages := file.Result.LintResult.Messages
		for i := range messages {
			diag := &messages[i]
			if !seen[diag.RuleID] {
				driver.Rules = append(driver.Rules, sarifRuleEntry(diag))
				seen[diag.RuleID] = true
			}
			results = append(results, sarifResultEntry(uri, diag))
		}
	}

	return sarifRun{Tool: sarifTool{Driver: driver}, Results: results}
}

// sarifRuleEntry builds the driver's rule record from the first diagnostic
// the rule produced.
func sarifRuleEntry(diag *lint.Diagnostic) sarifRule {
	rule := sarifRule{
		ID:               diag.RuleID,
		ShortDescription: sarifText{Text: diag.Message},
		DefaultConfig:    &sarifRuleConfig{Level: sarifLevel(diag.Severity)},
	}
	if diag.Category != "" {
		rule.Properties = map[string]any{"category": diag.Category}
	}
	return rule
}

func sarifResultEntry(uri string, diag *lint.Diagnostic) sarifResult {
	region := sarifRegion{
		StartLine:   diag.Line,
		StartColumn: diag.Column,
		EndLine:     diag.EndLine,
		EndColumn:   diag.EndColumn,
	}

	res := sarifResult{
		RuleID:  diag.RuleID,
		Level:   sarifLevel(diag.Severity),
		Message: sarifText{Text: diag.Message},
		Locations: []sarifLocation{{
			PhysicalLocation: sarifPhysicalLocation{
				ArtifactLocation: sarifArtifactLocation{URI: uri},
				Region:           region,
			},
		}},
	}

	if diag.Fix != nil {
		res.Fixes = []sarifFix{{
			Description: sarifText{Text: "Apply automatic fix for " + diag.RuleID},
			ArtifactChanges: []sarifArtifactChange{{
				ArtifactLocation: sarifArtifactLocation{URI: uri},
				Replacements: []sarifReplacement{{
					DeletedRegion:   region,
					InsertedContent: &sarifText{Text: diag.Fix.NewText},
				}},
			}},
		}}
	}
	return res
}

// sarifLevel maps a severity onto the SARIF level enum. Diagnostics only
// ever carry warn or error.
func sarifLevel(severity config.Severity) string {
	if severity == config.SeverityError {
		return "error"
	}
	return "warning"
}
