// Package treesitter provides a Parser implementation using tree-sitter
// grammars for JavaScript and TypeScript.
package treesitter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/yaklabco/gojslint/pkg/jsast"
	"github.com/yaklabco/gojslint/pkg/langdetect"
)

// Dialect identifies the grammar family the parser is pinned to.
const (
	DialectAuto       = "auto"
	DialectJavaScript = "javascript"
	DialectTypeScript = "typescript"
)

// Parser implements lint.Parser using tree-sitter.
//
// Each Parse call creates its own tree-sitter parser, so a single Parser
// value is safe for concurrent use by the runner's worker pool.
type Parser struct {
	dialect string
}

// New creates a tree-sitter backed parser for the given dialect.
// Supported dialects are "auto", "javascript", and "typescript".
// Invalid dialects default to "auto".
func New(dialect string) *Parser {
	return &Parser{dialect: dialectOrDefault(dialect)}
}

// Dialect returns the configured dialect.
func (p *Parser) Dialect() string {
	return p.dialect
}

// Parse converts raw source bytes into a fully-populated FileSnapshot.
//
// The method:
//  1. Checks for context cancellation.
//  2. Picks the grammar flavor from the dialect pin or file detection.
//  3. Builds a FileSnapshot shell with path, content, and lines.
//  4. Parses content with tree-sitter.
//  5. Rejects trees containing syntax errors, naming the first bad spot.
//  6. Builds the jsast.Node tree and comment list from the CST.
//  7. Sets File back-references throughout the tree.
//
// Returns nil and an error if parsing fails or context is cancelled.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*jsast.FileSnapshot, error) {
	// Check for early cancellation.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	flavor, err := p.flavorFor(path, content)
	if err != nil {
		return nil, err
	}

	// Create the snapshot shell.
	snapshot := jsast.NewFileSnapshot(path, copyContent(content))

	// Parse with tree-sitter.
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(languageFor(flavor))

	tree, err := parser.ParseCtx(ctx, nil, snapshot.Content)
	if err != nil {
		return nil, fmt.Errorf("parse with %s grammar: %w", flavor, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, errors.New("parse produced no syntax tree")
	}
	if root.HasError() {
		return nil, syntaxError(root)
	}

	// Build the jsast tree and comment list from the CST.
	m := newMapper(snapshot.Content)
	snapshot.Root = m.mapProgram(root)
	snapshot.Comments = m.comments

	// Set File back-references.
	jsast.SetFile(snapshot.Root, snapshot)

	return snapshot, nil
}

// flavorFor picks the grammar flavor for a file. A pinned dialect wins;
// auto falls back to per-file detection.
func (p *Parser) flavorFor(path string, content []byte) (langdetect.Flavor, error) {
	switch p.dialect {
	case DialectJavaScript:
		return langdetect.FlavorJavaScript, nil
	case DialectTypeScript:
		// A TSX file still needs the TSX grammar within the family.
		if langdetect.DetectPath(path) == langdetect.FlavorTSX {
			return langdetect.FlavorTSX, nil
		}
		return langdetect.FlavorTypeScript, nil
	}

	flavor := langdetect.Detect(path, content)
	if flavor == langdetect.FlavorUnknown {
		return flavor, fmt.Errorf("cannot determine dialect for %s", path)
	}
	return flavor, nil
}

// languageFor returns the tree-sitter grammar for a flavor.
func languageFor(flavor langdetect.Flavor) *sitter.Language {
	switch flavor {
	case langdetect.FlavorTypeScript:
		return typescript.GetLanguage()
	case langdetect.FlavorTSX:
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// syntaxError builds the error for a tree containing syntax errors,
// locating the first ERROR or missing node.
func syntaxError(root *sitter.Node) error {
	if bad := firstErrorNode(root); bad != nil {
		line := int(bad.StartPoint().Row) + 1
		col := int(bad.StartPoint().Column) + 1
		return fmt.Errorf("syntax error at line %d, column %d", line, col)
	}
	return errors.New("syntax error")
}

// firstErrorNode finds the earliest ERROR or missing node in the tree.
// Subtrees without errors are pruned via HasError.
func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil || !child.HasError() {
			continue
		}
		if bad := firstErrorNode(child); bad != nil {
			return bad
		}
	}
	return nil
}

// dialectOrDefault returns the dialect if valid, otherwise "auto".
func dialectOrDefault(dialect string) string {
	switch dialect {
	case DialectAuto, DialectJavaScript, DialectTypeScript:
		return dialect
	default:
		return DialectAuto
	}
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
