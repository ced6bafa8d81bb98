// Package langdetect picks the grammar flavor for JavaScript and
// TypeScript sources. The file extension decides for almost every real
// file; extensionless scripts fall back to shebang inspection and go-enry
// content classification.
package langdetect

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Flavor identifies the grammar needed to parse a file.
type Flavor string

const (
	// FlavorJavaScript parses with the JavaScript grammar (covers JSX).
	FlavorJavaScript Flavor = "javascript"

	// FlavorTypeScript parses with the TypeScript grammar.
	FlavorTypeScript Flavor = "typescript"

	// FlavorTSX parses with the TSX grammar (TypeScript plus JSX syntax).
	FlavorTSX Flavor = "tsx"

	// FlavorUnknown marks files no grammar claims.
	FlavorUnknown Flavor = ""
)

// String returns the flavor name.
func (f Flavor) String() string {
	if f == FlavorUnknown {
		return "unknown"
	}
	return string(f)
}

// IsTypeScript reports whether the flavor needs a TypeScript-family grammar.
func (f Flavor) IsTypeScript() bool {
	return f == FlavorTypeScript || f == FlavorTSX
}

// flavorByExtension maps known extensions to their grammar flavor.
// JSX files use the JavaScript grammar; only .tsx needs the TSX grammar.
var flavorByExtension = map[string]Flavor{
	".js":  FlavorJavaScript,
	".jsx": FlavorJavaScript,
	".mjs": FlavorJavaScript,
	".cjs": FlavorJavaScript,
	".ts":  FlavorTypeScript,
	".mts": FlavorTypeScript,
	".cts": FlavorTypeScript,
	".tsx": FlavorTSX,
}

// Extensions returns the lintable file extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(flavorByExtension))
	for ext := range flavorByExtension {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// IsSource reports whether path has a lintable extension.
func IsSource(path string) bool {
	_, ok := flavorByExtension[strings.ToLower(filepath.Ext(path))]
	return ok
}

// DetectPath returns the flavor implied by the file extension alone,
// or FlavorUnknown for unrecognized extensions.
func DetectPath(path string) Flavor {
	return flavorByExtension[strings.ToLower(filepath.Ext(path))]
}

// Detect returns the grammar flavor for a file.
//
// The extension decides when it is known. Extensionless files fall back
// to the shebang line, TypeScript-only syntax markers, and finally the
// enry classifier; when all fail the file is reported as FlavorUnknown
// and is not linted.
func Detect(path string, content []byte) Flavor {
	if flavor := DetectPath(path); flavor != FlavorUnknown {
		return flavor
	}
	if len(content) == 0 {
		return FlavorUnknown
	}

	// Strategy 1: shebang (most reliable for extensionless scripts).
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// Strategy 2: TypeScript-only syntax markers, so an extensionless TS
	// script is not handed to the narrower JavaScript grammar.
	if flavor := detectByPattern(content); flavor != FlavorUnknown {
		return flavor
	}

	// Strategy 3: content classifier restricted to the grammars we ship.
	candidates := []string{"JavaScript", "TypeScript", "TSX"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return FlavorUnknown
}

// typescriptMarkers are syntax fragments valid in TypeScript but not in
// plain JavaScript.
var typescriptMarkers = []string{
	"interface ",
	"implements ",
	"declare ",
	"namespace ",
	"satisfies ",
	" as const",
	"readonly ",
}

// detectByPattern checks for unmistakable TypeScript-only syntax.
func detectByPattern(content []byte) Flavor {
	text := string(content)
	for _, marker := range typescriptMarkers {
		if strings.Contains(text, marker) {
			return FlavorTypeScript
		}
	}
	return FlavorUnknown
}

// normalize maps an enry language name to a grammar flavor.
func normalize(lang string) Flavor {
	switch strings.ToLower(lang) {
	case "javascript", "jsx":
		return FlavorJavaScript
	case "typescript":
		return FlavorTypeScript
	case "tsx":
		return FlavorTSX
	default:
		return FlavorUnknown
	}
}
