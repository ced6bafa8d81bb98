package lint

import (
	"context"

	"github.com/yaklabco/gojslint/pkg/jsast"
)

// Parser parses JavaScript or TypeScript content into a FileSnapshot.
//
// The lint package defines this interface to follow the gobible principle
// of defining interfaces in the consumer package. Implementations (e.g.,
// parser/treesitter) provide the concrete parsing logic.
//
// Implementations must be:
//   - deterministic for a given (path, content) tuple,
//   - safe for concurrent use by multiple goroutines, if documented as such,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw source bytes into a fully-populated FileSnapshot.
	//
	// Parameters:
	//   - ctx: context for cancellation and timeout propagation.
	//   - path: logical file path (used for dialect detection and
	//     diagnostics; must not be used for I/O).
	//   - content: raw source bytes (must not be mutated by the implementation).
	//
	// Returns:
	//   - On success: a fully-populated FileSnapshot with valid line index,
	//     comment list, and AST.
	//   - On error: nil and a descriptive error; no partial snapshot is returned.
	//
	// The returned FileSnapshot must satisfy:
	//   - snapshot.Path == path
	//   - bytes.Equal(snapshot.Content, content)
	//   - snapshot.Root != nil && snapshot.Root.Kind == jsast.KindProgram
	//   - All nodes have node.File == snapshot
	//   - snapshot.Comments is in source order
	Parse(ctx context.Context, path string, content []byte) (*jsast.FileSnapshot, error)
}
