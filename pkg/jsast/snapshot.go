// Package jsast provides the core source AST representation for gojslint.
// It defines a lossless, immutable view of JavaScript and TypeScript files
// including:
// - FileSnapshot: the complete file representation
// - Comment list: every comment with its byte range and line span
// - AST nodes: structural representation referencing byte ranges
package jsast

// FileSnapshot is an immutable view of a source file at a specific time.
// It holds the raw content, line metadata, comment list, and AST root.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Comments lists every comment in source order.
	Comments []Comment

	// Root is the AST root node (Program).
	Root *Node
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFileSnapshot creates a new FileSnapshot from content.
// It builds the line index but does not parse (that requires a Parser).
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:     path,
		Content:  content,
		Lines:    BuildLines(content),
		Comments: nil,
		Root:     nil,
	}
}
