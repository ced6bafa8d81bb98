package jsast

import "strings"

// Comment represents a single comment in the source.
// Comments also appear in the AST as KindComment nodes; this flat list
// exists so directive scanning never needs a tree walk.
type Comment struct {
	// Start and End are the byte range, including the comment markers.
	Start int
	End   int

	// Text is the raw comment source, including markers.
	Text string

	// StartLine and EndLine are the 1-based line span of the comment.
	StartLine int
	EndLine   int
}

// Body returns the comment text with markers stripped and whitespace trimmed.
func (c Comment) Body() string {
	text := c.Text
	switch {
	case strings.HasPrefix(text, "//"):
		return strings.TrimSpace(text[2:])
	case strings.HasPrefix(text, "/*"):
		body := strings.TrimPrefix(text, "/*")
		body = strings.TrimSuffix(body, "*/")
		return strings.TrimSpace(body)
	default:
		return strings.TrimSpace(text)
	}
}

// IsLine returns true for a // comment.
func (c Comment) IsLine() bool {
	return strings.HasPrefix(c.Text, "//")
}

// IsBlock returns true for a /* */ comment.
func (c Comment) IsBlock() bool {
	return strings.HasPrefix(c.Text, "/*")
}
