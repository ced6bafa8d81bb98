// Package fix provides text edit types and application logic for auto-fixing.
package fix

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// IsInsert returns true for a zero-width edit.
func (e TextEdit) IsInsert() bool {
	return e.StartOffset == e.EndOffset
}

// IsDelete returns true for an edit that removes text without replacement.
func (e TextEdit) IsDelete() bool {
	return e.NewText == "" && e.EndOffset > e.StartOffset
}

// Fixer constructs text edits for rule fixes. Methods return the edit so a
// fix callback can build and hand back a single edit in one expression.
// All offsets refer to the original file content the rule was run against.
type Fixer struct{}

// ReplaceRange returns an edit that replaces bytes [start, end) with newText.
func (f *Fixer) ReplaceRange(start, end int, newText string) *TextEdit {
	return &TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	}
}

// Insert returns an edit that inserts text at the given offset.
func (f *Fixer) Insert(offset int, text string) *TextEdit {
	return f.ReplaceRange(offset, offset, text)
}

// Delete returns an edit that deletes bytes [start, end).
func (f *Fixer) Delete(start, end int) *TextEdit {
	return f.ReplaceRange(start, end, "")
}
