package fix

import (
	"cmp"
	"fmt"
	"slices"
)

// ValidationError describes an edit whose range cannot apply to the content.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ConflictError describes two edits that claim overlapping ranges.
type ConflictError struct {
	Edit1 TextEdit
	Edit2 TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.Edit1.StartOffset, e.Edit1.EndOffset,
		e.Edit2.StartOffset, e.Edit2.EndOffset)
}

// ValidateEdits checks every edit's range against the content length and
// returns the first offender wrapped in a ValidationError.
func ValidateEdits(edits []TextEdit, contentLen int) error {
	for _, edit := range edits {
		if msg := rangeProblem(edit, contentLen); msg != "" {
			return &ValidationError{Edit: edit, Message: msg}
		}
	}
	return nil
}

func rangeProblem(edit TextEdit, contentLen int) string {
	switch {
	case edit.StartOffset < 0:
		return "start offset is negative"
	case edit.EndOffset < edit.StartOffset:
		return "end offset is before start offset"
	case edit.EndOffset > contentLen:
		return fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen)
	default:
		return ""
	}
}

// SortEdits orders edits by start offset, then end offset. This is the
// canonical order for conflict detection and merging; Apply walks the
// reverse order internally.
func SortEdits(edits []TextEdit) {
	slices.SortFunc(edits, func(a, b TextEdit) int {
		if c := cmp.Compare(a.StartOffset, b.StartOffset); c != 0 {
			return c
		}
		return cmp.Compare(a.EndOffset, b.EndOffset)
	})
}

// DetectConflicts reports the first pair of overlapping edits, or nil
// when every edit owns a disjoint range. Edits must already be in
// SortEdits order, which makes any overlap show up as a start offset
// before the previous edit's end.
func DetectConflicts(edits []TextEdit) error {
	for i := 1; i < len(edits); i++ {
		if edits[i].StartOffset < edits[i-1].EndOffset {
			return &ConflictError{Edit1: edits[i-1], Edit2: edits[i]}
		}
	}
	return nil
}

// MergeDeletions collapses overlapping deletion edits in a sorted slice
// into single deletions covering the union of their ranges. Overlaps
// involving a non-empty replacement are left in place for Apply's
// right-to-left policy to resolve.
//
// Edits must be sorted by SortEdits before calling. Returns the
// resulting edits and the number of merges performed.
func MergeDeletions(edits []TextEdit) ([]TextEdit, int) {
	if len(edits) == 0 {
		return nil, 0
	}

	out := make([]TextEdit, 0, len(edits))
	merged := 0
	current := edits[0]

	for _, edit := range edits[1:] {
		overlaps := edit.StartOffset < current.EndOffset
		if overlaps && current.NewText == "" && edit.NewText == "" {
			// Sorted input means current starts first, so the union
			// keeps current's start and takes the larger end.
			current.EndOffset = max(current.EndOffset, edit.EndOffset)
			merged++
			continue
		}
		out = append(out, current)
		current = edit
	}
	return append(out, current), merged
}
