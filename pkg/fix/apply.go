package fix

import "sort"

// Apply applies edits to content from right to left.
//
// Edits are sorted descending by start offset (ties broken by descending end
// offset) so splices never shift the offsets of edits still to be applied.
// Each edit is validated against the current buffer before splicing; an edit
// that falls out of bounds (typically the remnant of overlapping fixes) is
// skipped rather than aborting the file. When edits overlap, the
// rightmost-starting edit is applied first and wins the overlapped region.
//
// The input content is never mutated. Returns the resulting content, the
// edits applied, and the edits skipped.
func Apply(content []byte, edits []TextEdit) ([]byte, []TextEdit, []TextEdit) {
	if len(edits) == 0 {
		return content, nil, nil
	}

	ordered := make([]TextEdit, len(edits))
	copy(ordered, edits)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].StartOffset != ordered[j].StartOffset {
			return ordered[i].StartOffset > ordered[j].StartOffset
		}
		return ordered[i].EndOffset > ordered[j].EndOffset
	})

	current := content
	var applied, skipped []TextEdit

	for _, edit := range ordered {
		if edit.StartOffset < 0 || edit.EndOffset < edit.StartOffset || edit.EndOffset > len(current) {
			skipped = append(skipped, edit)
			continue
		}

		current = splice(current, edit)
		applied = append(applied, edit)
	}

	return current, applied, skipped
}

// splice returns a new buffer with content[start:end) replaced by the
// edit's replacement text.
func splice(content []byte, edit TextEdit) []byte {
	out := make([]byte, 0, len(content)+len(edit.NewText)-(edit.EndOffset-edit.StartOffset))
	out = append(out, content[:edit.StartOffset]...)
	out = append(out, edit.NewText...)
	out = append(out, content[edit.EndOffset:]...)
	return out
}
