package fix

import (
	"fmt"
	"slices"
	"strings"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// DiffLineKind classifies a line within a hunk.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line present only in the modified content.
	DiffLineAdd

	// DiffLineRemove is a line present only in the original content.
	DiffLineRemove
)

// DiffLine is a single line of a hunk, without its +/-/space prefix.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffHunk is one contiguous region of change with surrounding context.
// Start positions are 1-based line numbers.
type DiffHunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

// Diff is a unified diff between the original and fixed content of a file.
type Diff struct {
	Path      string
	Original  []byte
	Modified  []byte
	Hunks     []DiffHunk
	Additions int
	Deletions int
}

// GenerateDiff computes a unified diff between original and modified
// content. It returns nil when the two are identical.
func GenerateDiff(path string, original, modified []byte) *Diff {
	if len(original) == 0 && len(modified) == 0 {
		return nil
	}

	origLines := splitLines(original)
	modLines := splitLines(modified)
	if slices.Equal(origLines, modLines) {
		return nil
	}

	ops := diffOps(origLines, modLines)
	hunks := buildHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	var additions, deletions int
	for _, op := range ops {
		switch op.kind {
		case DiffLineAdd:
			additions++
		case DiffLineRemove:
			deletions++
		}
	}

	return &Diff{
		Path:      path,
		Original:  original,
		Modified:  modified,
		Hunks:     hunks,
		Additions: additions,
		Deletions: deletions,
	}
}

// HasChanges reports whether the diff contains at least one hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the diff in unified format, without the git header.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				fmt.Fprintf(&b, " %s\n", line.Content)
			case DiffLineAdd:
				fmt.Fprintf(&b, "+%s\n", line.Content)
			case DiffLineRemove:
				fmt.Fprintf(&b, "-%s\n", line.Content)
			}
		}
	}
	return b.String()
}

// FullString renders the diff including the git header.
func (d *Diff) FullString() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// splitLines splits content on newlines, dropping the final empty element
// produced by a trailing newline.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// editOp is one step of the line-level edit script. origAt and modAt record
// the 1-based cursor position in each version when the op applies, so hunk
// headers can be emitted without rescanning.
type editOp struct {
	kind   DiffLineKind
	text   string
	origAt int
	modAt  int
}

// diffOps computes the edit script via an LCS table, backtracking from the
// corner so removals come before additions within each changed region.
func diffOps(orig, mod []string) []editOp {
	table := lcsTable(orig, mod)

	var ops []editOp
	i, j := len(orig), len(mod)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && orig[i-1] == mod[j-1]:
			ops = append(ops, editOp{kind: DiffLineContext, text: orig[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || table[i][j-1] >= table[i-1][j]):
			ops = append(ops, editOp{kind: DiffLineAdd, text: mod[j-1]})
			j--
		default:
			ops = append(ops, editOp{kind: DiffLineRemove, text: orig[i-1]})
			i--
		}
	}
	slices.Reverse(ops)

	origAt, modAt := 1, 1
	for idx := range ops {
		ops[idx].origAt = origAt
		ops[idx].modAt = modAt
		switch ops[idx].kind {
		case DiffLineContext:
			origAt++
			modAt++
		case DiffLineRemove:
			origAt++
		case DiffLineAdd:
			modAt++
		}
	}
	return ops
}

// lcsTable builds the longest-common-subsequence length table for the two
// line slices. table[i][j] is the LCS length of orig[:i] and mod[:j].
func lcsTable(orig, mod []string) [][]int {
	table := make([][]int, len(orig)+1)
	for i := range table {
		table[i] = make([]int, len(mod)+1)
	}
	for i := 1; i <= len(orig); i++ {
		for j := 1; j <= len(mod); j++ {
			if orig[i-1] == mod[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
		}
	}
	return table
}

// buildHunks groups edit ops into hunks, merging changes whose context
// windows would otherwise touch or overlap.
func buildHunks(ops []editOp) []DiffHunk {
	var edits []int
	for i, op := range ops {
		if op.kind != DiffLineContext {
			edits = append(edits, i)
		}
	}
	if len(edits) == 0 {
		return nil
	}

	var hunks []DiffHunk
	first := 0
	for k := 1; k <= len(edits); k++ {
		if k < len(edits) {
			between := edits[k] - edits[k-1] - 1
			if between <= contextLines*2 {
				continue
			}
		}
		hunks = append(hunks, hunkFor(ops, edits[first], edits[k-1]))
		first = k
	}
	return hunks
}

// hunkFor builds a hunk covering ops[firstEdit..lastEdit] plus context.
func hunkFor(ops []editOp, firstEdit, lastEdit int) DiffHunk {
	start := max(0, firstEdit-contextLines)
	end := min(len(ops), lastEdit+1+contextLines)

	hunk := DiffHunk{
		OriginalStart: ops[start].origAt,
		ModifiedStart: ops[start].modAt,
		Lines:         make([]DiffLine, 0, end-start),
	}
	for _, op := range ops[start:end] {
		hunk.Lines = append(hunk.Lines, DiffLine{Kind: op.kind, Content: op.text})
		switch op.kind {
		case DiffLineContext:
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case DiffLineRemove:
			hunk.OriginalCount++
		case DiffLineAdd:
			hunk.ModifiedCount++
		}
	}
	return hunk
}
