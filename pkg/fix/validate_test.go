package fix_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/yaklabco/gojslint/pkg/fix"
)

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	const contentLen = 20

	tests := []struct {
		name    string
		edits   []fix.TextEdit
		wantMsg string
	}{
		{
			name: "no edits",
		},
		{
			name: "replacement inside range",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 3, NewText: "const"},
				{StartOffset: 10, EndOffset: 13, NewText: "let"},
			},
		},
		{
			name: "insertion at end of file",
			edits: []fix.TextEdit{
				{StartOffset: contentLen, EndOffset: contentLen, NewText: ";"},
			},
		},
		{
			name: "negative start",
			edits: []fix.TextEdit{
				{StartOffset: -1, EndOffset: 5},
			},
			wantMsg: "start offset is negative",
		},
		{
			name: "inverted range",
			edits: []fix.TextEdit{
				{StartOffset: 8, EndOffset: 3},
			},
			wantMsg: "end offset is before start offset",
		},
		{
			name: "range past end of file",
			edits: []fix.TextEdit{
				{StartOffset: 15, EndOffset: 30},
			},
			wantMsg: "exceeds content length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.ValidateEdits(tt.edits, contentLen)

			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("ValidateEdits() error = %v, want none", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var valErr *fix.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
			// The offending edit rides along for diagnostics.
			if valErr.Edit != tt.edits[0] {
				t.Errorf("ValidationError.Edit = %+v, want %+v", valErr.Edit, tt.edits[0])
			}
		})
	}
}

func TestSortEdits(t *testing.T) {
	t.Parallel()

	edits := []fix.TextEdit{
		{StartOffset: 42, EndOffset: 50, NewText: "let"},
		{StartOffset: 7, EndOffset: 12},
		{StartOffset: 42, EndOffset: 44},
		{StartOffset: 0, EndOffset: 3, NewText: "const"},
	}

	fix.SortEdits(edits)

	// Start offset first, end offset breaks the 42/42 tie.
	want := []fix.TextEdit{
		{StartOffset: 0, EndOffset: 3, NewText: "const"},
		{StartOffset: 7, EndOffset: 12},
		{StartOffset: 42, EndOffset: 44},
		{StartOffset: 42, EndOffset: 50, NewText: "let"},
	}
	if !slices.Equal(edits, want) {
		t.Errorf("SortEdits order:\n got %+v\nwant %+v", edits, want)
	}
}

func TestDetectConflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		edits    []fix.TextEdit
		conflict bool
	}{
		{
			name: "no edits",
		},
		{
			name: "single edit",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5},
			},
		},
		{
			name: "adjacent edits touch without overlapping",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5},
				{StartOffset: 5, EndOffset: 10},
			},
		},
		{
			name: "overlapping ranges",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 7},
				{StartOffset: 5, EndOffset: 10},
			},
			conflict: true,
		},
		{
			name: "nested ranges",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 10},
				{StartOffset: 3, EndOffset: 7},
			},
			conflict: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.DetectConflicts(tt.edits)

			if !tt.conflict {
				if err != nil {
					t.Fatalf("DetectConflicts() error = %v, want none", err)
				}
				return
			}

			var conflictErr *fix.ConflictError
			if !errors.As(err, &conflictErr) {
				t.Fatalf("expected ConflictError, got %T (%v)", err, err)
			}
			if conflictErr.Edit1 != tt.edits[0] || conflictErr.Edit2 != tt.edits[1] {
				t.Errorf("conflict pair: got %+v and %+v, want %+v and %+v",
					conflictErr.Edit1, conflictErr.Edit2, tt.edits[0], tt.edits[1])
			}
		})
	}
}

func TestMergeDeletions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		edits      []fix.TextEdit
		want       []fix.TextEdit
		wantMerged int
	}{
		{
			name:       "empty",
			edits:      nil,
			want:       nil,
			wantMerged: 0,
		},
		{
			name: "single deletion",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: ""},
			},
			want: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: ""},
			},
			wantMerged: 0,
		},
		{
			name: "adjacent deletions left alone",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: ""},
				{StartOffset: 5, EndOffset: 10, NewText: ""},
			},
			want: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: ""},
				{StartOffset: 5, EndOffset: 10, NewText: ""},
			},
			wantMerged: 0,
		},
		{
			name: "overlapping deletions merged",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 7, NewText: ""},
				{StartOffset: 5, EndOffset: 10, NewText: ""},
			},
			want: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 10, NewText: ""},
			},
			wantMerged: 1,
		},
		{
			name: "contained deletion merged into outer",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 10, NewText: ""},
				{StartOffset: 3, EndOffset: 7, NewText: ""},
			},
			want: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 10, NewText: ""},
			},
			wantMerged: 1,
		},
		{
			name: "two rules deleting the same statement",
			edits: []fix.TextEdit{
				{StartOffset: 120, EndOffset: 129, NewText: ""},
				{StartOffset: 120, EndOffset: 130, NewText: ""},
			},
			want: []fix.TextEdit{
				{StartOffset: 120, EndOffset: 130, NewText: ""},
			},
			wantMerged: 1,
		},
		{
			name: "chain of overlapping deletions collapses to one",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: ""},
				{StartOffset: 3, EndOffset: 8, NewText: ""},
				{StartOffset: 6, EndOffset: 12, NewText: ""},
			},
			want: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 12, NewText: ""},
			},
			wantMerged: 2,
		},
		{
			name: "overlap with replacement left in place",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 7, NewText: "let"},
				{StartOffset: 5, EndOffset: 10, NewText: ""},
			},
			want: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 7, NewText: "let"},
				{StartOffset: 5, EndOffset: 10, NewText: ""},
			},
			wantMerged: 0,
		},
		{
			name: "mix of merge and non-overlap",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: ""},
				{StartOffset: 3, EndOffset: 8, NewText: ""},
				{StartOffset: 20, EndOffset: 25, NewText: ""},
			},
			want: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 8, NewText: ""},
				{StartOffset: 20, EndOffset: 25, NewText: ""},
			},
			wantMerged: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, merged := fix.MergeDeletions(tt.edits)

			if merged != tt.wantMerged {
				t.Errorf("merged count: got %d, want %d", merged, tt.wantMerged)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("result length: got %d, want %d", len(got), len(tt.want))
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("result[%d]: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
