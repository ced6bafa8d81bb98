package fix_test

import (
	"testing"

	"github.com/yaklabco/gojslint/pkg/fix"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		edits       []fix.TextEdit
		want        string
		wantApplied int
		wantSkipped int
	}{
		{
			name:    "empty edits returns original",
			content: "let x = 1;",
			edits:   nil,
			want:    "let x = 1;",
		},
		{
			name:    "single replacement",
			content: "var x = 1;",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 3, NewText: "let"},
			},
			want:        "let x = 1;",
			wantApplied: 1,
		},
		{
			name:    "single insertion",
			content: "foo()",
			edits: []fix.TextEdit{
				{StartOffset: 5, EndOffset: 5, NewText: ";"},
			},
			want:        "foo();",
			wantApplied: 1,
		},
		{
			name:    "single deletion",
			content: "debugger;\nfoo();",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 10, NewText: ""},
			},
			want:        "foo();",
			wantApplied: 1,
		},
		{
			name:    "multiple non-overlapping edits in ascending order",
			content: "hello world",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: "hi"},
				{StartOffset: 6, EndOffset: 11, NewText: "there"},
			},
			want:        "hi there",
			wantApplied: 2,
		},
		{
			name:    "multiple non-overlapping edits in descending order",
			content: "hello world",
			edits: []fix.TextEdit{
				{StartOffset: 6, EndOffset: 11, NewText: "there"},
				{StartOffset: 0, EndOffset: 5, NewText: "hi"},
			},
			want:        "hi there",
			wantApplied: 2,
		},
		{
			name:    "adjacent edits",
			content: "abcdef",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 2, NewText: "XX"},
				{StartOffset: 2, EndOffset: 4, NewText: "YY"},
				{StartOffset: 4, EndOffset: 6, NewText: "ZZ"},
			},
			want:        "XXYYZZ",
			wantApplied: 3,
		},
		{
			name:    "replace entire content",
			content: "hello",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: "world"},
			},
			want:        "world",
			wantApplied: 1,
		},
		{
			name:    "insert at start",
			content: "world",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 0, NewText: "hello "},
			},
			want:        "hello world",
			wantApplied: 1,
		},
		{
			name:    "empty content with insertion",
			content: "",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 0, NewText: "hello"},
			},
			want:        "hello",
			wantApplied: 1,
		},
		{
			name:    "delete all content",
			content: "hello",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: ""},
			},
			want:        "",
			wantApplied: 1,
		},
		{
			name:    "grow content",
			content: "ab",
			edits: []fix.TextEdit{
				{StartOffset: 1, EndOffset: 1, NewText: "xxx"},
			},
			want:        "axxxb",
			wantApplied: 1,
		},
		{
			name:    "shrink content",
			content: "axxxb",
			edits: []fix.TextEdit{
				{StartOffset: 1, EndOffset: 4, NewText: ""},
			},
			want:        "ab",
			wantApplied: 1,
		},
		{
			name:    "negative start offset skipped",
			content: "hello",
			edits: []fix.TextEdit{
				{StartOffset: -1, EndOffset: 3, NewText: "x"},
			},
			want:        "hello",
			wantSkipped: 1,
		},
		{
			name:    "end before start skipped",
			content: "hello",
			edits: []fix.TextEdit{
				{StartOffset: 4, EndOffset: 2, NewText: "x"},
			},
			want:        "hello",
			wantSkipped: 1,
		},
		{
			name:    "end past content skipped",
			content: "hello",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 99, NewText: "x"},
			},
			want:        "hello",
			wantSkipped: 1,
		},
		{
			name:    "valid edits survive a skipped one",
			content: "hello world",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: "hi"},
				{StartOffset: 20, EndOffset: 25, NewText: "x"},
				{StartOffset: 6, EndOffset: 11, NewText: "there"},
			},
			want:        "hi there",
			wantApplied: 2,
			wantSkipped: 1,
		},
		{
			name:    "overlapping edits rightmost wins",
			content: "abcdef",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: "X"},
				{StartOffset: 3, EndOffset: 6, NewText: "Y"},
			},
			// The edit at offset 3 is applied first and shrinks the buffer;
			// the edit ending at 5 then falls out of bounds and is skipped.
			want:        "abcY",
			wantApplied: 1,
			wantSkipped: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, applied, skipped := fix.Apply([]byte(tt.content), tt.edits)

			if string(got) != tt.want {
				t.Errorf("Apply() = %q, want %q", string(got), tt.want)
			}
			if len(applied) != tt.wantApplied {
				t.Errorf("applied count = %d, want %d", len(applied), tt.wantApplied)
			}
			if len(skipped) != tt.wantSkipped {
				t.Errorf("skipped count = %d, want %d", len(skipped), tt.wantSkipped)
			}
		})
	}
}

func TestApply_AppliesRightToLeft(t *testing.T) {
	t.Parallel()

	content := []byte("var a = 1;\nvar b = 2;\nvar c = 3;\n")
	edits := []fix.TextEdit{
		{StartOffset: 0, EndOffset: 3, NewText: "let"},
		{StartOffset: 11, EndOffset: 14, NewText: "let"},
		{StartOffset: 22, EndOffset: 25, NewText: "let"},
	}

	got, applied, _ := fix.Apply(content, edits)

	want := "let a = 1;\nlet b = 2;\nlet c = 3;\n"
	if string(got) != want {
		t.Fatalf("Apply() = %q, want %q", string(got), want)
	}

	// Applied edits come back in application order: descending by start.
	for i := 1; i < len(applied); i++ {
		if applied[i].StartOffset > applied[i-1].StartOffset {
			t.Errorf("applied[%d] starts at %d after applied[%d] at %d",
				i, applied[i].StartOffset, i-1, applied[i-1].StartOffset)
		}
	}
}

func TestApply_PreservesInputs(t *testing.T) {
	t.Parallel()

	content := []byte("hello world")
	original := make([]byte, len(content))
	copy(original, content)

	edits := []fix.TextEdit{
		{StartOffset: 0, EndOffset: 5, NewText: "hi"},
		{StartOffset: 6, EndOffset: 11, NewText: "there"},
	}

	_, _, _ = fix.Apply(content, edits)

	if string(content) != string(original) {
		t.Error("Apply modified original content")
	}

	// The input slice keeps its order; sorting happens on a copy.
	if edits[0].StartOffset != 0 || edits[1].StartOffset != 6 {
		t.Error("Apply reordered the input edit slice")
	}
}
