package reporter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gojslint/internal/ui/pretty"
	"github.com/yaklabco/gojslint/pkg/fix"
	"github.com/yaklabco/gojslint/pkg/runner"
)

// DiffReporter renders pending fixes as colorized unified diffs, one
// git-style block per changed file.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Report implements Reporter. The count returned is the number of files
// with pending changes.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var changed, additions, deletions int
	for _, file := range result.Files {
		if file.Error != nil {
			r.writeFileError(file.Path, file.Error)
			continue
		}
		if file.Result == nil {
			continue
		}
		diff := file.Result.Diff
		if !diff.HasChanges() {
			continue
		}

		changed++
		additions += diff.Additions
		deletions += diff.Deletions
		r.writeDiff(diff)
	}

	if changed > 0 && r.opts.ShowSummary {
		r.writeSummary(changed, additions, deletions)
	}

	return changed, nil
}

func (r *DiffReporter) writeFileError(path string, err error) {
	fmt.Fprintf(r.out, "%s: %s\n",
		r.styles.FilePath.Render(path),
		r.styles.Error.Render(fmt.Sprintf("error: %v", err)),
	)
}

// writeDiff renders one file's diff from its hunks. Rendering from the
// structured form keeps content lines that happen to start with diff
// markers from being misread as headers.
func (r *DiffReporter) writeDiff(diff *fix.Diff) {
	name := relativePath(diff.Path)

	fmt.Fprintln(r.out, r.styles.DiffHeader.Render(fmt.Sprintf("diff --git a/%s b/%s", name, name)))
	fmt.Fprintln(r.out, r.styles.DiffRemove.Render("--- a/"+name))
	fmt.Fprintln(r.out, r.styles.DiffAdd.Render("+++ b/"+name))

	for _, hunk := range diff.Hunks {
		r.writeHunk(hunk)
	}

	fmt.Fprintln(r.out)
}

func (r *DiffReporter) writeHunk(hunk fix.DiffHunk) {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
		hunk.OriginalStart, hunk.OriginalCount,
		hunk.ModifiedStart, hunk.ModifiedCount)
	fmt.Fprintln(r.out, r.styles.DiffHunk.Render(header))

	for _, line := range hunk.Lines {
		switch line.Kind {
		case fix.DiffLineAdd:
			fmt.Fprintln(r.out, r.styles.DiffAdd.Render("+"+line.Content))
		case fix.DiffLineRemove:
			fmt.Fprintln(r.out, r.styles.DiffRemove.Render("-"+line.Content))
		default:
			fmt.Fprintln(r.out, r.styles.DiffContext.Render(" "+line.Content))
		}
	}
}

// writeSummary prints the git-style closing line, e.g.
// "2 files changed, 3 insertions(+), 1 deletion(-)".
func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	parts := []string{
		fmt.Sprintf("%d %s changed", files, plural(files, "file", "files")),
	}
	if additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(
			fmt.Sprintf("%d %s(+)", additions, plural(additions, "insertion", "insertions"))))
	}
	if deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(
			fmt.Sprintf("%d %s(-)", deletions, plural(deletions, "deletion", "deletions"))))
	}

	fmt.Fprintln(r.out, strings.Join(parts, ", "))
}

// relativePath shortens an absolute path for display. Paths that would
// climb more than two directories fall back to the bare file name.
func relativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Base(path)
	}
	if rel, err := filepath.Rel(cwd, path); err == nil && strings.Count(rel, "..") <= 2 {
		return rel
	}
	return filepath.Base(path)
}
