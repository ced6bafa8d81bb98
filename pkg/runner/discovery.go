package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Discover finds lintable source files matching opts under the given working
// directory. It returns a deterministically sorted list of absolute file paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	ign, err := loadIgnoreFile(workDir, opts.effectiveIgnoreFile())
	if err != nil {
		return nil, err
	}

	w := &walker{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		ignore:     ign,
		opts:       opts,
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, dup := seen[path]; !dup {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, arg := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := arg
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		switch {
		case info.IsDir():
			found, err := w.walkTree(ctx, abs)
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
		case w.includeExplicit(abs):
			add(abs)
		}
	}

	slices.Sort(files)
	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

// loadIgnoreFile compiles the gitignore-style ignore file in workDir.
// A missing file is not an error; an unreadable one is.
func loadIgnoreFile(workDir, name string) (*gitignore.GitIgnore, error) {
	matcher, err := gitignore.CompileIgnoreFile(filepath.Join(workDir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return matcher, nil
}

// walker carries the filters that every visited path is checked against.
type walker struct {
	workDir    string
	extensions []string
	ignore     *gitignore.GitIgnore
	opts       Options
}

// walkTree collects matching files under root.
func (w *walker) walkTree(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if w.skipDir(path, path == root) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return w.visitSymlink(ctx, path, &files)
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if w.includeFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}
	return files, nil
}

// skipDir decides whether a directory and everything under it is out of
// scope. Hidden directories and node_modules are skipped unless named as
// the walk root, so "gojslint node_modules/pkg" still opts in.
func (w *walker) skipDir(path string, isRoot bool) bool {
	name := filepath.Base(path)
	if !isRoot && (strings.HasPrefix(name, ".") || name == "node_modules") {
		return true
	}

	rel := w.rel(path)
	// Trailing slash so directory patterns like "dist/" match.
	if w.ignore != nil && w.ignore.MatchesPath(rel+"/") {
		return true
	}
	return matchesAnyGlob(rel, w.opts.ExcludeGlobs)
}

// visitSymlink resolves a symlink entry. File targets go through the
// normal filters under the symlink's own name; directory targets are
// walked only when FollowSymlinks is set, and the walk descends into
// the resolved target so WalkDir's Lstat on the root cannot loop.
func (w *walker) visitSymlink(ctx context.Context, path string, files *[]string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken symlink, skip silently.
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // Unreachable target, skip silently.
	}

	if info.IsDir() {
		if !w.opts.FollowSymlinks {
			return nil
		}
		sub, err := w.walkTree(ctx, target)
		if err != nil {
			return err
		}
		*files = append(*files, sub...)
		return nil
	}

	if !strings.HasPrefix(filepath.Base(path), ".") && w.includeFile(path) {
		*files = append(*files, path)
	}
	return nil
}

func (w *walker) rel(path string) string {
	rel, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// includeFile applies the full filter chain: extension, ignore file,
// exclude globs, then include globs when any are configured.
func (w *walker) includeFile(path string) bool {
	if !hasMatchingExtension(path, w.extensions) {
		return false
	}

	rel := w.rel(path)
	if w.ignore != nil && w.ignore.MatchesPath(rel) {
		return false
	}
	if matchesAnyGlob(rel, w.opts.ExcludeGlobs) {
		return false
	}
	return len(w.opts.IncludeGlobs) == 0 || matchesAnyGlob(rel, w.opts.IncludeGlobs)
}

// includeExplicit applies only the ignore rules. The extension filter is
// skipped: naming a file is opting in, which is the only way
// extensionless scripts with shebang lines get linted.
func (w *walker) includeExplicit(path string) bool {
	rel := w.rel(path)
	if w.ignore != nil && w.ignore.MatchesPath(rel) {
		return false
	}
	return !matchesAnyGlob(rel, w.opts.ExcludeGlobs)
}

func hasMatchingExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

func matchesAnyGlob(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-normalized relative path against one glob.
// Patterns without ** go through filepath.Match against the whole path
// and then the basename, so "*.min.js" applies at any depth. Patterns
// with ** split at the first one: "dir/**" anchors a prefix, "**/x"
// floats x to any position, and "a/**/b" anchors both ends.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	before, after, hasDoubleStar := strings.Cut(pattern, "**")
	if !hasDoubleStar {
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			return true
		}
		ok, err := filepath.Match(pattern, filepath.Base(path))
		return err == nil && ok
	}

	prefix := strings.TrimSuffix(before, "/")
	suffix := strings.TrimPrefix(after, "/")

	switch {
	case prefix == "" && suffix == "":
		return true

	case prefix == "":
		// "**/x": x as a literal subpath or as a matching component.
		if strings.Contains(path, suffix) {
			return true
		}
		for _, part := range strings.Split(path, "/") {
			if ok, err := filepath.Match(suffix, part); err == nil && ok {
				return true
			}
		}
		return false

	case suffix == "":
		// "dir/**": everything under dir, and dir itself.
		return path == prefix || strings.HasPrefix(path, prefix+"/")

	default:
		// "a/**/b": both ends anchored.
		if !strings.HasPrefix(path, prefix) {
			return false
		}
		if strings.HasSuffix(path, suffix) {
			return true
		}
		ok, err := filepath.Match(suffix, filepath.Base(path))
		return err == nil && ok
	}
}
