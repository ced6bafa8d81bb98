package lint

import (
	"math"
	"sort"
	"strings"

	"github.com/yaklabco/gojslint/pkg/jsast"
)

// wildcardScope is the suppression bucket covering all rules.
const wildcardScope = "*"

// directivePrefix optionally namespaces a directive comment
// (e.g., "gojslint-disable-next-line"). The bare forms work too.
const directivePrefix = "gojslint-"

// directiveKeywords in longest-match-first order, so "disable-next-line"
// is never misread as "disable" plus garbage.
var directiveKeywords = [...]string{
	"disable-next-line",
	"disable-line",
	"disable-file",
	"disable",
	"enable",
}

// lineInterval is a closed range of suppressed lines.
type lineInterval struct {
	start int
	end   int
}

// scopeSuppression holds the suppressed ranges for one rule scope.
type scopeSuppression struct {
	fileWide  bool
	intervals []lineInterval
}

// contains reports whether line falls in any interval. Intervals are sorted
// and non-overlapping after normalization, so a binary search on the end
// bound suffices.
func (s *scopeSuppression) contains(line int) bool {
	idx := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].end >= line
	})
	return idx < len(s.intervals) && s.intervals[idx].start <= line
}

// SuppressionSet answers whether a rule is suppressed on a given line of
// one file. It is built once per file from directive comments and is
// read-only during dispatch.
type SuppressionSet struct {
	scopes map[string]*scopeSuppression
}

// BuildSuppressions scans the file's comments for suppression directives
// and assembles per-rule and wildcard line intervals.
//
// Directive forms (comment body, optionally prefixed with "gojslint-",
// optionally followed by a comma-separated rule list or "*"):
//
//	disable-line        suppress the comment's own physical line
//	disable-next-line   suppress the line after the comment
//	disable / enable    open / close a suppressed region
//	disable-file        suppress the entire file
//
// A disable with no later enable for the same scope extends to end of file.
// An enable with no prior disable for its scope is a no-op. Scopes are
// independent: enabling rule A never touches rule B's regions.
func BuildSuppressions(file *jsast.FileSnapshot) *SuppressionSet {
	set := &SuppressionSet{scopes: make(map[string]*scopeSuppression)}
	if file == nil {
		return set
	}

	// Open disable regions by scope, keyed to the line they started on.
	open := make(map[string]int)

	for i := range file.Comments {
		comment := &file.Comments[i]
		dir, ok := parseDirective(comment.Body())
		if !ok {
			continue
		}

		for _, scope := range dir.scopes {
			switch dir.keyword {
			case "disable-line":
				set.addInterval(scope, comment.StartLine, comment.StartLine)
			case "disable-next-line":
				set.addInterval(scope, comment.EndLine+1, comment.EndLine+1)
			case "disable-file":
				set.scope(scope).fileWide = true
			case "disable":
				if _, already := open[scope]; !already {
					open[scope] = comment.StartLine
				}
			case "enable":
				if from, opened := open[scope]; opened {
					set.addInterval(scope, from, comment.StartLine)
					delete(open, scope)
				}
			}
		}
	}

	// Unclosed disables extend to end of file.
	for scope, from := range open {
		set.addInterval(scope, from, math.MaxInt)
	}

	set.normalize()
	return set
}

// IsSuppressed reports whether the rule must not report on the given line.
// The wildcard bucket is checked before the rule's own bucket, whole-file
// flags before intervals.
func (s *SuppressionSet) IsSuppressed(rule string, line int) bool {
	if s == nil {
		return false
	}
	if wc, ok := s.scopes[wildcardScope]; ok {
		if wc.fileWide || wc.contains(line) {
			return true
		}
	}
	if rs, ok := s.scopes[rule]; ok {
		if rs.fileWide || rs.contains(line) {
			return true
		}
	}
	return false
}

func (s *SuppressionSet) scope(name string) *scopeSuppression {
	if existing, ok := s.scopes[name]; ok {
		return existing
	}
	created := &scopeSuppression{}
	s.scopes[name] = created
	return created
}

func (s *SuppressionSet) addInterval(scopeName string, start, end int) {
	sc := s.scope(scopeName)
	sc.intervals = append(sc.intervals, lineInterval{start: start, end: end})
}

// normalize sorts each scope's intervals and merges overlapping or adjacent
// ranges, leaving the sorted disjoint form contains() requires.
func (s *SuppressionSet) normalize() {
	for _, sc := range s.scopes {
		if len(sc.intervals) < 2 {
			continue
		}

		sort.Slice(sc.intervals, func(i, j int) bool {
			if sc.intervals[i].start != sc.intervals[j].start {
				return sc.intervals[i].start < sc.intervals[j].start
			}
			return sc.intervals[i].end < sc.intervals[j].end
		})

		merged := sc.intervals[:1]
		for _, iv := range sc.intervals[1:] {
			last := &merged[len(merged)-1]
			if iv.start-1 <= last.end {
				if iv.end > last.end {
					last.end = iv.end
				}
				continue
			}
			merged = append(merged, iv)
		}
		sc.intervals = merged
	}
}

// directive is one parsed suppression instruction.
type directive struct {
	keyword string
	scopes  []string
}

// parseDirective interprets a comment body as a suppression directive.
// Only the first line of the body is considered; the keyword must be the
// first word. Returns false for ordinary comments.
func parseDirective(body string) (directive, bool) {
	text := strings.TrimSpace(body)
	if line, _, found := strings.Cut(text, "\n"); found {
		text = strings.TrimSpace(line)
	}
	text = strings.TrimPrefix(text, directivePrefix)

	for _, keyword := range directiveKeywords {
		rest, ok := strings.CutPrefix(text, keyword)
		if !ok {
			continue
		}
		// Require a word boundary so "disable-foo" never matches "disable".
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		return directive{keyword: keyword, scopes: parseScopes(rest)}, true
	}
	return directive{}, false
}

// parseScopes splits the rule list after a directive keyword. An empty list
// or "*" yields the wildcard scope.
func parseScopes(rest string) []string {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return []string{wildcardScope}
	}

	var scopes []string
	for _, part := range strings.Split(rest, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if name == wildcardScope {
			return []string{wildcardScope}
		}
		scopes = append(scopes, name)
	}
	if len(scopes) == 0 {
		return []string{wildcardScope}
	}
	return scopes
}
