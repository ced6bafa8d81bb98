package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/yaklabco/gojslint/pkg/lint"
)

// Key builds the cache key for a file from its stat metadata and the
// resolved rule fingerprint. Any change to path, modification time, size,
// or the active rule set produces a different key.
func Key(absPath string, modTime time.Time, size int64, fingerprint []string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d", absPath, modTime.UnixNano(), size)
	for _, entry := range fingerprint {
		h.Write([]byte{'|'})
		h.Write([]byte(entry))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ContentKey builds the fallback key for files whose metadata cannot be
// read. Hashing the full content is slower than a stat but stays correct.
func ContentKey(path string, content []byte, ruleNames []string) string {
	h := sha256.New()
	h.Write([]byte(path))
	h.Write([]byte{'|'})
	h.Write(content)
	for _, name := range ruleNames {
		h.Write([]byte{'|'})
		h.Write([]byte(name))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint renders a resolved rule set as a sorted name:severity list.
// Two runs with the same fingerprint produce the same diagnostics for an
// unchanged file.
func Fingerprint(rules []lint.ResolvedRule) []string {
	fp := make([]string, 0, len(rules))
	for i := range rules {
		fp = append(fp, rules[i].Rule.Name+":"+rules[i].Severity.String())
	}
	sort.Strings(fp)
	return fp
}

// Names returns the sorted rule names of a resolved rule set, used by the
// content-hash fallback key.
func Names(rules []lint.ResolvedRule) []string {
	names := make([]string, 0, len(rules))
	for i := range rules {
		names = append(names, rules[i].Rule.Name)
	}
	sort.Strings(names)
	return names
}
