// Package cache persists lint results keyed by file state and rule set,
// so unchanged files skip parsing and analysis on repeat runs.
//
// The cache is strictly an optimization: a miss falls through to full
// analysis, and a hit must be indistinguishable from a fresh result.
package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/yaklabco/gojslint/pkg/fsutil"
	"github.com/yaklabco/gojslint/pkg/lint"
)

// Current schema version - increment when the document format changes.
const schemaVersion uint16 = 1

// document is the on-disk layout: one msgpack document holding every entry.
// Entries are key-sorted before encoding so the same cache state always
// serializes to the same bytes.
type document struct {
	Schema  uint16
	Entries []entry
}

type entry struct {
	Key    string
	Result *lint.LintResult
}

// Cache maps file/rule-set keys to previously computed lint results.
// Safe for concurrent use; a coarse mutex guards the entry map.
type Cache struct {
	path string

	mu      sync.Mutex
	entries map[string]*lint.LintResult
}

// Open loads the cache document at path. Loading is best-effort: a
// missing, unreadable, corrupt, or version-mismatched file yields an
// empty cache, never an error.
func Open(path string) *Cache {
	c := &Cache{
		path:    path,
		entries: make(map[string]*lint.LintResult),
	}
	c.load()
	return c
}

// Path returns the cache file location.
func (c *Cache) Path() string {
	return c.path
}

func (c *Cache) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}

	var doc document
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return
	}
	if doc.Schema != schemaVersion {
		return
	}

	for _, e := range doc.Entries {
		if e.Key != "" && e.Result != nil {
			c.entries[e.Key] = e.Result
		}
	}
}

// Get returns the cached result for key, if present.
func (c *Cache) Get(key string) (*lint.LintResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, ok := c.entries[key]
	return result, ok
}

// Put stores a result under key. Nil results are ignored.
func (c *Cache) Put(key string, result *lint.LintResult) {
	if result == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = result
}

// Len returns the number of entries currently held.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Save writes the cache document to disk. Only entries with at least one
// message are persisted; when none qualify, nothing is written at all.
// The parent directory is created if missing, and because the encoding is
// deterministic an unchanged document leaves the file untouched.
func (c *Cache) Save(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc := document{Schema: schemaVersion}
	for key, result := range c.entries {
		if result.HasIssues() {
			doc.Entries = append(doc.Entries, entry{Key: key, Result: result})
		}
	}
	if len(doc.Entries) == 0 {
		return nil
	}
	sort.Slice(doc.Entries, func(i, j int) bool {
		return doc.Entries[i].Key < doc.Entries[j].Key
	})

	data, err := msgpack.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	if _, err := fsutil.WriteAtomicIfChanged(ctx, c.path, data, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

// DefaultLocation returns the cache file location used when the
// configuration does not name one.
func DefaultLocation() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "gojslint", "results.bin"), nil
}
