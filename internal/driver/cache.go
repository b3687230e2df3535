package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"svcore/internal/diag"
)

// cachedDiagnostic is the msgpack-serializable projection of diag.Diagnostic
// (§6.1): a plain-field record, since Diagnostic.Args holds arbitrary `any`
// values the binder supplied and is not itself meant to round-trip through
// a cache — the message is rendered once, at cache-write time, instead.
type cachedDiagnostic struct {
	Severity    uint8
	Code        uint16
	FileOffset  uint32
	FileEndOff  uint32
	RenderedMsg string
}

// cacheEntry is exactly what §6.1 allows the cache to hold: "diagnostics
// and top-level declaration names" for one input file, never the
// symbol/scope graph, honoring the "no serialization of the symbol table"
// non-goal.
type cacheEntry struct {
	ContentHash string
	Version     string
	Diagnostics []cachedDiagnostic
	TopLevel    []string
}

// Cache is a whole-file, content-addressed compile-result cache (§6.1): an
// on-disk directory keyed by sha256(file bytes || language version).
// Flipping a single byte in the input changes the key entirely, so there
// is no partial/incremental invalidation to reason about.
type Cache struct {
	dir string
}

// OpenCache prepares dir as a cache root, creating it if necessary.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("driver: failed to create cache dir %q: %w", dir, err)
	}
	return &Cache{dir: dir}, nil
}

// Key computes the cache key for content compiled against version.
func Key(content []byte, version string) string {
	h := sha256.New()
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(version))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".msgpack")
}

// Lookup returns the cached entry for key, or ok == false if absent or
// unreadable (a corrupt cache entry is treated as a miss, not an error,
// since re-deriving it is always safe).
func (c *Cache) Lookup(key string) (entry cacheEntry, ok bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return cacheEntry{}, false
	}
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		return cacheEntry{}, false
	}
	return entry, true
}

// Store writes entry under key, overwriting any prior entry.
func (c *Cache) Store(key string, entry cacheEntry) error {
	data, err := msgpack.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("driver: failed to encode cache entry: %w", err)
	}
	tmp := c.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("driver: failed to write cache entry: %w", err)
	}
	if err := os.Rename(tmp, c.path(key)); err != nil {
		return errors.Join(fmt.Errorf("driver: failed to commit cache entry: %w", err), os.Remove(tmp))
	}
	return nil
}

func toCachedDiagnostics(items []*diag.Diagnostic) []cachedDiagnostic {
	out := make([]cachedDiagnostic, 0, len(items))
	for _, d := range items {
		msg := d.Message
		if len(d.Args) > 0 {
			msg = fmt.Sprintf(d.Message, d.Args...)
		}
		out = append(out, cachedDiagnostic{
			Severity:    uint8(d.Severity),
			Code:        uint16(d.Code),
			FileOffset:  d.Primary.Start,
			FileEndOff:  d.Primary.End,
			RenderedMsg: msg,
		})
	}
	return out
}
