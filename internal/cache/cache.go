// Package cache provides a content-addressed, on-disk cache of palette
// extraction results, keyed by a hash of the source pixels and the
// options used to extract them. It follows the same JSON-manifest shape
// the batch pipeline's build report uses: one record per entry, written
// with stable field ordering and a trailing newline.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AnyUserName/autopalette/internal/hasher"
	"github.com/AnyUserName/autopalette/internal/palette"
)

// SupportedCacheVersion is the current on-disk schema version.
const SupportedCacheVersion = 1

// Entry is one cached extraction result.
type Entry struct {
	Version     int             `json:"version"`
	Key         string          `json:"key"`
	GeneratedAt string          `json:"generated_at"`
	Width       uint32          `json:"width"`
	Height      uint32          `json:"height"`
	MinPoints   int             `json:"min_points"`
	Epsilon     float64         `json:"epsilon"`
	Swatches    []palette.Swatch `json:"swatches"`
}

// Key derives the cache key for a pixel buffer and the options that
// would be used to extract it. Every option that changes Extract's
// output is folded into the key, PercentageCutoff included, because
// ExtractCached stores the already-filtered result Extract returns.
func Key(pixels []byte, width, height uint32, opts palette.Options) string {
	seed := fmt.Sprintf("%d:%d:%d:%g:%T:%t:%g", width, height, opts.MinPoints, opts.Epsilon,
		opts.Distance, opts.IncludeTransparent, opts.PercentageCutoff)
	full := append([]byte(seed), pixels...)
	return hasher.ContentHash(full, 16)
}

// Store is a directory of cache entries, one JSON file per key.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir, creating it if necessary.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// EntryPath returns the on-disk path for key, whether or not it exists.
func (s *Store) EntryPath(key string) string {
	return s.path(key)
}

// Lookup returns the cached entry for key, or ok=false if absent.
func (s *Store) Lookup(key string) (entry Entry, ok bool, err error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("cache: read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return entry, true, nil
}

// Store writes swatches under key, returning the entry written.
func (s *Store) Store(key string, width, height uint32, opts palette.Options, swatches []palette.Swatch) (Entry, error) {
	entry := Entry{
		Version:     SupportedCacheVersion,
		Key:         key,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Width:       width,
		Height:      height,
		MinPoints:   opts.MinPoints,
		Epsilon:     opts.Epsilon,
		Swatches:    swatches,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return Entry{}, fmt.Errorf("cache: encode %s: %w", key, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return Entry{}, fmt.Errorf("cache: write %s: %w", key, err)
	}
	return entry, nil
}

// ExtractCached returns the cached swatches for pixels if present;
// otherwise it runs palette.Extract, stores the result, and returns it.
func (s *Store) ExtractCached(pixels []byte, width, height uint32, opts palette.Options) ([]palette.Swatch, error) {
	key := Key(pixels, width, height, opts)
	if entry, ok, err := s.Lookup(key); err != nil {
		return nil, err
	} else if ok {
		return entry.Swatches, nil
	}

	swatches, err := palette.Extract(pixels, width, height, opts)
	if err != nil {
		return nil, err
	}
	if _, err := s.Store(key, width, height, opts, swatches); err != nil {
		return nil, err
	}
	return swatches, nil
}
