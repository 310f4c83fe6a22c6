package cache

import (
	"testing"

	"github.com/AnyUserName/autopalette/internal/palette"
)

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	opts := palette.DefaultOptions()
	buf := make([]byte, 4*4*4)
	for i := 0; i < len(buf); i += 4 {
		buf[i], buf[i+1], buf[i+2], buf[i+3] = 10, 20, 30, 255
	}

	key := Key(buf, 4, 4, opts)
	if _, ok, err := store.Lookup(key); err != nil || ok {
		t.Fatalf("expected cache miss, got ok=%v err=%v", ok, err)
	}

	swatches := []palette.Swatch{{Color: [3]uint8{10, 20, 30}, Position: [2]uint32{0, 0}, Percentage: 1}}
	if _, err := store.Store(key, 4, 4, opts, swatches); err != nil {
		t.Fatalf("Store: %v", err)
	}

	entry, ok, err := store.Lookup(key)
	if err != nil || !ok {
		t.Fatalf("expected cache hit, got ok=%v err=%v", ok, err)
	}
	if len(entry.Swatches) != 1 || entry.Swatches[0].Color != [3]uint8{10, 20, 30} {
		t.Fatalf("unexpected cached entry: %+v", entry)
	}
}

func TestKey_ChangesWithOptions(t *testing.T) {
	buf := make([]byte, 16)
	opts1 := palette.DefaultOptions()
	opts2 := palette.DefaultOptions()
	opts2.MinPoints = 30

	if Key(buf, 2, 2, opts1) == Key(buf, 2, 2, opts2) {
		t.Fatal("expected different keys for different MinPoints")
	}
}

func TestExtractCached_CachesResult(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	opts := palette.DefaultOptions()
	opts.MinPoints = 4
	opts.Epsilon = 0.5
	buf := make([]byte, 4*8*8)
	for i := 0; i < len(buf); i += 4 {
		buf[i], buf[i+1], buf[i+2], buf[i+3] = 5, 5, 5, 255
	}

	first, err := store.ExtractCached(buf, 8, 8, opts)
	if err != nil {
		t.Fatalf("ExtractCached: %v", err)
	}
	second, err := store.ExtractCached(buf, 8, 8, opts)
	if err != nil {
		t.Fatalf("ExtractCached (cached path): %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("cached result mismatch: %d vs %d", len(first), len(second))
	}
}
