package audio

import (
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/spellbee/internal/testutil"
)

func TestCacheStoreAndHas(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir)

	path := c.Path("House", ".mp3", "tts-1", "nova")
	if !strings.HasPrefix(path, dir) || filepath.Ext(path) != ".mp3" {
		t.Errorf("unexpected cache path %s", path)
	}
	if c.Has(path) {
		t.Fatal("empty cache should not have the file")
	}

	if err := c.Store(path, []byte{0xFF, 0xFB, 0x90}); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
	if !c.Has(path) {
		t.Error("cache should have the file after Store")
	}
	testutil.AssertFileContent(t, path, []byte{0xFF, 0xFB, 0x90})

	count, size, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if count != 1 || size != 3 {
		t.Errorf("Stats() = %d files, %d bytes; want 1, 3", count, size)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if c.Has(path) {
		t.Error("cache should be empty after Clear")
	}
}

func TestCacheStoreRejectsEmpty(t *testing.T) {
	c := NewCache(t.TempDir())
	if err := c.Store(c.Path("cat", ".mp3"), nil); err == nil {
		t.Error("expected error when storing empty data")
	}
}

func TestCachePathDependsOnSettings(t *testing.T) {
	c := NewCache("/cache")
	if c.Path("cat", ".mp3", "nova") == c.Path("cat", ".mp3", "alloy") {
		t.Error("different voices must not share a cache entry")
	}
}
