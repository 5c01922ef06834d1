package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/spellbee/internal"
)

// Cache stores synthesized words on disk so each one is only fetched once
type Cache struct {
	dir string
}

// NewCache creates a cache rooted at dir
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Path returns where the audio for text with the given settings lives
func (c *Cache) Path(text, ext string, settings ...string) string {
	key := internal.CacheKey(text, settings...)

	// Use the first 2 chars of the hash as subdirectory for better file system performance
	hash := key[len(key)-12:]
	return filepath.Join(c.dir, hash[:2], key+ext)
}

// Has reports whether path holds a non-empty cached file
func (c *Cache) Has(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}

// Store writes data to path atomically
func (c *Cache) Store(path string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("no audio data to cache")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".partial-*")
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move cache file into place: %w", err)
	}
	return nil
}

// Clear removes all cached audio files
func (c *Cache) Clear() error {
	if c.dir == "" {
		return nil
	}
	return os.RemoveAll(c.dir)
}

// Stats returns the number and total size of cached files
func (c *Cache) Stats() (fileCount int, totalSize int64, err error) {
	if c.dir == "" {
		return 0, 0, nil
	}
	if _, statErr := os.Stat(c.dir); os.IsNotExist(statErr) {
		return 0, 0, nil
	}

	err = filepath.Walk(c.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			fileCount++
			totalSize += info.Size()
		}
		return nil
	})

	return fileCount, totalSize, err
}
