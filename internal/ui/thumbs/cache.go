package thumbs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheDirName = "photogrid/thumbs"
	cacheMaxAge  = 30 * 24 * time.Hour
)

// Cache stores downloaded thumbnail bytes on disk, keyed by URL.
// A nil *Cache is valid and caches nothing.
type Cache struct {
	dir string
}

// NewCache creates a disk cache under baseDir, or under the user cache
// directory when baseDir is empty. Entries older than 30 days are pruned
// in the background.
func NewCache(baseDir string) (*Cache, error) {
	dir := baseDir
	if dir == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(userCache, cacheDirName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	c := &Cache{dir: dir}
	go c.prune(time.Now().Add(-cacheMaxAge))

	return c, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func cacheKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) path(url string) string {
	return filepath.Join(c.dir, cacheKey(url)+".img")
}

// Get returns the cached bytes for url, or nil if not cached.
func (c *Cache) Get(url string) []byte {
	if c == nil {
		return nil
	}

	path := c.path(url)
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil
	}

	// Touch so frequently used entries survive pruning
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort

	return data
}

// Put stores data for url. Empty data is ignored. The entry is written to
// a temporary file and renamed into place, so readers never see a partial
// entry.
func (c *Cache) Put(url string, data []byte) error {
	if c == nil || len(data) == 0 {
		return nil
	}

	tmp, err := os.CreateTemp(c.dir, ".put-*")
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), c.path(url))
	}
	if err != nil {
		_ = os.Remove(tmp.Name()) //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Delete removes the entry for url, if any.
func (c *Cache) Delete(url string) {
	if c == nil {
		return
	}
	_ = os.Remove(c.path(url)) //nolint:errcheck // missing entries are fine
}

// Size returns the total size in bytes of cached entries.
func (c *Cache) Size() int64 {
	if c == nil {
		return 0
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0
	}
	var total int64
	for _, e := range entries {
		if info, err := e.Info(); err == nil && !e.IsDir() {
			total += info.Size()
		}
	}
	return total
}

// prune removes entries last used before cutoff.
func (c *Cache) prune(cutoff time.Time) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
