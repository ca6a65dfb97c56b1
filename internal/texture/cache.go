package texture

import (
	"log/slog"
	"os"
	"sync"
)

// Resolver resolves a texture name to a decoded texture.
type Resolver interface {
	Resolve(texName string) *Texture
}

// Cache is a concurrency-safe texture cache. Returned textures are shared
// between callers and must be treated as read-only.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

// cacheEntry records a load attempt; tex is nil when the load failed.
type cacheEntry struct {
	tex *Texture
}

// NewCache creates a new texture cache backed by the given index. A nil
// index resolves only direct file paths.
func NewCache(index *Index) *Cache {
	if index == nil {
		index = &Index{entries: map[string]string{}}
	}
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture by name or path. Returns nil if not
// found or not decodable.
func (c *Cache) Resolve(texName string) *Texture {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		if _, err := os.Stat(texName); err != nil || !Supported(texName) {
			return nil
		}
		path = texName
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.tex
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	var tex *Texture
	img, err := LoadTexture(path)
	if err != nil {
		slog.Warn("texture load failed", "name", texName, "err", err)
	} else {
		tex = New(img)
		tex.Path = path
	}

	// Write lock with double-check
	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.tex
	}
	c.items[path] = &cacheEntry{tex: tex}
	c.mu.Unlock()

	return tex
}

// Len returns the number of cached paths, including failed loads.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
