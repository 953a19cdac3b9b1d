// Package stylecache guarantees at most one native style registration per
// distinct style key for the lifetime of the process.
package stylecache

import (
	"sync"

	"github.com/veneer-ui/veneer/internal/logger"
	"github.com/veneer-ui/veneer/internal/registry"
	"github.com/veneer-ui/veneer/internal/stylekey"
)

// BuildFunc registers the native style for a key on first resolution. It is
// invoked at most once per key unless it fails, in which case nothing is
// stored and the next Resolve with the same key builds again.
type BuildFunc func() (registry.Handle, error)

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	Entries int
	Hits    int
	Misses  int
}

// Cache maps canonical style keys to registered style handles. Entries live
// until process teardown; theme tokens are immutable for the process, so
// there is no invalidation path. Resolution runs on the UI goroutine, but
// the map is still mutex-guarded the way the framework guards its other
// process-wide tables.
type Cache struct {
	mu      sync.Mutex
	entries map[stylekey.Key]registry.Handle
	hits    int
	misses  int
	log     *logger.Logger
}

// New creates an empty Cache.
func New(log *logger.Logger) *Cache {
	if log == nil {
		log = logger.Discard()
	}
	return &Cache{
		entries: make(map[stylekey.Key]registry.Handle),
		log:     log.WithComponent("cache"),
	}
}

// Resolve returns the handle stored for key, building and storing it first
// if the key has never resolved successfully. A failed build leaves the
// cache untouched.
func (c *Cache) Resolve(key stylekey.Key, build BuildFunc) (registry.Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if handle, ok := c.entries[key]; ok {
		c.hits++
		return handle, nil
	}

	handle, err := build()
	if err != nil {
		return "", err
	}

	c.entries[key] = handle
	c.misses++
	c.log.WithFields(map[string]any{"key": string(key), "entries": len(c.entries)}).Debug("cached new style")

	return handle, nil
}

// Contains reports whether key has a stored entry. Used by resolver tests
// asserting that rejected requests never touch the cache.
func (c *Cache) Contains(key stylekey.Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	return ok
}

// Stats returns a snapshot of cache activity.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}
