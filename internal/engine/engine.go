// Package engine is the public resolution surface of the framework. Each
// resolver turns a semantic style request into a registered native style:
// it validates every parameter against the token store, canonicalises the
// request into a style key, and resolves the key through the style cache so
// the native registry sees each distinct request exactly once.
package engine

import (
	"github.com/veneer-ui/veneer/internal/logger"
	"github.com/veneer-ui/veneer/internal/registry"
	"github.com/veneer-ui/veneer/internal/stylecache"
	"github.com/veneer-ui/veneer/internal/stylekey"
	"github.com/veneer-ui/veneer/internal/tokens"
)

// Engine ties a token store, a style cache, and a native registry together.
// There is no package-level instance; callers construct one per theme and
// pass it where styling happens.
type Engine struct {
	store *tokens.Store
	cache *stylecache.Cache
	reg   *registry.Registry
	log   *logger.Logger
}

// New creates an Engine over a loaded token store and an empty registry.
func New(store *tokens.Store, reg *registry.Registry, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Discard()
	}
	return &Engine{
		store: store,
		cache: stylecache.New(log),
		reg:   reg,
		log:   log.WithComponent("engine"),
	}
}

// Store exposes the token store for read-only lookups.
func (e *Engine) Store() *tokens.Store {
	return e.store
}

// Registry exposes the native style registry so widgets can fetch the
// styles their handles refer to.
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}

// CacheStats reports style-cache activity since the engine was created.
func (e *Engine) CacheStats() stylecache.Stats {
	return e.cache.Stats()
}

// resolve funnels every resolver through the cache. The build closure only
// runs on a cache miss; a registration failure leaves the cache untouched so
// the same key can be retried.
func (e *Engine) resolve(key stylekey.Key, spec registry.Spec) (registry.Handle, error) {
	return e.cache.Resolve(key, func() (registry.Handle, error) {
		return e.reg.Register(string(key), spec)
	})
}

// paddingCells converts a pixel padding from the spacing scale into
// terminal cell counts. Horizontal padding is one cell per grid unit;
// vertical padding is halved, rounded up, to account for the tall aspect of
// terminal cells.
func (e *Engine) paddingCells(px int) (x, y int) {
	unit := e.store.GridUnit()
	if unit <= 0 || px <= 0 {
		return 0, 0
	}
	x = px / unit
	y = (x + 1) / 2
	return x, y
}
