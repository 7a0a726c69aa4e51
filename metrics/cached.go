package metrics

import "github.com/gogpu/maplabel/internal/cache"

// DefaultCacheLimit is the soft entry limit of NewCached when limit is 0.
const DefaultCacheLimit = 4096

// CacheStats reports Cached hit and eviction counters.
type CacheStats = cache.Stats

type cacheKey struct {
	font, text string
}

// Cached memoizes a Provider per (font, text) pair. It is safe for
// concurrent use.
type Cached struct {
	provider Provider
	entries  *cache.Cache[cacheKey, Extent]
}

// NewCached wraps p. A limit of 0 means DefaultCacheLimit; a negative
// limit disables eviction.
func NewCached(p Provider, limit int) *Cached {
	switch {
	case limit == 0:
		limit = DefaultCacheLimit
	case limit < 0:
		limit = 0
	}
	return &Cached{
		provider: p,
		entries:  cache.New[cacheKey, Extent](limit),
	}
}

// Measure implements Provider.
func (c *Cached) Measure(font, text string) Extent {
	return c.entries.GetOrCreate(cacheKey{font, text}, func() Extent {
		return c.provider.Measure(font, text)
	})
}

// Invalidate drops every entry measured with font and returns how many
// were removed. Use it after registering new data for a family.
func (c *Cached) Invalidate(font string) int {
	return c.entries.DeleteFunc(func(k cacheKey) bool { return k.font == font })
}

// Reset drops all entries.
func (c *Cached) Reset() { c.entries.Clear() }

// Len returns the number of cached extents.
func (c *Cached) Len() int { return c.entries.Len() }

// Stats returns the cache counters.
func (c *Cached) Stats() CacheStats { return c.entries.Stats() }
