// Package cache provides the LRU cache behind cached text metrics.
//
//	c := cache.New[Key, Extent](1024)
//	ext := c.GetOrCreate(key, measure)
//
// When the number of entries exceeds the soft limit, the least recently
// used entries are evicted until a quarter of the limit is free again.
// A Cache is safe for concurrent use and must not be copied.
package cache
