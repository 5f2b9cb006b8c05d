// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
// The schema package uses it as the in-process layer in front of storage
// metadata providers: column lists are small, read on every first
// configuration build and change only with migrations, so a bounded cache with
// a generous TTL keeps introspection queries off the hot path.
//
// # Usage
//
//	c := cache.NewLRU[string, []schema.Column](256, cache.WithTTL[string, []schema.Column](10*time.Minute))
//
//	c.Put("users", cols)
//	if cols, ok := c.Get("users"); ok {
//	    // use cols
//	}
//
// Expired entries are dropped lazily on access; there is no background
// goroutine. When the cache is full the least recently used entry is evicted
// and, if configured, the eviction callback runs with the lock held, so it must
// not call back into the cache.
//
// All operations are O(1).
package cache
