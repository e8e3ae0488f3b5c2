// Package cache provides a small fixed-capacity LRU used to memoize
// pairwise point distances.
package cache

import "container/list"

// LRU is a least-recently-used cache holding at most capacity entries.
//
// It is not safe for concurrent use: every algorithm run owns its cache
// for the duration of a single call.
type LRU[K comparable, V any] struct {
	capacity  int
	items     map[K]*list.Element
	evictList *list.List
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRU creates a new LRU cache. capacity must be positive.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: capacity must be positive")
	}
	return &LRU[K, V]{
		capacity:  capacity,
		items:     make(map[K]*list.Element, capacity),
		evictList: list.New(),
	}
}

// Get returns the cached value for key. ok is false if missing.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	if ent, ok := c.items[key]; ok {
		c.evictList.MoveToFront(ent)
		return ent.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set caches value under key, evicting the least recently used entry if
// the cache is full.
func (c *LRU[K, V]) Set(key K, value V) {
	if ent, ok := c.items[key]; ok {
		c.evictList.MoveToFront(ent)
		ent.Value.(*entry[K, V]).value = value
		return
	}

	c.items[key] = c.evictList.PushFront(&entry[K, V]{key: key, value: value})
	if c.evictList.Len() > c.capacity {
		c.removeOldest()
	}
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	return c.evictList.Len()
}

func (c *LRU[K, V]) removeOldest() {
	ent := c.evictList.Back()
	if ent == nil {
		return
	}
	c.evictList.Remove(ent)
	delete(c.items, ent.Value.(*entry[K, V]).key)
}
