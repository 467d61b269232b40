// Package lru implements the bounded key/value engine shared by the
// PoD Protocol SDK caches: a hash map paired with an intrusive
// doubly-linked recency list, optional absolute TTL, and cumulative
// hit/miss accounting. All operations are O(1) amortized except Len,
// which skips entries that have expired but not yet been purged.
//
// The engine is a passive data structure with no internal locking,
// timers, or goroutines. Callers that share a Cache across goroutines
// must serialize access themselves.
package lru

import (
	"fmt"
	"time"
)

// entry is a node of the recency list. The most recently used entry
// sits directly after the list root, the least recently used directly
// before it.
type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time // zero means no time-based expiry
	prev      *entry[K, V]
	next      *entry[K, V]
}

func (e *entry[K, V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Cache is a bounded LRU cache with optional TTL. The zero value is
// not usable; construct with New.
type Cache[K comparable, V any] struct {
	capacity  int
	ttl       time.Duration // 0 means entries never expire by time
	entries   map[K]*entry[K, V]
	root      entry[K, V] // sentinel; root.next is MRU, root.prev is LRU
	hits      uint64
	misses    uint64
	onEvicted func(K, V)
	now       func() time.Time
}

// Option configures a Cache at construction time.
type Option[K comparable, V any] func(*Cache[K, V])

// WithTTL sets an absolute time-to-live applied to every entry on
// insert and on overwrite. A zero or negative d leaves entries
// without time-based expiry.
func WithTTL[K comparable, V any](d time.Duration) Option[K, V] {
	return func(c *Cache[K, V]) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithOnEvicted registers a callback invoked whenever an entry leaves
// the cache: capacity eviction, lazy expiry, Delete, or Clear.
func WithOnEvicted[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvicted = fn
	}
}

// WithClock overrides the time source used for TTL checks.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(c *Cache[K, V]) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates an empty cache holding at most capacity entries.
// A capacity below 1 is a programmer error and panics.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	if capacity < 1 {
		panic(fmt.Sprintf("lru: capacity must be at least 1, got %d", capacity))
	}

	c := &Cache[K, V]{
		capacity: capacity,
		entries:  make(map[K]*entry[K, V], capacity),
		now:      time.Now,
	}
	c.root.prev = &c.root
	c.root.next = &c.root

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set inserts value under key, or replaces the value of an existing
// key. Either way the entry becomes the most recently used and, when
// a TTL is configured, its expiry restarts from now. Inserting a new
// key into a full cache evicts the least recently used entry. Set
// never touches the hit/miss counters.
func (c *Cache[K, V]) Set(key K, value V) {
	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry[K, V]{key: key, value: value, expiresAt: expiresAt}
	c.entries[key] = e
	c.pushFront(e)

	// A brand-new key can overshoot capacity by exactly one, so a
	// single tail eviction is always enough.
	if len(c.entries) > c.capacity {
		c.remove(c.root.prev)
	}
}

// Get returns the live value stored under key and marks it most
// recently used. An absent key, or one whose TTL has elapsed, counts
// as a miss; expired entries are purged on discovery.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	if e.expired(c.now()) {
		c.remove(e)
		c.misses++
		var zero V
		return zero, false
	}

	c.hits++
	c.moveToFront(e)
	return e.value, true
}

// Has reports whether key holds a live entry. Unlike Get it is a pure
// peek: recency order and the hit/miss counters are left untouched.
// Expired entries are still purged on discovery.
func (c *Cache[K, V]) Has(key K) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	if e.expired(c.now()) {
		c.remove(e)
		return false
	}
	return true
}

// Delete removes key if present and reports whether it did. Counters
// are unaffected.
func (c *Cache[K, V]) Delete(key K) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.remove(e)
	return true
}

// Clear removes every entry. The cumulative hit/miss counters are
// kept: they describe the cache's effectiveness over its lifetime,
// not over the current population.
func (c *Cache[K, V]) Clear() {
	for _, e := range c.entries {
		if c.onEvicted != nil {
			c.onEvicted(e.key, e.value)
		}
	}
	c.entries = make(map[K]*entry[K, V], c.capacity)
	c.root.prev = &c.root
	c.root.next = &c.root
}

// Len returns the number of live entries. Entries whose TTL has
// elapsed but that have not been purged yet are not counted, keeping
// Len consistent with what Get and Has would report.
func (c *Cache[K, V]) Len() int {
	if c.ttl == 0 {
		return len(c.entries)
	}
	now := c.now()
	n := 0
	for _, e := range c.entries {
		if !e.expired(now) {
			n++
		}
	}
	return n
}

// Capacity returns the configured entry limit.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// TTL returns the configured time-to-live, 0 when entries never
// expire by time.
func (c *Cache[K, V]) TTL() time.Duration {
	return c.ttl
}

// remove unlinks e and drops it from the map.
func (c *Cache[K, V]) remove(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
	delete(c.entries, e.key)
	if c.onEvicted != nil {
		c.onEvicted(e.key, e.value)
	}
}

// pushFront links e directly after the root, making it the MRU.
func (c *Cache[K, V]) pushFront(e *entry[K, V]) {
	e.prev = &c.root
	e.next = c.root.next
	e.next.prev = e
	c.root.next = e
}

func (c *Cache[K, V]) moveToFront(e *entry[K, V]) {
	if c.root.next == e {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	c.pushFront(e)
}
