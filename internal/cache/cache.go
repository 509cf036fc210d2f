// File path: internal/cache/cache.go
package cache

import (
	"container/list"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultTTL matches the observed production setting of five minutes.
	DefaultTTL = 5 * time.Minute
	// DefaultMaxEntries bounds the cache when no capacity is configured.
	DefaultMaxEntries = 256
	// DefaultKeyPrefixLen caps how much of the query participates in the
	// cache key. Queries identical in their first 50 characters collapse
	// to the same entry: speed over precision.
	DefaultKeyPrefixLen = 50
)

type entry struct {
	key      string
	value    string
	insertAt time.Time
}

// ResponseCache maps role-prefixed query keys to composed response text
// with a fixed time-to-live. Expired entries are purged eagerly on read.
// When full, Set evicts the oldest-inserted surviving entry: eviction is
// FIFO by insertion, not LRU — reads never refresh an entry's position,
// and that weaker guarantee is part of the observable contract.
type ResponseCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	prefixLen  int
	items      map[string]*list.Element
	order      *list.List
	hits       uint64
	misses     uint64

	now func() time.Time
}

// Option adjusts cache construction.
type Option func(*ResponseCache)

// WithTTL overrides the entry time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(c *ResponseCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithMaxEntries overrides the capacity bound.
func WithMaxEntries(max int) Option {
	return func(c *ResponseCache) {
		if max > 0 {
			c.maxEntries = max
		}
	}
}

// WithKeyPrefixLen overrides how many query characters enter the key.
func WithKeyPrefixLen(n int) Option {
	return func(c *ResponseCache) {
		if n > 0 {
			c.prefixLen = n
		}
	}
}

// WithClock injects a time source for tests.
func WithClock(now func() time.Time) Option {
	return func(c *ResponseCache) {
		if now != nil {
			c.now = now
		}
	}
}

func New(opts ...Option) *ResponseCache {
	c := &ResponseCache{
		ttl:        DefaultTTL,
		maxEntries: DefaultMaxEntries,
		prefixLen:  DefaultKeyPrefixLen,
		items:      make(map[string]*list.Element),
		order:      list.New(),
		now:        time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Key builds the cache key for a role and query: the role, a colon, and
// the lowercased query truncated to the configured prefix length.
func (c *ResponseCache) Key(role, query string) string {
	lowered := strings.ToLower(query)
	if len(lowered) > c.prefixLen {
		lowered = lowered[:c.prefixLen]
	}
	return role + ":" + lowered
}

// Get returns the cached value for key. Entries past their TTL are
// deleted on the spot and reported as misses.
func (c *ResponseCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		c.misses++
		return "", false
	}
	ent := elem.Value.(entry)
	if c.now().Sub(ent.insertAt) >= c.ttl {
		c.order.Remove(elem)
		delete(c.items, key)
		c.misses++
		return "", false
	}
	c.hits++
	return ent.value, true
}

// Set stores value under key, evicting exactly one oldest-inserted entry
// first when the cache is at capacity. Re-setting an existing key
// refreshes its value and timestamp but keeps its insertion position.
func (c *ResponseCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		elem.Value = entry{key: key, value: value, insertAt: c.now()}
		return
	}
	if c.order.Len() >= c.maxEntries {
		oldest := c.order.Front()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(entry).key)
		}
	}
	elem := c.order.PushBack(entry{key: key, value: value, insertAt: c.now()})
	c.items[key] = elem
}

// Clear empties the cache. Idempotent; counters survive so hit-rate
// history is not lost on administrative clears.
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.order = list.New()
}

// ClearPrefix removes every entry whose key starts with prefix, serving
// the per-role administrative clear.
func (c *ResponseCache) ClearPrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for elem := c.order.Front(); elem != nil; {
		next := elem.Next()
		ent := elem.Value.(entry)
		if strings.HasPrefix(ent.key, prefix) {
			c.order.Remove(elem)
			delete(c.items, ent.key)
			removed++
		}
		elem = next
	}
	return removed
}

// Stats reports the live entry count and cumulative hit/miss counters.
type Stats struct {
	Size   int    `json:"size"`
	Hits   uint64 `json:"hit_count"`
	Misses uint64 `json:"miss_count"`
}

func (c *ResponseCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Size: len(c.items), Hits: c.hits, Misses: c.misses}
}
