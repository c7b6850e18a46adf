// Package cache provides an in-memory implementation of sitechat.ResponseCache
// whose entries expire a fixed time after they are stored.
package cache

import (
	"sync"
	"time"

	"github.com/fwojciec/sitechat"
)

// DefaultTTL is how long an answer stays cached after it is stored.
const DefaultTTL = 60 * time.Second

// Ensure Cache implements sitechat.ResponseCache at compile time.
var _ sitechat.ResponseCache = (*Cache)(nil)

// Cache holds generated answers keyed by (website context, query).
//
// Every Store schedules a timer that deletes the entry once the TTL has
// elapsed; lookups also compare against the entry's expiry time, so an entry
// is never served past its TTL even if its timer is late. Expiry is not
// extended by lookups. There is no capacity bound.
//
// Cache is safe for concurrent use; expiry timers run on their own goroutines.
type Cache struct {
	mu      sync.Mutex
	entries map[sitechat.CacheKey]*entry
	nextGen uint64
	ttl     time.Duration
	now     func() time.Time
}

type entry struct {
	answer    string
	expiresAt time.Time
	gen       uint64
	timer     *time.Timer
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets how long entries live.
// Defaults to DefaultTTL (60s) if not specified.
func WithTTL(d time.Duration) Option {
	return func(c *Cache) {
		c.ttl = d
	}
}

// WithClock sets the time source used for lazy expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates an empty Cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[sitechat.CacheKey]*entry),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the answer stored under key, if present and not expired.
func (c *Cache) Lookup(key sitechat.CacheKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if !c.now().Before(e.expiresAt) {
		return "", false
	}
	return e.answer, true
}

// Store saves answer under key and restarts its expiry countdown.
// A countdown pending from an earlier Store of the same key is cancelled.
func (c *Cache) Store(key sitechat.CacheKey, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.entries[key]; ok {
		prev.timer.Stop()
	}

	c.nextGen++
	gen := c.nextGen
	c.entries[key] = &entry{
		answer:    answer,
		expiresAt: c.now().Add(c.ttl),
		gen:       gen,
		timer:     time.AfterFunc(c.ttl, func() { c.expire(key, gen) }),
	}
}

// Len returns the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// expire removes the entry for key if it is still the insertion identified by gen.
// A timer that fires after the key was overwritten leaves the newer entry alone.
func (c *Cache) expire(key sitechat.CacheKey, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && e.gen == gen {
		delete(c.entries, key)
	}
}
