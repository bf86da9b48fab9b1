// Package cache provides a small name-keyed cache with per-entry expiry.
// It is injected as a capability rather than shared process-wide state.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Cache stores string values under names with individual expiry times.
// The zero value is not usable, use New.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// Option configures the cache.
type Option func(*Cache)

// WithClock overrides the time source, used in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value stored under name, if present and not expired.
func (c *Cache) Get(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[name]
	if !ok {
		return "", false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, name)
		return "", false
	}
	return e.value, true
}

// Set stores value under name for the given lifetime.
func (c *Cache) Set(name, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[name] = entry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

// Delete removes the value stored under name.
func (c *Cache) Delete(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, name)
}
