// Package cache provides an in-memory TTL snapshot store. The refresh
// layer keeps each view's last good payload here so consumers always have
// something to render between polls and across transient fetch failures.
package cache

import (
	"sync"
	"time"
)

// TTLs per view. Snapshots outlive the poll interval slightly so a single
// failed poll does not blank the screen.
const (
	TTLMatches      = 2 * time.Minute
	TTLRanking      = 2 * time.Minute
	TTLMatrix       = 2 * time.Minute
	TTLCompetitions = 10 * time.Minute
)

type entry struct {
	value     any
	seq       uint64
	expiresAt time.Time
}

// Cache is a thread-safe in-memory TTL store. Each entry carries the
// fetch sequence that produced it so newer data is never overwritten by a
// slow, older response.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	enabled bool
}

// New creates a cache. Pass enabled=false for a no-op cache (every Get
// misses, every Set is dropped), useful in tests that want fresh fetches.
func New(enabled bool) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		enabled: enabled,
	}
	if enabled {
		go c.evictLoop()
	}
	return c
}

// Get retrieves a snapshot and the fetch sequence that produced it.
func (c *Cache) Get(key string) (value any, seq uint64, ok bool) {
	if !c.enabled {
		return nil, 0, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, exists := c.entries[key]
	if !exists || time.Now().After(e.expiresAt) {
		return nil, 0, false
	}
	return e.value, e.seq, true
}

// Set stores a snapshot unless a newer sequence is already present.
// Returns false when the write was discarded as stale.
func (c *Cache) Set(key string, value any, seq uint64, ttl time.Duration) bool {
	if !c.enabled {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, exists := c.entries[key]; exists && cur.seq >= seq && time.Now().Before(cur.expiresAt) {
		return false
	}
	c.entries[key] = entry{
		value:     value,
		seq:       seq,
		expiresAt: time.Now().Add(ttl),
	}
	return true
}

// Delete drops a snapshot, forcing the next read to fetch.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Stats returns cache statistics for diagnostics.
func (c *Cache) Stats() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	active := 0
	now := time.Now()
	for _, e := range c.entries {
		if now.Before(e.expiresAt) {
			active++
		}
	}
	return map[string]any{
		"enabled":      c.enabled,
		"total_keys":   len(c.entries),
		"active_keys":  active,
		"expired_keys": len(c.entries) - active,
	}
}

// evictLoop periodically removes expired entries.
func (c *Cache) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		c.evict()
	}
}

func (c *Cache) evict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
