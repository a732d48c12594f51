// Package cache provides an in-memory TTL cache with ETag support for
// computed ranking payloads.
package cache

import (
	"crypto/md5"
	"fmt"
	"strings"
	"sync"
	"time"
)

// TTLRankings bounds how long a computed payload is kept. The snapshot is
// static for the life of the process, so this only caps memory.
const TTLRankings = 1 * time.Hour

// MaxEntries caps the number of stored payloads. Every distinct weight
// configuration is its own key, so the key space is unbounded.
const MaxEntries = 1024

type entry struct {
	data      []byte
	etag      string
	expiresAt time.Time
}

// Cache is a thread-safe in-memory TTL cache.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	enabled    bool
	maxEntries int
	hits       int
	misses     int
	stop       chan struct{}
	once       sync.Once
}

// New creates a new cache. Pass enabled=false to create a no-op cache.
func New(enabled bool) *Cache {
	c := &Cache{
		entries:    make(map[string]entry),
		enabled:    enabled,
		maxEntries: MaxEntries,
		stop:       make(chan struct{}),
	}
	if enabled {
		go c.evictLoop(5 * time.Minute)
	}
	return c
}

// Close stops the eviction loop.
func (c *Cache) Close() {
	c.once.Do(func() { close(c.stop) })
}

// Get retrieves a cached value. Returns data, etag, and whether the entry was found.
func (c *Cache) Get(key string) (data []byte, etag string, ok bool) {
	if !c.enabled {
		return nil, "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, exists := c.entries[key]
	if !exists || time.Now().After(e.expiresAt) {
		c.misses++
		return nil, "", false
	}
	c.hits++
	return e.data, e.etag, true
}

// Set stores a value with a TTL and returns its ETag.
func (c *Cache) Set(key string, data []byte, ttl time.Duration) string {
	etag := ComputeETag(data)
	if !c.enabled {
		return etag
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.makeRoomLocked()
	}
	c.entries[key] = entry{
		data:      data,
		etag:      etag,
		expiresAt: time.Now().Add(ttl),
	}
	return etag
}

// GetOrCompute returns the cached value for key, or runs compute and
// stores its result. Errors from compute are not cached.
func (c *Cache) GetOrCompute(key string, ttl time.Duration, compute func() ([]byte, error)) (data []byte, etag string, hit bool, err error) {
	if data, etag, ok := c.Get(key); ok {
		return data, etag, true, nil
	}
	data, err = compute()
	if err != nil {
		return nil, "", false, err
	}
	return data, c.Set(key, data, ttl), false, nil
}

// Stats returns cache statistics.
func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	active := 0
	now := time.Now()
	for _, e := range c.entries {
		if now.Before(e.expiresAt) {
			active++
		}
	}
	return map[string]interface{}{
		"enabled":      c.enabled,
		"total_keys":   len(c.entries),
		"active_keys":  active,
		"expired_keys": len(c.entries) - active,
		"max_keys":     c.maxEntries,
		"hits":         c.hits,
		"misses":       c.misses,
	}
}

// evictLoop periodically removes expired entries.
func (c *Cache) evictLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.evict()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache) evict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictExpiredLocked(time.Now())
}

func (c *Cache) evictExpiredLocked(now time.Time) {
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// makeRoomLocked drops expired entries, and if the cache is still full,
// the entry closest to expiry.
func (c *Cache) makeRoomLocked() {
	c.evictExpiredLocked(time.Now())
	if len(c.entries) < c.maxEntries {
		return
	}
	var (
		oldest    string
		oldestExp time.Time
	)
	for key, e := range c.entries {
		if oldest == "" || e.expiresAt.Before(oldestExp) {
			oldest, oldestExp = key, e.expiresAt
		}
	}
	delete(c.entries, oldest)
}

// ComputeETag generates a weak ETag from response data using MD5.
func ComputeETag(data []byte) string {
	hash := md5.Sum(data)
	return fmt.Sprintf(`W/"%x"`, hash[:8])
}

// CheckETagMatch checks if an If-None-Match header matches the current ETag.
// The header may list several tags; comparison is weak, so W/"x" matches "x".
func CheckETagMatch(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" || etag == "" {
		return false
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == want {
			return true
		}
	}
	return false
}
