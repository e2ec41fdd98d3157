package llm

import (
	"sync"
	"time"

	"github.com/spiritatlas/entwine/internal/model"
)

// cacheEntry represents a cached AI insight bundle.
type cacheEntry struct {
	expiry time.Time
	bundle *model.AIInsightBundle
}

// bundleCache provides thread-safe TTL caching for AI bundles keyed by
// profile pair.
type bundleCache struct {
	entries map[string]cacheEntry
	stopCh  chan struct{}
	ttl     time.Duration
	mu      sync.RWMutex
}

// newBundleCache creates a new cache with the specified TTL.
func newBundleCache(ttl time.Duration) *bundleCache {
	if ttl == 0 {
		ttl = 15 * time.Minute
	}

	cache := &bundleCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	go cache.cleanup()

	return cache
}

// get retrieves a bundle from the cache if it exists and hasn't expired.
func (c *bundleCache) get(key string) (*model.AIInsightBundle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.expiry) {
		return nil, false
	}

	return entry.bundle, true
}

// set stores a bundle in the cache.
func (c *bundleCache) set(key string, bundle *model.AIInsightBundle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		bundle: bundle,
		expiry: time.Now().Add(c.ttl),
	}
}

// cleanup periodically removes expired entries.
func (c *bundleCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, entry := range c.entries {
				if now.After(entry.expiry) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

// close stops the cleanup goroutine.
func (c *bundleCache) close() {
	close(c.stopCh)
}
