package engine

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/spiritatlas/entwine/internal/model"
)

// ReportCache keeps the most recent report per profile pair in a
// bounded LRU. A new report for a pair replaces the previous one, so
// the cache never grows beyond its capacity and never accumulates
// stale duplicates. Safe for concurrent use.
type ReportCache struct {
	cache *lru.Cache[string, *model.CompatibilityReport]
}

// NewReportCache creates a cache holding up to size pairs.
func NewReportCache(size int) *ReportCache {
	if size <= 0 {
		size = 128
	}
	cache, err := lru.New[string, *model.CompatibilityReport](size)
	if err != nil {
		// lru.New only errors on non-positive size which we guard above.
		panic(err)
	}
	return &ReportCache{cache: cache}
}

// Put upserts the report for a pair key.
func (c *ReportCache) Put(pairKey string, report *model.CompatibilityReport) {
	c.cache.Add(pairKey, report)
}

// Get returns the cached report for a pair key.
func (c *ReportCache) Get(pairKey string) (*model.CompatibilityReport, bool) {
	return c.cache.Get(pairKey)
}

// Len reports how many pairs are currently cached.
func (c *ReportCache) Len() int {
	return c.cache.Len()
}
