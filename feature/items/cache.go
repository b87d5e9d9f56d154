package items

import (
	"time"

	"sptid/feature/items/models"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache defaults used when no option overrides them.
const (
	DefaultCacheSize = 4
	DefaultCacheTTL  = 5 * time.Minute
)

// tableCache memoizes decoded generated tables by language so switching
// back and forth does not re-read disk. Entries expire after ttl so a
// rebuilt table is eventually picked up.
type tableCache struct {
	lru *expirable.LRU[string, models.Table]
}

func newTableCache(size int, ttl time.Duration) *tableCache {
	return &tableCache{
		lru: expirable.NewLRU[string, models.Table](size, nil, ttl),
	}
}

func (c *tableCache) Get(lang string) (models.Table, bool) {
	return c.lru.Get(lang)
}

func (c *tableCache) Set(lang string, table models.Table) {
	c.lru.Add(lang, table)
}

func (c *tableCache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries from the cache.
func (c *tableCache) Clear() {
	c.lru.Purge()
}
