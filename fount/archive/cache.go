package archive

import (
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/Fount-Gallery/fount-contracts/fount/database/models"
)

const (
	defaultCacheSize = 1000
	cacheTTL         = 5 * time.Minute
)

type cachedOutcome struct {
	outcome  *models.ArchivedAuction
	cachedAt time.Time
}

type outcomeCache struct {
	cache *lru.Cache
}

func newOutcomeCache(size int) *outcomeCache {
	cache, _ := lru.New(size)
	return &outcomeCache{cache: cache}
}

func (c *outcomeCache) get(itemID int64) (*models.ArchivedAuction, bool) {
	v, ok := c.cache.Get(itemID)
	if !ok {
		return nil, false
	}

	entry := v.(cachedOutcome)
	if time.Since(entry.cachedAt) > cacheTTL {
		c.cache.Remove(itemID)
		return nil, false
	}
	return entry.outcome, true
}

func (c *outcomeCache) put(itemID int64, outcome *models.ArchivedAuction) {
	c.cache.Add(itemID, cachedOutcome{
		outcome:  outcome,
		cachedAt: time.Now(),
	})
}
