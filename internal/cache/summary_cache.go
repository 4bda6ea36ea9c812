package cache

import (
	"strconv"
	"time"

	"github.com/coocood/freecache"
)

// SummaryCache holds marshaled session summaries for completed sessions.
// It is constructed once by the owner (the server) and handed to whoever
// needs it, so there is no package-level mutable state.
type SummaryCache struct {
	inner      *freecache.Cache
	ttlSeconds int
}

func NewSummaryCache(sizeMB int, ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		inner:      freecache.NewCache(sizeMB * 1024 * 1024),
		ttlSeconds: int(ttl.Seconds()),
	}
}

func (c *SummaryCache) Get(sessionID int) ([]byte, bool) {
	val, err := c.inner.Get(cacheKey(sessionID))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *SummaryCache) Set(sessionID int, summaryJson []byte) {
	// a failed set only means the summary gets recomputed on the next read
	_ = c.inner.Set(cacheKey(sessionID), summaryJson, c.ttlSeconds)
}

func (c *SummaryCache) Del(sessionID int) {
	c.inner.Del(cacheKey(sessionID))
}

func (c *SummaryCache) Clear() {
	c.inner.Clear()
}

func cacheKey(sessionID int) []byte {
	return []byte("summary||" + strconv.Itoa(sessionID))
}
