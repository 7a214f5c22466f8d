package weather

import (
	"fmt"
	"sync"
	"time"
)

// forecastCache is a TTL cache for forecast payloads keyed by coordinates
// rounded to three decimals (roughly street-level precision, so nearby
// geolocation jitter maps to one entry). Entries are only ever invalidated by
// age; nothing prunes them proactively.
type forecastCache struct {
	mu      sync.RWMutex
	entries map[string]forecastCacheEntry
	ttl     time.Duration
}

type forecastCacheEntry struct {
	data      *ForecastResponse
	fetchedAt time.Time
}

func newForecastCache(ttl time.Duration) *forecastCache {
	return &forecastCache{
		entries: make(map[string]forecastCacheEntry),
		ttl:     ttl,
	}
}

// coordKey rounds to 3 decimal places so e.g. 51.5007 and 51.5009 share an
// entry while 51.5 and 51.6 do not.
func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.3f:%.3f", lat, lon)
}

// get returns the cached payload when the entry exists and is younger than
// the TTL. A stale entry is left in place; the caller overwrites it.
func (c *forecastCache) get(lat, lon float64) (*ForecastResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[coordKey(lat, lon)]
	if !ok || time.Since(entry.fetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.data, true
}

// put stores a fresh payload, restamping the entry's age.
func (c *forecastCache) put(lat, lon float64, data *ForecastResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[coordKey(lat, lon)] = forecastCacheEntry{
		data:      data,
		fetchedAt: time.Now(),
	}
}
