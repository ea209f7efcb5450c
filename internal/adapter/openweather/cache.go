package openweather

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/couchcryptid/pet-irrigation-service/internal/domain"
	"github.com/couchcryptid/pet-irrigation-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

// CachedProvider wraps a WeatherProvider with an in-memory LRU cache whose
// entries expire after a fixed TTL. Region centres are a small fixed set, so
// the cache mostly bounds how often each centre hits the upstream API.
type CachedProvider struct {
	inner   domain.WeatherProvider
	cache   *lruCache
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics
}

// NewCachedProvider creates a cache decorator around a weather provider.
// Pass a nil clock to use real time.
func NewCachedProvider(inner domain.WeatherProvider, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedProvider{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
	}
}

func (c *CachedProvider) CurrentTemperature(ctx context.Context, lat, lon float64) (float64, error) {
	key := fmt.Sprintf("%.4f,%.4f", lat, lon)
	now := c.clock.Now()

	if temp, expires, ok := c.cache.get(key); ok {
		if now.Before(expires) {
			c.metrics.WeatherCache.WithLabelValues("hit").Inc()
			return temp, nil
		}
		c.metrics.WeatherCache.WithLabelValues("expired").Inc()
	} else {
		c.metrics.WeatherCache.WithLabelValues("miss").Inc()
	}

	temp, err := c.inner.CurrentTemperature(ctx, lat, lon)
	if err != nil {
		return 0, err
	}
	c.cache.put(key, temp, now.Add(c.ttl))
	return temp, nil
}

// lruCache is a thread-safe LRU of temperatures with per-entry expiry.
// Expired entries are kept until overwritten or evicted.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key     string
	temp    float64
	expires time.Time
	prev    *entry
	next    *entry
}

func newLRUCache(maxEntries int) *lruCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (float64, time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return 0, time.Time{}, false
	}
	c.moveToFront(e)
	return e.temp, e.expires, true
}

func (c *lruCache) put(key string, temp float64, expires time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.temp = temp
		e.expires = expires
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, temp: temp, expires: expires}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
