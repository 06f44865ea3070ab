// Package service contains the optimization workflow around the packing core:
// result caching, advisory lookups, the container catalogue and run history.
package service

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/guttosm/cargo-pack-service/internal/metrics"
	"github.com/guttosm/cargo-pack-service/internal/service/cache"
)

const (
	defaultShards    = 16
	maxSweepInterval = time.Minute
)

// ShardedCache holds pack results keyed by request fingerprint. Keys are
// spread over independently locked LRU shards.
type ShardedCache struct {
	shards    []*ttlCache
	numShards int
	shardMask uint64
}

// NewShardedCache creates a cache with the given total capacity and TTL.
// numShards is rounded up to a power of two; zero or less means 16.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	numShards = nextPowerOfTwo(numShards)

	sc := &ShardedCache{
		shards:    make([]*ttlCache, numShards),
		numShards: numShards,
		shardMask: uint64(numShards - 1),
	}
	perShard := max(capacity/numShards, 1)
	for i := range sc.shards {
		sc.shards[i] = newTTLCache(perShard, ttl)
	}
	return sc
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return defaultShards
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Fingerprints are xxhash digests so the low bits pick a shard evenly.
func (sc *ShardedCache) shard(key cache.Key) *ttlCache {
	return sc.shards[uint64(key)&sc.shardMask]
}

func (sc *ShardedCache) Get(key cache.Key) (model.PackResult, bool) {
	return sc.shard(key).Get(key)
}

func (sc *ShardedCache) Set(key cache.Key, value model.PackResult) {
	sc.shard(key).Set(key, value)
	sc.publish()
}

func (sc *ShardedCache) Invalidate(key cache.Key) {
	sc.shard(key).Invalidate(key)
}

func (sc *ShardedCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
	sc.publish()
}

// Stop ends the expiry sweep of every shard.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics sums the counters of all shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

func (sc *ShardedCache) publish() {
	m := sc.Metrics()
	metrics.UpdateCacheMetrics(m.Size, m.Capacity)
}

type cachedResult struct {
	key       cache.Key
	result    model.PackResult
	expiresAt time.Time
}

// ttlCache is one shard: an LRU list bounded by capacity whose entries also
// expire ttl after their last write.
type ttlCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	lru      *list.List
	index    map[cache.Key]*list.Element
	now      func() time.Time

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64

	done     chan struct{}
	stopOnce sync.Once
}

// newTTLCache starts the expiry sweep; Stop releases it.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	capacity = max(capacity, 1)
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		lru:      list.New(),
		index:    make(map[cache.Key]*list.Element, capacity),
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go c.sweep(min(ttl, maxSweepInterval))
	return c
}

func (c *ttlCache) Get(key cache.Key) (model.PackResult, bool) {
	c.mu.Lock()
	el, ok := c.index[key]
	if !ok {
		c.mu.Unlock()
		c.miss("miss")
		return model.PackResult{}, false
	}
	entry := el.Value.(*cachedResult)
	if c.now().After(entry.expiresAt) {
		c.remove(el)
		c.mu.Unlock()
		c.miss("expired")
		return model.PackResult{}, false
	}
	c.lru.MoveToFront(el)
	res := entry.result
	c.mu.Unlock()

	c.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	return res, true
}

func (c *ttlCache) miss(reason string) {
	c.misses.Add(1)
	metrics.RecordCacheOperation("get", reason)
}

// Set stores value and refreshes its expiry. Going over capacity evicts the
// least recently used entry.
func (c *ttlCache) Set(key cache.Key, value model.PackResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.index[key]; ok {
		entry := el.Value.(*cachedResult)
		entry.result, entry.expiresAt = value, expiresAt
		c.lru.MoveToFront(el)
		metrics.RecordCacheOperation("set", "update")
		return
	}

	c.index[key] = c.lru.PushFront(&cachedResult{key: key, result: value, expiresAt: expiresAt})
	if c.lru.Len() > c.capacity {
		c.remove(c.lru.Back())
		c.evictions.Add(1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

func (c *ttlCache) Invalidate(key cache.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.remove(el)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear drops every entry and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	c.lru.Init()
	clear(c.index)
	c.mu.Unlock()

	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	metrics.RecordCacheOperation("clear", "success")
}

func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	size := c.lru.Len()
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      size,
		Capacity:  c.capacity,
	}
}

func (c *ttlCache) sweep(every time.Duration) {
	if every <= 0 {
		every = maxSweepInterval
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.done:
			return
		}
	}
}

// cleanup walks from the least recently used end and drops expired entries.
func (c *ttlCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for el := c.lru.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*cachedResult).expiresAt) {
			c.remove(el)
		}
		el = prev
	}
}

// remove expects c.mu to be held.
func (c *ttlCache) remove(el *list.Element) {
	entry := c.lru.Remove(el).(*cachedResult)
	delete(c.index, entry.key)
}
