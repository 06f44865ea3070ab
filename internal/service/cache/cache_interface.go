// Package cache defines the result cache contract used by the optimizer service.
package cache

import "github.com/guttosm/cargo-pack-service/internal/domain/model"

// Key identifies a cached optimization. See service.Fingerprint.
type Key uint64

// Cache stores optimization results by input fingerprint.
type Cache interface {
	Get(key Key) (model.PackResult, bool)
	Set(key Key, value model.PackResult)
	Invalidate(key Key)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// HitRate returns the share of lookups served from the cache, in [0, 1].
func (m Metrics) HitRate() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total)
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
