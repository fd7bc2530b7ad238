package cache

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/metrics"
	"github.com/MKhiriev/vote-monitor/internal/workers"
)

// NewEvictionWorker returns a worker dropping expired entries of store every interval.
func NewEvictionWorker(store *MemoryStore, interval time.Duration, clock clockwork.Clock, m *metrics.Metrics, log *logger.Logger) *workers.PeriodicWorker {
	return workers.NewPeriodicWorker("cache-eviction", interval, clock, func(context.Context) {
		evicted := store.EvictExpired()
		if evicted == 0 {
			return
		}

		log.Debug().Int("count", evicted).Int("remaining", store.Size()).Msg("evicted expired cache entries")
		if m != nil {
			m.CacheEvictionsTotal.Add(float64(evicted))
		}
	}, log)
}
