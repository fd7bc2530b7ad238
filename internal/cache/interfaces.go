// Package cache provides the application cache: a read-through [Service]
// over a byte [Store] chosen by configuration (no cache, Redis, or an
// in-process TTL map).
package cache

import (
	"context"
	"time"
)

// Source produces the value to cache when a key is missing.
type Source func(ctx context.Context) (any, error)

// Service is the read-through cache used by the services.
type Service interface {
	// GetOrSave decodes the cached value of key into dst. On a miss it calls
	// source, stores its JSON encoding for ttl (the configured default when
	// ttl is zero) and decodes it into dst. Concurrent misses of the same key
	// share one source call.
	GetOrSave(ctx context.Context, key string, dst any, ttl time.Duration, source Source) error

	// Remove drops key from the cache.
	Remove(ctx context.Context, key string) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// Store is a byte-oriented key/value store with expiration.
type Store interface {
	// Get returns the value of key or [ErrCacheMiss].
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
