// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/metrics"
)

type service struct {
	store      Store
	defaultTTL time.Duration
	group      singleflight.Group
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

// NewService returns a read-through [Service] over store.
func NewService(store Store, defaultTTL time.Duration, m *metrics.Metrics, log *logger.Logger) Service {
	return &service{
		store:      store,
		defaultTTL: defaultTTL,
		metrics:    m,
		logger:     log,
	}
}

func (s *service) GetOrSave(ctx context.Context, key string, dst any, ttl time.Duration, source Source) error {
	log := logger.FromContext(ctx)

	cached, err := s.store.Get(ctx, key)
	switch {
	case err == nil:
		if err = json.Unmarshal(cached, dst); err == nil {
			s.observe(metrics.CacheHit)
			return nil
		}
		// corrupt entry: fall through to source and overwrite it
		log.Warn().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
	case !errors.Is(err, ErrCacheMiss):
		// store outage must not fail the request
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	s.observe(metrics.CacheMiss)

	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	encoded, err, _ := s.group.Do(key, func() (any, error) {
		value, err := source(ctx)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("error encoding cache value for %q: %w", key, err)
		}

		if err = s.store.Set(ctx, key, data, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
		return data, nil
	})
	if err != nil {
		return err
	}

	if err = json.Unmarshal(encoded.([]byte), dst); err != nil {
		return fmt.Errorf("error decoding cache value for %q: %w", key, err)
	}
	return nil
}

func (s *service) Remove(ctx context.Context, key string) error {
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("error removing %q from cache: %w", key, err)
	}
	return nil
}

func (s *service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *service) observe(result string) {
	if s.metrics != nil {
		s.metrics.CacheRequestsTotal.WithLabelValues(result).Inc()
	}
}
