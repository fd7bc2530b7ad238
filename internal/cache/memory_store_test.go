package cache

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/metrics"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(clockwork.NewFakeClock())

	require.NoError(t, s.Set(ctx, "ngo:1", []byte(`{"id":1}`), time.Minute))

	got, err := s.Get(ctx, "ngo:1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(got))
}

func TestMemoryStore_Miss(t *testing.T) {
	s := NewMemoryStore(clockwork.NewFakeClock())

	_, err := s.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	s := NewMemoryStore(clock)

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))

	clock.Advance(59 * time.Second)
	_, err := s.Get(ctx, "k")
	require.NoError(t, err)

	clock.Advance(time.Second)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Equal(t, 1, s.Size(), "expired entries stay until eviction")
}

func TestMemoryStore_SetCopiesValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(clockwork.NewFakeClock())

	value := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", value, time.Minute))
	value[0] = 'z'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(clockwork.NewFakeClock())

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, s.Delete(ctx, "k"))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, s.Ping(ctx))
}

func TestMemoryStore_EvictExpired(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	s := NewMemoryStore(clock)

	require.NoError(t, s.Set(ctx, "short", []byte("1"), time.Second))
	require.NoError(t, s.Set(ctx, "long", []byte("2"), time.Hour))

	clock.Advance(time.Minute)

	assert.Equal(t, 1, s.EvictExpired())
	assert.Equal(t, 1, s.Size())
	_, err := s.Get(ctx, "long")
	assert.NoError(t, err)
}

func TestEvictionWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := clockwork.NewFakeClock()
	s := NewMemoryStore(clock)
	m := metrics.New()
	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Second))

	w := NewEvictionWorker(s, time.Minute, clock, m, logger.Nop())
	go w.Run(ctx)

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Minute)

	require.Eventually(t, func() bool { return s.Size() == 0 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(m.CacheEvictionsTotal) == 1
	}, time.Second, 5*time.Millisecond)
}
