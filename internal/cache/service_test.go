package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/metrics"
)

type cachedNgo struct {
	ID       int64 `json:"id"`
	IsActive bool  `json:"isActive"`
}

// failingStore fails every operation.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("down") }
func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("down")
}
func (failingStore) Delete(context.Context, string) error { return errors.New("down") }
func (failingStore) Ping(context.Context) error           { return errors.New("down") }

func TestService_GetOrSave_MissThenHit(t *testing.T) {
	ctx := context.Background()
	m := metrics.New()
	svc := NewService(NewMemoryStore(clockwork.NewFakeClock()), time.Minute, m, logger.Nop())

	var calls int
	source := func(context.Context) (any, error) {
		calls++
		return cachedNgo{ID: 1, IsActive: true}, nil
	}

	var first, second cachedNgo
	require.NoError(t, svc.GetOrSave(ctx, "ngo:1", &first, 0, source))
	require.NoError(t, svc.GetOrSave(ctx, "ngo:1", &second, 0, source))

	assert.Equal(t, cachedNgo{ID: 1, IsActive: true}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheRequestsTotal.WithLabelValues(metrics.CacheMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheRequestsTotal.WithLabelValues(metrics.CacheHit)))
}

func TestService_GetOrSave_DefaultTTL(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	svc := NewService(NewMemoryStore(clock), time.Minute, nil, logger.Nop())

	var calls int
	source := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}

	var v int
	require.NoError(t, svc.GetOrSave(ctx, "k", &v, 0, source))
	clock.Advance(2 * time.Minute)
	require.NoError(t, svc.GetOrSave(ctx, "k", &v, 0, source))

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, v)
}

func TestService_GetOrSave_SourceError(t *testing.T) {
	svc := NewService(NewMemoryStore(clockwork.NewFakeClock()), time.Minute, nil, logger.Nop())

	var v cachedNgo
	err := svc.GetOrSave(context.Background(), "k", &v, 0, func(context.Context) (any, error) {
		return nil, assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestService_GetOrSave_NoCacheAlwaysCallsSource(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewNoCacheStore(), time.Minute, nil, logger.Nop())

	var calls int
	source := func(context.Context) (any, error) {
		calls++
		return cachedNgo{ID: 5}, nil
	}

	var v cachedNgo
	require.NoError(t, svc.GetOrSave(ctx, "ngo:5", &v, 0, source))
	require.NoError(t, svc.GetOrSave(ctx, "ngo:5", &v, 0, source))

	assert.Equal(t, 2, calls)
	assert.Equal(t, int64(5), v.ID)
	assert.NoError(t, svc.Remove(ctx, "ngo:5"))
	assert.NoError(t, svc.Ping(ctx))
}

func TestService_GetOrSave_StoreOutageFallsBackToSource(t *testing.T) {
	svc := NewService(failingStore{}, time.Minute, nil, logger.Nop())

	var v cachedNgo
	err := svc.GetOrSave(context.Background(), "ngo:1", &v, 0, func(context.Context) (any, error) {
		return cachedNgo{ID: 1}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), v.ID)
	assert.Error(t, svc.Ping(context.Background()))
	assert.Error(t, svc.Remove(context.Background(), "ngo:1"))
}

func TestService_GetOrSave_CorruptEntryIsReplaced(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(clockwork.NewFakeClock())
	require.NoError(t, store.Set(ctx, "k", []byte("{not json"), time.Minute))
	svc := NewService(store, time.Minute, nil, logger.Nop())

	var v cachedNgo
	require.NoError(t, svc.GetOrSave(ctx, "k", &v, 0, func(context.Context) (any, error) {
		return cachedNgo{ID: 9}, nil
	}))
	assert.Equal(t, int64(9), v.ID)

	raw, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9,"isActive":false}`, string(raw))
}

func TestService_GetOrSave_CollapsesConcurrentMisses(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewNoCacheStore(), time.Minute, nil, logger.Nop())

	var calls atomic.Int32
	release := make(chan struct{})
	source := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return cachedNgo{ID: 1}, nil
	}

	const callers = 10
	var wg sync.WaitGroup
	var started sync.WaitGroup
	started.Add(callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			var v cachedNgo
			assert.NoError(t, svc.GetOrSave(ctx, "ngo:1", &v, 0, source))
			assert.Equal(t, int64(1), v.ID)
		}()
	}

	started.Wait()
	// give the callers time to join the in-flight call
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Less(t, calls.Load(), int32(callers))
}
