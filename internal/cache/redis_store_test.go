package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return mr, NewRedisStore(rdb)
}

func TestRedisStore_SetGet(t *testing.T) {
	ctx := context.Background()
	mr, s := newTestRedis(t)

	require.NoError(t, s.Set(ctx, "ngo:1", []byte(`{"id":1}`), time.Minute))

	got, err := s.Get(ctx, "ngo:1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(got))

	// keys are namespaced
	assert.True(t, mr.Exists("votemonitor:ngo:1"))
	assert.Equal(t, time.Minute, mr.TTL("votemonitor:ngo:1"))
}

func TestRedisStore_MissAndExpiry(t *testing.T) {
	ctx := context.Background()
	mr, s := newTestRedis(t)

	_, err := s.Get(ctx, "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Second))
	mr.FastForward(2 * time.Second)

	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisStore_Delete(t *testing.T) {
	ctx := context.Background()
	_, s := newTestRedis(t)

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, s.Delete(ctx, "k"))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisStore_PingAndOutage(t *testing.T) {
	ctx := context.Background()
	mr, s := newTestRedis(t)

	require.NoError(t, s.Ping(ctx))

	mr.Close()
	assert.Error(t, s.Ping(ctx))
	_, err := s.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestNewRedisClient(t *testing.T) {
	client, err := NewRedisClient("redis://localhost:6379/2")
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, 2, client.Options().DB)

	_, err = NewRedisClient("http://not-redis")
	assert.Error(t, err)
}
