package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roi-collector-api/internal/config"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestRedisLock(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)

	first := NewRedisLock(client, "collection", time.Minute)
	second := NewRedisLock(client, "collection", time.Minute)

	ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, mr.Exists("lock:collection"))

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Quem não é dono não consegue liberar
	require.NoError(t, second.Release(ctx))
	assert.True(t, mr.Exists("lock:collection"))

	require.NoError(t, first.Release(ctx))
	assert.False(t, mr.Exists("lock:collection"))

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLock_Expira(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)

	first := NewRedisLock(client, "collection", 10*time.Second)
	ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(11 * time.Second)

	ok, err = NewRedisLock(client, "collection", 10*time.Second).Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLock_RedisForaDoAr(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()

	ok, err := NewRedisLock(client, "collection", time.Minute).Acquire(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestLocalLock(t *testing.T) {
	ctx := context.Background()
	l := NewLocalLock()

	ok, _ := l.Acquire(ctx)
	assert.True(t, ok)

	ok, _ = l.Acquire(ctx)
	assert.False(t, ok)

	require.NoError(t, l.Release(ctx))

	ok, _ = l.Acquire(ctx)
	assert.True(t, ok)
}

func TestNew(t *testing.T) {
	_, client := newTestRedis(t)

	assert.IsType(t, &LocalLock{}, New(config.Redis{Enabled: false}, client))
	assert.IsType(t, &LocalLock{}, New(config.Redis{Enabled: true}, nil))
	assert.IsType(t, &RedisLock{}, New(config.Redis{Enabled: true, LockKey: "collection", LockTTL: time.Minute}, client))
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()

	client, err := NewRedisClient(context.Background(), config.Redis{Addr: addr})
	require.NoError(t, err)
	client.Close()

	mr.Close()
	_, err = NewRedisClient(context.Background(), config.Redis{Addr: addr})
	assert.Error(t, err)
}
