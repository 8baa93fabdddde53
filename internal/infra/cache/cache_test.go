package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/infra/cache"
)

func TestMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := cache.NewMemoryCache().WithClock(func() time.Time { return now })

	require.NoError(t, c.Set(ctx, "k", "v", 30*time.Second))

	val, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)

	now = now.Add(30 * time.Second)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "entry expires exactly at ttl")
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()

	require.NoError(t, c.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, c.Set(ctx, "b", "2", time.Minute))
	require.NoError(t, c.Delete(ctx, "a", "missing"))

	_, ok, _ := c.Get(ctx, "a")
	assert.False(t, ok)
	val, ok, _ := c.Get(ctx, "b")
	assert.True(t, ok)
	assert.Equal(t, "2", val)
}

// Интеграционный тест, запускается только при заданном TEST_REDIS_ADDR
func TestRedisCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping redis integration test")
	}

	ctx := context.Background()
	c := cache.NewRedisCache(cache.NewRedisClient(cache.RedisOptions{Addr: addr}), "car-rental-test")
	defer c.Close()

	require.NoError(t, c.Ping(ctx))
	require.NoError(t, c.Set(ctx, "settings", `{"a":"1"}`, time.Minute))

	val, ok, err := c.Get(ctx, "settings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":"1"}`, val)

	require.NoError(t, c.Delete(ctx, "settings"))
	_, ok, err = c.Get(ctx, "settings")
	require.NoError(t, err)
	assert.False(t, ok)
}
