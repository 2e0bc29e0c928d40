package cache

import (
	"context"
	"testing"
	"time"

	"eventagency/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	val, ok, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), -time.Second))

	_, ok, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	srv := miniredis.RunT(t)
	client := NewRedisClient(config.CacheConfig{RedisAddress: srv.Addr()})
	c := NewRedisCache(client)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	val, ok, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisCache_TTL(t *testing.T) {
	srv := miniredis.RunT(t)
	c := NewRedisCache(NewRedisClient(config.CacheConfig{RedisAddress: srv.Addr()}))
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))

	srv.FastForward(2 * time.Second)

	_, ok, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
}
