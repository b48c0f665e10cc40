package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/killallgit/podcaster-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSetDelete(t *testing.T) {
	mc := NewMemoryCache(1)
	defer mc.Close()
	ctx := context.Background()

	_, found := mc.Get(ctx, "missing")
	assert.False(t, found)

	require.NoError(t, mc.Set(ctx, "k", []byte("v"), time.Minute))
	value, found := mc.Get(ctx, "k")
	require.True(t, found)
	assert.Equal(t, []byte("v"), value)

	require.NoError(t, mc.Delete(ctx, "k"))
	_, found = mc.Get(ctx, "k")
	assert.False(t, found)

	stats := mc.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, int64(0), stats.Size)
}

func TestMemoryCache_Expiry(t *testing.T) {
	mc := NewMemoryCache(0)
	defer mc.Close()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, found := mc.Get(ctx, "k")
	assert.False(t, found)
}

func TestMemoryCache_Clear(t *testing.T) {
	mc := NewMemoryCache(0)
	defer mc.Close()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, mc.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), time.Minute))
	}
	require.NoError(t, mc.Clear(ctx))

	_, found := mc.Get(ctx, "k0")
	assert.False(t, found)
	assert.Equal(t, int64(0), mc.Stats().Size)
}

func TestMemoryCache_EvictsWhenFull(t *testing.T) {
	mc := NewMemoryCache(1)
	defer mc.Close()
	ctx := context.Background()

	chunk := make([]byte, 400*1024)
	require.NoError(t, mc.Set(ctx, "a", chunk, time.Minute))
	require.NoError(t, mc.Set(ctx, "b", chunk, 2*time.Minute))
	require.NoError(t, mc.Set(ctx, "c", chunk, 3*time.Minute))

	// "a" expires soonest and is evicted first
	_, found := mc.Get(ctx, "a")
	assert.False(t, found)
	_, found = mc.Get(ctx, "c")
	assert.True(t, found)

	stats := mc.Stats()
	assert.LessOrEqual(t, stats.Size, stats.MaxSize)
	assert.Equal(t, int64(1), stats.Evictions)

	// larger than the whole cache is silently skipped
	require.NoError(t, mc.Set(ctx, "huge", make([]byte, 2*1024*1024), time.Minute))
	_, found = mc.Get(ctx, "huge")
	assert.False(t, found)
}

func TestMemoryCache_CloseIsIdempotent(t *testing.T) {
	mc := NewMemoryCache(0)
	assert.NoError(t, mc.Close())
	assert.NoError(t, mc.Close())
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	_, err := NewRedisCache(context.Background(), RedisConfig{})
	assert.Error(t, err)

	_, err = NewRedisCache(context.Background(), RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	c, err := New(context.Background(), config.CacheConfig{Backend: "memory"})
	require.NoError(t, err)
	defer c.Close()
	_, ok := c.(*MemoryCache)
	assert.True(t, ok)

	_, err = New(context.Background(), config.CacheConfig{Backend: "memcached"})
	assert.Error(t, err)
}
