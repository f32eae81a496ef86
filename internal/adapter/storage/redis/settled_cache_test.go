package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettledCache_MarkAndCheck(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewSettledCache(client)
	ctx := context.Background()

	settled, err := cache.IsSettled(ctx, "BPA123456")
	require.NoError(t, err)
	assert.False(t, settled)

	err = cache.MarkSettled(ctx, "BPA123456", 72*time.Hour)
	require.NoError(t, err)

	settled, err = cache.IsSettled(ctx, "BPA123456")
	require.NoError(t, err)
	assert.True(t, settled)
}

func TestSettledCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewSettledCache(client)
	ctx := context.Background()

	err := cache.MarkSettled(ctx, "0xabc123", 1*time.Second)
	require.NoError(t, err)

	s.FastForward(2 * time.Second)

	settled, err := cache.IsSettled(ctx, "0xabc123")
	require.NoError(t, err)
	assert.False(t, settled, "expired mark should read as fresh")
}

func TestSettledCache_DistinctIDs(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewSettledCache(client)
	ctx := context.Background()

	require.NoError(t, cache.MarkSettled(ctx, "TM900", time.Hour))

	settled, err := cache.IsSettled(ctx, "TM901")
	require.NoError(t, err)
	assert.False(t, settled)
}
