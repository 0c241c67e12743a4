package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	connString, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(connString)
	require.NoError(t, err)

	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestSearchCache_RoundTrip(t *testing.T) {
	rdb := newTestRedis(t)
	cache := NewSearchCache(rdb, time.Minute)
	ctx := context.Background()

	_, found, err := cache.Get(ctx, "2:O:empty")
	require.NoError(t, err)
	assert.False(t, found, "fresh cache should miss")

	want := SearchEntry{Score: -125, Row: 7, Col: 8, HasMove: true}
	require.NoError(t, cache.Set(ctx, "2:O:empty", want))

	got, found, err := cache.Get(ctx, "2:O:empty")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, *got)

	ttl, err := rdb.TTL(ctx, "search:2:O:empty").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestSearchCache_CorruptEntry(t *testing.T) {
	rdb := newTestRedis(t)
	cache := NewSearchCache(rdb, 0)
	ctx := context.Background()

	require.NoError(t, rdb.Set(ctx, "search:broken", "not json", 0).Err())

	_, found, err := cache.Get(ctx, "broken")
	assert.Error(t, err)
	assert.False(t, found)
}
