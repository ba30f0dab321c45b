package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/marketplace-hub/internal/config"
)

type testStruct struct {
	Name  string
	Price float64
}

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)

	expected := testStruct{Name: "iPhone 14 Pro", Price: 950}
	err := cache.Set("product:1", expected, time.Minute)
	require.NoError(t, err)

	var actual testStruct
	found, err := cache.Get("product:1", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache := setupTestCache(t)

	var out testStruct
	found, err := cache.Get("no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)

	require.NoError(t, cache.Set("product:1", testStruct{Name: "Vélo"}, time.Minute))
	require.NoError(t, cache.Invalidate("product:1"))

	var out testStruct
	found, err := cache.Get("product:1", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCounters(t *testing.T) {
	cache := setupTestCache(t)

	val, err := cache.GetCounter("product:views:1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), val)

	for range 3 {
		_, err = cache.IncrCounter("product:views:1")
		require.NoError(t, err)
	}

	val, err = cache.GetCounter("product:views:1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), val)
}
