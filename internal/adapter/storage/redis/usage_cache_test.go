package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*UsageCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewUsageCache(client), mr
}

func TestUsageCache_GetMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	count, ok, err := cache.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, count)
}

func TestUsageCache_SetAndGet(t *testing.T) {
	cache, _ := newTestCache(t)
	consentID := uuid.New()

	err := cache.Set(context.Background(), consentID, 7, time.Minute)
	require.NoError(t, err)

	count, ok, err := cache.Get(context.Background(), consentID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), count)
}

func TestUsageCache_Expiry(t *testing.T) {
	cache, mr := newTestCache(t)
	consentID := uuid.New()

	err := cache.Set(context.Background(), consentID, 3, time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(context.Background(), consentID)
	require.NoError(t, err)
	assert.False(t, ok, "an expired count is a miss, not zero")
}

func TestUsageCache_Incr(t *testing.T) {
	cache, _ := newTestCache(t)
	consentID := uuid.New()

	err := cache.Set(context.Background(), consentID, 3, time.Minute)
	require.NoError(t, err)

	require.NoError(t, cache.Incr(context.Background(), consentID))
	require.NoError(t, cache.Incr(context.Background(), consentID))

	count, ok, err := cache.Get(context.Background(), consentID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5), count)
}

func TestUsageCache_IncrMissingKeyIsNoOp(t *testing.T) {
	cache, _ := newTestCache(t)
	consentID := uuid.New()

	require.NoError(t, cache.Incr(context.Background(), consentID))

	_, ok, err := cache.Get(context.Background(), consentID)
	require.NoError(t, err)
	assert.False(t, ok, "Incr must not create a counter the ledger has not primed")
}

func TestUsageCache_IncrPreservesTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	consentID := uuid.New()

	err := cache.Set(context.Background(), consentID, 1, time.Minute)
	require.NoError(t, err)
	require.NoError(t, cache.Incr(context.Background(), consentID))

	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(context.Background(), consentID)
	require.NoError(t, err)
	assert.False(t, ok, "bumping a counter must not reset its TTL")
}

func TestUsageCache_KeysAreScopedPerConsent(t *testing.T) {
	cache, _ := newTestCache(t)
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, cache.Set(context.Background(), first, 5, time.Minute))
	require.NoError(t, cache.Set(context.Background(), second, 9, time.Minute))
	require.NoError(t, cache.Incr(context.Background(), first))

	count, ok, err := cache.Get(context.Background(), first)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(6), count)

	count, ok, err = cache.Get(context.Background(), second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(9), count)
}
