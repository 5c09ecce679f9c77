package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// UsageCache implements ports.UsageCache using Redis. It caches per-consent
// success counts so the frequency throttle does not hit the ledger on every
// authorization. The ledger remains the source of truth: on a miss the
// caller re-counts from the database and primes the cache.
type UsageCache struct {
	client *goredis.Client
	prefix string
}

// NewUsageCache creates a new Redis-backed usage cache.
func NewUsageCache(client *goredis.Client) *UsageCache {
	return &UsageCache{
		client: client,
		prefix: "consentusage:",
	}
}

// Get retrieves the cached success count for a consent.
// Returns 0, false, nil if the key does not exist.
func (c *UsageCache) Get(ctx context.Context, consentID uuid.UUID) (int64, bool, error) {
	count, err := c.client.Get(ctx, c.prefix+consentID.String()).Int64()
	if err != nil {
		if err == goredis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis usage get: %w", err)
	}
	return count, true, nil
}

// Set stores a success count with TTL.
func (c *UsageCache) Set(ctx context.Context, consentID uuid.UUID, count int64, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+consentID.String(), count, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis usage set: %w", err)
	}
	return nil
}

// Incr bumps an existing counter. A key that has expired is left absent:
// INCR on a missing key would start a fresh count at 1 and undercount
// until the TTL rolls over, so the next read must re-prime from the ledger
// instead.
func (c *UsageCache) Incr(ctx context.Context, consentID uuid.UUID) error {
	key := c.prefix + consentID.String()

	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("redis usage exists: %w", err)
	}
	if exists == 0 {
		return nil
	}

	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis usage incr: %w", err)
	}
	return nil
}
