package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SettledCache implements ports.SettledCache using Redis. It fronts the
// authoritative ledger check with a cheap existence probe so repeated
// signals for an already settled transfer short-circuit before touching the
// database.
type SettledCache struct {
	client *goredis.Client
	prefix string
}

// NewSettledCache creates a new Redis-backed settled-id cache.
func NewSettledCache(client *goredis.Client) *SettledCache {
	return &SettledCache{
		client: client,
		prefix: "settled:",
	}
}

// IsSettled reports whether the external id is marked settled in the cache.
// A miss is not proof of freshness; callers still consult the ledger.
func (c *SettledCache) IsSettled(ctx context.Context, externalID string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+externalID).Result()
	if err != nil {
		return false, fmt.Errorf("redis settled check: %w", err)
	}
	return n > 0, nil
}

// MarkSettled records a settled external id with the given retention.
func (c *SettledCache) MarkSettled(ctx context.Context, externalID string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+externalID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis settled mark: %w", err)
	}
	return nil
}
