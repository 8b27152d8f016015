// Package cache implements the Redis-backed cache for derived project
// progress. Entries are best-effort: the TTL bounds staleness if an
// invalidation is ever lost, and every miss just recomputes.
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const progressKeyPrefix = "metrics:progress:"

type ProgressCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProgressCache(rdb *redis.Client, ttl time.Duration) *ProgressCache {
	return &ProgressCache{rdb: rdb, ttl: ttl}
}

func (c *ProgressCache) Get(ctx context.Context, projectID string) (int, bool, error) {
	v, err := c.rdb.Get(ctx, progressKeyPrefix+projectID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

func (c *ProgressCache) Set(ctx context.Context, projectID string, progress int) error {
	return c.rdb.Set(ctx, progressKeyPrefix+projectID, strconv.Itoa(progress), c.ttl).Err()
}

func (c *ProgressCache) Invalidate(ctx context.Context, projectID string) error {
	return c.rdb.Del(ctx, progressKeyPrefix+projectID).Err()
}
