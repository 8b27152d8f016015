package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// OpenRedis connects the client shared by the idempotency middleware and the
// progress cache. Both issue short single-key commands, so the pool stays
// small.
func OpenRedis(addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{
		Addr:         addr,
		DB:           db,
		PoolSize:     16,
		MinIdleConns: 2,
		DialTimeout:  3 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	logrus.WithField("addr", addr).Info("redis: connected")
	return r, nil
}
