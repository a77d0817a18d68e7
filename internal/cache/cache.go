// Package cache keeps rendered report payloads in Redis.
//
// The cache is best effort: a Redis failure is logged and behaves as a miss,
// reports are then computed from the ledger store.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/resale/internal/logging"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "resale"

// Cache stores payloads in Redis for a fixed time.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a Cache using rdb, keeping entries for ttl.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Open connects to the Redis server at addr.
func Open(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis on %s: %w", addr, err)
	}
	return New(rdb, ttl), nil
}

// Close closes the Redis client.
func (c *Cache) Close() error { return c.rdb.Close() }

// Key builds a cache key from its parts, e.g. "resale:report:2024".
func Key(parts ...string) string {
	return keyPrefix + ":" + strings.Join(parts, ":")
}

// Get returns the payload stored under key, if any.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return b, true
	case errors.Is(err, redis.Nil):
		logging.Logger.WithField("key", key).Debug("cache miss")
	default:
		logging.Logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("cache read failed")
	}
	return nil, false
}

// Set stores payload under key.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logging.Logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("cache write failed")
	}
}
