// Package cache is a thin JSON cache over Redis, used cache-aside: callers
// try Get, compute on miss, then Set best-effort. A nil *Cache is valid and
// behaves as an always-miss cache, so call sites need no nil checks
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"lipi/internal/platform/logger"
)

// Config configures the Redis connection and key namespace
type Config struct {
	Addr   string
	DB     int
	Prefix string
	TTL    time.Duration
}

// Cache wraps one Redis client plus a key prefix and default TTL
type Cache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// Open connects to Redis and pings it
func Open(ctx context.Context, cfg Config) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Cache{rdb: rdb, prefix: cfg.Prefix, ttl: ttl}, nil
}

// NewWithClient wraps an existing client; used by tests with miniredis
func NewWithClient(rdb *redis.Client, prefix string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Cache{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Key derives a fixed-length cache key from an arbitrary string. Normalized
// entry text goes through here so the key stays bounded and opaque
func (c *Cache) Key(kind, s string) string {
	sum := sha256.Sum256([]byte(s))
	prefix := ""
	if c != nil {
		prefix = c.prefix
	}
	return prefix + kind + ":" + hex.EncodeToString(sum[:])
}

// Get unmarshals the cached value at key into out. ok is false on miss,
// decode failure, or any Redis error; errors never propagate to the caller
func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	bs, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(bs) == 0 {
		return false
	}
	if err := json.Unmarshal(bs, out); err != nil {
		logger.Named("cache").Debug().Err(err).Str("key", key).Msg("stale cache payload dropped")
		return false
	}
	return true
}

// Set stores v as JSON under key with the default TTL, best effort
func (c *Cache) Set(ctx context.Context, key string, v any) {
	if c == nil || c.rdb == nil {
		return
	}
	bs, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, bs, c.ttl).Err(); err != nil {
		logger.Named("cache").Debug().Err(err).Str("key", key).Msg("cache set failed")
	}
}

// Del removes keys, best effort. Used for invalidation after writes
func (c *Cache) Del(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

// Close releases the underlying client
func (c *Cache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
