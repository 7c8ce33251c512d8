// internal/adapters/redis_adapter/cache.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// CacheKeyPrefix namespaces keys written by the gateway
type CacheKeyPrefix string

const (
	PrefixQuery CacheKeyPrefix = "q"
	PrefixSEO   CacheKeyPrefix = "seo"
	PrefixLock  CacheKeyPrefix = "lock"
)

// SitemapKey holds the rendered sitemap.xml
var SitemapKey = BuildKey(PrefixSEO, "sitemap")

// ErrCacheMiss is returned when a key is not found
var ErrCacheMiss = ports.ErrCacheMiss

// scanBatch is the COUNT hint used while walking a key pattern
const scanBatch = 256

// Cache is the JSON-over-Redis store behind query results, the sitemap
// and the worker locks.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.CacheRepository = (*Cache)(nil)

// NewCache creates a cache whose Set uses ttl
func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "cache")),
	}
}

// fail logs and wraps a failed operation
func (c *Cache) fail(ctx context.Context, op, key string, err error) error {
	c.logger.ErrorContext(ctx, "cache operation failed",
		slog.String("op", op),
		slog.String("key", key),
		slog.String("error", err.Error()))
	return &CacheError{Op: op, Key: key, Err: err}
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	return c.SetWithTTL(ctx, key, value, c.ttl)
}

// SetWithTTL stores value as JSON. A zero ttl keeps the key forever.
func (c *Cache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return c.fail(ctx, "marshal", key, err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return c.fail(ctx, "set", key, err)
	}
	c.logger.DebugContext(ctx, "cache set", slog.String("key", key), slog.Duration("ttl", ttl))
	return nil
}

// Get decodes the value at key into dest, or returns ErrCacheMiss
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return ErrCacheMiss
	case err != nil:
		return c.fail(ctx, "get", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return c.fail(ctx, "unmarshal", key, err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return c.fail(ctx, "del", strings.Join(keys, ","), err)
	}
	c.logger.DebugContext(ctx, "cache deleted", slog.Int("keys", len(keys)))
	return nil
}

// DeletePattern removes every key matching a glob, one scan page at a time
// so a large family never builds a single huge DEL.
func (c *Cache) DeletePattern(ctx context.Context, pattern string) error {
	var cursor uint64
	removed := 0
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return c.fail(ctx, "scan", pattern, err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return c.fail(ctx, "del", pattern, err)
			}
			removed += len(keys)
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	if removed > 0 {
		c.logger.DebugContext(ctx, "cache pattern deleted",
			slog.String("pattern", pattern),
			slog.Int("keys", removed))
	}
	return nil
}

// Exists reports whether every key is present
func (c *Cache) Exists(ctx context.Context, keys ...string) (bool, error) {
	n, err := c.client.Exists(ctx, keys...).Result()
	if err != nil {
		return false, c.fail(ctx, "exists", strings.Join(keys, ","), err)
	}
	return n == int64(len(keys)), nil
}

// SetNX stores value only when key is absent. Used for worker locks.
func (c *Cache) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, c.fail(ctx, "marshal", key, err)
	}
	ok, err := c.client.SetNX(ctx, key, data, ttl).Result()
	if err != nil {
		return false, c.fail(ctx, "setnx", key, err)
	}
	return ok, nil
}

func (c *Cache) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, c.fail(ctx, "ttl", key, err)
	}
	return ttl, nil
}

// Flush empties the current database
func (c *Cache) Flush(ctx context.Context) error {
	if err := c.client.FlushDB(ctx).Err(); err != nil {
		return c.fail(ctx, "flushdb", "*", err)
	}
	c.logger.WarnContext(ctx, "cache flushed")
	return nil
}

func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

// BuildKey joins prefix and parts with ':'
func BuildKey(prefix CacheKeyPrefix, parts ...string) string {
	return strings.Join(append([]string{string(prefix)}, parts...), ":")
}

// CacheError carries the failed operation and key
type CacheError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}
