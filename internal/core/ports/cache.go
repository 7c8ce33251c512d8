// internal/core/ports/cache.go
package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent
var ErrCacheMiss = errors.New("cache miss")

// CacheRepository is the key/value store the query client, the sitemap
// worker and the site handler share. Values are JSON encoded.
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	Exists(ctx context.Context, keys ...string) (bool, error)

	// SetNX backs the single-runner job locks
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)

	TTL(ctx context.Context, key string) (time.Duration, error)
	Flush(ctx context.Context) error
	Ping(ctx context.Context) error
}
