// internal/core/query/client.go
package query

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// Defaults applied when Options leave a field zero
const (
	DefaultRetry      = 3
	DefaultRetryDelay = time.Second
	DefaultCacheTime  = 5 * time.Minute
	// DefaultFetchTimeout bounds a shared fetch, which outlives the
	// caller that started it.
	DefaultFetchTimeout = 30 * time.Second
	maxRetryDelay       = 30 * time.Second
)

// Options control how one query is cached and retried
type Options struct {
	// StaleTime is how long a cached result is served without refetching
	StaleTime time.Duration
	// CacheTime is how long a result is kept in the store at all
	CacheTime time.Duration
	// Retry is the number of retries after a failed fetch. Zero means
	// DefaultRetry; negative disables retries.
	Retry int
	// RetryDelay is the first backoff; it doubles per attempt
	RetryDelay time.Duration
	// ShouldRetry decides whether an error is worth retrying
	ShouldRetry func(error) bool
}

func (o Options) retries() int {
	switch {
	case o.Retry < 0:
		return 0
	case o.Retry == 0:
		return DefaultRetry
	default:
		return o.Retry
	}
}

func (o Options) cacheTime() time.Duration {
	if o.CacheTime <= 0 {
		return DefaultCacheTime
	}
	if o.CacheTime < o.StaleTime {
		return o.StaleTime
	}
	return o.CacheTime
}

// DefaultShouldRetry retries everything except cancellations and 4xx
// answers, which a second attempt would not change.
func DefaultShouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var status interface{ HTTPStatus() int }
	if errors.As(err, &status) {
		code := status.HTTPStatus()
		return code < 400 || code >= 500 || code == 408 || code == 429
	}
	return true
}

// entry is what a query result looks like in the store
type entry struct {
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Stats are counters since the last Reset
type Stats struct {
	Hits          int64 `json:"hits"`
	Misses        int64 `json:"misses"`
	Fetches       int64 `json:"fetches"`
	Failures      int64 `json:"failures"`
	Invalidations int64 `json:"invalidations"`
}

// Client is the query cache. It is created once at startup and shared;
// Reset returns it to its initial state for tests.
type Client struct {
	store        ports.CacheRepository
	logger       *slog.Logger
	group        singleflight.Group
	scope        ports.TokenSource
	fetchTimeout time.Duration
	now          func() time.Time
	sleep        func(ctx context.Context, d time.Duration) error

	mu          sync.Mutex
	observers   map[uint64]observer
	nextID      uint64
	generations map[Family]uint64

	hits, misses, fetches, failures, invalidations atomic.Int64
}

// observer is the client's view of an Observer
type observer interface {
	currentKey() (Key, bool)
	onFocus(ctx context.Context)
	onReconnect(ctx context.Context)
	onInvalidate(ctx context.Context)
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithScope makes fetches private to the caller whenever src finds a
// credential on the context. Private fetches bypass the shared store and
// are only deduplicated with callers holding the same credential.
func WithScope(src ports.TokenSource) ClientOption {
	return func(c *Client) { c.scope = src }
}

// WithFetchTimeout bounds each shared fetch
func WithFetchTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// NewClient creates a new query client over store
func NewClient(store ports.CacheRepository, logger *slog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		store:        store,
		logger:       logger.With(slog.String("component", "query")),
		fetchTimeout: DefaultFetchTimeout,
		now:          time.Now,
		sleep:        sleepCtx,
		observers:    make(map[uint64]observer),
		generations:  make(map[Family]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// scopeOf returns a digest of the caller's credential, or "" for shared
// fetches. The raw credential never appears in keys or logs.
func (c *Client) scopeOf(ctx context.Context) string {
	if c.scope == nil {
		return ""
	}
	token, ok := c.scope.Token(ctx)
	if !ok {
		return ""
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

// generation is bumped by every invalidation touching the family
func (c *Client) generation(f Family) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[f]
}

func (c *Client) bump(families []Family, exact []Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range families {
		c.generations[f]++
	}
	for _, k := range exact {
		c.generations[k.Family]++
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Fetch returns the cached value for key when it is fresh, otherwise it runs
// fn (once for all concurrent callers of the same key), stores the result and
// returns it.
//
// The fetch runs detached from ctx so one caller giving up does not fail the
// others; each caller stops waiting when its own ctx ends. A result whose
// family was invalidated while fn ran is returned but not stored.
func Fetch[T any](ctx context.Context, c *Client, key Key, opts Options, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	id := key.String()
	scope := c.scopeOf(ctx)

	if scope == "" {
		if out, ok := cached[T](ctx, c, id, opts); ok {
			c.hits.Add(1)
			return out, nil
		}
	}
	c.misses.Add(1)

	gen := c.generation(key.Family)
	flight := fmt.Sprintf("%s#%d", id, gen)
	if scope != "" {
		flight += "@" + scope
	}

	ch := c.group.DoChan(flight, func() (interface{}, error) {
		work, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		value, err := c.withRetry(work, id, opts, func(ctx context.Context) (any, error) {
			return fn(ctx)
		})
		if err != nil {
			return nil, err
		}

		if scope == "" {
			data, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("failed to encode query result: %w", err)
			}
			c.storeResult(work, key.Family, id, gen, data, opts)
		}
		return value, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return zero, res.Err
	}

	if res.Shared {
		c.logger.DebugContext(ctx, "query shared in-flight fetch", slog.String("key", id))
	}

	out, ok := res.Val.(T)
	if !ok {
		return zero, fmt.Errorf("query %s returned %T", id, res.Val)
	}
	return out, nil
}

// cached decodes a fresh stored entry for id
func cached[T any](ctx context.Context, c *Client, id string, opts Options) (T, bool) {
	var out T
	var e entry
	err := c.store.Get(ctx, id, &e)
	switch {
	case err == nil:
		if c.now().Sub(e.UpdatedAt) >= opts.StaleTime {
			return out, false
		}
		if err := json.Unmarshal(e.Data, &out); err != nil {
			c.logger.WarnContext(ctx, "discarding undecodable cache entry", slog.String("key", id))
			return out, false
		}
		return out, true
	case errors.Is(err, ports.ErrCacheMiss):
	default:
		c.logger.WarnContext(ctx, "query cache read failed",
			slog.String("key", id),
			slog.String("error", err.Error()))
	}
	return out, false
}

// storeResult writes a fetched result unless the family was invalidated
// after the fetch began. Invalidate bumps the generation before deleting,
// so a write that slips in after its delete is caught by the second check.
func (c *Client) storeResult(ctx context.Context, family Family, id string, gen uint64, data json.RawMessage, opts Options) {
	if c.generation(family) != gen {
		c.logger.DebugContext(ctx, "dropping result invalidated mid-fetch", slog.String("key", id))
		return
	}

	e := entry{Data: data, UpdatedAt: c.now()}
	if err := c.store.SetWithTTL(ctx, id, e, opts.cacheTime()); err != nil {
		c.logger.WarnContext(ctx, "query cache write failed",
			slog.String("key", id),
			slog.String("error", err.Error()))
		return
	}

	if c.generation(family) != gen {
		if err := c.store.Delete(ctx, id); err != nil {
			c.logger.WarnContext(ctx, "failed to drop result invalidated mid-fetch",
				slog.String("key", id),
				slog.String("error", err.Error()))
		}
	}
}

func (c *Client) withRetry(ctx context.Context, id string, opts Options, fn func(context.Context) (any, error)) (any, error) {
	shouldRetry := opts.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = DefaultShouldRetry
	}

	delay := opts.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	attempts := opts.retries() + 1
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		c.fetches.Add(1)
		value, err := fn(ctx)
		if err == nil {
			return value, nil
		}

		lastErr = err
		c.failures.Add(1)

		if attempt == attempts || !shouldRetry(err) {
			break
		}

		c.logger.DebugContext(ctx, "query failed, retrying",
			slog.String("key", id),
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()))

		if err := c.sleep(ctx, delay); err != nil {
			return nil, lastErr
		}
		delay = min(delay*2, maxRetryDelay)
	}

	return nil, lastErr
}

// Mutate runs a write and then invalidates every family in families plus
// the exact keys. The write is never retried; invalidation happens only
// when it succeeds.
func Mutate[T any](ctx context.Context, c *Client, fn func(context.Context) (T, error), families []Family, exact ...Key) (T, error) {
	out, err := fn(ctx)
	if err != nil {
		return out, err
	}

	if err := c.Invalidate(ctx, families, exact...); err != nil {
		c.logger.WarnContext(ctx, "invalidation after mutation failed",
			slog.String("error", err.Error()))
	}
	return out, nil
}

// Invalidate deletes every key in the given families and the exact keys,
// then tells matching observers to refetch.
func (c *Client) Invalidate(ctx context.Context, families []Family, exact ...Key) error {
	c.invalidations.Add(1)
	c.bump(families, exact)

	var errs []error
	for _, f := range families {
		if err := c.store.DeletePattern(ctx, f.Pattern()); err != nil {
			errs = append(errs, fmt.Errorf("invalidate family %s: %w", f, err))
		}
	}

	if len(exact) > 0 {
		ids := make([]string, 0, len(exact))
		for _, k := range exact {
			ids = append(ids, k.String())
		}
		if err := c.store.Delete(ctx, ids...); err != nil {
			errs = append(errs, fmt.Errorf("invalidate keys: %w", err))
		}
	}

	for _, o := range c.snapshotObservers() {
		key, ok := o.currentKey()
		if !ok || !matches(key, families, exact) {
			continue
		}
		o.onInvalidate(ctx)
	}

	c.logger.DebugContext(ctx, "queries invalidated",
		slog.Any("families", families),
		slog.Int("exact", len(exact)))

	return errors.Join(errs...)
}

func matches(key Key, families []Family, exact []Key) bool {
	for _, f := range families {
		if key.Family == f {
			return true
		}
	}
	for _, k := range exact {
		if key.Equal(k) {
			return true
		}
	}
	return false
}

// NotifyFocus tells observers the client regained focus
func (c *Client) NotifyFocus(ctx context.Context) {
	for _, o := range c.snapshotObservers() {
		o.onFocus(ctx)
	}
}

// NotifyReconnect tells observers connectivity came back
func (c *Client) NotifyReconnect(ctx context.Context) {
	for _, o := range c.snapshotObservers() {
		o.onReconnect(ctx)
	}
}

func (c *Client) register(o observer) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.observers[c.nextID] = o
	return c.nextID
}

func (c *Client) unregister(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.observers, id)
}

func (c *Client) snapshotObservers() []observer {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]observer, 0, len(c.observers))
	for _, o := range c.observers {
		out = append(out, o)
	}
	return out
}

// Stats returns the counters since the last Reset
func (c *Client) Stats() Stats {
	return Stats{
		Hits:          c.hits.Load(),
		Misses:        c.misses.Load(),
		Fetches:       c.fetches.Load(),
		Failures:      c.failures.Load(),
		Invalidations: c.invalidations.Load(),
	}
}

// Reset drops every observer and counter. Stored entries are left alone;
// flush the store separately if needed.
func (c *Client) Reset() {
	c.mu.Lock()
	c.observers = make(map[uint64]observer)
	c.mu.Unlock()

	c.hits.Store(0)
	c.misses.Store(0)
	c.fetches.Store(0)
	c.failures.Store(0)
	c.invalidations.Store(0)
}
