// internal/core/query/observer.go
package query

import (
	"context"
	"log/slog"
	"sync"
)

// Status of an observed query
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ObserverOptions configure a long-lived view over a changing key
type ObserverOptions struct {
	Options
	// KeepPreviousData shows the last result while a new key loads
	KeepPreviousData     bool
	RefetchOnWindowFocus bool
	RefetchOnReconnect   bool
}

// CatalogBrowsing is the policy for catalog listings: keep the previous
// page visible and never refetch on focus or reconnect.
func CatalogBrowsing(opts Options) ObserverOptions {
	return ObserverOptions{
		Options:              opts,
		KeepPreviousData:     true,
		RefetchOnWindowFocus: false,
		RefetchOnReconnect:   false,
	}
}

// Result is a snapshot of an observer
type Result[T any] struct {
	Key            Key
	Data           T
	Err            error
	Status         Status
	IsFetching     bool
	IsPreviousData bool
}

// Observer follows one key at a time and loads it through the Client.
// It is safe for concurrent use.
type Observer[T any] struct {
	client *Client
	opts   ObserverOptions
	fetch  func(ctx context.Context, key Key) (T, error)
	id     uint64
	logger *slog.Logger

	mu      sync.Mutex
	state   Result[T]
	hasKey  bool
	hasData bool
	seq     uint64
	done    chan struct{}
}

// NewObserver creates an observer and registers it with the client
func NewObserver[T any](c *Client, opts ObserverOptions, fetch func(ctx context.Context, key Key) (T, error)) *Observer[T] {
	o := &Observer[T]{
		client: c,
		opts:   opts,
		fetch:  fetch,
		logger: c.logger.With(slog.String("component", "observer")),
		state:  Result[T]{Status: StatusPending},
	}
	o.id = c.register(o)
	return o
}

// Close unregisters the observer
func (o *Observer[T]) Close() {
	o.client.unregister(o.id)
}

// SetKey switches the observer to key and starts loading it. The returned
// snapshot carries the previous data, flagged, when KeepPreviousData is set.
func (o *Observer[T]) SetKey(ctx context.Context, key Key) Result[T] {
	o.mu.Lock()
	if o.hasKey && o.state.Key.Equal(key) {
		defer o.mu.Unlock()
		return o.state
	}

	o.hasKey = true
	o.state.Key = key
	o.state.Err = nil
	if o.opts.KeepPreviousData && o.hasData {
		o.state.IsPreviousData = true
	} else {
		var zero T
		o.state.Data = zero
		o.state.Status = StatusPending
		o.state.IsPreviousData = false
		o.hasData = false
	}
	snapshot := o.startLocked(ctx)
	o.mu.Unlock()

	return snapshot
}

// Refetch reloads the current key
func (o *Observer[T]) Refetch(ctx context.Context) Result[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.hasKey {
		return o.state
	}
	return o.startLocked(ctx)
}

// Result returns the current snapshot
func (o *Observer[T]) Result() Result[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Wait blocks until the in-flight load finishes or ctx ends
func (o *Observer[T]) Wait(ctx context.Context) Result[T] {
	o.mu.Lock()
	done := o.done
	o.mu.Unlock()

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}
	return o.Result()
}

func (o *Observer[T]) startLocked(ctx context.Context) Result[T] {
	o.seq++
	seq := o.seq
	key := o.state.Key
	done := make(chan struct{})
	o.done = done
	o.state.IsFetching = true
	snapshot := o.state

	go func() {
		defer close(done)

		data, err := Fetch(ctx, o.client, key, o.opts.Options, func(ctx context.Context) (T, error) {
			return o.fetch(ctx, key)
		})

		o.mu.Lock()
		defer o.mu.Unlock()

		// a newer load owns the state
		if seq != o.seq {
			return
		}

		o.state.IsFetching = false
		if err != nil {
			o.logger.DebugContext(ctx, "observed query failed",
				slog.String("key", key.String()),
				slog.String("error", err.Error()))
			o.state.Err = err
			o.state.Status = StatusError
			return
		}

		o.state.Data = data
		o.state.Err = nil
		o.state.Status = StatusSuccess
		o.state.IsPreviousData = false
		o.hasData = true
	}()

	return snapshot
}

func (o *Observer[T]) currentKey() (Key, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.Key, o.hasKey
}

func (o *Observer[T]) onFocus(ctx context.Context) {
	if o.opts.RefetchOnWindowFocus {
		o.Refetch(ctx)
	}
}

func (o *Observer[T]) onReconnect(ctx context.Context) {
	if o.opts.RefetchOnReconnect {
		o.Refetch(ctx)
	}
}

func (o *Observer[T]) onInvalidate(ctx context.Context) {
	o.Refetch(ctx)
}
