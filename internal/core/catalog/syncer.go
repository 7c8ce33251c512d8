// internal/core/catalog/syncer.go
package catalog

import (
	"log/slog"
	"sync"
	"time"
)

// SettleDelay is how long the syncer stays in initialization after a mount
const SettleDelay = 500 * time.Millisecond

// State of the URL synchronization
type State int

const (
	// Idle pushes every filter or page change to the URL
	Idle State = iota
	// InitializingFromURL applies the URL to the filters and pushes nothing
	InitializingFromURL
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InitializingFromURL:
		return "initializing_from_url"
	default:
		return "unknown"
	}
}

// Navigator receives the query string to show in the address bar
type Navigator func(rawQuery string)

// Timer is the part of *time.Timer the syncer needs
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SyncerOption configures a Syncer
type SyncerOption func(*Syncer)

// WithAfterFunc replaces the settle timer, for tests
func WithAfterFunc(fn AfterFunc) SyncerOption {
	return func(s *Syncer) {
		s.afterFunc = fn
	}
}

// WithLogger sets the syncer logger
func WithLogger(logger *slog.Logger) SyncerOption {
	return func(s *Syncer) {
		s.logger = logger.With(slog.String("component", "url_sync"))
	}
}

// Syncer keeps the parts page filters and the URL consistent. Filter
// changes navigate only while Idle; while the URL is being applied after a
// mount they update the state silently.
type Syncer struct {
	navigate  Navigator
	afterFunc AfterFunc
	logger    *slog.Logger

	mu      sync.Mutex
	state   State
	filters FilterState
	timer   Timer
	mounts  uint64
}

// NewSyncer creates an idle syncer with no filters
func NewSyncer(navigate Navigator, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		navigate:  navigate,
		afterFunc: realAfterFunc,
		logger:    slog.Default().With(slog.String("component", "url_sync")),
		filters:   FilterState{Page: 1},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount enters initialization, applies rawQuery and arms the settle timer
func (s *Syncer) Mount(rawQuery string) FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	s.mounts++
	mount := s.mounts
	s.state = InitializingFromURL
	s.filters = Decode(rawQuery)
	s.timer = s.afterFunc(SettleDelay, func() { s.settle(mount) })

	s.logger.Debug("filters initialized from url", slog.String("query", rawQuery))
	return s.filters
}

// settle returns to Idle unless a newer mount owns the state
func (s *Syncer) settle(mount uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mount != s.mounts || s.state != InitializingFromURL {
		return
	}
	s.state = Idle
	s.timer = nil
}

// Unmount stops a pending settle timer and returns to Idle
func (s *Syncer) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mounts++
	s.state = Idle
}

// State returns the current state
func (s *Syncer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Filters returns the current filters
func (s *Syncer) Filters() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetFilters replaces the filters and resets to the first page. It reports
// whether the URL was updated.
func (s *Syncer) SetFilters(next FilterState) bool {
	return s.apply(func(f FilterState) FilterState {
		return f.WithFilters(next)
	})
}

// Search sets the free text filter and resets to the first page
func (s *Syncer) Search(q string) bool {
	return s.apply(func(f FilterState) FilterState {
		f.Q = q
		f.Page = 1
		return f
	})
}

// SetPage moves to page
func (s *Syncer) SetPage(page int) bool {
	return s.apply(func(f FilterState) FilterState {
		if page < 1 {
			page = 1
		}
		f.Page = page
		return f
	})
}

func (s *Syncer) apply(change func(FilterState) FilterState) bool {
	s.mu.Lock()
	s.filters = change(s.filters)
	if s.state != Idle || s.navigate == nil {
		s.mu.Unlock()
		return false
	}
	query := Encode(s.filters)
	s.mu.Unlock()

	s.navigate(query)
	return true
}
