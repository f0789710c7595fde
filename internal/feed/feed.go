// Package feed drives paginated kudos fetching as a small state machine
//
// Every parameter change dispatches one fetch. Each dispatch bumps a generation
// counter and cancels the previous request; a result is applied only while its
// generation is current and the feed is open.
package feed

import (
	"context"
	"sync"
	"time"

	"kudoswall/internal/core/pagination"
	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/platform/logger"
	"kudoswall/internal/services/api/kudos/domain"
)

// State is the lifecycle position of a feed
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// DefaultTimeout bounds a single fetch
const DefaultTimeout = 10 * time.Second

// Source fetches one page for a filter
type Source func(ctx context.Context, f domain.Filter, page, limit int) (pagination.Result[domain.Kudos], error)

// Snapshot is a copy of the feed state; Data is never nil
type Snapshot struct {
	State      State
	Loading    bool
	Data       []domain.Kudos
	Pagination *pagination.Meta
	Err        error
	Filter     domain.Filter
	Page       int
	Limit      int
	Generation uint64
}

type request struct {
	filter domain.Filter
	page   int
	limit  int
}

// Option configures a Feed
type Option func(*Feed)

// WithTimeout sets the per fetch timeout; non positive values keep the default
func WithTimeout(d time.Duration) Option {
	return func(f *Feed) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithFilter sets the initial filter
func WithFilter(flt domain.Filter) Option {
	return func(f *Feed) { f.snap.Filter = flt }
}

// WithPage sets the initial page and limit
func WithPage(page, limit int) Option {
	return func(f *Feed) {
		f.snap.Page = page
		f.snap.Limit = limit
	}
}

// Feed holds filter, paging and the last fetched page
type Feed struct {
	src     Source
	timeout time.Duration
	log     logger.Logger

	mu     sync.Mutex
	snap   Snapshot
	cancel context.CancelFunc
	closed bool

	// notify serialises subscriber delivery so snapshots arrive in transition order
	notify sync.Mutex
	subs   []func(Snapshot)

	wg sync.WaitGroup
}

// New builds an idle feed over src; page 1 and limit 10 unless overridden
func New(src Source, opts ...Option) *Feed {
	if src == nil {
		panic("feed.New requires a non nil Source")
	}
	f := &Feed{
		src:     src,
		timeout: DefaultTimeout,
		log:     *logger.Named("feed"),
		snap: Snapshot{
			State: StateIdle,
			Data:  []domain.Kudos{},
			Page:  domain.DefaultPage,
			Limit: domain.DefaultLimit,
		},
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Subscribe registers fn to receive a snapshot after every transition
// fn runs on the feed's goroutines and must not call the feed's mutating methods
func (f *Feed) Subscribe(fn func(Snapshot)) {
	if fn == nil {
		return
	}
	f.notify.Lock()
	f.subs = append(f.subs, fn)
	f.notify.Unlock()
}

// Snapshot returns a copy of the current state
func (f *Feed) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copyLocked()
}

// Start performs the first fetch
func (f *Feed) Start() { f.dispatch(nil) }

// Refetch repeats the current request
func (f *Feed) Refetch() { f.dispatch(nil) }

// UpdateFilter merges p into the filter, resets to page 1 and fetches once
func (f *Feed) UpdateFilter(p domain.FilterPatch) {
	f.dispatch(func(s *Snapshot) {
		s.Filter = s.Filter.Merge(p)
		s.Page = 1
	})
}

// UpdatePage moves to page n
func (f *Feed) UpdatePage(n int) {
	f.dispatch(func(s *Snapshot) { s.Page = n })
}

// UpdateLimit changes the page size and resets to page 1
func (f *Feed) UpdateLimit(n int) {
	f.dispatch(func(s *Snapshot) {
		s.Limit = n
		s.Page = 1
	})
}

// Close cancels the in flight fetch; later results and calls are no-ops
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.snap.Generation++
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

// Wait blocks until no fetch is in flight
func (f *Feed) Wait() { f.wg.Wait() }

// dispatch applies mutate, enters loading and launches the fetch for the new generation
func (f *Feed) dispatch(mutate func(*Snapshot)) {
	f.notify.Lock()
	defer f.notify.Unlock()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	if mutate != nil {
		mutate(&f.snap)
	}
	if f.cancel != nil {
		f.cancel()
	}
	f.snap.Generation++
	f.snap.State = StateLoading
	f.snap.Loading = true
	f.snap.Err = nil

	gen := f.snap.Generation
	req := request{filter: f.snap.Filter, page: f.snap.Page, limit: f.snap.Limit}
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	f.cancel = cancel
	f.wg.Add(1)
	snap := f.copyLocked()
	f.mu.Unlock()

	f.publishLocked(snap)
	go f.run(ctx, cancel, gen, req)
}

func (f *Feed) run(ctx context.Context, cancel context.CancelFunc, gen uint64, req request) {
	defer f.wg.Done()
	defer cancel()

	res, err := f.fetch(ctx, req)

	f.notify.Lock()
	defer f.notify.Unlock()

	f.mu.Lock()
	if f.closed || gen != f.snap.Generation {
		current, closed := f.snap.Generation, f.closed
		f.mu.Unlock()
		f.log.Debug().
			Uint64("generation", gen).
			Uint64("current", current).
			Bool("closed", closed).
			Msg("feed dropped stale result")
		return
	}
	f.snap.Loading = false
	if err != nil {
		f.snap.State = StateError
		f.snap.Err = err
		f.snap.Data = []domain.Kudos{}
		f.snap.Pagination = nil
	} else {
		meta := res.Pagination
		f.snap.State = StateSuccess
		f.snap.Err = nil
		f.snap.Data = res.Data
		if f.snap.Data == nil {
			f.snap.Data = []domain.Kudos{}
		}
		f.snap.Pagination = &meta
	}
	f.cancel = nil
	snap := f.copyLocked()
	f.mu.Unlock()

	f.publishLocked(snap)
}

// fetch calls the source, turning a panic into an unknown error
func (f *Feed) fetch(ctx context.Context, req request) (res pagination.Result[domain.Kudos], err error) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error().Interface("panic", r).Msg("feed source panicked")
			res = pagination.Result[domain.Kudos]{}
			err = perr.Internalf("feed fetch failed: %v", r)
		}
	}()
	return f.src(ctx, req.filter, req.page, req.limit)
}

// copyLocked clones the snapshot; callers hold mu
func (f *Feed) copyLocked() Snapshot {
	s := f.snap
	s.Data = append([]domain.Kudos{}, f.snap.Data...)
	if f.snap.Pagination != nil {
		m := *f.snap.Pagination
		s.Pagination = &m
	}
	return s
}

// publishLocked delivers s to subscribers; callers hold notify
func (f *Feed) publishLocked(s Snapshot) {
	for _, fn := range f.subs {
		fn(s)
	}
}
