// Package refresh implements the client's view refresh policy: every read
// view is re-derived from fresh API data on a fixed polling interval and
// immediately after any local mutation that could invalidate it.
//
// Fetches are keyed by (resource, params). Concurrent fetches for the
// same key share one in-flight request, and a response is discarded when
// its params no longer match the current selection or a newer response
// already landed, so slow responses never overwrite fresh data.
package refresh

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/quiniela-app/quiniela-go/internal/cache"
)

// Key identifies one view query: the resource name plus its encoded
// parameters (competition id, round label, ...).
type Key struct {
	Resource string
	Params   string
}

func (k Key) String() string {
	return k.Resource + "|" + k.Params
}

// FetchFunc loads one view's data from the API.
type FetchFunc func(ctx context.Context) (any, error)

type call struct {
	done  chan struct{}
	value any
	err   error
}

// Refresher coordinates fetches across views.
type Refresher struct {
	snapshots *cache.Cache
	logger    *slog.Logger

	seq uint64 // monotonic fetch sequence

	mu       sync.Mutex
	inflight map[Key]*call
	selected map[string]string // resource -> currently selected params
}

// New creates a Refresher storing snapshots in the given cache.
func New(snapshots *cache.Cache, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		snapshots: snapshots,
		logger:    logger,
		inflight:  make(map[Key]*call),
		selected:  make(map[string]string),
	}
}

// Select records the current selection for a resource. Responses for
// other params of the same resource are discarded from then on; in-flight
// requests are not interrupted, only their results dropped.
func (r *Refresher) Select(resource, params string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected[resource] = params
}

// Fetch loads the view behind key, de-duplicating against an in-flight
// request for the same key. The result is returned to every waiter; it is
// only stored as the key's snapshot when it is still current.
func (r *Refresher) Fetch(ctx context.Context, key Key, ttl time.Duration, fn FetchFunc) (any, error) {
	r.mu.Lock()
	if c, ok := r.inflight[key]; ok {
		r.mu.Unlock()
		select {
		case <-c.done:
			return c.value, c.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	c := &call{done: make(chan struct{})}
	r.inflight[key] = c
	r.mu.Unlock()

	seq := atomic.AddUint64(&r.seq, 1)
	reqID := uuid.NewString()

	value, err := fn(ctx)

	r.mu.Lock()
	delete(r.inflight, key)
	cur, hasSelection := r.selected[key.Resource]
	r.mu.Unlock()

	switch {
	case err != nil:
		r.logger.Warn("Fetch failed", "resource", key.Resource, "params", key.Params, "request_id", reqID, "error", err)
	case hasSelection && cur != key.Params:
		r.logger.Info("Discarding stale response, selection changed",
			"resource", key.Resource, "params", key.Params, "selected", cur, "request_id", reqID)
	case !r.snapshots.Set(key.String(), value, seq, ttl):
		r.logger.Info("Discarding overtaken response",
			"resource", key.Resource, "params", key.Params, "seq", seq, "request_id", reqID)
	}

	c.value, c.err = value, err
	close(c.done)
	return value, err
}

// Last returns the key's last stored snapshot, if any.
func (r *Refresher) Last(key Key) (any, bool) {
	v, _, ok := r.snapshots.Get(key.String())
	return v, ok
}

// Invalidate drops the key's snapshot after a local mutation so the next
// read fetches fresh data.
func (r *Refresher) Invalidate(key Key) {
	r.snapshots.Delete(key.String())
}
