package refresh

import (
	"context"
	"log/slog"
	"time"
)

// Poller drives one view's polling loop. Kick forces an immediate refetch
// after a local mutation (submitting a prediction, joining a pool).
type Poller struct {
	interval  time.Duration
	refresher *Refresher
	logger    *slog.Logger
	kick      chan struct{}
}

// NewPoller creates a poller with a fixed interval.
func NewPoller(interval time.Duration, r *Refresher, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		interval:  interval,
		refresher: r,
		logger:    logger,
		kick:      make(chan struct{}, 1),
	}
}

// Kick requests an immediate refetch. Coalesces: kicking a poller that
// already has one queued is a no-op.
func (p *Poller) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Run polls the view until ctx is cancelled. The first fetch happens
// immediately; onUpdate receives every fetch outcome, errors included, so
// the view can show a failed-to-load state and recover on the next tick.
// Intended to be called with `go`; cancel ctx when the selection changes.
func (p *Poller) Run(ctx context.Context, key Key, ttl time.Duration, fn FetchFunc, onUpdate func(any, error)) {
	fetch := func() {
		value, err := p.refresher.Fetch(ctx, key, ttl, fn)
		if ctx.Err() != nil {
			return
		}
		if onUpdate != nil {
			onUpdate(value, err)
		}
	}

	fetch()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fetch()
		case <-p.kick:
			fetch()
		case <-ctx.Done():
			return
		}
	}
}
