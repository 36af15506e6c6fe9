package app

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/quill/internal/note"
	"github.com/five82/quill/internal/state"
)

// maxBackoff caps the wait between refreshes while the store keeps failing.
const maxBackoff = 30 * time.Second

// Lister is the part of the note store the poller needs.
type Lister interface {
	List(ctx context.Context) ([]note.Metadata, error)
}

// Poller keeps a state.Store in step with the note store. It refreshes on a
// fixed cadence, backing off while the store keeps failing, and immediately
// whenever the changes channel fires.
type Poller struct {
	lister   Lister
	snapshot *state.Store
	interval time.Duration
	changes  <-chan struct{}
	logger   *log.Logger
}

// NewPoller builds a poller. A zero interval disables the timer; changes may
// be nil when the store cannot report them.
func NewPoller(lister Lister, snapshot *state.Store, interval time.Duration, changes <-chan struct{}, logger *log.Logger) *Poller {
	if logger == nil {
		logger = log.Default()
	}
	return &Poller{
		lister:   lister,
		snapshot: snapshot,
		interval: interval,
		changes:  changes,
		logger:   logger,
	}
}

// Run refreshes until ctx is cancelled. It always returns nil.
func (p *Poller) Run(ctx context.Context) error {
	changes := p.changes
	for {
		p.refresh(ctx)

		var (
			timer *time.Timer
			tick  <-chan time.Time
		)
		if p.interval > 0 {
			timer = time.NewTimer(calculateBackoff(p.snapshot.Snapshot().ConsecutiveFailures, p.interval))
			tick = timer.C
		}

		select {
		case <-ctx.Done():
			stopTimer(timer)
			return nil
		case <-tick:
		case _, ok := <-changes:
			if !ok {
				changes = nil
			}
		}
		stopTimer(timer)
	}
}

func stopTimer(t *time.Timer) {
	if t != nil {
		t.Stop()
	}
}

func (p *Poller) refresh(ctx context.Context) {
	refresh(ctx, p.snapshot, p.lister, p.logger)
}

func refresh(ctx context.Context, snapshot *state.Store, lister Lister, logger *log.Logger) {
	if ctx.Err() != nil {
		return
	}
	notes, err := lister.List(ctx)
	if err != nil {
		snapshot.Update(nil, err)
		logger.Warn("note listing failed", "err", err)
		return
	}
	snapshot.Update(notes, nil)
}

// calculateBackoff doubles the base interval for each consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for range failures {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
