package save

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// flushTimeout bounds the final save on shutdown.
const flushTimeout = 5 * time.Second

// Saver writes snapshots in the background. Submit never blocks; when
// snapshots arrive faster than they are written only the latest one is kept.
// Failures are logged and otherwise ignored.
type Saver struct {
	store Store
	slot  string

	mu      sync.Mutex
	pending *Snapshot
	notify  chan struct{}

	saved func(*Snapshot) // test hook
}

// NewSaver creates a saver writing to slot of store.
func NewSaver(store Store, slot string) *Saver {
	return &Saver{
		store:  store,
		slot:   slot,
		notify: make(chan struct{}, 1),
	}
}

// Submit queues s for writing, replacing any snapshot not yet written.
func (s *Saver) Submit(snap *Snapshot) {
	if snap == nil {
		return
	}
	s.mu.Lock()
	s.pending = snap
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Run writes submitted snapshots until ctx is canceled, then flushes the
// last pending one.
func (s *Saver) Run(ctx context.Context) error {
	slog.Info("saver started", "slot", s.slot)
	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
			err := s.Flush(flushCtx)
			cancel()
			if err != nil {
				slog.Error("final save failed", "slot", s.slot, "error", err)
			}
			slog.Info("saver stopped", "slot", s.slot)
			return nil

		case <-s.notify:
			if err := s.Flush(ctx); err != nil {
				slog.Error("save failed", "slot", s.slot, "error", err)
			}
		}
	}
}

// Flush synchronously writes the pending snapshot, if any.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	snap := s.pending
	s.pending = nil
	s.mu.Unlock()

	if snap == nil {
		return nil
	}
	if err := SaveSnapshot(ctx, s.store, s.slot, snap); err != nil {
		return err
	}
	if s.saved != nil {
		s.saved(snap)
	}
	slog.Debug("snapshot saved", "slot", s.slot, "zone", snap.Zone)
	return nil
}
