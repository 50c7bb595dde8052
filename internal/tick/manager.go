// Package tick drives fixed-rate game updates.
package tick

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is 10 ticks per second.
const DefaultInterval = 100 * time.Millisecond

// Ticker is anything advanced by the manager.
type Ticker interface {
	Tick(now time.Time)
}

// TickerFunc adapts a function to Ticker.
type TickerFunc func(now time.Time)

// Tick calls f(now).
func (f TickerFunc) Tick(now time.Time) { f(now) }

// Manager calls every registered Ticker once per interval.
type Manager struct {
	interval    time.Duration
	tickers     sync.Map // map[string]Ticker
	tickerCount atomic.Int32
	stopCh      chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

// NewManager creates a manager; interval <= 0 uses DefaultInterval.
func NewManager(interval time.Duration) *Manager {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Manager{
		interval: interval,
		stopCh:   make(chan struct{}),
		now:      time.Now,
	}
}

// Interval returns the tick period.
func (m *Manager) Interval() time.Duration {
	return m.interval
}

// Register adds a ticker under name, replacing any previous one.
func (m *Manager) Register(name string, t Ticker) {
	if _, loaded := m.tickers.Swap(name, t); !loaded {
		m.tickerCount.Add(1)
	}
	slog.Debug("ticker registered", "name", name)
}

// Unregister removes the ticker registered under name.
func (m *Manager) Unregister(name string) {
	if _, ok := m.tickers.LoadAndDelete(name); !ok {
		return
	}
	m.tickerCount.Add(-1)
	slog.Debug("ticker unregistered", "name", name)
}

// Get returns the ticker registered under name.
func (m *Manager) Get(name string) (Ticker, error) {
	v, ok := m.tickers.Load(name)
	if !ok {
		return nil, fmt.Errorf("ticker %q not registered", name)
	}
	return v.(Ticker), nil
}

// Count returns the number of registered tickers.
func (m *Manager) Count() int {
	return int(m.tickerCount.Load())
}

// Start runs the tick loop (blocks until ctx is canceled or Stop is called).
func (m *Manager) Start(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	slog.Info("tick manager started", "interval", m.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("tick manager stopping")
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("tick manager stopped")
			return nil

		case <-ticker.C:
			m.tickAll(m.now())
		}
	}
}

// Stop stops the tick loop. Safe to call more than once.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

func (m *Manager) tickAll(now time.Time) {
	count := 0
	m.tickers.Range(func(_, value any) bool {
		value.(Ticker).Tick(now)
		count++
		return true
	})

	if count > 0 && IsDebugEnabled() {
		slog.Debug("tick completed", "tickers", count)
	}
}
