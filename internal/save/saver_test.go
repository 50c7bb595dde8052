package save

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore: in-memory Store для тестов.
type memStore struct {
	mu    sync.Mutex
	slots map[string][]byte
	saves int
	err   error
}

func newMemStore() *memStore {
	return &memStore{slots: make(map[string][]byte)}
}

func (m *memStore) Load(_ context.Context, slot string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.slots[slot]
	if !ok {
		return nil, ErrSlotEmpty
	}
	return b, nil
}

func (m *memStore) Save(_ context.Context, slot string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.slots[slot] = data
	return nil
}

func TestSaver_LatestWins(t *testing.T) {
	store := newMemStore()
	s := NewSaver(store, "main")

	for zone := 1; zone <= 5; zone++ {
		snap := NewSnapshot()
		snap.Zone = zone
		s.Submit(snap)
	}
	require.NoError(t, s.Flush(t.Context()))
	require.NoError(t, s.Flush(t.Context()))

	assert.Equal(t, 1, store.saves)
	got, err := LoadSnapshot(t.Context(), store, "main")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Zone)
}

func TestSaver_SubmitNeverBlocks(t *testing.T) {
	s := NewSaver(newMemStore(), "main")
	for range 1000 {
		s.Submit(NewSnapshot())
	}
	s.Submit(nil)
}

func TestSaver_FailureIsReported(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("disk full")
	s := NewSaver(store, "main")

	s.Submit(NewSnapshot())
	assert.Error(t, s.Flush(t.Context()))
	assert.Zero(t, store.saves)
}

func TestSaver_RunWritesAndFlushesOnCancel(t *testing.T) {
	store := newMemStore()
	s := NewSaver(store, "main")

	written := make(chan int, 10)
	s.saved = func(snap *Snapshot) { written <- snap.Zone }

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	first := NewSnapshot()
	first.Zone = 2
	s.Submit(first)
	assert.Equal(t, 2, <-written)

	// queued right before shutdown: Run either writes it from notify or on
	// the final flush, never both
	last := NewSnapshot()
	last.Zone = 9
	s.Submit(last)
	cancel()

	require.NoError(t, <-done)
	assert.Equal(t, 9, <-written)

	got, err := LoadSnapshot(context.Background(), store, "main")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Zone)
}
