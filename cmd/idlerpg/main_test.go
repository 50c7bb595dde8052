package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/idlerpg/internal/config"
	"github.com/udisondev/idlerpg/internal/save"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "level %q", tt.in)
	}
}

func TestOpenStore_File(t *testing.T) {
	cfg := config.DefaultGame()
	cfg.Save.Dir = filepath.Join(t.TempDir(), "nested", "saves")

	store, closeStore, err := openStore(context.Background(), cfg)
	require.NoError(t, err)
	defer closeStore()

	ctx := context.Background()
	_, err = save.LoadSnapshot(ctx, store, cfg.Save.Slot)
	require.ErrorIs(t, err, save.ErrSlotEmpty)

	require.NoError(t, save.SaveSnapshot(ctx, store, cfg.Save.Slot, save.NewSnapshot()))
	snap, err := save.LoadSnapshot(ctx, store, cfg.Save.Slot)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Zone)
}
