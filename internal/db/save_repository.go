package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/idlerpg/internal/save"
)

// SlotInfo describes one stored save slot.
type SlotInfo struct {
	Slot      string
	Size      int
	UpdatedAt time.Time
}

// SaveRepository implements save.Store over the save_slots table.
type SaveRepository struct {
	pool *pgxpool.Pool
}

var _ save.Store = (*SaveRepository)(nil)

// NewSaveRepository creates a PostgreSQL save store.
func NewSaveRepository(pool *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{pool: pool}
}

// Load returns the stored envelope, or save.ErrSlotEmpty.
func (r *SaveRepository) Load(ctx context.Context, slot string) ([]byte, error) {
	var data []byte
	err := r.pool.QueryRow(ctx,
		`SELECT data FROM save_slots WHERE slot = $1`, slot,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, save.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("querying save slot %q: %w", slot, err)
	}
	return data, nil
}

// Save upserts the slot.
func (r *SaveRepository) Save(ctx context.Context, slot string, data []byte) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO save_slots (slot, data, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		slot, data,
	)
	if err != nil {
		return fmt.Errorf("upserting save slot %q: %w", slot, err)
	}
	return nil
}

// Delete removes the slot. Deleting a missing slot is not an error.
func (r *SaveRepository) Delete(ctx context.Context, slot string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM save_slots WHERE slot = $1`, slot); err != nil {
		return fmt.Errorf("deleting save slot %q: %w", slot, err)
	}
	return nil
}

// Slots lists stored slots, most recently updated first.
func (r *SaveRepository) Slots(ctx context.Context) ([]SlotInfo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT slot, octet_length(data), updated_at FROM save_slots ORDER BY updated_at DESC, slot`)
	if err != nil {
		return nil, fmt.Errorf("listing save slots: %w", err)
	}
	defer rows.Close()

	var out []SlotInfo
	for rows.Next() {
		var si SlotInfo
		if err := rows.Scan(&si.Slot, &si.Size, &si.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning save slot: %w", err)
		}
		out = append(out, si)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating save slots: %w", err)
	}
	return out, nil
}
