package save

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrSlotEmpty   = errors.New("save slot is empty")
	ErrInvalidSlot = errors.New("invalid save slot name")
)

// Store keeps encoded snapshots under named slots.
type Store interface {
	// Load returns ErrSlotEmpty when nothing was saved under slot.
	Load(ctx context.Context, slot string) ([]byte, error)
	Save(ctx context.Context, slot string, data []byte) error
}

// LoadSnapshot reads and decodes slot. Missing slots yield ErrSlotEmpty.
func LoadSnapshot(ctx context.Context, store Store, slot string) (*Snapshot, error) {
	b, err := store.Load(ctx, slot)
	if err != nil {
		return nil, err
	}
	s, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("loading slot %q: %w", slot, err)
	}
	return s, nil
}

// SaveSnapshot encodes s and writes it to slot.
func SaveSnapshot(ctx context.Context, store Store, slot string, s *Snapshot) error {
	b, err := Encode(s)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, slot, b); err != nil {
		return fmt.Errorf("saving slot %q: %w", slot, err)
	}
	return nil
}

// FileStore keeps one JSON file per slot under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir (created on first save).
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Load reads the slot file.
func (s *FileStore) Load(_ context.Context, slot string) ([]byte, error) {
	path, err := s.path(slot)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return b, nil
}

// Save writes the slot file through a temp file and rename, so a crash
// never leaves a half-written save.
func (s *FileStore) Save(_ context.Context, slot string, data []byte) error {
	path, err := s.path(slot)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating save dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renaming %s: %w", tmp, err)
	}
	return nil
}

func (s *FileStore) path(slot string) (string, error) {
	if slot == "" || slot == "." || slot == ".." || strings.ContainsAny(slot, `/\`) {
		return "", fmt.Errorf("slot %q: %w", slot, ErrInvalidSlot)
	}
	return filepath.Join(s.dir, slot+".json"), nil
}
