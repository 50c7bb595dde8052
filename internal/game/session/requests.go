package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/game/shop"
	"github.com/udisondev/idlerpg/internal/game/skill"
)

var (
	ErrNotEnoughStatPoints = errors.New("not enough stat points")
	ErrUnknownStat         = errors.New("not an allocatable stat")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// AllocateStat spends n stat points on a primary stat.
func (s *Session) AllocateStat(stat data.StatKey, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 1 {
		return fmt.Errorf("allocating %d points: %w", n, ErrInvalidAmount)
	}
	if !stat.IsPrimary() {
		return fmt.Errorf("allocating into %q: %w", stat, ErrUnknownStat)
	}
	if s.hero.StatPoints < n {
		return fmt.Errorf("allocating %d of %d points: %w", n, s.hero.StatPoints, ErrNotEnoughStatPoints)
	}
	s.hero.StatPoints -= n
	s.hero.Primary.Add(stat, n)
	s.recalculate()
	return nil
}

// BuyUpgrade purchases the next level of a shop upgrade.
func (s *Session) BuyUpgrade(key data.UpgradeKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := shop.Buy(s.hero, key); err != nil {
		return err
	}
	s.recalculate()
	return nil
}

// Equip moves a backpack item into slot.
func (s *Session) Equip(itemID string, slot data.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inv.Equip(itemID, slot); err != nil {
		return err
	}
	s.recalculate()
	slog.Info("item equipped", "item", itemID, "slot", data.SlotNames[slot])
	return nil
}

// Unequip moves the item in slot back to the backpack.
func (s *Session) Unequip(slot data.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inv.Unequip(slot); err != nil {
		return err
	}
	s.recalculate()
	return nil
}

// UnlockSkill buys a skill with crystals.
func (s *Session) UnlockSkill(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := skill.Unlock(s.hero, id); err != nil {
		return err
	}
	s.recalculate()
	return nil
}

// ChoosePath picks the hero's path.
func (s *Session) ChoosePath(path data.PathID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := skill.ChoosePath(s.hero, path); err != nil {
		return err
	}
	s.recalculate()
	return nil
}

// SalvageItem destroys a backpack item for gold and returns the gold gained.
func (s *Session) SalvageItem(itemID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.inv.Remove(itemID)
	if err != nil {
		return 0, fmt.Errorf("salvaging %q: %w", itemID, err)
	}
	gold := item.SalvageValue()
	s.hero.Gold += gold
	return gold, nil
}
