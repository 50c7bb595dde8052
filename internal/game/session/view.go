package session

import (
	"log/slog"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/game/combat"
	"github.com/udisondev/idlerpg/internal/game/skill"
	"github.com/udisondev/idlerpg/internal/model"
	"github.com/udisondev/idlerpg/internal/save"
)

// Status is a compact summary for status lines.
type Status struct {
	State       combat.State
	Zone        int
	HighestZone int
	Level       int
	Gold        int64
	Souls       int64
	Health      float64
	MaxHealth   float64
	Enemy       string
	EnemyHealth float64
	Kills       int64
	Items       int
}

// InventoryView is a copy of the inventory contents.
type InventoryView struct {
	Items    []*model.Item
	Equipped map[data.Slot]*model.Item
	Capacity int
}

// Hero returns a copy of the hero.
func (s *Session) Hero() *model.Hero {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hero.Clone()
}

// Stats returns the hero's derived stats.
func (s *Session) Stats() model.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hero.Stats
}

// Enemy returns a copy of the current enemy (nil before the first spawn).
func (s *Session) Enemy() *model.Enemy {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enemy == nil {
		return nil
	}
	return s.enemy.Clone()
}

// Zone returns the current zone.
func (s *Session) Zone() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zone
}

// State returns the combat state.
func (s *Session) State() combat.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loop.State()
}

// Inventory returns a deep copy of the backpack and paperdoll.
func (s *Session) Inventory() InventoryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, equipped := s.inventoryCopy()
	return InventoryView{Items: items, Equipped: equipped, Capacity: s.inv.Capacity()}
}

// Status returns a summary of the session.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		State:       s.loop.State(),
		Zone:        s.zone,
		HighestZone: s.hero.HighestZone,
		Level:       s.hero.Level,
		Gold:        s.hero.Gold,
		Souls:       s.hero.Souls,
		Health:      s.hero.Stats.CurrentHealth,
		MaxHealth:   s.hero.Stats.MaxHealth,
		Kills:       s.kills,
		Items:       s.inv.Count(),
	}
	if s.enemy != nil {
		st.Enemy = s.enemy.Name
		st.EnemyHealth = s.enemy.CurrentHealth
	}
	return st
}

// Snapshot captures the persistent state.
func (s *Session) Snapshot() *save.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Save hands the current snapshot to the saver, if any.
func (s *Session) Save() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submit()
}

func (s *Session) snapshotLocked() *save.Snapshot {
	items, equipped := s.inventoryCopy()
	return &save.Snapshot{
		SavedAt: s.now(),
		Zone:    s.zone,
		Hero:    s.hero.Clone(),
		Inventory: save.Inventory{
			Items:    items,
			Equipped: equipped,
		},
	}
}

func (s *Session) inventoryCopy() ([]*model.Item, map[data.Slot]*model.Item) {
	src := s.inv.Items()
	items := make([]*model.Item, 0, len(src))
	for _, it := range src {
		items = append(items, it.Clone())
	}
	equipped := s.inv.EquippedItems()
	for slot, it := range equipped {
		equipped[slot] = it.Clone()
	}
	return items, equipped
}

// Restore replaces the session state with a copy of snap, normalizing it
// first. The session goes idle and a fresh enemy is spawned for the restored
// zone.
func (s *Session) Restore(snap *save.Snapshot) {
	if snap == nil {
		return
	}
	snap.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loop.Stop()

	h := snap.Hero.Clone()
	s.hero = h
	s.loop.SetHero(h)
	s.zone = snap.Zone

	items := make([]*model.Item, 0, len(snap.Inventory.Items))
	for _, it := range snap.Inventory.Items {
		items = append(items, it.Clone())
	}
	equipped := make(map[data.Slot]*model.Item, len(snap.Inventory.Equipped))
	for slot, it := range snap.Inventory.Equipped {
		equipped[slot] = it.Clone()
	}
	if dropped := s.inv.Restore(items, equipped); dropped > 0 {
		slog.Warn("items dropped while restoring inventory", "count", dropped)
	}

	h.SkillBonuses = skill.Bonuses(h.UnlockedSkills)
	skill.RefreshPath(h)
	s.recalculate()
	if h.Stats.CurrentHealth <= 0 {
		h.HealFull()
	}
	s.spawn(s.now())

	slog.Info("session restored",
		"zone", s.zone,
		"level", h.Level,
		"souls", h.Souls,
		"items", s.inv.Count())
}
