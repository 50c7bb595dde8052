// Package save persists session snapshots.
//
// A snapshot is plain JSON wrapped in a checksummed envelope. Loading is
// lenient: absent fields keep their defaults and unknown fields are ignored.
package save

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/model"
)

// Snapshot is everything a session needs to resume.
// Skill tree and shop state travel inside Hero (UnlockedSkills, Path, UpgradeLevels).
type Snapshot struct {
	SavedAt   time.Time   `json:"savedAt"`
	Zone      int         `json:"zone,omitempty"`
	Hero      *model.Hero `json:"hero,omitempty"`
	Inventory Inventory   `json:"inventory"`
}

// Inventory is the persisted form of model.Inventory.
type Inventory struct {
	Items    []*model.Item             `json:"items,omitempty"`
	Equipped map[data.Slot]*model.Item `json:"equipped,omitempty"`
}

// NewSnapshot returns the snapshot of a brand new game.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Zone: 1,
		Hero: model.NewHero(),
	}
}

// ParseSnapshot decodes a snapshot payload on top of the defaults and
// repairs out-of-range values.
func ParseSnapshot(payload []byte) (*Snapshot, error) {
	s := NewSnapshot()
	if err := json.Unmarshal(payload, s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	s.Normalize()
	return s, nil
}

// Normalize default-fills missing parts and clamps values a valid game never
// produces. Returns the number of repaired fields.
func (s *Snapshot) Normalize() int {
	fixes := 0
	fix := func(field string) {
		fixes++
		slog.Warn("repairing snapshot field", "field", field)
	}

	if s.Zone < 1 {
		s.Zone = 1
	}
	if s.Hero == nil {
		s.Hero = model.NewHero()
		fix("hero")
	}
	normalizeHero(s.Hero, fix)

	items := s.Inventory.Items[:0]
	for _, it := range s.Inventory.Items {
		if !validItem(it) {
			fix("inventory.items")
			continue
		}
		items = append(items, it)
	}
	s.Inventory.Items = items

	for slot, it := range s.Inventory.Equipped {
		if !validItem(it) {
			delete(s.Inventory.Equipped, slot)
			fix("inventory.equipped")
		}
	}
	return fixes
}

func normalizeHero(h *model.Hero, fix func(string)) {
	if h.Level < 1 {
		h.Level = 1
		fix("hero.level")
	}
	if h.ExpToNextLevel <= 0 {
		h.ExpToNextLevel = data.BaseExpToNextLevel
		fix("hero.expToNextLevel")
	}
	if h.HighestZone < 1 {
		h.HighestZone = 1
	}
	for _, v := range []*int64{&h.Exp, &h.Gold, &h.Crystals, &h.Souls, &h.PrestigeProgress} {
		if *v < 0 {
			*v = 0
			fix("hero.currency")
		}
	}
	if h.StatPoints < 0 {
		h.StatPoints = 0
		fix("hero.statPoints")
	}
	for _, p := range []*int{
		&h.Primary.Strength, &h.Primary.Agility, &h.Primary.Vitality,
		&h.Primary.Wisdom, &h.Primary.Endurance, &h.Primary.Dexterity,
	} {
		if *p < 0 {
			*p = 0
			fix("hero.primaryStats")
		}
	}

	if h.UpgradeLevels == nil {
		h.UpgradeLevels = make(map[data.UpgradeKey]int)
	}
	for k, lvl := range h.UpgradeLevels {
		if _, ok := data.GetUpgradeDef(k); !ok || lvl < 0 {
			delete(h.UpgradeLevels, k)
			fix("hero.upgradeLevels")
		}
	}

	skills := make([]string, 0, len(h.UnlockedSkills))
	for _, id := range h.UnlockedSkills {
		if _, ok := data.GetSkillDef(id); !ok || slices.Contains(skills, id) {
			fix("hero.unlockedSkills")
			continue
		}
		skills = append(skills, id)
	}
	h.UnlockedSkills = skills

	if _, ok := data.GetPathDef(h.Path); h.Path != data.PathNone && !ok {
		h.Path = data.PathNone
		fix("hero.path")
	}

	if h.EquipmentBonuses == nil {
		h.EquipmentBonuses = make(model.BonusMap)
	}
	if h.SkillBonuses == nil {
		h.SkillBonuses = make(model.BonusMap)
	}
	if h.PathBonuses == nil {
		h.PathBonuses = make(model.BonusMap)
	}
}

func validItem(it *model.Item) bool {
	if it == nil || it.ID == "" || !it.Type.Valid() {
		return false
	}
	if it.Level < 1 {
		it.Level = 1
	}
	if it.Stats == nil {
		it.Stats = make(map[data.StatKey]float64)
	}
	it.Rarity = data.GetItemRarity(it.Rarity).Rarity
	return true
}
