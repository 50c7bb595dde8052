package model

import (
	"slices"

	"github.com/udisondev/idlerpg/internal/data"
)

// Hero is the player-controlled entity.
// It is plain data: the owning session serialises access and triggers stat
// recomputation after every change to the stat inputs.
type Hero struct {
	Level            int          `json:"level"`
	Exp              int64        `json:"exp"`
	ExpToNextLevel   int64        `json:"expToNextLevel"`
	Gold             int64        `json:"gold"`
	Crystals         int64        `json:"crystals"`
	Souls            int64        `json:"souls"`
	PrestigeProgress int64        `json:"prestigeProgress"`
	HighestZone      int          `json:"highestZone"`
	StatPoints       int          `json:"statPoints"`
	Primary          PrimaryStats `json:"primaryStats"`

	UpgradeLevels  map[data.UpgradeKey]int `json:"upgradeLevels"`
	UnlockedSkills []string                `json:"unlockedSkills"`
	Path           data.PathID             `json:"path,omitempty"`

	EquipmentBonuses BonusMap `json:"equipmentBonuses"`
	SkillBonuses     BonusMap `json:"skillBonuses"`
	PathBonuses      BonusMap `json:"pathBonuses"`

	Stats Stats `json:"stats"`
}

// NewHero returns a level 1 hero with empty bonus maps.
// Stats are zero until the first recalculation.
func NewHero() *Hero {
	return &Hero{
		Level:            1,
		ExpToNextLevel:   data.BaseExpToNextLevel,
		HighestZone:      1,
		UpgradeLevels:    make(map[data.UpgradeKey]int),
		EquipmentBonuses: make(BonusMap),
		SkillBonuses:     make(BonusMap),
		PathBonuses:      make(BonusMap),
	}
}

// UpgradeLevel returns the purchased level of a shop upgrade.
func (h *Hero) UpgradeLevel(key data.UpgradeKey) int {
	if h.UpgradeLevels == nil {
		return 0
	}
	return h.UpgradeLevels[key]
}

// HasSkill reports whether the skill is unlocked.
func (h *Hero) HasSkill(id string) bool {
	return slices.Contains(h.UnlockedSkills, id)
}

// GainExp adds exp and applies every level-up it pays for.
// Each level costs the current requirement, grants stat points and raises the
// next requirement by level*40-20. Returns the number of levels gained.
func (h *Hero) GainExp(amount int64) int {
	h.Exp += amount
	gained := 0
	for h.ExpToNextLevel > 0 && h.Exp >= h.ExpToNextLevel {
		h.Exp -= h.ExpToNextLevel
		h.Level++
		h.StatPoints += data.StatPointsPerLevel
		h.ExpToNextLevel += data.ExpToNextLevelIncrement(h.Level)
		gained++
	}
	return gained
}

// HealFull restores both pools to their maxima.
func (h *Hero) HealFull() {
	h.Stats.CurrentHealth = h.Stats.MaxHealth
	h.Stats.CurrentMana = h.Stats.MaxMana
}

// Heal restores health and mana, clamped to the maxima.
func (h *Hero) Heal(health, mana float64) {
	h.Stats.CurrentHealth = min(h.Stats.CurrentHealth+health, h.Stats.MaxHealth)
	h.Stats.CurrentMana = min(h.Stats.CurrentMana+mana, h.Stats.MaxMana)
}

// TakeDamage subtracts damage from current health, clamped at 0.
// Returns true when the hero is dead afterwards.
func (h *Hero) TakeDamage(damage float64) bool {
	h.Stats.CurrentHealth = max(h.Stats.CurrentHealth-damage, 0)
	return h.IsDead()
}

// IsDead reports whether current health reached 0.
func (h *Hero) IsDead() bool {
	return h.Stats.CurrentHealth <= 0
}

// ClampPools keeps current health and mana inside [0, max].
func (h *Hero) ClampPools() {
	h.Stats.CurrentHealth = min(max(h.Stats.CurrentHealth, 0), h.Stats.MaxHealth)
	h.Stats.CurrentMana = min(max(h.Stats.CurrentMana, 0), h.Stats.MaxMana)
}

// Clone returns a deep copy safe to hand to readers outside the session.
func (h *Hero) Clone() *Hero {
	c := *h
	c.UpgradeLevels = make(map[data.UpgradeKey]int, len(h.UpgradeLevels))
	for k, v := range h.UpgradeLevels {
		c.UpgradeLevels[k] = v
	}
	c.UnlockedSkills = slices.Clone(h.UnlockedSkills)
	c.EquipmentBonuses = h.EquipmentBonuses.Clone()
	c.SkillBonuses = h.SkillBonuses.Clone()
	c.PathBonuses = h.PathBonuses.Clone()
	return &c
}
