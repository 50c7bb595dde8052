package model

import (
	"time"

	"github.com/udisondev/idlerpg/internal/data"
)

// Enemy is the single opponent of the current zone encounter.
// Rarity is fixed at spawn; every combat number derives from (zone, rarity).
type Enemy struct {
	Name          string           `json:"name"`
	Rarity        data.EnemyRarity `json:"rarity"`
	Element       data.Element     `json:"element"`
	Zone          int              `json:"zone"`
	Health        float64          `json:"health"`
	CurrentHealth float64          `json:"currentHealth"`
	Damage        float64          `json:"damage"`
	AttackSpeed   float64          `json:"attackSpeed"` // seconds between attacks
	LastAttack    time.Time        `json:"lastAttack"`
}

// TakeDamage subtracts damage, clamped at 0. Returns true when the enemy died.
func (e *Enemy) TakeDamage(damage float64) bool {
	e.CurrentHealth = max(e.CurrentHealth-damage, 0)
	return e.IsDead()
}

// IsDead reports whether current health reached 0.
func (e *Enemy) IsDead() bool {
	return e.CurrentHealth <= 0
}

// AttackCooldown returns the time between two enemy attacks.
func (e *Enemy) AttackCooldown() time.Duration {
	return time.Duration(e.AttackSpeed * float64(time.Second))
}

// Clone returns a copy for read-only consumers.
func (e *Enemy) Clone() *Enemy {
	c := *e
	return &c
}
