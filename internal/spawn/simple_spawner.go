package spawn

import (
	"log/slog"
	"math"
	"time"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/model"
)

// Random is the subset of *rand.Rand the generator needs.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// Generator creates the enemy of a zone.
type Generator struct {
	rng Random
	now func() time.Time
}

// NewGenerator creates a Generator. now defaults to time.Now.
func NewGenerator(rng Random, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now}
}

// Generate rolls a rarity and builds the enemy for zone.
func (g *Generator) Generate(zone int) *model.Enemy {
	rarity := data.RollEnemyRarity(g.rng.Float64() * 100)
	return g.GenerateWithRarity(zone, rarity)
}

// GenerateWithRarity builds the enemy for zone with a fixed rarity.
// Zones below 1 are a caller bug; they are clamped to 1 and logged.
func (g *Generator) GenerateWithRarity(zone int, rarity data.EnemyRarity) *model.Enemy {
	if zone < 1 {
		slog.Warn("enemy requested for invalid zone, using 1", "zone", zone)
		zone = 1
	}

	element := data.Elements[g.rng.IntN(len(data.Elements))]
	name := data.EnemyNames[g.rng.IntN(len(data.EnemyNames))]
	health := Health(zone, rarity)

	return &model.Enemy{
		Name:          element.Glyph() + " " + name,
		Rarity:        data.GetEnemyRarity(rarity).Rarity,
		Element:       element,
		Zone:          zone,
		Health:        health,
		CurrentHealth: health,
		Damage:        Damage(zone, rarity),
		AttackSpeed:   AttackSpeed(rarity),
		LastAttack:    g.now(),
	}
}

// Health returns (49 + zone²) × healthBonus.
func Health(zone int, rarity data.EnemyRarity) float64 {
	z := float64(zone)
	return (49 + z*z) * data.GetEnemyRarity(rarity).HealthBonus
}

// Damage returns (4 + zone^1.10) × bonusDamage.
func Damage(zone int, rarity data.EnemyRarity) float64 {
	return (4 + math.Pow(float64(zone), 1.10)) * data.GetEnemyRarity(rarity).BonusDamage
}

// AttackSpeed returns the seconds between enemy attacks; lower is faster.
func AttackSpeed(rarity data.EnemyRarity) float64 {
	return 1 * data.GetEnemyRarity(rarity).BonusAttackSpeed
}
