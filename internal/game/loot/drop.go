package loot

import (
	"math"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/model"
)

// Resolver decides what a defeated enemy leaves behind.
type Resolver struct {
	rng   Random
	items *ItemGenerator
}

// NewResolver creates a Resolver generating drops with items.
func NewResolver(rng Random, items *ItemGenerator) *Resolver {
	return &Resolver{rng: rng, items: items}
}

// RollForDrop makes one uniform roll against the enemy rarity's drop chance.
func (r *Resolver) RollForDrop(enemy *model.Enemy) bool {
	if enemy == nil {
		return false
	}
	chance := data.GetEnemyRarity(enemy.Rarity).ItemDropChance
	return r.rng.Float64()*100 < chance
}

// CalculateItemLevel returns max(1, floor(zone × 0.7)).
func CalculateItemLevel(zone int) int {
	return max(1, int(math.Floor(float64(zone)*0.7)))
}

// RandomItemType draws uniformly over every equipment category.
func (r *Resolver) RandomItemType() data.EquipmentType {
	types := data.EquipmentTypes()
	return types[r.rng.IntN(len(types))]
}

// Resolve returns the item dropped by enemy, or nil when the roll fails.
func (r *Resolver) Resolve(enemy *model.Enemy) *model.Item {
	if !r.RollForDrop(enemy) {
		return nil
	}
	return r.items.Generate(r.RandomItemType(), CalculateItemLevel(enemy.Zone))
}
