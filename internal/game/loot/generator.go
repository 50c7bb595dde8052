package loot

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/model"
)

// Random is the subset of *rand.Rand loot rolls need.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// ItemGenerator rolls new items.
type ItemGenerator struct {
	rng   Random
	pools map[data.EquipmentType]data.StatPool
	newID func() string
}

// NewItemGenerator creates a generator over the static stat pools.
func NewItemGenerator(rng Random) *ItemGenerator {
	return &ItemGenerator{
		rng:   rng,
		pools: data.StatPools(),
		newID: uuid.NewString,
	}
}

// Generate creates an item of type t, sampling the rarity from the rarity table.
func (g *ItemGenerator) Generate(t data.EquipmentType, level int) *model.Item {
	rarity := data.RollItemRarity(g.rng.Float64() * 100)
	return g.GenerateWithRarity(t, level, rarity)
}

// GenerateWithRarity creates an item with a fixed rarity.
//
// Mandatory stats of the type are always rolled. The remaining
// totalStats − mandatory slots are drawn without replacement from the
// possible pool; a pool that runs dry just ends the draw early.
func (g *ItemGenerator) GenerateWithRarity(t data.EquipmentType, level int, rarity data.ItemRarity) *model.Item {
	if level < 1 {
		level = 1
	}
	def := data.GetItemRarity(rarity)
	pool := g.pools[t]

	stats := make(map[data.StatKey]float64, def.TotalStats)
	for _, k := range pool.Mandatory {
		g.rollStat(stats, k, def, level)
	}

	candidates := make([]data.StatKey, 0, len(pool.Possible))
	for _, k := range pool.Possible {
		if _, taken := stats[k]; taken || slices.Contains(candidates, k) {
			continue
		}
		candidates = append(candidates, k)
	}

	for remaining := def.TotalStats - len(stats); remaining > 0 && len(candidates) > 0; remaining-- {
		i := g.rng.IntN(len(candidates))
		k := candidates[i]
		candidates = slices.Delete(candidates, i, i+1)
		g.rollStat(stats, k, def, level)
	}

	return &model.Item{
		ID:     g.newID(),
		Type:   t,
		Level:  level,
		Rarity: def.Rarity,
		Stats:  stats,
	}
}

// rollStat rolls base ∈ [min,max], scales by rarity and level, rounds to the
// stat's precision.
func (g *ItemGenerator) rollStat(stats map[data.StatKey]float64, k data.StatKey, rarity data.ItemRarityDef, level int) {
	def, ok := data.GetStatDef(k)
	if !ok {
		slog.Warn("stat pool references unknown stat", "stat", k)
		return
	}
	base := def.Min + g.rng.Float64()*(def.Max-def.Min)
	stats[k] = def.Round(base * rarity.StatMultiplier * def.LevelFactor(level))
}
