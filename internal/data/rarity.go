package data

// EnemyRarity is rolled once when an enemy spawns and never changes.
type EnemyRarity string

const (
	EnemyNormal    EnemyRarity = "NORMAL"
	EnemyRare      EnemyRarity = "RARE"
	EnemyEpic      EnemyRarity = "EPIC"
	EnemyLegendary EnemyRarity = "LEGENDARY"
	EnemyMythic    EnemyRarity = "MYTHIC"
)

// EnemyRarityDef holds the multipliers of one enemy tier.
// Threshold is the exclusive upper bound of the tier's band in [0,100);
// the lower bound is the previous tier's Threshold.
type EnemyRarityDef struct {
	Rarity           EnemyRarity
	Threshold        float64
	HealthBonus      float64
	BonusDamage      float64
	BonusAttackSpeed float64
	ItemDropChance   float64 // percent
}

// enemyRarities is ordered by threshold. Drop chances are balance data and are
// kept as-is even where MYTHIC sits close to NORMAL.
var enemyRarities = []EnemyRarityDef{
	{Rarity: EnemyNormal, Threshold: 80, HealthBonus: 1, BonusDamage: 1, BonusAttackSpeed: 1, ItemDropChance: 5},
	{Rarity: EnemyRare, Threshold: 90, HealthBonus: 1.5, BonusDamage: 1.2, BonusAttackSpeed: 0.9, ItemDropChance: 6},
	{Rarity: EnemyEpic, Threshold: 96, HealthBonus: 2.5, BonusDamage: 1.5, BonusAttackSpeed: 0.8, ItemDropChance: 7.5},
	{Rarity: EnemyLegendary, Threshold: 99, HealthBonus: 4, BonusDamage: 2, BonusAttackSpeed: 0.7, ItemDropChance: 10},
	{Rarity: EnemyMythic, Threshold: 100, HealthBonus: 6, BonusDamage: 3, BonusAttackSpeed: 0.6, ItemDropChance: 5.5},
}

// EnemyRarities returns the enemy tier table in threshold order.
func EnemyRarities() []EnemyRarityDef {
	out := make([]EnemyRarityDef, len(enemyRarities))
	copy(out, enemyRarities)
	return out
}

// GetEnemyRarity returns the definition for r.
// Unknown keys resolve to NORMAL.
func GetEnemyRarity(r EnemyRarity) EnemyRarityDef {
	switch r {
	case EnemyRare:
		return enemyRarities[1]
	case EnemyEpic:
		return enemyRarities[2]
	case EnemyLegendary:
		return enemyRarities[3]
	case EnemyMythic:
		return enemyRarities[4]
	default:
		return enemyRarities[0]
	}
}

// RollEnemyRarity maps a roll in [0,100) onto the cumulative tier bands.
func RollEnemyRarity(roll float64) EnemyRarity {
	for _, def := range enemyRarities {
		if roll < def.Threshold {
			return def.Rarity
		}
	}
	return EnemyNormal
}

// ItemRarity is the quality tier of a generated item.
type ItemRarity string

const (
	ItemNormal    ItemRarity = "NORMAL"
	ItemMagic     ItemRarity = "MAGIC"
	ItemRare      ItemRarity = "RARE"
	ItemUnique    ItemRarity = "UNIQUE"
	ItemLegendary ItemRarity = "LEGENDARY"
	ItemMythic    ItemRarity = "MYTHIC"
)

// ItemRarityDef describes one item tier.
type ItemRarityDef struct {
	Rarity         ItemRarity
	Rank           int
	Chance         float64 // percent, bands are cumulative in Rank order
	StatMultiplier float64
	TotalStats     int
	SalvageGold    int // gold per item level when salvaged
}

var itemRarities = []ItemRarityDef{
	{Rarity: ItemNormal, Rank: 0, Chance: 66.5, StatMultiplier: 1.0, TotalStats: 1, SalvageGold: 1},
	{Rarity: ItemMagic, Rank: 1, Chance: 20, StatMultiplier: 1.25, TotalStats: 2, SalvageGold: 2},
	{Rarity: ItemRare, Rank: 2, Chance: 9, StatMultiplier: 1.5, TotalStats: 3, SalvageGold: 4},
	{Rarity: ItemUnique, Rank: 3, Chance: 3, StatMultiplier: 2.0, TotalStats: 4, SalvageGold: 8},
	{Rarity: ItemLegendary, Rank: 4, Chance: 1, StatMultiplier: 2.5, TotalStats: 5, SalvageGold: 16},
	{Rarity: ItemMythic, Rank: 5, Chance: 0.5, StatMultiplier: 3.0, TotalStats: 6, SalvageGold: 32},
}

// ItemRarities returns the item tier table in rank order.
func ItemRarities() []ItemRarityDef {
	out := make([]ItemRarityDef, len(itemRarities))
	copy(out, itemRarities)
	return out
}

// GetItemRarity returns the definition for r; unknown keys resolve to NORMAL.
func GetItemRarity(r ItemRarity) ItemRarityDef {
	switch r {
	case ItemMagic:
		return itemRarities[1]
	case ItemRare:
		return itemRarities[2]
	case ItemUnique:
		return itemRarities[3]
	case ItemLegendary:
		return itemRarities[4]
	case ItemMythic:
		return itemRarities[5]
	default:
		return itemRarities[0]
	}
}

// RollItemRarity applies the chances as successive cumulative bands against a
// single roll in [0,100).
func RollItemRarity(roll float64) ItemRarity {
	cumulative := 0.0
	for _, def := range itemRarities {
		cumulative += def.Chance
		if roll < cumulative {
			return def.Rarity
		}
	}
	return ItemNormal
}

// AtLeast reports whether r ranks at or above other.
func (r ItemRarity) AtLeast(other ItemRarity) bool {
	return GetItemRarity(r).Rank >= GetItemRarity(other).Rank
}
