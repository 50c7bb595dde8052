package data

import "math"

// UpgradeKey identifies a gold-priced shop upgrade.
type UpgradeKey string

const (
	UpgradeDamage       UpgradeKey = "damage"
	UpgradeHealth       UpgradeKey = "health"
	UpgradeArmor        UpgradeKey = "armor"
	UpgradeAttackSpeed  UpgradeKey = "attackSpeed"
	UpgradeCritChance   UpgradeKey = "critChance"
	UpgradeLifeRegen    UpgradeKey = "lifeRegen"
	UpgradeManaRegen    UpgradeKey = "manaRegen"
	UpgradeAttackRating UpgradeKey = "attackRating"
)

// UpgradeDef is the price curve of an upgrade.
type UpgradeDef struct {
	Key      UpgradeKey
	Name     string
	BaseCost int64
	Growth   float64
}

var upgradeDefs = []UpgradeDef{
	{Key: UpgradeDamage, Name: "Sharpen Weapon", BaseCost: 10, Growth: 1.15},
	{Key: UpgradeHealth, Name: "Toughen Up", BaseCost: 10, Growth: 1.15},
	{Key: UpgradeArmor, Name: "Reinforce Armor", BaseCost: 15, Growth: 1.17},
	{Key: UpgradeAttackSpeed, Name: "Swift Strikes", BaseCost: 50, Growth: 1.25},
	{Key: UpgradeCritChance, Name: "Keen Eye", BaseCost: 40, Growth: 1.22},
	{Key: UpgradeLifeRegen, Name: "Second Wind", BaseCost: 20, Growth: 1.18},
	{Key: UpgradeManaRegen, Name: "Meditation", BaseCost: 20, Growth: 1.18},
	{Key: UpgradeAttackRating, Name: "Battle Focus", BaseCost: 15, Growth: 1.16},
}

// UpgradeDefs returns the shop catalogue.
func UpgradeDefs() []UpgradeDef {
	out := make([]UpgradeDef, len(upgradeDefs))
	copy(out, upgradeDefs)
	return out
}

// GetUpgradeDef looks up an upgrade by key.
func GetUpgradeDef(key UpgradeKey) (UpgradeDef, bool) {
	for _, def := range upgradeDefs {
		if def.Key == key {
			return def, true
		}
	}
	return UpgradeDef{}, false
}

// Cost returns the gold price of buying the next level when the upgrade is at level.
func (d UpgradeDef) Cost(level int) int64 {
	return int64(math.Floor(float64(d.BaseCost) * math.Pow(d.Growth, float64(level))))
}
