package data

import "math"

// StatKey names a stat that can appear in a bonus map or on an item.
// Primary keys feed the stepped multipliers; derived keys are added directly
// to the matching combat stat.
type StatKey string

// Primary stats.
const (
	StatStrength  StatKey = "strength"
	StatAgility   StatKey = "agility"
	StatVitality  StatKey = "vitality"
	StatWisdom    StatKey = "wisdom"
	StatEndurance StatKey = "endurance"
	StatDexterity StatKey = "dexterity"
)

// Derived stats.
const (
	StatDamage              StatKey = "damage"
	StatAttackSpeed         StatKey = "attackSpeed"
	StatCritChance          StatKey = "critChance"
	StatCritDamage          StatKey = "critDamage"
	StatHealth              StatKey = "health"
	StatArmor               StatKey = "armor"
	StatBlockChance         StatKey = "blockChance"
	StatAttackRating        StatKey = "attackRating"
	StatMana                StatKey = "mana"
	StatManaRegen           StatKey = "manaRegen"
	StatLifeRegen           StatKey = "lifeRegen"
	StatLifeSteal           StatKey = "lifeSteal"
	StatFireDamage          StatKey = "fireDamage"
	StatColdDamage          StatKey = "coldDamage"
	StatAirDamage           StatKey = "airDamage"
	StatEarthDamage         StatKey = "earthDamage"
	StatAttackRatingPercent StatKey = "attackRatingPercent"
	StatDamagePercent       StatKey = "damagePercent"
)

// PrimaryStatKeys lists the allocatable stats.
var PrimaryStatKeys = []StatKey{
	StatStrength, StatAgility, StatVitality, StatWisdom, StatEndurance, StatDexterity,
}

// IsPrimary reports whether k is an allocatable primary stat.
func (k StatKey) IsPrimary() bool {
	switch k {
	case StatStrength, StatAgility, StatVitality, StatWisdom, StatEndurance, StatDexterity:
		return true
	default:
		return false
	}
}

// StatDef is the roll range of a stat on generated items.
type StatDef struct {
	Key      StatKey
	Min      float64
	Max      float64
	Decimals int
	// Capped stats scale with min(1+level/200, 2) instead of 1+level*0.03.
	Capped bool
}

var statDefs = map[StatKey]StatDef{
	StatStrength:            {Key: StatStrength, Min: 1, Max: 5},
	StatAgility:             {Key: StatAgility, Min: 1, Max: 5},
	StatVitality:            {Key: StatVitality, Min: 1, Max: 5},
	StatWisdom:              {Key: StatWisdom, Min: 1, Max: 5},
	StatEndurance:           {Key: StatEndurance, Min: 1, Max: 5},
	StatDexterity:           {Key: StatDexterity, Min: 1, Max: 5},
	StatDamage:              {Key: StatDamage, Min: 2, Max: 6},
	StatAttackSpeed:         {Key: StatAttackSpeed, Min: 0.02, Max: 0.1, Decimals: 2, Capped: true},
	StatCritChance:          {Key: StatCritChance, Min: 0.5, Max: 2, Decimals: 2, Capped: true},
	StatCritDamage:          {Key: StatCritDamage, Min: 0.05, Max: 0.2, Decimals: 2, Capped: true},
	StatHealth:              {Key: StatHealth, Min: 10, Max: 25},
	StatArmor:               {Key: StatArmor, Min: 3, Max: 8},
	StatBlockChance:         {Key: StatBlockChance, Min: 1, Max: 3, Capped: true},
	StatAttackRating:        {Key: StatAttackRating, Min: 10, Max: 30},
	StatMana:                {Key: StatMana, Min: 5, Max: 15},
	StatManaRegen:           {Key: StatManaRegen, Min: 1, Max: 3},
	StatLifeRegen:           {Key: StatLifeRegen, Min: 1, Max: 3},
	StatLifeSteal:           {Key: StatLifeSteal, Min: 1, Max: 2, Capped: true},
	StatFireDamage:          {Key: StatFireDamage, Min: 1, Max: 5},
	StatColdDamage:          {Key: StatColdDamage, Min: 1, Max: 5},
	StatAirDamage:           {Key: StatAirDamage, Min: 1, Max: 5},
	StatEarthDamage:         {Key: StatEarthDamage, Min: 1, Max: 5},
	StatAttackRatingPercent: {Key: StatAttackRatingPercent, Min: 1, Max: 5, Capped: true},
	StatDamagePercent:       {Key: StatDamagePercent, Min: 1, Max: 5, Capped: true},
}

// GetStatDef returns the roll definition for k.
func GetStatDef(k StatKey) (StatDef, bool) {
	def, ok := statDefs[k]
	return def, ok
}

// Valid reports whether k is a known stat key.
func (k StatKey) Valid() bool {
	_, ok := statDefs[k]
	return ok
}

// LevelFactor returns the item-level scaling for a stat.
func (d StatDef) LevelFactor(level int) float64 {
	if d.Capped {
		return math.Min(1+float64(level)/200, 2)
	}
	return 1 + float64(level)*0.03
}

// Round rounds v to the stat's configured precision.
func (d StatDef) Round(v float64) float64 {
	p := math.Pow(10, float64(d.Decimals))
	return math.Round(v*p) / p
}
