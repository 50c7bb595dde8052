package model

import "github.com/udisondev/idlerpg/internal/data"

// PrimaryStats are the allocatable attributes of the hero.
type PrimaryStats struct {
	Strength  int `json:"strength"`
	Agility   int `json:"agility"`
	Vitality  int `json:"vitality"`
	Wisdom    int `json:"wisdom"`
	Endurance int `json:"endurance"`
	Dexterity int `json:"dexterity"`
}

// Get returns the value of a primary stat; non-primary keys return 0.
func (p PrimaryStats) Get(k data.StatKey) int {
	switch k {
	case data.StatStrength:
		return p.Strength
	case data.StatAgility:
		return p.Agility
	case data.StatVitality:
		return p.Vitality
	case data.StatWisdom:
		return p.Wisdom
	case data.StatEndurance:
		return p.Endurance
	case data.StatDexterity:
		return p.Dexterity
	default:
		return 0
	}
}

// Add increases a primary stat by n. Returns false for non-primary keys.
func (p *PrimaryStats) Add(k data.StatKey, n int) bool {
	switch k {
	case data.StatStrength:
		p.Strength += n
	case data.StatAgility:
		p.Agility += n
	case data.StatVitality:
		p.Vitality += n
	case data.StatWisdom:
		p.Wisdom += n
	case data.StatEndurance:
		p.Endurance += n
	case data.StatDexterity:
		p.Dexterity += n
	default:
		return false
	}
	return true
}

// BonusMap is an additive stat → value mapping. Missing keys count as 0.
type BonusMap map[data.StatKey]float64

// Get returns the bonus for k (0 when absent or when b is nil).
func (b BonusMap) Get(k data.StatKey) float64 {
	if b == nil {
		return 0
	}
	return b[k]
}

// Merge adds every entry of other into b.
func (b BonusMap) Merge(other map[data.StatKey]float64) {
	for k, v := range other {
		b[k] += v
	}
}

// Clone returns an independent copy.
func (b BonusMap) Clone() BonusMap {
	out := make(BonusMap, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Stats are the derived combat values of the hero.
// Everything except CurrentHealth and CurrentMana is recomputed, never mutated directly.
type Stats struct {
	Damage              float64 `json:"damage"`
	AttackSpeed         float64 `json:"attackSpeed"`
	CritChance          float64 `json:"critChance"`
	CritDamage          float64 `json:"critDamage"`
	CurrentHealth       float64 `json:"currentHealth"`
	MaxHealth           float64 `json:"maxHealth"`
	Armor               float64 `json:"armor"`
	BlockChance         float64 `json:"blockChance"`
	AttackRating        float64 `json:"attackRating"`
	CurrentMana         float64 `json:"currentMana"`
	MaxMana             float64 `json:"maxMana"`
	ManaRegen           float64 `json:"manaRegen"`
	LifeRegen           float64 `json:"lifeRegen"`
	LifeSteal           float64 `json:"lifeSteal"`
	FireDamage          float64 `json:"fireDamage"`
	ColdDamage          float64 `json:"coldDamage"`
	AirDamage           float64 `json:"airDamage"`
	EarthDamage         float64 `json:"earthDamage"`
	AttackRatingPercent float64 `json:"attackRatingPercent"`
	DamagePercent       float64 `json:"damagePercent"`
}

// Add adds v to the derived stat named by k.
// Primary and unknown keys have no derived counterpart and return false.
func (s *Stats) Add(k data.StatKey, v float64) bool {
	switch k {
	case data.StatDamage:
		s.Damage += v
	case data.StatAttackSpeed:
		s.AttackSpeed += v
	case data.StatCritChance:
		s.CritChance += v
	case data.StatCritDamage:
		s.CritDamage += v
	case data.StatHealth:
		s.MaxHealth += v
	case data.StatArmor:
		s.Armor += v
	case data.StatBlockChance:
		s.BlockChance += v
	case data.StatAttackRating:
		s.AttackRating += v
	case data.StatMana:
		s.MaxMana += v
	case data.StatManaRegen:
		s.ManaRegen += v
	case data.StatLifeRegen:
		s.LifeRegen += v
	case data.StatLifeSteal:
		s.LifeSteal += v
	case data.StatFireDamage:
		s.FireDamage += v
	case data.StatColdDamage:
		s.ColdDamage += v
	case data.StatAirDamage:
		s.AirDamage += v
	case data.StatEarthDamage:
		s.EarthDamage += v
	case data.StatAttackRatingPercent:
		s.AttackRatingPercent += v
	case data.StatDamagePercent:
		s.DamagePercent += v
	default:
		return false
	}
	return true
}

// ElementalDamage returns the sum of the four elemental damages.
func (s Stats) ElementalDamage() float64 {
	return s.FireDamage + s.ColdDamage + s.AirDamage + s.EarthDamage
}
