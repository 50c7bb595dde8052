package data

// StatPool lists which stats may roll on an equipment type.
// Mandatory stats are always rolled; the remaining slots are drawn from Possible.
type StatPool struct {
	Mandatory []StatKey
	Possible  []StatKey
}

var statPools = map[EquipmentType]StatPool{
	TypeHelmet: {
		Mandatory: []StatKey{StatArmor},
		Possible:  []StatKey{StatHealth, StatVitality, StatWisdom, StatEndurance, StatMana, StatManaRegen, StatBlockChance},
	},
	TypeArmor: {
		Mandatory: []StatKey{StatArmor},
		Possible:  []StatKey{StatHealth, StatVitality, StatEndurance, StatStrength, StatLifeRegen, StatBlockChance},
	},
	TypeBelt: {
		Mandatory: []StatKey{StatHealth},
		Possible:  []StatKey{StatStrength, StatVitality, StatEndurance, StatLifeRegen, StatArmor, StatMana},
	},
	TypePants: {
		Mandatory: []StatKey{StatArmor},
		Possible:  []StatKey{StatAgility, StatVitality, StatEndurance, StatHealth, StatLifeRegen, StatDexterity},
	},
	TypeBoots: {
		Mandatory: []StatKey{StatArmor},
		Possible:  []StatKey{StatAgility, StatDexterity, StatAttackSpeed, StatHealth, StatEndurance, StatAttackRating},
	},
	TypeSword: {
		Mandatory: []StatKey{StatDamage},
		Possible: []StatKey{
			StatStrength, StatDexterity, StatCritChance, StatCritDamage, StatAttackSpeed,
			StatAttackRating, StatLifeSteal, StatFireDamage, StatColdDamage, StatAirDamage,
			StatEarthDamage, StatDamagePercent,
		},
	},
	TypeAxe: {
		Mandatory: []StatKey{StatDamage},
		Possible: []StatKey{
			StatStrength, StatCritDamage, StatLifeSteal, StatDamagePercent, StatEarthDamage,
			StatFireDamage, StatAttackRating, StatVitality,
		},
	},
	TypeMace: {
		Mandatory: []StatKey{StatDamage},
		Possible: []StatKey{
			StatStrength, StatVitality, StatCritDamage, StatAttackRatingPercent, StatColdDamage,
			StatEarthDamage, StatDamagePercent, StatLifeRegen,
		},
	},
	TypeShield: {
		Mandatory: []StatKey{StatBlockChance},
		Possible:  []StatKey{StatArmor, StatEndurance, StatVitality, StatHealth, StatLifeRegen, StatColdDamage, StatEarthDamage},
	},
	TypeGloves: {
		Mandatory: []StatKey{StatArmor},
		Possible: []StatKey{
			StatAttackSpeed, StatCritChance, StatDexterity, StatAgility, StatAttackRating,
			StatAttackRatingPercent, StatStrength,
		},
	},
	TypeAmulet: {
		Mandatory: []StatKey{StatWisdom},
		Possible: []StatKey{
			StatFireDamage, StatColdDamage, StatAirDamage, StatEarthDamage, StatMana,
			StatManaRegen, StatCritChance, StatCritDamage, StatDamagePercent, StatLifeSteal,
		},
	},
	TypeRing: {
		Possible: []StatKey{
			StatStrength, StatAgility, StatVitality, StatWisdom, StatEndurance, StatDexterity,
			StatCritChance, StatLifeSteal, StatManaRegen, StatLifeRegen,
		},
	},
}

// StatPools returns a copy of the per-type stat pools.
func StatPools() map[EquipmentType]StatPool {
	out := make(map[EquipmentType]StatPool, len(statPools))
	for t, p := range statPools {
		out[t] = StatPool{
			Mandatory: append([]StatKey(nil), p.Mandatory...),
			Possible:  append([]StatKey(nil), p.Possible...),
		}
	}
	return out
}

// GetStatPool returns the stat pool of t (empty pool for unknown types).
func GetStatPool(t EquipmentType) StatPool {
	return statPools[t]
}
