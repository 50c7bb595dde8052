package data

// Base values and per-level/per-upgrade growth of the hero's derived stats.
const (
	BaseDamage             = 10.0
	DamagePerLevel         = 2.0
	DamagePerUpgrade       = 1.0
	BaseAttackSpeed        = 1.0
	BaseCritChance         = 5.0
	BaseCritDamage         = 1.5
	BaseHealth             = 100.0
	HealthPerLevel         = 10.0
	HealthPerUpgrade       = 10.0
	BaseArmor              = 0.0
	ArmorPerUpgrade        = 2.0
	BaseBlockChance        = 0.0
	BaseAttackRating       = 100.0
	BaseMana               = 50.0
	ManaPerLevel           = 5.0
	BaseLifeRegen          = 1.0
	BaseManaRegen          = 1.0
	BaseLifeSteal          = 0.0
	AttackRatingPerLevel   = 10.0
	AttackRatingPerUpgrade = 25.0
	AttackSpeedPerUpgrade  = 0.05
	CritChancePerUpgrade   = 0.5
	LifeRegenPerUpgrade    = 1.0
	ManaRegenPerUpgrade    = 1.0
)

// Hard ceilings applied after every bonus pass.
const (
	MaxBlockChance = 75.0
	MaxCritChance  = 100.0
	MaxAttackSpeed = 5.0
)

// Equipment primary stats also feed base values directly.
const (
	EquipStrengthDamage = 2.0
	EquipAgilityRating  = 2.0
	EquipVitalityHealth = 5.0
	EquipWisdomMana     = 5.0
	EquipEnduranceArmor = 2.0
)

// Step sizes of the floor-stepped primary stat multipliers (1% per step).
const (
	StrengthStep         = 5
	AgilityStep          = 5
	VitalityStep         = 5
	WisdomStep           = 5
	EnduranceStep        = 5
	VitalityRegenStep    = 10
	WisdomRegenStep      = 10
	DexterityCritStep    = 25
	DexterityCritDmgStep = 10
	EnduranceBlockStep   = 25
	StepPercent          = 0.01
)

// SoulBonusPercent is the damage bonus granted per soul.
const SoulBonusPercent = 0.01

// SoulsZoneDivisor converts the highest zone reached into souls at prestige.
const SoulsZoneDivisor = 5

// PrestigeProgressZoneDivisor converts the current zone into prestigeProgress on each kill.
const PrestigeProgressZoneDivisor = 50

// CrystalsPerNewZone is granted each time the hero reaches a new highest zone.
const CrystalsPerNewZone = 1
