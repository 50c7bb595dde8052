// Package stats derives the hero's combat stats from its persistent inputs.
//
// Pipeline:
//  1. base values from level, shop upgrades and equipment primary stats
//  2. floor-stepped primary stat multipliers (1% per full step, never linear)
//  3. additive passes: skill → equipment → path bonuses
//  4. percent stats (damagePercent, attackRatingPercent)
//  5. souls damage bonus
//  6. hard ceilings
package stats

import (
	"math"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/model"
)

// Inputs is everything the derived stats depend on.
type Inputs struct {
	Level     int
	Primary   model.PrimaryStats
	Upgrades  map[data.UpgradeKey]int
	Equipment model.BonusMap
	Skills    model.BonusMap
	Path      model.BonusMap
	Souls     int64
}

// InputsFor collects the stat inputs of a hero.
func InputsFor(h *model.Hero) Inputs {
	return Inputs{
		Level:     h.Level,
		Primary:   h.Primary,
		Upgrades:  h.UpgradeLevels,
		Equipment: h.EquipmentBonuses,
		Skills:    h.SkillBonuses,
		Path:      h.PathBonuses,
		Souls:     h.Souls,
	}
}

// Compute is a pure function of its inputs. Current health and mana are left
// at zero; Recalculate carries them over.
func Compute(in Inputs) model.Stats {
	eq := in.Equipment
	upgrade := func(k data.UpgradeKey) float64 { return float64(in.Upgrades[k]) }
	levels := float64(max(in.Level, 1) - 1)

	eqStr := eq.Get(data.StatStrength)
	eqAgi := eq.Get(data.StatAgility)
	eqVit := eq.Get(data.StatVitality)
	eqWis := eq.Get(data.StatWisdom)
	eqEnd := eq.Get(data.StatEndurance)
	eqDex := eq.Get(data.StatDexterity)

	str := float64(in.Primary.Strength) + eqStr
	agi := float64(in.Primary.Agility) + eqAgi
	vit := float64(in.Primary.Vitality) + eqVit
	wis := float64(in.Primary.Wisdom) + eqWis
	end := float64(in.Primary.Endurance) + eqEnd
	dex := float64(in.Primary.Dexterity) + eqDex

	var s model.Stats

	s.Damage = data.BaseDamage +
		eqStr*data.EquipStrengthDamage +
		upgrade(data.UpgradeDamage)*data.DamagePerUpgrade +
		levels*data.DamagePerLevel
	s.Damage += s.Damage * stepped(str, data.StrengthStep)

	s.AttackRating = data.BaseAttackRating +
		eqAgi*data.EquipAgilityRating +
		upgrade(data.UpgradeAttackRating)*data.AttackRatingPerUpgrade +
		levels*data.AttackRatingPerLevel
	s.AttackRating += s.AttackRating * stepped(agi, data.AgilityStep)

	s.MaxHealth = data.BaseHealth +
		eqVit*data.EquipVitalityHealth +
		upgrade(data.UpgradeHealth)*data.HealthPerUpgrade +
		levels*data.HealthPerLevel
	s.MaxHealth += s.MaxHealth * stepped(vit, data.VitalityStep)

	s.MaxMana = data.BaseMana +
		eqWis*data.EquipWisdomMana +
		levels*data.ManaPerLevel
	s.MaxMana += s.MaxMana * stepped(wis, data.WisdomStep)

	s.LifeRegen = data.BaseLifeRegen + upgrade(data.UpgradeLifeRegen)*data.LifeRegenPerUpgrade
	s.LifeRegen += s.LifeRegen * stepped(vit, data.VitalityRegenStep)

	s.ManaRegen = data.BaseManaRegen + upgrade(data.UpgradeManaRegen)*data.ManaRegenPerUpgrade
	s.ManaRegen += s.ManaRegen * stepped(wis, data.WisdomRegenStep)

	s.Armor = data.BaseArmor +
		eqEnd*data.EquipEnduranceArmor +
		upgrade(data.UpgradeArmor)*data.ArmorPerUpgrade
	s.Armor += s.Armor * stepped(end, data.EnduranceStep)

	s.BlockChance = data.BaseBlockChance + math.Floor(end/data.EnduranceBlockStep)

	s.CritChance = data.BaseCritChance + upgrade(data.UpgradeCritChance)*data.CritChancePerUpgrade
	s.CritChance += s.CritChance * stepped(dex, data.DexterityCritStep)

	s.CritDamage = data.BaseCritDamage
	s.CritDamage += s.CritDamage * stepped(dex, data.DexterityCritDmgStep)

	s.AttackSpeed = data.BaseAttackSpeed + upgrade(data.UpgradeAttackSpeed)*data.AttackSpeedPerUpgrade
	s.LifeSteal = data.BaseLifeSteal

	// Each key maps to its own field, so iteration order inside one map does
	// not change the result.
	for _, bonuses := range []model.BonusMap{in.Skills, in.Equipment, in.Path} {
		for k, v := range bonuses {
			s.Add(k, v)
		}
	}

	s.Damage += s.Damage * s.DamagePercent / 100
	s.AttackRating += s.AttackRating * s.AttackRatingPercent / 100

	if in.Souls > 0 {
		s.Damage += math.Floor(s.Damage * float64(in.Souls) * data.SoulBonusPercent)
	}

	s.BlockChance = min(s.BlockChance, data.MaxBlockChance)
	s.CritChance = min(s.CritChance, data.MaxCritChance)
	s.AttackSpeed = min(s.AttackSpeed, data.MaxAttackSpeed)

	return s
}

// Recalculate overwrites h.Stats from its inputs, keeping current health and
// mana clamped into the new maxima.
func Recalculate(h *model.Hero) {
	health, mana := h.Stats.CurrentHealth, h.Stats.CurrentMana
	h.Stats = Compute(InputsFor(h))
	h.Stats.CurrentHealth = health
	h.Stats.CurrentMana = mana
	h.ClampPools()
}

// stepped returns the 1%-per-step multiplier of a primary stat total.
// The floor happens before scaling, producing plateaus.
func stepped(total float64, step int) float64 {
	return math.Floor(total/float64(step)) * data.StepPercent
}
