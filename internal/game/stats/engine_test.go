package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/model"
)

func TestCompute_BaseHero(t *testing.T) {
	s := Compute(InputsFor(model.NewHero()))

	assert.Equal(t, data.BaseDamage, s.Damage)
	assert.Equal(t, data.BaseAttackSpeed, s.AttackSpeed)
	assert.Equal(t, data.BaseCritChance, s.CritChance)
	assert.Equal(t, data.BaseCritDamage, s.CritDamage)
	assert.Equal(t, data.BaseHealth, s.MaxHealth)
	assert.Equal(t, data.BaseMana, s.MaxMana)
	assert.Equal(t, data.BaseArmor, s.Armor)
	assert.Equal(t, data.BaseAttackRating, s.AttackRating)
	assert.Zero(t, s.CurrentHealth, "Compute leaves current pools to Recalculate")
}

func TestCompute_StrengthIsFloorStepped(t *testing.T) {
	tests := []struct {
		strength int
		want     float64
	}{
		{0, 10},
		{4, 10},    // below the first step
		{5, 10.1},  // one step = +1%
		{9, 10.1},  // plateau
		{10, 10.2}, // two steps
		{50, 11},   // ten steps
	}

	for _, tt := range tests {
		in := Inputs{Level: 1, Primary: model.PrimaryStats{Strength: tt.strength}}
		assert.InDelta(t, tt.want, Compute(in).Damage, 1e-9, "strength=%d", tt.strength)
	}
}

func TestCompute_EquipmentStrengthCountsTwice(t *testing.T) {
	// Equipment strength feeds the base (x2) and the step total.
	in := Inputs{
		Level:     1,
		Primary:   model.PrimaryStats{Strength: 2},
		Equipment: model.BonusMap{data.StatStrength: 3},
	}
	// base = 10 + 3*2 = 16; steps = floor(5/5) = 1 → 16 * 1.01
	assert.InDelta(t, 16.16, Compute(in).Damage, 1e-9)
}

func TestCompute_LevelAndUpgrades(t *testing.T) {
	in := Inputs{
		Level:    5,
		Upgrades: map[data.UpgradeKey]int{data.UpgradeDamage: 3, data.UpgradeHealth: 2},
	}
	s := Compute(in)

	assert.InDelta(t, data.BaseDamage+3*data.DamagePerUpgrade+4*data.DamagePerLevel, s.Damage, 1e-9)
	assert.InDelta(t, data.BaseHealth+2*data.HealthPerUpgrade+4*data.HealthPerLevel, s.MaxHealth, 1e-9)
}

func TestCompute_RegenSteps(t *testing.T) {
	in := Inputs{Level: 1, Primary: model.PrimaryStats{Vitality: 19, Wisdom: 20}}
	s := Compute(in)

	// vitality 19 → one regen step (19/10), wisdom 20 → two steps
	assert.InDelta(t, data.BaseLifeRegen*1.01, s.LifeRegen, 1e-9)
	assert.InDelta(t, data.BaseManaRegen*1.02, s.ManaRegen, 1e-9)
}

func TestCompute_DexteritySteps(t *testing.T) {
	in := Inputs{Level: 1, Primary: model.PrimaryStats{Dexterity: 30}}
	s := Compute(in)

	// crit chance: floor(30/25)=1 step; crit damage: floor(30/10)=3 steps
	assert.InDelta(t, data.BaseCritChance*1.01, s.CritChance, 1e-9)
	assert.InDelta(t, data.BaseCritDamage*1.03, s.CritDamage, 1e-9)
}

func TestCompute_AdditivePasses(t *testing.T) {
	in := Inputs{
		Level:     1,
		Skills:    model.BonusMap{data.StatDamage: 5},
		Equipment: model.BonusMap{data.StatDamage: 3, data.StatArmor: 7},
		Path:      model.BonusMap{data.StatDamage: 2, data.StatFireDamage: 4},
	}
	s := Compute(in)

	assert.InDelta(t, 20, s.Damage, 1e-9)
	assert.InDelta(t, 7, s.Armor, 1e-9)
	assert.InDelta(t, 4, s.FireDamage, 1e-9)
}

func TestCompute_MissingAndUnknownKeysAreZero(t *testing.T) {
	in := Inputs{
		Level:     1,
		Equipment: model.BonusMap{data.StatKey("bogus"): 999},
	}
	require.NotPanics(t, func() { Compute(in) })
	assert.Equal(t, Compute(Inputs{Level: 1}), Compute(in))
}

func TestCompute_Clamps(t *testing.T) {
	in := Inputs{
		Level: 1,
		Equipment: model.BonusMap{
			data.StatCritChance:  500,
			data.StatBlockChance: 200,
			data.StatAttackSpeed: 40,
		},
	}
	s := Compute(in)

	assert.Equal(t, data.MaxCritChance, s.CritChance)
	assert.Equal(t, data.MaxBlockChance, s.BlockChance)
	assert.Equal(t, data.MaxAttackSpeed, s.AttackSpeed)
}

func TestCompute_SoulsBonusIsFloored(t *testing.T) {
	in := Inputs{Level: 1, Souls: 5}
	// 10 + floor(10 * 5 * 0.01) = 10 + floor(0.5) = 10
	assert.InDelta(t, 10, Compute(in).Damage, 1e-9)

	in.Souls = 25
	// 10 + floor(2.5) = 12
	assert.InDelta(t, 12, Compute(in).Damage, 1e-9)
}

func TestCompute_DamagePercentBeforeSouls(t *testing.T) {
	in := Inputs{
		Level:     1,
		Equipment: model.BonusMap{data.StatDamagePercent: 50},
		Souls:     10,
	}
	// 10 * 1.5 = 15; 15 + floor(15*10*0.01) = 16
	assert.InDelta(t, 16, Compute(in).Damage, 1e-9)
}

func TestRecalculate_Idempotent(t *testing.T) {
	h := model.NewHero()
	h.Level = 7
	h.Primary = model.PrimaryStats{Strength: 12, Agility: 3, Vitality: 22, Wisdom: 9, Endurance: 31, Dexterity: 44}
	h.UpgradeLevels[data.UpgradeArmor] = 4
	h.EquipmentBonuses = model.BonusMap{data.StatStrength: 4, data.StatCritDamage: 0.15}
	h.SkillBonuses = model.BonusMap{data.StatHealth: 25}
	h.Souls = 3

	Recalculate(h)
	h.HealFull()
	first := h.Stats

	Recalculate(h)
	assert.Equal(t, first, h.Stats)
}

func TestRecalculate_ClampsCurrentPools(t *testing.T) {
	h := model.NewHero()
	h.SkillBonuses = model.BonusMap{data.StatHealth: 100}
	Recalculate(h)
	h.HealFull()
	require.InDelta(t, 200, h.Stats.CurrentHealth, 1e-9)

	h.SkillBonuses = model.BonusMap{}
	Recalculate(h)

	assert.InDelta(t, data.BaseHealth, h.Stats.MaxHealth, 1e-9)
	assert.InDelta(t, data.BaseHealth, h.Stats.CurrentHealth, 1e-9)
}

func TestRecalculate_KeepsDamagedHealth(t *testing.T) {
	h := model.NewHero()
	Recalculate(h)
	h.HealFull()
	h.TakeDamage(30)

	h.UpgradeLevels[data.UpgradeHealth] = 1
	Recalculate(h)

	assert.InDelta(t, 70, h.Stats.CurrentHealth, 1e-9)
	assert.InDelta(t, 110, h.Stats.MaxHealth, 1e-9)
}
