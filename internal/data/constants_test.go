package data

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquipmentTypes_AllHaveSlotsAndPools(t *testing.T) {
	types := EquipmentTypes()
	assert.Len(t, types, 12)

	for _, typ := range types {
		assert.True(t, typ.Valid(), "type %s", typ)
		assert.NotEmpty(t, SlotsFor(typ), "type %s has no slot", typ)

		pool := GetStatPool(typ)
		assert.LessOrEqual(t, len(pool.Mandatory), 1, "type %s: mandatory stats must fit a NORMAL item", typ)
		for _, k := range slices.Concat(pool.Mandatory, pool.Possible) {
			assert.True(t, k.Valid(), "type %s: unknown stat %s", typ, k)
		}
		for _, k := range pool.Mandatory {
			assert.NotContains(t, pool.Possible, k, "type %s: %s listed twice", typ, k)
		}
	}
}

func TestCanEquip(t *testing.T) {
	assert.True(t, CanEquip(TypeSword, SlotWeapon))
	assert.True(t, CanEquip(TypeRing, SlotRing1))
	assert.True(t, CanEquip(TypeRing, SlotRing2))
	assert.False(t, CanEquip(TypeRing, SlotNeck))
	assert.False(t, CanEquip(TypeShield, SlotWeapon))
	assert.False(t, CanEquip(EquipmentType("wand"), SlotWeapon))
}

func TestStatDef_LevelFactor(t *testing.T) {
	capped := StatDef{Capped: true}
	assert.InDelta(t, 1.5, capped.LevelFactor(100), 1e-9)
	assert.InDelta(t, 2.0, capped.LevelFactor(500), 1e-9)

	uncapped := StatDef{}
	assert.InDelta(t, 4.0, uncapped.LevelFactor(100), 1e-9)
}

func TestStatDef_Round(t *testing.T) {
	assert.Equal(t, 4.0, StatDef{}.Round(3.6))
	assert.Equal(t, 1.24, StatDef{Decimals: 2}.Round(1.2351))
}

func TestFractionalStats(t *testing.T) {
	for _, k := range []StatKey{StatCritChance, StatCritDamage, StatAttackSpeed} {
		def, ok := GetStatDef(k)
		assert.True(t, ok)
		assert.Positive(t, def.Decimals, "stat %s", k)
	}
	def, _ := GetStatDef(StatDamage)
	assert.Zero(t, def.Decimals)
}

func TestUpgradeDef_Cost(t *testing.T) {
	def, ok := GetUpgradeDef(UpgradeDamage)
	assert.True(t, ok)
	assert.Equal(t, int64(10), def.Cost(0))
	assert.Equal(t, int64(11), def.Cost(1))  // 11.5
	assert.Equal(t, int64(40), def.Cost(10)) // 10 × 1.15^10 ≈ 40.46

	_, ok = GetUpgradeDef("teleport")
	assert.False(t, ok)
}

func TestExpCurve(t *testing.T) {
	assert.Equal(t, int64(60), ExpToNextLevelIncrement(2))
	assert.Equal(t, int64(70), KillExp(10))
	assert.Equal(t, int64(60), KillGold(10))
}

func TestSkillDefs_PrerequisitesExist(t *testing.T) {
	for _, def := range SkillDefs() {
		if def.Requires == "" {
			continue
		}
		_, ok := GetSkillDef(def.Requires)
		assert.True(t, ok, "skill %s requires unknown %s", def.ID, def.Requires)
	}
}
