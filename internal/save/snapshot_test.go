package save

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/model"
)

func TestParseSnapshot_EmptyObjectGivesDefaults(t *testing.T) {
	s, err := ParseSnapshot([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Zone)
	require.NotNil(t, s.Hero)
	assert.Equal(t, 1, s.Hero.Level)
	assert.Equal(t, int64(data.BaseExpToNextLevel), s.Hero.ExpToNextLevel)
	assert.NotNil(t, s.Hero.UpgradeLevels)
	assert.Empty(t, s.Inventory.Items)
}

func TestParseSnapshot_PartialHeroKeepsDefaults(t *testing.T) {
	s, err := ParseSnapshot([]byte(`{"zone":7,"hero":{"gold":42,"primaryStats":{"strength":3}}}`))
	require.NoError(t, err)

	assert.Equal(t, 7, s.Zone)
	assert.Equal(t, int64(42), s.Hero.Gold)
	assert.Equal(t, 3, s.Hero.Primary.Strength)
	assert.Equal(t, 1, s.Hero.Level)
	assert.Equal(t, int64(data.BaseExpToNextLevel), s.Hero.ExpToNextLevel)
}

func TestParseSnapshot_IgnoresUnknownFields(t *testing.T) {
	s, err := ParseSnapshot([]byte(`{"zone":3,"theme":"dark","hero":{"level":4,"pet":"cat"}}`))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Zone)
	assert.Equal(t, 4, s.Hero.Level)
}

func TestParseSnapshot_RepairsInvalidValues(t *testing.T) {
	payload := []byte(`{
		"zone": -4,
		"hero": {
			"level": 0,
			"gold": -10,
			"statPoints": -1,
			"expToNextLevel": 0,
			"upgradeLevels": {"damage": 2, "teleport": 1, "armor": -3},
			"unlockedSkills": ["vigor", "vigor", "fireball"],
			"path": "necromancer"
		},
		"inventory": {
			"items": [
				{"id": "a", "type": "sword", "level": 0, "rarity": "SHINY"},
				{"id": "", "type": "ring"},
				{"id": "b", "type": "wand"},
				null
			],
			"equipped": {"head": {"id": "c", "type": "unknown"}}
		}
	}`)

	s, err := ParseSnapshot(payload)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Zone)
	h := s.Hero
	assert.Equal(t, 1, h.Level)
	assert.Zero(t, h.Gold)
	assert.Zero(t, h.StatPoints)
	assert.Equal(t, int64(data.BaseExpToNextLevel), h.ExpToNextLevel)
	assert.Equal(t, map[data.UpgradeKey]int{data.UpgradeDamage: 2}, h.UpgradeLevels)
	assert.Equal(t, []string{"vigor"}, h.UnlockedSkills)
	assert.Equal(t, data.PathNone, h.Path)

	require.Len(t, s.Inventory.Items, 1)
	it := s.Inventory.Items[0]
	assert.Equal(t, "a", it.ID)
	assert.Equal(t, 1, it.Level)
	assert.Equal(t, data.ItemNormal, it.Rarity)
	assert.NotNil(t, it.Stats)
	assert.Empty(t, s.Inventory.Equipped)
}

func TestParseSnapshot_Malformed(t *testing.T) {
	_, err := ParseSnapshot([]byte(`{"zone":`))
	assert.Error(t, err)
}

func TestSnapshot_NormalizeNilHero(t *testing.T) {
	s := &Snapshot{}
	assert.Equal(t, 1, s.Normalize())
	assert.NotNil(t, s.Hero)
	assert.Equal(t, 1, s.Zone)
}

func TestSnapshot_NormalizeKeepsValidItems(t *testing.T) {
	sword := &model.Item{ID: "s1", Type: data.TypeSword, Level: 3, Rarity: data.ItemRare,
		Stats: map[data.StatKey]float64{data.StatDamage: 7}}
	s := NewSnapshot()
	s.Inventory.Equipped = map[data.Slot]*model.Item{data.SlotWeapon: sword}

	assert.Zero(t, s.Normalize())
	assert.Same(t, sword, s.Inventory.Equipped[data.SlotWeapon])
}
