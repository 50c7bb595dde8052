package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/model"
)

func TestUnlock(t *testing.T) {
	h := model.NewHero()
	h.Crystals = 3

	require.NoError(t, Unlock(h, "sharpened_blade"))

	assert.Equal(t, int64(2), h.Crystals)
	assert.True(t, h.HasSkill("sharpened_blade"))
	assert.InDelta(t, 5, h.SkillBonuses.Get(data.StatDamage), 1e-9)

	require.NoError(t, Unlock(h, "precision"))
	assert.Zero(t, h.Crystals)
	assert.InDelta(t, 3, h.SkillBonuses.Get(data.StatCritChance), 1e-9)
	assert.InDelta(t, 5, h.SkillBonuses.Get(data.StatDamage), 1e-9)
}

func TestUnlock_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(h *model.Hero)
		skill   string
		wantErr error
	}{
		{"unknown", func(*model.Hero) {}, "fireball", ErrUnknownSkill},
		{"no prerequisite", func(*model.Hero) {}, "precision", ErrMissingPrerequisite},
		{"too poor", func(h *model.Hero) { h.Crystals = 0 }, "vigor", ErrNotEnoughCrystals},
		{"already unlocked", func(h *model.Hero) { h.UnlockedSkills = []string{"vigor"} }, "vigor", ErrSkillUnlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := model.NewHero()
			h.Crystals = 10
			tt.setup(h)
			before := h.Clone()

			err := Unlock(h, tt.skill)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, h)
		})
	}
}

func TestAvailable(t *testing.T) {
	h := model.NewHero()
	h.UnlockedSkills = []string{"thick_skin"}

	ids := make(map[string]bool)
	for _, def := range Available(h) {
		ids[def.ID] = true
	}

	assert.True(t, ids["bulwark"], "prerequisite met")
	assert.False(t, ids["thick_skin"], "already unlocked")
	assert.False(t, ids["executioner"], "prerequisite missing")
	assert.True(t, ids["vigor"])
}

func TestBonuses_SkipsUnknown(t *testing.T) {
	b := Bonuses([]string{"vigor", "ghost", "regeneration"})

	assert.InDelta(t, 25, b.Get(data.StatHealth), 1e-9)
	assert.InDelta(t, 3, b.Get(data.StatLifeRegen), 1e-9)
	assert.Len(t, b, 2)
}

func TestChoosePath(t *testing.T) {
	h := model.NewHero()
	h.Level = 10

	err := ChoosePath(h, data.PathBerserker)
	require.ErrorIs(t, err, ErrPathLocked)
	assert.Equal(t, data.PathNone, h.Path)
	assert.False(t, CanChoosePath(h))

	h.HighestZone = data.PathUnlockZone
	assert.True(t, CanChoosePath(h))
	require.NoError(t, ChoosePath(h, data.PathBerserker))

	assert.Equal(t, data.PathBerserker, h.Path)
	// 5 flat + 0.5 × level 10
	assert.InDelta(t, 10, h.PathBonuses.Get(data.StatDamage), 1e-9)
	assert.InDelta(t, 1, h.PathBonuses.Get(data.StatLifeSteal), 1e-9)

	require.ErrorIs(t, ChoosePath(h, data.PathGuardian), ErrPathChosen)
	require.ErrorIs(t, ChoosePath(h, data.PathID("necromancer")), ErrUnknownPath)
	assert.Equal(t, data.PathBerserker, h.Path)
}

func TestRefreshPath_ScalesWithLevel(t *testing.T) {
	h := model.NewHero()
	h.Path = data.PathGuardian
	h.Level = 4
	RefreshPath(h)
	assert.InDelta(t, 20, h.PathBonuses.Get(data.StatHealth), 1e-9)

	h.Level = 5
	RefreshPath(h)
	assert.InDelta(t, 25, h.PathBonuses.Get(data.StatHealth), 1e-9)
}

func TestPathBonuses_None(t *testing.T) {
	assert.Empty(t, PathBonuses(data.PathNone, 50))
}
