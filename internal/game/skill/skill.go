// Package skill manages the crystal-priced skill tree and hero paths.
package skill

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/model"
)

var (
	ErrUnknownSkill        = errors.New("unknown skill")
	ErrSkillUnlocked       = errors.New("skill already unlocked")
	ErrMissingPrerequisite = errors.New("prerequisite skill not unlocked")
	ErrNotEnoughCrystals   = errors.New("not enough crystals")
	ErrUnknownPath         = errors.New("unknown path")
	ErrPathLocked          = errors.New("path not unlocked yet")
	ErrPathChosen          = errors.New("path already chosen")
)

// Unlock spends crystals on skill id and refreshes the hero's skill bonuses.
// On error the hero is untouched. The caller recalculates stats afterwards.
func Unlock(h *model.Hero, id string) error {
	def, ok := data.GetSkillDef(id)
	if !ok {
		return fmt.Errorf("unlocking %q: %w", id, ErrUnknownSkill)
	}
	if h.HasSkill(id) {
		return fmt.Errorf("unlocking %q: %w", id, ErrSkillUnlocked)
	}
	if def.Requires != "" && !h.HasSkill(def.Requires) {
		return fmt.Errorf("unlocking %q requires %q: %w", id, def.Requires, ErrMissingPrerequisite)
	}
	if h.Crystals < def.Cost {
		return fmt.Errorf("unlocking %q for %d crystals: %w", id, def.Cost, ErrNotEnoughCrystals)
	}

	h.Crystals -= def.Cost
	h.UnlockedSkills = append(h.UnlockedSkills, id)
	h.SkillBonuses = Bonuses(h.UnlockedSkills)
	return nil
}

// Available lists skills the hero could unlock right now, ignoring price.
func Available(h *model.Hero) []data.SkillDef {
	var out []data.SkillDef
	for _, def := range data.SkillDefs() {
		if h.HasSkill(def.ID) {
			continue
		}
		if def.Requires != "" && !h.HasSkill(def.Requires) {
			continue
		}
		out = append(out, def)
	}
	return out
}

// Bonuses sums the bonus maps of the given skills. Unknown ids contribute nothing.
func Bonuses(ids []string) model.BonusMap {
	out := make(model.BonusMap)
	for _, id := range ids {
		def, ok := data.GetSkillDef(id)
		if !ok {
			slog.Warn("ignoring unknown skill", "skill", id)
			continue
		}
		out.Merge(def.Bonuses)
	}
	return out
}

// PathBonuses returns the bonuses of path at hero level: flat bonuses plus
// perLevel × level. PathNone and unknown paths yield an empty map.
func PathBonuses(path data.PathID, level int) model.BonusMap {
	out := make(model.BonusMap)
	def, ok := data.GetPathDef(path)
	if !ok {
		return out
	}
	out.Merge(def.Bonuses)
	for k, v := range def.PerLevel {
		out[k] += v * float64(level)
	}
	return out
}

// CanChoosePath reports whether h may pick a path now.
func CanChoosePath(h *model.Hero) bool {
	return h.Path == data.PathNone && h.HighestZone >= data.PathUnlockZone
}

// ChoosePath picks the hero's path once. The caller recalculates stats afterwards.
func ChoosePath(h *model.Hero, path data.PathID) error {
	if _, ok := data.GetPathDef(path); !ok {
		return fmt.Errorf("choosing %q: %w", path, ErrUnknownPath)
	}
	if h.Path != data.PathNone {
		return fmt.Errorf("choosing %q over %q: %w", path, h.Path, ErrPathChosen)
	}
	if h.HighestZone < data.PathUnlockZone {
		return fmt.Errorf("choosing %q at zone %d (needs %d): %w", path, h.HighestZone, data.PathUnlockZone, ErrPathLocked)
	}
	h.Path = path
	RefreshPath(h)
	return nil
}

// RefreshPath rebuilds the path bonuses for the hero's current level.
func RefreshPath(h *model.Hero) {
	h.PathBonuses = PathBonuses(h.Path, h.Level)
}
