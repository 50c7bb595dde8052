package session

import (
	"errors"
	"log/slog"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/game/skill"
	"github.com/udisondev/idlerpg/internal/model"
)

var ErrNothingToPrestige = errors.New("prestige would grant no souls")

// CalculateSouls returns the souls a prestige would grant now:
// floor(highestZone / 5).
func (s *Session) CalculateSouls() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calculateSouls()
}

func (s *Session) calculateSouls() int64 {
	return int64(s.hero.HighestZone / data.SoulsZoneDivisor)
}

// PerformPrestige trades the run for souls and returns the souls gained.
//
// Run-scoped state is reset: zone, level, exp, gold, primary stats, stat
// points, upgrades, highest zone, prestige progress and every item below
// UNIQUE. Souls, crystals, unlocked skills and the chosen path survive.
func (s *Session) PerformPrestige() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	earned := s.calculateSouls()
	if earned <= 0 {
		return 0, ErrNothingToPrestige
	}

	h := s.hero
	h.Souls += earned
	h.HighestZone = 1
	h.PrestigeProgress = 0
	h.Level = 1
	h.Exp = 0
	h.ExpToNextLevel = data.BaseExpToNextLevel
	h.Gold = 0
	h.Primary = model.PrimaryStats{}
	h.StatPoints = 0
	h.UpgradeLevels = make(map[data.UpgradeKey]int)

	destroyed := s.inv.RemoveBelow(data.ItemUnique)

	skill.RefreshPath(h)
	s.recalculate()
	h.HealFull()

	s.zone = s.startingZone
	s.spawn(s.now())

	slog.Info("prestige performed",
		"soulsEarned", earned,
		"souls", h.Souls,
		"itemsDestroyed", len(destroyed))
	s.submit()
	return earned, nil
}
