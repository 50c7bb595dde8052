// Package session owns one game: the hero, the current enemy, the zone and
// the inventory, plus the combat loop that advances them.
//
// Every exported method takes the session lock, so the host may call it from
// any goroutine; within one call the state changes atomically.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/game/combat"
	"github.com/udisondev/idlerpg/internal/game/loot"
	"github.com/udisondev/idlerpg/internal/game/skill"
	"github.com/udisondev/idlerpg/internal/game/stats"
	"github.com/udisondev/idlerpg/internal/model"
	"github.com/udisondev/idlerpg/internal/save"
	"github.com/udisondev/idlerpg/internal/spawn"
)

// Random is the randomness source shared by spawning, loot and combat.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// Saver receives snapshots for asynchronous persistence.
type Saver interface {
	Submit(*save.Snapshot)
}

// Options configures a new Session.
type Options struct {
	Rand              Random
	Now               func() time.Time // defaults to time.Now
	StartingZone      int              // defaults to 1
	InventoryCapacity int              // defaults to model.DefaultInventoryCapacity
	Saver             Saver            // optional
}

// Session is the progression controller of one hero.
type Session struct {
	mu sync.Mutex

	hero  *model.Hero
	enemy *model.Enemy
	zone  int
	inv   *model.Inventory
	kills int64

	loop    *combat.Loop
	enemies *spawn.Generator
	drops   *loot.Resolver

	startingZone int
	now          func() time.Time
	saver        Saver
}

// New creates an idle session with a fresh hero.
func New(opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.StartingZone < 1 {
		opts.StartingZone = 1
	}

	s := &Session{
		hero:         model.NewHero(),
		zone:         opts.StartingZone,
		inv:          model.NewInventory(opts.InventoryCapacity),
		enemies:      spawn.NewGenerator(opts.Rand, opts.Now),
		drops:        loot.NewResolver(opts.Rand, loot.NewItemGenerator(opts.Rand)),
		startingZone: opts.StartingZone,
		now:          opts.Now,
		saver:        opts.Saver,
	}
	s.loop = combat.NewLoop(s.hero, func() *model.Enemy { return s.enemy }, opts.Rand)
	s.loop.SetEnemyDefeatedFunc(s.onEnemyDefeated)
	s.loop.SetHeroDefeatedFunc(s.onHeroDefeated)

	s.recalculate()
	s.hero.HealFull()
	s.spawn(s.now())
	return s
}

// SetHitObserver forwards every combat hit to fn (nil disables).
func (s *Session) SetHitObserver(fn func(combat.HitResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loop.SetHitObserver(fn)
}

// Tick advances combat to now. It implements tick.Ticker.
func (s *Session) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loop.Tick(now)
}

// Start begins (or resumes) fighting.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked()
}

// Stop ends the run: the loop goes idle, the zone resets to the starting zone
// and a fresh enemy is spawned.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Toggle starts an idle session or stops a running one and returns the new state.
func (s *Session) Toggle() combat.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loop.Running() {
		s.stopLocked()
	} else {
		s.startLocked()
	}
	return s.loop.State()
}

func (s *Session) startLocked() {
	if s.loop.Running() {
		return
	}
	now := s.now()
	if s.hero.IsDead() {
		s.hero.HealFull()
	}
	if s.enemy == nil || s.enemy.IsDead() {
		s.spawn(now)
	}
	s.enemy.LastAttack = now
	s.loop.Start(now)
	slog.Info("run started", "zone", s.zone, "enemy", s.enemy.Name)
}

func (s *Session) stopLocked() {
	if !s.loop.Running() {
		return
	}
	s.loop.Stop()
	s.zone = s.startingZone
	s.spawn(s.now())
	slog.Info("run stopped", "highestZone", s.hero.HighestZone)
	s.submit()
}

// onEnemyDefeated runs inside Tick with the lock held.
func (s *Session) onEnemyDefeated(enemy *model.Enemy, now time.Time) {
	h := s.hero
	zone := s.zone
	s.kills++

	h.Gold += data.KillGold(zone)
	if levels := h.GainExp(data.KillExp(zone)); levels > 0 {
		skill.RefreshPath(h)
		s.recalculate()
		h.HealFull()
		slog.Info("level up", "level", h.Level, "statPoints", h.StatPoints)
	}
	h.PrestigeProgress = int64(zone / data.PrestigeProgressZoneDivisor)

	if item := s.drops.Resolve(enemy); item != nil {
		if err := s.inv.Add(item); err != nil {
			slog.Warn("loot discarded", "item", item.ID, "type", item.Type, "rarity", item.Rarity, "error", err)
		} else {
			slog.Info("loot dropped", "item", item.ID, "type", item.Type, "rarity", item.Rarity, "level", item.Level)
		}
	}

	s.zone++
	if s.zone > h.HighestZone {
		h.HighestZone = s.zone
		h.Crystals += data.CrystalsPerNewZone
	}
	s.spawn(now)
	s.submit()
}

// onHeroDefeated runs inside Tick with the lock held; the loop is already idle.
func (s *Session) onHeroDefeated(now time.Time) {
	slog.Info("hero defeated", "zone", s.zone, "enemy", s.enemy.Name)
	s.zone = s.startingZone
	s.hero.HealFull()
	s.spawn(now)
	s.submit()
}

func (s *Session) spawn(now time.Time) {
	s.enemy = s.enemies.Generate(s.zone)
	s.enemy.LastAttack = now
}

// recalculate refreshes the hero's derived stats from its inputs.
func (s *Session) recalculate() {
	s.hero.EquipmentBonuses = s.inv.EquipmentBonuses()
	stats.Recalculate(s.hero)
}

func (s *Session) submit() {
	if s.saver == nil {
		return
	}
	s.saver.Submit(s.snapshotLocked())
}
