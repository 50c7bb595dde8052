// Package combat runs the hero versus enemy exchange.
//
// The loop owns no timers: the host calls Tick with the current time at a
// fixed rate. Hero and enemy attack on independent cooldowns, so both may
// fire within the same tick.
package combat

import (
	"log/slog"
	"time"

	"github.com/udisondev/idlerpg/internal/model"
	"github.com/udisondev/idlerpg/internal/tick"
)

// RegenInterval is the minimum time between two regeneration pulses.
const RegenInterval = time.Second

// Random is the subset of *rand.Rand the loop rolls with.
type Random interface {
	Float64() float64
}

// State of the combat loop.
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	default:
		return "idle"
	}
}

// Side identifies who swung in a HitResult.
type Side int

const (
	SideHero Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "hero"
}

// HitResult содержит результат одной атаки для наблюдения в тестах и логах.
type HitResult struct {
	Attacker Side
	Damage   float64 // after crit or armor, 0 when blocked
	Crit     bool
	Blocked  bool
	Healed   float64 // life steal
	Killed   bool
}

// Loop is the combat state machine.
type Loop struct {
	hero  *model.Hero
	enemy func() *model.Enemy
	rng   Random

	state          State
	lastHeroAttack time.Time
	lastRegen      time.Time

	onEnemyDefeated func(enemy *model.Enemy, now time.Time)
	onHeroDefeated  func(now time.Time)

	// hitObserver получает результат каждой атаки (nil в production).
	hitObserver func(HitResult)
}

// NewLoop creates an idle loop for hero. enemy returns the current opponent
// and is re-read after every defeat.
func NewLoop(hero *model.Hero, enemy func() *model.Enemy, rng Random) *Loop {
	return &Loop{
		hero:  hero,
		enemy: enemy,
		rng:   rng,
	}
}

// SetEnemyDefeatedFunc sets the callback run when the current enemy dies.
// The callback is expected to replace the enemy.
func (l *Loop) SetEnemyDefeatedFunc(fn func(enemy *model.Enemy, now time.Time)) {
	l.onEnemyDefeated = fn
}

// SetHeroDefeatedFunc sets the callback run after the hero dies; the loop is
// already idle when it runs.
func (l *Loop) SetHeroDefeatedFunc(fn func(now time.Time)) {
	l.onHeroDefeated = fn
}

// SetHitObserver sets callback for observing attack results.
func (l *Loop) SetHitObserver(fn func(HitResult)) {
	l.hitObserver = fn
}

// SetHero swaps the hero the loop fights with (used after a restore).
func (l *Loop) SetHero(h *model.Hero) {
	l.hero = h
}

// State returns the current state.
func (l *Loop) State() State {
	return l.state
}

// Running reports whether the loop is in StateRunning.
func (l *Loop) Running() bool {
	return l.state == StateRunning
}

// Start moves the loop to Running. Cooldowns restart from now.
func (l *Loop) Start(now time.Time) {
	if l.state == StateRunning {
		return
	}
	l.state = StateRunning
	l.lastHeroAttack = now
	l.lastRegen = now
}

// Stop moves the loop to Idle.
func (l *Loop) Stop() {
	l.state = StateIdle
}

// Tick advances combat to now. Idle loops ignore ticks.
func (l *Loop) Tick(now time.Time) {
	if l.state != StateRunning {
		return
	}
	if l.hero == nil {
		slog.Warn("combat tick without hero")
		return
	}
	enemy := l.enemy()
	if enemy == nil {
		slog.Warn("combat tick without enemy")
		return
	}

	if l.heroReady(now) {
		l.heroAttack(enemy, now)
		if enemy.IsDead() {
			if l.onEnemyDefeated != nil {
				l.onEnemyDefeated(enemy, now)
			}
			if l.state != StateRunning {
				return
			}
			enemy = l.enemy()
			if enemy == nil {
				slog.Warn("no enemy after defeat")
				return
			}
		}
	}

	if !enemy.IsDead() && now.Sub(enemy.LastAttack) >= enemy.AttackCooldown() {
		l.enemyAttack(enemy, now)
		if l.hero.IsDead() {
			l.state = StateIdle
			if l.onHeroDefeated != nil {
				l.onHeroDefeated(now)
			}
			return
		}
	}

	if now.Sub(l.lastRegen) >= RegenInterval {
		l.lastRegen = now
		l.hero.Heal(l.hero.Stats.LifeRegen, l.hero.Stats.ManaRegen)
	}
}

func (l *Loop) heroReady(now time.Time) bool {
	cd := HeroAttackCooldown(l.hero.Stats.AttackSpeed)
	return cd > 0 && now.Sub(l.lastHeroAttack) >= cd
}

func (l *Loop) heroAttack(enemy *model.Enemy, now time.Time) {
	l.lastHeroAttack = now
	s := &l.hero.Stats

	crit := l.rng.Float64()*100 < s.CritChance
	dealt := CritDamage(s.Damage, s.CritDamage, crit)
	killed := enemy.TakeDamage(dealt)

	healed := LifeStealHeal(dealt, s.LifeSteal)
	if healed > 0 {
		l.hero.Heal(healed, 0)
	}

	l.observe(HitResult{Attacker: SideHero, Damage: dealt, Crit: crit, Healed: healed, Killed: killed})

	if tick.IsDebugEnabled() {
		slog.Debug("hero attack",
			"enemy", enemy.Name,
			"damage", dealt,
			"crit", crit,
			"enemyHealth", enemy.CurrentHealth)
	}
}

// enemyAttack rolls block only when the hero has block chance, so heroes
// without it consume no extra randomness.
func (l *Loop) enemyAttack(enemy *model.Enemy, now time.Time) {
	enemy.LastAttack = now
	s := &l.hero.Stats

	if s.BlockChance > 0 && l.rng.Float64()*100 < s.BlockChance {
		l.observe(HitResult{Attacker: SideEnemy, Blocked: true})
		return
	}

	dealt := MitigatedDamage(enemy.Damage, s.Armor)
	killed := l.hero.TakeDamage(dealt)
	l.observe(HitResult{Attacker: SideEnemy, Damage: dealt, Killed: killed})

	if tick.IsDebugEnabled() {
		slog.Debug("enemy attack",
			"enemy", enemy.Name,
			"damage", dealt,
			"heroHealth", s.CurrentHealth)
	}
}

func (l *Loop) observe(r HitResult) {
	if l.hitObserver != nil {
		l.hitObserver(r)
	}
}
