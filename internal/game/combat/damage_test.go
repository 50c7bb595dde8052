package combat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMitigatedDamage(t *testing.T) {
	tests := []struct {
		name  string
		raw   float64
		armor float64
		want  float64
	}{
		{"no armor", 50, 0, 50},
		{"armor 100 halves", 50, 100, 25},
		{"armor 300", 40, 300, 10},
		{"negative armor ignored", 50, -20, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MitigatedDamage(tt.raw, tt.armor), 1e-9)
		})
	}
}

func TestArmorReduction_NeverReachesOne(t *testing.T) {
	for _, armor := range []float64{1, 10, 100, 1e3, 1e6} {
		r := ArmorReduction(armor)
		assert.Greater(t, r, 0.0)
		assert.Less(t, r, 1.0)
	}
}

func TestHeroAttackCooldown(t *testing.T) {
	assert.Equal(t, time.Second, HeroAttackCooldown(1))
	assert.Equal(t, 500*time.Millisecond, HeroAttackCooldown(2))
	assert.Equal(t, 200*time.Millisecond, HeroAttackCooldown(5))
	assert.Zero(t, HeroAttackCooldown(0))
}

func TestCritDamage(t *testing.T) {
	assert.InDelta(t, 15, CritDamage(10, 1.5, true), 1e-9)
	assert.InDelta(t, 10, CritDamage(10, 1.5, false), 1e-9)
}

func TestLifeStealHeal(t *testing.T) {
	assert.InDelta(t, 2, LifeStealHeal(100, 2), 1e-9)
	assert.Zero(t, LifeStealHeal(100, 0))
	assert.Zero(t, LifeStealHeal(0, 5))
}
