package combat

import "time"

// ArmorReduction returns the fraction of incoming damage absorbed by armor:
// armor/(100+armor). Non-positive armor absorbs nothing.
func ArmorReduction(armor float64) float64 {
	if armor <= 0 {
		return 0
	}
	return armor / (100 + armor)
}

// MitigatedDamage applies armor to a raw enemy hit.
func MitigatedDamage(raw, armor float64) float64 {
	return raw * (1 - ArmorReduction(armor))
}

// HeroAttackCooldown converts attacks per second into the delay between two
// hero swings (1000/attackSpeed ms). Zero means the hero cannot attack.
func HeroAttackCooldown(attackSpeed float64) time.Duration {
	if attackSpeed <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / attackSpeed)
}

// CritDamage returns the damage of a hero swing.
func CritDamage(damage, critMultiplier float64, crit bool) float64 {
	if crit {
		return damage * critMultiplier
	}
	return damage
}

// LifeStealHeal returns the health restored by dealing dealt damage.
func LifeStealHeal(dealt, lifeSteal float64) float64 {
	if lifeSteal <= 0 || dealt <= 0 {
		return 0
	}
	return dealt * lifeSteal / 100
}
