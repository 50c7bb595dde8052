package data

// Hero leveling constants.
const (
	// BaseExpToNextLevel is the exp a level 1 hero needs.
	BaseExpToNextLevel = 20
	// StatPointsPerLevel is granted on every level-up.
	StatPointsPerLevel = 3
)

// ExpToNextLevelIncrement returns how much the requirement grows when the hero
// reaches newLevel: level*40 - 20.
func ExpToNextLevelIncrement(newLevel int) int64 {
	return int64(newLevel)*40 - 20
}

// KillExp returns the exp granted for defeating an enemy in zone.
func KillExp(zone int) int64 {
	return 20 + int64(zone)*5
}

// KillGold returns the gold granted for defeating an enemy in zone.
func KillGold(zone int) int64 {
	return 10 + int64(zone)*5
}
