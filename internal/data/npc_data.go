package data

// Element is the damage flavour of an enemy.
type Element string

const (
	ElementFire  Element = "fire"
	ElementCold  Element = "cold"
	ElementAir   Element = "air"
	ElementEarth Element = "earth"
)

// Elements lists the four enemy elements.
var Elements = []Element{ElementFire, ElementCold, ElementAir, ElementEarth}

// Glyph returns the display prefix of an element.
func (e Element) Glyph() string {
	switch e {
	case ElementFire:
		return "🔥"
	case ElementCold:
		return "❄️"
	case ElementAir:
		return "🌪️"
	case ElementEarth:
		return "🪨"
	default:
		return ""
	}
}

// EnemyNames is the pool enemy display names are drawn from.
var EnemyNames = []string{
	"Goblin", "Skeleton", "Orc", "Troll", "Wraith", "Bandit", "Ghoul",
	"Harpy", "Wyvern", "Cultist", "Golem", "Imp", "Lich", "Minotaur",
}
