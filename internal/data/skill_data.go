package data

// SkillDef is a crystal-priced node of the skill tree.
type SkillDef struct {
	ID       string
	Name     string
	Cost     int64 // crystals
	Requires string
	Bonuses  map[StatKey]float64
}

var skillDefs = []SkillDef{
	{ID: "sharpened_blade", Name: "Sharpened Blade", Cost: 1, Bonuses: map[StatKey]float64{StatDamage: 5}},
	{ID: "thick_skin", Name: "Thick Skin", Cost: 1, Bonuses: map[StatKey]float64{StatArmor: 5}},
	{ID: "vigor", Name: "Vigor", Cost: 1, Bonuses: map[StatKey]float64{StatHealth: 25}},
	{ID: "precision", Name: "Precision", Cost: 2, Requires: "sharpened_blade", Bonuses: map[StatKey]float64{StatCritChance: 3}},
	{ID: "quick_hands", Name: "Quick Hands", Cost: 2, Requires: "sharpened_blade", Bonuses: map[StatKey]float64{StatAttackSpeed: 0.1}},
	{ID: "executioner", Name: "Executioner", Cost: 3, Requires: "precision", Bonuses: map[StatKey]float64{StatCritDamage: 0.25}},
	{ID: "bulwark", Name: "Bulwark", Cost: 3, Requires: "thick_skin", Bonuses: map[StatKey]float64{StatBlockChance: 5}},
	{ID: "regeneration", Name: "Regeneration", Cost: 2, Requires: "vigor", Bonuses: map[StatKey]float64{StatLifeRegen: 3}},
	{ID: "vampirism", Name: "Vampirism", Cost: 4, Requires: "regeneration", Bonuses: map[StatKey]float64{StatLifeSteal: 2}},
	{ID: "elemental_attunement", Name: "Elemental Attunement", Cost: 3, Bonuses: map[StatKey]float64{
		StatFireDamage: 3, StatColdDamage: 3, StatAirDamage: 3, StatEarthDamage: 3,
	}},
}

// SkillDefs returns the skill tree in display order.
func SkillDefs() []SkillDef {
	out := make([]SkillDef, len(skillDefs))
	copy(out, skillDefs)
	return out
}

// GetSkillDef looks up a skill by id.
func GetSkillDef(id string) (SkillDef, bool) {
	for _, def := range skillDefs {
		if def.ID == id {
			return def, true
		}
	}
	return SkillDef{}, false
}

// PathUnlockZone is the highest zone a hero must have reached to pick a path.
const PathUnlockZone = 25

// PathID identifies a hero path.
type PathID string

const (
	PathNone      PathID = ""
	PathBerserker PathID = "berserker"
	PathGuardian  PathID = "guardian"
	PathSorcerer  PathID = "sorcerer"
)

// PathDef holds flat bonuses plus bonuses multiplied by the hero level.
type PathDef struct {
	ID       PathID
	Name     string
	Bonuses  map[StatKey]float64
	PerLevel map[StatKey]float64
}

var pathDefs = map[PathID]PathDef{
	PathBerserker: {
		ID:       PathBerserker,
		Name:     "Berserker",
		Bonuses:  map[StatKey]float64{StatDamage: 5, StatLifeSteal: 1},
		PerLevel: map[StatKey]float64{StatDamage: 0.5},
	},
	PathGuardian: {
		ID:       PathGuardian,
		Name:     "Guardian",
		Bonuses:  map[StatKey]float64{StatArmor: 10, StatBlockChance: 5},
		PerLevel: map[StatKey]float64{StatHealth: 5},
	},
	PathSorcerer: {
		ID:       PathSorcerer,
		Name:     "Sorcerer",
		Bonuses:  map[StatKey]float64{StatMana: 30, StatManaRegen: 2, StatFireDamage: 3, StatColdDamage: 3},
		PerLevel: map[StatKey]float64{StatFireDamage: 0.25, StatColdDamage: 0.25},
	},
}

// GetPathDef looks up a path.
func GetPathDef(id PathID) (PathDef, bool) {
	def, ok := pathDefs[id]
	return def, ok
}
