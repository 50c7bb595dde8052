package data

// EquipmentType is the category an item is generated for.
// Drops pick a type uniformly; which slot it goes into is decided at equip time.
type EquipmentType string

const (
	TypeHelmet EquipmentType = "helmet"
	TypeArmor  EquipmentType = "armor"
	TypeBelt   EquipmentType = "belt"
	TypePants  EquipmentType = "pants"
	TypeBoots  EquipmentType = "boots"
	TypeSword  EquipmentType = "sword"
	TypeAxe    EquipmentType = "axe"
	TypeMace   EquipmentType = "mace"
	TypeShield EquipmentType = "shield"
	TypeGloves EquipmentType = "gloves"
	TypeAmulet EquipmentType = "amulet"
	TypeRing   EquipmentType = "ring"
)

// equipmentTypes keeps the drop order stable for seeded rolls.
var equipmentTypes = []EquipmentType{
	TypeHelmet, TypeArmor, TypeBelt, TypePants, TypeBoots,
	TypeSword, TypeAxe, TypeMace, TypeShield, TypeGloves,
	TypeAmulet, TypeRing,
}

// EquipmentTypes returns all equipment categories.
func EquipmentTypes() []EquipmentType {
	out := make([]EquipmentType, len(equipmentTypes))
	copy(out, equipmentTypes)
	return out
}

// Valid reports whether t is a known equipment category.
func (t EquipmentType) Valid() bool {
	_, ok := typeSlots[t]
	return ok
}

// Slot is a paperdoll position on the hero.
type Slot string

const (
	SlotHead    Slot = "head"
	SlotChest   Slot = "chest"
	SlotBelt    Slot = "belt"
	SlotLegs    Slot = "legs"
	SlotFeet    Slot = "feet"
	SlotWeapon  Slot = "weapon"
	SlotOffhand Slot = "offhand"
	SlotHands   Slot = "hands"
	SlotNeck    Slot = "neck"
	SlotRing1   Slot = "ring1"
	SlotRing2   Slot = "ring2"
)

// Slots lists every paperdoll slot in display order.
var Slots = []Slot{
	SlotHead, SlotChest, SlotBelt, SlotLegs, SlotFeet,
	SlotWeapon, SlotOffhand, SlotHands, SlotNeck, SlotRing1, SlotRing2,
}

// SlotNames: человекочитаемые названия слотов (для логов).
var SlotNames = map[Slot]string{
	SlotHead:    "Head",
	SlotChest:   "Chest",
	SlotBelt:    "Belt",
	SlotLegs:    "Legs",
	SlotFeet:    "Feet",
	SlotWeapon:  "Weapon",
	SlotOffhand: "Off Hand",
	SlotHands:   "Hands",
	SlotNeck:    "Neck",
	SlotRing1:   "Left Ring",
	SlotRing2:   "Right Ring",
}

var typeSlots = map[EquipmentType][]Slot{
	TypeHelmet: {SlotHead},
	TypeArmor:  {SlotChest},
	TypeBelt:   {SlotBelt},
	TypePants:  {SlotLegs},
	TypeBoots:  {SlotFeet},
	TypeSword:  {SlotWeapon},
	TypeAxe:    {SlotWeapon},
	TypeMace:   {SlotWeapon},
	TypeShield: {SlotOffhand},
	TypeGloves: {SlotHands},
	TypeAmulet: {SlotNeck},
	TypeRing:   {SlotRing1, SlotRing2},
}

// SlotsFor returns the slots an item of type t fits into (nil for unknown types).
func SlotsFor(t EquipmentType) []Slot {
	return typeSlots[t]
}

// CanEquip reports whether an item of type t may be placed in slot s.
func CanEquip(t EquipmentType, s Slot) bool {
	for _, allowed := range typeSlots[t] {
		if allowed == s {
			return true
		}
	}
	return false
}
