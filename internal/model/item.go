package model

import (
	"maps"

	"github.com/udisondev/idlerpg/internal/data"
)

// Item is a generated piece of equipment.
// Stats are rolled once at creation; equipping never changes them.
type Item struct {
	ID     string                   `json:"id"`
	Type   data.EquipmentType       `json:"type"`
	Level  int                      `json:"level"`
	Rarity data.ItemRarity          `json:"rarity"`
	Stats  map[data.StatKey]float64 `json:"stats"`
}

// Stat returns a rolled stat value (0 when absent).
func (i *Item) Stat(k data.StatKey) float64 {
	return i.Stats[k]
}

// SalvageValue returns the gold granted when the item is salvaged.
func (i *Item) SalvageValue() int64 {
	return int64(i.Level) * int64(data.GetItemRarity(i.Rarity).SalvageGold)
}

// Clone returns a deep copy.
func (i *Item) Clone() *Item {
	c := *i
	c.Stats = maps.Clone(i.Stats)
	return &c
}
