package model

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/udisondev/idlerpg/internal/data"
)

var (
	ErrInventoryFull = errors.New("inventory is full")
	ErrItemNotFound  = errors.New("item not found")
	ErrInvalidSlot   = errors.New("item does not fit slot")
	ErrSlotEmpty     = errors.New("slot is empty")
)

// DefaultInventoryCapacity is the backpack size when none is configured.
const DefaultInventoryCapacity = 100

// Inventory хранит рюкзак (backpack) и экипировку героя.
// Items live either in the backpack or in exactly one paperdoll slot.
type Inventory struct {
	capacity int
	items    []*Item
	equipped map[data.Slot]*Item

	mu sync.RWMutex
}

// NewInventory создаёт пустой инвентарь; capacity <= 0 uses the default.
func NewInventory(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultInventoryCapacity
	}
	return &Inventory{
		capacity: capacity,
		equipped: make(map[data.Slot]*Item),
	}
}

// Capacity returns the backpack size.
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Count returns the number of backpack items (equipped items excluded).
func (inv *Inventory) Count() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.items)
}

// Add puts an item into the backpack.
func (inv *Inventory) Add(item *Item) error {
	if item == nil {
		return fmt.Errorf("adding item: %w", ErrItemNotFound)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if len(inv.items) >= inv.capacity {
		return ErrInventoryFull
	}
	inv.items = append(inv.items, item)
	return nil
}

// Remove takes an item out of the backpack.
func (inv *Inventory) Remove(id string) (*Item, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	idx := inv.indexOf(id)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	item := inv.items[idx]
	inv.items = slices.Delete(inv.items, idx, idx+1)
	return item, nil
}

// Get finds an item in the backpack or on the paperdoll (nil if absent).
func (inv *Inventory) Get(id string) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if idx := inv.indexOf(id); idx >= 0 {
		return inv.items[idx]
	}
	for _, item := range inv.equipped {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Items returns the backpack contents in insertion order.
func (inv *Inventory) Items() []*Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return slices.Clone(inv.items)
}

// Equipped returns the item in slot (nil if empty).
func (inv *Inventory) Equipped(slot data.Slot) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.equipped[slot]
}

// EquippedItems returns a copy of the paperdoll.
func (inv *Inventory) EquippedItems() map[data.Slot]*Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make(map[data.Slot]*Item, len(inv.equipped))
	for slot, item := range inv.equipped {
		out[slot] = item
	}
	return out
}

// Equip moves a backpack item into slot. An item already in the slot goes
// back to the backpack in the freed position.
func (inv *Inventory) Equip(id string, slot data.Slot) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	idx := inv.indexOf(id)
	if idx < 0 {
		return ErrItemNotFound
	}
	item := inv.items[idx]
	if !data.CanEquip(item.Type, slot) {
		return fmt.Errorf("equipping %s into %s: %w", item.Type, slot, ErrInvalidSlot)
	}

	if prev := inv.equipped[slot]; prev != nil {
		inv.items[idx] = prev
	} else {
		inv.items = slices.Delete(inv.items, idx, idx+1)
	}
	inv.equipped[slot] = item
	return nil
}

// Unequip moves the item in slot back to the backpack.
func (inv *Inventory) Unequip(slot data.Slot) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	item := inv.equipped[slot]
	if item == nil {
		return ErrSlotEmpty
	}
	if len(inv.items) >= inv.capacity {
		return ErrInventoryFull
	}
	delete(inv.equipped, slot)
	inv.items = append(inv.items, item)
	return nil
}

// EquipmentBonuses sums the stats of every equipped item.
func (inv *Inventory) EquipmentBonuses() BonusMap {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	bonuses := make(BonusMap)
	for _, item := range inv.equipped {
		bonuses.Merge(item.Stats)
	}
	return bonuses
}

// RemoveBelow destroys every item (backpack and paperdoll) ranked below r
// and returns what was removed.
func (inv *Inventory) RemoveBelow(r data.ItemRarity) []*Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	var removed []*Item
	kept := inv.items[:0]
	for _, item := range inv.items {
		if item.Rarity.AtLeast(r) {
			kept = append(kept, item)
			continue
		}
		removed = append(removed, item)
	}
	clear(inv.items[len(kept):])
	inv.items = kept

	for slot, item := range inv.equipped {
		if !item.Rarity.AtLeast(r) {
			removed = append(removed, item)
			delete(inv.equipped, slot)
		}
	}
	return removed
}

// Restore replaces the whole content, used when hydrating from a snapshot.
// Items over capacity and items that do not fit their slot are dropped.
func (inv *Inventory) Restore(items []*Item, equipped map[data.Slot]*Item) (dropped int) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	inv.items = nil
	inv.equipped = make(map[data.Slot]*Item, len(equipped))
	for slot, item := range equipped {
		if item == nil || !data.CanEquip(item.Type, slot) {
			dropped++
			continue
		}
		inv.equipped[slot] = item
	}
	for _, item := range items {
		if item == nil || len(inv.items) >= inv.capacity {
			dropped++
			continue
		}
		inv.items = append(inv.items, item)
	}
	return dropped
}

func (inv *Inventory) indexOf(id string) int {
	return slices.IndexFunc(inv.items, func(it *Item) bool { return it.ID == id })
}
