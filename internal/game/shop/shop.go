// Package shop sells gold-priced permanent upgrades.
package shop

import (
	"errors"
	"fmt"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/model"
)

var (
	ErrUnknownUpgrade = errors.New("unknown upgrade")
	ErrNotEnoughGold  = errors.New("not enough gold")
)

// Offer is one upgrade as the hero currently sees it.
type Offer struct {
	Key   data.UpgradeKey `json:"key"`
	Name  string          `json:"name"`
	Level int             `json:"level"`
	Cost  int64           `json:"cost"`
}

// Cost returns the price of the next level of key for hero h.
func Cost(h *model.Hero, key data.UpgradeKey) (int64, error) {
	def, ok := data.GetUpgradeDef(key)
	if !ok {
		return 0, fmt.Errorf("pricing %q: %w", key, ErrUnknownUpgrade)
	}
	return def.Cost(h.UpgradeLevel(key)), nil
}

// Offers lists every upgrade with its current level and next price.
func Offers(h *model.Hero) []Offer {
	defs := data.UpgradeDefs()
	out := make([]Offer, 0, len(defs))
	for _, def := range defs {
		lvl := h.UpgradeLevel(def.Key)
		out = append(out, Offer{Key: def.Key, Name: def.Name, Level: lvl, Cost: def.Cost(lvl)})
	}
	return out
}

// Buy spends gold on the next level of key. On error the hero is untouched.
// The caller recalculates stats afterwards.
func Buy(h *model.Hero, key data.UpgradeKey) (int64, error) {
	cost, err := Cost(h, key)
	if err != nil {
		return 0, err
	}
	if h.Gold < cost {
		return 0, fmt.Errorf("buying %s for %d gold: %w", key, cost, ErrNotEnoughGold)
	}
	h.Gold -= cost
	h.UpgradeLevels[key]++
	return cost, nil
}
