package store

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInsufficientInventory indicates not enough of a flavor is left for the order.
var ErrInsufficientInventory = errors.New("insufficient inventory")

// ErrUnknownSize indicates no recipe exists for the requested size.
var ErrUnknownSize = errors.New("unknown size")

// Recipes maps a size to the quantity of flavor one order consumes.
type Recipes map[string]float64

// DefaultRecipes is the fixed per-size recipe table.
func DefaultRecipes() Recipes {
	return Recipes{"large": 1, "medium": 0.5, "small": 0.25}
}

// Required returns the quantity consumed by one order of size.
func (r Recipes) Required(size string) (float64, error) {
	qty, ok := r[size]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSize, size)
	}
	return qty, nil
}

// DefaultStock is the opening inventory in lbs per flavor.
func DefaultStock() map[string]float64 {
	return map[string]float64{"Vanilla": 5, "Chocolate": 2, "Strawberry": 1}
}

// Inventory tracks the remaining quantity of each flavor. Quantities never go negative.
type Inventory struct {
	stock map[string]float64
}

func NewInventory(stock map[string]float64) *Inventory {
	inv := &Inventory{stock: make(map[string]float64, len(stock))}
	for flavor, qty := range stock {
		if qty < 0 {
			qty = 0
		}
		inv.stock[flavor] = qty
	}
	return inv
}

// Available returns the remaining quantity of flavor. Unknown flavors have none.
func (inv *Inventory) Available(flavor string) float64 {
	return inv.stock[flavor]
}

// HasEnough reports whether qty of flavor can be deducted.
func (inv *Inventory) HasEnough(flavor string, qty float64) bool {
	return inv.Available(flavor) >= qty
}

// Deduct removes qty of flavor. Returns ErrInsufficientInventory if not enough.
func (inv *Inventory) Deduct(flavor string, qty float64) error {
	if !inv.HasEnough(flavor, qty) {
		return fmt.Errorf("%w: %s has %s, need %s", ErrInsufficientInventory, flavor, formatQty(inv.Available(flavor)), formatQty(qty))
	}
	inv.stock[flavor] -= qty
	return nil
}

// Flavors returns the stocked flavor names in sorted order.
func (inv *Inventory) Flavors() []string {
	flavors := make([]string, 0, len(inv.stock))
	for flavor := range inv.stock {
		flavors = append(flavors, flavor)
	}
	sort.Strings(flavors)
	return flavors
}

// Snapshot returns a copy of the current stock.
func (inv *Inventory) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(inv.stock))
	for flavor, qty := range inv.stock {
		out[flavor] = qty
	}
	return out
}
