package game

import (
	"sort"
	"strings"
)

// Inventory is the ordered list of collected item names. It only ever
// grows; insertion order is preserved internally and display order is
// lexicographic.
type Inventory []string

// Add appends an item name.
func (inv *Inventory) Add(name string) {
	*inv = append(*inv, name)
}

// Has reports whether an item name has been collected. Matching is
// exact.
func (inv Inventory) Has(name string) bool {
	for _, item := range inv {
		if item == name {
			return true
		}
	}
	return false
}

// Sorted returns a copy of the item names in display order.
func (inv Inventory) Sorted() []string {
	out := make([]string, len(inv))
	copy(out, inv)
	sort.Strings(out)
	return out
}

// String renders the sorted inventory for display, or "Empty".
func (inv Inventory) String() string {
	if len(inv) == 0 {
		return "Empty"
	}
	return strings.Join(inv.Sorted(), ", ")
}
