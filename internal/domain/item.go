package domain

import (
	"fmt"
	"strings"
)

// Rarity represents the rarity tier of an item.
// The ladder order is the upgrade path: COMMON upgrades toward LEGENDARY.
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityGreat     Rarity = "GREAT"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// AllRarities returns the ladder in ascending upgrade order.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityGreat, RarityRare, RarityEpic, RarityLegendary}
}

// ParseRarity maps a persisted token (e.g. "EPIC") back to its Rarity.
// The match is exact: tokens must be upper-case ladder names.
func ParseRarity(s string) (Rarity, bool) {
	r := Rarity(s)
	if r.Valid() {
		return r, true
	}
	return "", false
}

// Valid reports whether the rarity is one of the ladder tiers.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityGreat, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Next returns the rarity one rung up the ladder.
// LEGENDARY is terminal and returns ok=false.
func (r Rarity) Next() (Rarity, bool) {
	switch r {
	case RarityCommon:
		return RarityGreat, true
	case RarityGreat:
		return RarityRare, true
	case RarityRare:
		return RarityEpic, true
	case RarityEpic:
		return RarityLegendary, true
	default:
		return "", false
	}
}

// Item is a value type identifying one kind of inventory entry.
// Two items belong to the same stack iff Name, Rarity and SubLevel are all
// equal, so Item is used directly as a map key.
//
// SubLevel tracks the 0/1/2 refinement of EPIC items on their way to
// LEGENDARY. It stays 0 for every other rarity by convention; construction
// does not enforce this (see DESIGN.md).
type Item struct {
	Name     string
	Rarity   Rarity
	SubLevel int
}

// NewItem creates an item at sub-level 0.
func NewItem(name string, rarity Rarity) Item {
	return NewItemAt(name, rarity, 0)
}

// NewItemAt creates an item with an explicit EPIC sub-level.
func NewItemAt(name string, rarity Rarity, subLevel int) Item {
	return Item{Name: name, Rarity: rarity, SubLevel: subLevel}
}

// Valid reports whether the item can be held in an inventory: it must carry
// a name and a recognized rarity. The zero value is invalid, which stands in
// for the null-item checks of the stack operations.
func (i Item) Valid() bool {
	return i.Name != "" && i.Rarity.Valid()
}

// String renders the display form "<RARITY>[ <subLevel>] <name>". The
// sub-level segment appears only for EPIC items that have progressed.
func (i Item) String() string {
	var sb strings.Builder
	sb.WriteString(string(i.Rarity))
	if i.Rarity == RarityEpic && i.SubLevel > 0 {
		fmt.Fprintf(&sb, " %d", i.SubLevel)
	}
	sb.WriteString(" ")
	sb.WriteString(i.Name)
	return sb.String()
}
