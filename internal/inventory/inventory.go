// Package inventory implements countable per-rarity item stacks with a
// deterministic rarity-upgrade ladder and CSV persistence.
package inventory

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kestrelgames/armory/internal/domain"
	"github.com/kestrelgames/armory/internal/metrics"
)

// Inventory owns stacks of items grouped by rarity. A stack is keyed by the
// full (name, rarity, sub-level) identity of an item and always holds a
// positive count; a removal that reaches zero deletes the stack entry.
//
// Not safe for concurrent use: the design assumes a single logical thread of
// control. Stack iteration order within a rarity follows Go map semantics
// and is not guaranteed stable across calls or runs.
type Inventory struct {
	stacks map[domain.Rarity]map[domain.Item]int
	log    *slog.Logger
}

// New creates an inventory, optionally pre-seeded with a single-count add of
// each given item.
func New(items ...domain.Item) (*Inventory, error) {
	return NewWithLogger(nil, items...)
}

// NewWithLogger is New with an explicit logger. A nil logger falls back to
// slog.Default().
func NewWithLogger(log *slog.Logger, items ...domain.Item) (*Inventory, error) {
	inv := &Inventory{
		stacks: make(map[domain.Rarity]map[domain.Item]int, len(domain.AllRarities())),
		log:    log,
	}
	for _, rarity := range domain.AllRarities() {
		inv.stacks[rarity] = make(map[domain.Item]int)
	}

	for _, item := range items {
		if err := inv.Add(item, 1); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// Add increments the stack for the exact item key by count, creating the
// stack if absent. It returns domain.ErrInvalidItem for an invalid item or a
// non-positive count. Stacks have no upper bound.
func (inv *Inventory) Add(item domain.Item, count int) error {
	stacks, err := inv.stacksFor(item)
	if err != nil {
		return err
	}
	if count <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveAdd, count, item.Name, domain.ErrInvalidItem)
	}

	stacks[item] += count

	metrics.ItemsAdded.WithLabelValues(string(item.Rarity)).Add(float64(count))
	inv.logger().Debug(LogMsgItemsAdded, "item", item.String(), "count", count, "stack", stacks[item])
	return nil
}

// Remove decrements the stack for the exact item key by count. It returns
// (false, nil) without mutating when the stack is missing or holds fewer
// than count; shortfall is not an error here, only the upgrade path treats
// it as one. An invalid item or non-positive count is domain.ErrInvalidItem.
func (inv *Inventory) Remove(item domain.Item, count int) (bool, error) {
	stacks, err := inv.stacksFor(item)
	if err != nil {
		return false, err
	}
	if count <= 0 {
		return false, fmt.Errorf(ErrFmtNonPositiveRemove, count, item.Name, domain.ErrInvalidItem)
	}

	current, ok := stacks[item]
	if !ok || current < count {
		return false, nil
	}

	if current == count {
		delete(stacks, item)
	} else {
		stacks[item] = current - count
	}

	metrics.ItemsRemoved.WithLabelValues(string(item.Rarity)).Add(float64(count))
	inv.logger().Debug(LogMsgItemsRemoved, "item", item.String(), "count", count, "stack", stacks[item])
	return true, nil
}

// Count returns the stack size for the exact item key, 0 when absent or the
// item is invalid.
func (inv *Inventory) Count(item domain.Item) int {
	if !item.Valid() {
		return 0
	}
	return inv.stacks[item.Rarity][item]
}

// IsEmpty reports whether every rarity's stack map is empty.
func (inv *Inventory) IsEmpty() bool {
	for _, stacks := range inv.stacks {
		if len(stacks) > 0 {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of all stacks as a flat item-to-count map. Tests
// compare snapshots instead of display strings because stack order within a
// rarity is unordered.
func (inv *Inventory) Snapshot() map[domain.Item]int {
	snap := make(map[domain.Item]int)
	for _, stacks := range inv.stacks {
		for item, count := range stacks {
			snap[item] = count
		}
	}
	return snap
}

// String renders one section per non-empty rarity in ascending ladder order,
// with a "<count>x <item>" line per stack. Line order inside a section is
// map-iteration order and is not a stable output guarantee.
func (inv *Inventory) String() string {
	if inv.IsEmpty() {
		return DisplayEmpty
	}

	var sb strings.Builder
	for _, rarity := range domain.AllRarities() {
		stacks := inv.stacks[rarity]
		if len(stacks) == 0 {
			continue
		}
		fmt.Fprintf(&sb, DisplaySectionHeaderFmt, rarity)
		for item, count := range stacks {
			fmt.Fprintf(&sb, DisplayStackLineFmt, count, item)
		}
	}
	return sb.String()
}

// stacksFor returns the stack map for the item's rarity, rejecting invalid
// items. Every stack operation dispatches through here so the invalid-item
// contract is uniform.
func (inv *Inventory) stacksFor(item domain.Item) (map[domain.Item]int, error) {
	if !item.Valid() {
		return nil, fmt.Errorf(ErrFmtInvalidItem, item.Name, domain.ErrInvalidItem)
	}
	return inv.stacks[item.Rarity], nil
}

func (inv *Inventory) logger() *slog.Logger {
	if inv.log != nil {
		return inv.log
	}
	return slog.Default()
}
