package inventory

import (
	"fmt"

	"github.com/kestrelgames/armory/internal/domain"
	"github.com/kestrelgames/armory/internal/metrics"
)

// Upgrade advances one unit of the given item along the rarity ladder.
//
// COMMON, GREAT and RARE consume three exact copies and produce one item of
// the same name one rung up. EPIC items at sub-level 0 or 1 consume one exact
// copy plus one unit of any other EPIC stack (the donor) and gain a
// sub-level; at sub-level 2 three exact copies become one LEGENDARY.
// LEGENDARY is terminal: Upgrade returns (false, nil) without mutating.
//
// The guard runs before any removal, so a failing call leaves the inventory
// unchanged. Shortfall is domain.ErrInsufficientItems; an invalid item is
// domain.ErrInvalidItem.
func (inv *Inventory) Upgrade(item domain.Item) (bool, error) {
	stacks, err := inv.stacksFor(item)
	if err != nil {
		return false, err
	}
	if stacks[item] < 1 {
		metrics.UpgradesRejected.WithLabelValues(string(item.Rarity)).Inc()
		return false, fmt.Errorf(ErrFmtNotAvailable, item.Name, domain.ErrInsufficientItems)
	}

	switch item.Rarity {
	case domain.RarityCommon, domain.RarityGreat, domain.RarityRare:
		next, _ := item.Rarity.Next()
		return inv.upgradeExact(item, domain.NewItem(item.Name, next))

	case domain.RarityEpic:
		switch item.SubLevel {
		case 0, 1:
			return inv.upgradeEpicSubLevel(item)
		case EpicMaxSubLevel:
			return inv.upgradeExact(item, domain.NewItem(item.Name, domain.RarityLegendary))
		default:
			// Out-of-range sub-levels have no transition.
			return false, nil
		}

	case domain.RarityLegendary:
		// Already maximal.
		return false, nil

	default:
		return false, fmt.Errorf(ErrFmtInvalidItem, item.Name, domain.ErrInvalidItem)
	}
}

// upgradeExact handles the fixed-threshold rungs: consume UpgradeCost exact
// copies, produce one result item.
func (inv *Inventory) upgradeExact(item, result domain.Item) (bool, error) {
	if inv.stacks[item.Rarity][item] < UpgradeCost {
		metrics.UpgradesRejected.WithLabelValues(string(item.Rarity)).Inc()
		return false, fmt.Errorf(ErrFmtNotEnoughExact, item.Rarity, item.Name, result.Rarity, domain.ErrInsufficientItems)
	}

	if _, err := inv.Remove(item, UpgradeCost); err != nil {
		return false, err
	}
	if err := inv.Add(result, 1); err != nil {
		return false, err
	}

	metrics.ItemsUpgraded.WithLabelValues(string(item.Rarity), string(result.Rarity)).Inc()
	inv.logger().Info(LogMsgItemUpgraded, "from", item.String(), "to", result.String())
	return true, nil
}

// upgradeEpicSubLevel handles the cross-EPIC rungs: consume one exact copy
// plus one donor unit, produce the same item one sub-level up.
func (inv *Inventory) upgradeEpicSubLevel(item domain.Item) (bool, error) {
	donor, ok := inv.findEpicDonor(item)
	if !ok {
		metrics.UpgradesRejected.WithLabelValues(string(domain.RarityEpic)).Inc()
		return false, fmt.Errorf(ErrFmtNoEpicDonor, item.Name, item.SubLevel+1, domain.ErrInsufficientItems)
	}

	if _, err := inv.Remove(item, 1); err != nil {
		return false, err
	}
	if _, err := inv.Remove(donor, 1); err != nil {
		return false, err
	}

	result := domain.NewItemAt(item.Name, domain.RarityEpic, item.SubLevel+1)
	if err := inv.Add(result, 1); err != nil {
		return false, err
	}

	metrics.ItemsUpgraded.WithLabelValues(string(domain.RarityEpic), string(domain.RarityEpic)).Inc()
	inv.logger().Info(LogMsgItemUpgraded, "from", item.String(), "to", result.String(), "donor", donor.String())
	return true, nil
}

// findEpicDonor scans the EPIC stacks in map-iteration order for a stack to
// consume alongside the upgrade target. The target's own stack qualifies only
// when it holds at least two units, one being reserved as the upgrade target
// itself. When several stacks qualify the choice is not deterministic;
// callers must not rely on which donor is taken.
func (inv *Inventory) findEpicDonor(target domain.Item) (domain.Item, bool) {
	for item, count := range inv.stacks[domain.RarityEpic] {
		if count < 1 {
			continue
		}
		if item == target {
			if count >= 2 {
				return item, true
			}
			continue
		}
		return item, true
	}
	return domain.Item{}, false
}
