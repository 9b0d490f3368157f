package inventory

// ==================== Upgrade Mechanics ====================

const (
	// UpgradeCost is the number of exact copies consumed by the
	// fixed-threshold rungs of the ladder (COMMON, GREAT, RARE and EPIC 2).
	UpgradeCost = 3

	// EpicMaxSubLevel is the highest EPIC refinement; reaching it makes the
	// next upgrade produce a LEGENDARY item.
	EpicMaxSubLevel = 2
)

// ==================== Error Messages ====================

// Stack operation error messages (wrapped around domain sentinels)
const (
	ErrFmtInvalidItem       = "cannot use item %q: %w"
	ErrFmtNonPositiveAdd    = "cannot add a non-positive count (%d) of %q: %w"
	ErrFmtNonPositiveRemove = "cannot remove a non-positive count (%d) of %q: %w"
)

// Upgrade error messages
const (
	ErrFmtNotAvailable   = "cannot upgrade %s: not available in sufficient quantity: %w"
	ErrFmtNotEnoughExact = "not enough %s items to upgrade %s to %s: %w"
	ErrFmtNoEpicDonor    = "not enough EPIC items to upgrade %s to EPIC %d: %w"
)

// Persistence error messages
const (
	ErrMsgCreateSaveFileFailed = "failed to create inventory file: %w"
	ErrMsgWriteSaveFileFailed  = "failed to write inventory file: %w"
	ErrMsgCloseSaveFileFailed  = "failed to close inventory file: %w"
	ErrMsgOpenLoadFileFailed   = "failed to open inventory file: %w"
	ErrMsgReadLoadFileFailed   = "failed to read inventory file: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgItemsAdded      = "Items added"
	LogMsgItemsRemoved    = "Items removed"
	LogMsgItemUpgraded    = "Item upgraded"
	LogMsgInventorySaved  = "Inventory saved"
	LogMsgInventoryLoaded = "Inventory loaded"
)

// ==================== Display ====================

const (
	DisplayEmpty            = "Inventory is empty."
	DisplaySectionHeaderFmt = "\n--- %s ITEMS ---\n"
	DisplayStackLineFmt     = "%dx %s\n"
)
