package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Inventory metric names
const (
	MetricNameItemsAdded       = "items_added_total"
	MetricNameItemsRemoved     = "items_removed_total"
	MetricNameItemsUpgraded    = "items_upgraded_total"
	MetricNameUpgradesRejected = "upgrades_rejected_total"
)

// Persistence metric names
const (
	MetricNameStacksSaved  = "inventory_stacks_saved_total"
	MetricNameStacksLoaded = "inventory_stacks_loaded_total"
	MetricNameRowsSkipped  = "inventory_rows_skipped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Inventory metric help text
const (
	HelpTextItemsAdded       = "Total number of items added to inventories"
	HelpTextItemsRemoved     = "Total number of items removed from inventories"
	HelpTextItemsUpgraded    = "Total number of successful item upgrades"
	HelpTextUpgradesRejected = "Total number of upgrades rejected for insufficient stock"
)

// Persistence metric help text
const (
	HelpTextStacksSaved  = "Total number of stacks written during inventory saves"
	HelpTextStacksLoaded = "Total number of stacks read during inventory loads"
	HelpTextRowsSkipped  = "Total number of malformed rows skipped during inventory loads"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelRarity       = "rarity"
	LabelSourceRarity = "source_rarity"
	LabelResultRarity = "result_rarity"
)
