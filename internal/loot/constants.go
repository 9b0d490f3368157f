package loot

// Rarity roll thresholds. A single uniform roll in [0,1) is checked against
// these in ladder order; the first threshold the roll falls under wins, and
// anything above the EPIC threshold is LEGENDARY. The resulting distribution
// is COMMON 50%, GREAT 25%, RARE 15%, EPIC 8%, LEGENDARY 2%.
const (
	CommonThreshold = 0.50
	GreatThreshold  = 0.75
	RareThreshold   = 0.90
	EpicThreshold   = 0.98
)

// DefaultNamePool is the fixed pool random drops draw their names from.
var DefaultNamePool = []string{
	"Iron Sword",
	"Steel Shield",
	"Magic Wand",
	"Dragon Armor",
	"Silver Dagger",
}
