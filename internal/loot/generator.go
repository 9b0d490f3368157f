// Package loot produces random items from a fixed weighted rarity
// distribution and a small name pool.
package loot

import (
	"log/slog"
	"math/rand"

	"github.com/kestrelgames/armory/internal/domain"
)

// rarityThreshold maps a roll ceiling to a rarity.
type rarityThreshold struct {
	threshold float64
	rarity    domain.Rarity
}

// rarityThresholds is scanned in ladder order; the first entry whose
// threshold exceeds the roll wins.
var rarityThresholds = []rarityThreshold{
	{CommonThreshold, domain.RarityCommon},
	{GreatThreshold, domain.RarityGreat},
	{RareThreshold, domain.RarityRare},
	{EpicThreshold, domain.RarityEpic},
}

// Generator rolls random items. The random source is injected so tests can
// drive it deterministically.
type Generator struct {
	names  []string
	rnd    func() float64
	rndInt func(n int) int
	log    *slog.Logger
}

// NewGenerator creates a generator seeded with its own random source.
func NewGenerator(seed int64) *Generator {
	r := rand.New(rand.NewSource(seed))
	return NewGeneratorWithRand(r.Float64, r.Intn)
}

// NewGeneratorWithRand creates a generator with explicit roll functions.
// rnd returns values in [0,1); rndInt returns values in [0,n).
func NewGeneratorWithRand(rnd func() float64, rndInt func(n int) int) *Generator {
	return &Generator{
		names:  DefaultNamePool,
		rnd:    rnd,
		rndInt: rndInt,
	}
}

// WithNames replaces the name pool. Panics on an empty pool.
func (g *Generator) WithNames(names []string) *Generator {
	if len(names) == 0 {
		panic("loot: empty name pool")
	}
	g.names = names
	return g
}

// Roll draws one random item: a uniform name from the pool and a rarity from
// the weighted distribution, always at sub-level 0.
func (g *Generator) Roll() domain.Item {
	roll := g.rnd()

	rarity := domain.RarityLegendary
	for _, rt := range rarityThresholds {
		if roll < rt.threshold {
			rarity = rt.rarity
			break
		}
	}

	name := g.names[g.rndInt(len(g.names))]
	item := domain.NewItem(name, rarity)

	g.logger().Debug("Rolled item", "roll", roll, "item", item.String())
	return item
}

func (g *Generator) logger() *slog.Logger {
	if g.log != nil {
		return g.log
	}
	return slog.Default()
}
