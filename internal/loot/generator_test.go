package loot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelgames/armory/internal/domain"
)

// fixedRolls drives the generator with scripted values.
func fixedRolls(roll float64, nameIndex int) *Generator {
	return NewGeneratorWithRand(
		func() float64 { return roll },
		func(n int) int { return nameIndex % n },
	)
}

func TestRoll_RarityThresholds(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want domain.Rarity
	}{
		{"zero roll is common", 0.0, domain.RarityCommon},
		{"just under common threshold", 0.4999, domain.RarityCommon},
		{"common threshold starts great", 0.50, domain.RarityGreat},
		{"just under great threshold", 0.7499, domain.RarityGreat},
		{"great threshold starts rare", 0.75, domain.RarityRare},
		{"just under rare threshold", 0.8999, domain.RarityRare},
		{"rare threshold starts epic", 0.90, domain.RarityEpic},
		{"just under epic threshold", 0.9799, domain.RarityEpic},
		{"epic threshold starts legendary", 0.98, domain.RarityLegendary},
		{"top of range is legendary", 0.9999, domain.RarityLegendary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := fixedRolls(tt.roll, 0)
			item := g.Roll()
			assert.Equal(t, tt.want, item.Rarity)
			assert.Equal(t, 0, item.SubLevel, "drops always start at sub-level 0")
		})
	}
}

func TestRoll_NamePool(t *testing.T) {
	for i, want := range DefaultNamePool {
		g := fixedRolls(0.0, i)
		assert.Equal(t, want, g.Roll().Name)
	}
}

func TestRoll_CustomNames(t *testing.T) {
	g := fixedRolls(0.0, 0)
	g.WithNames([]string{"Rusty Pike"})

	assert.Equal(t, "Rusty Pike", g.Roll().Name)

	assert.Panics(t, func() { g.WithNames(nil) })
}

func TestNewGenerator_SeededDeterminism(t *testing.T) {
	a := NewGenerator(42)
	b := NewGenerator(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Roll(), b.Roll(), "same seed must reproduce the same sequence")
	}
}

func TestRoll_DistributionOverUniformSweep(t *testing.T) {
	// Sweep rolls 0.000..0.999 and count rarities; the buckets follow the
	// threshold widths exactly.
	counts := map[domain.Rarity]int{}
	for i := 0; i < 1000; i++ {
		roll := float64(i) / 1000.0
		g := NewGeneratorWithRand(func() float64 { return roll }, rand.New(rand.NewSource(1)).Intn)
		counts[g.Roll().Rarity]++
	}

	require.Equal(t, 500, counts[domain.RarityCommon])
	require.Equal(t, 250, counts[domain.RarityGreat])
	require.Equal(t, 150, counts[domain.RarityRare])
	require.Equal(t, 80, counts[domain.RarityEpic])
	require.Equal(t, 20, counts[domain.RarityLegendary])
}
