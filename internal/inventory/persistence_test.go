package inventory

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelgames/armory/internal/domain"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	inv, err := New()
	require.NoError(t, err)

	require.NoError(t, inv.Add(domain.NewItem("Iron Sword", domain.RarityCommon), 3))
	require.NoError(t, inv.Add(domain.NewItem("Steel Shield", domain.RarityGreat), 1))
	require.NoError(t, inv.Add(domain.NewItemAt("Dragon Spear", domain.RarityEpic, 2), 2))
	require.NoError(t, inv.Add(domain.NewItem("Silver Dagger", domain.RarityLegendary), 5))

	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, inv.Save(path))

	fresh, err := New()
	require.NoError(t, err)
	require.NoError(t, fresh.Load(path))

	// Line order is unordered across runs, so compare as a multiset.
	assert.Equal(t, inv.Snapshot(), fresh.Snapshot())
}

func TestSaveTo_RecordFormat(t *testing.T) {
	inv, err := New()
	require.NoError(t, err)
	require.NoError(t, inv.Add(domain.NewItemAt("Dragon Spear", domain.RarityEpic, 2), 2))

	var buf bytes.Buffer
	require.NoError(t, inv.SaveTo(&buf))

	assert.Equal(t, "EPIC,Dragon Spear,2,2\n", buf.String())
}

func TestLoadFrom_AccumulatesOntoExistingState(t *testing.T) {
	inv, err := New()
	require.NoError(t, err)

	sword := domain.NewItem("Iron Sword", domain.RarityCommon)
	require.NoError(t, inv.Add(sword, 2))

	require.NoError(t, inv.LoadFrom(strings.NewReader("COMMON,Iron Sword,0,3\n")))

	assert.Equal(t, 5, inv.Count(sword), "loading adds onto pre-existing stacks")
}

func TestLoadFrom_SkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"",                          // blank
		"   ",                       // whitespace only
		"COMMON,Iron Sword,0",       // wrong field count
		"COMMON,Iron Sword,0,3,9",   // wrong field count
		"MYTHIC,Iron Sword,0,3",     // unknown rarity
		"common,Iron Sword,0,3",     // rarity tokens are exact
		"EPIC,Dragon Spear,two,2",   // non-integer sub-level
		"EPIC,Dragon Spear,2,many",  // non-integer quantity
		"GREAT,Steel Shield,0,0",    // non-positive quantity
		"GREAT,Steel Shield,0,-1",   // non-positive quantity
		"RARE,,0,4",                 // empty name
		"RARE,Magic Wand,0,4",       // valid
		"EPIC, Dragon Spear , 1 ,2", // valid, fields are trimmed
	}, "\n")

	inv, err := New()
	require.NoError(t, err)
	require.NoError(t, inv.LoadFrom(strings.NewReader(input)), "malformed lines never fail a load")

	want := map[domain.Item]int{
		domain.NewItem("Magic Wand", domain.RarityRare):       4,
		domain.NewItemAt("Dragon Spear", domain.RarityEpic, 1): 2,
	}
	assert.Equal(t, want, inv.Snapshot())
}

func TestLoadFrom_OnlyMalformedLinesIsNotAnError(t *testing.T) {
	inv, err := New()
	require.NoError(t, err)

	require.NoError(t, inv.LoadFrom(strings.NewReader("garbage\nmore,garbage\n")))
	assert.True(t, inv.IsEmpty())
}

func TestLoadFrom_NonEpicSubLevelRowsAreKept(t *testing.T) {
	// The format does not enforce the EPIC-only sub-level convention; such
	// rows load as distinct stack keys.
	inv, err := New()
	require.NoError(t, err)
	require.NoError(t, inv.LoadFrom(strings.NewReader("COMMON,Iron Sword,2,1\n")))

	assert.Equal(t, 1, inv.Count(domain.NewItemAt("Iron Sword", domain.RarityCommon, 2)))
}

func TestLoad_MissingFileIsAnIOError(t *testing.T) {
	inv, err := New()
	require.NoError(t, err)

	err = inv.Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidItem)
	assert.NotErrorIs(t, err, domain.ErrInsufficientItems)
	assert.Contains(t, err.Error(), "failed to open inventory file")
}

func TestSaveLoad_UpgradeAfterReload(t *testing.T) {
	// Save, reload into a fresh inventory, and run an upgrade on the loaded
	// state: the demo driver's flow.
	inv, err := New()
	require.NoError(t, err)
	sword := domain.NewItem("Iron Sword", domain.RarityCommon)
	require.NoError(t, inv.Add(sword, 3))

	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, inv.Save(path))

	fresh, err := New()
	require.NoError(t, err)
	require.NoError(t, fresh.Load(path))

	ok, err := fresh.Upgrade(sword)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, fresh.Count(domain.NewItem("Iron Sword", domain.RarityGreat)))
}
