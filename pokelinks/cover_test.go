package pokelinks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agl-alexglopez/pokelinks-dlx/poketype"
)

// TestCoverUncoverIsExactInverse covers the Dragon row's Electric node:
// that should drop the Electric item column entirely, and uncover must
// restore both the item table and link array exactly.
func TestCoverUncoverIsExactInverse(t *testing.T) {
	links, err := NewDefenseLinks(dragonElectricGhostIce())
	require.NoError(t, err)

	itemsBefore := snapshotItemTable(links)
	linksBefore := snapshotLinks(links)

	electricCol := links.findItemIndex(enc("Electric"))
	require.NotZero(t, electricCol)
	dragonElectricNode := links.links[electricCol].down

	name, _ := links.cover(dragonElectricNode)
	assert.Equal(t, enc("Dragon"), name)
	// Dragon's row only qualifies at Electric, Fire, Grass, Water (its
	// Normal entry is NORMAL and its Ice entry is DOUBLE, neither of
	// which resists); covering it leaves just Ice and Normal active.
	// NumItems counts only user hides, so cover leaves it at 6.
	assert.Equal(t, 6, links.NumItems())
	assert.Equal(t, []poketype.TypeEncoding{enc("Ice"), enc("Normal")}, links.Items())
	assert.NotContains(t, links.Items(), enc("Electric"))

	links.uncover(dragonElectricNode)
	assert.Equal(t, itemsBefore, snapshotItemTable(links))
	assert.Equal(t, linksBefore, snapshotLinks(links))
}

func TestOverlappingCoverLeavesOtherOptionsSelectable(t *testing.T) {
	links, err := NewDefenseLinks(dragonElectricGhostIce())
	require.NoError(t, err)

	electricCol := links.findItemIndex(enc("Electric"))
	require.NotZero(t, electricCol)
	dragonElectricNode := links.links[electricCol].down

	_, _ = links.overlappingCover(dragonElectricNode, 1)
	assert.NotContains(t, links.Items(), enc("Electric"))
	// Electric the option is untouched by overlapping cover - only the
	// item column was spliced, not the sibling option's row.
	assert.True(t, links.HasOption(enc("Electric")))

	links.overlappingUncover(dragonElectricNode)
	assert.True(t, links.HasItem(enc("Electric")))
}

func snapshotItemTable(p *PokemonLinks) []itemEntry {
	out := make([]itemEntry, len(p.itemTable))
	copy(out, p.itemTable)
	return out
}

func snapshotLinks(p *PokemonLinks) []linkNode {
	out := make([]linkNode, len(p.links))
	copy(out, p.links)
	return out
}
