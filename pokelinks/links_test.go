package pokelinks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agl-alexglopez/pokelinks-dlx/poketype"
)

func enc(s string) poketype.TypeEncoding { return poketype.FromString(s) }

func res(typeName string, m poketype.Multiplier) poketype.Resistance {
	return poketype.Resistance{Type: enc(typeName), Multiplier: m}
}

func dragonElectricGhostIce() ResistanceMap {
	return ResistanceMap{
		enc("Dragon"):   {res("Normal", poketype.Normal), res("Fire", poketype.Half), res("Water", poketype.Half), res("Electric", poketype.Half), res("Grass", poketype.Half), res("Ice", poketype.Double)},
		enc("Electric"): {res("Normal", poketype.Normal), res("Fire", poketype.Normal), res("Water", poketype.Normal), res("Electric", poketype.Half), res("Grass", poketype.Normal), res("Ice", poketype.Normal)},
		enc("Ghost"):    {res("Normal", poketype.Immune), res("Fire", poketype.Normal), res("Water", poketype.Normal), res("Electric", poketype.Normal), res("Grass", poketype.Normal), res("Ice", poketype.Normal)},
		enc("Ice"):      {res("Normal", poketype.Normal), res("Fire", poketype.Normal), res("Water", poketype.Normal), res("Electric", poketype.Normal), res("Grass", poketype.Normal), res("Ice", poketype.Half)},
	}
}

func TestNewDefenseLinksEmptyMatrixIsDegenerate(t *testing.T) {
	links, err := NewDefenseLinks(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, links.NumItems())
	assert.Equal(t, 0, links.NumOptions())
	assert.Empty(t, links.Items())
	assert.Empty(t, links.Options())
}

func TestNewDefenseLinksBuildsExpectedItemsAndOptions(t *testing.T) {
	links, err := NewDefenseLinks(dragonElectricGhostIce())
	require.NoError(t, err)

	assert.Equal(t, 6, links.NumItems())
	assert.Equal(t, 4, links.NumOptions())
	assert.Equal(t,
		[]poketype.TypeEncoding{enc("Electric"), enc("Fire"), enc("Grass"), enc("Ice"), enc("Normal"), enc("Water")},
		links.Items(),
	)
	assert.Equal(t,
		[]poketype.TypeEncoding{enc("Dragon"), enc("Electric"), enc("Ghost"), enc("Ice")},
		links.Options(),
	)
}

func TestNewDispatchesByMode(t *testing.T) {
	interactions := dragonElectricGhostIce()

	defense, err := New(Defense, interactions)
	require.NoError(t, err)
	assert.Equal(t, Defense, defense.CoverageType())

	attack, err := New(Attack, interactions)
	require.NoError(t, err)
	assert.Equal(t, Attack, attack.CoverageType())
}

func TestNewPanicsOnInvalidMode(t *testing.T) {
	assert.PanicsWithValue(t, ErrInvalidCoverageMode, func() {
		_, _ = New(CoverageType(99), dragonElectricGhostIce())
	})
}

func TestNewDefenseLinksSubsetProjectsAttackTypes(t *testing.T) {
	full, err := NewDefenseLinks(dragonElectricGhostIce())
	require.NoError(t, err)

	subset, err := NewDefenseLinksSubset(dragonElectricGhostIce(), TypeSet{enc("Electric"): {}, enc("Ice"): {}})
	require.NoError(t, err)

	assert.Equal(t, []poketype.TypeEncoding{enc("Electric"), enc("Ice")}, subset.Items())
	assert.Greater(t, full.NumItems(), subset.NumItems())
}

func TestFindItemAndOptionIndexExcludeSentinel(t *testing.T) {
	links, err := NewDefenseLinks(dragonElectricGhostIce())
	require.NoError(t, err)

	assert.True(t, links.HasItem(enc("Electric")))
	assert.True(t, links.HasItem(enc("Water")))
	assert.False(t, links.HasItem(enc("Fighting")))
	assert.False(t, links.HasItem(poketype.TypeEncoding(0)))

	assert.True(t, links.HasOption(enc("Dragon")))
	assert.False(t, links.HasOption(enc("Pikachu")))
}

func TestSingleItemMatrixBinarySearchStillWorks(t *testing.T) {
	links, err := NewDefenseLinks(ResistanceMap{
		enc("Ghost"): {res("Normal", poketype.Immune)},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, links.NumItems())
	assert.True(t, links.HasItem(enc("Normal")))
	assert.True(t, links.HasOption(enc("Ghost")))
}
