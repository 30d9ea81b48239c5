package pokelinks

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agl-alexglopez/pokelinks-dlx/poketype"
	"github.com/agl-alexglopez/pokelinks-dlx/rankedset"
)

func asKeys(sols []rankedset.RankedSet[poketype.TypeEncoding]) []string {
	out := make([]string, len(sols))
	for i := range sols {
		out[i] = canonicalKey(&sols[i])
	}
	sort.Strings(out)
	return out
}

func TestExactFunctionalMatchesStack(t *testing.T) {
	links, err := NewDefenseLinks(dragonElectricGhostIce())
	require.NoError(t, err)

	functional := links.ExactCoveragesFunctional(6)
	stack := links.ExactCoveragesStack(6)
	assert.Equal(t, asKeys(functional), asKeys(stack))
}

func TestOverlappingFunctionalMatchesStack(t *testing.T) {
	links, err := NewDefenseLinks(nonsenseGrid())
	require.NoError(t, err)

	functional := links.OverlappingCoveragesFunctional(6)
	stack := links.OverlappingCoveragesStack(6)
	assert.Equal(t, asKeys(functional), asKeys(stack))
}

func TestSearchRestoresMatrixByteForByte(t *testing.T) {
	links, err := NewDefenseLinks(nonsenseGrid())
	require.NoError(t, err)

	itemsBefore := snapshotItemTable(links)
	linksBefore := snapshotLinks(links)

	links.ExactCoveragesFunctional(6)
	assert.Equal(t, itemsBefore, snapshotItemTable(links))
	assert.Equal(t, linksBefore, snapshotLinks(links))

	links.ExactCoveragesStack(6)
	assert.Equal(t, itemsBefore, snapshotItemTable(links))
	assert.Equal(t, linksBefore, snapshotLinks(links))

	links.OverlappingCoveragesFunctional(6)
	assert.Equal(t, itemsBefore, snapshotItemTable(links))
	assert.Equal(t, linksBefore, snapshotLinks(links))

	links.OverlappingCoveragesStack(6)
	assert.Equal(t, itemsBefore, snapshotItemTable(links))
	assert.Equal(t, linksBefore, snapshotLinks(links))
}

func TestEverySolutionRespectsDepthLimit(t *testing.T) {
	links, err := NewDefenseLinks(nonsenseGrid())
	require.NoError(t, err)

	const depth = 6
	sols := links.OverlappingCoveragesFunctional(depth)
	require.NotEmpty(t, sols)
	for _, s := range sols {
		assert.LessOrEqual(t, s.Size(), depth)
	}
}

func fullyOverlappingGrid() ResistanceMap {
	items := []string{"Electric", "Fire", "Grass", "Ice", "Normal", "Water"}
	options := []string{"Bug", "Dark", "Dragon", "Fairy", "Fighting", "Flying", "Ghost", "Ground", "Poison", "Psychic", "Rock", "Steel"}
	out := make(ResistanceMap, len(options))
	for _, o := range options {
		var entries []poketype.Resistance
		for _, i := range items {
			entries = append(entries, res(i, poketype.Half))
		}
		out[enc(o)] = entries
	}
	return out
}

func TestMaxOutputCapsOverlappingResultsAndRestoresMatrix(t *testing.T) {
	links, err := NewDefenseLinks(fullyOverlappingGrid(), WithMaxOutput(10))
	require.NoError(t, err)
	itemsBefore := snapshotItemTable(links)
	linksBefore := snapshotLinks(links)

	got := links.OverlappingCoveragesFunctional(6)
	assert.Len(t, got, 10)
	assert.True(t, links.ReachedOutputLimit())
	assert.Equal(t, itemsBefore, snapshotItemTable(links))
	assert.Equal(t, linksBefore, snapshotLinks(links))
}

func TestSearchStatsCountsNodesAndSolutions(t *testing.T) {
	links, err := NewDefenseLinks(dragonElectricGhostIce())
	require.NoError(t, err)

	stats := &SearchStats{Debug: true}
	sols := links.ExactCoveragesFunctionalWithStats(6, stats)

	require.NotEmpty(t, sols)
	assert.Equal(t, len(sols), stats.Solutions)
	assert.Greater(t, stats.Nodes, 0)
	assert.GreaterOrEqual(t, stats.MaxLevel, 0)
}

func TestNilSearchStatsIsANoOp(t *testing.T) {
	links, err := NewDefenseLinks(nonsenseGrid())
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		links.ExactCoveragesFunctionalWithStats(6, nil)
	})
}
