package poketype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStringRoundTrip(t *testing.T) {
	cases := []string{
		"", "Bug", "Water", "Dark", "Normal",
		"Bug-Dark", "Electric-Grass", "Fire-Flying",
		"Ground-Water", "Ice-Psychic", "Ice-Water", "Bug-Ghost",
	}
	for _, s := range cases {
		enc := FromString(s)
		require.Equal(t, s, enc.Display(), "round trip for %q", s)
	}
}

func TestFromStringUnknownAtomicIsEmpty(t *testing.T) {
	assert.True(t, FromString("Metal").IsEmpty())
	assert.True(t, FromString("Bug-Metal").IsEmpty())
	assert.True(t, FromString("Metal-Bug").IsEmpty())
}

func TestDecodeOrdersCanonically(t *testing.T) {
	first, second := FromString("Ghost-Bug").Decode()
	assert.Equal(t, "Bug", first)
	assert.Equal(t, "Ghost", second)
}

func TestLessMatchesStringOrderForSingleTypes(t *testing.T) {
	names := []string{
		"Bug", "Dark", "Dragon", "Electric", "Fairy", "Fighting", "Fire",
		"Flying", "Ghost", "Grass", "Ground", "Ice", "Normal", "Poison",
		"Psychic", "Rock", "Steel", "Water",
	}
	for i := 0; i < len(names)-1; i++ {
		a, b := FromString(names[i]), FromString(names[i+1])
		assert.True(t, a.Less(b), "%s should sort before %s", names[i], names[i+1])
		assert.False(t, b.Less(a))
	}
}

func TestLessMatchesCrossPrefixExample(t *testing.T) {
	bug := FromString("Bug")
	bugDark := FromString("Bug-Dark")
	dark := FromString("Dark")

	assert.True(t, bug.Less(dark))
	assert.True(t, bugDark.Less(dark))
}

func TestEmptyEncodingDisplay(t *testing.T) {
	assert.Equal(t, "", TypeEncoding(0).Display())
	f, s := TypeEncoding(0).Decode()
	assert.Equal(t, "", f)
	assert.Equal(t, "", s)
}
