package poketype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResistanceLessComparesTypeOnly(t *testing.T) {
	a := Resistance{Type: FromString("Bug"), Multiplier: Immune}
	b := Resistance{Type: FromString("Dark"), Multiplier: Quadruple}

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestResistanceEqualComparesBothFields(t *testing.T) {
	a := Resistance{Type: FromString("Water"), Multiplier: Half}
	b := Resistance{Type: FromString("Water"), Multiplier: Half}
	c := Resistance{Type: FromString("Water"), Multiplier: Quarter}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestMultiplierClassification(t *testing.T) {
	assert.True(t, Immune.ResistsDefense())
	assert.True(t, Quarter.ResistsDefense())
	assert.True(t, Half.ResistsDefense())
	assert.False(t, Normal.ResistsDefense())
	assert.False(t, Double.ResistsDefense())

	assert.True(t, Double.SuperEffectiveAttack())
	assert.True(t, Quadruple.SuperEffectiveAttack())
	assert.False(t, Normal.SuperEffectiveAttack())
	assert.False(t, Half.SuperEffectiveAttack())
}
