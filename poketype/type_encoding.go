// Package poketype encodes Pokemon types as small bitmasks and pairs
// them with the damage multipliers they experience or deal, the way
// the dancing-links items and options in pokelinks are named.
//
// TypeEncoding packs one or two of the 18 atomic Pokemon types into a
// single unsigned integer. Bit positions are assigned in the reverse
// of alphabetical order - the alphabetically earliest type, Bug, owns
// the highest bit, and the latest, Water, owns bit 0 - so that the
// usual unsigned-integer ordering, read in reverse, lines up with the
// lexicographic order of the decoded strings, with one exception: a
// dual typing sorts before the single type that is its first half
// (Bug-Dark before Bug). See Less for the reversal.
package poketype

import (
	"math/bits"
	"sort"
	"strings"
)

// atomicTypes is the 18 atomic types in ascending alphabetical order.
// atomicTypes[i] occupies bit (len(atomicTypes)-1-i), so the first
// entry, Bug, sits in the most significant bit of a TypeEncoding.
var atomicTypes = []string{
	"Bug", "Dark", "Dragon", "Electric", "Fairy", "Fighting", "Fire",
	"Flying", "Ghost", "Grass", "Ground", "Ice", "Normal", "Poison",
	"Psychic", "Rock", "Steel", "Water",
}

// TypeEncoding packs the bitmask for a single or dual Pokemon typing.
// The zero value denotes the empty/sentinel typing.
type TypeEncoding uint32

// bitForRank returns the bit position for the i'th entry of
// atomicTypes, i.e. the reversed assignment described in the package
// doc.
func bitForRank(i int) uint {
	return uint(len(atomicTypes) - 1 - i)
}

func bitIndex(atomic string) int {
	n := len(atomicTypes)
	i := sort.Search(n, func(i int) bool { return atomicTypes[i] >= atomic })
	if i < n && atomicTypes[i] == atomic {
		return i
	}
	return -1
}

// FromString decodes "", "Atomic", or "Atomic1-Atomic2" into a
// TypeEncoding. Unrecognized atomic names, in either position, yield
// the empty encoding, same as "".
func FromString(s string) TypeEncoding {
	if s == "" {
		return 0
	}
	first, second, hasSecond := strings.Cut(s, "-")
	firstRank := bitIndex(first)
	if firstRank < 0 {
		return 0
	}
	enc := TypeEncoding(1) << bitForRank(firstRank)
	if !hasSecond {
		return enc
	}
	secondRank := bitIndex(second)
	if secondRank < 0 {
		return 0
	}
	return enc | TypeEncoding(1)<<bitForRank(secondRank)
}

// Decode returns the atomic type name(s) in canonical lexicographic
// order. The second return value is "" for a single type or the empty
// encoding.
func (t TypeEncoding) Decode() (first, second string) {
	if t == 0 {
		return "", ""
	}
	maxBit := len(atomicTypes) - 1
	low := bits.TrailingZeros32(uint32(t))
	rest := t &^ (TypeEncoding(1) << low)
	if rest == 0 {
		return atomicTypes[maxBit-low], ""
	}
	high := bits.TrailingZeros32(uint32(rest))
	return atomicTypes[maxBit-high], atomicTypes[maxBit-low]
}

// Display renders "", "A", or "A-B".
func (t TypeEncoding) Display() string {
	first, second := t.Decode()
	if first == "" {
		return ""
	}
	if second == "" {
		return first
	}
	return first + "-" + second
}

func (t TypeEncoding) String() string {
	return t.Display()
}

// Less reports whether t sorts before other in the order used by
// item_table/option_table. Because low-alphabet atomic types occupy
// high-value bits, this is the reverse of the usual unsigned
// comparison. It agrees with the order of the string forms except that
// a dual typing sorts before the single type that is its first half:
// Bug-Dark sorts before Bug, although "Bug" < "Bug-Dark" as strings.
func (t TypeEncoding) Less(other TypeEncoding) bool {
	return other < t
}

// IsEmpty reports whether t is the sentinel/empty encoding.
func (t TypeEncoding) IsEmpty() bool {
	return t == 0
}
