package poketype

// Resistance pairs an attacking or defending TypeEncoding with the
// Multiplier it experiences. It is always stored alongside a key type
// (an attack type in a Defense map, a defensive type in an Attack
// map), so equality compares both fields but ordering - used when a
// container needs Resistances to behave like a map keyed by type -
// only ever compares the Type field.
type Resistance struct {
	Type       TypeEncoding
	Multiplier Multiplier
}

// Less orders Resistances by Type alone, so a sorted slice of
// Resistances behaves like a map keyed by Type.
func (r Resistance) Less(other Resistance) bool {
	return r.Type.Less(other.Type)
}

// Equal compares both the type and the multiplier.
func (r Resistance) Equal(other Resistance) bool {
	return r.Type == other.Type && r.Multiplier == other.Multiplier
}
