package poketype

// Multiplier is a damage multiplier, ordered by damage magnitude. Its
// integer value doubles as the point contribution a node makes to a
// RankedSet's rank when that node is chosen by the DLX search - this
// mirrors the original C++ Resistance::Multiplier enum, whose values
// are added directly into the running score.
type Multiplier int

const (
	Empty      Multiplier = iota // EMPTY, sentinel/no multiplier
	Immune                       // IMMUNE, x0 damage
	Quarter                      // QUARTER, x1/4 damage
	Half                         // HALF, x1/2 damage
	Normal                       // NORMAL, x1 damage
	Double                       // DOUBLE, x2 damage
	Quadruple                    // QUADRUPLE, x4 damage
)

// String renders the conventional short multiplier label.
func (m Multiplier) String() string {
	switch m {
	case Immune:
		return "x0"
	case Quarter:
		return "x0.25"
	case Half:
		return "x0.5"
	case Normal:
		return "x1"
	case Double:
		return "x2"
	case Quadruple:
		return "x4"
	default:
		return ""
	}
}

// ResistsDefense reports whether m is a multiplier that makes a
// typing count as resisting an attack for Defense construction: it
// must be strictly better than NORMAL.
func (m Multiplier) ResistsDefense() bool {
	return m != Empty && m < Normal
}

// SuperEffectiveAttack reports whether m is a multiplier that makes an
// attack count as super effective for Attack construction: it must be
// strictly worse than NORMAL.
func (m Multiplier) SuperEffectiveAttack() bool {
	return m > Normal
}
