package pokelinks

import "errors"

// ErrInvalidCoverageMode is the value New panics with when its
// CoverageType is neither Defense nor Attack.
var ErrInvalidCoverageMode = errors.New("pokelinks: invalid coverage mode")

// ErrPopEmptyStack is the diagnostic carried by the panic raised when
// PopHiddenItem or PopHiddenOption is called with nothing hidden. The
// domain has no meaningful recovery from this condition.
var ErrPopEmptyStack = errors.New("pokelinks: pop on empty hidden stack")
