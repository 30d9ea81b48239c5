package pokelinks

import "github.com/google/uuid"

// SearchStats carries optional tracing state through a search call.
// Nil is a valid "don't bother" value everywhere a *SearchStats is
// accepted: Nodes, Levels and MaxLevel are updated through visit, a
// no-op on a nil receiver, and the search drivers check for nil before
// incrementing Solutions.
type SearchStats struct {
	Debug     bool
	Nodes     int
	Levels    []int
	MaxLevel  int
	Solutions int

	// id correlates this struct's trace lines with the Session that
	// stamped it, once NewSession attaches one.
	id uuid.UUID
}

// visit records one cover/uncover step at the given partial-solution
// depth, growing Levels on demand and keeping MaxLevel current.
func (s *SearchStats) visit(depth int) {
	if s == nil {
		return
	}
	s.Nodes++
	if depth > s.MaxLevel {
		s.MaxLevel = depth
	}
	for len(s.Levels) <= depth {
		s.Levels = append(s.Levels, 0)
	}
	s.Levels[depth]++
}

// CorrelationID returns the uuid a Session stamped onto this struct,
// or the zero uuid's string form if it was never attached to one.
func (s *SearchStats) CorrelationID() string { return s.id.String() }

// Session pairs a PokemonLinks matrix with one SearchStats, so that
// log lines from several concurrently-held matrices - each owned by a
// different logical caller, per the one-matrix-per-goroutine
// concurrency model - can be told apart in shared log output. It adds
// no algorithmic behavior beyond *PokemonLinks and *SearchStats
// themselves.
type Session struct {
	Links *PokemonLinks
	Stats *SearchStats
}

// NewSession wraps an existing matrix with a fresh SearchStats,
// stamping it with a new correlation id.
func NewSession(p *PokemonLinks) *Session {
	return &Session{Links: p, Stats: &SearchStats{id: uuid.New()}}
}
