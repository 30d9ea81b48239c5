// Package pokelinks implements Donald Knuth's Algorithm X via dancing
// links (DLX) specialised to the Pokemon type-coverage problem: given
// a table of typings and the multipliers each typing experiences from,
// or deals to, other types, find defensive teams or attacking movesets
// that cover every type exactly once (exact cover) or at least once
// (overlapping cover).
//
// The toroidal matrix is represented as three parallel slices -
// optionTable, itemTable, and links - exactly as described by Knuth:
// links holds integer indices rather than pointers, so the whole
// structure is a handful of contiguous slices instead of a graph of
// heap-allocated nodes.
package pokelinks

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/agl-alexglopez/pokelinks-dlx/internal/telemetry"
	"github.com/agl-alexglopez/pokelinks-dlx/poketype"
)

// MaxOutput caps the number of solutions any single search call can
// return, chosen for UI usability. Two values appear across the
// original project's files (100000 and 200000); tests and callers in
// this repo assume 200000.
const MaxOutput = 200_000

// Team-size defaults expected by callers.
const (
	DefenseTeamSize = 6
	AttackSlotCount = 24
)

const hiddenTag = -1

// CoverageType selects whether a PokemonLinks matrix solves for a
// defensive team or an attacking moveset.
type CoverageType int

const (
	// Defense builds a matrix whose options are typings and whose
	// items are the attack types those typings must resist.
	Defense CoverageType = iota
	// Attack builds a matrix whose options are single-type attacks
	// and whose items are the defensive typings those attacks must
	// hit super-effectively.
	Attack
)

func (c CoverageType) String() string {
	switch c {
	case Defense:
		return "Defense"
	case Attack:
		return "Attack"
	default:
		return "InvalidCoverageType"
	}
}

// ResistanceMap is the external collaborator's input: a typing mapped
// to every Resistance it is associated with. In Defense mode the keys
// are defensive typings and the Resistances describe attack types; in
// Attack mode the same shape is inverted internally.
type ResistanceMap = map[poketype.TypeEncoding][]poketype.Resistance

// TypeSet is an unordered collection of TypeEncoding, used for the
// attack-type subset and the hide-all-except keep-sets.
type TypeSet = map[poketype.TypeEncoding]struct{}

// itemEntry is one row of item_table: the header for an item's
// circular vertical list, plus its position in the horizontal item
// list via left/right.
type itemEntry struct {
	name  poketype.TypeEncoding
	left  int
	right int
}

// optionEntry is one row of option_table: the option's name and the
// index of its spacer node in links.
type optionEntry struct {
	name  poketype.TypeEncoding
	index int
}

// linkNode is one cell of the matrix. Depending on its position it is
// either a column header (topOrLen is the live column length), a
// spacer (topOrLen <= 0, encoding the negative option index, or
// math.MinInt32 for the trailing spacer), or an item node (topOrLen is
// the index of its column header).
type linkNode struct {
	topOrLen   int
	up         int
	down       int
	multiplier poketype.Multiplier
	// tag is 0 when alive, hiddenTag when structurally removed by the
	// user hide API, and a positive recursion depth when the
	// overlapping search has claimed it at that depth.
	tag int
}

// PokemonLinks is the toroidal dancing-links matrix together with the
// user-facing hide/restore stacks. A single instance is not safe for
// concurrent method calls; separate instances share no state.
type PokemonLinks struct {
	optionTable   []optionEntry
	itemTable     []itemEntry
	links         []linkNode
	hiddenItems   []int
	hiddenOptions []int

	maxOutput  int
	hitLimit   bool
	numItems   int
	numOptions int
	mode       CoverageType

	id  uuid.UUID
	log *telemetry.Logger
}

// Option configures optional behavior of a PokemonLinks: structured-
// logging injection (WithLogger) and the per-instance output cap
// (WithMaxOutput). Only WithMaxOutput changes what a search returns.
type Option func(*PokemonLinks)

// WithLogger attaches a telemetry logger used for search tracing when
// a SearchStats passed to a search call has Debug set.
func WithLogger(l *telemetry.Logger) Option {
	return func(p *PokemonLinks) { p.log = l }
}

// WithMaxOutput overrides MaxOutput for this instance. Intended for
// tests that want to observe the cutoff without generating 200000
// solutions.
func WithMaxOutput(n int) Option {
	return func(p *PokemonLinks) { p.maxOutput = n }
}

func newEmptyLinks(mode CoverageType, opts []Option) *PokemonLinks {
	p := &PokemonLinks{
		maxOutput: MaxOutput,
		mode:      mode,
		id:        uuid.New(),
		log:       telemetry.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func sortedKeys(m ResistanceMap) []poketype.TypeEncoding {
	keys := make([]poketype.TypeEncoding, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// New builds a matrix in the given mode, dispatching to
// NewDefenseLinks or NewAttackLinks. An unrecognized CoverageType is a
// construction-time fatal error: it panics with ErrInvalidCoverageMode
// rather than returning it.
func New(mode CoverageType, interactions ResistanceMap, opts ...Option) (*PokemonLinks, error) {
	switch mode {
	case Defense:
		return NewDefenseLinks(interactions, opts...)
	case Attack:
		return NewAttackLinks(interactions, opts...)
	default:
		panic(ErrInvalidCoverageMode)
	}
}

// NewDefenseLinks builds a Defense matrix: options are the typings
// present in interactions, items are every attack type that appears in
// the Resistance set of the typing that sorts first under
// TypeEncoding.Less. Empty input
// yields an empty, zero-item, zero-option matrix.
func NewDefenseLinks(interactions ResistanceMap, opts ...Option) (*PokemonLinks, error) {
	p := newEmptyLinks(Defense, opts)
	if len(interactions) == 0 {
		p.initSentinels()
		return p, nil
	}
	generationTypes := attackTypeUniverse(interactions)
	columnIndex := p.buildItemTable(generationTypes)
	p.buildOptionRows(sortedKeys(interactions), interactions, columnIndex)
	return p, nil
}

// NewDefenseLinksSubset builds a Defense matrix restricted to the
// given attackTypes: interactions is first projected down to only the
// Resistances whose Type is in attackTypes, then built exactly as
// NewDefenseLinks. An empty attackTypes set is equivalent to
// NewDefenseLinks.
func NewDefenseLinksSubset(interactions ResistanceMap, attackTypes TypeSet, opts ...Option) (*PokemonLinks, error) {
	if len(attackTypes) == 0 {
		return NewDefenseLinks(interactions, opts...)
	}
	projected := make(ResistanceMap, len(interactions))
	for typing, resistances := range interactions {
		kept := make([]poketype.Resistance, 0, len(resistances))
		for _, r := range resistances {
			if _, ok := attackTypes[r.Type]; ok {
				kept = append(kept, r)
			}
		}
		projected[typing] = kept
	}
	return NewDefenseLinks(projected, opts...)
}

// NewAttackLinks builds an Attack matrix: items are the defensive
// typings present in interactions, options are the single attack types
// that appear across all typings' Resistance sets, inverted so each
// attack type's "option row" lists the defensive typings it hits
// super-effectively.
func NewAttackLinks(interactions ResistanceMap, opts ...Option) (*PokemonLinks, error) {
	p := newEmptyLinks(Attack, opts)
	if len(interactions) == 0 {
		p.initSentinels()
		return p, nil
	}
	defensiveTypes := sortedKeys(interactions)
	columnIndex := p.buildItemTable(defensiveTypes)

	inverted := make(ResistanceMap)
	for _, defType := range defensiveTypes {
		for _, atk := range interactions[defType] {
			inverted[atk.Type] = append(inverted[atk.Type], poketype.Resistance{
				Type:       defType,
				Multiplier: atk.Multiplier,
			})
		}
	}
	p.buildOptionRows(sortedKeys(inverted), inverted, columnIndex)
	return p, nil
}

func attackTypeUniverse(interactions ResistanceMap) []poketype.TypeEncoding {
	first := sortedKeys(interactions)[0]
	seen := make(map[poketype.TypeEncoding]struct{}, len(interactions[first]))
	types := make([]poketype.TypeEncoding, 0, len(interactions[first]))
	for _, r := range interactions[first] {
		if _, ok := seen[r.Type]; !ok {
			seen[r.Type] = struct{}{}
			types = append(types, r.Type)
		}
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Less(types[j]) })
	return types
}

// initSentinels sets up the single sentinel entry each table needs
// even when there are zero items/options, so an empty matrix is still
// a structurally valid (if degenerate) toroidal grid.
func (p *PokemonLinks) initSentinels() {
	p.optionTable = []optionEntry{{}}
	p.itemTable = []itemEntry{{}}
	p.links = []linkNode{{}, {topOrLen: math.MinInt32}}
}

// buildItemTable fills item_table (and the corresponding column
// headers in links) from the given sorted item names, returning a
// lookup from item name to its column header index for use while
// building option rows.
func (p *PokemonLinks) buildItemTable(items []poketype.TypeEncoding) map[poketype.TypeEncoding]int {
	p.optionTable = []optionEntry{{}}
	p.itemTable = make([]itemEntry, 1, len(items)+1)
	p.itemTable[0].right = 1
	p.links = make([]linkNode, 1, len(items)+1)

	columnIndex := make(map[poketype.TypeEncoding]int, len(items))
	index := 1
	for _, t := range items {
		columnIndex[t] = index
		p.itemTable = append(p.itemTable, itemEntry{name: t, left: index - 1, right: index + 1})
		p.itemTable[0].left++
		p.links = append(p.links, linkNode{up: index, down: index})
		p.numItems++
		index++
	}
	p.itemTable[len(p.itemTable)-1].right = 0

	return columnIndex
}

// buildOptionRows appends one option block per entry in
// sortedOptionNames, admitting only item nodes whose multiplier
// qualifies for the matrix's CoverageType, then closes the matrix with
// the trailing spacer. Each spacer's up points to the first item-node
// of the option immediately preceding it and its down points to the
// last item-node of the option it introduces, filled in once that
// row's size is known.
func (p *PokemonLinks) buildOptionRows(
	sortedOptionNames []poketype.TypeEncoding,
	interactions ResistanceMap,
	columnIndex map[poketype.TypeEncoding]int,
) {
	firstNodeOfPreviousRow := 0
	optionOrdinal := 1

	for _, name := range sortedOptionNames {
		title := len(p.links)
		p.links = append(p.links, linkNode{topOrLen: -optionOrdinal, up: firstNodeOfPreviousRow})
		p.optionTable = append(p.optionTable, optionEntry{name: name, index: title})

		rowFirstNode := len(p.links)
		for _, r := range interactions[name] {
			if !qualifies(p.mode, r.Multiplier) {
				continue
			}
			col := columnIndex[r.Type]
			node := len(p.links)
			tail := p.links[col].up
			p.links = append(p.links, linkNode{topOrLen: col, up: tail, down: col, multiplier: r.Multiplier})
			p.links[tail].down = node
			p.links[col].up = node
			p.links[col].topOrLen++
		}

		if len(p.links) == rowFirstNode {
			p.links[title].down = title
		} else {
			p.links[title].down = len(p.links) - 1
		}
		firstNodeOfPreviousRow = rowFirstNode

		optionOrdinal++
		p.numOptions++
	}

	p.links = append(p.links, linkNode{topOrLen: math.MinInt32, up: firstNodeOfPreviousRow})
}

func qualifies(mode CoverageType, m poketype.Multiplier) bool {
	if mode == Defense {
		return m.ResistsDefense()
	}
	return m.SuperEffectiveAttack()
}

// CoverageType reports whether this matrix solves Defense or Attack.
func (p *PokemonLinks) CoverageType() CoverageType { return p.mode }

// NumItems reports the current (non-hidden) number of items.
func (p *PokemonLinks) NumItems() int { return p.numItems }

// NumOptions reports the current (non-hidden) number of options.
func (p *PokemonLinks) NumOptions() int { return p.numOptions }

// ReachedOutputLimit reports whether the most recent search call was
// truncated by MaxOutput.
func (p *PokemonLinks) ReachedOutputLimit() bool { return p.hitLimit }

// Items returns the current (non-hidden) items in item_table order.
func (p *PokemonLinks) Items() []poketype.TypeEncoding {
	out := make([]poketype.TypeEncoding, 0, p.numItems)
	for i := p.itemTable[0].right; i != 0; i = p.itemTable[i].right {
		out = append(out, p.itemTable[i].name)
	}
	return out
}

// Options returns the current (non-hidden) options in option_table
// order.
func (p *PokemonLinks) Options() []poketype.TypeEncoding {
	out := make([]poketype.TypeEncoding, 0, p.numOptions)
	for i := 1; i < len(p.optionTable); i++ {
		if p.links[p.optionTable[i].index].tag != hiddenTag {
			out = append(out, p.optionTable[i].name)
		}
	}
	return out
}

// findItemIndex binary-searches the non-sentinel item_table entries,
// returning the item's index or 0 if absent. The sentinel at index 0
// is excluded from the search range since its zero TypeEncoding does
// not participate in the table's name ordering.
func (p *PokemonLinks) findItemIndex(item poketype.TypeEncoding) int {
	entries := p.itemTable[1:]
	n := len(entries)
	i := sort.Search(n, func(i int) bool { return !entries[i].name.Less(item) })
	if i < n && entries[i].name == item {
		return i + 1
	}
	return 0
}

// findOptionIndex binary-searches the non-sentinel option_table
// entries, returning the option's spacer index in links, or 0 if
// absent.
func (p *PokemonLinks) findOptionIndex(option poketype.TypeEncoding) int {
	entries := p.optionTable[1:]
	n := len(entries)
	i := sort.Search(n, func(i int) bool { return !entries[i].name.Less(option) })
	if i < n && entries[i].name == option {
		return entries[i].index
	}
	return 0
}

// debugDump renders the current matrix state for Debug-level tracing
// through the structured logger.
func (p *PokemonLinks) debugDump() string {
	return fmt.Sprintf(
		"mode=%s items=%d options=%d hiddenItems=%d hiddenOptions=%d",
		p.mode, p.numItems, p.numOptions, len(p.hiddenItems), len(p.hiddenOptions),
	)
}
