package pokelinks

import (
	"strconv"
	"strings"

	"github.com/agl-alexglopez/pokelinks-dlx/poketype"
	"github.com/agl-alexglopez/pokelinks-dlx/rankedset"
)

// coverageSet is keyed by a canonical string built from a solution's
// rank and sorted contents, collapsing the duplicate RankedSets that
// overlapping cover is expected to produce across different branches
// of the search (see Design Notes on overlapping-cover duplicates:
// deduplication happens here, never by pruning the search itself).
type coverageSet map[string]rankedset.RankedSet[poketype.TypeEncoding]

func canonicalKey(s *rankedset.RankedSet[poketype.TypeEncoding]) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.Rank()))
	for _, item := range s.Items() {
		b.WriteByte('|')
		b.WriteString(item.Display())
	}
	return b.String()
}

func (c coverageSet) toSlice() []rankedset.RankedSet[poketype.TypeEncoding] {
	out := make([]rankedset.RankedSet[poketype.TypeEncoding], 0, len(c))
	for _, v := range c {
		out = append(out, v)
	}
	return out
}

// ExactCoveragesFunctional runs the recursive exact-cover search to
// depthLimit, returning every distinct RankedSet of options that
// covers each item exactly once. The matrix is fully restored before
// this method returns.
func (p *PokemonLinks) ExactCoveragesFunctional(depthLimit int) []rankedset.RankedSet[poketype.TypeEncoding] {
	return p.ExactCoveragesFunctionalWithStats(depthLimit, nil)
}

// ExactCoveragesFunctionalWithStats is ExactCoveragesFunctional with an
// optional *SearchStats that accumulates node-visit and max-depth
// counters as the recursion runs; pass nil to skip the bookkeeping
// entirely.
func (p *PokemonLinks) ExactCoveragesFunctionalWithStats(depthLimit int, stats *SearchStats) []rankedset.RankedSet[poketype.TypeEncoding] {
	p.hitLimit = false
	coverages := make(coverageSet)
	partial := rankedset.New[poketype.TypeEncoding](depthLimit)
	if stats != nil && stats.Debug {
		p.log.Debugw("exact cover functional start", "session", p.id, "depthLimit", depthLimit, "state", p.debugDump())
	}
	p.fillExact(coverages, &partial, depthLimit, stats)
	if stats != nil && stats.Debug {
		p.log.Debugw("exact cover functional done", "session", p.id, "solutions", len(coverages), "hitLimit", p.hitLimit, "state", p.debugDump())
	}
	return coverages.toSlice()
}

func (p *PokemonLinks) fillExact(coverages coverageSet, partial *rankedset.RankedSet[poketype.TypeEncoding], depthLimit int, stats *SearchStats) {
	stats.visit(partial.Size())
	if p.itemTable[0].right == 0 {
		if depthLimit >= 0 {
			coverages[canonicalKey(partial)] = partial.Clone()
			if stats != nil {
				stats.Solutions++
			}
		}
		return
	}
	if depthLimit <= 0 {
		return
	}
	item := p.chooseItem()
	if item == 0 {
		return
	}
	for cur := p.links[item].down; cur != item; cur = p.links[cur].down {
		name, score := p.cover(cur)
		partial.Insert(score, name)
		p.fillExact(coverages, partial, depthLimit-1, stats)
		if len(coverages) == p.maxOutput {
			p.hitLimit = true
			p.uncover(cur)
			return
		}
		partial.Erase(score, name)
		p.uncover(cur)
	}
}

// searchFrame is one level of the explicit stack used by
// ExactCoveragesStack. active is true while this frame's current
// option is covered and awaiting the matching erase/uncover; option
// always starts as the first option in item's column.
type searchFrame struct {
	item   int
	option int
	active bool
	score  int
	name   poketype.TypeEncoding
}

// ExactCoveragesStack is the explicit-stack equivalent of
// ExactCoveragesFunctional. It returns the same set of solutions as its
// recursive counterpart for every input and depthLimit; the order of
// the returned slice is not defined for either driver.
func (p *PokemonLinks) ExactCoveragesStack(depthLimit int) []rankedset.RankedSet[poketype.TypeEncoding] {
	return p.ExactCoveragesStackWithStats(depthLimit, nil)
}

// ExactCoveragesStackWithStats is ExactCoveragesStack with an optional
// *SearchStats; pass nil to skip the bookkeeping.
func (p *PokemonLinks) ExactCoveragesStackWithStats(depthLimit int, stats *SearchStats) []rankedset.RankedSet[poketype.TypeEncoding] {
	p.hitLimit = false
	coverages := make(coverageSet)
	partial := rankedset.New[poketype.TypeEncoding](depthLimit)

	if depthLimit >= 0 && p.itemTable[0].right == 0 {
		coverages[canonicalKey(&partial)] = partial.Clone()
		return coverages.toSlice()
	}
	if depthLimit <= 0 {
		return coverages.toSlice()
	}
	item := p.chooseItem()
	if item == 0 {
		return coverages.toSlice()
	}

	stack := []*searchFrame{{item: item, option: p.links[item].down}}
	limitHit := false

	for len(stack) > 0 && !limitHit {
		top := stack[len(stack)-1]

		if top.active {
			partial.Erase(top.score, top.name)
			p.uncover(top.option)
			top.active = false
			top.option = p.links[top.option].down
		}

		if top.option == top.item {
			stack = stack[:len(stack)-1]
			continue
		}

		name, score := p.cover(top.option)
		partial.Insert(score, name)
		top.active = true
		top.score = score
		top.name = name
		stats.visit(partial.Size())

		childDepth := depthLimit - len(stack)
		switch {
		case p.itemTable[0].right == 0:
			if childDepth >= 0 {
				coverages[canonicalKey(&partial)] = partial.Clone()
				if stats != nil {
					stats.Solutions++
				}
			}
		case childDepth > 0:
			if nextItem := p.chooseItem(); nextItem != 0 {
				stack = append(stack, &searchFrame{item: nextItem, option: p.links[nextItem].down})
			}
		}

		if len(coverages) == p.maxOutput {
			p.hitLimit = true
			limitHit = true
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].active {
			p.uncover(stack[i].option)
		}
	}
	return coverages.toSlice()
}

// OverlappingCoveragesFunctional runs the recursive overlapping-cover
// search to depthLimit, returning every distinct RankedSet of options
// such that each item is covered by at least one option. The matrix
// is fully restored before this method returns.
func (p *PokemonLinks) OverlappingCoveragesFunctional(depthLimit int) []rankedset.RankedSet[poketype.TypeEncoding] {
	return p.OverlappingCoveragesFunctionalWithStats(depthLimit, nil)
}

// OverlappingCoveragesFunctionalWithStats is OverlappingCoveragesFunctional
// with an optional *SearchStats; pass nil to skip the bookkeeping.
func (p *PokemonLinks) OverlappingCoveragesFunctionalWithStats(depthLimit int, stats *SearchStats) []rankedset.RankedSet[poketype.TypeEncoding] {
	p.hitLimit = false
	coverages := make(coverageSet)
	partial := rankedset.New[poketype.TypeEncoding](depthLimit)
	if stats != nil && stats.Debug {
		p.log.Debugw("overlapping cover functional start", "session", p.id, "depthLimit", depthLimit, "state", p.debugDump())
	}
	p.fillOverlapping(coverages, &partial, depthLimit, stats)
	if stats != nil && stats.Debug {
		p.log.Debugw("overlapping cover functional done", "session", p.id, "solutions", len(coverages), "hitLimit", p.hitLimit, "state", p.debugDump())
	}
	return coverages.toSlice()
}

func (p *PokemonLinks) fillOverlapping(coverages coverageSet, partial *rankedset.RankedSet[poketype.TypeEncoding], depthLimit int, stats *SearchStats) {
	stats.visit(partial.Size())
	if p.itemTable[0].right == 0 {
		if depthLimit >= 0 {
			coverages[canonicalKey(partial)] = partial.Clone()
			if stats != nil {
				stats.Solutions++
			}
		}
		return
	}
	if depthLimit <= 0 {
		return
	}
	item := p.chooseItem()
	if item == 0 {
		return
	}
	for cur := p.links[item].down; cur != item; cur = p.links[cur].down {
		name, score := p.overlappingCover(cur, depthLimit)
		partial.Insert(score, name)
		p.fillOverlapping(coverages, partial, depthLimit-1, stats)
		if len(coverages) == p.maxOutput {
			p.hitLimit = true
			p.overlappingUncover(cur)
			return
		}
		partial.Erase(score, name)
		p.overlappingUncover(cur)
	}
}

// OverlappingCoveragesStack is the explicit-stack equivalent of
// OverlappingCoveragesFunctional.
func (p *PokemonLinks) OverlappingCoveragesStack(depthLimit int) []rankedset.RankedSet[poketype.TypeEncoding] {
	return p.OverlappingCoveragesStackWithStats(depthLimit, nil)
}

// OverlappingCoveragesStackWithStats is OverlappingCoveragesStack with
// an optional *SearchStats; pass nil to skip the bookkeeping.
func (p *PokemonLinks) OverlappingCoveragesStackWithStats(depthLimit int, stats *SearchStats) []rankedset.RankedSet[poketype.TypeEncoding] {
	p.hitLimit = false
	coverages := make(coverageSet)
	partial := rankedset.New[poketype.TypeEncoding](depthLimit)

	if depthLimit >= 0 && p.itemTable[0].right == 0 {
		coverages[canonicalKey(&partial)] = partial.Clone()
		return coverages.toSlice()
	}
	if depthLimit <= 0 {
		return coverages.toSlice()
	}
	item := p.chooseItem()
	if item == 0 {
		return coverages.toSlice()
	}

	stack := []*searchFrame{{item: item, option: p.links[item].down}}
	limitHit := false

	for len(stack) > 0 && !limitHit {
		top := stack[len(stack)-1]
		depthTag := depthLimit - len(stack) + 1

		if top.active {
			partial.Erase(top.score, top.name)
			p.overlappingUncover(top.option)
			top.active = false
			top.option = p.links[top.option].down
		}

		if top.option == top.item {
			stack = stack[:len(stack)-1]
			continue
		}

		name, score := p.overlappingCover(top.option, depthTag)
		partial.Insert(score, name)
		top.active = true
		top.score = score
		top.name = name
		stats.visit(partial.Size())

		childDepth := depthLimit - len(stack)
		switch {
		case p.itemTable[0].right == 0:
			if childDepth >= 0 {
				coverages[canonicalKey(&partial)] = partial.Clone()
				if stats != nil {
					stats.Solutions++
				}
			}
		case childDepth > 0:
			if nextItem := p.chooseItem(); nextItem != 0 {
				stack = append(stack, &searchFrame{item: nextItem, option: p.links[nextItem].down})
			}
		}

		if len(coverages) == p.maxOutput {
			p.hitLimit = true
			limitHit = true
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].active {
			p.overlappingUncover(stack[i].option)
		}
	}
	return coverages.toSlice()
}
