package pokelinks

import "github.com/agl-alexglopez/pokelinks-dlx/poketype"

// chooseItem scans the active item header list for the column with
// the fewest live options, the MRV heuristic. It returns 0 (the
// sentinel) if any active column is already empty - that branch of
// the search is infeasible - or if there are no active items left.
func (p *PokemonLinks) chooseItem() int {
	chosen := 0
	minLen := -1
	for cur := p.itemTable[0].right; cur != 0; cur = p.itemTable[cur].right {
		length := p.links[cur].topOrLen
		if length == 0 {
			return 0
		}
		if minLen == -1 || length < minLen {
			minLen = length
			chosen = cur
		}
	}
	return chosen
}

// hideOptions removes, from every other option that shares the item
// at i, the entire row - splicing each of their nodes out of the
// vertical lists of the columns they occupy and shrinking those
// columns' lengths. The row containing i itself is left untouched;
// it is the option being chosen. The column's circular list loops
// back through its own header before reaching i again, so that header
// node (row == p.links[i].topOrLen) is skipped rather than spliced as
// if it were another option's row.
func (p *PokemonLinks) hideOptions(i int) {
	for row := p.links[i].down; row != i; row = p.links[row].down {
		if row == p.links[i].topOrLen {
			continue
		}
		col := row + 1
		for col != row {
			top := p.links[col].topOrLen
			if top <= 0 {
				col = p.links[col].up
				continue
			}
			p.links[p.links[col].up].down = p.links[col].down
			p.links[p.links[col].down].up = p.links[col].up
			p.links[top].topOrLen--
			col++
		}
	}
}

// unhideOptions is the exact inverse of hideOptions: it restores
// every node hideOptions removed, walking rows and columns in
// reverse order.
func (p *PokemonLinks) unhideOptions(i int) {
	for row := p.links[i].up; row != i; row = p.links[row].up {
		if row == p.links[i].topOrLen {
			continue
		}
		col := row - 1
		for col != row {
			top := p.links[col].topOrLen
			if top <= 0 {
				col = p.links[col].down
				continue
			}
			p.links[top].topOrLen++
			p.links[p.links[col].up].down = col
			p.links[p.links[col].down].up = col
			col--
		}
	}
}

func (p *PokemonLinks) spacerOptionName(spacerIndex int) poketype.TypeEncoding {
	first := p.links[spacerIndex].up
	ordinal := -p.links[first-1].topOrLen
	return p.optionTable[ordinal].name
}

// cover performs an exact-cover selection of the option row containing
// indexInOption, returning that option's name and the score
// accumulated from every item node whose column header was still
// alive. Every other option sharing one of those items is spliced out
// via hideOptions so it can no longer be chosen at a deeper level.
func (p *PokemonLinks) cover(indexInOption int) (poketype.TypeEncoding, int) {
	var name poketype.TypeEncoding
	score := 0
	cur := indexInOption
	for {
		top := p.links[cur].topOrLen
		if top <= 0 {
			name = p.spacerOptionName(cur)
			cur = p.links[cur].up
		} else {
			if p.links[top].tag != hiddenTag {
				p.itemTable[p.itemTable[top].left].right = p.itemTable[top].right
				p.itemTable[p.itemTable[top].right].left = p.itemTable[top].left
				p.hideOptions(cur)
				score += int(p.links[cur].multiplier)
			}
			cur++
		}
		if cur == indexInOption {
			break
		}
	}
	return name, score
}

// uncover is the exact inverse of cover: starting just before
// indexInOption, it walks the same row backward, relinking every header
// cover spliced out and restoring every row hideOptions removed, in the
// reverse of the order cover removed them.
func (p *PokemonLinks) uncover(indexInOption int) {
	indexInOption--
	cur := indexInOption
	for {
		top := p.links[cur].topOrLen
		if top <= 0 {
			cur = p.links[cur].down
		} else {
			if p.links[top].tag != hiddenTag {
				p.unhideOptions(cur)
				p.itemTable[p.itemTable[top].left].right = top
				p.itemTable[p.itemTable[top].right].left = top
			}
			cur--
		}
		if cur == indexInOption {
			break
		}
	}
}

// overlappingCover claims every item of the option containing
// indexInOption whose header is neither hidden nor already claimed at a
// shallower depth: it tags that header and this row's node with
// depthTag, splices the header out horizontally, and adds the node's
// multiplier to the score. Unlike cover, other options containing these
// items are left intact and remain selectable at deeper levels.
func (p *PokemonLinks) overlappingCover(indexInOption, depthTag int) (poketype.TypeEncoding, int) {
	var name poketype.TypeEncoding
	score := 0
	cur := indexInOption
	for {
		top := p.links[cur].topOrLen
		if top <= 0 {
			name = p.spacerOptionName(cur)
			cur = p.links[cur].up
		} else {
			if p.links[top].tag == 0 {
				p.links[top].tag = depthTag
				p.itemTable[p.itemTable[top].left].right = p.itemTable[top].right
				p.itemTable[p.itemTable[top].right].left = p.itemTable[top].left
				score += int(p.links[cur].multiplier)
				p.links[cur].tag = depthTag
			}
			cur++
		}
		if cur == indexInOption {
			break
		}
	}
	return name, score
}

// overlappingUncover is the inverse of overlappingCover: starting just
// before indexInOption and walking the row backward, it clears the
// depth tags it finds and relinks headers whose tag matches the node's
// own tag, leaving hidden headers untouched.
func (p *PokemonLinks) overlappingUncover(indexInOption int) {
	indexInOption--
	cur := indexInOption
	for {
		top := p.links[cur].topOrLen
		if top <= 0 {
			cur = p.links[cur].down
		} else {
			if p.links[cur].tag == p.links[top].tag {
				p.links[top].tag = 0
				p.links[cur].tag = 0
				p.itemTable[p.itemTable[top].left].right = top
				p.itemTable[p.itemTable[top].right].left = top
			} else if p.links[top].tag == hiddenTag {
				p.links[cur].tag = 0
			}
			cur--
		}
		if cur == indexInOption {
			break
		}
	}
}
