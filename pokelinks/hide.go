package pokelinks

import (
	"math"

	"github.com/agl-alexglopez/pokelinks-dlx/poketype"
)

// HideItem removes item t from the active item list persistently,
// pushing it onto the hidden-items stack so PopHiddenItem can later
// restore it. Returns false, with no effect, if t is not a current
// item or is already hidden.
func (p *PokemonLinks) HideItem(t poketype.TypeEncoding) bool {
	i := p.findItemIndex(t)
	if i == 0 || p.links[i].tag == hiddenTag {
		return false
	}
	p.hiddenItems = append(p.hiddenItems, i)
	p.hideItemAt(i)
	return true
}

// HideItems hides every item in items, returning false if any one of
// them was already absent or hidden. Items that did succeed remain
// hidden even when the overall result is false.
func (p *PokemonLinks) HideItems(items []poketype.TypeEncoding) bool {
	ok := true
	for _, t := range items {
		if !p.HideItem(t) {
			ok = false
		}
	}
	return ok
}

// HideAllItemsExcept hides every active item whose name is not in
// keep.
func (p *PokemonLinks) HideAllItemsExcept(keep TypeSet) {
	for i := p.itemTable[0].right; i != 0; i = p.itemTable[i].right {
		if _, ok := keep[p.itemTable[i].name]; !ok {
			p.hiddenItems = append(p.hiddenItems, i)
			p.hideItemAt(i)
		}
	}
}

func (p *PokemonLinks) hideItemAt(i int) {
	left, right := p.itemTable[i].left, p.itemTable[i].right
	p.itemTable[left].right = right
	p.itemTable[right].left = left
	p.links[i].tag = hiddenTag
	p.numItems--
}

func (p *PokemonLinks) unhideItemAt(i int) {
	left, right := p.itemTable[i].left, p.itemTable[i].right
	p.itemTable[left].right = i
	p.itemTable[right].left = i
	p.links[i].tag = 0
	p.numItems++
}

// PopHiddenItem restores the most recently hidden item. It panics if
// the hidden-items stack is empty: the domain has no meaningful
// recovery from popping an empty stack.
func (p *PokemonLinks) PopHiddenItem() {
	if len(p.hiddenItems) == 0 {
		panic(ErrPopEmptyStack)
	}
	top := p.hiddenItems[len(p.hiddenItems)-1]
	p.hiddenItems = p.hiddenItems[:len(p.hiddenItems)-1]
	p.unhideItemAt(top)
}

// ResetItems restores every hidden item, draining the stack.
func (p *PokemonLinks) ResetItems() {
	for len(p.hiddenItems) > 0 {
		p.PopHiddenItem()
	}
}

// HasItem reports whether t is a current, non-hidden item.
func (p *PokemonLinks) HasItem(t poketype.TypeEncoding) bool {
	i := p.findItemIndex(t)
	return i != 0 && p.links[i].tag != hiddenTag
}

// NumHiddenItems reports the depth of the hidden-items stack.
func (p *PokemonLinks) NumHiddenItems() int { return len(p.hiddenItems) }

// HideOption removes option t from the active option list persistently,
// splicing every one of its item nodes out of their columns' vertical
// lists. Returns false, with no effect, if t is not a current option
// or is already hidden.
func (p *PokemonLinks) HideOption(t poketype.TypeEncoding) bool {
	spacer := p.findOptionIndex(t)
	if spacer == 0 || p.links[spacer].tag == hiddenTag {
		return false
	}
	p.hiddenOptions = append(p.hiddenOptions, spacer)
	p.hideOptionAt(spacer)
	return true
}

// HideOptions hides every option in options, returning false if any
// one of them was already absent or hidden.
func (p *PokemonLinks) HideOptions(options []poketype.TypeEncoding) bool {
	ok := true
	for _, t := range options {
		if !p.HideOption(t) {
			ok = false
		}
	}
	return ok
}

// HideAllOptionsExcept hides every active option whose name is not in
// keep.
func (p *PokemonLinks) HideAllOptionsExcept(keep TypeSet) {
	for i := len(p.itemTable); p.links[i].topOrLen != math.MinInt32; i = p.links[i].down + 1 {
		if p.links[i].tag == hiddenTag {
			continue
		}
		ordinal := -p.links[i].topOrLen
		if _, ok := keep[p.optionTable[ordinal].name]; !ok {
			p.hiddenOptions = append(p.hiddenOptions, i)
			p.hideOptionAt(i)
		}
	}
}

func (p *PokemonLinks) hideOptionAt(spacer int) {
	p.links[spacer].tag = hiddenTag
	for i := spacer + 1; p.links[i].topOrLen > 0; i++ {
		col := p.links[i].topOrLen
		p.links[p.links[i].up].down = p.links[i].down
		p.links[p.links[i].down].up = p.links[i].up
		p.links[col].topOrLen--
	}
	p.numOptions--
}

func (p *PokemonLinks) unhideOptionAt(spacer int) {
	p.links[spacer].tag = 0
	for i := spacer + 1; p.links[i].topOrLen > 0; i++ {
		col := p.links[i].topOrLen
		p.links[p.links[i].up].down = i
		p.links[p.links[i].down].up = i
		p.links[col].topOrLen++
	}
	p.numOptions++
}

// PopHiddenOption restores the most recently hidden option. It panics
// if the hidden-options stack is empty.
func (p *PokemonLinks) PopHiddenOption() {
	if len(p.hiddenOptions) == 0 {
		panic(ErrPopEmptyStack)
	}
	top := p.hiddenOptions[len(p.hiddenOptions)-1]
	p.hiddenOptions = p.hiddenOptions[:len(p.hiddenOptions)-1]
	p.unhideOptionAt(top)
}

// ResetOptions restores every hidden option, draining the stack.
func (p *PokemonLinks) ResetOptions() {
	for len(p.hiddenOptions) > 0 {
		p.PopHiddenOption()
	}
}

// ResetItemsOptions restores every hidden item and option.
func (p *PokemonLinks) ResetItemsOptions() {
	p.ResetItems()
	p.ResetOptions()
}

// HasOption reports whether t is a current, non-hidden option.
func (p *PokemonLinks) HasOption(t poketype.TypeEncoding) bool {
	spacer := p.findOptionIndex(t)
	return spacer != 0 && p.links[spacer].tag != hiddenTag
}

// NumHiddenOptions reports the depth of the hidden-options stack.
func (p *PokemonLinks) NumHiddenOptions() int { return len(p.hiddenOptions) }
