package pokelinks

import (
	"github.com/agl-alexglopez/pokelinks-dlx/poketype"
	"github.com/agl-alexglopez/pokelinks-dlx/rankedset"
)

// The functions in this file are a thin free-function façade over
// *PokemonLinks, forwarding one-to-one to its methods. They exist so
// callers that only need the query surface can depend on a handful of
// functions rather than the whole method set.

func Items(p *PokemonLinks) []poketype.TypeEncoding { return p.Items() }

func Options(p *PokemonLinks) []poketype.TypeEncoding { return p.Options() }

func NumItems(p *PokemonLinks) int { return p.NumItems() }

func NumOptions(p *PokemonLinks) int { return p.NumOptions() }

func GetCoverageType(p *PokemonLinks) CoverageType { return p.CoverageType() }

func HasItem(p *PokemonLinks, t poketype.TypeEncoding) bool { return p.HasItem(t) }

func HasOption(p *PokemonLinks, t poketype.TypeEncoding) bool { return p.HasOption(t) }

func HideItem(p *PokemonLinks, t poketype.TypeEncoding) bool { return p.HideItem(t) }

func HideOption(p *PokemonLinks, t poketype.TypeEncoding) bool { return p.HideOption(t) }

func ExactCoverFunctional(p *PokemonLinks, depthLimit int) []rankedset.RankedSet[poketype.TypeEncoding] {
	return p.ExactCoveragesFunctional(depthLimit)
}

func ExactCoverStack(p *PokemonLinks, depthLimit int) []rankedset.RankedSet[poketype.TypeEncoding] {
	return p.ExactCoveragesStack(depthLimit)
}

func OverlappingCoverFunctional(p *PokemonLinks, depthLimit int) []rankedset.RankedSet[poketype.TypeEncoding] {
	return p.OverlappingCoveragesFunctional(depthLimit)
}

func OverlappingCoverStack(p *PokemonLinks, depthLimit int) []rankedset.RankedSet[poketype.TypeEncoding] {
	return p.OverlappingCoveragesStack(depthLimit)
}

func HasMaxSolutions(p *PokemonLinks) bool { return p.ReachedOutputLimit() }

func NumHiddenItems(p *PokemonLinks) int { return p.NumHiddenItems() }

func NumHiddenOptions(p *PokemonLinks) int { return p.NumHiddenOptions() }

func ResetItems(p *PokemonLinks) { p.ResetItems() }

func ResetOptions(p *PokemonLinks) { p.ResetOptions() }

func ResetItemsOptions(p *PokemonLinks) { p.ResetItemsOptions() }
