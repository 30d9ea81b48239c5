// Command pokecover is a thin demonstration CLI over the pokelinks
// façade: it builds a matrix from a small embedded fixture and prints
// whichever coverage the flags ask for. It contains no coverage logic
// of its own - every computation goes through pokelinks' exported
// search methods.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/agl-alexglopez/pokelinks-dlx/pokelinks"
	"github.com/agl-alexglopez/pokelinks-dlx/pokesource"
	"github.com/agl-alexglopez/pokelinks-dlx/poketype"
	"github.com/agl-alexglopez/pokelinks-dlx/rankedset"
)

var fixture = []byte(`[
	{"type": "Electric", "resistances": ["half:Electric"]},
	{"type": "Ghost", "resistances": ["immune:Normal"]},
	{"type": "Ground", "resistances": ["immune:Electric"]},
	{"type": "Ice", "resistances": ["half:Ice"]},
	{"type": "Poison", "resistances": ["half:Grass"]},
	{"type": "Water", "resistances": ["half:Ice", "half:Water"]}
]`)

type cli struct {
	Mode       string `enum:"exact,overlapping" default:"exact" help:"Coverage mode to run."`
	Depth      int    `default:"6" help:"Maximum team size / search depth."`
	Driver     string `enum:"recursive,stack" default:"recursive" help:"Which search driver to use."`
	Generation int    `default:"1" help:"Generation passed to the fixture loader, which ignores it."`
	Debug      bool   `help:"Print search statistics after the run; no per-step trace is logged."`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("pokecover"),
		kong.Description("Demonstrates the pokelinks type-coverage solver over a small fixture."),
	)
	if err := c.run(); err != nil {
		fmt.Fprintln(os.Stderr, "pokecover:", err)
		os.Exit(1)
	}
}

func (c *cli) run() error {
	loader := pokesource.NewStaticLoader(fixture)
	interactions, err := loader.Load(context.Background(), c.Generation)
	if err != nil {
		return err
	}

	links, err := pokelinks.NewDefenseLinks(interactions)
	if err != nil {
		return err
	}

	session := pokelinks.NewSession(links)
	session.Stats.Debug = c.Debug

	printSolutions(c.search(links, session.Stats))

	if links.ReachedOutputLimit() {
		fmt.Println("note: output truncated at MaxOutput")
	}
	if c.Debug {
		fmt.Printf("nodes=%d maxLevel=%d solutions=%d session=%s\n",
			session.Stats.Nodes, session.Stats.MaxLevel, session.Stats.Solutions, session.Stats.CorrelationID())
	}
	return nil
}

func (c *cli) search(links *pokelinks.PokemonLinks, stats *pokelinks.SearchStats) []rankedset.RankedSet[poketype.TypeEncoding] {
	switch {
	case c.Mode == "exact" && c.Driver == "recursive":
		return links.ExactCoveragesFunctionalWithStats(c.Depth, stats)
	case c.Mode == "exact":
		return links.ExactCoveragesStackWithStats(c.Depth, stats)
	case c.Driver == "recursive":
		return links.OverlappingCoveragesFunctionalWithStats(c.Depth, stats)
	default:
		return links.OverlappingCoveragesStackWithStats(c.Depth, stats)
	}
}

func printSolutions(solutions []rankedset.RankedSet[poketype.TypeEncoding]) {
	for _, s := range solutions {
		fmt.Printf("rank=%d {", s.Rank())
		for i, item := range s.Items() {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(item.Display())
		}
		fmt.Println("}")
	}
}
