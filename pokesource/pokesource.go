// Package pokesource defines the external-collaborator boundary for
// pokelinks: the interfaces a real generation/map data layer would
// implement, plus one fixture-backed loader for the pokecover demo CLI.
// Parsing move data, species data, or map graphs is explicitly out of
// scope here - this package only produces the ResistanceMap shape
// pokelinks.New consumes.
package pokesource

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agl-alexglopez/pokelinks-dlx/poketype"
)

// ResistanceMap mirrors pokelinks.ResistanceMap so callers in this
// package don't need to import pokelinks for the type alone.
type ResistanceMap = map[poketype.TypeEncoding][]poketype.Resistance

// GenerationLoader produces the full ResistanceMap for one generation.
// A real implementation would read species/move data from a game data
// file; this package never implements one.
type GenerationLoader interface {
	Load(ctx context.Context, generation int) (ResistanceMap, error)
}

// GenerationFilter narrows a ResistanceMap down to the typings that
// actually existed as of the given generation, for callers building a
// historically-accurate matrix. A real implementation would consult a
// per-generation typing table; this package never implements one.
type GenerationFilter interface {
	Filter(all ResistanceMap, generation int) ResistanceMap
}

// fixtureEntry is the wire shape of one StaticLoader row.
type fixtureEntry struct {
	Type        string   `json:"type"`
	Resistances []string `json:"resistances"`
}

var multiplierByLabel = map[string]poketype.Multiplier{
	"immune":    poketype.Immune,
	"quarter":   poketype.Quarter,
	"half":      poketype.Half,
	"normal":    poketype.Normal,
	"double":    poketype.Double,
	"quadruple": poketype.Quadruple,
}

// StaticLoader is a GenerationLoader backed by an embedded JSON
// literal. It ignores the requested generation entirely - it exists
// solely so cmd/pokecover has something concrete to hand to
// pokelinks.NewDefenseLinks, not as a stand-in for a real per-generation
// data source.
type StaticLoader struct {
	raw json.RawMessage
}

// NewStaticLoader wraps a JSON document shaped as a list of
// {"type": "...", "resistances": ["quarter:Fire", "double:Water", ...]}
// entries, where each resistance string is "label:AttackType".
func NewStaticLoader(raw []byte) *StaticLoader {
	return &StaticLoader{raw: json.RawMessage(raw)}
}

// Load parses the embedded document into a ResistanceMap, ignoring
// generation.
func (l *StaticLoader) Load(_ context.Context, _ int) (ResistanceMap, error) {
	var entries []fixtureEntry
	if err := json.Unmarshal(l.raw, &entries); err != nil {
		return nil, fmt.Errorf("pokesource: decode fixture: %w", err)
	}

	out := make(ResistanceMap, len(entries))
	for _, e := range entries {
		typing := poketype.FromString(e.Type)
		resistances := make([]poketype.Resistance, 0, len(e.Resistances))
		for _, r := range e.Resistances {
			label, attackName, ok := strings.Cut(r, ":")
			if !ok {
				return nil, fmt.Errorf("pokesource: malformed resistance entry %q for type %q", r, e.Type)
			}
			mult, ok := multiplierByLabel[label]
			if !ok {
				return nil, fmt.Errorf("pokesource: unknown multiplier label %q for type %q", label, e.Type)
			}
			resistances = append(resistances, poketype.Resistance{
				Type:       poketype.FromString(attackName),
				Multiplier: mult,
			})
		}
		out[typing] = resistances
	}
	return out, nil
}
