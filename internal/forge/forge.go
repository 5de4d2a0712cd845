// Package forge generates characters from a seed and optional parameters.
//
// Generation is a single forward pass over one random stream:
//
//	archetype -> identity -> personality/appearance -> affiliation ->
//	subtaste -> lore (relic or chronicle) -> variance -> skin
//
// The order of draws is fixed. Reordering any stage changes the output for
// every existing seed.
package forge

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/chromox/forge/internal/archetype"
	"github.com/chromox/forge/internal/identity"
	"github.com/chromox/forge/internal/logger"
	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/persona"
	"github.com/chromox/forge/internal/relic"
	"github.com/chromox/forge/internal/rng"
	"github.com/chromox/forge/internal/skin"
	"github.com/chromox/forge/internal/subtaste"
	"github.com/chromox/forge/internal/variance"
)

// Generate builds a character from the embedded tables.
func Generate(seed int64, p Params) *Character {
	return GenerateWith(lore.Default(), seed, p)
}

// GenerateWith builds a character from t. It never fails; unknown parameter
// values resolve from the stream and numbers are clamped.
func GenerateWith(t *lore.Tables, seed int64, p Params) *Character {
	p = p.normalized()
	s := rng.New(seed)

	a := archetype.Select(s, t)
	id := identity.Compose(s, t, p.identityOptions())
	pers, look := persona.Synthesize(s, t, a)
	aff := persona.Affiliate(s, t)

	c := &Character{
		Seed:        seed,
		Identity:    id,
		Affiliation: aff,
		Archetype:   a,
		Subtaste:    subtaste.Classify(a.Key),
		Appearance:  look,
		Personality: pers,
		Params:      p,
		tables:      t,
	}

	if p.Relic {
		era := relic.ResolveEra(s, p.Era)
		c.Params.Era = era
		c.Lore = &Relic{Lore: relic.Forge(s, t, era, a, aff)}
	} else {
		c.Lore = &Chronicle{Text: persona.Backstory(id.Heritage, aff, a, pers)}
	}

	c.varianceState = s.State()
	c.Name = skin.Apply(variance.Apply(id.Name, p.Variance, s), p.Skin, s, t)

	logger.Debug("character generated",
		"seed", seed,
		"mode", c.Mode(),
		"strategy", id.Strategy,
		"system", a.System,
		"archetype", a.Key)
	return c
}

// Batch generates one character per seed on up to workers goroutines. Each
// generation owns its stream, so results match sequential Generate calls
// and keep the order of seeds.
func Batch(ctx context.Context, t *lore.Tables, seeds []int64, p Params, workers int) ([]*Character, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]*Character, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			out[i] = GenerateWith(t, seed, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
