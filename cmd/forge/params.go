package main

import (
	"github.com/spf13/cobra"

	"github.com/chromox/forge/internal/config"
	"github.com/chromox/forge/internal/forge"
	"github.com/chromox/forge/internal/lore"
)

// paramFlags are the generation flags shared by generate, vary and batch.
// Flags left unset fall back to the config's generation defaults.
type paramFlags struct {
	heritage string
	gender   string
	blend    bool
	mononym  bool
	strategy string
	relic    bool
	era      string
	skin     string
	variance float64
}

func (f *paramFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.heritage, "heritage", "", "Heritage culture, or \"blend\"")
	fs.StringVar(&f.gender, "gender", "", "Gender: masculine, feminine or neutral")
	fs.BoolVar(&f.blend, "heritage-blend", false, "Build the name from two syllable-built names")
	fs.BoolVar(&f.mononym, "mononym", false, "Generate a single-word name")
	fs.StringVar(&f.strategy, "strategy", "", "Mononym strategy: squished, simple, aminal_blend, aminal_clear")
	fs.BoolVar(&f.relic, "relic", false, "Generate relic lore instead of a personal backstory")
	fs.StringVar(&f.era, "era", "", "Relic era: archaic, modern or hybrid")
	fs.StringVar(&f.skin, "skin", "", "Aesthetic skin applied to the final name")
	fs.Float64Var(&f.variance, "variance", 0, "Name variance percent, 0-100")
}

// params overlays the changed flags on the configured defaults and rejects
// heritage and skin values the loaded tables do not define.
func (f *paramFlags) params(cmd *cobra.Command, defaults config.GenerationConfig, t *lore.Tables) (forge.Params, error) {
	g := defaults
	fs := cmd.Flags()
	if fs.Changed("heritage") {
		g.Heritage = f.heritage
	}
	if fs.Changed("gender") {
		g.Gender = f.gender
	}
	if fs.Changed("heritage-blend") {
		g.HeritageBlend = f.blend
	}
	if fs.Changed("mononym") {
		g.Mononym = f.mononym
	}
	if fs.Changed("strategy") {
		g.MononymStrategy = f.strategy
		g.Mononym = true
	}
	if fs.Changed("relic") {
		g.Relic = f.relic
	}
	if fs.Changed("era") {
		g.Era = f.era
		g.Relic = true
	}
	if fs.Changed("skin") {
		g.Skin = f.skin
	}
	if fs.Changed("variance") {
		g.Variance = f.variance
	}
	p, err := g.Params()
	if err != nil {
		return forge.Params{}, err
	}
	if err := p.Check(t); err != nil {
		return forge.Params{}, err
	}
	return p, nil
}
