// Package persona synthesizes personality, appearance, affiliation and
// backstory prose for a generated character.
package persona

import (
	"math"
	"strings"

	"github.com/chromox/forge/internal/archetype"
	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/rng"
)

// Personality holds the four continuous axes and descriptive traits.
// Each axis is in [0, 1]; 0 is the first pole.
type Personality struct {
	OrderChaos        float64 `json:"order_chaos" yaml:"order_chaos"`
	MercyRuthlessness float64 `json:"mercy_ruthlessness" yaml:"mercy_ruthlessness"`
	IntroExtro        float64 `json:"introversion_extroversion" yaml:"introversion_extroversion"`
	FaithDoubt        float64 `json:"faith_doubt" yaml:"faith_doubt"`
	CoreDesire        string  `json:"core_desire" yaml:"core_desire"`
	DeepFear          string  `json:"deep_fear" yaml:"deep_fear"`
	VoiceTone         string  `json:"voice_tone" yaml:"voice_tone"`
}

// Appearance holds the descriptive appearance draws.
type Appearance struct {
	Build       string `json:"build" yaml:"build"`
	Distinctive string `json:"distinctive_trait" yaml:"distinctive_trait"`
	Style       string `json:"style" yaml:"style"`
}

// Affiliation is the order a character serves and their office within it.
type Affiliation struct {
	Order    string `json:"order" yaml:"order"`
	Ideology string `json:"ideology" yaml:"ideology"`
	Office   string `json:"office" yaml:"office"`
}

// Outgoing reports whether the character leans toward the extrovert pole.
func (p Personality) Outgoing() bool {
	return p.IntroExtro >= 0.5
}

// Synthesize draws the personality and appearance. Draw order: four axes,
// fear, voice tone, build, distinctive trait, style.
func Synthesize(s *rng.Stream, t *lore.Tables, a archetype.Archetype) (Personality, Appearance) {
	p := Personality{
		OrderChaos:        axis(s),
		MercyRuthlessness: axis(s),
		IntroExtro:        axis(s),
		FaithDoubt:        axis(s),
		CoreDesire:        a.Desire,
	}
	p.DeepFear = rng.Pick(s, t.Traits.Fears)
	p.VoiceTone = rng.Pick(s, t.Traits.VoiceTones)

	app := Appearance{
		Build:       rng.Pick(s, t.Traits.Builds),
		Distinctive: rng.Pick(s, t.Traits.Distinctive),
		Style:       rng.Pick(s, t.Traits.Styles),
	}
	return p, app
}

// axis draws one axis value rounded to two decimals.
func axis(s *rng.Stream) float64 {
	return math.Round(s.Next()*100) / 100
}

// Affiliate draws an order and then an office within it.
func Affiliate(s *rng.Stream, t *lore.Tables) Affiliation {
	o := rng.Pick(s, t.Orders)
	return Affiliation{
		Order:    o.Name,
		Ideology: o.Ideology,
		Office:   rng.Pick(s, o.Offices),
	}
}

// Backstory assembles the normal-mode backstory. It consumes no draws.
func Backstory(heritage string, aff Affiliation, a archetype.Archetype, p Personality) string {
	disposition := "Reserved and watchful"
	if p.Outgoing() {
		disposition = "Outgoing and restless"
	}

	sentences := []string{
		"Born of " + heritage + " blood, they serve " + aff.Order + " as its " + aff.Office + ".",
		"Their path follows " + a.Key + " of the " + a.System + " tradition: " + a.Meaning + ".",
		disposition + ", they hold to the creed that " + aff.Ideology + ".",
		"Above all, they long " + a.Desire + ".",
	}
	return strings.Join(sentences, " ")
}
