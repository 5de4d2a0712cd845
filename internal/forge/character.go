package forge

import (
	"encoding/json"

	"github.com/chromox/forge/internal/archetype"
	"github.com/chromox/forge/internal/identity"
	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/persona"
	"github.com/chromox/forge/internal/relic"
	"github.com/chromox/forge/internal/rng"
	"github.com/chromox/forge/internal/skin"
	"github.com/chromox/forge/internal/subtaste"
	"github.com/chromox/forge/internal/variance"
)

// Lore is the mode-specific part of a character: a *Chronicle for persona
// mode or a *Relic for relic mode.
type Lore interface {
	Mode() Mode
	// Story is the backstory prose shown for the character.
	Story() string
	sealed()
}

// Chronicle is the personal backstory of a persona-mode character.
type Chronicle struct {
	Text string
}

func (*Chronicle) Mode() Mode { return ModePersona }
func (c *Chronicle) Story() string { return c.Text }
func (*Chronicle) sealed() {}

// Relic is the relic-mode lore: the object, sacred number, pseudonym and
// optional sample post.
type Relic struct {
	relic.Lore
}

func (*Relic) Mode() Mode { return ModeRelic }
func (r *Relic) Story() string { return r.Lore.Backstory }
func (*Relic) sealed() {}

// Character is a generated character. Seed always equals the seed it was
// generated from.
type Character struct {
	Seed        int64
	Name        string
	Identity    identity.Identity
	Affiliation persona.Affiliation
	Archetype   archetype.Archetype
	Subtaste    subtaste.Designation
	Appearance  persona.Appearance
	Personality persona.Personality
	Lore        Lore
	Params      Params

	tables *lore.Tables
	// stream state right before the variance stage
	varianceState int64
}

// BaseName is the canonical name before variance and skin.
func (c *Character) BaseName() string {
	return c.Identity.Name
}

// Backstory returns the lore prose for either mode.
func (c *Character) Backstory() string {
	return c.Lore.Story()
}

// Mode reports the lore variant.
func (c *Character) Mode() Mode {
	return c.Lore.Mode()
}

// Relic returns the relic lore when the character was generated in relic mode.
func (c *Character) Relic() (*relic.Lore, bool) {
	r, ok := c.Lore.(*Relic)
	if !ok {
		return nil, false
	}
	return &r.Lore, true
}

// Revary re-renders the final name at a new variance. The base name is
// always the input, so the result equals Generate with the same seed and
// the new variance; the receiver is not modified.
func (c *Character) Revary(percent float64) *Character {
	out := *c
	out.Params.Variance = variance.Clamp(percent)
	t := c.tables
	if t == nil {
		t = lore.Default()
	}
	s := rng.Restore(c.varianceState)
	out.Name = skin.Apply(variance.Apply(c.Identity.Name, out.Params.Variance, s), c.Params.Skin, s, t)
	return &out
}

// RelicRecord is the relic section of a Record.
type RelicRecord struct {
	Era          relic.Era    `json:"era" yaml:"era"`
	Object       relic.Record `json:"object" yaml:"object"`
	Sacred       relic.Sacred `json:"sacred" yaml:"sacred"`
	SacredNumber int          `json:"sacred_number" yaml:"sacred_number"`
	Pseudonym    string       `json:"pseudonym" yaml:"pseudonym"`
	Post         *relic.Post  `json:"sample_post,omitempty" yaml:"sample_post,omitempty"`
}

// Record is the flat serializable form of a Character. Relic is set only
// in relic mode.
type Record struct {
	Seed        int64                `json:"seed" yaml:"seed"`
	Mode        Mode                 `json:"mode" yaml:"mode"`
	Name        string               `json:"name" yaml:"name"`
	BaseName    string               `json:"base_name" yaml:"base_name"`
	Gender      identity.Gender      `json:"gender" yaml:"gender"`
	Heritage    string               `json:"heritage" yaml:"heritage"`
	Culture     string               `json:"culture" yaml:"culture"`
	Strategy    identity.Strategy    `json:"strategy" yaml:"strategy"`
	Affiliation persona.Affiliation  `json:"affiliation" yaml:"affiliation"`
	Archetype   archetype.Archetype  `json:"archetype" yaml:"archetype"`
	Subtaste    subtaste.Designation `json:"subtaste" yaml:"subtaste"`
	Appearance  persona.Appearance   `json:"appearance" yaml:"appearance"`
	Personality persona.Personality  `json:"personality" yaml:"personality"`
	Backstory   string               `json:"backstory" yaml:"backstory"`
	Relic       *RelicRecord         `json:"relic,omitempty" yaml:"relic,omitempty"`
	Variance    float64              `json:"variance" yaml:"variance"`
	Skin        string               `json:"skin,omitempty" yaml:"skin,omitempty"`
	Tables      string               `json:"tables" yaml:"tables"`
}

// Record flattens the character for output.
func (c *Character) Record() Record {
	rec := Record{
		Seed:        c.Seed,
		Mode:        c.Mode(),
		Name:        c.Name,
		BaseName:    c.BaseName(),
		Gender:      c.Identity.Gender,
		Heritage:    c.Identity.Heritage,
		Culture:     c.Identity.Culture,
		Strategy:    c.Identity.Strategy,
		Affiliation: c.Affiliation,
		Archetype:   c.Archetype,
		Subtaste:    c.Subtaste,
		Appearance:  c.Appearance,
		Personality: c.Personality,
		Backstory:   c.Backstory(),
		Variance:    c.Params.Variance,
		Skin:        c.Params.Skin,
	}
	if c.tables != nil {
		rec.Tables = c.tables.Digest()
	}
	if l, ok := c.Relic(); ok {
		rec.Relic = &RelicRecord{
			Era:          l.Era,
			Object:       l.Record,
			Sacred:       l.Sacred,
			SacredNumber: l.Sacred.Number(),
			Pseudonym:    l.Pseudonym,
			Post:         l.Post,
		}
	}
	return rec
}

// MarshalJSON encodes the character as its Record.
func (c *Character) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Record())
}
