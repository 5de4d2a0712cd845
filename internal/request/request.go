// Package request maps generated characters onto the creation requests
// consumed by the persona and relic flows.
package request

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chromox/forge/internal/forge"
	"github.com/chromox/forge/internal/persona"
)

var (
	// ErrNoPersona is returned when a relic request has no target persona.
	ErrNoPersona = errors.New("relic request requires a persona")
	// ErrNotRelic is returned when a relic request is built from a persona-mode character.
	ErrNotRelic = errors.New("character was not generated in relic mode")
	// ErrInvalidTier is returned for relic tiers outside MinTier..MaxTier.
	ErrInvalidTier = errors.New("invalid relic tier")
)

const (
	MinTier = 1
	MaxTier = 5
)

// Persona is a persona-creation request.
type Persona struct {
	Name         string   `json:"name" yaml:"name"`
	Backstory    string   `json:"backstory" yaml:"backstory"`
	Voice        string   `json:"voice" yaml:"voice"`
	Color        string   `json:"color" yaml:"color"`
	Tags         []string `json:"tags" yaml:"tags"`
	SystemPrompt string   `json:"system_prompt" yaml:"system_prompt"`
}

// Relic is a relic-creation request bound to a persona.
type Relic struct {
	PersonaID   string `json:"persona_id" yaml:"persona_id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Lore        string `json:"lore" yaml:"lore"`
	Tier        int    `json:"tier" yaml:"tier"`
	Icon        string `json:"icon" yaml:"icon"`
}

// NewPersona builds a persona-creation request. The color is the caller's
// choice and is passed through unchanged.
func NewPersona(c *forge.Character, color string) Persona {
	return Persona{
		Name:         c.Name,
		Backstory:    c.Backstory(),
		Voice:        VoiceCategory(c.Personality.VoiceTone),
		Color:        color,
		Tags:         Tags(c),
		SystemPrompt: SystemPrompt(c),
	}
}

// NewRelic builds a relic-creation request. An empty icon falls back to the
// character's subtaste glyph.
func NewRelic(c *forge.Character, personaID string, tier int, icon string) (Relic, error) {
	if strings.TrimSpace(personaID) == "" {
		return Relic{}, ErrNoPersona
	}
	l, ok := c.Relic()
	if !ok {
		return Relic{}, ErrNotRelic
	}
	if tier < MinTier || tier > MaxTier {
		return Relic{}, fmt.Errorf("%w: %d not in %d..%d", ErrInvalidTier, tier, MinTier, MaxTier)
	}
	if icon == "" {
		icon = c.Subtaste.Glyph
	}

	var lore strings.Builder
	lore.WriteString(l.Backstory)
	lore.WriteString("\n\nIt answers to the name " + l.Pseudonym + ".")
	lore.WriteString(" Its sacred number is " + strconv.Itoa(l.Sacred.Number()) + ".")
	if l.Post != nil {
		fmt.Fprintf(&lore, "\n\n[%s] %q", l.Post.Category, l.Post.Line)
	}

	return Relic{
		PersonaID:   personaID,
		Name:        l.Record.Name,
		Description: l.Record.Object + ", " + l.Record.Category + ".",
		Lore:        lore.String(),
		Tier:        tier,
		Icon:        icon,
	}, nil
}

// voiceKeywords maps voice-tone keywords to categories. First match wins.
var voiceKeywords = []struct {
	keyword  string
	category string
}{
	{"whisper", "soft"},
	{"breathy", "soft"},
	{"soft", "soft"},
	{"gravel", "deep"},
	{"low", "deep"},
	{"theatrical", "dramatic"},
	{"sharp", "dramatic"},
	{"bright", "bright"},
	{"lilting", "bright"},
	{"musical", "bright"},
	{"formal", "formal"},
	{"crisp", "formal"},
	{"deadpan", "dry"},
	{"dry", "dry"},
	{"warm", "warm"},
}

// DefaultVoice is used when no keyword matches.
const DefaultVoice = "neutral"

// VoiceCategory maps a free-text voice tone to a voice category.
func VoiceCategory(tone string) string {
	tone = strings.ToLower(tone)
	for _, k := range voiceKeywords {
		if strings.Contains(tone, k.keyword) {
			return k.category
		}
	}
	return DefaultVoice
}

// Tags lists subtaste and archetype tags without duplicates, in a stable order.
func Tags(c *forge.Character) []string {
	raw := []string{
		c.Subtaste.Code,
		c.Subtaste.Label,
		c.Archetype.System,
		c.Archetype.Key,
	}
	raw = append(raw, c.Archetype.Shadow...)
	raw = append(raw, c.Archetype.Gifts...)

	seen := make(map[string]bool, len(raw))
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// axisPoles names the low and high pole of each personality axis.
var axisPoles = [4][2]string{
	{"orderly", "chaotic"},
	{"merciful", "ruthless"},
	{"introverted", "extroverted"},
	{"faithful", "doubting"},
}

// SystemPrompt describes the character for a conversational persona.
func SystemPrompt(c *forge.Character) string {
	p := c.Personality
	a := c.Appearance

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, %s of %s, of %s heritage.", c.BaseName(), c.Affiliation.Office, c.Affiliation.Order, c.Identity.Heritage)
	fmt.Fprintf(&b, " You embody %s of the %s tradition: %s.", c.Archetype.Key, c.Archetype.System, c.Archetype.Meaning)
	fmt.Fprintf(&b, " Temperament: %s.", strings.Join(temperament(p), ", "))
	fmt.Fprintf(&b, " You speak in a voice %s.", p.VoiceTone)
	fmt.Fprintf(&b, " You are %s, marked by %s, dressed in a %s style.", a.Build, a.Distinctive, a.Style)
	fmt.Fprintf(&b, " You long %s and fear %s.", p.CoreDesire, p.DeepFear)
	return b.String()
}

func temperament(p persona.Personality) []string {
	values := [4]float64{p.OrderChaos, p.MercyRuthlessness, p.IntroExtro, p.FaithDoubt}
	out := make([]string, 0, len(values))
	for i, v := range values {
		switch {
		case v < 0.35:
			out = append(out, axisPoles[i][0])
		case v > 0.65:
			out = append(out, axisPoles[i][1])
		default:
			out = append(out, "between "+axisPoles[i][0]+" and "+axisPoles[i][1])
		}
	}
	return out
}
