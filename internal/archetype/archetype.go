// Package archetype selects a symbolic system and an archetype within it.
package archetype

import (
	"strings"

	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/rng"
)

// Archetype is the record attached to every generated character.
type Archetype struct {
	System  string   `json:"system" yaml:"system"`
	Key     string   `json:"key" yaml:"key"`
	Meaning string   `json:"meaning" yaml:"meaning"`
	Desire  string   `json:"desire" yaml:"desire"`
	Shadow  []string `json:"shadow" yaml:"shadow"`
	Gifts   []string `json:"gifts" yaml:"gifts"`
}

// Select draws a system uniformly, then an archetype uniformly within it.
// It always consumes exactly two draws.
func Select(s *rng.Stream, t *lore.Tables) Archetype {
	sys := rng.Pick(s, t.Systems)
	a := rng.Pick(s, sys.Archetypes)
	return Archetype{
		System:  sys.Name,
		Key:     a.Key,
		Meaning: a.Meaning,
		Desire:  a.Desire,
		Shadow:  append([]string(nil), a.Shadow...),
		Gifts:   append([]string(nil), a.Gifts...),
	}
}

// Normalize lowercases a key and replaces spaces with underscores.
func Normalize(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
}

// Normalized returns the archetype's normalized key.
func (a Archetype) Normalized() string {
	return Normalize(a.Key)
}
