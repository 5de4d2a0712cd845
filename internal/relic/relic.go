// Package relic generates relic-mode lore: an object, its provenance, a
// sacred number, a pseudonym and, for recent eras, a sample post.
package relic

import (
	"strconv"
	"strings"

	"github.com/chromox/forge/internal/archetype"
	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/persona"
	"github.com/chromox/forge/internal/rng"
)

// Record describes the relic object.
type Record struct {
	Object   string `json:"object" yaml:"object"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Origin   string `json:"origin" yaml:"origin"`
}

// Post is a short flavor line attributed to a category.
type Post struct {
	Category string `json:"category" yaml:"category"`
	Line     string `json:"line" yaml:"line"`
}

// Lore is the full relic-mode output.
type Lore struct {
	Era       Era    `json:"era" yaml:"era"`
	Record    Record `json:"record" yaml:"record"`
	Backstory string `json:"backstory" yaml:"backstory"`
	Sacred    Sacred `json:"sacred" yaml:"sacred"`
	Pseudonym string `json:"pseudonym" yaml:"pseudonym"`
	Post      *Post  `json:"sample_post,omitempty" yaml:"sample_post,omitempty"`
}

// Forge runs the relic pipeline for an already resolved era.
//
// Draw order: object, verb, giver, context, lineage, sacred fallback (only
// for unmapped archetypes), nature, motif, second motif, fate, pseudonym
// seed, then post category and line for modern and hybrid eras.
func Forge(s *rng.Stream, t *lore.Tables, era Era, a archetype.Archetype, aff persona.Affiliation) Lore {
	pools := t.Relics.Eras[string(era)]

	obj := rng.Pick(s, pools.Objects)
	rec := Record{
		Object:   obj.Description,
		Name:     DisplayName(obj.Description),
		Category: obj.Category,
	}

	verb := rng.Pick(s, t.Relics.Verbs)
	giver := rng.Pick(s, pools.Givers)
	context := rng.Pick(s, pools.Contexts)
	rec.Origin = verb + " by " + giver + " " + context

	lineage := strings.NewReplacer(
		"{order}", aff.Order,
		"{archetype}", a.Key,
	).Replace(rng.Pick(s, pools.Lineage))

	sacred := SacredFor(s, t, a)
	natureTemplate := rng.Pick(s, t.Relics.Natures)
	motif := rng.Pick(s, t.Relics.Motifs)
	motif2 := rng.PickOther(s, t.Relics.Motifs, motif)
	nature := strings.NewReplacer(
		"{number}", strconv.Itoa(sacred.Number()),
		"{root}", strconv.Itoa(sacred.Root),
		"{echo}", strconv.Itoa(sacred.Echo),
		"{motif}", motif,
		"{motif2}", motif2,
	).Replace(natureTemplate)

	fate := rng.Pick(s, t.Relics.Fates)

	out := Lore{
		Era:    era,
		Record: rec,
		Backstory: strings.Join([]string{
			"The " + rec.Name + " was " + rec.Origin + ".",
			lineage,
			nature,
			fate,
		}, " "),
		Sacred: sacred,
	}

	child := rng.Child(PseudonymSeed(s, a.Key))
	out.Pseudonym = Pseudonym(child, t.Relics.Fragments, a, rec.Category)

	if era.HasPosts() {
		cat := rng.Pick(s, t.Relics.Posts)
		out.Post = &Post{Category: cat.Category, Line: rng.Pick(s, cat.Lines)}
	}
	return out
}
