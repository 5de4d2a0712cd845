package relic

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chromox/forge/internal/archetype"
	"github.com/chromox/forge/internal/rng"
)

// pseudonymTemplates use {F1}..{F4} for capitalized fragments and
// {f1}..{f4} for lowercase ones.
var pseudonymTemplates = []string{
	"{F1}{f2}",
	"{F1}{f2} {F3}{f4}",
	"{F1}{f2}, {meaning}",
	"The {F1}{f2} of {system}",
	"{F1}'{f2}{f3}",
	"{F1}{f2}-{F3}",
	"{F1}{f2}{f3}",
	"{F1} {F2}{f3}",
	"Saint {F1}{f2}",
	"{F1}{f2} of the {category}",
	"{F1}{f4}, called {key}",
}

// PseudonymSeed derives the child-stream seed: the sum of the key's code
// points plus one draw from the parent stream.
func PseudonymSeed(s *rng.Stream, key string) int64 {
	var sum int64
	for _, r := range key {
		sum += int64(r)
	}
	return sum + int64(s.Intn(10000))
}

// Pseudonym draws four fragments and a template from child. The child
// stream is owned by this call; the parent is never touched.
func Pseudonym(child *rng.Stream, fragments []string, a archetype.Archetype, category string) string {
	var frags [4]string
	for i := range frags {
		frags[i] = rng.Pick(child, fragments)
	}
	template := rng.Pick(child, pseudonymTemplates)

	caser := cases.Title(language.English)
	r := strings.NewReplacer(
		"{F1}", caser.String(frags[0]),
		"{F2}", caser.String(frags[1]),
		"{F3}", caser.String(frags[2]),
		"{F4}", caser.String(frags[3]),
		"{f1}", frags[0],
		"{f2}", frags[1],
		"{f3}", frags[2],
		"{f4}", frags[3],
		"{meaning}", a.Meaning,
		"{system}", caser.String(a.System),
		"{category}", caser.String(category),
		"{key}", a.Key,
	)
	return r.Replace(template)
}
