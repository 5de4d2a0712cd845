// Package identity resolves heritage and gender and constructs names.
//
// Every function here draws from the caller's stream in a fixed order. The
// order is part of the output contract: changing it changes every name
// generated for an existing seed.
package identity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/rng"
)

// BlendHeritage is the heritage selector for a blended label over a random culture.
const BlendHeritage = "blend"

// Options are the optional identity parameters. Zero values are resolved
// from the stream.
type Options struct {
	Heritage        string
	Gender          Gender
	HeritageBlend   bool
	Mononym         bool
	MononymStrategy Strategy
}

// Identity is the resolved identity of a generated character.
type Identity struct {
	Name      string   `json:"name" yaml:"name"`
	FirstName string   `json:"first_name" yaml:"first_name"`
	Surname   string   `json:"surname,omitempty" yaml:"surname,omitempty"`
	Gender    Gender   `json:"gender" yaml:"gender"`
	Heritage  string   `json:"heritage" yaml:"heritage"`
	Culture   string   `json:"culture" yaml:"culture"`
	Strategy  Strategy `json:"strategy" yaml:"strategy"`
}

// Compose resolves heritage, gender and strategy, then builds the name.
func Compose(s *rng.Stream, t *lore.Tables, opts Options) Identity {
	culture, heritage := ResolveHeritage(s, t, opts.Heritage)
	gender := ResolveGender(s, opts.Gender)
	strategy := resolveStrategy(s, opts)

	first := rng.Pick(s, culture.FirstNames(string(gender)))
	id := Identity{
		FirstName: first,
		Gender:    gender,
		Heritage:  heritage,
		Culture:   culture.ID,
		Strategy:  strategy,
	}

	switch strategy {
	case HeritageBlend:
		id.Name = blendedName(s, t, culture, gender)
	case Squished:
		id.Name = squishedName(s, t, culture, gender, first)
	case Simple:
		id.Name = first
	case AminalBlend:
		id.Name = aminalBlend(s, t, first)
	case AminalClear:
		id.Name = aminalClear(s, t, first)
	default:
		id.Surname = rng.Pick(s, culture.Surnames)
		id.Name = first + " " + id.Surname
	}

	if strategy.IsMononym() {
		id.Name = avoidSurname(culture, id.Name)
	}
	return id
}

// ResolveHeritage returns the culture to draw names from and the heritage
// label to report. Unknown selectors resolve randomly.
func ResolveHeritage(s *rng.Stream, t *lore.Tables, selector string) (*lore.Culture, string) {
	key := strings.ToLower(strings.TrimSpace(selector))
	if key != "" && key != BlendHeritage {
		if c, ok := t.Culture(key); ok {
			return c, c.Label
		}
	}

	c := &t.Cultures[s.Intn(len(t.Cultures))]
	if key == BlendHeritage {
		return c, c.Label + " blend"
	}
	return c, c.Label
}

// ResolveGender returns g when valid, otherwise draws one of the three categories.
func ResolveGender(s *rng.Stream, g Gender) Gender {
	if g.IsValid() {
		return g
	}
	return rng.Pick(s, Genders)
}

func resolveStrategy(s *rng.Stream, opts Options) Strategy {
	if opts.Mononym {
		if opts.MononymStrategy.IsMononym() {
			return opts.MononymStrategy
		}
		return rng.Pick(s, MononymStrategies)
	}
	if opts.HeritageBlend || strings.EqualFold(strings.TrimSpace(opts.Heritage), BlendHeritage) {
		return HeritageBlend
	}
	return Standard
}

// SyllableName builds prefix + 0-2 infixes + suffix. Feminine and masculine
// names take their ending from the gendered ending pools.
func SyllableName(s *rng.Stream, c *lore.Culture, gender Gender) string {
	syl := c.Syllables
	name := rng.Pick(s, syl.Prefixes)

	infixes := s.Intn(3)
	for i := 0; i < infixes; i++ {
		name = joinSyllable(name, rng.Pick(s, syl.Infixes))
	}

	endings := syl.Suffixes
	switch gender {
	case Feminine:
		if len(syl.Feminine) > 0 {
			endings = syl.Feminine
		}
	case Masculine:
		if len(syl.Masculine) > 0 {
			endings = syl.Masculine
		}
	}
	name = joinSyllable(name, rng.Pick(s, endings))

	return capitalize(name)
}

// joinSyllable appends next to name, dropping a repeated letter at the seam.
func joinSyllable(name, next string) string {
	if name == "" || next == "" {
		return name + next
	}
	a := []rune(strings.ToLower(name))
	b := []rune(strings.ToLower(next))
	if a[len(a)-1] == b[0] {
		return name + string(b[1:])
	}
	return name + next
}

func blendedName(s *rng.Stream, t *lore.Tables, c *lore.Culture, gender Gender) string {
	first := SyllableName(s, c, gender)
	other := otherCulture(s, t, c)
	second := SyllableName(s, other, gender)
	return first + " " + second
}

func squishedName(s *rng.Stream, t *lore.Tables, c *lore.Culture, gender Gender, first string) string {
	if s.Chance(0.5) {
		return SyllableName(s, c, gender)
	}

	other := otherCulture(s, t, c)
	second := rng.Pick(s, other.FirstNames(string(gender)))
	return capitalize(prefixOf(s, first) + suffixOf(s, second))
}

func otherCulture(s *rng.Stream, t *lore.Tables, c *lore.Culture) *lore.Culture {
	ids := make([]string, len(t.Cultures))
	for i, culture := range t.Cultures {
		ids[i] = culture.ID
	}
	other, _ := t.Culture(rng.PickOther(s, ids, c.ID))
	return other
}

// avoidSurname keeps mononyms from colliding with a surname of the culture.
// Every space- or hyphen-separated token equal to a surname gets an "i"
// appended; separators are kept as they are.
func avoidSurname(c *lore.Culture, name string) string {
	var b, tok strings.Builder
	flush := func() {
		word := tok.String()
		b.WriteString(word)
		if word != "" && c.IsSurname(word) {
			b.WriteString("i")
		}
		tok.Reset()
	}

	for _, r := range name {
		if r == ' ' || r == '-' {
			flush()
			b.WriteRune(r)
			continue
		}
		tok.WriteRune(r)
	}
	flush()
	return b.String()
}

// prefixOf returns a leading cut of at least two runes.
func prefixOf(s *rng.Stream, word string) string {
	r := []rune(word)
	if len(r) <= 2 {
		return word
	}
	cut := s.IntRange(2, len(r)-1)
	return string(r[:cut])
}

// suffixOf returns a trailing cut of at least two runes.
func suffixOf(s *rng.Stream, word string) string {
	r := []rune(word)
	if len(r) <= 2 {
		return word
	}
	cut := s.IntRange(1, len(r)-2)
	return string(r[cut:])
}

// middleOf returns an inner slice of the word.
func middleOf(s *rng.Stream, word string) string {
	r := []rune(word)
	if len(r) < 3 {
		return word
	}
	start := s.IntRange(1, len(r)/2)
	end := s.IntRange(start+1, len(r))
	return string(r[start:end])
}

func capitalize(s string) string {
	return cases.Title(language.Und).String(strings.ToLower(s))
}
