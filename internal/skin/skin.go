// Package skin applies cosmetic symbol palettes around a final name.
package skin

import (
	"strings"

	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/rng"
)

// Pattern is the way a palette is applied.
type Pattern int

const (
	Wrap Pattern = iota
	PrefixOnly
	SuffixOnce
	SuffixTwice
	None
)

// patternFor maps a 0-9 roll onto a pattern.
func patternFor(roll int) Pattern {
	switch {
	case roll <= 2:
		return Wrap
	case roll <= 4:
		return PrefixOnly
	case roll <= 6:
		return SuffixOnce
	case roll == 7:
		return SuffixTwice
	default:
		return None
	}
}

// Apply decorates name with the palette for style. Unknown or empty styles
// return name unchanged without drawing.
func Apply(name, style string, s *rng.Stream, t *lore.Tables) string {
	palette, ok := t.Skins[strings.ToLower(strings.TrimSpace(style))]
	if !ok {
		return name
	}

	switch patternFor(s.Intn(10)) {
	case Wrap:
		if len(palette.Wraps) == 0 {
			return name
		}
		pair := rng.Pick(s, palette.Wraps)
		return pair[0] + " " + name + " " + pair[1]
	case PrefixOnly:
		return rng.Pick(s, palette.Prefixes) + " " + name
	case SuffixOnce:
		return name + " " + rng.Pick(s, palette.Suffixes)
	case SuffixTwice:
		return name + " " + strings.Repeat(rng.Pick(s, palette.Suffixes), 2)
	default:
		return name
	}
}
