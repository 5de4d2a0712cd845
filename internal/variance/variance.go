// Package variance corrupts a generated name by a percentage.
//
// Every roll is drawn from the caller's stream strictly left to right.
// Apply must always be given the canonical base name: varying an already
// varied string compounds the corruption and is not supported.
package variance

import (
	"math"
	"strings"
	"unicode"

	"github.com/chromox/forge/internal/rng"
)

const (
	substituteRate = 0.6
	caseFlipRate   = 0.25
	spacingRate    = 0.35
	glitchRate     = 0.15

	heavyThreshold  = 0.5
	repeatThreshold = 0.7
	glitchThreshold = 0.75
	maxExtraSpacers = 2
)

// Clamp limits a percentage to [0, 100].
func Clamp(percent float64) float64 {
	switch {
	case math.IsNaN(percent), percent < 0:
		return 0
	case percent > 100:
		return 100
	}
	return percent
}

// Apply corrupts name by percent (clamped to [0, 100]). At zero it returns
// name unchanged and draws nothing.
func Apply(name string, percent float64, s *rng.Stream) string {
	v := Clamp(percent) / 100
	if v == 0 || name == "" {
		return name
	}

	table := mild
	if v > heavyThreshold {
		table = heavy
	}

	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		wordStart := i == 0 || isBoundary(runes[i-1])

		if !wordStart {
			substituted := false
			if s.Chance(substituteRate * v) {
				if options, ok := table[unicode.ToLower(r)]; ok {
					b.WriteString(rng.Pick(s, options))
					substituted = true
				}
			}
			if !substituted {
				if s.Chance(caseFlipRate*v) && unicode.IsLetter(r) {
					r = flipCase(r)
				}
				b.WriteRune(r)
			}
		} else {
			b.WriteRune(r)
		}

		if i < len(runes)-1 && s.Chance(spacingRate*v) {
			n := 1
			if v > repeatThreshold {
				n += s.Intn(maxExtraSpacers + 1)
			}
			for j := 0; j < n; j++ {
				b.WriteString(rng.Pick(s, spacers))
			}
		}
	}

	out := b.String()
	if v > glitchThreshold {
		out = glitch(out, v, s)
	}
	return out
}

// glitch interleaves combining marks after alphanumeric and symbol runes.
func glitch(text string, v float64, s *rng.Stream) string {
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSymbol(r) {
			if s.Chance(glitchRate * v) {
				b.WriteString(rng.Pick(s, glitches))
			}
		}
	}
	return b.String()
}

func isBoundary(r rune) bool {
	return r == ' ' || r == '-' || r == '\''
}

func flipCase(r rune) rune {
	if unicode.IsUpper(r) {
		return unicode.ToLower(r)
	}
	return unicode.ToUpper(r)
}
