package variance

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// reverse maps every substitution back to the letter it replaced. When a
// glyph stands in for several letters the alphabetically first one wins.
var reverse = buildReverse()

func buildReverse() map[rune]rune {
	out := make(map[rune]rune)
	for _, table := range []map[rune][]string{mild, heavy} {
		keys := make([]rune, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			for _, glyph := range table[k] {
				for _, g := range glyph {
					if _, exists := out[g]; !exists {
						out[g] = k
					}
				}
			}
		}
	}
	return out
}

func isSpacer(r rune) bool {
	for _, sp := range spacers {
		if strings.ContainsRune(sp, r) {
			return true
		}
	}
	return false
}

// Fold undoes variance as far as possible: substitutions map back to plain
// letters and spacers and combining marks are removed. The result is
// lowercase and is meant for matching, not display.
func Fold(text string) string {
	mapped := strings.Map(func(r rune) rune {
		if isSpacer(r) {
			return -1
		}
		if plain, ok := reverse[r]; ok {
			return plain
		}
		return r
	}, text)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, mapped)
	if err != nil {
		folded = mapped
	}
	return strings.ToLower(folded)
}
