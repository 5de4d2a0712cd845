package relic

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var articles = map[string]bool{"a": true, "an": true, "the": true}

// connectives stay lowercase in display names unless they open the name.
var connectives = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "in": true, "and": true,
	"with": true, "to": true, "from": true, "on": true, "at": true, "by": true,
	"for": true, "or": true, "that": true, "no": true,
}

// DisplayName strips a leading article and title-cases every
// non-connective word.
func DisplayName(description string) string {
	words := strings.Fields(description)
	if len(words) > 1 && articles[strings.ToLower(words[0])] {
		words = words[1:]
	}

	caser := cases.Title(language.English)
	for i, w := range words {
		if i > 0 && connectives[strings.ToLower(w)] {
			words[i] = strings.ToLower(w)
			continue
		}
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}
