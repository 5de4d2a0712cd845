package identity

import (
	"fmt"
	"strings"
)

// Strategy is a name-construction strategy.
type Strategy string

const (
	Standard      Strategy = "standard"
	HeritageBlend Strategy = "heritage_blend"
	Squished      Strategy = "squished"
	Simple        Strategy = "simple"
	AminalBlend   Strategy = "aminal_blend"
	AminalClear   Strategy = "aminal_clear"
)

// MononymStrategies lists the single-name strategies in draw order.
var MononymStrategies = []Strategy{Squished, Simple, AminalBlend, AminalClear}

// IsMononym reports whether the strategy produces a name without a surname.
func (s Strategy) IsMononym() bool {
	for _, m := range MononymStrategies {
		if s == m {
			return true
		}
	}
	return false
}

// ParseMononymStrategy parses a mononym strategy name. Hyphens, spaces and
// the "squished_blend" alias are accepted.
func ParseMononymStrategy(s string) (Strategy, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	switch normalized {
	case "squished", "squished_blend":
		return Squished, nil
	case "simple":
		return Simple, nil
	case "aminal_blend", "animal_blend":
		return AminalBlend, nil
	case "aminal_clear", "animal_clear":
		return AminalClear, nil
	}
	return "", fmt.Errorf("unknown mononym strategy: %s", s)
}
