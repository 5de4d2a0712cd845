package identity

import (
	"fmt"
	"strings"
)

// Gender selects the first-name pool and suffix shaping.
type Gender string

const (
	Masculine Gender = "masculine"
	Feminine  Gender = "feminine"
	Neutral   Gender = "neutral"
)

// Genders lists the genders in draw order.
var Genders = []Gender{Masculine, Feminine, Neutral}

// IsValid returns true if the gender is one of the known categories.
func (g Gender) IsValid() bool {
	switch g {
	case Masculine, Feminine, Neutral:
		return true
	}
	return false
}

// ParseGender parses a gender, case-insensitive, accepting common aliases.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "masculine", "male", "m", "man":
		return Masculine, nil
	case "feminine", "female", "f", "woman":
		return Feminine, nil
	case "neutral", "nonbinary", "non-binary", "nb", "n", "x":
		return Neutral, nil
	}
	return "", fmt.Errorf("unknown gender: %s", s)
}
