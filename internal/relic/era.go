package relic

import (
	"fmt"
	"strings"

	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/rng"
)

// Era selects one of the parallel relic pools.
type Era string

const (
	Archaic Era = "archaic"
	Modern  Era = "modern"
	Hybrid  Era = "hybrid"
)

// IsValid returns true if the era is known.
func (e Era) IsValid() bool {
	switch e {
	case Archaic, Modern, Hybrid:
		return true
	}
	return false
}

// HasPosts reports whether relics of this era carry a sample post.
func (e Era) HasPosts() bool {
	return e == Modern || e == Hybrid
}

// ParseEra parses an era name, case-insensitive.
func ParseEra(s string) (Era, error) {
	e := Era(strings.ToLower(strings.TrimSpace(s)))
	if e.IsValid() {
		return e, nil
	}
	return "", fmt.Errorf("unknown era: %s", s)
}

// ResolveEra returns e when valid, otherwise draws an era.
func ResolveEra(s *rng.Stream, e Era) Era {
	if e.IsValid() {
		return e
	}
	return Era(rng.Pick(s, lore.Eras))
}
