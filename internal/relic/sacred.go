package relic

import (
	"strconv"

	"github.com/chromox/forge/internal/archetype"
	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/rng"
)

// Sacred is the numeric motif derived from an archetype.
type Sacred struct {
	Root int `json:"root" yaml:"root"`
	Echo int `json:"echo" yaml:"echo"`
}

// Number concatenates root and echo, so {13, 4} is 134.
func (n Sacred) Number() int {
	v, err := strconv.Atoi(strconv.Itoa(n.Root) + strconv.Itoa(n.Echo))
	if err != nil {
		return n.Root + n.Echo
	}
	return v
}

// SacredFor looks up the fixed pair for an archetype. Unmapped archetypes
// draw both numbers from s, so the two paths advance the stream by different
// amounts (zero draws when mapped, two when not).
func SacredFor(s *rng.Stream, t *lore.Tables, a archetype.Archetype) Sacred {
	if pair, ok := t.Relics.SacredNumbers[a.Normalized()]; ok {
		return Sacred{Root: pair[0], Echo: pair[1]}
	}
	return Sacred{
		Root: s.IntRange(1, 9),
		Echo: s.IntRange(1, 9),
	}
}
