package identity

import (
	"strings"

	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/rng"
)

// clearPatterns combine a name and an animal as whole words.
var clearPatterns = []string{
	"{name} the {animal}",
	"{animal} {name}",
	"{name}-{animal}",
	"{name} of the {animal}",
	"{name} {animal}",
	"{animal}-{name}",
}

// pickAnimal draws mythical-or-real, then an animal from that pool.
func pickAnimal(s *rng.Stream, t *lore.Tables) string {
	if s.Chance(0.5) {
		return rng.Pick(s, t.Animals.Mythical)
	}
	return rng.Pick(s, t.Animals.Real)
}

// aminalBlend fuses the first name with an animal using one of five splices.
func aminalBlend(s *rng.Stream, t *lore.Tables, name string) string {
	animal := pickAnimal(s, t)

	var fused string
	switch s.Intn(5) {
	case 0:
		fused = prefixOf(s, name) + suffixOf(s, animal)
	case 1:
		fused = prefixOf(s, animal) + suffixOf(s, name)
	case 2:
		fused = name + suffixOf(s, animal)
	case 3:
		fused = prefixOf(s, animal) + strings.ToLower(name)
	default:
		head := prefixOf(s, name)
		mid := middleOf(s, animal)
		tail := suffixOf(s, name)
		fused = head + mid + tail
	}
	return capitalize(fused)
}

// aminalClear places the first name and an animal into a fixed phrase.
func aminalClear(s *rng.Stream, t *lore.Tables, name string) string {
	animal := pickAnimal(s, t)
	pattern := rng.Pick(s, clearPatterns)
	return strings.NewReplacer("{name}", name, "{animal}", animal).Replace(pattern)
}
