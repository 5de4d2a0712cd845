// Package lore loads the static tables the generator draws from.
//
// Tables are defined in YAML files embedded in the binary and parsed once.
// A loaded *Tables is never written after construction, so it can be shared
// by any number of concurrent generations.
package lore

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// tableFiles lists the table files in the order they are hashed.
var tableFiles = []string{
	"archetypes.yaml",
	"cultures.yaml",
	"orders.yaml",
	"traits.yaml",
	"relics.yaml",
	"skins.yaml",
}

var (
	// ErrEmptyPool is returned when a required pool has no entries.
	ErrEmptyPool = errors.New("empty pool")
	// ErrUnknownEra is returned when a required relic era is missing.
	ErrUnknownEra = errors.New("unknown era")
)

// Eras lists the relic eras in draw order.
var Eras = []string{"archaic", "modern", "hybrid"}

// Archetype is one symbolic role within a system.
type Archetype struct {
	Key     string   `yaml:"key"`
	Meaning string   `yaml:"meaning"`
	Desire  string   `yaml:"desire"`
	Shadow  []string `yaml:"shadow"`
	Gifts   []string `yaml:"gifts"`
}

// System is a namespace of archetypes (tarot, jungian, ...).
type System struct {
	Name       string      `yaml:"name"`
	Archetypes []Archetype `yaml:"archetypes"`
}

// Syllables are the building blocks for syllable-built names.
type Syllables struct {
	Prefixes  []string `yaml:"prefixes"`
	Infixes   []string `yaml:"infixes"`
	Suffixes  []string `yaml:"suffixes"`
	Feminine  []string `yaml:"feminine"`
	Masculine []string `yaml:"masculine"`
}

// Culture holds the name pools for one heritage.
type Culture struct {
	ID        string    `yaml:"id"`
	Label     string    `yaml:"label"`
	Masculine []string  `yaml:"masculine"`
	Feminine  []string  `yaml:"feminine"`
	Neutral   []string  `yaml:"neutral"`
	Surnames  []string  `yaml:"surnames"`
	Syllables Syllables `yaml:"syllables"`
}

// Animals are the pools used by the aminal naming strategies.
type Animals struct {
	Mythical []string `yaml:"mythical"`
	Real     []string `yaml:"real"`
}

// Order is an organisation a character serves.
type Order struct {
	Name     string   `yaml:"name"`
	Ideology string   `yaml:"ideology"`
	Offices  []string `yaml:"offices"`
}

// Traits are the personality and appearance pools.
type Traits struct {
	Fears       []string `yaml:"fears"`
	VoiceTones  []string `yaml:"voice_tones"`
	Builds      []string `yaml:"builds"`
	Distinctive []string `yaml:"distinctive"`
	Styles      []string `yaml:"styles"`
}

// RelicObject is a describable object and its category tag.
type RelicObject struct {
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

// Era holds the parallel relic pools for one era.
type Era struct {
	Objects  []RelicObject `yaml:"objects"`
	Givers   []string      `yaml:"givers"`
	Contexts []string      `yaml:"contexts"`
	Lineage  []string      `yaml:"lineage"`
}

// PostCategory groups sample post lines.
type PostCategory struct {
	Category string   `yaml:"category"`
	Lines    []string `yaml:"lines"`
}

// Relics holds every relic pool.
type Relics struct {
	Eras          map[string]Era    `yaml:"eras"`
	Verbs         []string          `yaml:"verbs"`
	Natures       []string          `yaml:"natures"`
	Motifs        []string          `yaml:"motifs"`
	Fates         []string          `yaml:"fates"`
	SacredNumbers map[string][2]int `yaml:"sacred_numbers"`
	Fragments     []string          `yaml:"fragments"`
	Posts         []PostCategory    `yaml:"posts"`
}

// Skin is a symbol palette for the aesthetic skin transform.
type Skin struct {
	Prefixes []string    `yaml:"prefixes"`
	Suffixes []string    `yaml:"suffixes"`
	Wraps    [][2]string `yaml:"wraps"`
}

// Tables is the complete, immutable set of generator tables.
type Tables struct {
	Systems  []System        `yaml:"systems"`
	Cultures []Culture       `yaml:"cultures"`
	Animals  Animals         `yaml:"animals"`
	Orders   []Order         `yaml:"orders"`
	Traits   Traits          `yaml:",inline"`
	Relics   Relics          `yaml:",inline"`
	Skins    map[string]Skin `yaml:"skins"`

	digest string
}

var (
	defaultTables *Tables
	defaultOnce   sync.Once
)

// Default returns the embedded tables. The embedded data is validated by the
// package tests, so a parse failure here is a build defect and panics.
func Default() *Tables {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			panic(fmt.Sprintf("lore: embedded tables: %v", err))
		}
		t, err := parseFS(sub)
		if err != nil {
			panic(fmt.Sprintf("lore: embedded tables: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// LoadDir loads a full table set from a directory containing the same YAML
// files as the embedded data.
func LoadDir(dir string) (*Tables, error) {
	return parseFS(os.DirFS(dir))
}

func parseFS(fsys fs.FS) (*Tables, error) {
	var t Tables
	h := sha256.New()

	for _, name := range tableFiles {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		h.Write(data)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	t.digest = hex.EncodeToString(h.Sum(nil))
	return &t, nil
}

// Digest identifies the table content. Two table sets with the same digest
// produce identical output for the same seed and parameters.
func (t *Tables) Digest() string {
	return t.digest
}

// Validate checks that every pool the generator draws from is non-empty.
// Skin palettes must also have no blank symbols.
func (t *Tables) Validate() error {
	if len(t.Systems) == 0 {
		return fmt.Errorf("systems: %w", ErrEmptyPool)
	}
	for _, s := range t.Systems {
		if len(s.Archetypes) == 0 {
			return fmt.Errorf("system %s: %w", s.Name, ErrEmptyPool)
		}
	}

	if len(t.Cultures) == 0 {
		return fmt.Errorf("cultures: %w", ErrEmptyPool)
	}
	for _, c := range t.Cultures {
		pools := map[string][]string{
			"masculine": c.Masculine,
			"feminine":  c.Feminine,
			"neutral":   c.Neutral,
			"surnames":  c.Surnames,
			"prefixes":  c.Syllables.Prefixes,
			"infixes":   c.Syllables.Infixes,
			"suffixes":  c.Syllables.Suffixes,
		}
		for name, pool := range pools {
			if len(pool) == 0 {
				return fmt.Errorf("culture %s %s: %w", c.ID, name, ErrEmptyPool)
			}
		}
	}

	checks := []struct {
		name string
		pool []string
	}{
		{"animals.mythical", t.Animals.Mythical},
		{"animals.real", t.Animals.Real},
		{"fears", t.Traits.Fears},
		{"voice_tones", t.Traits.VoiceTones},
		{"builds", t.Traits.Builds},
		{"distinctive", t.Traits.Distinctive},
		{"styles", t.Traits.Styles},
		{"verbs", t.Relics.Verbs},
		{"natures", t.Relics.Natures},
		{"motifs", t.Relics.Motifs},
		{"fates", t.Relics.Fates},
		{"fragments", t.Relics.Fragments},
	}
	for _, c := range checks {
		if len(c.pool) == 0 {
			return fmt.Errorf("%s: %w", c.name, ErrEmptyPool)
		}
	}

	if len(t.Orders) == 0 {
		return fmt.Errorf("orders: %w", ErrEmptyPool)
	}
	for _, o := range t.Orders {
		if len(o.Offices) == 0 {
			return fmt.Errorf("order %s offices: %w", o.Name, ErrEmptyPool)
		}
	}

	for _, name := range Eras {
		era, ok := t.Relics.Eras[name]
		if !ok {
			return fmt.Errorf("era %s: %w", name, ErrUnknownEra)
		}
		if len(era.Objects) == 0 || len(era.Givers) == 0 || len(era.Contexts) == 0 || len(era.Lineage) == 0 {
			return fmt.Errorf("era %s: %w", name, ErrEmptyPool)
		}
	}

	for _, name := range t.SkinNames() {
		sk := t.Skins[name]
		for pool, symbols := range map[string][]string{"prefixes": sk.Prefixes, "suffixes": sk.Suffixes} {
			if len(symbols) == 0 || slices.Contains(symbols, "") {
				return fmt.Errorf("skin %s %s: %w", name, pool, ErrEmptyPool)
			}
		}
		for _, w := range sk.Wraps {
			if w[0] == "" || w[1] == "" {
				return fmt.Errorf("skin %s wraps: %w", name, ErrEmptyPool)
			}
		}
	}

	if len(t.Relics.Posts) == 0 {
		return fmt.Errorf("posts: %w", ErrEmptyPool)
	}
	for _, p := range t.Relics.Posts {
		if len(p.Lines) == 0 {
			return fmt.Errorf("posts %s: %w", p.Category, ErrEmptyPool)
		}
	}

	return nil
}

// Culture returns the culture with the given id.
func (t *Tables) Culture(id string) (*Culture, bool) {
	for i := range t.Cultures {
		if t.Cultures[i].ID == id {
			return &t.Cultures[i], true
		}
	}
	return nil, false
}

// System returns the archetype system with the given name.
func (t *Tables) System(name string) (*System, bool) {
	for i := range t.Systems {
		if t.Systems[i].Name == name {
			return &t.Systems[i], true
		}
	}
	return nil, false
}

// Order returns the order with the given name.
func (t *Tables) Order(name string) (*Order, bool) {
	for i := range t.Orders {
		if t.Orders[i].Name == name {
			return &t.Orders[i], true
		}
	}
	return nil, false
}

// FirstNames returns the first-name pool for a culture and gender.
// Unknown genders use the neutral pool.
func (c *Culture) FirstNames(gender string) []string {
	switch gender {
	case "masculine":
		return c.Masculine
	case "feminine":
		return c.Feminine
	default:
		return c.Neutral
	}
}

// IsSurname reports whether word is one of the culture's surnames,
// ignoring case.
func (c *Culture) IsSurname(word string) bool {
	for _, s := range c.Surnames {
		if strings.EqualFold(s, word) {
			return true
		}
	}
	return false
}

// SkinNames returns the known skin styles in sorted order.
func (t *Tables) SkinNames() []string {
	return slices.Sorted(maps.Keys(t.Skins))
}
