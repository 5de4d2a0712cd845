package lore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTablesLoad(t *testing.T) {
	tables := Default()
	if tables == nil {
		t.Fatal("Default() returned nil")
	}
	if err := tables.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if len(tables.Digest()) != 64 {
		t.Errorf("Digest() length = %d, want 64", len(tables.Digest()))
	}
}

func TestSystemSizes(t *testing.T) {
	tables := Default()
	if len(tables.Systems) != 5 {
		t.Fatalf("len(Systems) = %d, want 5", len(tables.Systems))
	}

	for _, s := range tables.Systems {
		if n := len(s.Archetypes); n < 10 || n > 22 {
			t.Errorf("system %s has %d archetypes, want 10-22", s.Name, n)
		}
		seen := map[string]bool{}
		for _, a := range s.Archetypes {
			if seen[a.Key] {
				t.Errorf("system %s: duplicate key %q", s.Name, a.Key)
			}
			seen[a.Key] = true
			if a.Meaning == "" || a.Desire == "" || len(a.Shadow) == 0 || len(a.Gifts) == 0 {
				t.Errorf("system %s: archetype %q is incomplete", s.Name, a.Key)
			}
		}
	}
}

func TestTraitPoolSizes(t *testing.T) {
	tr := Default().Traits
	pools := map[string][]string{
		"fears":       tr.Fears,
		"voice_tones": tr.VoiceTones,
		"builds":      tr.Builds,
		"distinctive": tr.Distinctive,
		"styles":      tr.Styles,
	}
	for name, pool := range pools {
		if len(pool) < 8 || len(pool) > 12 {
			t.Errorf("%s has %d entries, want 8-12", name, len(pool))
		}
	}
}

func TestSurnamesDisjointFromNameTokens(t *testing.T) {
	tables := Default()
	var animals []string
	animals = append(animals, tables.Animals.Mythical...)
	animals = append(animals, tables.Animals.Real...)

	for _, c := range tables.Cultures {
		for _, g := range []string{"masculine", "feminine", "neutral"} {
			for _, name := range c.FirstNames(g) {
				if c.IsSurname(name) {
					t.Errorf("culture %s: first name %q is also a surname", c.ID, name)
				}
			}
		}
		for _, a := range animals {
			if c.IsSurname(a) {
				t.Errorf("culture %s: animal %q is also a surname", c.ID, a)
			}
		}
	}
}

func TestErasPresent(t *testing.T) {
	tables := Default()
	for _, name := range Eras {
		era, ok := tables.Relics.Eras[name]
		if !ok {
			t.Errorf("era %q missing", name)
			continue
		}
		if len(era.Objects) == 0 {
			t.Errorf("era %q has no objects", name)
		}
	}
}

func TestLookups(t *testing.T) {
	tables := Default()

	if c, ok := tables.Culture("norse"); !ok || c.Label != "Norse" {
		t.Errorf("Culture(norse) = %v, %v", c, ok)
	}
	if _, ok := tables.Culture("atlantean"); ok {
		t.Error("Culture(atlantean) should not exist")
	}
	if s, ok := tables.System("tarot"); !ok || len(s.Archetypes) != 22 {
		t.Errorf("System(tarot) = %v, %v", s, ok)
	}
	if _, ok := tables.Order("The Iron Synod"); !ok {
		t.Error("Order(The Iron Synod) not found")
	}
}

func TestFirstNamesUnknownGenderIsNeutral(t *testing.T) {
	c, _ := Default().Culture("celtic")
	got := c.FirstNames("other")
	if len(got) == 0 || got[0] != c.Neutral[0] {
		t.Errorf("FirstNames(other) = %v, want neutral pool", got)
	}
}

func TestSkinNamesSorted(t *testing.T) {
	names := Default().SkinNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("SkinNames() not sorted: %v", names)
		}
	}
}

func copyTables(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range tableFiles {
		data, err := embedded.ReadFile("data/" + name)
		if err != nil {
			t.Fatalf("read embedded %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadDirMatchesEmbedded(t *testing.T) {
	dir := copyTables(t)

	tables, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() = %v", err)
	}
	if tables.Digest() != Default().Digest() {
		t.Errorf("Digest() = %s, want %s", tables.Digest(), Default().Digest())
	}
}

func TestLoadDirMissingFile(t *testing.T) {
	dir := copyTables(t)
	os.Remove(filepath.Join(dir, "skins.yaml"))

	_, err := LoadDir(dir)
	if err == nil || !strings.Contains(err.Error(), "skins.yaml") {
		t.Errorf("LoadDir() error = %v, want mention of skins.yaml", err)
	}
}

func TestLoadDirEmptyPool(t *testing.T) {
	dir := copyTables(t)
	if err := os.WriteFile(filepath.Join(dir, "orders.yaml"), []byte("orders: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDir(dir)
	if !errors.Is(err, ErrEmptyPool) {
		t.Errorf("LoadDir() error = %v, want ErrEmptyPool", err)
	}
}

func TestLoadDirEmptySkinPalette(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no prefixes", "skins:\n  plain:\n    prefixes: []\n    suffixes: [\"*\"]\n"},
		{"no suffixes", "skins:\n  plain:\n    prefixes: [\"*\"]\n"},
		{"blank symbol", "skins:\n  plain:\n    prefixes: [\"*\", \"\"]\n    suffixes: [\"*\"]\n"},
		{"blank wrap", "skins:\n  plain:\n    prefixes: [\"*\"]\n    suffixes: [\"*\"]\n    wraps: [[\"\", \"*\"]]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := copyTables(t)
			if err := os.WriteFile(filepath.Join(dir, "skins.yaml"), []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := LoadDir(dir)
			if !errors.Is(err, ErrEmptyPool) {
				t.Errorf("LoadDir() error = %v, want ErrEmptyPool", err)
			}
		})
	}
}

func TestLoadDirMalformedYAML(t *testing.T) {
	dir := copyTables(t)
	if err := os.WriteFile(filepath.Join(dir, "traits.yaml"), []byte("fears: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadDir(dir); err == nil {
		t.Error("LoadDir() should fail on malformed YAML")
	}
}
