package identity

import (
	"strings"
	"testing"

	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/rng"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		input    string
		expected Gender
		hasError bool
	}{
		{"masculine", Masculine, false},
		{"Male", Masculine, false},
		{"f", Feminine, false},
		{"FEMININE", Feminine, false},
		{"nonbinary", Neutral, false},
		{" neutral ", Neutral, false},
		{"robot", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGender(tt.input)
			if (err != nil) != tt.hasError {
				t.Fatalf("ParseGender(%q) error = %v, hasError %v", tt.input, err, tt.hasError)
			}
			if got != tt.expected {
				t.Errorf("ParseGender(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseMononymStrategy(t *testing.T) {
	tests := []struct {
		input    string
		expected Strategy
		hasError bool
	}{
		{"squished", Squished, false},
		{"squished-blend", Squished, false},
		{"simple", Simple, false},
		{"aminal blend", AminalBlend, false},
		{"Aminal_Clear", AminalClear, false},
		{"standard", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMononymStrategy(tt.input)
		if (err != nil) != tt.hasError {
			t.Errorf("ParseMononymStrategy(%q) error = %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseMononymStrategy(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestResolveHeritage(t *testing.T) {
	tables := lore.Default()

	c, label := ResolveHeritage(rng.New(1), tables, "celtic")
	if c.ID != "celtic" || label != "Celtic" {
		t.Errorf("explicit heritage = %s/%q, want celtic/Celtic", c.ID, label)
	}

	c, label = ResolveHeritage(rng.New(1), tables, "blend")
	if label != c.Label+" blend" {
		t.Errorf("blend label = %q, want %q", label, c.Label+" blend")
	}

	c, label = ResolveHeritage(rng.New(1), tables, "atlantean")
	if c == nil || label != c.Label {
		t.Errorf("unknown heritage should resolve randomly, got %v/%q", c, label)
	}
}

func TestResolveHeritageExplicitDoesNotDraw(t *testing.T) {
	s := rng.New(9)
	before := s.State()
	ResolveHeritage(s, lore.Default(), "Norse")
	if s.State() != before {
		t.Error("explicit heritage should not advance the stream")
	}
}

func TestResolveGender(t *testing.T) {
	s := rng.New(5)
	before := s.State()
	if got := ResolveGender(s, Feminine); got != Feminine {
		t.Errorf("ResolveGender(Feminine) = %q", got)
	}
	if s.State() != before {
		t.Error("explicit gender should not advance the stream")
	}

	for seed := int64(0); seed < 100; seed++ {
		if g := ResolveGender(rng.New(seed), ""); !g.IsValid() {
			t.Errorf("seed %d: ResolveGender(\"\") = %q", seed, g)
		}
	}
}

func TestComposeStandard(t *testing.T) {
	tables := lore.Default()
	for seed := int64(0); seed < 100; seed++ {
		id := Compose(rng.New(seed), tables, Options{Heritage: "slavic"})
		if id.Strategy != Standard {
			t.Fatalf("seed %d: strategy = %s, want standard", seed, id.Strategy)
		}
		c, _ := tables.Culture("slavic")
		if !c.IsSurname(id.Surname) {
			t.Errorf("seed %d: surname %q not from slavic pool", seed, id.Surname)
		}
		if id.Name != id.FirstName+" "+id.Surname {
			t.Errorf("seed %d: name %q, want %q", seed, id.Name, id.FirstName+" "+id.Surname)
		}
	}
}

func TestComposeHeritageBlend(t *testing.T) {
	tables := lore.Default()
	for seed := int64(0); seed < 100; seed++ {
		id := Compose(rng.New(seed), tables, Options{HeritageBlend: true})
		if id.Strategy != HeritageBlend {
			t.Fatalf("seed %d: strategy = %s", seed, id.Strategy)
		}
		if parts := strings.Fields(id.Name); len(parts) != 2 {
			t.Errorf("seed %d: blended name %q should have two parts", seed, id.Name)
		}
		if id.Surname != "" {
			t.Errorf("seed %d: blended name should not draw a surname, got %q", seed, id.Surname)
		}
	}
}

func TestComposeBlendSelectorUsesBlendStrategy(t *testing.T) {
	id := Compose(rng.New(3), lore.Default(), Options{Heritage: "blend"})
	if id.Strategy != HeritageBlend {
		t.Errorf("strategy = %s, want %s", id.Strategy, HeritageBlend)
	}
	if !strings.HasSuffix(id.Heritage, " blend") {
		t.Errorf("heritage = %q, want blended label", id.Heritage)
	}
}

func TestComposeMononymExcludesSurnames(t *testing.T) {
	tables := lore.Default()
	for _, strategy := range MononymStrategies {
		t.Run(string(strategy), func(t *testing.T) {
			for seed := int64(0); seed < 300; seed++ {
				id := Compose(rng.New(seed), tables, Options{Mononym: true, MononymStrategy: strategy})
				if id.Strategy != strategy {
					t.Fatalf("seed %d: strategy = %s", seed, id.Strategy)
				}
				if id.Surname != "" {
					t.Errorf("seed %d: mononym has surname %q", seed, id.Surname)
				}
				c, _ := tables.Culture(id.Culture)
				for _, word := range strings.FieldsFunc(id.Name, func(r rune) bool { return r == ' ' || r == '-' }) {
					if c.IsSurname(word) {
						t.Errorf("seed %d: name %q contains surname %q", seed, id.Name, word)
					}
				}
				if id.Name == "" {
					t.Errorf("seed %d: empty name", seed)
				}
			}
		})
	}
}

func TestAvoidSurname(t *testing.T) {
	norse, _ := lore.Default().Culture("norse")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no surname", "Bjorn", "Bjorn"},
		{"whole name", "Skjold", "Skjoldi"},
		{"surname inside earlier token", "Skjoldskjold Skjold", "Skjoldskjold Skjoldi"},
		{"every matching token", "Brandt the Brandt", "Brandti the Brandti"},
		{"hyphenated", "Ulf-Ironside", "Ulf-Ironsidei"},
		{"case insensitive", "HALVORSEN moth", "HALVORSENi moth"},
		{"separators kept", "Raven  Dahl-", "Raven  Dahli-"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := avoidSurname(norse, tt.input)
			if got != tt.expected {
				t.Errorf("avoidSurname(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			for _, word := range strings.FieldsFunc(got, func(r rune) bool { return r == ' ' || r == '-' }) {
				if norse.IsSurname(word) {
					t.Errorf("avoidSurname(%q) = %q still contains surname %q", tt.input, got, word)
				}
			}
		})
	}
}

func TestComposeSimpleIsFirstName(t *testing.T) {
	id := Compose(rng.New(11), lore.Default(), Options{Mononym: true, MononymStrategy: Simple})
	if id.Name != id.FirstName {
		t.Errorf("simple name = %q, want %q", id.Name, id.FirstName)
	}
}

func TestComposeAminalClearContainsBothWords(t *testing.T) {
	tables := lore.Default()
	animals := append(append([]string{}, tables.Animals.Mythical...), tables.Animals.Real...)
	for seed := int64(0); seed < 50; seed++ {
		id := Compose(rng.New(seed), tables, Options{Mononym: true, MononymStrategy: AminalClear})
		if !strings.Contains(id.Name, id.FirstName) {
			t.Errorf("seed %d: %q missing first name %q", seed, id.Name, id.FirstName)
		}
		found := false
		for _, a := range animals {
			if strings.Contains(id.Name, a) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("seed %d: %q contains no animal", seed, id.Name)
		}
	}
}

func TestComposeMononymRandomStrategy(t *testing.T) {
	seen := map[Strategy]bool{}
	for seed := int64(0); seed < 200; seed++ {
		id := Compose(rng.New(seed), lore.Default(), Options{Mononym: true})
		if !id.Strategy.IsMononym() {
			t.Fatalf("seed %d: strategy %s is not a mononym strategy", seed, id.Strategy)
		}
		seen[id.Strategy] = true
	}
	if len(seen) != len(MononymStrategies) {
		t.Errorf("saw %d mononym strategies, want %d", len(seen), len(MononymStrategies))
	}
}

func TestComposeDeterministic(t *testing.T) {
	tables := lore.Default()
	opts := []Options{
		{},
		{HeritageBlend: true},
		{Mononym: true},
		{Heritage: "yoruba", Gender: Feminine},
	}
	for _, o := range opts {
		for seed := int64(0); seed < 30; seed++ {
			a := Compose(rng.New(seed), tables, o)
			b := Compose(rng.New(seed), tables, o)
			if a != b {
				t.Errorf("seed %d opts %+v: %+v != %+v", seed, o, a, b)
			}
		}
	}
}

func TestSyllableNameCapitalized(t *testing.T) {
	tables := lore.Default()
	for _, c := range tables.Cultures {
		for seed := int64(0); seed < 20; seed++ {
			name := SyllableName(rng.New(seed), &c, Feminine)
			r := []rune(name)
			if len(r) < 2 {
				t.Errorf("%s seed %d: name %q too short", c.ID, seed, name)
				continue
			}
			if strings.ToUpper(string(r[0])) != string(r[0]) || strings.ToLower(string(r[1:])) != string(r[1:]) {
				t.Errorf("%s seed %d: name %q not capitalized", c.ID, seed, name)
			}
		}
	}
}

func TestJoinSyllable(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"Thor", "ri", "Thori"},
		{"Ka", "ara", "Kara"},
		{"Sig", "", "Sig"},
		{"", "na", "na"},
	}
	for _, tt := range tests {
		if got := joinSyllable(tt.a, tt.b); got != tt.want {
			t.Errorf("joinSyllable(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCutsRespectLength(t *testing.T) {
	s := rng.New(77)
	for i := 0; i < 200; i++ {
		if p := prefixOf(s, "Phoenix"); len(p) < 2 || !strings.HasPrefix("Phoenix", p) {
			t.Fatalf("prefixOf = %q", p)
		}
		if x := suffixOf(s, "Phoenix"); len(x) < 2 || !strings.HasSuffix("Phoenix", x) {
			t.Fatalf("suffixOf = %q", x)
		}
		if m := middleOf(s, "Phoenix"); m == "" || !strings.Contains("Phoenix", m) {
			t.Fatalf("middleOf = %q", m)
		}
	}
	if got := prefixOf(s, "Ro"); got != "Ro" {
		t.Errorf("prefixOf(Ro) = %q", got)
	}
}
