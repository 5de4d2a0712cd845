package variance

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/chromox/forge/internal/rng"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-10, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{250, 100},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.input); got != tt.expected {
			t.Errorf("Clamp(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestApplyZeroIsIdentity(t *testing.T) {
	names := []string{"Astrid Halvorsen", "Kaito", "Wolf-Bran", "", "Ñandú"}
	for _, name := range names {
		s := rng.New(42)
		before := s.State()
		if got := Apply(name, 0, s); got != name {
			t.Errorf("Apply(%q, 0) = %q", name, got)
		}
		if got := Apply(name, -20, s); got != name {
			t.Errorf("Apply(%q, -20) = %q", name, got)
		}
		if s.State() != before {
			t.Errorf("Apply(%q, 0) advanced the stream", name)
		}
	}
}

func TestApplyDeterministic(t *testing.T) {
	for _, pct := range []float64{10, 50, 75, 100} {
		a := Apply("Leonidas Papadakis", pct, rng.New(7))
		b := Apply("Leonidas Papadakis", pct, rng.New(7))
		if a != b {
			t.Errorf("Apply at %v%% not deterministic: %q != %q", pct, a, b)
		}
	}
}

func TestApplyFullNeverShrinks(t *testing.T) {
	name := "Morrigu Ferriter"
	for seed := int64(0); seed < 200; seed++ {
		got := Apply(name, 100, rng.New(seed))
		if utf8.RuneCountInString(got) < utf8.RuneCountInString(name) {
			t.Errorf("seed %d: %q shorter than %q", seed, got, name)
		}
		if got == name {
			t.Errorf("seed %d: Apply at 100%% left name unchanged", seed)
		}
	}
}

func TestApplyPreservesWordStarts(t *testing.T) {
	name := "Sigrid Ironside"
	for seed := int64(0); seed < 100; seed++ {
		got := strings.Map(func(r rune) rune {
			if isSpacer(r) {
				return -1
			}
			return r
		}, Apply(name, 60, rng.New(seed)))
		if !strings.HasPrefix(got, "S") {
			t.Errorf("seed %d: first letter changed in %q", seed, got)
		}
		if !strings.Contains(got, " I") {
			t.Errorf("seed %d: second word start changed in %q", seed, got)
		}
	}
}

func TestApplyMildAtLowVariance(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		got := Apply("Aaaaaaaaaa", 50, rng.New(seed))
		for _, r := range got {
			for _, g := range heavy['a'] {
				if string(r) == g {
					t.Fatalf("seed %d: heavy glyph %q at 50%% in %q", seed, g, got)
				}
			}
		}
	}
}

func TestApplyGlitchOnlyAboveThreshold(t *testing.T) {
	hasMark := func(s string) bool {
		for _, r := range s {
			for _, g := range glitches {
				if string(r) == g {
					return true
				}
			}
		}
		return false
	}

	for seed := int64(0); seed < 100; seed++ {
		if got := Apply("Valentina Corvino", 70, rng.New(seed)); hasMark(got) {
			t.Fatalf("seed %d: glitch mark at 70%%: %q", seed, got)
		}
	}

	found := false
	for seed := int64(0); seed < 100 && !found; seed++ {
		found = hasMark(Apply("Valentina Corvino", 100, rng.New(seed)))
	}
	if !found {
		t.Error("no glitch marks at 100% across 100 seeds")
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Astrid", "astrid"},
		{"Äśtrïd", "astrid"},
		{"4str1d", "astrid"},
		{"B\u200bj\u2009o\u0336rn", "bjorn"},
		{"ł0k1", "loki"},
	}
	for _, tt := range tests {
		if got := Fold(tt.input); got != tt.expected {
			t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFoldReversesMildVariance(t *testing.T) {
	name := "Solveig Ravensdottir"
	for seed := int64(0); seed < 50; seed++ {
		varied := Apply(name, 40, rng.New(seed))
		if got := Fold(varied); got != strings.ToLower(name) {
			t.Errorf("seed %d: Fold(%q) = %q", seed, varied, got)
		}
	}
}
