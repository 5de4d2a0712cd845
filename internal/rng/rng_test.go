package rng

import (
	"math"
	"testing"
)

func TestKnownSequence(t *testing.T) {
	s := New(42)
	want := []int64{1250496027, 1116302264, 1000676753}
	for i, w := range want {
		got := s.Next()
		if s.State() != w {
			t.Fatalf("draw %d: state = %d, want %d", i, s.State(), w)
		}
		if math.Abs(got-float64(w)/modulus) > 1e-15 {
			t.Errorf("draw %d: Next() = %v, want %v", i, got, float64(w)/modulus)
		}
	}
}

func TestNewNormalizesSeed(t *testing.T) {
	tests := []struct {
		seed int64
		want int64
	}{
		{0, 0},
		{42, 42},
		{-5, modulus - 5},
		{modulus + 7, 7},
	}

	for _, tt := range tests {
		if got := New(tt.seed).State(); got != tt.want {
			t.Errorf("New(%d).State() = %d, want %d", tt.seed, got, tt.want)
		}
	}
}

func TestNextDeterministic(t *testing.T) {
	a := New(1234)
	b := New(1234)
	for i := 0; i < 1000; i++ {
		x, y := a.Next(), b.Next()
		if x != y {
			t.Fatalf("draw %d diverged: %v != %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d out of range: %v", i, x)
		}
	}
}

func TestIntnBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 2000; i++ {
		if v := s.Intn(5); v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d", v)
		}
	}

	before := s.State()
	if v := s.Intn(0); v != 0 {
		t.Errorf("Intn(0) = %d, want 0", v)
	}
	if s.State() != before {
		t.Error("Intn(0) should not advance the stream")
	}
}

func TestIntRangeInclusive(t *testing.T) {
	s := New(99)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := s.IntRange(1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("IntRange(1, 3) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("IntRange(1, 3) hit %d distinct values, want 3", len(seen))
	}
}

func TestChildDoesNotAdvanceParent(t *testing.T) {
	parent := New(5)
	parent.Next()
	before := parent.State()

	child := Child(777)
	for i := 0; i < 10; i++ {
		child.Next()
	}

	if parent.State() != before {
		t.Errorf("parent state = %d after child draws, want %d", parent.State(), before)
	}
	if child.State() == parent.State() {
		t.Error("child stream should be independent of the parent")
	}

	fresh := New(777)
	for i := 0; i < 10; i++ {
		fresh.Next()
	}
	if child.State() != fresh.State() {
		t.Errorf("Child(777) state = %d, want %d from New(777)", child.State(), fresh.State())
	}
}

func TestRestoreReplaysDraws(t *testing.T) {
	s := New(2024)
	s.Next()
	snap := s.State()
	want := []float64{s.Next(), s.Next(), s.Next()}

	r := Restore(snap)
	for i, w := range want {
		if got := r.Next(); got != w {
			t.Errorf("replayed draw %d = %v, want %v", i, got, w)
		}
	}
}

func TestPickEmpty(t *testing.T) {
	s := New(1)
	before := s.State()
	if got := Pick[string](s, nil); got != "" {
		t.Errorf("Pick(nil) = %q, want empty", got)
	}
	if s.State() != before {
		t.Error("Pick on empty slice should not advance the stream")
	}
}

func TestPickOther(t *testing.T) {
	s := New(3)
	items := []string{"a", "b"}
	for i := 0; i < 50; i++ {
		if got := PickOther(s, items, "a"); got == "a" {
			// Bounded retries can still land on avoid, but not 50 times running.
			continue
		}
		return
	}
	t.Error("PickOther never returned a different element")
}
