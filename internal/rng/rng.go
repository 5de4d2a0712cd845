// Package rng provides the deterministic pseudorandom stream that every
// generation stage draws from.
//
// The stream is a 31-bit linear congruential generator. For a fixed seed the
// n-th call to Next always returns the same value, so callers must never
// reorder their draws.
package rng

const (
	modulus    = 1 << 31
	multiplier = 1103515245
	increment  = 12345
)

// Stream is a seeded pseudorandom stream. It is not safe for concurrent use;
// each generation owns its own Stream.
type Stream struct {
	state int64
}

// New creates a stream for the given seed. Seeds outside [0, 2^31) are
// reduced modulo 2^31.
func New(seed int64) *Stream {
	return &Stream{state: normalize(seed)}
}

func normalize(seed int64) int64 {
	s := seed % modulus
	if s < 0 {
		s += modulus
	}
	return s
}

// Next advances the stream and returns a float in [0, 1).
func (s *Stream) Next() float64 {
	s.state = (s.state*multiplier + increment) % modulus
	return float64(s.state) / modulus
}

// Intn returns an int in [0, n). Non-positive n returns 0 without advancing.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Next() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// IntRange returns an int in [min, max], inclusive.
func (s *Stream) IntRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.Intn(max-min+1)
}

// Range returns a float in [min, max).
func (s *Stream) Range(min, max float64) float64 {
	return min + s.Next()*(max-min)
}

// Chance reports whether a single draw falls below p.
func (s *Stream) Chance(p float64) bool {
	return s.Next() < p
}

// Child returns a stream for a seed derived from another stream's draws.
// It shares no state with the stream the seed came from, so drawing from the
// child never advances the parent.
func Child(seed int64) *Stream {
	return New(seed)
}

// State returns the current internal state so the stream can be rewound to
// this exact position later.
func (s *Stream) State() int64 {
	return s.state
}

// Restore returns a new stream positioned at a state captured by State.
func Restore(state int64) *Stream {
	return &Stream{state: normalize(state)}
}

// Pick returns a uniformly chosen element. An empty slice returns the zero
// value without advancing the stream.
func Pick[T any](s *Stream, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[s.Intn(len(items))]
}

// PickOther draws from items until it finds one different from avoid, giving
// up after a bounded number of tries. Every try consumes one draw.
func PickOther[T comparable](s *Stream, items []T, avoid T) T {
	choice := Pick(s, items)
	for i := 0; i < 8 && choice == avoid && len(items) > 1; i++ {
		choice = Pick(s, items)
	}
	return choice
}
