package sample

import (
	"math/rand"
	"time"
)

// Stream is the single seeded pseudo-random source for a generation run.
// It is threaded explicitly through every generator so that sampling order
// is fixed and two runs with the same seed produce identical output.
type Stream struct {
	rng *rand.Rand
}

// NewStream creates a stream seeded with the given value.
func NewStream(seed int64) *Stream {
	return &Stream{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n). n must be positive.
func (s *Stream) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntBetween returns a uniform int in [lo, hi] inclusive.
func (s *Stream) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 returns a uniform float in [0, 1).
func (s *Stream) Float64() float64 {
	return s.rng.Float64()
}

// FloatBetween returns a uniform float in [lo, hi).
func (s *Stream) FloatBetween(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func (s *Stream) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Pick returns a uniformly chosen element of pool.
func Pick[T any](s *Stream, pool []T) T {
	return pool[s.rng.Intn(len(pool))]
}

// PickN samples n distinct elements from pool without replacement,
// preserving no particular order. If n exceeds len(pool) the whole pool is
// returned (degenerate sampling is reduced, not failed).
func PickN[T any](s *Stream, pool []T, n int) []T {
	if n >= len(pool) {
		out := make([]T, len(pool))
		copy(out, pool)
		return out
	}
	idx := s.rng.Perm(len(pool))[:n]
	out := make([]T, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

// Subset returns a random subset holding frac of pool (at least one element
// for non-empty pools), sampled without replacement.
func Subset[T any](s *Stream, pool []T, frac float64) []T {
	n := int(float64(len(pool)) * frac)
	if n < 1 && len(pool) > 0 {
		n = 1
	}
	return PickN(s, pool, n)
}

// DateBetween returns a uniform calendar day in [lo, hi] at midnight UTC.
func (s *Stream) DateBetween(lo, hi time.Time) time.Time {
	lo = Midnight(lo)
	hi = Midnight(hi)
	days := int(hi.Sub(lo).Hours() / 24)
	if days <= 0 {
		return lo
	}
	return lo.AddDate(0, 0, s.rng.Intn(days+1))
}

// Midnight truncates t to its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
