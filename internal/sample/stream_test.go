package sample

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamDeterminism(t *testing.T) {
	a := NewStream(42)
	b := NewStream(42)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}

	c := NewStream(43)
	diverged := false
	d := NewStream(42)
	for i := 0; i < 100; i++ {
		if c.Intn(1000) != d.Intn(1000) {
			diverged = true
			break
		}
	}
	assert.True(t, diverged, "different seeds should produce different sequences")
}

func TestIntBetween(t *testing.T) {
	s := NewStream(1)

	for i := 0; i < 1000; i++ {
		v := s.IntBetween(3, 15)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 15)
	}

	assert.Equal(t, 5, s.IntBetween(5, 5))
	assert.Equal(t, 5, s.IntBetween(5, 2))
}

func TestFloatBetween(t *testing.T) {
	s := NewStream(1)
	for i := 0; i < 1000; i++ {
		v := s.FloatBetween(0.30, 0.45)
		assert.GreaterOrEqual(t, v, 0.30)
		assert.Less(t, v, 0.45)
	}
}

func TestChance(t *testing.T) {
	s := NewStream(7)

	hits := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if s.Chance(0.10) {
			hits++
		}
	}
	rate := float64(hits) / n
	assert.InDelta(t, 0.10, rate, 0.02)

	assert.False(t, s.Chance(0))
}

func TestPickN(t *testing.T) {
	s := NewStream(3)
	pool := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	t.Run("samples without replacement", func(t *testing.T) {
		got := PickN(s, pool, 4)
		require.Len(t, got, 4)
		seen := map[int]bool{}
		for _, v := range got {
			assert.False(t, seen[v], "duplicate element %d", v)
			seen[v] = true
		}
	})

	t.Run("reduces oversized requests", func(t *testing.T) {
		got := PickN(s, pool, 50)
		assert.Len(t, got, len(pool))
	})
}

func TestSubset(t *testing.T) {
	s := NewStream(3)
	pool := make([]int, 100)
	for i := range pool {
		pool[i] = i
	}

	got := Subset(s, pool, 0.35)
	assert.Len(t, got, 35)

	tiny := Subset(s, []int{1, 2}, 0.01)
	assert.Len(t, tiny, 1, "non-empty pools always yield at least one element")
}

func TestDateBetween(t *testing.T) {
	s := NewStream(9)
	lo := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		d := s.DateBetween(lo, hi)
		assert.False(t, d.Before(lo))
		assert.False(t, d.After(hi))
		assert.Equal(t, 0, d.Hour())
		assert.Equal(t, time.UTC, d.Location())
	}

	t.Run("degenerate range returns the low bound", func(t *testing.T) {
		assert.Equal(t, lo, s.DateBetween(lo, lo))
		assert.Equal(t, hi, s.DateBetween(hi, lo))
	})
}

func TestWeightedChoose(t *testing.T) {
	w := NewWeighted(
		Option[string]{Value: "common", Weight: 4},
		Option[string]{Value: "rare", Weight: 1},
	)

	s := NewStream(11)
	counts := map[string]int{}
	const n = 10000
	for i := 0; i < n; i++ {
		counts[w.Choose(s)]++
	}

	assert.InDelta(t, 0.8, float64(counts["common"])/n, 0.03)
	assert.InDelta(t, 0.2, float64(counts["rare"])/n, 0.03)
}

func TestChooseFrom(t *testing.T) {
	s := NewStream(11)
	values := []string{"primary", "secondary-a", "secondary-b"}
	weights := []float64{0.8, 0.1, 0.1}

	counts := map[string]int{}
	const n = 10000
	for i := 0; i < n; i++ {
		counts[ChooseFrom(s, values, weights)]++
	}

	assert.InDelta(t, 0.8, float64(counts["primary"])/n, 0.03)
}
