package sample

// Option is one (value, weight) pair of a weighted categorical distribution.
type Option[T any] struct {
	Value  T
	Weight float64
}

// Weighted is a typed weighted-choice distribution. All stages that need a
// weighted categorical draw (operator type, revenue tier, account type,
// activity type) share this one primitive.
type Weighted[T any] struct {
	options []Option[T]
	total   float64
}

// NewWeighted builds a distribution from (value, weight) pairs.
// Weights must be positive; they need not sum to one.
func NewWeighted[T any](options ...Option[T]) *Weighted[T] {
	w := &Weighted[T]{options: options}
	for _, o := range options {
		w.total += o.Weight
	}
	return w
}

// Choose draws one value from the distribution using the given stream.
func (w *Weighted[T]) Choose(s *Stream) T {
	target := s.Float64() * w.total
	acc := 0.0
	for _, o := range w.options {
		acc += o.Weight
		if target < acc {
			return o.Value
		}
	}
	return w.options[len(w.options)-1].Value
}

// ChooseFrom draws from parallel value/weight slices. Values and weights
// must have equal length.
func ChooseFrom[T any](s *Stream, values []T, weights []float64) T {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	target := s.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if target < acc {
			return values[i]
		}
	}
	return values[len(values)-1]
}
