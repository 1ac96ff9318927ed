package mtl

// Interval is the [Lo, Hi] time window of a bounded temporal operator.
// Unbounded indicates the operator ranges over [Lo, ∞) (Hi is ignored).
type Interval struct {
	Lo        float64
	Hi        float64
	Unbounded bool
}

// Bounded builds a finite [lo, hi] interval.
func Bounded(lo, hi float64) Interval {
	return Interval{Lo: lo, Hi: hi}
}

// FromZero builds the unbounded interval [0, ∞), the default window for
// Always/Eventually when no explicit bound is given.
func FromZero() Interval {
	return Interval{Lo: 0, Unbounded: true}
}
