package evalmtl

// Options carries the evaluator's numeric knobs.
type Options struct {
	// Dt is the discretisation step used by Next/Shift and by the window
	// sampling of Always/Eventually/Until/TimedUntil. Must be positive.
	Dt float64

	// EqTolerance is the absolute-difference tolerance for Cmp(=, x, y).
	EqTolerance float64
}

// DefaultOptions returns Dt=1.0, EqTolerance=1e-9.
func DefaultOptions() Options {
	return Options{Dt: 1.0, EqTolerance: 1e-9}
}

// Time selects a point-in-time evaluation or the full-signal sentinel.
type Time struct {
	at   float64
	full bool
}

// At builds a concrete point-in-time selector.
func At(t float64) Time {
	return Time{at: t}
}

// Full builds the "*" sentinel selector: evaluate returns a piecewise-
// constant verdict signal on the merged breakpoint set of every
// participating atom.
func Full() Time {
	return Time{full: true}
}

// IsFull reports whether this selector is the full-signal sentinel.
func (t Time) IsFull() bool { return t.full }

// Value returns the point in time this selector names; valid only when
// IsFull() is false.
func (t Time) Value() float64 { return t.at }
