package evalmtl

import (
	"github.com/csimtl/csimtl/connective"
	"github.com/csimtl/csimtl/trace"
)

// asFloat64 coerces the dynamic numeric types a projected trace.Point may
// carry into float64; Project already lifts booleans into the connective's
// truth-value floats, so this only needs to handle the remaining numeric
// kinds.
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

// lookupAt returns the value of the named signal at tau, using right-
// continuous carry-forward. Before the first breakpoint (or if the key is
// absent or has no breakpoints), conn.ConstFalse (⊥) is returned; Eval
// itself has already rejected formulas whose required atoms are missing
// from signals, so through Eval that branch is only reached by an atom
// whose signal has no breakpoints.
func lookupAt(signals map[string][]trace.Point, key string, tau float64, conn connective.Connective) float64 {
	pts, ok := signals[key]
	if !ok || len(pts) == 0 {
		return conn.ConstFalse
	}

	// pts is ascending by T (trace.Signal.Breakpoints/Project preserve
	// order); find the greatest breakpoint <= tau via a linear scan — the
	// signals involved in a single formula evaluation are small enough
	// that a binary search would not be worth the added complexity.
	idx := -1
	for i, p := range pts {
		if p.T <= tau {
			idx = i
		} else {
			break
		}
	}
	if idx < 0 {
		return conn.ConstFalse
	}
	if f, ok := asFloat64(pts[idx].V); ok {
		return f
	}

	return conn.ConstFalse
}

// lastSupportTime returns the latest breakpoint time across the named
// signals, or fallback if none of them has any breakpoint.
func lastSupportTime(signals map[string][]trace.Point, keys []string, fallback float64) float64 {
	last := fallback
	found := false
	for _, k := range keys {
		pts := signals[k]
		if len(pts) == 0 {
			continue
		}
		t := pts[len(pts)-1].T
		if !found || t > last {
			last = t
			found = true
		}
	}

	return last
}
