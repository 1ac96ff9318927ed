package trace

import (
	"sort"

	"github.com/csimtl/csimtl/connective"
	"github.com/csimtl/csimtl/path"
)

// Trace is a mapping from path.Path to Signal. Values for distinct paths
// are independent; Atoms reports exactly the set of paths with at least one
// breakpoint .
type Trace struct {
	signals map[string]*Signal
	paths   map[string]path.Path
}

// New returns an empty trace.
func New() *Trace {
	return &Trace{
		signals: make(map[string]*Signal),
		paths:   make(map[string]path.Path),
	}
}

// Set appends or overwrites the breakpoint (at, v) on p's signal, creating
// an empty signal first if p is not yet present.
func (t *Trace) Set(p path.Path, at float64, v any) {
	key := p.Hash()
	sig, ok := t.signals[key]
	if !ok {
		sig = NewSignal()
		t.signals[key] = sig
		t.paths[key] = p
	}
	sig.Set(at, v)
}

// Get returns p's signal, if any breakpoint has been recorded for it.
func (t *Trace) Get(p path.Path) (*Signal, bool) {
	sig, ok := t.signals[p.Hash()]

	return sig, ok
}

// Atoms returns every path with at least one breakpoint, sorted for
// determinism.
func (t *Trace) Atoms() []path.Path {
	out := make([]path.Path, 0, len(t.paths))
	for _, p := range t.paths {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Project restricts the trace to the requested atoms, lifting boolean
// values into conn's truth-value type and passing every other dynamic type
// through unchanged. Paths absent from the trace are omitted from the
// result; the result is keyed by path.Hash().
func (t *Trace) Project(atoms []path.Path, conn connective.Connective) map[string][]Point {
	out := make(map[string][]Point, len(atoms))
	for _, p := range atoms {
		sig, ok := t.Get(p)
		if !ok {
			continue
		}
		pts := sig.Breakpoints()
		projected := make([]Point, len(pts))
		for i, bp := range pts {
			if lifted, isBool := bp.V.(bool); isBool {
				if lifted {
					projected[i] = Point{T: bp.T, V: conn.ConstTrue}
				} else {
					projected[i] = Point{T: bp.T, V: conn.ConstFalse}
				}
			} else {
				projected[i] = bp
			}
		}
		out[p.Hash()] = projected
	}

	return out
}

// Merge returns a fresh trace combining t and other: paths present in only
// one operand are copied as-is; paths present in both are merged breakpoint
// by breakpoint, with other's (carried-forward) value winning wherever it
// is defined .
func (t *Trace) Merge(other *Trace) *Trace {
	result := New()
	for key, sig := range t.signals {
		result.signals[key] = cloneSignal(sig)
		result.paths[key] = t.paths[key]
	}
	for key, sig := range other.signals {
		result.paths[key] = other.paths[key]
		existing, ok := result.signals[key]
		if !ok {
			result.signals[key] = cloneSignal(sig)

			continue
		}
		result.signals[key] = mergeSignals(existing, sig)
	}

	return result
}

func cloneSignal(s *Signal) *Signal {
	cp := NewSignal()
	for _, p := range s.Breakpoints() {
		cp.Set(p.T, p.V)
	}

	return cp
}

// mergeSignals merges self and other over the union of their breakpoint
// times, taking other's carried-forward value whenever it is defined there,
// else self's.
func mergeSignals(self, other *Signal) *Signal {
	times := make(map[float64]struct{})
	for _, p := range self.Breakpoints() {
		times[p.T] = struct{}{}
	}
	for _, p := range other.Breakpoints() {
		times[p.T] = struct{}{}
	}
	ordered := make([]float64, 0, len(times))
	for tm := range times {
		ordered = append(ordered, tm)
	}
	sort.Float64s(ordered)

	merged := NewSignal()
	for _, tm := range ordered {
		if v, ok := other.At(tm); ok {
			merged.Set(tm, v)

			continue
		}
		if v, ok := self.At(tm); ok {
			merged.Set(tm, v)
		}
	}

	return merged
}

// MergedStep is one entry of IterMerged: the merged breakpoint time and the
// carried-forward value of each requested atom defined at that time.
type MergedStep struct {
	T      float64
	Values map[string]any // keyed by path.Hash()
}

// IterMerged produces the ordered sequence of distinct breakpoints across
// the requested atoms, each paired with the carried-forward value of every
// atom that is defined at that time .
func (t *Trace) IterMerged(atoms []path.Path) []MergedStep {
	times := make(map[float64]struct{})
	sigs := make(map[string]*Signal, len(atoms))
	for _, p := range atoms {
		sig, ok := t.Get(p)
		if !ok {
			continue
		}
		sigs[p.Hash()] = sig
		for _, bp := range sig.Breakpoints() {
			times[bp.T] = struct{}{}
		}
	}
	ordered := make([]float64, 0, len(times))
	for tm := range times {
		ordered = append(ordered, tm)
	}
	sort.Float64s(ordered)

	steps := make([]MergedStep, 0, len(ordered))
	for _, tm := range ordered {
		values := make(map[string]any, len(sigs))
		for key, sig := range sigs {
			if v, ok := sig.At(tm); ok {
				values[key] = v
			}
		}
		steps = append(steps, MergedStep{T: tm, Values: values})
	}

	return steps
}
