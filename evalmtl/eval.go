package evalmtl

import (
	"math"

	"github.com/csimtl/csimtl/connective"
	"github.com/csimtl/csimtl/mtl"
	"github.com/csimtl/csimtl/trace"
)

// maxWindowSamples bounds the number of dt-spaced samples a single bounded
// or unbounded window evaluation will take, as a backstop against a
// pathological dt/horizon combination looping for an unreasonable time.
const maxWindowSamples = 1_000_000

// Eval evaluates n against signals (as produced by trace.Trace.Project)
// under conn, at the point or full-signal selector named by t.
//
// Errors:
//   - ErrNonPositiveDt if opts.Dt <= 0.
//
// If any atom n references is absent from signals, Eval returns
// (Undecidable, nil, nil) rather than an error — reference errors are
// absorbed into verdict space, not surfaced as Go errors.
func Eval(n mtl.Node, signals map[string][]trace.Point, t Time, conn connective.Connective, opts Options) (Verdict, []trace.Point, error) {
	if opts.Dt <= 0 {
		return Verdict{}, nil, ErrNonPositiveDt
	}

	for _, a := range mtl.Atoms(n) {
		if _, ok := signals[a.Path().Hash()]; !ok {
			return Undecidable, nil, nil
		}
	}

	e := &evaluator{signals: signals, conn: conn, opts: opts}

	if !t.IsFull() {
		return Decide(e.at(n, t.Value())), nil, nil
	}

	times := mergedBreakpointTimes(signals, atomKeys(n))
	if len(times) == 0 {
		times = []float64{0}
	}
	out := make([]trace.Point, 0, len(times))
	var prev float64
	havePrev := false
	for _, tau := range times {
		v := e.at(n, tau)
		if havePrev && v == prev {
			continue
		}
		out = append(out, trace.Point{T: tau, V: v})
		prev = v
		havePrev = true
	}

	return Verdict{}, out, nil
}

type evaluator struct {
	signals map[string][]trace.Point
	conn    connective.Connective
	opts    Options
}

// at computes n's truth value at tau; the single recursive core of the
// evaluator.
func (e *evaluator) at(n mtl.Node, tau float64) float64 {
	switch v := n.(type) {
	case mtl.AtomicPred:
		return lookupAt(e.signals, v.Atom.Path().Hash(), tau, e.conn)

	case mtl.Not:
		return e.conn.Neg(e.at(v.Phi, tau))

	case mtl.And:
		return e.conn.Conj(e.at(v.Phi, tau), e.at(v.Psi, tau))

	case mtl.Or:
		return e.conn.Disj(e.at(v.Phi, tau), e.at(v.Psi, tau))

	case mtl.Implies:
		return e.conn.Implies(e.at(v.Phi, tau), e.at(v.Psi, tau))

	case mtl.Next:
		return e.at(v.Phi, tau+e.opts.Dt)

	case mtl.Shift:
		return e.at(v.Phi, tau+float64(v.K)*e.opts.Dt)

	case mtl.Always:
		lo, hi, empty := e.window(v.Phi, tau, v.Interval)
		if empty {
			return e.conn.ConstTrue
		}

		return e.fold(v.Phi, lo, hi, e.conn.ConstTrue, e.conn.Conj)

	case mtl.Eventually:
		lo, hi, empty := e.window(v.Phi, tau, v.Interval)
		if empty {
			return e.conn.ConstFalse
		}

		return e.fold(v.Phi, lo, hi, e.conn.ConstFalse, e.conn.Disj)

	case mtl.Until:
		return e.until(v.Phi, v.Psi, tau, v.Interval)

	case mtl.TimedUntil:
		return e.until(v.Phi, v.Psi, tau, mtl.Bounded(v.Lo, v.Hi))

	case mtl.WeakUntil:
		strong := e.until(v.Phi, v.Psi, tau, mtl.FromZero())
		lo, hi, empty := e.window(v.Phi, tau, mtl.FromZero())
		always := e.conn.ConstTrue
		if !empty {
			always = e.fold(v.Phi, lo, hi, e.conn.ConstTrue, e.conn.Conj)
		}

		return e.conn.Disj(strong, always)

	case mtl.Cmp:
		return e.cmp(v, tau)

	default:
		return e.conn.ConstFalse
	}
}

// window resolves an operator's [tau+lo, tau+hi] sampling range, expanding
// an unbounded upper bound to the latest breakpoint of phi's atoms (beyond
// which the carried-forward value is constant), or to lo itself when that
// breakpoint precedes lo, so an unbounded window is never empty. empty is
// true when the resolved range has no points to sample (hi < lo), in which
// case the caller should return its fold's identity element.
func (e *evaluator) window(phi mtl.Node, tau float64, iv mtl.Interval) (lo, hi float64, empty bool) {
	lo = tau + iv.Lo
	if iv.Unbounded {
		hi = math.Max(lastSupportTime(e.signals, atomKeys(phi), lo), lo)
	} else {
		hi = tau + iv.Hi
	}

	return lo, hi, hi < lo
}

// fold samples phi at dt-spaced instants across [lo, hi] (inclusive of both
// endpoints) and reduces the samples with combine, starting from identity.
func (e *evaluator) fold(phi mtl.Node, lo, hi float64, identity float64, combine func(a, b float64) float64) float64 {
	result := identity
	for _, tau := range sampleRange(lo, hi, e.opts.Dt) {
		result = combine(result, e.at(phi, tau))
	}

	return result
}

// until implements the metric until semantics of :
//
//	sup_{t in [tau+lo,tau+hi]} ( psi(t) ⊓ inf_{s in [tau,t]} phi(s) )
func (e *evaluator) until(phi, psi mtl.Node, tau float64, iv mtl.Interval) float64 {
	lo, hi, empty := e.window(psi, tau, iv)
	if empty {
		return e.conn.ConstFalse
	}

	result := e.conn.ConstFalse
	for _, t := range sampleRange(lo, hi, e.opts.Dt) {
		innerInf := e.fold(phi, tau, t, e.conn.ConstTrue, e.conn.Conj)
		result = e.conn.Disj(result, e.conn.Conj(e.at(psi, t), innerInf))
	}

	return result
}

func (e *evaluator) cmp(n mtl.Cmp, tau float64) float64 {
	x := e.operand(n.X, tau)
	y := e.operand(n.Y, tau)

	var holds bool
	switch n.Op {
	case mtl.Lt:
		holds = x < y
	case mtl.Eq:
		holds = math.Abs(x-y) <= e.opts.EqTolerance
	}
	if holds {
		return e.conn.ConstTrue
	}

	return e.conn.ConstFalse
}

func (e *evaluator) operand(o mtl.Operand, tau float64) float64 {
	if o.IsAtom() {
		return lookupAt(e.signals, o.Atom().Path().Hash(), tau, e.conn)
	}

	return o.Const()
}

// sampleRange returns dt-spaced instants covering [lo, hi], always
// including both endpoints exactly.
func sampleRange(lo, hi, dt float64) []float64 {
	if hi < lo {
		return nil
	}
	n := int(math.Floor((hi-lo)/dt + 1e-9))
	if n > maxWindowSamples {
		n = maxWindowSamples
	}
	out := make([]float64, 0, n+2)
	for i := 0; i <= n; i++ {
		out = append(out, lo+float64(i)*dt)
	}
	if len(out) == 0 || hi-out[len(out)-1] > 1e-9 {
		out = append(out, hi)
	}

	return out
}

func atomKeys(n mtl.Node) []string {
	atoms := mtl.Atoms(n)
	keys := make([]string, len(atoms))
	for i, a := range atoms {
		keys[i] = a.Path().Hash()
	}

	return keys
}

func mergedBreakpointTimes(signals map[string][]trace.Point, keys []string) []float64 {
	seen := make(map[float64]struct{})
	for _, k := range keys {
		for _, p := range signals[k] {
			seen[p.T] = struct{}{}
		}
	}
	out := make([]float64, 0, len(seen))
	for tm := range seen {
		out = append(out, tm)
	}
	// simple insertion sort: formula atom counts/breakpoint counts are
	// small in practice, so a straightforward pass beats sort.Float64s'
	// extra allocation for this size.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}
