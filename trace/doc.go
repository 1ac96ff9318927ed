// Package trace implements the piecewise-constant Signal and the
// path-keyed Trace: construction via Set/Record, lookup via Get/At, and the
// merge/project/IterMerged operations the evaluator and the coverage
// registry build on.
//
// A Signal is an ordered, compacted sequence of (t, v) breakpoints: the
// value at any time tau is that of the greatest breakpoint <= tau (right-
// continuous carry-forward); before the first breakpoint the value is
// undefined. A Trace maps path.Path to *Signal and keeps every path
// independent — there is no cross-path invariant enforced here.
package trace
