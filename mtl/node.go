package mtl

import "github.com/csimtl/csimtl/path"

// Node is the closed sum type over every MTL AST variant. The unexported
// node() marker method prevents external packages from adding their own
// implementations, so evalmtl's visitor can remain an exhaustive type
// switch rather than an open-ended interface dispatch.
type Node interface {
	// Walk returns every sub-node reachable from n in pre-order, including
	// n itself.
	Walk() []Node

	// Substitute returns a structurally fresh node with every AtomicPred
	// (and every atom operand of a Cmp) rebound through repl, keyed by the
	// atom's path.Hash(). Atoms absent from repl are left unchanged.
	Substitute(repl map[string]path.Atom) Node

	node()
}

// CmpOp is the comparison operator carried by a Cmp node.
type CmpOp int

const (
	// Lt is the strict less-than comparison.
	Lt CmpOp = iota
	// Eq is the tolerance-bounded equality comparison.
	Eq
)

// String renders the operator for diagnostics.
func (op CmpOp) String() string {
	switch op {
	case Lt:
		return "<"
	case Eq:
		return "="
	default:
		return "?"
	}
}

// AtomicPred is a leaf predicate: the current value of the referenced
// signal, coerced into the evaluating connective's truth-value type.
type AtomicPred struct {
	Atom path.Atom
}

// Atomic constructs an AtomicPred over atom.
func Atomic(atom path.Atom) AtomicPred {
	return AtomicPred{Atom: atom}
}

func (n AtomicPred) node() {}

func (n AtomicPred) Walk() []Node { return []Node{n} }

func (n AtomicPred) Substitute(repl map[string]path.Atom) Node {
	if replacement, ok := repl[n.Atom.Path().Hash()]; ok {
		return AtomicPred{Atom: replacement}
	}

	return n
}

// Shift returns Shift(n, k): n evaluated k discretisation steps from the
// current time. Defined as a method on AtomicPred (rather than on
// path.Atom) because it must return an mtl.Node and path cannot import mtl
// without creating a cycle — see SPEC_FULL.md §5.1.
func (n AtomicPred) Shift(k int) Node {
	return ShiftBy(n, k)
}

// Not negates its operand.
type Not struct {
	Phi Node
}

func (n Not) node() {}

func (n Not) Walk() []Node {
	return append([]Node{n}, n.Phi.Walk()...)
}

func (n Not) Substitute(repl map[string]path.Atom) Node {
	return Not{Phi: n.Phi.Substitute(repl)}
}

// And is conjunction under the evaluating connective.
type And struct {
	Phi, Psi Node
}

func (n And) node() {}

func (n And) Walk() []Node {
	out := []Node{n}
	out = append(out, n.Phi.Walk()...)
	out = append(out, n.Psi.Walk()...)

	return out
}

func (n And) Substitute(repl map[string]path.Atom) Node {
	return And{Phi: n.Phi.Substitute(repl), Psi: n.Psi.Substitute(repl)}
}

// Or is disjunction under the evaluating connective.
type Or struct {
	Phi, Psi Node
}

func (n Or) node() {}

func (n Or) Walk() []Node {
	out := []Node{n}
	out = append(out, n.Phi.Walk()...)
	out = append(out, n.Psi.Walk()...)

	return out
}

func (n Or) Substitute(repl map[string]path.Atom) Node {
	return Or{Phi: n.Phi.Substitute(repl), Psi: n.Psi.Substitute(repl)}
}

// Implies is material implication: ¬Phi ⊔ Psi.
type Implies struct {
	Phi, Psi Node
}

func (n Implies) node() {}

func (n Implies) Walk() []Node {
	out := []Node{n}
	out = append(out, n.Phi.Walk()...)
	out = append(out, n.Psi.Walk()...)

	return out
}

func (n Implies) Substitute(repl map[string]path.Atom) Node {
	return Implies{Phi: n.Phi.Substitute(repl), Psi: n.Psi.Substitute(repl)}
}

// Next evaluates Phi one discretisation step (dt) in the future.
type Next struct {
	Phi Node
}

func (n Next) node() {}

func (n Next) Walk() []Node {
	return append([]Node{n}, n.Phi.Walk()...)
}

func (n Next) Substitute(repl map[string]path.Atom) Node {
	return Next{Phi: n.Phi.Substitute(repl)}
}

// Always is the infimum of Phi over the given time window (unbounded means
// [tau, +inf)).
type Always struct {
	Phi      Node
	Interval Interval
}

func (n Always) node() {}

func (n Always) Walk() []Node {
	return append([]Node{n}, n.Phi.Walk()...)
}

func (n Always) Substitute(repl map[string]path.Atom) Node {
	return Always{Phi: n.Phi.Substitute(repl), Interval: n.Interval}
}

// Eventually is the supremum of Phi over the given time window.
type Eventually struct {
	Phi      Node
	Interval Interval
}

func (n Eventually) node() {}

func (n Eventually) Walk() []Node {
	return append([]Node{n}, n.Phi.Walk()...)
}

func (n Eventually) Substitute(repl map[string]path.Atom) Node {
	return Eventually{Phi: n.Phi.Substitute(repl), Interval: n.Interval}
}

// Until is the metric until operator's semantics table.
type Until struct {
	Phi, Psi Node
	Interval Interval
}

func (n Until) node() {}

func (n Until) Walk() []Node {
	out := []Node{n}
	out = append(out, n.Phi.Walk()...)
	out = append(out, n.Psi.Walk()...)

	return out
}

func (n Until) Substitute(repl map[string]path.Atom) Node {
	return Until{Phi: n.Phi.Substitute(repl), Psi: n.Psi.Substitute(repl), Interval: n.Interval}
}

// WeakUntil is Until(Phi, Psi, [0, inf)) ⊔ Always(Phi).
type WeakUntil struct {
	Phi, Psi Node
}

func (n WeakUntil) node() {}

func (n WeakUntil) Walk() []Node {
	out := []Node{n}
	out = append(out, n.Phi.Walk()...)
	out = append(out, n.Psi.Walk()...)

	return out
}

func (n WeakUntil) Substitute(repl map[string]path.Atom) Node {
	return WeakUntil{Phi: n.Phi.Substitute(repl), Psi: n.Psi.Substitute(repl)}
}

// TimedUntil is Until with an explicit [lo, hi] window given directly
// (rather than via an Interval), kept as its own AST node alongside the
// general Until node. Its evaluation semantics equal
// Until{Interval: Bounded(lo, hi)}.
type TimedUntil struct {
	Phi, Psi Node
	Lo, Hi   float64
}

func (n TimedUntil) node() {}

func (n TimedUntil) Walk() []Node {
	out := []Node{n}
	out = append(out, n.Phi.Walk()...)
	out = append(out, n.Psi.Walk()...)

	return out
}

func (n TimedUntil) Substitute(repl map[string]path.Atom) Node {
	return TimedUntil{Phi: n.Phi.Substitute(repl), Psi: n.Psi.Substitute(repl), Lo: n.Lo, Hi: n.Hi}
}

// Cmp is a binary comparison (< or =, within tolerance) between two
// operands (atoms or constants).
type Cmp struct {
	Op   CmpOp
	X, Y Operand
}

func (n Cmp) node() {}

func (n Cmp) Walk() []Node { return []Node{n} }

func (n Cmp) Substitute(repl map[string]path.Atom) Node {
	return Cmp{Op: n.Op, X: n.X.substitute(repl), Y: n.Y.substitute(repl)}
}

// Shift evaluates Phi k discretisation steps (k*dt) from the current time;
// k may be negative.
type Shift struct {
	Phi Node
	K   int
}

func (n Shift) node() {}

func (n Shift) Walk() []Node {
	return append([]Node{n}, n.Phi.Walk()...)
}

func (n Shift) Substitute(repl map[string]path.Atom) Node {
	return Shift{Phi: n.Phi.Substitute(repl), K: n.K}
}
