package mtl

import "github.com/csimtl/csimtl/path"

// NotOf negates phi.
func NotOf(phi Node) Node { return Not{Phi: phi} }

// AndOf conjoins phi and psi.
func AndOf(phi, psi Node) Node { return And{Phi: phi, Psi: psi} }

// OrOf disjoins phi and psi.
func OrOf(phi, psi Node) Node { return Or{Phi: phi, Psi: psi} }

// ImpliesOf builds phi => psi.
func ImpliesOf(phi, psi Node) Node { return Implies{Phi: phi, Psi: psi} }

// NextOf builds Next(phi).
func NextOf(phi Node) Node { return Next{Phi: phi} }

// AlwaysOf builds Always(phi) over the given window.
func AlwaysOf(phi Node, window Interval) Node { return Always{Phi: phi, Interval: window} }

// EventuallyOf builds Eventually(phi) over the given window.
func EventuallyOf(phi Node, window Interval) Node { return Eventually{Phi: phi, Interval: window} }

// UntilOf builds Until(phi, psi) over the given window.
func UntilOf(phi, psi Node, window Interval) Node {
	return Until{Phi: phi, Psi: psi, Interval: window}
}

// WeakUntilOf builds WeakUntil(phi, psi).
func WeakUntilOf(phi, psi Node) Node { return WeakUntil{Phi: phi, Psi: psi} }

// TimedUntilOf builds TimedUntil(phi, psi, [lo, hi]).
func TimedUntilOf(phi, psi Node, lo, hi float64) Node {
	return TimedUntil{Phi: phi, Psi: psi, Lo: lo, Hi: hi}
}

// LessThan builds Cmp(<, x, y).
func LessThan(x, y Operand) Node { return Cmp{Op: Lt, X: x, Y: y} }

// EqualWithin builds Cmp(=, x, y).
func EqualWithin(x, y Operand) Node { return Cmp{Op: Eq, X: x, Y: y} }

// ShiftBy builds Shift(phi, k).
func ShiftBy(phi Node, k int) Node { return Shift{Phi: phi, K: k} }

// Atoms walks n and returns every distinct atom it references, whether
// through an AtomicPred leaf or as an operand of a Cmp comparison. Order is
// the atoms' path-sorted order, for deterministic callers (coverage
// registration, monitor listings).
func Atoms(n Node) []path.Atom {
	seen := make(map[string]path.Atom)
	for _, sub := range n.Walk() {
		switch v := sub.(type) {
		case AtomicPred:
			seen[v.Atom.Path().Hash()] = v.Atom
		case Cmp:
			if v.X.IsAtom() {
				seen[v.X.Atom().Path().Hash()] = v.X.Atom()
			}
			if v.Y.IsAtom() {
				seen[v.Y.Atom().Path().Hash()] = v.Y.Atom()
			}
		}
	}

	out := make([]path.Atom, 0, len(seen))
	for _, a := range seen {
		out = append(out, a)
	}
	sortAtoms(out)

	return out
}

func sortAtoms(atoms []path.Atom) {
	for i := 1; i < len(atoms); i++ {
		for j := i; j > 0 && atoms[j].Less(atoms[j-1]); j-- {
			atoms[j], atoms[j-1] = atoms[j-1], atoms[j]
		}
	}
}
