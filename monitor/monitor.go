package monitor

import (
	"reflect"

	"github.com/csimtl/csimtl/mtl"
	"github.com/csimtl/csimtl/path"
)

// Monitor is an immutable set of MTL formulas evaluated together against a
// trace. Conditions are held in a slice rather than a map:
// mtl.Node's AtomicPred closes over a path.Atom, which embeds a []string
// and so is not a comparable type — Add/Union instead dedupe structurally
// via reflect.DeepEqual, the same approach trace.Signal.compact uses to
// drop consecutive-equal breakpoints.
type Monitor struct {
	conditions []mtl.Node
}

// New builds a Monitor over the given conditions, deduplicating
// structurally-equal formulas.
func New(conditions ...mtl.Node) Monitor {
	return Monitor{}.addAll(conditions)
}

// Add returns a fresh monitor containing the additional formula.
func (m Monitor) Add(n mtl.Node) Monitor {
	return m.addAll([]mtl.Node{n})
}

// Union returns a fresh monitor containing both operands' formulas.
func (m Monitor) Union(other Monitor) Monitor {
	return m.addAll(other.conditions)
}

func (m Monitor) addAll(extra []mtl.Node) Monitor {
	out := Monitor{conditions: append([]mtl.Node(nil), m.conditions...)}
	for _, n := range extra {
		if out.contains(n) {
			continue
		}
		out.conditions = append(out.conditions, n)
	}

	return out
}

func (m Monitor) contains(n mtl.Node) bool {
	for _, existing := range m.conditions {
		if reflect.DeepEqual(existing, n) {
			return true
		}
	}

	return false
}

// Conditions returns the monitor's formulas.
func (m Monitor) Conditions() []mtl.Node {
	return append([]mtl.Node(nil), m.conditions...)
}

// Atoms walks condition (or, if nil, every one of the monitor's formulas)
// and collects the distinct atoms referenced, path-sorted.
func (m Monitor) Atoms(condition mtl.Node) []path.Atom {
	if condition != nil {
		return mtl.Atoms(condition)
	}

	seen := make(map[string]path.Atom)
	for _, c := range m.conditions {
		for _, a := range mtl.Atoms(c) {
			seen[a.Path().Hash()] = a
		}
	}
	out := make([]path.Atom, 0, len(seen))
	for _, a := range seen {
		out = append(out, a)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Less(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}
