package monitor

import (
	"fmt"

	"github.com/csimtl/csimtl/mtl"
)

// ExtractBooleanPredicates collects the atomic predicates and binary
// comparisons referenced by conditions (or, if empty, every one of the
// monitor's formulas):
//   - within each condition independently, an equality comparison Cmp(=, x,
//     y) is dropped if that same condition also contains Cmp(<, x, y) on
//     the same operands — a heuristic against overcounting a `<=`
//     decomposition.
//   - any atomic predicate that appears as an operand of a retained
//     comparison (across the whole result, not just its own condition) is
//     removed, since it is already represented via that comparison.
func (m Monitor) ExtractBooleanPredicates(conditions ...mtl.Node) []mtl.Node {
	source := conditions
	if len(source) == 0 {
		source = m.conditions
	}

	terms := make(map[string]mtl.AtomicPred)
	var allComparisons []mtl.Cmp

	for _, cond := range source {
		var local []mtl.Cmp
		for _, node := range cond.Walk() {
			switch v := node.(type) {
			case mtl.AtomicPred:
				terms[v.Atom.Path().Hash()] = v
			case mtl.Cmp:
				local = append(local, v)
			}
		}

		for _, p := range local {
			if p.Op != mtl.Eq {
				allComparisons = append(allComparisons, p)

				continue
			}
			dominated := false
			for _, c := range local {
				if c.Op == mtl.Lt && sameOperands(c, p) {
					dominated = true

					break
				}
			}
			if !dominated {
				allComparisons = append(allComparisons, p)
			}
		}
	}

	comparisons := make(map[string]mtl.Cmp)
	for _, c := range allComparisons {
		comparisons[comparisonKey(c)] = c
	}

	for _, c := range comparisons {
		if c.X.IsAtom() {
			delete(terms, c.X.Atom().Path().Hash())
		}
		if c.Y.IsAtom() {
			delete(terms, c.Y.Atom().Path().Hash())
		}
	}

	out := make([]mtl.Node, 0, len(terms)+len(comparisons))
	for _, t := range terms {
		out = append(out, t)
	}
	for _, c := range comparisons {
		out = append(out, c)
	}

	return out
}

// sameOperands reports whether a and b compare the same pair of operands,
// in the same order.
func sameOperands(a, b mtl.Cmp) bool {
	return operandEqual(a.X, b.X) && operandEqual(a.Y, b.Y)
}

func operandEqual(a, b mtl.Operand) bool {
	if a.IsAtom() != b.IsAtom() {
		return false
	}
	if a.IsAtom() {
		return a.Atom().Path().Hash() == b.Atom().Path().Hash()
	}

	return a.Const() == b.Const()
}

// comparisonKey renders a Cmp into a string key for deduplication.
func comparisonKey(c mtl.Cmp) string {
	return c.Op.String() + "(" + operandKey(c.X) + "," + operandKey(c.Y) + ")"
}

func operandKey(o mtl.Operand) string {
	if o.IsAtom() {
		return "atom:" + o.Atom().Path().Hash()
	}

	return fmt.Sprintf("const:%v", o.Const())
}
