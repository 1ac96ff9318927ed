package mtl

import "github.com/csimtl/csimtl/path"

// Operand is one side of an MTL comparison (Cmp): either an atom (a
// reference to a signal) or a constant.
type Operand struct {
	atom     path.Atom
	isAtom   bool
	constant float64
}

// AtomOperand wraps an atom as a comparison operand.
func AtomOperand(a path.Atom) Operand {
	return Operand{atom: a, isAtom: true}
}

// ConstOperand wraps a numeric constant as a comparison operand.
func ConstOperand(c float64) Operand {
	return Operand{constant: c}
}

// IsAtom reports whether the operand is a signal reference.
func (o Operand) IsAtom() bool {
	return o.isAtom
}

// Atom returns the operand's atom; valid only when IsAtom is true.
func (o Operand) Atom() path.Atom {
	return o.atom
}

// Const returns the operand's constant value; valid only when IsAtom is
// false.
func (o Operand) Const() float64 {
	return o.constant
}

// substitute rebinds the operand's atom (if any) through repl, keyed by the
// atom's path hash; non-atom operands are returned unchanged.
func (o Operand) substitute(repl map[string]path.Atom) Operand {
	if !o.isAtom {
		return o
	}
	if replacement, ok := repl[o.atom.Path().Hash()]; ok {
		return AtomOperand(replacement)
	}

	return o
}
