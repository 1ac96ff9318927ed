package path

import "github.com/csimtl/csimtl/domain"

// Atom is the leaf of observability: a Path together with an optional
// domain.Domain describing how its values are quantised for coverage.
//
// Atoms compare and hash by path alone (HasDomain/Domain are provenance,
// not identity): two atoms built from the same path but different domains
// are Equal, keeping distinct domain provenance without affecting identity.
type Atom struct {
	path      Path
	dom       domain.Domain
	hasDomain bool
}

// NewAtom builds an Atom from a path and an optional domain. Only the first
// variadic domain argument is used; this mirrors optional-parameter idioms
// used elsewhere in the module (e.g. domain.Range's trailing RangeOptions).
func NewAtom(p Path, d ...domain.Domain) Atom {
	a := Atom{path: p}
	if len(d) > 0 {
		a.dom = d[0]
		a.hasDomain = true
	}

	return a
}

// Path returns the atom's path.
func (a Atom) Path() Path {
	return a.path
}

// Domain returns the atom's declared domain, if any.
func (a Atom) Domain() (domain.Domain, bool) {
	return a.dom, a.hasDomain
}

// WithDomain returns a copy of a carrying the given domain; used by context
// aliases and coverage registration to attach a domain to an atom that was
// declared without one.
func (a Atom) WithDomain(d domain.Domain) Atom {
	a.dom = d
	a.hasDomain = true

	return a
}

// Equal reports whether two atoms share the same path, ignoring domain.
func (a Atom) Equal(other Atom) bool {
	return a.path.Equal(other.path)
}

// Less orders atoms by path, for deterministic iteration (coverage registry
// canonical ordering, monitor atom listings).
func (a Atom) Less(other Atom) bool {
	return a.path.Less(other.path)
}
