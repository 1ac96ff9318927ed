// Package path implements Path, the hierarchical identifier used throughout
// csimtl to address an observable quantity, and Atom, the leaf of
// observability built on top of it.
//
// A Path is a finite, non-empty ordered sequence of non-empty name segments.
// Two paths are equal iff their segment sequences are equal; Display joins
// segments with "::" for logging and error messages, while Segments exposes
// the tuple for callers that need structural access (e.g. the coverage
// registry's canonical ordering).
//
// An Atom pairs a Path with an optional domain.Domain describing how its
// values are quantised for coverage purposes. Atoms are value-typed and
// compare/hash by path alone: two atoms that differ only in their declared
// domain are considered equal, but each keeps its own domain for the
// component that constructed it (spec: "atoms ... keep distinct
// provenance").
package path
