// Package connective implements the truth-value algebras evalmtl evaluates
// MTL formulas under: the classical Boolean lattice, and the Zadeh and
// Gödel fuzzy lattices over [0, 1].
//
// A Connective is a small, immutable value carrying the two lattice
// extremes and the conjunction/disjunction/negation functions; Implies and
// the const-true threshold are derived from those. There is no interface
// here (unlike domain.Domain or mtl.Node) because every recognised
// connective has exactly the same shape — a closed, fixed set of function
// fields, resolved once via Select and passed by value thereafter.
package connective
