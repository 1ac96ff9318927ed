// Package mtl implements the metric temporal logic formula AST: a closed
// sum type over thirteen node kinds, with structural Walk (pre-order
// traversal including the node itself) and Substitute (atom rebinding, used
// by package context's Alias machinery).
//
// Node is a closed interface: every implementation lives in this package
// (AtomicPred, Not, And, Or, Implies, Next, Always, Eventually, Until,
// WeakUntil, TimedUntil, Cmp, Shift) rather than an open hierarchy a caller
// could extend by embedding the interface.
//
// mtl carries no evaluation logic itself — see package evalmtl for the
// quantitative semantics — so that the AST can be constructed, walked and
// substituted independently of any particular connective or trace.
package mtl
