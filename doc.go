// Package csimtl (root) documents the module as a whole; it declares no
// exported symbols of its own.
//
// csimtl is a runtime safety-condition monitor and situation-coverage
// analyzer for time-indexed observation traces drawn from simulated
// cyber-physical scenarios. It is organized as nine small packages, leaves
// first:
//
//   - path       — hierarchical observable identifiers (Path) and typed
//     leaves (Atom).
//   - domain     — value-quantisation policies used by coverage.
//   - mtl        — the metric temporal logic formula AST.
//   - connective — truth-value algebras (classical, Zadeh, Gödel).
//   - trace      — piecewise-constant signals keyed by path, with merge,
//     projection and structured-input recording.
//   - evalmtl    — the quantitative MTL evaluator, parameterised by a
//     connective.
//   - context    — a construction-time façade for declaring nested atoms
//     and parametrised formula aliases.
//   - coverage   — the combination registry used to measure situation
//     coverage, with a canonical binary codec.
//   - monitor    — a set of formulas evaluated together against a trace,
//     plus a small catalogue of named safety-condition types.
//
// The module is single-threaded and purely functional at its evaluation
// boundary: formulas, atoms, domains and connectives are immutable once
// built, traces and registries are mutated only by their owning caller, and
// no package here launches a goroutine or owns a background process.
// Simulation drivers, the source-database importer, CLI front-ends and
// search heuristics are explicitly out of scope; they are external
// collaborators that call into this module, not part of it.
package csimtl
