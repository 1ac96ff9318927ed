// Package monitor provides the façade over sets of MTL formulas: atom/
// predicate extraction and bulk evaluation against a trace, plus named
// safety-condition catalogue types (Hazard, UnsafeControlAction) drawn from
// STPA (systems-theoretic process analysis) vocabulary.
package monitor
