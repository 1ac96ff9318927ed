// Package coverage implements the situation-coverage registry: an
// accumulator over observed (atom, quantised-value) combinations, with
// project/restrict/merge derivations and a canonical binary encoding.
package coverage
