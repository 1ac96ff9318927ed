// Package domain implements the value-quantisation policies used by the
// coverage registry (and, incidentally, by nothing else — domains never
// participate in MTL evaluation, only in coverage accounting).
//
// A Domain maps raw observed values onto a finite (or identity) bucket set.
// Five variants are provided:
//
//   - Identity  — the value is its own bucket; Len is undefined (an error).
//   - Set       — an explicit finite set of values; anything else is
//     out-of-domain.
//   - Range     — a half-open interval [lo, hi) partitioned into fixed-width
//     buckets, with optional saturation at either end.
//   - Space     — [lo, hi) partitioned into a fixed integer count of
//     equal-width buckets.
//   - Filter    — wraps an inner domain, falling back to a caller-supplied
//     value when a predicate accepts an otherwise out-of-domain value.
//
// Domain is immutable once constructed; all constructors validate their
// arguments and return an error for malformed shapes (non-positive step or
// count, a reversed [lo, hi) interval) rather than panicking.
package domain
