// Package evalmtl implements the quantitative MTL evaluator: a pure
// function from (formula, projected signals, dt, time, connective) to a
// verdict in the connective's truth-value type, or a piecewise-constant
// verdict signal when the caller asks for the full signal ("time = *").
//
// Eval never mutates its inputs and performs no I/O; it is deterministic
// given its inputs. Bounded operators (Always, Eventually, Until,
// TimedUntil) are evaluated by sampling their window at dt-spaced instants;
// unbounded operators are sampled out to the last available breakpoint of
// their participating atoms, beyond which the carried-forward value is
// constant and the infimum/supremum cannot change further.
package evalmtl
