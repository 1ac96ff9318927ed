package monitor

import (
	"errors"
	"fmt"

	"github.com/csimtl/csimtl/connective"
	"github.com/csimtl/csimtl/evalmtl"
	"github.com/csimtl/csimtl/mtl"
	"github.com/csimtl/csimtl/path"
	"github.com/csimtl/csimtl/trace"
)

// Result pairs one evaluated condition with its verdict.
type Result struct {
	Condition mtl.Node
	Verdict   evalmtl.Verdict
}

// Evaluate projects tr to each condition's atoms and evaluates it. A
// condition whose atoms are not all present in tr reports
// evalmtl.Undecidable — this is never an error.
//
// Errors:
//   - ErrNonPositiveDt if opts.Dt <= 0.
//   - ErrFullTimeUnsupported if at is evalmtl.Full() (see EvaluateOne).
func (m Monitor) Evaluate(tr *trace.Trace, conn connective.Connective, opts evalmtl.Options, at evalmtl.Time) ([]Result, error) {
	out := make([]Result, len(m.conditions))
	for i, cond := range m.conditions {
		v, err := m.EvaluateOne(cond, tr, conn, opts, at)
		if err != nil {
			return nil, err
		}
		out[i] = Result{Condition: cond, Verdict: v}
	}

	return out, nil
}

// EvaluateOne evaluates a single condition against tr.
//
// Errors:
//   - ErrNonPositiveDt if opts.Dt <= 0.
//   - ErrFullTimeUnsupported if at is evalmtl.Full(): this façade returns one
//     evalmtl.Verdict per condition and has no field to carry the
//     piecewise-constant signal a full-signal evaluation produces instead.
func (m Monitor) EvaluateOne(n mtl.Node, tr *trace.Trace, conn connective.Connective, opts evalmtl.Options, at evalmtl.Time) (evalmtl.Verdict, error) {
	if at.IsFull() {
		return evalmtl.Verdict{}, ErrFullTimeUnsupported
	}

	atoms := mtl.Atoms(n)
	paths := make([]path.Path, len(atoms))
	for i, a := range atoms {
		paths[i] = a.Path()
	}
	signals := tr.Project(paths, conn)

	v, _, err := evalmtl.Eval(n, signals, at, conn, opts)
	if err != nil {
		if errors.Is(err, evalmtl.ErrNonPositiveDt) {
			return evalmtl.Verdict{}, fmt.Errorf("monitor: %w", ErrNonPositiveDt)
		}

		return evalmtl.Verdict{}, err
	}

	return v, nil
}
