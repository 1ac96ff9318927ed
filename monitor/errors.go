package monitor

import "errors"

// ErrNonPositiveDt indicates an evaluation was attempted with a non-positive
// Options.Dt; surfaced from evalmtl and re-exported so callers of the
// façade only need to import one error namespace.
var ErrNonPositiveDt = errors.New("monitor: dt must be positive")

// ErrFullTimeUnsupported indicates EvaluateOne or Evaluate was called with
// evalmtl.Full(): the façade's Result carries a single evalmtl.Verdict per
// condition, which has nowhere to hold the piecewise-constant signal a
// full-signal evaluation produces. Callers that need the signal should call
// evalmtl.Eval directly against trace.Trace.Project's output.
var ErrFullTimeUnsupported = errors.New("monitor: evalmtl.Full() is not supported through this façade")
