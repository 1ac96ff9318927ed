package evalmtl

import "errors"

// ErrNonPositiveDt indicates Options.Dt was <= 0, a constructor-time shape
// error rather than a reference error absorbed into verdict space.
var ErrNonPositiveDt = errors.New("evalmtl: dt must be positive")
