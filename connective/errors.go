package connective

import "errors"

// ErrUnknownConnective is returned by Select for any tag outside
// {"default", "zadeh", "godel"}.
var ErrUnknownConnective = errors.New("connective: unknown selector tag")
