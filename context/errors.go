package context

import "errors"

// ErrEmptyName indicates Sub or Atom was called with an empty name segment.
var ErrEmptyName = errors.New("context: name must not be empty")
