package path

import "errors"

// Sentinel errors for path construction.
var (
	// ErrEmptyPath indicates a Path was constructed with zero segments.
	ErrEmptyPath = errors.New("path: no segments given")

	// ErrEmptySegment indicates one of the given segments was the empty string.
	ErrEmptySegment = errors.New("path: segment is empty")
)
