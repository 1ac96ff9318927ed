package path

import "strings"

// Separator joins segments for Display and for the stable map key returned
// by Hash.
const Separator = "::"

// Path is an ordered, non-empty sequence of non-empty name segments.
//
// Path is a value type: the zero value is not a valid Path (it has no
// segments) and must not be used directly — always go through New or
// Extend. Equality and Hash are defined over the segment tuple.
type Path struct {
	segments []string
}

// New constructs a Path from the given segments.
//
// Errors:
//   - ErrEmptyPath if no segments are given.
//   - ErrEmptySegment if any segment is the empty string.
//
// Complexity: O(n) in len(segments).
func New(segments ...string) (Path, error) {
	if len(segments) == 0 {
		return Path{}, ErrEmptyPath
	}
	cp := make([]string, len(segments))
	for i, s := range segments {
		if s == "" {
			return Path{}, ErrEmptySegment
		}
		cp[i] = s
	}

	return Path{segments: cp}, nil
}

// MustNew is like New but panics on error; intended for package-level
// fixtures and tests, never for handling caller-supplied input.
func MustNew(segments ...string) Path {
	p, err := New(segments...)
	if err != nil {
		panic(err)
	}

	return p
}

// Extend returns a new Path with segment appended.
//
// Errors:
//   - ErrEmptySegment if segment is empty.
func (p Path) Extend(segment string) (Path, error) {
	if segment == "" {
		return Path{}, ErrEmptySegment
	}
	next := make([]string, len(p.segments)+1)
	copy(next, p.segments)
	next[len(p.segments)] = segment

	return Path{segments: next}, nil
}

// Segments returns a defensive copy of the path's segment tuple.
func (p Path) Segments() []string {
	cp := make([]string, len(p.segments))
	copy(cp, p.segments)

	return cp
}

// Len reports the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// Display joins the segments with Separator, e.g. "welder::active".
func (p Path) Display() string {
	return strings.Join(p.segments, Separator)
}

// String satisfies fmt.Stringer and delegates to Display.
func (p Path) String() string {
	return p.Display()
}

// Hash returns a stable string suitable as a map key; it is simply Display,
// since "::" cannot appear inside a single validated segment... unless a
// caller deliberately embeds it, in which case collisions are the caller's
// responsibility (segments are opaque strings, not further validated).
func (p Path) Hash() string {
	return p.Display()
}

// Equal reports whether two paths have identical segment sequences.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}

	return true
}

// Less provides a deterministic total order over paths (lexicographic over
// segments, shorter-is-less on common prefix), used wherever csimtl needs a
// stable iteration order (coverage registry canonicalisation, monitor atom
// listings).
func (p Path) Less(other Path) bool {
	n := len(p.segments)
	if len(other.segments) < n {
		n = len(other.segments)
	}
	for i := 0; i < n; i++ {
		if p.segments[i] != other.segments[i] {
			return p.segments[i] < other.segments[i]
		}
	}

	return len(p.segments) < len(other.segments)
}
