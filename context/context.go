package context

import (
	"fmt"

	"github.com/csimtl/csimtl/domain"
	"github.com/csimtl/csimtl/mtl"
	"github.com/csimtl/csimtl/path"
)

// Context is a builder over path.Path construction: each Sub call descends
// one segment, and Atom closes the accumulated path into a path.Atom.
//
// The zero Context is the root (no segments yet); use Root for clarity at
// call sites.
type Context struct {
	segments []string
}

// Root returns the top-level context, with no path segments yet.
func Root() Context {
	return Context{}
}

// Sub descends into a named child context.
//
// Errors:
//   - ErrEmptyName if name is empty.
func (c Context) Sub(name string) (Context, error) {
	if name == "" {
		return Context{}, ErrEmptyName
	}
	next := make([]string, len(c.segments)+1)
	copy(next, c.segments)
	next[len(c.segments)] = name

	return Context{segments: next}, nil
}

// MustSub is like Sub but panics on error; for fixtures and tests.
func (c Context) MustSub(name string) Context {
	next, err := c.Sub(name)
	if err != nil {
		panic(err)
	}

	return next
}

// Atom closes the context's accumulated path with name as its final
// segment, producing a path.Atom. At most the first element of d is used as
// the atom's declared domain, matching path.NewAtom.
//
// Errors:
//   - ErrEmptyName if name is empty.
func (c Context) Atom(name string, d ...domain.Domain) (path.Atom, error) {
	if name == "" {
		return path.Atom{}, ErrEmptyName
	}
	full := append(append([]string(nil), c.segments...), name)
	p, err := path.New(full...)
	if err != nil {
		return path.Atom{}, fmt.Errorf("context: %w", err)
	}

	return path.NewAtom(p, d...), nil
}

// MustAtom is like Atom but panics on error; for fixtures and tests.
func (c Context) MustAtom(name string, d ...domain.Domain) path.Atom {
	a, err := c.Atom(name, d...)
	if err != nil {
		panic(err)
	}

	return a
}

// Path returns the context's accumulated path segments, or (zero, false) at
// the root (which has none).
func (c Context) Path() ([]string, bool) {
	if len(c.segments) == 0 {
		return nil, false
	}

	return append([]string(nil), c.segments...), true
}

// Alias rebinds every atom template references (via template.Walk) so that
// it resolves under this context instead of wherever it was declared: each
// atom a is replaced by a sibling atom whose path is this context's own path
// with a's full path appended after it, carrying a's domain unchanged. A
// template formula is built once, relative to whatever context it happened
// to be declared under, and Alias re-instantiates it under a different
// enclosing context without the caller having to name each atom's
// replacement individually.
func (c Context) Alias(template mtl.Node) (mtl.Node, error) {
	free := mtl.Atoms(template)
	repl := make(map[string]path.Atom, len(free))
	for _, a := range free {
		full := append(append([]string(nil), c.segments...), a.Path().Segments()...)
		p, err := path.New(full...)
		if err != nil {
			return nil, fmt.Errorf("context: %w", err)
		}

		rebound := path.NewAtom(p)
		if d, ok := a.Domain(); ok {
			rebound = rebound.WithDomain(d)
		}
		repl[a.Path().Hash()] = rebound
	}

	return template.Substitute(repl), nil
}
