// Package path_test pins the identity and construction contracts of Path
// and Atom.
package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csimtl/csimtl/domain"
	"github.com/csimtl/csimtl/path"
)

func TestNew_RejectsEmptyPathAndSegments(t *testing.T) {
	_, err := path.New()
	assert.ErrorIs(t, err, path.ErrEmptyPath)

	_, err = path.New("a", "", "b")
	assert.ErrorIs(t, err, path.ErrEmptySegment)
}

func TestPath_DisplayAndEquality(t *testing.T) {
	p := path.MustNew("welder", "active")
	assert.Equal(t, "welder::active", p.Display())
	assert.Equal(t, "welder::active", p.String())

	q := path.MustNew("welder", "active")
	assert.True(t, p.Equal(q))

	r := path.MustNew("welder", "temperature")
	assert.False(t, p.Equal(r))
}

func TestPath_Extend(t *testing.T) {
	base := path.MustNew("robot")
	child, err := base.Extend("arm")
	require.NoError(t, err)
	assert.Equal(t, "robot::arm", child.Display())

	_, err = base.Extend("")
	assert.ErrorIs(t, err, path.ErrEmptySegment)
}

func TestPath_Less(t *testing.T) {
	a := path.MustNew("a", "b")
	b := path.MustNew("a", "c")
	c := path.MustNew("a")

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, c.Less(a)) // shorter prefix sorts first
}

func TestAtom_EqualityIgnoresDomainButKeepsProvenance(t *testing.T) {
	p := path.MustNew("bench", "velocity")
	d1 := domain.Values(1, 2, 3)
	d2 := domain.Identity()

	a1 := path.NewAtom(p, d1)
	a2 := path.NewAtom(p, d2)

	assert.True(t, a1.Equal(a2))

	gotD1, ok := a1.Domain()
	require.True(t, ok)
	assert.Equal(t, d1, gotD1)

	gotD2, ok := a2.Domain()
	require.True(t, ok)
	assert.Equal(t, d2, gotD2)
}

func TestAtom_WithoutDomain(t *testing.T) {
	a := path.NewAtom(path.MustNew("x"))
	_, ok := a.Domain()
	assert.False(t, ok)
}
