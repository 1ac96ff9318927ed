package coverage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csimtl/csimtl/coverage"
	"github.com/csimtl/csimtl/domain"
	"github.com/csimtl/csimtl/path"
	"github.com/csimtl/csimtl/trace"
)

func mustPath(t *testing.T, segs ...string) path.Path {
	t.Helper()
	p, err := path.New(segs...)
	require.NoError(t, err)

	return p
}

func newRegistry(t *testing.T) (*coverage.Registry, path.Path, path.Path) {
	t.Helper()
	a := mustPath(t, "a")
	b := mustPath(t, "b")
	r, err := coverage.New(
		coverage.DomainEntry{Path: a, Domain: domain.Values(1, 2, 3)},
		coverage.DomainEntry{Path: b, Domain: domain.Values("x", "y")},
	)
	require.NoError(t, err)

	return r, a, b
}

// TestCoverageAccumulation is scenario 5.
func TestCoverageAccumulation(t *testing.T) {
	r, a, b := newRegistry(t)

	r.Record(map[string]any{a.Hash(): 1, b.Hash(): "x"})
	r.Record(map[string]any{a.Hash(): 2, b.Hash(): "y"})

	assert.Equal(t, 2, r.Covered())
	total, err := r.Total()
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	cov, err := r.Coverage()
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, cov, 1e-12)
}

// TestProjectionSemantics is scenario 6.
func TestProjectionSemantics(t *testing.T) {
	r, a, b := newRegistry(t)
	r.Record(map[string]any{a.Hash(): 1, b.Hash(): "x"})
	r.Record(map[string]any{a.Hash(): 2, b.Hash(): "y"})

	projected, err := r.Project([]string{a.Hash()})
	require.NoError(t, err)
	assert.Equal(t, 2, projected.Covered())
	total, err := projected.Total()
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestProjectionInvariance(t *testing.T) {
	r, a, _ := newRegistry(t)
	r.Record(map[string]any{a.Hash(): 1})

	projected, err := r.Project([]string{a.Hash()})
	require.NoError(t, err)

	totalFull, err := r.Total()
	require.NoError(t, err)
	totalProjected, err := projected.Total()
	require.NoError(t, err)

	assert.LessOrEqual(t, projected.Covered(), r.Covered())
	assert.LessOrEqual(t, totalProjected, totalFull)
}

func TestRecordFillsMissingAtomsWithNone(t *testing.T) {
	r, a, _ := newRegistry(t)
	r.Record(map[string]any{a.Hash(): 1})
	assert.Equal(t, 0, r.Covered(), "b is missing, so the combination is incomplete")
}

func TestRegisterFromTrace(t *testing.T) {
	r, a, b := newRegistry(t)
	tr := trace.New()
	tr.Set(a, 0, 1)
	tr.Set(b, 0, "x")
	tr.Set(a, 1, 2)
	tr.Set(b, 1, "y")

	r.Register(tr)
	assert.Equal(t, 2, r.Covered())
}

func TestCoverageMonotonicityUnderRegisterAndMerge(t *testing.T) {
	r, a, b := newRegistry(t)
	before := r.Covered()
	r.Record(map[string]any{a.Hash(): 1, b.Hash(): "x"})
	assert.GreaterOrEqual(t, r.Covered(), before)

	other, _, _ := newRegistry(t)
	other.Record(map[string]any{a.Hash(): 2, b.Hash(): "y"})

	merged, err := r.Merge(other)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, merged.Covered(), r.Covered())
	assert.GreaterOrEqual(t, merged.Covered(), other.Covered())
}

func TestMergeRejectsDomainMismatch(t *testing.T) {
	r, _, _ := newRegistry(t)
	c := mustPath(t, "c")
	other, err := coverage.New(coverage.DomainEntry{Path: c, Domain: domain.Values(1, 2)})
	require.NoError(t, err)

	_, err = r.Merge(other)
	require.ErrorIs(t, err, coverage.ErrDomainMismatch)
}

func TestRestrictRebucketsObservedValues(t *testing.T) {
	a := mustPath(t, "a")
	wide, err := domain.Range(0, 100, 1)
	require.NoError(t, err)
	r, err := coverage.New(coverage.DomainEntry{Path: a, Domain: wide})
	require.NoError(t, err)
	r.Record(map[string]any{a.Hash(): 42.0})

	narrow, err := domain.Range(0, 50, 1)
	require.NoError(t, err)
	restricted, err := r.Restrict(map[string]domain.Domain{a.Hash(): narrow})
	require.NoError(t, err)

	assert.Equal(t, 1, restricted.Covered(), "42 is still in-domain under the narrower range")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r, a, b := newRegistry(t)
	r.Record(map[string]any{a.Hash(): 1, b.Hash(): "x"})
	r.Record(map[string]any{a.Hash(): 2, b.Hash(): "y"})

	encoded, err := r.Encode()
	require.NoError(t, err)

	decoded, err := coverage.Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, r.Covered(), decoded.Covered())
	totalOrig, err := r.Total()
	require.NoError(t, err)
	totalDecoded, err := decoded.Total()
	require.NoError(t, err)
	assert.Equal(t, totalOrig, totalDecoded)

	reencoded, err := decoded.Encode()
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded, "byte-identical output for semantically identical registries")
}
