// Package domain_test verifies the value-quantisation contracts of each
// Domain variant.
package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csimtl/csimtl/domain"
)

func TestIdentity_ValueOfIsTotalAndLenIsUnbounded(t *testing.T) {
	d := domain.Identity()

	bucket, ok := d.ValueOf(42)
	assert.True(t, ok)
	assert.Equal(t, 42, bucket)

	bucket, ok = d.ValueOf("anything")
	assert.True(t, ok)
	assert.Equal(t, "anything", bucket)

	_, err := d.Len()
	assert.ErrorIs(t, err, domain.ErrUnboundedLength)
}

func TestValues_MembershipAndLen(t *testing.T) {
	d := domain.Values(1, 2, 3)

	bucket, ok := d.ValueOf(2)
	assert.True(t, ok)
	assert.Equal(t, 2, bucket)

	_, ok = d.ValueOf(4)
	assert.False(t, ok)

	n, err := d.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestValues_DuplicatesCollapse(t *testing.T) {
	d := domain.Values("x", "y", "x")
	n, err := d.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRange_RejectsBadShape(t *testing.T) {
	_, err := domain.Range(10, 0, 1)
	assert.ErrorIs(t, err, domain.ErrReversedInterval)

	_, err = domain.Range(0, 10, 0)
	assert.ErrorIs(t, err, domain.ErrNonPositiveStep)

	_, err = domain.Range(0, 10, -1)
	assert.ErrorIs(t, err, domain.ErrNonPositiveStep)
}

func TestRange_BoundaryBehaviours(t *testing.T) {
	// boundary behaviours:
	//   - Range(lo, lo, step) has length 0 and accepts no value.
	//   - At v=lo, value_of(v)=lo; at v=hi, value_of(v)=None unless saturating.
	d, err := domain.Range(5, 5, 1)
	require.NoError(t, err)
	n, err := d.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	_, ok := d.ValueOf(5)
	assert.False(t, ok)

	d, err = domain.Range(0, 10, 2)
	require.NoError(t, err)
	bucket, ok := d.ValueOf(0)
	assert.True(t, ok)
	assert.Equal(t, 0.0, bucket)
	_, ok = d.ValueOf(10)
	assert.False(t, ok)
}

func TestRange_FloorBucketing(t *testing.T) {
	d, err := domain.Range(0, 10, 3)
	require.NoError(t, err)

	bucket, ok := d.ValueOf(7.5)
	require.True(t, ok)
	assert.Equal(t, 6.0, bucket)
}

func TestRange_Saturation(t *testing.T) {
	d, err := domain.Range(0, 10, 3, domain.WithUpperSaturate(), domain.WithLowerSaturate())
	require.NoError(t, err)

	bucket, ok := d.ValueOf(100)
	require.True(t, ok)
	assert.Equal(t, 10.0, bucket)

	bucket, ok = d.ValueOf(-5)
	require.True(t, ok)
	assert.Equal(t, 0.0, bucket)

	n, err := d.Len()
	require.NoError(t, err)
	assert.Equal(t, 5, n) // ceil(10/3)=4, +1 for upper-saturating bucket
}

func TestThresholdRange_MatchesRangeWithOptions(t *testing.T) {
	a, err := domain.ThresholdRange(0, 10, 5, true, false)
	require.NoError(t, err)
	b, err := domain.Range(0, 10, 5, domain.WithUpperSaturate())
	require.NoError(t, err)

	bucket, ok := a.ValueOf(10)
	require.True(t, ok)
	other, ok := b.ValueOf(10)
	require.True(t, ok)
	assert.Equal(t, other, bucket)
}

func TestLinSpace_PartitionsEquallyAndRejectsBadShape(t *testing.T) {
	_, err := domain.LinSpace(10, 0, 2)
	assert.ErrorIs(t, err, domain.ErrReversedInterval)

	_, err = domain.LinSpace(0, 10, 0)
	assert.ErrorIs(t, err, domain.ErrNonPositiveCount)

	d, err := domain.LinSpace(0, 10, 5)
	require.NoError(t, err)
	n, err := d.Len()
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	bucket, ok := d.ValueOf(4.5)
	require.True(t, ok)
	assert.Equal(t, 4.0, bucket)

	_, ok = d.ValueOf(10)
	assert.False(t, ok)
}

func TestFilter_FallsBackThenRejects(t *testing.T) {
	inner := domain.Values(1, 2, 3)
	d := domain.Filter(inner, func(v any) bool {
		n, ok := v.(int)

		return ok && n < 0
	}, "negative")

	bucket, ok := d.ValueOf(2)
	require.True(t, ok)
	assert.Equal(t, 2, bucket)

	bucket, ok = d.ValueOf(-7)
	require.True(t, ok)
	assert.Equal(t, "negative", bucket)

	_, ok = d.ValueOf(99)
	assert.False(t, ok)
}
