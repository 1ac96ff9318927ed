package domain

import "math"

// rangeDomain is the Domain variant partitioning the half-open interval
// [lo, hi) into fixed-width buckets of size step. With lowerSaturate/
// upperSaturate set, values outside [lo, hi) are folded into the nearest
// extreme bucket instead of being out-of-domain.
type rangeDomain struct {
	lo, hi, step  float64
	lowerSaturate bool
	upperSaturate bool
}

// RangeOption configures a Range domain at construction time.
type RangeOption func(*rangeDomain)

// WithUpperSaturate extends the top bucket to absorb every v >= hi.
func WithUpperSaturate() RangeOption {
	return func(d *rangeDomain) { d.upperSaturate = true }
}

// WithLowerSaturate extends the bottom bucket to absorb every v < lo.
func WithLowerSaturate() RangeOption {
	return func(d *rangeDomain) { d.lowerSaturate = true }
}

// Range defines a domain partitioned into buckets of size step across the
// half-open interval [lo, hi).
//
// Errors:
//   - ErrReversedInterval if hi < lo.
//   - ErrNonPositiveStep if step <= 0.
func Range(lo, hi, step float64, opts ...RangeOption) (Domain, error) {
	if hi < lo {
		return nil, ErrReversedInterval
	}
	if step <= 0 {
		return nil, ErrNonPositiveStep
	}
	d := &rangeDomain{lo: lo, hi: hi, step: step}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// ThresholdRange is Range with both saturation flags resolved from plain
// booleans, for callers that carry them as simple config flags rather than
// functional options.
func ThresholdRange(lo, hi, step float64, upper, lower bool) (Domain, error) {
	var opts []RangeOption
	if upper {
		opts = append(opts, WithUpperSaturate())
	}
	if lower {
		opts = append(opts, WithLowerSaturate())
	}

	return Range(lo, hi, step, opts...)
}

func (d *rangeDomain) ValueOf(v any) (any, bool) {
	n, ok := asFloat64(v)
	if !ok {
		return nil, false
	}
	switch {
	case d.lowerSaturate && n < d.lo:
		return d.lo, true
	case d.upperSaturate && n >= d.hi:
		return d.hi, true
	case n >= d.lo && n < d.hi:
		bucket := math.Floor((n-d.lo)/d.step)*d.step + d.lo

		return bucket, true
	default:
		return nil, false
	}
}

func (d *rangeDomain) Len() (int, error) {
	if d.hi < d.lo {
		return 0, nil
	}
	n := int(math.Ceil((d.hi - d.lo) / d.step))
	if d.upperSaturate {
		n++
	}

	return n, nil
}
