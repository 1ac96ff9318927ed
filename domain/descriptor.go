package domain

// DescriptorKind tags which Domain variant a Descriptor describes, for the
// tagged-union shape registry serialisation requires.
type DescriptorKind string

const (
	KindIdentity DescriptorKind = "identity"
	KindSet      DescriptorKind = "set"
	KindRange    DescriptorKind = "range"
	KindSpace    DescriptorKind = "space"
)

// Descriptor is a serialisable description of a Domain's construction
// parameters, sufficient to reconstruct an equivalent Domain via
// FromDescriptor. Only the fields relevant to Kind are populated.
type Descriptor struct {
	Kind DescriptorKind

	// KindSet
	Values []any

	// KindRange / KindSpace
	Lo, Hi, Step            float64
	Count                   int
	LowerSaturate           bool
	UpperSaturate           bool
}

// Describe reduces d to a serialisable Descriptor.
//
// Errors:
//   - ErrUndescribableDomain if d wraps a predicate closure (Filter) that
//     cannot be represented as a tagged-union descriptor.
func Describe(d Domain) (Descriptor, error) {
	switch v := d.(type) {
	case identityDomain:
		return Descriptor{Kind: KindIdentity}, nil
	case *setDomain:
		values := make([]any, len(v.order))
		for i, k := range v.order {
			values[i] = v.values[k]
		}

		return Descriptor{Kind: KindSet, Values: values}, nil
	case *rangeDomain:
		return Descriptor{
			Kind:          KindRange,
			Lo:            v.lo,
			Hi:            v.hi,
			Step:          v.step,
			LowerSaturate: v.lowerSaturate,
			UpperSaturate: v.upperSaturate,
		}, nil
	case *spaceDomain:
		return Descriptor{Kind: KindSpace, Lo: v.lo, Hi: v.hi, Count: v.count}, nil
	default:
		return Descriptor{}, ErrUndescribableDomain
	}
}

// FromDescriptor reconstructs a Domain from desc.
//
// Errors:
//   - ErrUnknownDescriptorKind for any Kind outside the recognised set.
//   - Any construction error the underlying constructor would return (e.g.
//     ErrNonPositiveStep for a malformed KindRange descriptor).
func FromDescriptor(desc Descriptor) (Domain, error) {
	switch desc.Kind {
	case KindIdentity:
		return Identity(), nil
	case KindSet:
		return Values(desc.Values...), nil
	case KindRange:
		var opts []RangeOption
		if desc.LowerSaturate {
			opts = append(opts, WithLowerSaturate())
		}
		if desc.UpperSaturate {
			opts = append(opts, WithUpperSaturate())
		}

		return Range(desc.Lo, desc.Hi, desc.Step, opts...)
	case KindSpace:
		return LinSpace(desc.Lo, desc.Hi, desc.Count)
	default:
		return nil, ErrUnknownDescriptorKind
	}
}
