package domain

import "errors"

// Sentinel errors for domain construction and domain operations.
var (
	// ErrNonPositiveStep indicates Range was given a step <= 0.
	ErrNonPositiveStep = errors.New("domain: step must be positive")

	// ErrNonPositiveCount indicates LinSpace was given a count <= 0.
	ErrNonPositiveCount = errors.New("domain: count must be positive")

	// ErrReversedInterval indicates hi < lo for Range or LinSpace.
	ErrReversedInterval = errors.New("domain: hi must be >= lo")

	// ErrUnboundedLength is returned by Identity.Len(): an identity domain
	// has no finite bucket count, since every distinct value is its own
	// bucket.
	ErrUnboundedLength = errors.New("domain: identity domain has unbounded length")

	// ErrUndescribableDomain is returned by Describe for a domain that
	// cannot be reduced to a serialisable descriptor (Filter wraps an
	// arbitrary predicate closure).
	ErrUndescribableDomain = errors.New("domain: domain cannot be described for serialisation")

	// ErrUnknownDescriptorKind is returned by FromDescriptor for a Kind it
	// does not recognise.
	ErrUnknownDescriptorKind = errors.New("domain: unknown descriptor kind")
)
