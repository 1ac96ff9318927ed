package coverage

import "errors"

var (
	// ErrDuplicateAtom indicates New was given two entries for the same
	// atom path.
	ErrDuplicateAtom = errors.New("coverage: duplicate atom in registry domain")

	// ErrDomainMismatch indicates Merge was called on registries whose
	// atom sets (or declared domains) differ.
	ErrDomainMismatch = errors.New("coverage: registries have different domains")

	// ErrUnknownAtom indicates Restrict or Project referenced an atom the
	// registry does not track.
	ErrUnknownAtom = errors.New("coverage: unknown atom")
)
