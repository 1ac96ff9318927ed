package domain

// filterDomain wraps an inner domain, substituting fallback for values the
// inner domain rejects but predicate accepts. Anything predicate also
// rejects is out-of-domain.
type filterDomain struct {
	inner     Domain
	predicate func(v any) bool
	fallback  any
}

// Filter builds a domain that quantises through inner first, falling back
// to fallback when inner reports the value out-of-domain but predicate
// accepts it: inner's quantisation when defined, else fallback when
// predicate accepts, else out-of-domain.
func Filter(inner Domain, predicate func(v any) bool, fallback any) Domain {
	return &filterDomain{inner: inner, predicate: predicate, fallback: fallback}
}

func (d *filterDomain) ValueOf(v any) (any, bool) {
	if bucket, ok := d.inner.ValueOf(v); ok {
		return bucket, true
	}
	if d.predicate != nil && d.predicate(v) {
		return d.fallback, true
	}

	return nil, false
}

func (d *filterDomain) Len() (int, error) {
	return d.inner.Len()
}
