package domain

import "fmt"

// setDomain is the Domain variant backed by an explicit finite set of
// values. A value quantises to itself if present, else is out-of-domain.
type setDomain struct {
	values map[string]any
	order  []string // insertion order, for deterministic Len/iteration
}

// Values defines a domain from the exact set of possible values. Values are
// compared by their fmt.Sprintf("%v") representation, which is stable for
// the value universe this package expects callers to use: bool, signed
// integers, float64, string, and caller enum handles whose String()/fmt
// form is their stable name.
func Values(vs ...any) Domain {
	d := &setDomain{values: make(map[string]any, len(vs))}
	for _, v := range vs {
		k := fmt.Sprintf("%v", v)
		if _, exists := d.values[k]; !exists {
			d.order = append(d.order, k)
		}
		d.values[k] = v
	}

	return d
}

func (d *setDomain) ValueOf(v any) (any, bool) {
	k := fmt.Sprintf("%v", v)
	got, ok := d.values[k]

	return got, ok
}

func (d *setDomain) Len() (int, error) {
	return len(d.order), nil
}
