package coverage

import (
	"sort"

	"github.com/ugorji/go/codec"

	"github.com/csimtl/csimtl/domain"
	"github.com/csimtl/csimtl/path"
)

// wireDomainEntry is one atom's declared domain in the self-describing
// binary format .
type wireDomainEntry struct {
	Path          []string             `codec:"path"`
	Kind          domain.DescriptorKind `codec:"kind"`
	Values        []any                 `codec:"values,omitempty"`
	Lo            float64               `codec:"lo"`
	Hi            float64               `codec:"hi"`
	Step          float64               `codec:"step"`
	Count         int                   `codec:"count"`
	LowerSaturate bool                  `codec:"lower_saturate,omitempty"`
	UpperSaturate bool                  `codec:"upper_saturate,omitempty"`
}

type wireDefaultEntry struct {
	Path  []string `codec:"path"`
	Value any      `codec:"value"`
}

// wireComboValue must never tag Value with omitempty: a bucket value that is
// the zero value of its type (0, false, "", a Range domain's 0.0 bucket) is
// a legitimate observed value, not an absence. omitempty would drop it from
// the wire format and Decode would reconstruct it as nil instead of the
// value actually observed; None is the only legitimate "no value here"
// marker, carried explicitly rather than inferred from a missing field.
type wireComboValue struct {
	Path  []string `codec:"path"`
	None  bool     `codec:"none"`
	Value any      `codec:"value"`
}

type wireRegistry struct {
	Domain       []wireDomainEntry    `codec:"domain"`
	Default      []wireDefaultEntry   `codec:"default"`
	Combinations [][]wireComboValue   `codec:"combinations"`
}

var cborHandle codec.CborHandle

// Encode serialises r into a self-describing binary format: domain
// descriptors, default values, and observed combinations, each in stable
// path-sorted canonical order so that byte-identical output is produced for
// semantically identical registries.
//
// Errors:
//   - domain.ErrUndescribableDomain if any tracked atom uses a Filter
//     domain, which cannot be reduced to a tagged-union descriptor.
func (r *Registry) Encode() ([]byte, error) {
	w := wireRegistry{
		Domain:       make([]wireDomainEntry, len(r.order)),
		Combinations: make([][]wireComboValue, 0, len(r.combos)),
	}
	for i, key := range r.order {
		desc, err := domain.Describe(r.domains[key])
		if err != nil {
			return nil, err
		}
		w.Domain[i] = wireDomainEntry{
			Path:          r.paths[key].Segments(),
			Kind:          desc.Kind,
			Values:        desc.Values,
			Lo:            desc.Lo,
			Hi:            desc.Hi,
			Step:          desc.Step,
			Count:         desc.Count,
			LowerSaturate: desc.LowerSaturate,
			UpperSaturate: desc.UpperSaturate,
		}
		if def, ok := r.defaults[key]; ok {
			w.Default = append(w.Default, wireDefaultEntry{Path: r.paths[key].Segments(), Value: def})
		}
	}

	comboKeys := make([]string, 0, len(r.combos))
	for k := range r.combos {
		comboKeys = append(comboKeys, k)
	}
	sort.Strings(comboKeys)

	for _, ck := range comboKeys {
		c := r.combos[ck]
		entries := make([]wireComboValue, len(r.order))
		for i, key := range r.order {
			v, ok := c[key]
			if !ok {
				entries[i] = wireComboValue{Path: r.paths[key].Segments(), None: true}

				continue
			}
			if _, isNone := v.(none); isNone {
				entries[i] = wireComboValue{Path: r.paths[key].Segments(), None: true}

				continue
			}
			entries[i] = wireComboValue{Path: r.paths[key].Segments(), Value: v}
		}
		w.Combinations = append(w.Combinations, entries)
	}

	var buf []byte
	enc := codec.NewEncoderBytes(&buf, &cborHandle)
	if err := enc.Encode(w); err != nil {
		return nil, err
	}

	return buf, nil
}

// Decode reconstructs a Registry from its Encode output.
func Decode(b []byte) (*Registry, error) {
	var w wireRegistry
	dec := codec.NewDecoderBytes(b, &cborHandle)
	if err := dec.Decode(&w); err != nil {
		return nil, err
	}

	entries := make([]DomainEntry, len(w.Domain))
	defaultsByPath := make(map[string]any, len(w.Default))
	for _, d := range w.Default {
		p, err := path.New(d.Path...)
		if err != nil {
			return nil, err
		}
		defaultsByPath[p.Hash()] = d.Value
	}
	for i, wd := range w.Domain {
		p, err := path.New(wd.Path...)
		if err != nil {
			return nil, err
		}
		dom, err := domain.FromDescriptor(domain.Descriptor{
			Kind:          wd.Kind,
			Values:        wd.Values,
			Lo:            wd.Lo,
			Hi:            wd.Hi,
			Step:          wd.Step,
			Count:         wd.Count,
			LowerSaturate: wd.LowerSaturate,
			UpperSaturate: wd.UpperSaturate,
		})
		if err != nil {
			return nil, err
		}
		def, hasDefault := defaultsByPath[p.Hash()]
		entries[i] = DomainEntry{Path: p, Domain: dom, Default: def, HasDefault: hasDefault}
	}

	r, err := New(entries...)
	if err != nil {
		return nil, err
	}

	for _, wireCombo := range w.Combinations {
		c := make(combination, len(wireCombo))
		for _, entry := range wireCombo {
			p, err := path.New(entry.Path...)
			if err != nil {
				return nil, err
			}
			key := p.Hash()
			if entry.None {
				c[key] = none{}

				continue
			}
			c[key] = entry.Value
		}
		r.insert(c)
	}

	return r, nil
}
