package coverage

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/csimtl/csimtl/domain"
	"github.com/csimtl/csimtl/path"
	"github.com/csimtl/csimtl/trace"
)

// none is the sentinel bucket value marking "out-of-domain" for an atom
// within an observed combination.
type none struct{}

// combination is one observed joint-bucketed state, keyed by path.Hash().
// An atom entirely absent from the map is equivalent to holding none.
type combination map[string]any

// DomainEntry declares one tracked atom: its path, its quantisation domain,
// and an optional default raw value substituted by Register when a
// breakpoint carries no value for this atom yet.
type DomainEntry struct {
	Path       path.Path
	Domain     domain.Domain
	Default    any
	HasDefault bool
}

// Registry accumulates observed combinations of (atom, quantised-value)
// pairs over a fixed, immutable-after-construction set of domains
// .
type Registry struct {
	order    []string // path hashes, canonically sorted
	paths    map[string]path.Path
	domains  map[string]domain.Domain
	defaults map[string]any // only holds entries with HasDefault
	combos   map[string]combination
}

// New builds an empty registry tracking exactly the given atoms.
//
// Errors:
//   - ErrDuplicateAtom if two entries share a path.
func New(entries ...DomainEntry) (*Registry, error) {
	r := &Registry{
		paths:    make(map[string]path.Path, len(entries)),
		domains:  make(map[string]domain.Domain, len(entries)),
		defaults: make(map[string]any),
		combos:   make(map[string]combination),
	}
	for _, e := range entries {
		key := e.Path.Hash()
		if _, exists := r.paths[key]; exists {
			return nil, ErrDuplicateAtom
		}
		r.paths[key] = e.Path
		r.domains[key] = e.Domain
		if e.HasDefault {
			r.defaults[key] = e.Default
		}
	}
	r.order = sortedKeys(r.paths)

	return r, nil
}

func sortedKeys(paths map[string]path.Path) []string {
	out := make([]string, 0, len(paths))
	for k := range paths {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && paths[out[j]].Less(paths[out[j-1]]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}

// atomPaths returns the registry's tracked atoms in canonical order.
func (r *Registry) atomPaths() []path.Path {
	out := make([]path.Path, len(r.order))
	for i, k := range r.order {
		out[i] = r.paths[k]
	}

	return out
}

// bucketOf quantises raw through the atom's declared domain, returning the
// none sentinel when the domain rejects it.
func (r *Registry) bucketOf(key string, raw any) any {
	bucket, ok := r.domains[key].ValueOf(raw)
	if !ok {
		return none{}
	}

	return bucket
}

// Register samples tr at its merged breakpoints (restricted to the
// registry's tracked atoms) and accumulates one combination per breakpoint,
// using each atom's declared default when a breakpoint lacks a value for it.
func (r *Registry) Register(tr *trace.Trace) {
	for _, step := range tr.IterMerged(r.atomPaths()) {
		combo := make(combination, len(r.order))
		for _, key := range r.order {
			if raw, ok := step.Values[key]; ok {
				combo[key] = r.bucketOf(key, raw)

				continue
			}
			if def, ok := r.defaults[key]; ok {
				combo[key] = r.bucketOf(key, def)

				continue
			}
			combo[key] = none{}
		}
		r.insert(combo)
	}
}

// Record directly adds a valuation (keyed by path.Hash()), filling atoms not
// present with none, and without applying any declared default.
func (r *Registry) Record(valuation map[string]any) {
	combo := make(combination, len(r.order))
	for _, key := range r.order {
		raw, ok := valuation[key]
		if !ok {
			combo[key] = none{}

			continue
		}
		combo[key] = r.bucketOf(key, raw)
	}
	r.insert(combo)
}

func (r *Registry) insert(c combination) {
	r.combos[combinationKey(r.order, c)] = c
}

// combinationKey renders c into a canonical string over order, so that
// structurally equal combinations collapse to the same map entry —
// duplicate observations are absorbed for free by combinations being a set.
func combinationKey(order []string, c combination) string {
	parts := make([]string, len(order))
	for i, key := range order {
		v, ok := c[key]
		if !ok {
			v = none{}
		}
		if _, isNone := v.(none); isNone {
			parts[i] = key + "=\x00none"

			continue
		}
		parts[i] = key + fmt.Sprintf("=%v", v)
	}

	return strings.Join(parts, "\x1f")
}

// Project returns a new registry retaining only the given atoms (by
// path.Hash()), with every observed combination restricted accordingly.
//
// Errors:
//   - ErrUnknownAtom if keys names an atom this registry does not track.
func (r *Registry) Project(keys []string) (*Registry, error) {
	for _, k := range keys {
		if _, ok := r.paths[k]; !ok {
			return nil, ErrUnknownAtom
		}
	}

	out := &Registry{
		paths:    make(map[string]path.Path, len(keys)),
		domains:  make(map[string]domain.Domain, len(keys)),
		defaults: make(map[string]any),
		combos:   make(map[string]combination),
	}
	for _, k := range keys {
		out.paths[k] = r.paths[k]
		out.domains[k] = r.domains[k]
		if def, ok := r.defaults[k]; ok {
			out.defaults[k] = def
		}
	}
	out.order = sortedKeys(out.paths)

	for _, c := range r.combos {
		restricted := make(combination, len(out.order))
		for _, k := range out.order {
			if v, ok := c[k]; ok {
				restricted[k] = v
			} else {
				restricted[k] = none{}
			}
		}
		out.insert(restricted)
	}

	return out, nil
}

// Restrict returns a new registry over the same atoms, with the domains
// named in overrides swapped in and every observed combination's bucket
// value re-quantised through the new domain.
//
// Errors:
//   - ErrUnknownAtom if overrides names an atom this registry does not
//     track.
func (r *Registry) Restrict(overrides map[string]domain.Domain) (*Registry, error) {
	for k := range overrides {
		if _, ok := r.paths[k]; !ok {
			return nil, ErrUnknownAtom
		}
	}

	out := &Registry{
		order:    append([]string(nil), r.order...),
		paths:    make(map[string]path.Path, len(r.paths)),
		domains:  make(map[string]domain.Domain, len(r.domains)),
		defaults: make(map[string]any, len(r.defaults)),
		combos:   make(map[string]combination, len(r.combos)),
	}
	for k, p := range r.paths {
		out.paths[k] = p
	}
	for k, d := range r.domains {
		out.domains[k] = d
	}
	for k, v := range overrides {
		out.domains[k] = v
	}
	for k, d := range r.defaults {
		out.defaults[k] = d
	}

	for _, c := range r.combos {
		rebucketed := make(combination, len(out.order))
		for _, k := range out.order {
			v, ok := c[k]
			if !ok {
				rebucketed[k] = none{}

				continue
			}
			if _, isNone := v.(none); isNone {
				rebucketed[k] = none{}

				continue
			}
			if _, overridden := overrides[k]; !overridden {
				rebucketed[k] = v

				continue
			}
			rebucketed[k] = out.bucketOf(k, v)
		}
		out.insert(rebucketed)
	}

	return out, nil
}

// Merge returns a fresh registry unioning r's and other's observed
// combinations. r and other must declare the same atom set with matching
// domains: describable domains match when their descriptors render alike,
// and a domain without a descriptor (Filter) must be deeply equal to the
// other side's. Default entries are taken from r unless absent, in which
// case other's is used.
//
// Errors:
//   - ErrDomainMismatch if the two registries track different atom sets or
//     declare different domains for the same atom.
func (r *Registry) Merge(other *Registry) (*Registry, error) {
	if len(r.order) != len(other.order) {
		return nil, ErrDomainMismatch
	}
	for i, k := range r.order {
		if other.order[i] != k {
			return nil, ErrDomainMismatch
		}
		da, errA := domain.Describe(r.domains[k])
		db, errB := domain.Describe(other.domains[k])
		if errA != nil || errB != nil {
			if !reflect.DeepEqual(r.domains[k], other.domains[k]) {
				return nil, ErrDomainMismatch
			}

			continue
		}
		if fmt.Sprintf("%v", da) != fmt.Sprintf("%v", db) {
			return nil, ErrDomainMismatch
		}
	}

	out := &Registry{
		order:    append([]string(nil), r.order...),
		paths:    make(map[string]path.Path, len(r.paths)),
		domains:  make(map[string]domain.Domain, len(r.domains)),
		defaults: make(map[string]any, len(r.defaults)),
		combos:   make(map[string]combination, len(r.combos)+len(other.combos)),
	}
	for k, p := range r.paths {
		out.paths[k] = p
	}
	for k, d := range r.domains {
		out.domains[k] = d
	}
	for k, d := range r.defaults {
		out.defaults[k] = d
	}
	for k, d := range other.defaults {
		if _, ok := out.defaults[k]; !ok {
			out.defaults[k] = d
		}
	}
	for key, c := range r.combos {
		out.combos[key] = c
	}
	for key, c := range other.combos {
		out.combos[key] = c
	}

	return out, nil
}

// Covered reports the number of observed combinations with no
// out-of-domain atom .
func (r *Registry) Covered() int {
	n := 0
	for _, c := range r.combos {
		complete := true
		for _, k := range r.order {
			if _, isNone := c[k].(none); isNone {
				complete = false

				break
			}
			if _, ok := c[k]; !ok {
				complete = false

				break
			}
		}
		if complete {
			n++
		}
	}

	return n
}

// Total is the product of each tracked atom's domain length; an empty
// domain set has Total() == 1.
func (r *Registry) Total() (int, error) {
	total := 1
	for _, k := range r.order {
		n, err := r.domains[k].Len()
		if err != nil {
			return 0, fmt.Errorf("coverage: atom %q: %w", k, err)
		}
		total *= n
	}

	return total, nil
}

// Coverage is Covered()/Total(), or 0 if Total() is 0.
func (r *Registry) Coverage() (float64, error) {
	total, err := r.Total()
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	return float64(r.Covered()) / float64(total), nil
}
