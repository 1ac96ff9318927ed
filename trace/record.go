package trace

import (
	"strconv"

	"github.com/csimtl/csimtl/path"
)

// TimestampFunc extracts the recording time from a structured entry. A
// false second return value skips the entry entirely without error — a
// caller's timestamp extractor rejecting a malformed entry is not itself
// a failure of Record.
type TimestampFunc func(entry any) (float64, bool)

// Record accepts a single structured entry (map[string]any) or a sequence
// of entries ([]any of map[string]any), extracts every (path, value) leaf
// by recursive descent — map keys become path segments, list indices
// become decimal-string segments — and routes each leaf to Set(path,
// timestampFn(entry), value). Entries for which timestampFn returns false
// are skipped without error.
func (t *Trace) Record(element any, timestampFn TimestampFunc) {
	var entries []any
	switch v := element.(type) {
	case []any:
		entries = v
	case map[string]any:
		entries = []any{v}
	default:
		entries = []any{v}
	}

	for _, entry := range entries {
		at, ok := timestampFn(entry)
		if !ok {
			continue
		}
		for _, leaf := range extractLeaves(entry, nil) {
			p, err := path.New(leaf.segments...)
			if err != nil {
				continue
			}
			t.Set(p, at, leaf.value)
		}
	}
}

type leaf struct {
	segments []string
	value    any
}

// extractLeaves performs the recursive descent of : nested maps
// contribute their keys as segments, lists contribute their decimal-string
// indices, and anything else is a scalar leaf at the accumulated prefix.
func extractLeaves(element any, prefix []string) []leaf {
	switch v := element.(type) {
	case map[string]any:
		var out []leaf
		for k, sub := range v {
			next := append(append([]string{}, prefix...), k)
			out = append(out, extractLeaves(sub, next)...)
		}

		return out
	case []any:
		var out []leaf
		for i, sub := range v {
			next := append(append([]string{}, prefix...), strconv.Itoa(i))
			out = append(out, extractLeaves(sub, next)...)
		}

		return out
	default:
		if len(prefix) == 0 {
			return nil
		}

		return []leaf{{segments: prefix, value: element}}
	}
}
