// Package diff provides the loose-equality comparison and change-summary
// derivation used for edit-session notifications. Values are expected to come
// from JSON round trips (maps, slices, float64, string, bool, nil), so the
// comparison is deliberately permissive: a form field that round-trips a
// number through a string must not register as a change.
package diff

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

const (
	// CreatedLabel is the single entry returned when there is no prior state.
	CreatedLabel = "Created New Item"
	// NoChangesLabel is the single entry returned when nothing differs.
	NoChangesLabel = "No Changes Detected"
)

// LooseEqual reports whether a and b are equivalent under loose rules:
// nil and empty string are mutually equivalent, scalars compare by value
// after coercion, and composites must have the same shape (slice vs map)
// before a recursive comparison over the union of their keys.
func LooseEqual(a, b any) bool {
	aEmpty := isEmptyish(a)
	bEmpty := isEmptyish(b)
	if aEmpty || bEmpty {
		return aEmpty && bEmpty
	}

	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok {
			return false
		}
		return mapsLooseEqual(av, bv)
	case []any:
		bv, ok := b.([]any)
		if !ok {
			return false
		}
		return slicesLooseEqual(av, bv)
	default:
		if _, ok := b.(map[string]any); ok {
			return false
		}
		if _, ok := b.([]any); ok {
			return false
		}
		return scalarsLooseEqual(a, b)
	}
}

func mapsLooseEqual(a, b map[string]any) bool {
	keys := map[string]struct{}{}
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	for k := range keys {
		if !LooseEqual(a[k], b[k]) {
			return false
		}
	}
	return true
}

func slicesLooseEqual(a, b []any) bool {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var av, bv any
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if !LooseEqual(av, bv) {
			return false
		}
	}
	return true
}

func scalarsLooseEqual(a, b any) bool {
	af, aerr := cast.ToFloat64E(a)
	bf, berr := cast.ToFloat64E(b)
	if aerr == nil && berr == nil {
		return af == bf
	}
	return cast.ToString(a) == cast.ToString(b)
}

func isEmptyish(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// DescribeChanges compares an edit-start snapshot against the submitted data
// and returns human-readable labels for every field that changed. A nil
// original means the record is new. Labels come out sorted so the summary is
// deterministic.
func DescribeChanges(original, current map[string]any) []string {
	if original == nil {
		return []string{CreatedLabel}
	}

	var labels []string
	for key, val := range current {
		if !LooseEqual(original[key], val) {
			labels = append(labels, labelForKey(key))
		}
	}
	if len(labels) == 0 {
		return []string{NoChangesLabel}
	}
	sort.Strings(labels)
	return labels
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

func labelForKey(key string) string {
	s := strings.ReplaceAll(key, "_", " ")
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Snapshot deep-copies v into the loose map form the comparator expects, via
// a JSON round trip. Returns nil if v cannot be marshalled.
func Snapshot(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
