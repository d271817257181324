// report/lookup.go
// Package: report
package report

// Lookup walks a chain of keys through nested JSON objects and reports
// whether a usable value was found. It reports false as soon as a key
// is missing or the value in hand is not an object. A traversal that
// ends on an empty object also reports false: an empty object renders
// the same as a missing field.
func Lookup(rec Record, keys ...string) (any, bool) {
	var cur any = map[string]any(rec)
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[k]
		if !ok {
			return nil, false
		}
	}
	if m, ok := cur.(map[string]any); ok && len(m) == 0 {
		return nil, false
	}
	return cur, true
}
