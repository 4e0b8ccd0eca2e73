package normalizer

import "math"

// Sanitize recursively rewrites every NaN float anywhere in a decoded JSON
// tree to nil. Maps and slices are rewritten in place; the (possibly
// replaced) value is returned so scalar roots are handled too.
//
// Statement exports that went through spreadsheet tooling routinely carry
// NaN markers in optional fields. The scrub runs before any field
// extraction so that no downstream step ever observes a NaN.
func Sanitize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, item := range val {
			val[k] = Sanitize(item)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = Sanitize(item)
		}
		return val
	case float64:
		if math.IsNaN(val) {
			return nil
		}
		return val
	default:
		return v
	}
}
