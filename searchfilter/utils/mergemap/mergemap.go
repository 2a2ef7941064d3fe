// Package mergemap deep-merges JSON-like structures: keys held by both
// sides concatenate when both values are sequences and merge recursively
// when both values are mappings.
package mergemap

// Merge combines src into dst and returns a fresh map; neither input is
// mutated. Keys present on one side only are copied. For keys present on
// both sides, two []any values concatenate (dst elements first), two
// map[string]any values merge recursively, and any other pairing takes the
// src value.
func Merge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, sv := range src {
		dv, ok := out[k]
		if !ok {
			out[k] = sv
			continue
		}
		out[k] = mergeValues(dv, sv)
	}
	return out
}

func mergeValues(dst, src any) any {
	if dm, ok := dst.(map[string]any); ok {
		if sm, ok := src.(map[string]any); ok {
			return Merge(dm, sm)
		}
	}
	if da, ok := dst.([]any); ok {
		if sa, ok := src.([]any); ok {
			out := make([]any, 0, len(da)+len(sa))
			out = append(out, da...)
			return append(out, sa...)
		}
	}
	return src
}
