package schema

// Slice converts a deserialized []any into []T. Elements that are not
// T are dropped. A nil or non-slice input yields nil.
func Slice[T any](v any) []T {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]T, 0, len(raw))
	for _, el := range raw {
		if t, ok := el.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// StringMap converts a deserialized map[string]any into map[string]T.
// Entries whose value is not T are dropped. A nil or non-map input
// yields nil.
func StringMap[T any](v any) map[string]T {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]T, len(raw))
	for k, el := range raw {
		if t, ok := el.(T); ok {
			out[k] = t
		}
	}
	return out
}
