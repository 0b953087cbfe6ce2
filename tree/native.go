package tree

import "strconv"

// Native converts v into plain Go values: nil, bool, int64 or float64,
// string, []any and map[string]any.
// Numbers that parse as neither int64 nor float64 stay strings.
func Native(v Value) any {
	switch t := v.(type) {
	case Bool:
		return bool(t)

	case Number:
		if !t.IsFloat() {
			if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
				return i
			}
		}

		if f, err := strconv.ParseFloat(string(t), 64); err == nil {
			return f
		}

		return string(t)

	case String:
		return string(t)

	case Array:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Native(item)
		}

		return out

	case *Object:
		out := make(map[string]any, t.Len())
		for k, item := range t.All() {
			out[k] = Native(item)
		}

		return out

	default:
		return nil
	}
}
