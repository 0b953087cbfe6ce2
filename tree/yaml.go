package tree

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// DecodeYAML reads the first YAML document from r.
//
// Mappings are decoded in document order. Integers keep their decimal text
// and floats are rendered so that [Number.IsFloat] holds for them; YAML's
// .inf and .nan survive decoding and are rejected later as out of range.
func DecodeYAML(r io.Reader) (Value, error) {
	var raw any

	err := yaml.NewDecoder(r, yaml.UseOrderedMap()).Decode(&raw)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, ErrDecode.Wrap(err).
			With(slog.String("format", FormatYAML.String()))
	}

	return fromYAML(raw), nil
}

func fromYAML(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Null{}

	case bool:
		return Bool(v)

	case string:
		return String(v)

	case int:
		return Number(strconv.Itoa(v))

	case int64:
		return Number(strconv.FormatInt(v, 10))

	case uint64:
		return Number(strconv.FormatUint(v, 10))

	case float64:
		return yamlFloat(v)

	case float32:
		return yamlFloat(float64(v))

	case time.Time:
		return String(v.Format(time.RFC3339Nano))

	case yaml.MapSlice:
		obj := NewObject(len(v))
		for _, item := range v {
			obj.Set(yamlKey(item.Key), fromYAML(item.Value))
		}

		return obj

	case map[string]any:
		obj := NewObject(len(v))
		for _, k := range slices.Sorted(maps.Keys(v)) {
			obj.Set(k, fromYAML(v[k]))
		}

		return obj

	case []any:
		arr := make(Array, 0, len(v))
		for _, item := range v {
			arr = append(arr, fromYAML(item))
		}

		return arr

	default:
		return String(fmt.Sprint(v))
	}
}

func yamlFloat(f float64) Number {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	default:
		return floatNumber(f)
	}
}

func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}

	return fmt.Sprint(k)
}
