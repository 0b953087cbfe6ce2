package convert

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/ardnew/json2kdl/kdl"
	"github.com/ardnew/json2kdl/tree"
)

// Keys of a typed value object.
const (
	valueKey = "value"
	typeKey  = "type"
)

// Classify returns the literal for raw and its type annotation, if any.
//
// An object with a "value" field is unwrapped first; its "type" field, when
// it is a string, becomes the annotation. Arrays, objects without "value"
// and non-scalar values fail with [ErrClassification].
func Classify(raw tree.Value) (kdl.Value, *string, error) {
	var ty *string

	if obj, ok := raw.(*tree.Object); ok {
		v, ok := obj.Get(valueKey)
		if !ok {
			return kdl.Value{}, nil, ErrClassification.
				With(slog.String("kind", tree.KindObject.String()))
		}

		if s, ok := obj.Get(typeKey); ok {
			if s, ok := s.(tree.String); ok {
				str := string(s)
				ty = &str
			}
		}

		raw = v
	}

	lit, err := literal(raw)
	if err != nil {
		return kdl.Value{}, nil, err
	}

	return lit, ty, nil
}

func literal(raw tree.Value) (kdl.Value, error) {
	switch v := raw.(type) {
	case nil, tree.Null:
		return kdl.Null(), nil

	case tree.Bool:
		return kdl.Bool(bool(v)), nil

	case tree.Number:
		return number(v)

	case tree.String:
		return kdl.String(string(v)), nil

	default:
		return kdl.Value{}, ErrClassification.
			With(slog.String("kind", tree.KindOf(raw).String()))
	}
}

// number makes an integer literal when n has neither fraction nor exponent
// and fits int64, and a float literal otherwise. A negative zero such as -0
// stays a float so its sign survives.
func number(n tree.Number) (kdl.Value, error) {
	if !n.IsFloat() {
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			if i == 0 && strings.HasPrefix(string(n), "-") {
				return kdl.Float(math.Copysign(0, -1)), nil
			}

			return kdl.Int(i), nil
		}
	}

	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		e := ErrNumericRange.With(slog.String("number", string(n)))
		if err != nil {
			e = e.Wrap(err)
		}

		return kdl.Value{}, e
	}

	return kdl.Float(f), nil
}

// BuildEntry returns the positional entry for raw.
func BuildEntry(raw tree.Value) (*kdl.Entry, error) {
	lit, ty, err := Classify(raw)
	if err != nil {
		return nil, err
	}

	return &kdl.Entry{Value: lit, Type: ty}, nil
}
