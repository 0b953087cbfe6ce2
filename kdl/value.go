package kdl

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the literal type of a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a KDL literal. Only the field matching Kind is meaningful.
type Value struct {
	Kind   Kind
	Bool   bool
	Int    int64
	Float  float64
	String string
}

// Null returns the null literal.
func Null() Value { return Value{Kind: KindNull} }

// Bool returns a boolean literal.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Int returns a base-10 integer literal.
func Int(i int64) Value { return Value{Kind: KindInt, Int: i} }

// Float returns a base-10 floating point literal.
func Float(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// String returns a string literal.
func String(s string) Value { return Value{Kind: KindString, String: s} }

// Text returns the KDL source form of v.
func (v Value) Text() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)

	case KindInt:
		return strconv.FormatInt(v.Int, 10)

	case KindFloat:
		return formatFloat(v.Float)

	case KindString:
		return Quote(v.String)

	default:
		return "null"
	}
}

// Magnitudes outside [minPlainFloat, maxPlainFloat) are written with an
// exponent.
const (
	minPlainFloat = 1e-4
	maxPlainFloat = 1e16
)

// formatFloat writes f in shortest round-trip decimal form. Plain notation
// always has a fractional part; very small or large magnitudes use a bare
// exponent such as 1e300 or 1.5e-7.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < minPlainFloat || abs >= maxPlainFloat) {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")

		sign := ""
		if exp[0] == '-' {
			sign = "-"
		}

		return mant + "e" + sign + strings.TrimLeft(exp[1:], "0")
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
