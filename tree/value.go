package tree

import (
	"iter"
	"strings"
)

// Kind identifies the dynamic type of a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns a lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a node of the input tree.
type Value interface {
	Kind() Kind
}

type (
	// Null is the null literal.
	Null struct{}

	// Bool is a boolean literal.
	Bool bool

	// Number is a numeric literal kept as its source text.
	Number string

	// String is a string literal.
	String string

	// Array is an ordered sequence of values.
	Array []Value
)

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

// IsFloat reports whether the literal is written with a fraction or an
// exponent, or is a non-finite value produced by a YAML decoder.
func (n Number) IsFloat() bool {
	return strings.ContainsAny(string(n), ".eEnN")
}

// Object is a mapping from string keys to values that remembers insertion
// order.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty object with room for n keys.
func NewObject(n int) *Object {
	return &Object{
		keys: make([]string, 0, n),
		vals: make(map[string]Value, n),
	}
}

func (*Object) Kind() Kind { return KindObject }

// Set stores v under key. A key that already exists keeps its position and
// takes the new value.
func (o *Object) Set(key string, v Value) {
	if o.vals == nil {
		o.vals = make(map[string]Value)
	}

	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.vals[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}

	v, ok := o.vals[key]

	return v, ok
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	return append([]string(nil), o.keys...)
}

// All returns an iterator over key/value pairs in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}

		for _, k := range o.keys {
			if !yield(k, o.vals[k]) {
				return
			}
		}
	}
}

// KindOf returns the kind of v, treating a nil interface as null.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}

	return v.Kind()
}
