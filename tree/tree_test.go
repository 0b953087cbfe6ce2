package tree

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, src string) Value {
	t.Helper()

	v, err := DecodeJSON(strings.NewReader(src))
	require.NoError(t, err)

	return v
}

func TestDecodeJSON_Scalars(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Value
	}{
		{"null", `null`, Null{}},
		{"true", `true`, Bool(true)},
		{"false", ` false `, Bool(false)},
		{"integer", `42`, Number("42")},
		{"negative", `-7`, Number("-7")},
		{"float", `3.1415`, Number("3.1415")},
		{"integral float", `1.0`, Number("1.0")},
		{"exponent", `1e3`, Number("1e3")},
		{"string", `"q?"`, String("q?")},
		{"escaped string", `"a\"b\n"`, String("a\"b\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, mustJSON(t, tt.src))
		})
	}
}

func TestDecodeJSON_ObjectOrder(t *testing.T) {
	v := mustJSON(t, `{"z": 1, "a": 2, "m": {"y": true, "b": null}}`)

	obj, ok := v.(*Object)
	require.True(t, ok)
	require.Equal(t, []string{"z", "a", "m"}, obj.Keys())

	inner, ok := obj.Get("m")
	require.True(t, ok)
	require.Equal(t, []string{"y", "b"}, inner.(*Object).Keys())
}

func TestDecodeJSON_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	obj := mustJSON(t, `{"a": 1, "b": 2, "a": 3}`).(*Object)

	require.Equal(t, []string{"a", "b"}, obj.Keys())

	a, _ := obj.Get("a")
	require.Equal(t, Number("3"), a)
}

func TestDecodeJSON_Array(t *testing.T) {
	v := mustJSON(t, `[1, [2, 3], {"k": "v"}, []]`)

	arr, ok := v.(Array)
	require.True(t, ok)
	require.Len(t, arr, 4)
	require.Equal(t, Array{Number("2"), Number("3")}, arr[1])
	require.Equal(t, KindObject, arr[2].Kind())
	require.Equal(t, Array{}, arr[3])
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ``},
		{"truncated array", `[1, 2`},
		{"truncated object", `{"a": `},
		{"trailing data", `[] []`},
		{"bare word", `nope`},
		{"missing comma", `[1 2]`},
		{"leading comma", `[,1]`},
		{"doubled comma", `[1,,2]`},
		{"trailing comma", `[1,]`},
		{"missing colon", `{"a" 1}`},
		{"mismatched close", `[1}`},
		{"leading zero", `[01]`},
		{"bare fraction dot", `[1.]`},
		{"lone minus", `[-]`},
		{"empty exponent", `[1e]`},
		{"control char in string", "[\"a\tb\"]"},
		{"invalid utf-8", "[\"\xff\"]"},
		{"encoded surrogate", "[\"\xed\xa0\x80\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON(strings.NewReader(tt.src))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrDecode), "got %v", err)
		})
	}
}

func TestDecodeJSON_Escapes(t *testing.T) {
	v := mustJSON(t, `["a\"b", "\u00e9\ud83d\ude00", "\/"]`)
	require.Equal(t, Array{String(`a"b`), String("é😀"), String("/")}, v)
}

func TestDecodeJSON_EmptyIsUnexpectedEOF(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader("   "))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecodeYAML(t *testing.T) {
	src := `
- name: bees
  arguments: [true, 42, {value: 3.1415, type: my-neat-float}, null, 1.0]
  properties:
    zeta: 1
    alpha: two
`
	v, err := DecodeYAML(strings.NewReader(src))
	require.NoError(t, err)

	arr := v.(Array)
	require.Len(t, arr, 1)

	node := arr[0].(*Object)
	require.Equal(t, []string{"name", "arguments", "properties"}, node.Keys())

	args, _ := node.Get("arguments")
	require.Equal(t, Bool(true), args.(Array)[0])
	require.Equal(t, Number("42"), args.(Array)[1])
	require.Equal(t, Null{}, args.(Array)[3])

	last := args.(Array)[4].(Number)
	require.True(t, last.IsFloat(), "1.0 must stay a float, got %q", last)

	props, _ := node.Get("properties")
	require.Equal(t, []string{"zeta", "alpha"}, props.(*Object).Keys())
}

func TestDecode_Format(t *testing.T) {
	v, err := Decode(strings.NewReader(`[1]`), FormatAuto)
	require.NoError(t, err)
	require.Equal(t, Array{Number("1")}, v)

	v, err = Decode(strings.NewReader("- 1\n"), FormatYAML)
	require.NoError(t, err)
	require.Equal(t, Array{Number("1")}, v)
}

func TestFormatOf(t *testing.T) {
	require.Equal(t, FormatYAML, FormatOf("a/b.yaml"))
	require.Equal(t, FormatYAML, FormatOf("B.YML"))
	require.Equal(t, FormatJSON, FormatOf("b.json"))
	require.Equal(t, FormatJSON, FormatOf("-"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNumber_IsFloat(t *testing.T) {
	require.False(t, Number("42").IsFloat())
	require.False(t, Number("-9223372036854775808").IsFloat())
	require.True(t, Number("4.2").IsFloat())
	require.True(t, Number("4E2").IsFloat())
	require.True(t, Number("NaN").IsFloat())
}

func TestNative(t *testing.T) {
	v := mustJSON(t, `{"n": 1, "f": 1.5, "s": "x", "a": [null, false], "o": {}}`)

	got := Native(v)
	require.Equal(t, map[string]any{
		"n": int64(1),
		"f": 1.5,
		"s": "x",
		"a": []any{nil, false},
		"o": map[string]any{},
	}, got)
}

func TestObject_NilSafe(t *testing.T) {
	var obj *Object

	_, ok := obj.Get("x")
	require.False(t, ok)
	require.Zero(t, obj.Len())
	require.Nil(t, obj.Keys())

	for range obj.All() {
		t.Fatal("nil object must not yield")
	}
}
