package kdl

import (
	"bytes"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"bees", true},
		{"child-eater", true},
		{"state?", true},
		{"my-neat-float", true},
		{"-", true},
		{"-foo", true},
		{"über", true},
		{"", false},
		{"how many", false},
		{"true", false},
		{"null", false},
		{"1abc", false},
		{"-1", false},
		{"+5x", false},
		{"a=b", false},
		{`a"b`, false},
		{"a(b)", false},
		{"tab\there", false},
		{"line\nbreak", false},
		{"semi;", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, IsIdentifier(tt.in))
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"a\nb\tc\r", `"a\nb\tc\r"`},
		{"\b\f", `"\b\f"`},
		{"\x01", `"\u{1}"`},
		{":^)", `":^)"`},
		{"ü/", `"ü/"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, Quote(tt.in))
		})
	}
}

func TestValue_Text(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"int", Int(42), "42"},
		{"negative int", Int(-9223372036854775808), "-9223372036854775808"},
		{"float", Float(3.1415), "3.1415"},
		{"integral float", Float(1), "1.0"},
		{"negative float", Float(-0.5), "-0.5"},
		{"negative zero", Float(math.Copysign(0, -1)), "-0.0"},
		{"largest plain float", Float(9999999999999998), "9999999999999998.0"},
		{"large float", Float(1e16), "1e16"},
		{"huge float", Float(1e300), "1e300"},
		{"negative huge float", Float(-2.5e21), "-2.5e21"},
		{"smallest plain float", Float(0.0001), "0.0001"},
		{"tiny float", Float(1.5e-7), "1.5e-7"},
		{"tiny negative float", Float(-1e-300), "-1e-300"},
		{"inf", Float(math.Inf(1)), "inf"},
		{"string", String("q?"), `"q?"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.v.Text())
		})
	}
}

func TestNode_PushKeepsArgumentsFirst(t *testing.T) {
	n := NewNode("bees")
	n.Insert("k", NewEntry(String("v")))
	n.Push(NewEntry(Int(1)))
	n.Push(NewEntry(Int(2)))
	n.Insert("j", NewEntry(Null()))

	require.Equal(t, `bees 1 2 k="v" j=null`+"\n", n.String())

	args := []int64{}
	for _, e := range n.Arguments() {
		args = append(args, e.Value.Int)
	}

	require.Equal(t, []int64{1, 2}, args)
}

func TestNode_InsertReplacesInPlace(t *testing.T) {
	n := NewNode("n")
	n.Insert("a", NewEntry(Int(1)))
	n.Insert("b", NewEntry(Int(2)))
	n.Insert("a", NewEntry(Int(3)))

	keys := []string{}
	for k := range n.Properties() {
		keys = append(keys, k)
	}

	require.Equal(t, []string{"a", "b"}, keys)

	a, ok := n.Property("a")
	require.True(t, ok)
	require.Equal(t, int64(3), a.Value.Int)

	_, ok = n.Property("missing")
	require.False(t, ok)
}

func TestNode_PushProperty(t *testing.T) {
	n := NewNode("n")
	n.Push(NewProperty("k", Bool(true)))
	n.Push(NewEntry(Int(7)))

	require.Equal(t, "n 7 k=true\n", n.String())
}

func TestDocument_String(t *testing.T) {
	doc := NewDocument(
		NewNode("bees"),
		NewNode("lemon").SetChildren(NewDocument(
			NewNode("child"),
			NewNode("inner").SetChildren(NewDocument(NewNode("leaf"))),
		)),
		NewNode("ohno").SetType("ohnono"),
		NewNode("empty").SetChildren(NewDocument()),
	)

	want := strings.Join([]string{
		"bees",
		"lemon {",
		"    child",
		"    inner {",
		"        leaf",
		"    }",
		"}",
		"(ohnono)ohno",
		"empty {",
		"}",
		"",
	}, "\n")

	require.Equal(t, want, doc.String())
}

func TestDocument_QuotedNames(t *testing.T) {
	n := NewNode("how many")
	n.Push(NewEntry(Int(3)).SetType("my type"))
	n.Insert("", NewEntry(String("")))

	require.Equal(t, `"how many" ("my type")3 ""=""`+"\n", n.String())
}

func TestDocument_Format_Indent(t *testing.T) {
	doc := NewDocument(NewNode("a").SetChildren(NewDocument(NewNode("b"))))

	var buf bytes.Buffer
	require.NoError(t, doc.Format(&buf, WithIndent(2)))
	require.Equal(t, "a {\n  b\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, doc.Format(&buf, WithIndent(-1)))
	require.Equal(t, "a {\nb\n}\n", buf.String())
}

func TestDocument_Format_Palette(t *testing.T) {
	mark := func(tag string) func(string) string {
		return func(s string) string { return "<" + tag + ">" + s }
	}

	n := NewNode("n").SetType("t")
	n.Push(NewEntry(Int(1)))
	n.Insert("k", NewEntry(String("v")))
	n.Push(NewEntry(Null()))

	var buf bytes.Buffer
	err := NewDocument(n).Format(&buf, WithPalette(Palette{
		Identifier: mark("id"),
		Annotation: mark("ty"),
		String:     mark("str"),
		Number:     mark("num"),
		Keyword:    mark("kw"),
	}))
	require.NoError(t, err)
	require.Equal(t, `(<ty>t)<id>n <num>1 <kw>null <id>k=<str>"v"`+"\n", buf.String())
}

func TestColorPalette_Forced(t *testing.T) {
	p := ColorPalette(true)

	got := p.identifier("bees")
	require.Contains(t, got, "bees")
	require.True(t, strings.HasPrefix(got, "\x1b["), "expected escape sequence, got %q", got)
}

func TestDocument_Len(t *testing.T) {
	var nilDoc *Document

	require.Zero(t, nilDoc.Len())
	require.Equal(t, 2, NewDocument(NewNode("a"), NewNode("b")).Len())

	doc := NewDocument()
	doc.Append(NewNode("x"))
	require.True(t, slices.ContainsFunc(doc.Nodes, func(n *Node) bool { return n.Name == "x" }))
}
