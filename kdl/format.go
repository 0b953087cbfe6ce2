package kdl

import (
	"bytes"
	"io"
	"strings"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 4

// FormatOption configures rendering.
type FormatOption func(*formatter)

// WithIndent sets the number of spaces per nesting level. Negative values
// are treated as zero.
func WithIndent(spaces int) FormatOption {
	return func(f *formatter) {
		f.indent = strings.Repeat(" ", max(spaces, 0))
	}
}

// WithPalette colors the output token by token.
func WithPalette(p Palette) FormatOption {
	return func(f *formatter) {
		f.palette = p
	}
}

// formatter renders a document into a buffer.
type formatter struct {
	buf     bytes.Buffer
	indent  string
	palette Palette
}

func newFormatter(opts ...FormatOption) *formatter {
	f := &formatter{indent: strings.Repeat(" ", DefaultIndent)}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Format writes the KDL text of d to w.
func (d *Document) Format(w io.Writer, opts ...FormatOption) error {
	f := newFormatter(opts...)
	f.document(d, 0)

	_, err := f.buf.WriteTo(w)

	return err
}

// String returns the KDL text of d with default options.
func (d *Document) String() string {
	f := newFormatter()
	f.document(d, 0)

	return f.buf.String()
}

// String returns the KDL text of n, including its children, with default
// options.
func (n *Node) String() string {
	f := newFormatter()
	f.node(n, 0)

	return f.buf.String()
}

// String returns the KDL text of e.
func (e *Entry) String() string {
	f := newFormatter()
	f.entry(e)

	return f.buf.String()
}

func (f *formatter) document(d *Document, depth int) {
	if d == nil {
		return
	}

	for _, n := range d.Nodes {
		f.node(n, depth)
	}
}

func (f *formatter) node(n *Node, depth int) {
	f.writeIndent(depth)
	f.annotation(n.Type)
	f.buf.WriteString(f.palette.identifier(Identifier(n.Name)))

	for _, e := range n.Entries {
		f.buf.WriteByte(' ')
		f.entry(e)
	}

	if n.Children != nil {
		f.buf.WriteString(" " + f.palette.punct("{") + "\n")
		f.document(n.Children, depth+1)
		f.writeIndent(depth)
		f.buf.WriteString(f.palette.punct("}"))
	}

	f.buf.WriteByte('\n')
}

func (f *formatter) entry(e *Entry) {
	if e.Name != nil {
		f.buf.WriteString(f.palette.identifier(Identifier(*e.Name)))
		f.buf.WriteString(f.palette.punct("="))
	}

	f.annotation(e.Type)
	f.buf.WriteString(f.palette.value(e.Value))
}

func (f *formatter) annotation(ty *string) {
	if ty == nil {
		return
	}

	f.buf.WriteString(f.palette.punct("("))
	f.buf.WriteString(f.palette.annotation(Identifier(*ty)))
	f.buf.WriteString(f.palette.punct(")"))
}

func (f *formatter) writeIndent(depth int) {
	for range depth {
		f.buf.WriteString(f.indent)
	}
}
