package kdl

import "iter"

// Entry is a value attached to a node: a positional argument when Name is
// nil, a property otherwise.
type Entry struct {
	Name  *string
	Type  *string
	Value Value
}

// NewEntry returns a positional entry holding v.
func NewEntry(v Value) *Entry {
	return &Entry{Value: v}
}

// NewProperty returns a property entry key=v.
func NewProperty(key string, v Value) *Entry {
	return &Entry{Name: &key, Value: v}
}

// SetType sets the entry's type annotation.
func (e *Entry) SetType(ty string) *Entry {
	e.Type = &ty

	return e
}

// IsProperty reports whether e has a name.
func (e *Entry) IsProperty() bool { return e.Name != nil }

// Node is a named KDL node.
type Node struct {
	Name     string
	Type     *string
	Entries  []*Entry
	Children *Document
}

// NewNode returns a node with the given name and no entries.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// SetType sets the node's type annotation.
func (n *Node) SetType(ty string) *Node {
	n.Type = &ty

	return n
}

// SetChildren attaches doc as the node's children block.
func (n *Node) SetChildren(doc *Document) *Node {
	n.Children = doc

	return n
}

// Push adds a positional entry after the existing arguments and before the
// first property. A named entry is handed to [Node.Insert].
func (n *Node) Push(e *Entry) {
	if e.IsProperty() {
		n.Insert(*e.Name, e)

		return
	}

	at := n.firstProperty()
	n.Entries = append(n.Entries, nil)
	copy(n.Entries[at+1:], n.Entries[at:])
	n.Entries[at] = e
}

// Insert sets the property key to e. An existing property with the same
// key is replaced in place; otherwise the property is appended.
func (n *Node) Insert(key string, e *Entry) {
	e.Name = &key

	for i, cur := range n.Entries {
		if cur.IsProperty() && *cur.Name == key {
			n.Entries[i] = e

			return
		}
	}

	n.Entries = append(n.Entries, e)
}

// Property returns the property stored under key.
func (n *Node) Property(key string) (*Entry, bool) {
	for k, e := range n.Properties() {
		if k == key {
			return e, true
		}
	}

	return nil, false
}

// Arguments returns an iterator over positional entries in order.
func (n *Node) Arguments() iter.Seq2[int, *Entry] {
	return func(yield func(int, *Entry) bool) {
		i := 0

		for _, e := range n.Entries {
			if e.IsProperty() {
				continue
			}

			if !yield(i, e) {
				return
			}

			i++
		}
	}
}

// Properties returns an iterator over property entries in order.
func (n *Node) Properties() iter.Seq2[string, *Entry] {
	return func(yield func(string, *Entry) bool) {
		for _, e := range n.Entries {
			if e.IsProperty() && !yield(*e.Name, e) {
				return
			}
		}
	}
}

func (n *Node) firstProperty() int {
	for i, e := range n.Entries {
		if e.IsProperty() {
			return i
		}
	}

	return len(n.Entries)
}

// Document is an ordered list of nodes, used both at the top level and for
// children blocks.
type Document struct {
	Nodes []*Node
}

// NewDocument returns a document holding nodes.
func NewDocument(nodes ...*Node) *Document {
	return &Document{Nodes: nodes}
}

// Append adds nodes to the end of the document.
func (d *Document) Append(nodes ...*Node) {
	d.Nodes = append(d.Nodes, nodes...)
}

// Len returns the number of top-level nodes.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Nodes)
}
