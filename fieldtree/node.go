package fieldtree

import (
	"slices"
	"strconv"
	"strings"
)

const (
	// Separator delimits path segments in a key.
	Separator = "."

	// RootName is the name of the node returned by Build.
	RootName = "Root"
)

// Field is a leaf key/value attached directly to a node.
type Field struct {
	Key   string
	Value string
}

type Node struct {
	Name     string
	Children []*Node
	Fields   []Field

	root bool
}

// NewNode returns a childless, fieldless node. Any name is accepted,
// including the empty string.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

func newRoot() *Node {
	return &Node{Name: RootName, root: true}
}

// IsRoot reports whether n is the root of a tree returned by Build.
func (n *Node) IsRoot() bool {
	return n.root
}

// String describes n for diagnostics, e.g. "Root (2 Children, 1 Fields) [ROOT]".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	buf := &strings.Builder{}
	buf.WriteString(n.Name)
	buf.WriteString(" (")
	buf.WriteString(strconv.Itoa(len(n.Children)))
	buf.WriteString(" Children, ")
	buf.WriteString(strconv.Itoa(len(n.Fields)))
	buf.WriteString(" Fields)")
	if n.root {
		buf.WriteString(" [ROOT]")
	}
	return buf.String()
}

// Child returns the child of n named name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (n *Node) AddField(key, value string) {
	n.Fields = append(n.Fields, Field{Key: key, Value: value})
}

// ensureChild returns the child named name, appending a new one if there is
// none.
func (n *Node) ensureChild(name string) (*Node, bool) {
	if c := n.Child(name); c != nil {
		return c, false
	}
	c := NewNode(name)
	n.Children = append(n.Children, c)
	return c, true
}

// FieldValues returns the values of all fields of n with the given key, in
// order.
func (n *Node) FieldValues(key string) []string {
	var res []string
	for _, f := range n.Fields {
		if f.Key == key {
			res = append(res, f.Value)
		}
	}
	return res
}

func (n *Node) Clone() *Node {
	res := &Node{
		Name:   n.Name,
		Fields: slices.Clone(n.Fields),
		root:   n.root,
	}
	if n.Children != nil {
		res.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}

// Equal reports whether n and o have the same name, root tag, fields and
// children, in the same order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Name != o.Name || n.root != o.root {
		return false
	}
	if !slices.Equal(n.Fields, o.Fields) {
		return false
	}
	return slices.EqualFunc(n.Children, o.Children, (*Node).Equal)
}

// Count returns the number of nodes below n and the number of fields in the
// subtree rooted at n, n's own fields included.
func (n *Node) Count() (nodes, fields int) {
	fields = len(n.Fields)
	for _, c := range n.Children {
		cn, cf := c.Count()
		nodes += cn + 1
		fields += cf
	}
	return nodes, fields
}
