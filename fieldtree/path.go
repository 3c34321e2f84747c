package fieldtree

import (
	"errors"
	"slices"
	"strings"
)

// SkipChildren may be returned by a WalkFunc to skip the children of the
// node being visited.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every node visited by Walk. path holds the names of
// the nodes from below the walk origin down to n; it is empty for the origin
// and must not be retained.
type WalkFunc func(path []string, n *Node) error

// Walk visits n and its descendants in pre-order, children in order.
func (n *Node) Walk(fn WalkFunc) error {
	err := n.walk(nil, fn)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

func (n *Node) walk(path []string, fn WalkFunc) error {
	if err := fn(path, n); err != nil {
		return err
	}
	for _, c := range n.Children {
		err := c.walk(append(path, c.Name), fn)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// GetPath returns the node reached from n by following the dotted node path,
// or nil if some segment does not name a child. The empty path yields n.
func (n *Node) GetPath(path string) *Node {
	if path == "" {
		return n
	}
	cur := n
	for _, name := range SplitKey(path) {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Pairs flattens the tree below n back into dotted pairs: each node's fields
// come before its children, depth first. For a tree returned by Build,
// Build(tree.Pairs()) is Equal to tree.
func (n *Node) Pairs() []Pair {
	var res []Pair
	n.Walk(func(path []string, x *Node) error {
		prefix := strings.Join(path, Separator)
		for _, f := range x.Fields {
			key := f.Key
			if len(path) != 0 {
				key = prefix + Separator + f.Key
			}
			res = append(res, Pair{Key: key, Value: f.Value})
		}
		return nil
	})
	return slices.Clip(res)
}
