package fieldtree

import (
	"strings"

	"github.com/signadot/formtree/debug"
)

// Pair is one flat key/value as produced by form serialisation.
type Pair struct {
	Key   string
	Value string
}

func (p Pair) String() string {
	return p.Key + "=" + p.Value
}

// Dedup returns pairs without exact (key, value) duplicates, keeping the
// first occurrence of each. pairs is not modified.
func Dedup(pairs []Pair) []Pair {
	seen := make(map[Pair]struct{}, len(pairs))
	res := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		res = append(res, p)
	}
	return res
}

// SplitKey splits key into its path segments. Empty segments are kept.
func SplitKey(key string) []string {
	return strings.Split(key, Separator)
}

// Build constructs a tree from pairs and returns its root.
//
// A key without a separator becomes a field of the root. Otherwise the last
// segment of the key is the field name and the preceding segments name the
// nodes leading to it from the root; existing nodes are reused and missing
// ones are created in order. Build never fails, and each call returns a tree
// sharing nothing with previous results.
func Build(pairs []Pair) *Node {
	root := newRoot()
	for _, p := range Dedup(pairs) {
		if !strings.Contains(p.Key, Separator) {
			root.AddField(p.Key, p.Value)
			continue
		}
		parts := SplitKey(p.Key)
		n := len(parts)
		node := root.resolve(parts[:n-1])
		node.AddField(parts[n-1], p.Value)
	}
	if debug.Build() {
		nodes, fields := root.Count()
		debug.Logf("built %s from %d pairs: %d nodes, %d fields\n", root, len(pairs), nodes, fields)
	}
	return root
}

// resolve walks path down from n, creating missing nodes, and returns the
// node named by the last segment.
func (n *Node) resolve(path []string) *Node {
	cur := n
	for i, name := range path {
		next, created := cur.ensureChild(name)
		if created && debug.Build() {
			debug.Logf("created node %q\n", strings.Join(path[:i+1], Separator))
		}
		cur = next
	}
	return cur
}
