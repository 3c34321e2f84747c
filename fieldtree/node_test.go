package fieldtree

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNodeString(t *testing.T) {
	tree := Build(pairs("A", "1", "B", "2", "P.x", "3", "Q.y", "4"))
	if got, want := tree.String(), "Root (2 Children, 2 Fields) [ROOT]"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got, want := tree.Child("P").String(), "P (0 Children, 1 Fields)"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got, want := NewNode("").String(), " (0 Children, 0 Fields)"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	var n *Node
	if n.String() != "<nil>" {
		t.Errorf("nil node describe")
	}
}

func TestNodeRootTag(t *testing.T) {
	// a node named like the root is still not the root
	n := NewNode(RootName)
	if n.IsRoot() {
		t.Error("NewNode should never make a root")
	}
	if n.Equal(Build(nil)) {
		t.Error("root tag should take part in equality")
	}
}

func TestCloneIndependent(t *testing.T) {
	tree := Build(pairs("A.B.c", "1", "A.d", "2", "e", "3"))
	c := tree.Clone()
	if !c.Equal(tree) {
		t.Fatal("clone differs")
	}
	c.GetPath("A.B").AddField("z", "9")
	c.Fields[0].Value = "changed"
	if c.Equal(tree) {
		t.Fatal("clone shares state with original")
	}
	if got := tree.GetPath("A.B").FieldValues("z"); got != nil {
		t.Errorf("original changed: %v", got)
	}
	if tree.Fields[0].Value != "3" {
		t.Errorf("original fields changed")
	}
}

func TestEqual(t *testing.T) {
	a := Build(pairs("P.A", "1", "P.B", "2"))
	tests := []struct {
		name string
		b    *Node
		eq   bool
	}{
		{"same", Build(pairs("P.A", "1", "P.B", "2")), true},
		{"field order", Build(pairs("P.B", "2", "P.A", "1")), false},
		{"value", Build(pairs("P.A", "1", "P.B", "3")), false},
		{"extra child", Build(pairs("P.A", "1", "P.B", "2", "Q.c", "1")), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Equal(tt.b); got != tt.eq {
				t.Errorf("Equal = %v, want %v", got, tt.eq)
			}
		})
	}
	var n *Node
	if !n.Equal(nil) {
		t.Error("nil should equal nil")
	}
}

func TestCount(t *testing.T) {
	tree := Build(pairs("a", "1", "X.Y.b", "2", "X.c", "3", "Z.d", "4"))
	nodes, fields := tree.Count()
	if nodes != 3 || fields != 4 {
		t.Errorf("got %d nodes %d fields", nodes, fields)
	}
}

func TestGetPath(t *testing.T) {
	tree := Build(pairs("A.B.C.f", "1"))
	tests := []struct {
		path string
		want string
	}{
		{"", RootName},
		{"A", "A"},
		{"A.B", "B"},
		{"A.B.C", "C"},
	}
	for _, tt := range tests {
		n := tree.GetPath(tt.path)
		if n == nil || n.Name != tt.want {
			t.Errorf("GetPath(%q) = %s, want %s", tt.path, n, tt.want)
		}
	}
	for _, missing := range []string{"B", "A.C", "A.B.C.f", "a"} {
		if n := tree.GetPath(missing); n != nil {
			t.Errorf("GetPath(%q) = %s, want nil", missing, n)
		}
	}
}

func TestWalk(t *testing.T) {
	tree := Build(pairs("A.B.x", "1", "A.y", "2", "C.z", "3"))
	var visited []string
	err := tree.Walk(func(path []string, n *Node) error {
		visited = append(visited, strings.Join(path, "/"))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"", "A", "A/B", "C"}, visited); diff != "" {
		t.Errorf("walk order (-want +got):\n%s", diff)
	}

	visited = nil
	err = tree.Walk(func(path []string, n *Node) error {
		visited = append(visited, n.Name)
		if n.Name == "A" {
			return SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{RootName, "A", "C"}, visited); diff != "" {
		t.Errorf("skip children (-want +got):\n%s", diff)
	}

	stop := errors.New("stop")
	err = tree.Walk(func(path []string, n *Node) error {
		if n.Name == "B" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("expected stop error, got %v", err)
	}
}

func TestPairsRoundTrip(t *testing.T) {
	inputs := [][]Pair{
		nil,
		pairs("A", "1"),
		pairs("X.Y.Z.f", "v", "X.g", "w", "h", "1"),
		pairs("P.A", "1", "P.A", "2", "P", "3", "Q.R.s", "4"),
		pairs(".a", "1", "a.", "2", "a..b", "3", "", "4"),
	}
	for _, in := range inputs {
		tree := Build(in)
		again := Build(tree.Pairs())
		if !again.Equal(tree) {
			t.Errorf("round trip of %v: got %v", in, again.Pairs())
		}
	}
}

func TestPairsOrder(t *testing.T) {
	tree := Build(pairs("X.Y.a", "1", "b", "2", "X.c", "3"))
	want := pairs("b", "2", "X.c", "3", "X.Y.a", "1")
	if diff := cmp.Diff(want, tree.Pairs()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
