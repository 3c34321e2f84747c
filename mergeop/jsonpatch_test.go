package mergeop

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/formtree/fieldtree"

	"github.com/google/go-cmp/cmp"
)

func build(kvs ...string) *fieldtree.Node {
	var pairs []fieldtree.Pair
	for i := 0; i+1 < len(kvs); i += 2 {
		pairs = append(pairs, fieldtree.Pair{Key: kvs[i], Value: kvs[i+1]})
	}
	return fieldtree.Build(pairs)
}

func TestJSONPatch(t *testing.T) {
	doc := build("A", "1", "P.B", "2", "P.Q.C", "3")
	orig := doc.Clone()
	patch := `[
		{"op": "replace", "path": "/P/B", "value": "20"},
		{"op": "add", "path": "/P/Q/D", "value": 4},
		{"op": "remove", "path": "/A"},
		{"op": "add", "path": "/R", "value": {"x": "y"}}
	]`
	res, err := JSONPatch(doc, []byte(patch))
	if err != nil {
		t.Fatal(err)
	}
	want := build("P.B", "20", "P.Q.C", "3", "P.Q.D", "4", "R.x", "y")
	if !res.Equal(want) {
		t.Errorf("got pairs %v, want %v", res.Pairs(), want.Pairs())
	}
	if !doc.Equal(orig) {
		t.Error("input tree modified")
	}
}

func TestJSONPatchErrors(t *testing.T) {
	doc := build("A", "1")
	tests := []struct {
		name  string
		patch string
	}{
		{"bad patch", `{"op": "add"}`},
		{"missing path", `[{"op": "remove", "path": "/nope"}]`},
		{"failed test op", `[{"op": "test", "path": "/A", "value": "2"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := JSONPatch(doc, []byte(tt.patch)); err == nil {
				t.Error("expected error")
			}
		})
	}
	_, err := JSONPatch(doc, []byte(`[{"op": "add", "path": "/B", "value": null}]`))
	if !errors.Is(err, fieldtree.ErrNullPair) {
		t.Errorf("expected ErrNullPair, got %v", err)
	}
}

func TestMergePatch(t *testing.T) {
	doc := build("A", "1", "P.B", "2", "P.C", "3", "Q.D", "4")
	res, err := MergePatch(doc, []byte(`{"P": {"B": null, "E": "5"}, "Q": null, "A": "10"}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []fieldtree.Pair{
		{Key: "A", Value: "10"},
		{Key: "P.C", Value: "3"},
		{Key: "P.E", Value: "5"},
	}
	if diff := cmp.Diff(want, res.Pairs()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMergePatchInvalid(t *testing.T) {
	if _, err := MergePatch(build("A", "1"), []byte(`{`)); err == nil {
		t.Error("expected error for invalid merge patch")
	}
}

func TestPatchCollisions(t *testing.T) {
	tests := []struct {
		name string
		doc  *fieldtree.Node
		path string
	}{
		{"repeated root field", build("A", "1", "A", "2", "P.x", "1"), `"A"`},
		{"repeated nested field", build("P.Q.t", "a", "P.Q.t", "b"), `"P.Q.t"`},
		{"field named like child", build("P", "1", "P.x", "2"), `"P"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MergePatch(tt.doc, []byte(`{"P": {"y": "2"}}`))
			if !errors.Is(err, ErrCollision) {
				t.Fatalf("merge patch: expected ErrCollision, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.path) {
				t.Errorf("error %q does not name %s", err, tt.path)
			}
			_, err = JSONPatch(tt.doc, []byte(`[{"op": "add", "path": "/Z", "value": "1"}]`))
			if !errors.Is(err, ErrCollision) {
				t.Errorf("json patch: expected ErrCollision, got %v", err)
			}
		})
	}
	// repeated values under distinct nodes are fine
	res, err := MergePatch(build("P.A", "1", "Q.A", "1"), []byte(`{"R": {"A": "1"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(res.Pairs()); got != 3 {
		t.Errorf("expected 3 pairs, got %v", res.Pairs())
	}
}
