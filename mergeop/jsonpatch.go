package mergeop

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/formtree/debug"
	"github.com/signadot/formtree/encode"
	"github.com/signadot/formtree/fieldtree"
	"github.com/signadot/formtree/format"
	"github.com/signadot/formtree/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// JSONPatch applies an RFC 6902 patch document to the tree rooted at doc.
func JSONPatch(doc *fieldtree.Node, patch []byte) (*fieldtree.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("could not decode json patch: %w", err)
	}
	return apply(doc, "json-patch", ops.Apply)
}

// MergePatch applies an RFC 7386 merge patch to the tree rooted at doc.
// Setting a member to null removes the field or node of that name.
func MergePatch(doc *fieldtree.Node, patch []byte) (*fieldtree.Node, error) {
	return apply(doc, "merge-patch", func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, patch)
	})
}

// ErrCollision is returned for trees which cannot be patched because a
// node has two members of the same name.
var ErrCollision = errors.New("member name collision")

func apply(doc *fieldtree.Node, name string, f func([]byte) ([]byte, error)) (*fieldtree.Node, error) {
	if debug.Patch() {
		debug.Logf("%s called on %s\n", name, doc)
	}
	if err := checkCollisions(doc); err != nil {
		if debug.Patch() {
			debug.Logf("%s: %v\n", name, err)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, err
	}
	out, err := f(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	pairs, err := parse.Parse(out, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("%s produced an unusable document: %w", name, err)
	}
	res := fieldtree.Build(pairs)
	if debug.Patch() {
		debug.Logf("%s result %s\n", name, res)
	}
	return res, nil
}

// checkCollisions reports the first node holding a repeated field key or a
// field named like one of its children. Such a node becomes a JSON object
// with a repeated member, of which only the last survives patching.
func checkCollisions(doc *fieldtree.Node) error {
	return doc.Walk(func(path []string, n *fieldtree.Node) error {
		names := make(map[string]struct{}, len(n.Fields)+len(n.Children))
		for _, c := range n.Children {
			names[c.Name] = struct{}{}
		}
		for _, f := range n.Fields {
			if _, ok := names[f.Key]; ok {
				return fmt.Errorf("%w: %q", ErrCollision, strings.Join(append(path, f.Key), fieldtree.Separator))
			}
			names[f.Key] = struct{}{}
		}
		return nil
	})
}
