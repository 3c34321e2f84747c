// Package fieldtree builds hierarchical trees from flat dotted-key form pairs.
//
// # Overview
//
// Form serialisation of nested object graphs produces flat key/value pairs
// whose keys spell out the path to a value:
//
//	Customer.Address.City = Lisbon
//	Customer.Name         = Ana
//	Token                 = abc
//
// Build turns such a collection into a tree of Nodes mirroring the dotted
// structure. Every key is split on Separator; the last segment is the field
// name and the segments before it name the chain of nodes from the root down
// to the node holding the field. Keys without a separator are attached to the
// root directly.
//
// # Node Structure
//
// A Node has a Name, an ordered list of Children and an ordered list of
// Fields. Children are owned by exactly one parent and there are no parent
// pointers: the tree is always navigated top down from the root. Sibling
// nodes have distinct names, compared exactly and case-sensitively, so keys
// sharing a prefix converge on the same node:
//
//	tree := fieldtree.Build([]fieldtree.Pair{
//	    {Key: "P.A", Value: "1"},
//	    {Key: "P.B", Value: "2"},
//	})
//	p := tree.Child("P") // one node holding fields A and B
//
// The node returned by Build is the root. Its name is RootName and IsRoot
// reports true; no other node is a root.
//
// # Duplicates
//
// Pairs are deduplicated on exact (key, value) equality before building.
// Pairs with the same key and different values are all kept, producing
// several fields with the same key on the same node, in input order.
//
// # Empty Segments
//
// Keys with leading, trailing or doubled separators produce empty path
// segments. These are not special-cased: "" is a valid node or field name and
// is matched like any other.
//
// # Navigation
//
// GetPath resolves a dotted node path, FieldValues collects the values for a
// field key, Walk visits the tree in pre-order and Pairs flattens a tree back
// to the dotted pairs it was built from.
//
// # Related Packages
//
//   - github.com/signadot/formtree/parse - decode pairs from form, lines, JSON and YAML
//   - github.com/signadot/formtree/encode - encode trees as text, JSON, YAML or pairs
package fieldtree
