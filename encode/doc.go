// Package encode writes field trees.
//
// # Usage
//
//	tree := fieldtree.Build(pairs)
//
//	// indented node descriptions
//	err := encode.Encode(tree, os.Stdout)
//
//	// nested JSON object, fields before child nodes
//	err = encode.Encode(tree, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// Text output may be coloured with EncodeColors. JSON and YAML keep the
// order of fields and children and emit repeated keys as they are; the
// lines and form formats write the tree back as flat dotted pairs.
//
// # Related Packages
//
//   - github.com/signadot/formtree/fieldtree - tree construction
//   - github.com/signadot/formtree/parse - decode pairs
package encode
