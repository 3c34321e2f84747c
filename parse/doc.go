// Package parse decodes flat key/value pairs for fieldtree.Build.
//
// # Usage
//
//	pairs, err := parse.Parse([]byte("Customer.Name=Ana&Customer.Age=31"))
//	if err != nil {
//	    return err
//	}
//	tree := fieldtree.Build(pairs)
//
//	// one key=value per line
//	pairs, err = parse.Parse(data, parse.ParseLines())
//
// JSON and YAML input is either a sequence of {key: ..., value: ...} entries
// or a nested mapping, which is flattened into dotted keys. A null key or
// value is rejected with ErrNullPair.
//
// # Related Packages
//
//   - github.com/signadot/formtree/fieldtree - tree construction
//   - github.com/signadot/formtree/format - format names
package parse
