// Package eval selects pairs with boolean expressions.
//
// Expressions use the expr language (github.com/expr-lang/expr) over the
// environment of one pair:
//
//	Key    string   // full dotted key, "Customer.Address.City"
//	Value  string   // "Lisbon"
//	Field  string   // last segment of Key, "City"
//	Path   []string // node path, ["Customer", "Address"]
//	Depth  int      // len(Path)
//
// together with the function getenv(name) and the method Segment(i), which
// returns the i-th segment of Key or "" when out of range.
//
//	w, err := eval.Compile(`Key startsWith "Customer." && Value != ""`)
//	pairs, err = w.Filter(pairs)
package eval
