// Package format names the encodings formtree reads pairs from and writes
// trees to.
//
// # Formats
//
//   - form (f): url-encoded "a.b=1&c=2", input and output
//   - lines (l): one key=value per line, input and output
//   - json (j): pairs or nested objects, input and output
//   - yaml (y): pairs or nested mappings, input and output
//   - text (t): indented node descriptions, output only
//
// # Related Packages
//
//   - github.com/signadot/formtree/parse - decode pairs
//   - github.com/signadot/formtree/encode - encode trees
package format
