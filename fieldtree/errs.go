package fieldtree

import "errors"

// ErrNullPair is returned by decoders when a key or value is absent (null)
// rather than a string. An absent key cannot be told apart from an empty
// path segment, so such input is rejected instead of coerced.
var ErrNullPair = errors.New("null key or value")
