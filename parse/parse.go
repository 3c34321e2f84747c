package parse

import (
	"fmt"
	"maps"
	"net/url"
	"slices"

	"github.com/signadot/formtree/debug"
	"github.com/signadot/formtree/fieldtree"
	"github.com/signadot/formtree/format"
)

// Parse decodes pairs from d. The format defaults to form encoding.
func Parse(d []byte, opts ...ParseOption) ([]fieldtree.Pair, error) {
	f := FormatFromOpts(opts...)
	var (
		res []fieldtree.Pair
		err error
	)
	switch f {
	case format.FormFormat:
		res, err = parseForm(string(d))
	case format.LinesFormat:
		res, err = parseLines(d)
	case format.JSONFormat, format.YAMLFormat:
		res, err = parseDoc(d)
	default:
		return nil, fmt.Errorf("%w: cannot parse %s", ErrBadFormat, f)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d pairs from %s\n", len(res), f)
		debug.LogAny(res)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) ([]fieldtree.Pair, error) {
	return Parse([]byte(s), opts...)
}

// FromValues converts already decoded form values, such as an
// http.Request's PostForm, into pairs. Keys are sorted since url.Values does
// not keep the order of the original request; values keep their order.
func FromValues(vs url.Values) []fieldtree.Pair {
	var res []fieldtree.Pair
	for _, k := range slices.Sorted(maps.Keys(vs)) {
		for _, v := range vs[k] {
			res = append(res, fieldtree.Pair{Key: k, Value: v})
		}
	}
	return res
}

