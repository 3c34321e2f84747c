package parse

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/formtree/fieldtree"
)

// parseDoc decodes JSON or YAML. The document is either a sequence of
// entries, each a {key, value} mapping or a [key, value] pair, or a nested
// mapping flattened into dotted keys.
func parseDoc(d []byte) ([]fieldtree.Pair, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, nil
	}
	var v any
	// repeated keys are repeated form values, not a conflict
	err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap(), yaml.AllowDuplicateMapKey())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	var res []fieldtree.Pair
	switch x := v.(type) {
	case nil:
		return nil, nil
	case []any:
		for i, entry := range x {
			p, err := entryPair(entry)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			res = append(res, p)
		}
	case yaml.MapSlice:
		if err := flatten(nil, x, &res); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: expected a sequence or a mapping, got %T", ErrParse, v)
	}
	return res, nil
}

func entryPair(entry any) (fieldtree.Pair, error) {
	var k, v any
	switch x := entry.(type) {
	case yaml.MapSlice:
		var hasKey, hasVal bool
		for _, item := range x {
			switch item.Key {
			case "key":
				k, hasKey = item.Value, true
			case "value":
				v, hasVal = item.Value, true
			default:
				return fieldtree.Pair{}, fmt.Errorf("%w: unexpected field %v", ErrParse, item.Key)
			}
		}
		if !hasKey || !hasVal {
			return fieldtree.Pair{}, fmt.Errorf("%w: entry needs both key and value", ErrNullPair)
		}
	case []any:
		if len(x) != 2 {
			return fieldtree.Pair{}, fmt.Errorf("%w: expected [key, value], got %d elements", ErrParse, len(x))
		}
		k, v = x[0], x[1]
	default:
		return fieldtree.Pair{}, fmt.Errorf("%w: expected an entry, got %T", ErrParse, entry)
	}
	if k == nil || v == nil {
		return fieldtree.Pair{}, ErrNullPair
	}
	ks, err := scalarString(k)
	if err != nil {
		return fieldtree.Pair{}, err
	}
	vs, err := scalarString(v)
	if err != nil {
		return fieldtree.Pair{}, err
	}
	return fieldtree.Pair{Key: ks, Value: vs}, nil
}

// flatten appends a pair for every scalar below m. Sequences of scalars
// produce one pair per element under the same key.
func flatten(path []string, m yaml.MapSlice, res *[]fieldtree.Pair) error {
	for _, item := range m {
		if item.Key == nil {
			return fmt.Errorf("%w: key under %q", ErrNullPair, strings.Join(path, fieldtree.Separator))
		}
		k, err := scalarString(item.Key)
		if err != nil {
			return err
		}
		if err := flattenValue(append(path, k), item.Value, res); err != nil {
			return err
		}
	}
	return nil
}

func flattenValue(path []string, v any, res *[]fieldtree.Pair) error {
	key := strings.Join(path, fieldtree.Separator)
	switch x := v.(type) {
	case nil:
		return fmt.Errorf("%w: value of %q", ErrNullPair, key)
	case yaml.MapSlice:
		return flatten(path, x, res)
	case []any:
		for _, elt := range x {
			if err := flattenValue(path, elt, res); err != nil {
				return err
			}
		}
		return nil
	}
	s, err := scalarString(v)
	if err != nil {
		return fmt.Errorf("%q: %w", key, err)
	}
	*res = append(*res, fieldtree.Pair{Key: key, Value: s})
	return nil
}

func scalarString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int, int64, uint64, float64:
		return fmt.Sprint(x), nil
	}
	return "", fmt.Errorf("%w: expected a scalar, got %T", ErrParse, v)
}
