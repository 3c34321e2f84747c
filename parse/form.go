package parse

import (
	"bufio"
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/signadot/formtree/fieldtree"
)

// parseForm decodes an application/x-www-form-urlencoded body, keeping the
// order of the pairs.
func parseForm(body string) ([]fieldtree.Pair, error) {
	body = strings.TrimSpace(body)
	body = strings.TrimPrefix(body, "?")
	var res []fieldtree.Pair
	for seg := range strings.SplitSeq(body, "&") {
		if seg == "" {
			continue
		}
		rawKey, rawVal, _ := strings.Cut(seg, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrParse, rawKey, err)
		}
		val, err := url.QueryUnescape(rawVal)
		if err != nil {
			return nil, fmt.Errorf("%w: value of %q: %w", ErrParse, key, err)
		}
		res = append(res, fieldtree.Pair{Key: key, Value: val})
	}
	return res, nil
}

const maxLine = 16 << 20

// parseLines decodes one key=value pair per line. Blank lines and lines
// starting with # are skipped. Only the key is trimmed.
func parseLines(d []byte) ([]fieldtree.Pair, error) {
	var res []fieldtree.Pair
	sc := bufio.NewScanner(bytes.NewReader(d))
	sc.Buffer(nil, maxLine)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '#' {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing '=' in %q", ErrParse, lineNo, line)
		}
		res = append(res, fieldtree.Pair{Key: strings.TrimSpace(key), Value: val})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrParse, lineNo+1, err)
	}
	return res, nil
}
