package libdiff

import (
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/signadot/formtree/encode"
	"github.com/signadot/formtree/fieldtree"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Delete Op = iota
	Insert
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return "?"
	}
}

// Change is a pair present in only one of the compared trees.
type Change struct {
	Op Op
	fieldtree.Pair
}

func (c Change) String() string {
	return c.Op.String() + " " + c.Pair.String()
}

// ErrTooManyPairs is returned when the compared inputs hold more distinct
// pairs than there are Unicode scalar values.
var ErrTooManyPairs = errors.New("too many distinct pairs to diff")

// Diff returns the pairs deleted from and inserted into from to obtain to.
// An empty result means the trees are Equal up to the root tag.
func Diff(from, to *fieldtree.Node) ([]Change, error) {
	return DiffPairs(from.Pairs(), to.Pairs())
}

// DiffPairs is Diff over already flattened pairs.
func DiffPairs(from, to []fieldtree.Pair) ([]Change, error) {
	pairMap := map[fieldtree.Pair]rune{}
	runeMap := map[rune]fieldtree.Pair{}
	fromRunes, err := mapPairsTo(pairMap, runeMap, from)
	if err != nil {
		return nil, err
	}
	toRunes, err := mapPairsTo(pairMap, runeMap, to)
	if err != nil {
		return nil, err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []Change
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		default:
			continue
		}
		for _, r := range diff.Text {
			res = append(res, Change{Op: op, Pair: runeMap[r]})
		}
	}
	return res, nil
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	// maxPairs is the number of Unicode scalar values.
	maxPairs = unicode.MaxRune + 1 - (surrogateMax - surrogateMin + 1)
)

// pairRune returns the rune standing for the n-th distinct pair.
// diffmatchpatch converts runes to strings, so surrogate halves, which
// would come back as U+FFFD, are skipped.
func pairRune(n int) (rune, error) {
	if n < 0 || n >= maxPairs {
		return 0, fmt.Errorf("%w: limit is %d", ErrTooManyPairs, maxPairs)
	}
	r := rune(n)
	if r >= surrogateMin {
		r += surrogateMax - surrogateMin + 1
	}
	return r, nil
}

func mapPairsTo(m map[fieldtree.Pair]rune, im map[rune]fieldtree.Pair, pairs []fieldtree.Pair) ([]rune, error) {
	res := make([]rune, len(pairs))
	for i, p := range pairs {
		r, ok := m[p]
		if !ok {
			var err error
			r, err = pairRune(len(m))
			if err != nil {
				return nil, err
			}
			m[p] = r
			im[r] = p
		}
		res[i] = r
	}
	return res, nil
}

// Format writes one line per change. colors may be nil.
func Format(changes []Change, w io.Writer, colors *encode.Colors) error {
	for _, c := range changes {
		line := c.String()
		if colors != nil {
			attr := encode.DeleteColor
			if c.Op == Insert {
				attr = encode.InsertColor
			}
			line = colors.Color(attr, line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
