package eval

import (
	"fmt"

	"github.com/signadot/formtree/debug"
	"github.com/signadot/formtree/fieldtree"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the environment an expression is evaluated in.
type Env struct {
	Key   string
	Value string
	Field string
	Path  []string
	Depth int
}

func envOf(p fieldtree.Pair) Env {
	parts := fieldtree.SplitKey(p.Key)
	n := len(parts)
	return Env{
		Key:   p.Key,
		Value: p.Value,
		Field: parts[n-1],
		Path:  parts[:n-1],
		Depth: n - 1,
	}
}

// Where is a compiled boolean expression over a pair.
type Where struct {
	src string
	prg *vm.Program
}

// Compile compiles src. Expressions not yielding a bool are rejected.
func Compile(src string) (*Where, error) {
	opts := append([]expr.Option{expr.Env(Env{}), expr.AsBool()}, exprOpts()...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", src, err)
	}
	return &Where{src: src, prg: prg}, nil
}

func (w *Where) String() string {
	return w.src
}

func (w *Where) Match(p fieldtree.Pair) (bool, error) {
	env := envOf(p)
	res, err := expr.Run(w.prg, env)
	if err != nil {
		return false, fmt.Errorf("error evaluating %q on %s: %w", w.src, p.Key, err)
	}
	ok, isBool := res.(bool)
	if !isBool {
		return false, fmt.Errorf("%q on %s gave %T, not bool", w.src, p.Key, res)
	}
	if debug.Eval() {
		debug.Logf("where %s on %s: %t\n", w.src, p, ok)
	}
	return ok, nil
}

// Filter returns the pairs matching w, in order. pairs is not modified.
func (w *Where) Filter(pairs []fieldtree.Pair) ([]fieldtree.Pair, error) {
	var res []fieldtree.Pair
	for _, p := range pairs {
		ok, err := w.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, p)
		}
	}
	return res, nil
}
