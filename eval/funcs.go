package eval

import (
	"os"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Segment returns the i-th segment of the key, or "" when out of range.
func (e Env) Segment(i int) string {
	if i < 0 || i > e.Depth {
		return ""
	}
	if i == e.Depth {
		return e.Field
	}
	return e.Path[i]
}
