package eval

import (
	"os"

	"github.com/signadot/don-format/don/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			v, ok := doc.GetPath(params[0].(string))
			if !ok {
				return nil, nil
			}
			return v.Flat(), nil
		},
			new(func(string) any)),
		expr.Function("keypath", func(params ...any) (any, error) {
			v, ok := doc.GetPath(params[0].(string))
			if !ok || v.Node == nil {
				return []any{}, nil
			}
			keys := v.Node.Keys()
			res := make([]any, len(keys))
			for i, k := range keys {
				res[i] = k
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("islist", func(params ...any) (any, error) {
			v, ok := doc.GetPath(params[0].(string))
			return ok && v.Node != nil && v.Node.IsArray(), nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
