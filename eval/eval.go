package eval

import (
	"errors"
	"fmt"
	"maps"

	"github.com/signadot/don-format/don/debug"
	"github.com/signadot/don-format/don/gomap"
	"github.com/signadot/don-format/don/ir"

	"github.com/expr-lang/expr"
)

var ErrEval = errors.New("eval error")

type Env map[string]any

func (e Env) with(doc *ir.Node) Env {
	res := maps.Clone(e)
	if res == nil {
		res = Env{}
	}
	res["doc"] = doc.Flat()
	return res
}

// Eval evaluates src with doc bound.
func Eval(doc *ir.Node, src string, env Env) (any, error) {
	full := map[string]any(env.with(doc))
	prg, err := expr.Compile(src, append(exprOpts(doc), expr.Env(full))...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, src, err)
	}
	res, err := expr.Run(prg, full)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrEval, src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q on %v: %v", src, doc, res)
	}
	return res, nil
}

// EvalString is Eval with the result encoded as DON text.
func EvalString(doc *ir.Node, src string, env Env) (string, error) {
	res, err := Eval(doc, src, env)
	if err != nil {
		return "", err
	}
	return gomap.Encode(res), nil
}
