package main

import (
	"fmt"
	"io"

	"github.com/signadot/don-format/don/encode"
	"github.com/signadot/don-format/don/eval"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if (cfg.Expr == "") == !cfg.Expand {
		return fmt.Errorf("%w: exactly one of -e and -x is required", cli.ErrUsage)
	}
	env, err := eval.LoadEnv()
	if err != nil {
		return err
	}
	docs, err := getDocs(cc, args, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	for i, doc := range docs {
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		if cfg.Expand {
			res, err := eval.Expand(doc, doc, env)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
			continue
		}
		res, err := eval.EvalString(doc, cfg.Expr, env)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		if _, err := io.WriteString(cc.Out, res+"\n"); err != nil {
			return err
		}
	}
	return nil
}
