package main

import (
	"fmt"
	"io"

	"github.com/signadot/don-format/don/parse"
	"github.com/signadot/don-format/don/token"

	"github.com/scott-cotton/cli"
)

func lint(cfg *LintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lint.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	n := 0
	for _, file := range args {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		ws, err := parse.Lint(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := writeWarnings(cc.Out, file, ws); err != nil {
			return err
		}
		n += len(ws)
	}
	if n > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeWarnings(w io.Writer, file string, ws []token.Warning) error {
	for _, wn := range ws {
		if _, err := fmt.Fprintf(w, "%s:%s\n", file, wn); err != nil {
			return err
		}
	}
	return nil
}
