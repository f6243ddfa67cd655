package main

import (
	"fmt"

	"github.com/signadot/don-format/don/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: at most one diff arg may be stdin", cli.ErrUsage)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	lines := libdiff.Diff(a, b)
	if !libdiff.Changed(lines) {
		return nil
	}
	err = libdiff.Format(cc.Out, lines,
		libdiff.FormatColor(cfg.useColor(cc.Out)),
		libdiff.FormatContext(cfg.Context))
	if err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
