package main

import (
	"fmt"

	"github.com/signadot/don-format/don/encode"
	"github.com/signadot/don-format/don/ir"
	"github.com/signadot/don-format/don/mergeop"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch object", cli.ErrUsage)
	}
	patch, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	docs, err := getDocs(cc, args[1:], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for i, doc := range docs {
		res, err := mergeop.Merge(doc, patch)
		if err != nil {
			return fmt.Errorf("error patching document %d: %w", i, err)
		}
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	res, err := getish(cfg.String, cfg.File, cc, arg, cfg.parseOpts())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return res, nil
}
