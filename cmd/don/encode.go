package main

import (
	"fmt"

	"github.com/signadot/don-format/don/encode"
	"github.com/signadot/don-format/don/format"

	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.encOpts(cc.Out)
	for i, file := range args {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		n, err := format.Unmarshal(d, cfg.format(), cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		if err := encode.Encode(n, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
