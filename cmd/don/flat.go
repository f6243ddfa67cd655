package main

import (
	"fmt"

	"github.com/signadot/don-format/don/format"

	"github.com/scott-cotton/cli"
)

func flat(cfg *FlatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flat.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	docs, err := getDocs(cc, args, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	f := cfg.format()
	for i, doc := range docs {
		if f.IsYAML() {
			if err := writeSep(cc.Out, i); err != nil {
				return err
			}
		}
		d, err := format.Marshal(doc, f)
		if err != nil {
			return fmt.Errorf("error encoding document %d: %w", i, err)
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
