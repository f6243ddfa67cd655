package main

import (
	"fmt"

	"github.com/signadot/don-format/don"
	"github.com/signadot/don-format/don/encode"
	"github.com/signadot/don-format/don/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match object", cli.ErrUsage)
	}
	m, err := getish(cfg.String, cfg.File, cc, args[0], cfg.parseOpts())
	if err != nil {
		return err
	}
	docs, err := getDocs(cc, args[1:], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	res := matchDocs(docs, m, cfg.Trim)
	opts := cfg.encOpts(cc.Out)
	for i, doc := range res {
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	return nil
}

func matchDocs(docs []*ir.Node, m *ir.Node, trim bool) []*ir.Node {
	var res []*ir.Node
	for _, doc := range docs {
		if !don.Match(ir.FromNode(doc), ir.FromNode(m)) {
			continue
		}
		if trim {
			doc = don.Trim(m, doc)
		}
		res = append(res, doc)
	}
	return res
}
