package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/don-format/don/encode"
	"github.com/signadot/don-format/don/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		if err := viewFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, file string) error {
	r, err := openInput(cc, file)
	if err != nil {
		return err
	}
	defer r.Close()
	if cfg.Lines {
		err = viewLines(cfg, cc.Out, r)
	} else {
		err = viewReader(cfg, cc.Out, r)
	}
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	opts := cfg.encOpts(w)
	for i, doc := range bytes.Split(in, docSep) {
		y, err := parse.Parse(doc, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if err := writeSep(w, i); err != nil {
			return fmt.Errorf("error writing document %d: %w", i, err)
		}
		if err := encode.Encode(y, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}

// viewLines decodes each non-blank line of r as a document and writes
// one canonical line per input line.
func viewLines(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	opts := cfg.encOpts(w)
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 64<<20)
	ln := 0
	for sc.Scan() {
		ln++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		y, err := parse.Parse(line, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
		if err := encode.Encode(y, w, opts...); err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
	}
	return sc.Err()
}
