package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/don-format/don/ir"
	"github.com/signadot/don-format/don/parse"

	"github.com/scott-cotton/cli"
)

// docSep separates documents in a multi-document input.
var docSep = []byte("\n---\n")

func openInput(cc *cli.Context, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cc.In), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	return f, nil
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	r, err := openInput(cc, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// getDocs reads all documents from the named inputs, or from cc.In when
// there are none.
func getDocs(cc *cli.Context, paths []string, opts ...parse.ParseOption) ([]*ir.Node, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var res []*ir.Node
	for _, path := range paths {
		d, err := readInput(cc, path)
		if err != nil {
			return nil, err
		}
		for i, doc := range bytes.Split(d, docSep) {
			n, err := parse.Parse(doc, opts...)
			if err != nil {
				return nil, fmt.Errorf("error decoding %s document %d: %w", path, i, err)
			}
			res = append(res, n)
		}
	}
	return res, nil
}

func getish(s, f bool, cc *cli.Context, arg string, opts []parse.ParseOption) (*ir.Node, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader
	if f {
		rc, err := openInput(cc, arg)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		r = rc
	} else {
		r = strings.NewReader(arg)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return parse.Parse(d, opts...)
}

func writeSep(w io.Writer, i int) error {
	if i == 0 {
		return nil
	}
	_, err := w.Write(docSep[1:])
	return err
}
