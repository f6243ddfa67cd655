package libdiff

import (
	"strings"

	"github.com/signadot/don-format/don/encode"
	"github.com/signadot/don-format/don/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int8

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return " "
}

type Line struct {
	Op   Op
	Text string
}

// Lines renders n with one entry per line.
func Lines(n *ir.Node) []string {
	return strings.Split(encode.MustString(n, encode.EncodePretty(true)), "\n")
}

// Diff returns the lines of from and to, marked as kept, inserted or
// deleted.
func Diff(from, to *ir.Node) []Line {
	return DiffLines(Lines(from), Lines(to))
}

func DiffLines(from, to []string) []Line {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(joinLines(from), joinLines(to))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// joinLines terminates each line so that the last line compares like
// the others.
func joinLines(lines []string) string {
	b := &strings.Builder{}
	for _, ln := range lines {
		b.WriteString(ln)
		b.WriteByte('\n')
	}
	return b.String()
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}
