package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/don-format/don/token"
)

type parseTest struct {
	in  string
	out string
}

func TestParse(t *testing.T) {
	pts := []parseTest{
		{in: `[a, b, c]`, out: `[a, b, c]`},
		{in: `{x: 1, y: 2}`, out: `[x => 1, y => 2]`},
		{in: `{x => 1, y => 2}`, out: `[x => 1, y => 2]`},
		{in: `{0: a, foo: b, 1: c}`, out: `[a, foo => b, c]`},
		{in: `{x: [1, 2], y: {z: w}}`, out: `[x => [1, 2], y => [z => w]]`},
		{in: `{"a b": 'c\nd'}`, out: `["a b" => "c\nd"]`},
		{in: `[]`, out: `[]`},
		{in: `{}`, out: `[]`},
		{in: ``, out: `[""]`},
		{in: `a`, out: `[a]`},
		{in: `  a  `, out: `[a]`},
		{in: `[a] [b]`, out: `[[a], [b]]`},
		{in: `["a"; b]`, out: `[a, b]`},
		{in: `[a; b]`, out: `["a; b"]`},
		{in: `[A\,b]`, out: `["A,b"]`},
		{in: `{a: ,}`, out: `[a => ""]`},
		{in: `{a: {b: c}, d}`, out: `[a => [b => c], d]`},
		{in: `{"": [x]}`, out: `[[x]]`},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			node, err := ParseString(pt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := node.String(); got != pt.out {
				t.Errorf("got %s want %s", got, pt.out)
			}
		})
	}
}

func TestParseTolerance(t *testing.T) {
	pts := []parseTest{
		// unterminated quote
		{in: `"abc`, out: `[abc]`},
		// dangling key
		{in: `{a =>`, out: `[]`},
		{in: `{a: }`, out: `[]`},
		// chained keys push the first key as a value
		{in: `{a: b: c}`, out: `[a, b => c]`},
		// unclosed and mismatched containers
		{in: `[a, [b`, out: `[a, [b]]`},
		{in: `{a]`, out: `[a]`},
		{in: `[: a]`, out: `[a]`},
		{in: `[,a]`, out: `["", a]`},
		// top level delimiters start loose items
		{in: `a =>`, out: `[a, "=>"]`},
		{in: `a, b`, out: `[a, ", b"]`},
		{in: `x: 1`, out: `[x, ": 1"]`},
		{in: `]`, out: `["", "]"]`},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			node, err := ParseString(pt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := node.String(); got != pt.out {
				t.Errorf("got %s want %s", got, pt.out)
			}
		})
	}
}

func TestParseFlat(t *testing.T) {
	node, _ := ParseString(`{x: 1, y: 2}`)
	if diff := cmp.Diff(map[string]any{"x": "1", "y": "2"}, node.Flat()); diff != "" {
		t.Error(diff)
	}
	node, _ = ParseString(`[1, 2, 3]`)
	if diff := cmp.Diff([]any{"1", "2", "3"}, node.Flat()); diff != "" {
		t.Error(diff)
	}
	node, _ = ParseString(`{0: a, foo: b, 1: c}`)
	want := map[string]any{"0": "a", "foo": "b", "1": "c"}
	if diff := cmp.Diff(want, node.Flat()); diff != "" {
		t.Error(diff)
	}
}

func TestReparse(t *testing.T) {
	for _, in := range []string{
		`[a, b, c]`,
		`{a: "x y", "B": [1, {c: "\t"}], 3: z}`,
		`[é, "\u0001", "😀", ""]`,
	} {
		n, _ := ParseString(in)
		once := n.String()
		m, _ := ParseString(once)
		if diff := cmp.Diff(once, m.String()); diff != "" {
			t.Errorf("%s: %s", in, diff)
		}
	}
}

func TestLimits(t *testing.T) {
	if _, err := ParseString(`[[a]]`, MaxDepth(2)); err != nil {
		t.Error(err)
	}
	_, err := ParseString(`[[[a]]]`, MaxDepth(2))
	if !errors.Is(err, ErrTooDeep) {
		t.Errorf("got %v", err)
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("%v does not wrap ErrParse", err)
	}
	_, err = ParseString(`[a, b]`, MaxSize(3))
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("got %v", err)
	}
}

type warnTest struct {
	kind token.WarningKind
	off  int
}

func TestLint(t *testing.T) {
	ws, err := Lint([]byte("  {a: b: c"))
	if err != nil {
		t.Fatal(err)
	}
	got := make([]warnTest, len(ws))
	for i, w := range ws {
		got[i] = warnTest{kind: w.Kind, off: w.Offset}
	}
	want := []warnTest{
		{kind: token.ChainedKey, off: 7},
		{kind: token.UnclosedContainer, off: 2},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(warnTest{})); diff != "" {
		t.Error(diff)
	}

	ws, _ = Lint([]byte("[a: ]\n"))
	if len(ws) != 1 || ws[0].Kind != token.DanglingKey || ws[0].Text != "a" {
		t.Errorf("got %v", ws)
	}
	ws, _ = Lint([]byte("[x]\n\"abc"))
	if len(ws) != 1 || ws[0].Kind != token.UnterminatedQuote {
		t.Fatalf("got %v", ws)
	}
	if l, c := ws[0].Pos.LineCol(); l != 1 || c != 0 {
		t.Errorf("got line %d col %d", l, c)
	}
}
