package don

import (
	"testing"

	"github.com/signadot/don-format/don/ir"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{in: `[1]`, match: `[1]`, res: true},
	{in: `[0]`, match: `[1]`, res: false},
	{in: `[]`, match: `[]`, res: true},
	{in: `[1, 2]`, match: `[1]`, res: false},
	{in: `[1]`, match: `[hello]`, res: false},
	{in: `{a: b, c: d}`, match: `{a: b}`, res: true},
	{in: `{a: b}`, match: `{a: b, c: d}`, res: false},
	{in: `{a: {b: [x, y]}, c: d}`, match: `{a: {b: [x, y]}}`, res: true},
	{in: `{a: {b: [x, y]}}`, match: `{a: {b: [y, x]}}`, res: false},
	{in: `{a: [x]}`, match: `{a: x}`, res: false},
	{in: `{a: x}`, match: `{}`, res: true},
}

func TestMatch(t *testing.T) {
	for _, mt := range matchTests {
		doc := ir.FromNode(DecodeNode(mt.in))
		match := ir.FromNode(DecodeNode(mt.match))
		if got := Match(doc, match); got != mt.res {
			t.Errorf("match %s against %s: got %t", mt.match, mt.in, got)
		}
	}
}

func TestTrim(t *testing.T) {
	doc := DecodeNode(`{a: {b: c, d: e}, f: g, h: [i, j]}`)
	match := DecodeNode(`{a: {d: x}, h: {1: y}}`)
	if got := Trim(match, doc).String(); got != "[a => [d => e], h => [j]]" {
		t.Errorf("got %s", got)
	}
}
