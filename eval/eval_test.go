package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/don-format/don/parse"
)

type evalTest struct {
	src string
	out string
}

func TestEvalString(t *testing.T) {
	doc, _ := parse.ParseString(`{name: alice, tags: [a, b], n: 3, m: {x: y}}`)
	ets := []evalTest{
		{src: `doc.name`, out: `alice`},
		{src: `doc.name == "alice"`, out: `true`},
		{src: `len(doc.tags)`, out: `2`},
		{src: `getpath("tags.1")`, out: `b`},
		{src: `getpath("m")`, out: `[x => y]`},
		{src: `getpath("missing")`, out: `null`},
		{src: `keypath("")`, out: `[name, tags, n, m]`},
		{src: `islist("tags")`, out: `true`},
		{src: `islist("m")`, out: `false`},
		{src: `doc.n == "3"`, out: `true`},
		{src: `greeting + " " + doc.name`, out: `"hi alice"`},
	}
	for _, et := range ets {
		t.Run(et.src, func(t *testing.T) {
			got, err := EvalString(doc, et.src, Env{"greeting": "hi"})
			if err != nil {
				t.Fatal(err)
			}
			if got != et.out {
				t.Errorf("got %s want %s", got, et.out)
			}
		})
	}
}

func TestEvalError(t *testing.T) {
	doc, _ := parse.ParseString(`[a]`)
	if _, err := Eval(doc, `1 +`, nil); !errors.Is(err, ErrEval) {
		t.Errorf("got %v", err)
	}
}

func TestExpand(t *testing.T) {
	doc, _ := parse.ParseString(`{name: alice, tags: [a, b]}`)
	tmpl, _ := parse.ParseString(`{who: "$[doc.name]", all: "$[doc.tags]", msg: "hello $[doc.name], $[len(doc.tags)] tags", plain: x}`)
	got, err := Expand(tmpl, doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := `[who => alice, all => [a, b], msg => "hello alice, 2 tags", plain => x]`
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Error(diff)
	}
	bad, _ := parse.ParseString(`["$[doc"]`)
	if _, err := Expand(bad, doc, nil); !errors.Is(err, ErrEval) {
		t.Errorf("got %v", err)
	}
}

func TestSplitRefs(t *testing.T) {
	parts, err := splitRefs(`a $[x\]] b`)
	if err != nil {
		t.Fatal(err)
	}
	want := []part{{text: "a "}, {text: "x]", ref: true}, {text: " b"}}
	if diff := cmp.Diff(want, parts, cmp.AllowUnexported(part{})); diff != "" {
		t.Error(diff)
	}
}

func TestLoadEnv(t *testing.T) {
	env, err := loadEnv(`{region: eu, zones: [a, b]}`)
	if err != nil {
		t.Fatal(err)
	}
	doc, _ := parse.ParseString(`[x]`)
	got, err := EvalString(doc, `region + "-" + zones[1]`, env)
	if err != nil {
		t.Fatal(err)
	}
	if got != "eu-b" {
		t.Errorf("got %s", got)
	}
	if env, err := loadEnv(""); env != nil || err != nil {
		t.Errorf("got %v, %v", env, err)
	}
	if _, err := loadEnv(`[a, b]`); !errors.Is(err, ErrEval) {
		t.Errorf("got %v", err)
	}
}
