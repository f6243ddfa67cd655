package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/don-format/don/ir"
	"github.com/signadot/don-format/don/parse"
	"github.com/signadot/don-format/don/token"

	"github.com/google/go-cmp/cmp"
)

func TestViewReader(t *testing.T) {
	cfg := &ViewConfig{MainConfig: &MainConfig{}}
	w := &bytes.Buffer{}
	in := "{a: b, c: [1, 2]}\n---\n[x\n"
	if err := viewReader(cfg, w, strings.NewReader(in)); err != nil {
		t.Fatal(err)
	}
	want := "[a => b, c => [1, 2]]\n---\n[x]\n"
	if diff := cmp.Diff(want, w.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestViewLines(t *testing.T) {
	cfg := &ViewConfig{MainConfig: &MainConfig{}, Lines: true}
	w := &bytes.Buffer{}
	in := "{a: 1}\n\n  [b, \"C\"]  \n"
	if err := viewLines(cfg, w, strings.NewReader(in)); err != nil {
		t.Fatal(err)
	}
	want := "[a => 1]\n[b, \"C\"]\n"
	if diff := cmp.Diff(want, w.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestViewLimit(t *testing.T) {
	cfg := &ViewConfig{MainConfig: &MainConfig{MaxDepth: 2}}
	err := viewReader(cfg, &bytes.Buffer{}, strings.NewReader("[[[x]]]"))
	if err == nil {
		t.Fatal("expected depth error")
	}
}

func TestMatchDocs(t *testing.T) {
	docs := []*ir.Node{
		mustParse(t, "{kind: pod, name: a, spec: {x: 1}}"),
		mustParse(t, "{kind: svc, name: b}"),
		mustParse(t, "{kind: pod, name: c, spec: {x: 2}}"),
	}
	m := mustParse(t, "{kind: pod}")
	got := matchDocs(docs, m, false)
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	trimmed := matchDocs(docs, m, true)
	var s []string
	for _, n := range trimmed {
		s = append(s, n.String())
	}
	want := []string{"[kind => pod]", "[kind => pod]"}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWriteWarnings(t *testing.T) {
	ws, err := parse.Lint([]byte("{a: b: c"))
	if err != nil {
		t.Fatal(err)
	}
	w := &bytes.Buffer{}
	if err := writeWarnings(w, "in.don", ws); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	if len(lines) != len(ws) {
		t.Fatalf("got %d lines for %d warnings", len(lines), len(ws))
	}
	for i, ln := range lines {
		if !strings.HasPrefix(ln, "in.don:1:") {
			t.Errorf("line %d: %q", i, ln)
		}
	}
	if ws[0].Kind != token.ChainedKey {
		t.Errorf("got %v, want %v", ws[0].Kind, token.ChainedKey)
	}
}

func TestCount(t *testing.T) {
	if n := count(true, false, true); n != 2 {
		t.Errorf("got %d", n)
	}
}

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}
