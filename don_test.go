package don

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/don-format/don/ir"
)

func TestBareRoundTrip(t *testing.T) {
	for _, s := range []string{"a", "0", "x-y.z_w~", "hello123"} {
		n := ir.New()
		n.Push(ir.FromString(s))
		text := n.String()
		if text != "["+s+"]" {
			t.Errorf("%s: emitted %s", s, text)
		}
		if diff := cmp.Diff([]any{s}, Decode(text)); diff != "" {
			t.Error(diff)
		}
	}
}

func TestQuotedRoundTrip(t *testing.T) {
	for _, s := range []string{
		"Hello",
		"a b",
		"tab\there",
		"quote \" and \\ back",
		"line\nbreak\r\x00\x1f\x7f",
		"é",
		"snow ☃",
		"emoji 😀 𝄞",
		"[x, y: z]",
		"a => b",
		"",
	} {
		got := Decode(Encode([]string{s}))
		if diff := cmp.Diff([]any{s}, got); diff != "" {
			t.Errorf("%q: %s", s, diff)
		}
	}
}

func TestPositional(t *testing.T) {
	n := ir.New()
	for _, s := range []string{"a", "b", "c"} {
		n.Push(ir.FromString(s))
	}
	if got := n.String(); got != "[a, b, c]" {
		t.Errorf("got %s", got)
	}
	if got := DecodeNode("[a, b, c]").String(); got != "[a, b, c]" {
		t.Errorf("got %s", got)
	}
}

func TestExplicitKeys(t *testing.T) {
	if diff := cmp.Diff(map[string]any{"x": "1", "y": "2"}, Decode("{x: 1, y: 2}")); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]any{"1", "2", "3"}, Decode("[1, 2, 3]")); diff != "" {
		t.Error(diff)
	}
	mixed := Decode("{0: a, foo: b, 1: c}")
	if _, ok := mixed.(map[string]any); !ok {
		t.Errorf("mixed keys flattened to %T", mixed)
	}
}

func TestTolerance(t *testing.T) {
	if diff := cmp.Diff([]any{"abc"}, Decode(`"abc`)); diff != "" {
		t.Error(diff)
	}
	for _, in := range []string{"=>", "a =>", "{a =>", "[a, b =>"} {
		_ = DecodeNode(in).String()
	}
}

func TestCycle(t *testing.T) {
	m := map[string]any{"name": "n"}
	m["self"] = m
	got := Encode(m)
	if strings.Contains(got, "self") {
		t.Errorf("self reference kept: %s", got)
	}
	if got != "[name => n]" {
		t.Errorf("got %s", got)
	}
}

func TestEncodeDecode(t *testing.T) {
	in := map[string]any{
		"name": "Alice Smith",
		"tags": []string{"a", "B"},
		"n":    3,
	}
	want := map[string]any{
		"name": "Alice Smith",
		"tags": []any{"a", "B"},
		"n":    "3",
	}
	if diff := cmp.Diff(want, Decode(Encode(in))); diff != "" {
		t.Error(diff)
	}
}
