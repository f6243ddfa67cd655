package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func list(vs ...string) *Node {
	n := New()
	for _, v := range vs {
		n.Push(FromString(v))
	}
	return n
}

func TestPush(t *testing.T) {
	n := list("a", "b", "c")
	if diff := cmp.Diff([]string{"0", "1", "2"}, n.Keys()); diff != "" {
		t.Error(diff)
	}
	if !n.IsArray() {
		t.Error("pushed node should be array like")
	}
	if got := n.String(); got != "[a, b, c]" {
		t.Errorf("got %q", got)
	}
}

func TestNextKeyFillsGaps(t *testing.T) {
	n := New()
	n.SetString("1", "b")
	n.SetString("x", "y")
	if got := n.NextKey(); got != "0" {
		t.Fatalf("next key %q", got)
	}
	n.Push(FromString("a"))
	if got := n.NextKey(); got != "2" {
		t.Errorf("next key %q", got)
	}
}

func TestSetKeepsPosition(t *testing.T) {
	n := New()
	n.SetString("a", "1")
	n.SetString("b", "2")
	n.SetString("a", "3")
	if diff := cmp.Diff([]string{"a", "b"}, n.Keys()); diff != "" {
		t.Error(diff)
	}
	v, ok := n.Get("a")
	if !ok || v.String != "3" {
		t.Errorf("got %v %v", v, ok)
	}
}

func TestIsArray(t *testing.T) {
	mixed := New()
	mixed.SetString("0", "a")
	mixed.SetString("foo", "b")
	mixed.SetString("1", "c")
	if mixed.IsArray() {
		t.Error("mixed keys should not be array like")
	}
	if !New().IsArray() {
		t.Error("empty node should be array like")
	}
	rev := New()
	rev.SetString("1", "b")
	rev.SetString("0", "a")
	if !rev.IsArray() {
		t.Error("index keys in any order are array like")
	}
}

func TestString(t *testing.T) {
	n := New()
	n.Push(FromString("a"))
	n.SetString("Name", "Bob Smith")
	n.SetString("2", "skip")
	n.Push(FromString("b"))
	n.Push(FromNode(list("x")))
	got := n.String()
	want := `[a, "Name" => "Bob Smith", 2 => skip, b, 3 => [x]]`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestRender(t *testing.T) {
	n := New()
	n.SetString("k", "v")
	got := n.Render(func(p Part, s string) string {
		if p == KeyPart {
			return "<" + s + ">"
		}
		return s
	})
	if got != "[<k> => v]" {
		t.Errorf("got %s", got)
	}
}

func TestClone(t *testing.T) {
	inner := list("x")
	n := New()
	n.Set("in", FromNode(inner))
	c := n.Clone()
	inner.Push(FromString("y"))
	if got := c.String(); got != "[in => [x]]" {
		t.Errorf("clone shares children: %s", got)
	}
}

func TestFlat(t *testing.T) {
	n := New()
	n.SetString("x", "1")
	n.Set("ys", FromNode(list("a", "b")))
	want := map[string]any{"x": "1", "ys": []any{"a", "b"}}
	if diff := cmp.Diff(want, n.Flat()); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]any{}, New().Flat()); diff != "" {
		t.Error(diff)
	}
}

func TestGetPath(t *testing.T) {
	n := New()
	n.Set("a", FromNode(list("x", "y")))
	v, ok := n.GetPath("a.1")
	if !ok || v.String != "y" {
		t.Errorf("got %v %v", v, ok)
	}
	if _, ok := n.GetPath("a.1.z"); ok {
		t.Error("path through leaf")
	}
	if v, _ := n.GetPath(""); v.Node != n {
		t.Error("empty path")
	}
}
