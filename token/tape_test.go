package token

import "testing"

func TestTape(t *testing.T) {
	tape := NewTape("ab=>c")
	if r, ok := tape.Next(); !ok || r != 'a' {
		t.Fatalf("Next = %q %t", r, ok)
	}
	tape.Back(1)
	if r, _ := tape.Peek(); r != 'a' {
		t.Fatalf("after Back, Peek = %q", r)
	}
	if got := string(tape.Take(2)); got != "ab" {
		t.Fatalf("Take(2) = %q", got)
	}
	tape.Replace2(':')
	if got := string(tape.Take(10)); got != ":c" {
		t.Fatalf("after Replace2, rest = %q", got)
	}
	if !tape.Empty() {
		t.Fatal("expected empty tape")
	}
	if _, ok := tape.Next(); ok {
		t.Fatal("Next on empty tape succeeded")
	}
}

func TestSkipSpace(t *testing.T) {
	tape := NewTape(" \t\n x ")
	tape.SkipSpace()
	if !tape.Is('x') {
		t.Fatalf("expected x, at %d", tape.Pos())
	}
}

func TestPosDoc(t *testing.T) {
	d := NewPosDoc("ab\ncd\n\nef")
	for off, want := range map[int][2]int{
		0: {0, 0},
		1: {0, 1},
		3: {1, 0},
		4: {1, 1},
		7: {3, 0},
		8: {3, 1},
	} {
		l, c := d.LineCol(off)
		if l != want[0] || c != want[1] {
			t.Errorf("LineCol(%d) = %d,%d want %d,%d", off, l, c, want[0], want[1])
		}
	}
}
