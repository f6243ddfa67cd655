package token

import "unicode"

// Tape is a consumable sequence of runes with push back.
//
// Consuming advances a cursor over a fixed buffer; pushing back moves the
// cursor back, so the runes handed back are always the ones last consumed.
type Tape struct {
	rs   []rune
	i    int
	warn func(Warning)
}

func NewTape(s string) *Tape {
	return &Tape{rs: []rune(s)}
}

// OnWarn installs fn to receive the tolerance warnings raised while
// lexing from t.
func (t *Tape) OnWarn(fn func(Warning)) {
	t.warn = fn
}

// Warn reports a warning of kind k at offset off.
func (t *Tape) Warn(k WarningKind, off int, text string) {
	if t.warn == nil {
		return
	}
	t.warn(Warning{Kind: k, Offset: off, Text: text})
}

// Pos returns the offset of the next rune.
func (t *Tape) Pos() int {
	return t.i
}

func (t *Tape) Len() int {
	return len(t.rs) - t.i
}

func (t *Tape) Empty() bool {
	return t.i >= len(t.rs)
}

func (t *Tape) Peek() (rune, bool) {
	return t.PeekAt(0)
}

func (t *Tape) PeekAt(n int) (rune, bool) {
	if t.i+n >= len(t.rs) {
		return 0, false
	}
	return t.rs[t.i+n], true
}

// Is reports whether the next rune is r.
func (t *Tape) Is(r rune) bool {
	c, ok := t.Peek()
	return ok && c == r
}

// Next removes and returns the next rune. ok is false at the end of the
// tape.
func (t *Tape) Next() (r rune, ok bool) {
	if t.i >= len(t.rs) {
		return 0, false
	}
	r = t.rs[t.i]
	t.i++
	return r, true
}

// Take removes and returns up to n runes.
func (t *Tape) Take(n int) []rune {
	n = min(n, t.Len())
	res := t.rs[t.i : t.i+n]
	t.i += n
	return res
}

// Back pushes the last n consumed runes back onto the tape.
func (t *Tape) Back(n int) {
	t.i = max(0, t.i-n)
}

// Replace2 replaces the next two runes with r.
func (t *Tape) Replace2(r rune) {
	if t.Len() < 2 {
		return
	}
	t.i++
	t.rs[t.i] = r
}

// SkipSpace drops leading white space.
func (t *Tape) SkipSpace() {
	for t.i < len(t.rs) && unicode.IsSpace(t.rs[t.i]) {
		t.i++
	}
}
