package token

import (
	"strconv"
	"unicode/utf8"
)

// Unescape decodes the escape introduced by c, the rune following a
// backslash. The unicode escape reads its four hex digits from t. ok is
// false when c does not introduce a known escape, in which case callers use
// c literally.
func Unescape(c rune, t *Tape) (s string, ok bool) {
	switch c {
	case 'b':
		return "\b", true
	case 'f':
		return "\f", true
	case 'n':
		return "\n", true
	case 'r':
		return "\r", true
	case 't':
		return "\t", true
	case 'u':
		return unescapeUnicode(t), true
	}
	return "", false
}

// unescapeUnicode decodes \uXXXX. Anything that is not four hex digits
// naming a scalar value is left on the tape and decodes to `\u`.
func unescapeUnicode(t *Tape) string {
	start := t.Pos() - 2
	four := t.Take(4)
	if len(four) == 4 {
		cp, err := strconv.ParseUint(string(four), 16, 32)
		if err == nil && utf8.ValidRune(rune(cp)) {
			return string(rune(cp))
		}
	}
	t.Back(len(four))
	t.Warn(BadUnicodeEscape, start, `\u`+string(four))
	return `\u`
}
