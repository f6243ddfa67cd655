package token

import "strings"

func IsQuote(r rune) bool {
	return r == '"' || r == '\''
}

// ReadQuoted reads a string quoted with the next rune of t, which should be
// ' or ". The content is kept as is apart from escapes. Running out of
// tape before the closing quote ends the string.
func ReadQuoted(t *Tape) string {
	start := t.Pos()
	ec, ok := t.Next()
	if !ok {
		ec = '"'
	}
	b := &strings.Builder{}
	for {
		c, ok := t.Next()
		if !ok {
			t.Warn(UnterminatedQuote, start, string(ec))
			break
		}
		if c == ec {
			break
		}
		if c == '\\' {
			readEscape(t, b)
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// ReadString reads a quoted string, or a bare string running up to the
// next delimiter: one of `,:]}` or `=` followed by `>`. The delimiter is
// left on the tape. If loose is set and nothing has been read when a
// delimiter is found, the delimiter is read as part of the string instead.
//
// Bare strings are trimmed of surrounding white space.
func ReadString(t *Tape, loose bool) string {
	if r, ok := t.Peek(); ok && IsQuote(r) {
		return ReadQuoted(t)
	}
	b := &strings.Builder{}
	for {
		c, ok := t.Next()
		if !ok {
			break
		}
		switch {
		case c == '\\':
			readEscape(t, b)
		case !isDelim(c, t):
			b.WriteRune(c)
		case loose && b.Len() == 0:
			t.Warn(StrayDelimiter, t.Pos()-1, string(c))
			b.WriteRune(c)
		default:
			t.Back(1)
			return strings.TrimSpace(b.String())
		}
	}
	return strings.TrimSpace(b.String())
}

func isDelim(c rune, t *Tape) bool {
	switch c {
	case ',', ':', ']', '}':
		return true
	case '=':
		return t.Is('>')
	}
	return false
}

func readEscape(t *Tape, b *strings.Builder) {
	c, ok := t.Next()
	if !ok {
		c = '\\'
	}
	if s, ok := Unescape(c, t); ok {
		b.WriteString(s)
		return
	}
	b.WriteRune(c)
}
