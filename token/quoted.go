package token

import (
	"encoding/hex"
	"regexp"
	"unicode"
	"unicode/utf8"
)

var bareRegexp = regexp.MustCompile(`^[a-z0-9\-._~]+$`)

// IsBare reports whether v can be written without quotes.
func IsBare(v string) bool {
	return bareRegexp.MatchString(v)
}

// EncodeString writes v bare when it can be, and quoted otherwise.
func EncodeString(v string) string {
	if IsBare(v) {
		return v
	}
	return Quote(v)
}

// Quote returns v as a double quoted literal. Quotes, backslashes and
// control characters are escaped, everything else is written as is, so
// that [ReadQuoted] gives back v.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}
