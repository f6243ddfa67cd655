package token

import "testing"

type lexTest struct {
	in    string
	loose bool
	out   string
	rest  string
}

func TestReadString(t *testing.T) {
	lts := []lexTest{
		{in: `abc`, out: "abc"},
		{in: `  abc  `, out: "abc"},
		{in: `a b c, d`, out: "a b c", rest: ", d"},
		{in: `a:b`, out: "a", rest: ":b"},
		{in: `a]`, out: "a", rest: "]"},
		{in: `a}`, out: "a", rest: "}"},
		{in: `a => b`, out: "a", rest: "=> b"},
		{in: `a=b`, out: "a=b"},
		{in: `a;b`, out: "a;b"},
		{in: `a[b{c`, out: "a[b{c"},
		{in: `a\,b`, out: "a,b"},
		{in: `a\:b`, out: "a:b"},
		{in: `\n x`, out: "x"},
		{in: `x\ty`, out: "x\ty"},
		{in: `\q`, out: "q"},
		{in: `ab\`, out: `ab\`},
		{in: `"quoted, string"rest`, out: "quoted, string", rest: "rest"},
		{in: `'single "q"' x`, out: `single "q"`, rest: " x"},
		{in: `" padded "`, out: " padded "},
		{in: `"abc`, out: "abc"},
		{in: `"a\"b"`, out: `a"b`},
		{in: `'it\'s'`, out: `it's`},
		{in: `, x`, rest: ", x"},
		{in: `, x`, loose: true, out: ", x"},
		{in: `]`, loose: true, out: "]"},
		{in: `a]`, loose: true, out: "a", rest: "]"},
		{in: `=>`, rest: "=>"},
		{in: `=>`, loose: true, out: "=>"},
	}
	for _, lt := range lts {
		tape := NewTape(lt.in)
		got := ReadString(tape, lt.loose)
		if got != lt.out {
			t.Errorf("ReadString(%q, %t) = %q, want %q", lt.in, lt.loose, got, lt.out)
		}
		if rest := string(tape.Take(tape.Len())); rest != lt.rest {
			t.Errorf("ReadString(%q, %t) left %q, want %q", lt.in, lt.loose, rest, lt.rest)
		}
	}
}

func TestUnicodeEscape(t *testing.T) {
	lts := []lexTest{
		{in: `"\u0041"`, out: "A"},
		{in: `"\u00e9t\u00E9"`, out: "été"},
		{in: `\u2603 man`, out: "☃ man"},
		{in: `"\uZZZZ"`, out: `\uZZZZ`},
		{in: `"\u12"`, out: `\u12`},
		{in: `"\ud83d\ude00"`, out: `\ud83d\ude00`},
		{in: `"\u0000"`, out: "\x00"},
	}
	for _, lt := range lts {
		if got := ReadString(NewTape(lt.in), false); got != lt.out {
			t.Errorf("ReadString(%q) = %q, want %q", lt.in, got, lt.out)
		}
	}
}

func TestLexWarnings(t *testing.T) {
	type warnTest struct {
		in    string
		loose bool
		kinds []WarningKind
	}
	for _, wt := range []warnTest{
		{in: `"abc`, kinds: []WarningKind{UnterminatedQuote}},
		{in: `"\uZZZZ"`, kinds: []WarningKind{BadUnicodeEscape}},
		{in: `,x`, loose: true, kinds: []WarningKind{StrayDelimiter}},
		{in: `"ok"`},
	} {
		var got []WarningKind
		tape := NewTape(wt.in)
		tape.OnWarn(func(w Warning) { got = append(got, w.Kind) })
		ReadString(tape, wt.loose)
		if len(got) != len(wt.kinds) {
			t.Errorf("%q: got warnings %v want %v", wt.in, got, wt.kinds)
			continue
		}
		for i := range got {
			if got[i] != wt.kinds[i] {
				t.Errorf("%q: got warnings %v want %v", wt.in, got, wt.kinds)
			}
		}
	}
}
