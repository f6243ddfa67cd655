package token

import "fmt"

// WarningKind identifies the tolerance rule that absorbed some input.
type WarningKind int8

const (
	UnterminatedQuote WarningKind = iota
	BadUnicodeEscape
	ChainedKey
	DanglingKey
	UnclosedContainer
	StrayDelimiter
)

func (k WarningKind) String() string {
	switch k {
	case UnterminatedQuote:
		return "unterminated quote"
	case BadUnicodeEscape:
		return "bad unicode escape"
	case ChainedKey:
		return "key without value"
	case DanglingKey:
		return "dangling key"
	case UnclosedContainer:
		return "unclosed container"
	case StrayDelimiter:
		return "stray delimiter"
	default:
		return fmt.Sprintf("WarningKind(%d)", int8(k))
	}
}

// Warning records a place where input was accepted by a tolerance rule
// rather than by the grammar.
type Warning struct {
	Kind   WarningKind
	Offset int
	Pos    *Pos
	Text   string
}

func (w Warning) String() string {
	msg := w.Kind.String()
	if w.Text != "" {
		msg += fmt.Sprintf(" %q", w.Text)
	}
	if w.Pos == nil {
		return fmt.Sprintf("%s at offset %d", msg, w.Offset)
	}
	line, col := w.Pos.LineCol()
	return fmt.Sprintf("%d:%d: %s", line+1, col+1, msg)
}
