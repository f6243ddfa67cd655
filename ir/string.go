package ir

import (
	"strings"

	"github.com/signadot/don-format/don/token"
)

// Part identifies a piece of rendered DON text.
type Part int

const (
	BracketPart Part = iota
	KeyPart
	ValuePart
	SepPart
)

// Painter decorates a rendered piece of text, for example with color.
type Painter func(Part, string) string

// String renders n as DON text. The output is always bracketed with [ ]
// and lists entries in insertion order; entries continuing the positional
// numbering are written as bare values, others as `key => value`.
func (n *Node) String() string {
	return n.Render(nil)
}

// Render is String with each piece of output passed through paint.
func (n *Node) Render(paint Painter) string {
	b := &strings.Builder{}
	n.render(b, paint)
	return b.String()
}

func (n *Node) render(b *strings.Builder, paint Painter) {
	b.WriteString(painted(paint, BracketPart, "["))
	i := 0
	for it := range n.Items() {
		if i > 0 {
			b.WriteString(painted(paint, SepPart, ", "))
		}
		i++
		if !it.Positional {
			b.WriteString(painted(paint, KeyPart, token.EncodeString(it.Key)))
			b.WriteString(painted(paint, SepPart, " => "))
		}
		if it.Value.Node != nil {
			it.Value.Node.render(b, paint)
			continue
		}
		b.WriteString(painted(paint, ValuePart, token.EncodeString(it.Value.String)))
	}
	b.WriteString(painted(paint, BracketPart, "]"))
}

func painted(paint Painter, p Part, s string) string {
	if paint == nil {
		return s
	}
	return paint(p, s)
}
