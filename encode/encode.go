package encode

import (
	"io"
	"strings"

	"github.com/signadot/don-format/don/debug"
	"github.com/signadot/don-format/don/ir"
	"github.com/signadot/don-format/don/token"
)

type EncState struct {
	depth, indent int
	pretty        bool

	Color ir.Painter
}

// Encode writes node followed by a newline to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode %v pretty=%t", node, es.pretty)
	}
	if !es.pretty {
		return writeString(w, node.Render(es.Color)+"\n")
	}
	b := &strings.Builder{}
	encodePretty(node, b, es)
	b.WriteByte('\n')
	return writeString(w, b.String())
}

func encodePretty(node *ir.Node, b *strings.Builder, es *EncState) {
	b.WriteString(es.paint(ir.BracketPart, "["))
	if node.Len() == 0 {
		b.WriteString(es.paint(ir.BracketPart, "]"))
		return
	}
	es.depth++
	i := 0
	for it := range node.Items() {
		if i > 0 {
			b.WriteString(es.paint(ir.SepPart, ","))
		}
		i++
		writeNL(b, es)
		if !it.Positional {
			b.WriteString(es.paint(ir.KeyPart, token.EncodeString(it.Key)))
			b.WriteString(es.paint(ir.SepPart, " => "))
		}
		if it.Value.Node != nil {
			encodePretty(it.Value.Node, b, es)
			continue
		}
		b.WriteString(es.paint(ir.ValuePart, token.EncodeString(it.Value.String)))
	}
	es.depth--
	writeNL(b, es)
	b.WriteString(es.paint(ir.BracketPart, "]"))
}

func (es *EncState) paint(p ir.Part, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(p, s)
}

func writeNL(b *strings.Builder, es *EncState) {
	b.WriteString("\n" + strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
