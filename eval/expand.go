package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/don-format/don/gomap"
	"github.com/signadot/don-format/don/ir"
)

// Expand returns a copy of node with $[expr] references in its leaves
// evaluated against doc. A leaf consisting of a single reference is
// replaced by the result, which may be a node; otherwise results are
// spliced into the leaf text. Within a reference, \] stands for ].
func Expand(node, doc *ir.Node, env Env) (*ir.Node, error) {
	res := ir.New()
	for k, v := range node.All() {
		if v.Node != nil {
			child, err := Expand(v.Node, doc, env)
			if err != nil {
				return nil, err
			}
			res.Set(k, ir.FromNode(child))
			continue
		}
		x, err := expandLeaf(v.String, doc, env)
		if err != nil {
			return nil, err
		}
		res.Set(k, x)
	}
	return res, nil
}

func expandLeaf(s string, doc *ir.Node, env Env) (ir.Value, error) {
	parts, err := splitRefs(s)
	if err != nil {
		return ir.Value{}, err
	}
	if len(parts) == 1 && parts[0].ref {
		v, err := Eval(doc, parts[0].text, env)
		if err != nil {
			return ir.Value{}, err
		}
		if n, ok := gomap.ToNode(v); ok {
			return ir.FromNode(n), nil
		}
		l, _ := gomap.Leaf(v)
		return ir.FromString(l), nil
	}
	b := &strings.Builder{}
	for _, p := range parts {
		if !p.ref {
			b.WriteString(p.text)
			continue
		}
		v, err := Eval(doc, p.text, env)
		if err != nil {
			return ir.Value{}, err
		}
		if l, ok := gomap.Leaf(v); ok {
			b.WriteString(l)
			continue
		}
		b.WriteString(gomap.Encode(v))
	}
	return ir.FromString(b.String()), nil
}

type part struct {
	text string
	ref  bool
}

func splitRefs(s string) ([]part, error) {
	var res []part
	for {
		i := strings.Index(s, "$[")
		if i == -1 {
			if s != "" || len(res) == 0 {
				res = append(res, part{text: s})
			}
			return res, nil
		}
		if i > 0 {
			res = append(res, part{text: s[:i]})
		}
		ref, rest, ok := cutRef(s[i+2:])
		if !ok {
			return nil, fmt.Errorf("%w: unterminated reference in %q", ErrEval, s)
		}
		res = append(res, part{text: ref, ref: true})
		s = rest
	}
}

// cutRef splits s after the first unescaped ].
func cutRef(s string) (ref, rest string, ok bool) {
	b := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s) && s[i+1] == ']':
			b.WriteByte(']')
			i++
		case c == ']':
			return b.String(), s[i+1:], true
		default:
			b.WriteByte(c)
		}
	}
	return "", "", false
}
