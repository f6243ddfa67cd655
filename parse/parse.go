package parse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/don-format/don/debug"
	"github.com/signadot/don-format/don/ir"
	"github.com/signadot/don-format/don/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxSize > 0 && len(d) > pOpts.maxSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(d), pOpts.maxSize)
	}
	src := string(d)
	tape := token.NewTape(strings.TrimSpace(src))
	if pOpts.warn != nil {
		lead := utf8.RuneCountInString(src) - utf8.RuneCountInString(strings.TrimLeftFunc(src, unicode.IsSpace))
		doc := token.NewPosDoc(src)
		tape.OnWarn(func(w token.Warning) {
			w.Offset += lead
			w.Pos = doc.Pos(w.Offset)
			pOpts.warn(w)
		})
	}
	p := &parser{tape: tape, opts: pOpts}
	res, err := p.read()
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %v", res)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// Lint returns the tolerance warnings raised while reading d.
func Lint(d []byte, opts ...ParseOption) ([]token.Warning, error) {
	var res []token.Warning
	opts = append(opts, ParseWarnings(func(w token.Warning) {
		res = append(res, w)
	}))
	if _, err := Parse(d, opts...); err != nil {
		return nil, err
	}
	return res, nil
}

type parser struct {
	tape  *token.Tape
	opts  *parseOpts
	depth int
}

func (p *parser) read() (*ir.Node, error) {
	t := p.tape
	item, err := p.readItem(false)
	if err != nil {
		return nil, err
	}
	t.SkipSpace()
	if t.Empty() && item.Node != nil {
		return item.Node, nil
	}
	res := ir.New()
	for {
		res.Push(item)
		t.SkipSpace()
		if t.Empty() {
			return res, nil
		}
		item, err = p.readItem(true)
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) readItem(loose bool) (ir.Value, error) {
	t := p.tape
	t.SkipSpace()
	if t.Is('{') || t.Is('[') {
		n, err := p.readObject()
		if err != nil {
			return ir.Value{}, err
		}
		return ir.FromNode(n), nil
	}
	s := token.ReadString(t, loose)
	if debug.Lex() {
		debug.Logf("lex %q at %d", s, t.Pos())
	}
	return ir.FromString(s), nil
}

func (p *parser) readObject() (*ir.Node, error) {
	t := p.tape
	p.depth++
	defer func() { p.depth-- }()
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return nil, fmt.Errorf("%w: offset %d, limit %d", ErrTooDeep, t.Pos(), p.opts.maxDepth)
	}
	start := t.Pos()
	open, _ := t.Next()
	res := ir.New()
	key := ""
	for {
		t.SkipSpace()
		if t.Empty() || t.Is(']') || t.Is('}') {
			break
		}
		item, err := p.readItem(false)
		if err != nil {
			return nil, err
		}
		t.SkipSpace()
		if item.Node != nil {
			// containers are never keys
			p.setOrPush(res, key, item)
			key = ""
			p.skipSep()
			t.SkipSpace()
			continue
		}
		if t.Is('=') {
			if r, ok := t.PeekAt(1); ok && r == '>' {
				t.Replace2(':')
			}
		}
		if t.Is(':') {
			if key != "" {
				t.Warn(token.ChainedKey, t.Pos(), key)
				res.Push(ir.FromString(key))
			}
			key = item.String
			t.Next()
			continue
		}
		p.setOrPush(res, key, item)
		key = ""
		t.SkipSpace()
		p.skipSep()
	}
	if key != "" {
		t.Warn(token.DanglingKey, t.Pos(), key)
	}
	if _, ok := t.Next(); !ok {
		t.Warn(token.UnclosedContainer, start, string(open))
	}
	return res, nil
}

// setOrPush sets v under key, or pushes it when no key is pending.
// The empty key counts as no key.
func (p *parser) setOrPush(n *ir.Node, key string, v ir.Value) {
	if key != "" {
		n.Set(key, v)
		return
	}
	n.Push(v)
}

func (p *parser) skipSep() {
	if p.tape.Is(',') || p.tape.Is(';') {
		p.tape.Next()
	}
}
