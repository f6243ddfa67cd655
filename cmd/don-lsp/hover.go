package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/don-format/don/encode"
	"github.com/signadot/don-format/don/ir"

	"go.lsp.dev/protocol"
)

const maxHover = 2000

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	off := newPosMap(doc.content).offset(params.Position)
	p := doc.partAt(off)
	if p == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(p.node),
		},
	}, nil
}

func hoverText(node *ir.Node) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("**Type:** %s", shape(node)))
	canon := encode.MustString(node, encode.EncodePretty(true))
	if r := []rune(canon); len(r) > maxHover {
		canon = string(r[:maxHover]) + "\n..."
	}
	parts = append(parts, "```\n"+canon+"\n```")
	return strings.Join(parts, "\n\n")
}

func shape(node *ir.Node) string {
	n := node.Len()
	if node.IsArray() {
		return fmt.Sprintf("list with %d elements", n)
	}
	return fmt.Sprintf("map with %d keys", n)
}
