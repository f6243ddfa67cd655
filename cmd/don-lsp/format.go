package main

import (
	"context"
	"strings"

	"github.com/signadot/don-format/don/encode"

	"go.lsp.dev/protocol"
)

// Formatting replaces the text with the canonical form of each document.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	formatted := formatDocument(doc)
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				End: newPosMap(doc.content).end(),
			},
			NewText: formatted,
		},
	}, nil
}

func formatDocument(doc *document) string {
	b := &strings.Builder{}
	for i, p := range doc.parts {
		if i > 0 {
			b.WriteString("---\n")
		}
		encode.Encode(p.node, b)
	}
	return b.String()
}
