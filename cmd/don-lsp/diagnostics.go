package main

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) error {
	diags := diagnostics(doc)
	s.log.Debug("diagnostics", zap.String("uri", doc.uri), zap.Int("count", len(diags)))
	var version uint32
	if doc.version > 0 {
		version = uint32(doc.version)
	}
	return s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Version:     version,
		Diagnostics: diags,
	})
}

// diagnostics reports each tolerance warning as a one character warning
// range, and a limit error as an error on the first line.
func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	pm := newPosMap(doc.content)
	for _, w := range doc.warnings {
		start := pm.position(w.Offset)
		end := pm.position(w.Offset + 1)
		msg := w.Kind.String()
		if w.Text != "" {
			msg += ": " + w.Text
		}
		res = append(res, protocol.Diagnostic{
			Range:    protocol.Range{Start: start, End: end},
			Severity: protocol.DiagnosticSeverityWarning,
			Source:   lsName,
			Message:  msg,
		})
	}
	if doc.err != nil {
		res = append(res, protocol.Diagnostic{
			Range:    protocol.Range{End: protocol.Position{Character: 1}},
			Severity: protocol.DiagnosticSeverityError,
			Source:   lsName,
			Message:  doc.err.Error(),
		})
	}
	return res
}
