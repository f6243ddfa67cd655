package main

import (
	"context"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/signadot/don-format/don/ir"
	"github.com/signadot/don-format/don/parse"
	"github.com/signadot/don-format/don/token"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const docSep = "\n---\n"

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is the last full text of an open file. A file holds one or
// more DON documents separated by "---" lines.
type document struct {
	uri      string
	content  string
	version  int32
	parts    []part
	warnings []token.Warning
	err      error
}

// part is one DON document of a file, with the rune offset at which its
// text starts.
type part struct {
	start int
	text  string
	node  *ir.Node
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(doc *document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[doc.uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// newDocument reads each part of content, collecting tolerance warnings
// with offsets relative to content. Reading stops at the first part that
// exceeds a limit.
func newDocument(uri, content string, version int32, opts ...parse.ParseOption) *document {
	doc := &document{uri: uri, content: content, version: version}
	start := 0
	for _, text := range strings.Split(content, docSep) {
		base := start
		pOpts := append(slices.Clip(opts), parse.ParseWarnings(func(w token.Warning) {
			w.Offset += base
			w.Pos = nil
			doc.warnings = append(doc.warnings, w)
		}))
		node, err := parse.ParseString(text, pOpts...)
		if err != nil {
			doc.err = err
			return doc
		}
		doc.parts = append(doc.parts, part{start: start, text: text, node: node})
		start += utf8.RuneCountInString(text) + utf8.RuneCountInString(docSep)
	}
	return doc
}

// partAt returns the part containing the rune offset off.
func (d *document) partAt(off int) *part {
	for i := len(d.parts) - 1; i >= 0; i-- {
		if d.parts[i].start <= off {
			return &d.parts[i]
		}
	}
	return nil
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.log.Debug("open", zap.String("uri", uri), zap.Int32("version", params.TextDocument.Version))
	doc := newDocument(uri, params.TextDocument.Text, params.TextDocument.Version, s.parseOpts()...)
	s.docs.put(doc)
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if len(params.ContentChanges) == 0 || s.docs.get(uri) == nil {
		return nil
	}
	// full sync: the last change holds the whole text
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.log.Debug("change", zap.String("uri", uri), zap.Int32("version", params.TextDocument.Version))
	doc := newDocument(uri, text, params.TextDocument.Version, s.parseOpts()...)
	s.docs.put(doc)
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	return s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	return nil
}
