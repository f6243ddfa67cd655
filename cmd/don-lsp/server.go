package main

import (
	"context"

	"github.com/signadot/don-format/don/parse"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// maxDepth bounds nesting of the documents the server reads.
const maxDepth = 10000

type Server struct {
	client protocol.Client
	docs   *documentStore
	log    *zap.Logger
}

func NewServer(client protocol.Client, log *zap.Logger) *Server {
	return &Server{
		client: client,
		docs:   &documentStore{docs: make(map[string]*document)},
		log:    log,
	}
}

func (s *Server) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.MaxDepth(maxDepth)}
}

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s.log.Info("initialize", zap.String("client", clientName(params)))
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			Change:    protocol.TextDocumentSyncKindFull,
			OpenClose: true,
		},
		HoverProvider:              true,
		DocumentFormattingProvider: true,
	}
	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}, nil
}

func clientName(params *protocol.InitializeParams) string {
	if params == nil || params.ClientInfo == nil {
		return ""
	}
	return params.ClientInfo.Name
}

func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutdown")
	return nil
}

func (s *Server) Exit(ctx context.Context) error {
	return nil
}

func (s *Server) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	return nil
}
