package server

import (
	"fmt"

	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/completion"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/config"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/project"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	cfg, err := config.Load(params.InitializationOptions)
	if err != nil {
		return nil, err
	}
	s.config = cfg
	for _, lang := range cfg.Languages {
		s.languages[lang] = struct{}{}
	}
	log.Infof("Config: %+v", cfg)

	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = nil

	root, ok := workspaceRoot(params)
	if !ok {
		log.Notice("No workspace root; path completion disabled")
		return initializeResult(capabilities), nil
	}

	p, err := project.Detect(root, cfg.PublicDir, cfg.ConfigFiles)
	if err != nil {
		log.Noticef("Path completion disabled: %v", err)
		return initializeResult(capabilities), nil
	}

	settings, err := cfg.Settings(p.AssetRoot)
	if err != nil {
		return nil, err
	}
	pipeline, err := completion.NewPipeline(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to build completion pipeline: %w", err)
	}

	s.project = p
	s.pipeline = pipeline
	s.provider = pipeline
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: cfg.TriggerCharacters,
	}
	log.Infof("Completing %s from %s", cfg.Attributes, p.AssetRoot)

	return initializeResult(capabilities), nil
}

func initializeResult(capabilities protocol.ServerCapabilities) protocol.InitializeResult {
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &Version,
		},
	}
}

func (s *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	log.Info("Client initialized.")
	return nil
}

func (s *Server) shutdown(context *glsp.Context) error {
	s.docs.CloseAll()
	if s.pipeline != nil {
		return s.pipeline.Close()
	}
	return nil
}

func (s *Server) setTrace(
	context *glsp.Context,
	params *protocol.SetTraceParams,
) error {
	protocol.SetTraceValue(params.Value)
	return nil
}
