package server

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	doc := params.TextDocument
	log.Debugf("DidOpen: %s (%s)", doc.URI, doc.LanguageID)
	s.docs.Open(doc.URI, doc.LanguageID, doc.Text)
	return nil
}

func (s *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	for _, change := range params.ContentChanges {
		if err := s.docs.ApplyChange(uri, change); err != nil {
			log.Errorf("DidChange %s: %v", uri, err)
			return err
		}
	}
	return nil
}

func (s *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	log.Debugf("Closed %s", params.TextDocument.URI)
	s.docs.Close(params.TextDocument.URI)
	return nil
}
