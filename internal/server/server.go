package server

import (
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/completion"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/config"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/document"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/project"
	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const Name = "publicpath"

// Version will be set during the build process using ldflags
var Version = "(dev) v0.0.0"

var log = commonlog.GetLogger("publicpath.server")

// Server answers completion requests for src attributes. provider stays nil
// when the workspace is not a recognised project.
type Server struct {
	handler   *protocol.Handler
	docs      *document.Manager
	config    config.Config
	project   project.Project
	pipeline  *completion.Pipeline
	provider  completion.Provider
	languages map[string]struct{}
}

// NewServer wires the LSP handler. debug enables glsp's protocol logging.
func NewServer(debug bool) *server.Server {
	ls := newServer()
	return server.NewServer(ls.handler, Name, debug)
}

func newServer() *Server {
	ls := &Server{
		docs:      document.NewManager(),
		languages: map[string]struct{}{},
	}
	ls.handler = &protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentCompletion: ls.textDocumentCompletion,
	}
	return ls
}
