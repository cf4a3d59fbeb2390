package server

import (
	"net/url"
	"path/filepath"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// workspaceRoot picks the first workspace folder, then rootUri, then the
// deprecated rootPath.
func workspaceRoot(params *protocol.InitializeParams) (string, bool) {
	if len(params.WorkspaceFolders) > 0 {
		if root, ok := URIToPath(params.WorkspaceFolders[0].URI); ok {
			return root, true
		}
	}
	if params.RootURI != nil {
		if root, ok := URIToPath(*params.RootURI); ok {
			return root, true
		}
	}
	if params.RootPath != nil && *params.RootPath != "" {
		return filepath.Clean(*params.RootPath), true
	}
	return "", false
}

// URIToPath converts a file:// URI to a filesystem path.
func URIToPath(uri string) (string, bool) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" || u.Path == "" {
		return "", false
	}
	return filepath.FromSlash(u.Path), true
}
