package server

import (
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/completion"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/lister"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// triggerSuggest makes VS Code style clients reopen the suggestion widget.
var triggerSuggest = protocol.Command{
	Title:   "Re-trigger suggestions",
	Command: "editor.action.triggerSuggest",
}

func (s *Server) textDocumentCompletion(
	context *glsp.Context,
	params *protocol.CompletionParams,
) (any, error) {
	if s.provider == nil {
		return nil, nil
	}

	uri := params.TextDocument.URI
	doc, languageID, err := s.docs.Get(uri)
	if err != nil {
		return nil, err
	}
	if _, ok := s.languages[languageID]; !ok {
		log.Debugf("Skipping %s: language %q", uri, languageID)
		return nil, nil
	}

	pos := doc.FromUTF16(params.Position.Line, params.Position.Character)
	candidates := s.provider.Provide(doc, pos)
	if candidates == nil {
		return nil, nil
	}
	return completionItems(candidates), nil
}

func completionItems(candidates []completion.Candidate) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, len(candidates))
	for i, c := range candidates {
		kind := protocol.CompletionItemKindFile
		if c.Kind == lister.KindDirectory {
			kind = protocol.CompletionItemKindFolder
		}
		insertText := c.InsertText

		items[i] = protocol.CompletionItem{
			Label:      c.Label,
			Kind:       &kind,
			InsertText: &insertText,
		}
		if c.Continue {
			cmd := triggerSuggest
			items[i].Command = &cmd
		}
	}
	return items
}
