package document

import (
	"errors"
	"fmt"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

var (
	// ErrDocumentNotFound is returned for URIs that were never opened or are closed.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrUnsupportedChange is returned for content change events of an unknown type.
	ErrUnsupportedChange = errors.New("unsupported content change")
)

type entry struct {
	languageID string
	text       string
}

// Manager keeps the text of every open document keyed by URI.
type Manager struct {
	mu   sync.Mutex
	docs map[string]entry
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{docs: make(map[string]entry)}
}

// Open stores the initial text of a document.
func (m *Manager) Open(uri, languageID, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[uri] = entry{languageID: languageID, text: text}
}

// Get returns a snapshot of the document and its language id.
func (m *Manager) Get(uri string) (Document, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.docs[uri]
	if !ok {
		return Document{}, "", fmt.Errorf("%w: %s", ErrDocumentNotFound, uri)
	}
	return New(e.text), e.languageID, nil
}

// ApplyChange applies one LSP content change, either a ranged edit or a full
// replacement, to the stored text.
func (m *Manager) ApplyChange(uri string, change any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.docs[uri]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, uri)
	}

	switch c := change.(type) {
	case protocol.TextDocumentContentChangeEvent:
		if c.Range == nil {
			e.text = c.Text
		} else {
			e.text = ApplyTextEdit(e.text, *c.Range, c.Text)
		}
	case protocol.TextDocumentContentChangeEventWhole:
		e.text = c.Text
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedChange, change)
	}

	m.docs[uri] = e
	return nil
}

// Close forgets a document.
func (m *Manager) Close(uri string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, uri)
}

// CloseAll forgets every document.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = make(map[string]entry)
}

// ApplyTextEdit splices newText into text over the LSP range r.
func ApplyTextEdit(text string, r protocol.Range, newText string) string {
	doc := New(text)
	start := doc.Offset(doc.FromUTF16(r.Start.Line, r.Start.Character))
	end := doc.Offset(doc.FromUTF16(r.End.Line, r.End.Character))
	if end < start {
		start, end = end, start
	}
	return text[:start] + newText + text[end:]
}
