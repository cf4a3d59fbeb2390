package document_test

import (
	"testing"

	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDocumentLines(t *testing.T) {
	doc := document.New("<Image\n  src=\"/a\"\n/>")

	assert.Equal(t, 3, doc.LineCount())
	assert.Equal(t, "  src=\"/a\"", doc.Line(1))
	assert.Equal(t, "", doc.Line(7))
	assert.Equal(t, "<Image\n  src=\"/a\"\n/>", doc.Text())
}

func TestClamp(t *testing.T) {
	doc := document.New("ab\ncde")

	assert.Equal(t, document.Position{Line: 1, Column: 3}, doc.Clamp(document.Position{Line: 9, Column: 0}))
	assert.Equal(t, document.Position{Line: 0, Column: 2}, doc.Clamp(document.Position{Line: 0, Column: 40}))
	assert.Equal(t, document.Position{}, doc.Clamp(document.Position{Line: -1, Column: 4}))
}

func TestOffset(t *testing.T) {
	doc := document.New("ab\ncde")

	assert.Equal(t, 0, doc.Offset(document.Position{}))
	assert.Equal(t, 4, doc.Offset(document.Position{Line: 1, Column: 1}))
}

func TestFromUTF16(t *testing.T) {
	doc := document.New("é😀x")

	tests := []struct {
		name      string
		character uint32
		expected  int
	}{
		{name: "start", character: 0, expected: 0},
		{name: "after two byte rune", character: 1, expected: 2},
		{name: "middle of surrogate pair", character: 2, expected: 2},
		{name: "after surrogate pair", character: 3, expected: 6},
		{name: "past end", character: 40, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := doc.FromUTF16(0, tt.character)
			assert.Equal(t, tt.expected, pos.Column)
		})
	}
}

func TestManager(t *testing.T) {
	m := document.NewManager()
	uri := "file:///p/app/page.tsx"

	_, _, err := m.Get(uri)
	require.ErrorIs(t, err, document.ErrDocumentNotFound)

	m.Open(uri, "typescriptreact", "<Image src=\"\" />")

	err = m.ApplyChange(uri, protocol.TextDocumentContentChangeEvent{
		Range: &protocol.Range{
			Start: protocol.Position{Line: 0, Character: 12},
			End:   protocol.Position{Line: 0, Character: 12},
		},
		Text: "/images/",
	})
	require.NoError(t, err)

	doc, lang, err := m.Get(uri)
	require.NoError(t, err)
	assert.Equal(t, "typescriptreact", lang)
	assert.Equal(t, "<Image src=\"/images/\" />", doc.Text())

	require.NoError(t, m.ApplyChange(uri, protocol.TextDocumentContentChangeEventWhole{Text: "x"}))
	doc, _, err = m.Get(uri)
	require.NoError(t, err)
	assert.Equal(t, "x", doc.Text())

	require.ErrorIs(t, m.ApplyChange(uri, "bogus"), document.ErrUnsupportedChange)

	m.Close(uri)
	_, _, err = m.Get(uri)
	require.ErrorIs(t, err, document.ErrDocumentNotFound)
}

func TestApplyTextEditMultiline(t *testing.T) {
	text := "<Image\n  src=\"/im\"\n/>"
	got := document.ApplyTextEdit(text, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 10},
		End:   protocol.Position{Line: 1, Character: 10},
	}, "ages/")

	assert.Equal(t, "<Image\n  src=\"/images/\"\n/>", got)
}
