// parser finds JSX attribute values in a buffer using the tree-sitter TSX grammar.
package parser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/document"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/tliron/commonlog"
)

var (
	log  = commonlog.GetLogger("publicpath.parser")
	lang = tsx.GetLanguage()
)

const (
	attributeNode = "jsx_attribute"
	stringNode    = "string"
)

// Extractor returns the value typed so far inside a JSX attribute string.
// It needs a syntactically complete string; unterminated values are left to
// the prefix matcher.
type Extractor struct {
	attributes map[string]struct{}
	parser     *sitter.Parser
	mu         sync.Mutex
}

// NewExtractor creates an Extractor for the given attribute names.
func NewExtractor(attributes []string) *Extractor {
	set := make(map[string]struct{}, len(attributes))
	for _, a := range attributes {
		set[a] = struct{}{}
	}
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &Extractor{attributes: set, parser: p}
}

// Extract parses doc and reports the partial attribute value ending at pos.
func (e *Extractor) Extract(doc document.Document, pos document.Position) (string, bool) {
	pos = doc.Clamp(pos)
	source := []byte(doc.Text())

	tree, err := e.parse(source)
	if err != nil {
		log.Warningf("tree-sitter parse failed: %v", err)
		return "", false
	}
	defer tree.Close()

	point := sitter.Point{Row: uint32(pos.Line), Column: uint32(pos.Column)}
	node := tree.RootNode().NamedDescendantForPointRange(point, point)

	for n := node; n != nil; n = n.Parent() {
		if n.Type() != stringNode {
			continue
		}
		attr := n.Parent()
		if attr == nil || attr.Type() != attributeNode || attr.NamedChildCount() == 0 {
			return "", false
		}
		if _, ok := e.attributes[attr.NamedChild(0).Content(source)]; !ok {
			return "", false
		}
		return valueAt(n, source, uint32(doc.Offset(pos)))
	}
	return "", false
}

func (e *Extractor) parse(source []byte) (*sitter.Tree, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.parser == nil {
		return nil, fmt.Errorf("extractor is closed")
	}
	return e.parser.ParseCtx(context.Background(), nil, source)
}

// valueAt slices the string node from after its opening quote to offset.
func valueAt(n *sitter.Node, source []byte, offset uint32) (string, bool) {
	start, end := n.StartByte(), n.EndByte()
	if end <= start || offset <= start || offset > end {
		return "", false
	}

	quote := source[start]
	if quote != '"' && quote != '\'' {
		return "", false
	}
	closed := end-start >= 2 && source[end-1] == quote
	if closed && offset == end {
		// Cursor sits after the closing quote.
		return "", false
	}

	value := string(source[start+1 : offset])
	if strings.ContainsAny(value, `"'`) {
		return "", false
	}
	return value, true
}

// Close frees the underlying tree-sitter parser.
func (e *Extractor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.parser != nil {
		e.parser.Close()
		e.parser = nil
	}
	return nil
}
