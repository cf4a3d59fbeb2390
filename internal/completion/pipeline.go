// completion turns the cursor position inside a src attribute into path
// candidates from the public asset root.
package completion

import (
	"fmt"
	"os"

	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/document"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/lister"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/matcher"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/parser"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/resolver"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/scanner"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("publicpath.completion")

// Provider is what the host calls on every trigger. A nil result means no
// suggestions.
type Provider interface {
	Provide(doc document.Document, pos document.Position) []Candidate
}

// Extractor finds the partial attribute value at the cursor.
type Extractor interface {
	Extract(doc document.Document, pos document.Position) (string, bool)
}

// Settings is fixed for the lifetime of one activation.
type Settings struct {
	AssetRoot  string
	Strategy   matcher.Strategy
	ScanMode   scanner.Mode
	Attributes []string
	StrictTags []string
}

// Pipeline runs extract, resolve, list and synthesize for each request.
type Pipeline struct {
	settings  Settings
	extractor Extractor
	resolver  resolver.Resolver
	lister    *lister.Lister
}

// NewPipeline builds a Pipeline reading directories from disk under
// settings.AssetRoot.
func NewPipeline(settings Settings) (*Pipeline, error) {
	return NewPipelineFS(settings, lister.New(os.DirFS(settings.AssetRoot)))
}

// NewPipelineFS builds a Pipeline with a caller supplied Lister.
func NewPipelineFS(settings Settings, l *lister.Lister) (*Pipeline, error) {
	if len(settings.Attributes) == 0 {
		settings.Attributes = matcher.DefaultAttributes
	}
	if len(settings.StrictTags) == 0 {
		settings.StrictTags = matcher.DefaultStrictTags
	}

	var extractor Extractor
	if settings.Strategy == matcher.StrategySyntax {
		extractor = parser.NewExtractor(settings.Attributes)
	} else {
		m, err := matcher.New(settings.Strategy, settings.Attributes, settings.StrictTags)
		if err != nil {
			return nil, fmt.Errorf("failed to build matcher: %w", err)
		}
		extractor = &prefixExtractor{mode: settings.ScanMode, matcher: m}
	}

	return &Pipeline{
		settings:  settings,
		extractor: extractor,
		resolver:  resolver.New(settings.AssetRoot),
		lister:    l,
	}, nil
}

func (p *Pipeline) Settings() Settings {
	return p.settings
}

// Provide returns the candidates for pos, or nil when any stage rejects.
func (p *Pipeline) Provide(doc document.Document, pos document.Position) []Candidate {
	partial, ok := p.extractor.Extract(doc, pos)
	if !ok {
		log.Debugf("no %s attribute value at %d:%d", p.settings.Strategy, pos.Line, pos.Column)
		return nil
	}

	target, err := p.resolver.Resolve(partial)
	if err != nil {
		log.Debugf("resolve: %v", err)
		return nil
	}

	entries, err := p.lister.List(target.Rel)
	if err != nil {
		log.Debugf("list %s: %v", target.Abs, err)
		return nil
	}

	return Synthesize(entries)
}

// Close releases parser resources held by the syntax strategy.
func (p *Pipeline) Close() error {
	if c, ok := p.extractor.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// prefixExtractor scans back to the open tag and applies the attribute pattern.
type prefixExtractor struct {
	mode    scanner.Mode
	matcher *matcher.Matcher
}

func (e *prefixExtractor) Extract(doc document.Document, pos document.Position) (string, bool) {
	prefix, ok := scanner.TagPrefix(doc, pos, e.mode)
	if !ok {
		return "", false
	}
	return e.matcher.Match(prefix)
}
