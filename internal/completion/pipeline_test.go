package completion_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/completion"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/document"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/lister"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/matcher"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// publicDir creates public/images/{a.png,icons/} under a temp dir.
func publicDir(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images", "icons"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "images", "a.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "robots.txt"), []byte(""), 0o644))
	return root
}

func newPipeline(t *testing.T, settings completion.Settings) *completion.Pipeline {
	t.Helper()
	p, err := completion.NewPipeline(settings)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func endOf(doc document.Document) document.Position {
	last := doc.LineCount() - 1
	return document.Position{Line: last, Column: len(doc.Line(last))}
}

func TestProvideImagesDirectory(t *testing.T) {
	p := newPipeline(t, completion.Settings{AssetRoot: publicDir(t)})
	doc := document.New(`<Image src="/images/`)

	got := p.Provide(doc, endOf(doc))
	assert.ElementsMatch(t, []completion.Candidate{
		{Label: "a.png", Kind: lister.KindFile, InsertText: "a.png"},
		{Label: "icons/", Kind: lister.KindDirectory, InsertText: "icons/", Continue: true},
	}, got)
}

func TestProvideAssetRoot(t *testing.T) {
	p := newPipeline(t, completion.Settings{AssetRoot: publicDir(t)})
	doc := document.New(`<img src="/`)

	got := p.Provide(doc, endOf(doc))
	assert.ElementsMatch(t, []completion.Candidate{
		{Label: "images/", Kind: lister.KindDirectory, InsertText: "images/", Continue: true},
		{Label: "robots.txt", Kind: lister.KindFile, InsertText: "robots.txt"},
	}, got)
}

func TestProvideRejects(t *testing.T) {
	p := newPipeline(t, completion.Settings{AssetRoot: publicDir(t)})

	tests := []struct {
		name string
		text string
	}{
		{name: "relative path", text: `<Image src="images/`},
		{name: "no tag", text: "some plain text\nsrc=\"/images/"},
		{name: "missing directory", text: `<Image src="/videos/`},
		{name: "file as directory", text: `<Image src="/robots.txt/`},
		{name: "escapes asset root", text: `<Image src="/../`},
		{name: "other attribute", text: `<Image alt="/images/`},
		{name: "closed value", text: `<Image src="/images/" `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.New(tt.text)
			assert.Nil(t, p.Provide(doc, endOf(doc)))
		})
	}
}

func TestProvideMultilineTag(t *testing.T) {
	p := newPipeline(t, completion.Settings{AssetRoot: publicDir(t)})
	doc := document.New("<Image\n  width={32}\n  src=\"/images/ic")

	got := p.Provide(doc, endOf(doc))
	assert.Len(t, got, 2)
}

func TestProvideIsIdempotent(t *testing.T) {
	p := newPipeline(t, completion.Settings{AssetRoot: publicDir(t)})
	doc := document.New(`<Image src="/images/`)

	first := p.Provide(doc, endOf(doc))
	second := p.Provide(doc, endOf(doc))
	assert.Equal(t, first, second)
	assert.Equal(t, `<Image src="/images/`, doc.Text())
}

func TestProvideStrictStrategy(t *testing.T) {
	p := newPipeline(t, completion.Settings{
		AssetRoot: publicDir(t),
		Strategy:  matcher.StrategyStrict,
	})

	doc := document.New(`<Avatar src="/images/`)
	assert.Nil(t, p.Provide(doc, endOf(doc)))

	doc = document.New(`<video src="/images/`)
	assert.Len(t, p.Provide(doc, endOf(doc)), 2)
}

func TestProvideScanModes(t *testing.T) {
	root := publicDir(t)
	// The nearest '<' was closed by '>' before the cursor.
	doc := document.New("<Image src=\"/images/a.png\" />\n<p>src=\"/images/")

	naive := newPipeline(t, completion.Settings{AssetRoot: root, ScanMode: scanner.ModeNaive})
	balanced := newPipeline(t, completion.Settings{AssetRoot: root, ScanMode: scanner.ModeBalanced})

	assert.Nil(t, naive.Provide(doc, endOf(doc)))
	assert.Nil(t, balanced.Provide(doc, endOf(doc)))

	open := document.New("<section>\n  <Image\n    src=\"/images/")
	assert.Len(t, naive.Provide(open, endOf(open)), 2)
	assert.Len(t, balanced.Provide(open, endOf(open)), 2)
}

func TestProvideSyntaxStrategy(t *testing.T) {
	p := newPipeline(t, completion.Settings{
		AssetRoot: publicDir(t),
		Strategy:  matcher.StrategySyntax,
	})

	line := `const logo = <Image src="/images/" alt="" />;`
	doc := document.New(line)
	pos := document.Position{Column: strings.Index(line, `/images/`) + len(`/images/`)}

	got := p.Provide(doc, pos)
	assert.Len(t, got, 2)
}

func TestProvideVanishedEntry(t *testing.T) {
	fsys := racyFS{
		MapFS: fstest.MapFS{
			"images/a.png":       {},
			"images/icons/x.svg": {},
		},
		vanish: "images/a.png",
	}
	p, err := completion.NewPipelineFS(completion.Settings{AssetRoot: "public"}, lister.New(fsys))
	require.NoError(t, err)

	doc := document.New(`<Image src="/images/`)
	assert.Nil(t, p.Provide(doc, endOf(doc)))
}

func TestSynthesize(t *testing.T) {
	got := completion.Synthesize([]lister.Entry{
		{Name: "b", Kind: lister.KindDirectory},
		{Name: "a.png", Kind: lister.KindFile},
		{Name: "b", Kind: lister.KindDirectory},
	})

	require.Len(t, got, 3)
	for _, c := range got {
		if c.Kind == lister.KindDirectory {
			assert.True(t, strings.HasSuffix(c.Label, completion.Separator))
			assert.True(t, strings.HasSuffix(c.InsertText, completion.Separator))
			assert.True(t, c.Continue)
		} else {
			assert.False(t, strings.HasSuffix(c.Label, completion.Separator))
			assert.False(t, strings.HasSuffix(c.InsertText, completion.Separator))
			assert.False(t, c.Continue)
		}
	}
	assert.Equal(t, "b/", got[0].Label)
	assert.Equal(t, "a.png", got[1].Label)

	assert.Empty(t, completion.Synthesize(nil))
}

func TestNewPipelineStrictWithoutTags(t *testing.T) {
	p, err := completion.NewPipeline(completion.Settings{
		AssetRoot:  t.TempDir(),
		Strategy:   matcher.StrategyStrict,
		StrictTags: nil,
	})
	require.NoError(t, err)
	assert.Equal(t, matcher.DefaultStrictTags, p.Settings().StrictTags)
}
