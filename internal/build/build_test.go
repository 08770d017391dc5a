package build

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/adoc/ast"
	err "github.com/ava12/adoc/errors"
	"github.com/ava12/adoc/internal/asciidoc"
	"github.com/ava12/adoc/internal/test"
	"github.com/ava12/adoc/langdef"
	"github.com/ava12/adoc/parser"
	"github.com/ava12/adoc/source"
)

func newConfig(t *testing.T) Config {
	t.Helper()
	g, e := asciidoc.Load()
	require.NoError(t, e)
	p, e := parser.New(g)
	require.NoError(t, e)
	return Config{Parser: p}
}

func parse(t *testing.T, text string) *ast.Document {
	t.Helper()
	conf := newConfig(t)
	src := source.FromString("test.adoc", text)
	root, e := conf.Parser.Match(context.Background(), src, "Document")
	require.NoError(t, e)
	doc, e := Document(context.Background(), conf, src, root)
	require.NoError(t, e)
	return doc
}

func text(s string) *ast.PlainText {
	return &ast.PlainText{Content: s}
}

func TestHeaderAndParagraph(t *testing.T) {
	doc := parse(t, "= Title\n\nSome *bold* text.")
	require.Len(t, doc.Blocks, 2)

	assert.Equal(t, &ast.Header{
		BlockBase: ast.BlockBase{Context: ast.ContextSection},
		Level:     1,
		Content:   []ast.Inline{text("Title")},
	}, doc.Blocks[0])

	assert.Equal(t, &ast.Paragraph{
		BlockBase: ast.BlockBase{Context: ast.ContextParagraph},
		Content: []ast.Inline{
			text("Some "),
			&ast.ConstrainedBold{Content: []ast.Inline{text("bold")}},
			text(" text."),
		},
	}, doc.Blocks[1])
}

func TestHeaderLevels(t *testing.T) {
	doc := parse(t, "=== Third\n")
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, 3, doc.Blocks[0].(*ast.Header).Level)
}

func TestAnchor(t *testing.T) {
	doc := parse(t, "[[intro, Introduction]]\nText\n")
	require.Len(t, doc.Blocks, 1)
	p := doc.Blocks[0].(*ast.Paragraph)
	assert.Equal(t, &ast.Anchor{ID: "intro", Reftext: "Introduction"}, p.Anchor)
	assert.Equal(t, []ast.Inline{text("Text")}, p.Content)

	doc = parse(t, "intro\n\n[[id]]\n= Head\n\npara")
	require.Len(t, doc.Blocks, 3)
	assert.Nil(t, doc.Blocks[0].Common().Anchor)
	header := doc.Blocks[1].(*ast.Header)
	assert.Equal(t, &ast.Anchor{ID: "id"}, header.Anchor)
	assert.Equal(t, []ast.Inline{text("Head")}, header.Content)
	assert.Nil(t, doc.Blocks[2].Common().Anchor)
}

func TestListDepths(t *testing.T) {
	doc := parse(t, "* one\n** two\n* three\n")
	require.Len(t, doc.Blocks, 1)
	list := doc.Blocks[0].(*ast.List)
	assert.False(t, list.Ordered)
	assert.Equal(t, ast.ContextUlist, list.Context)

	var depths []int
	for _, item := range list.Items {
		depths = append(depths, item.Depth)
	}
	assert.Equal(t, []int{0, 1, 0}, depths)
	assert.Equal(t, []ast.Inline{text("two")}, list.Items[1].Content)
}

func TestOrderedListDepths(t *testing.T) {
	samples := []struct {
		input  string
		depths []int
	}{
		{"1. a\n2. b\n", []int{1, 1}},
		{". a\n.. b\n. c\n", []int{0, 1, 0}},
	}

	for i, s := range samples {
		doc := parse(t, s.input)
		require.Len(t, doc.Blocks, 1, "sample #%d", i)
		list := doc.Blocks[0].(*ast.List)
		assert.True(t, list.Ordered, "sample #%d", i)

		var depths []int
		for _, item := range list.Items {
			depths = append(depths, item.Depth)
		}
		assert.Equal(t, s.depths, depths, "sample #%d", i)
	}
}

func TestAdmonitionMasquerade(t *testing.T) {
	doc := parse(t, "[NOTE]\n====\nRemember this.\n====\n")
	require.Len(t, doc.Blocks, 1)

	adm, ok := doc.Blocks[0].(*ast.Admonition)
	require.True(t, ok, "got %T", doc.Blocks[0])
	assert.Equal(t, "NOTE", adm.Kind)
	assert.Equal(t, ast.ContextAdmonition, adm.Context)
	assert.Equal(t, "====", adm.Delimiter)
	require.Len(t, adm.Content, 1)
	assert.Equal(t, []ast.Inline{text("Remember this.")}, adm.Content[0].(*ast.Paragraph).Content)
}

func TestParagraphAdmonition(t *testing.T) {
	doc := parse(t, "TIP: Use it.\n")
	require.Len(t, doc.Blocks, 1)
	adm := doc.Blocks[0].(*ast.Admonition)
	assert.Equal(t, "TIP", adm.Kind)
	require.Len(t, adm.Content, 1)
	assert.Equal(t, []ast.Inline{text("Use it.")}, adm.Content[0].(*ast.Paragraph).Content)
}

func TestSourcePromotion(t *testing.T) {
	doc := parse(t, "[source,go]\n----\nfmt.Println()\n----\n")
	require.Len(t, doc.Blocks, 1)

	src, ok := doc.Blocks[0].(*ast.Source)
	require.True(t, ok, "got %T", doc.Blocks[0])
	assert.Equal(t, ast.ContextSource, src.Context)
	assert.Equal(t, "go", src.Language)
	assert.Equal(t, "fmt.Println()", src.Content)
	assert.Equal(t, "source", src.Metadata.Style())
}

func TestDelimitedDefaults(t *testing.T) {
	samples := []struct {
		input   string
		context ast.Context
	}{
		{"----\nx\n----\n", ast.ContextListing},
		{"....\nx\n....\n", ast.ContextLiteral},
		{"****\nx\n****\n", ast.ContextSidebar},
		{"////\nx\n////\n", ast.ContextComment},
		{"++++\nx\n++++\n", ast.ContextPass},
		{"====\nx\n====\n", ast.ContextExample},
		{"____\nx\n____\n", ast.ContextQuote},
		{"--\nx\n--\n", ast.ContextOpen},
		{"[literal]\n----\nx\n----\n", ast.ContextLiteral},
		{"[sidebar]\n--\nx\n--\n", ast.ContextSidebar},
		{"[stem]\n++++\nx\n++++\n", ast.ContextStem},
		{"[sidebar]\n----\nx\n----\n", ast.ContextListing},
	}

	for i, s := range samples {
		doc := parse(t, s.input)
		require.Len(t, doc.Blocks, 1, "sample #%d", i)
		assert.Equal(t, s.context, doc.Blocks[0].Common().Context, "sample #%d", i)
	}
}

func TestCompoundContent(t *testing.T) {
	doc := parse(t, "****\n== Inner\n\n* item\n****\n")
	require.Len(t, doc.Blocks, 1)
	sidebar := doc.Blocks[0].(*ast.Sidebar)
	require.Len(t, sidebar.Content, 2)
	assert.IsType(t, &ast.Header{}, sidebar.Content[0])
	assert.IsType(t, &ast.List{}, sidebar.Content[1])
}

func TestVerbatimContent(t *testing.T) {
	doc := parse(t, "----\nline *one*\n\nline two\n----\n")
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "line *one*\n\nline two", doc.Blocks[0].(*ast.Listing).Content)
}

func TestQuotedParagraph(t *testing.T) {
	doc := parse(t, "\"Roses are red\"\n-- Poet\n")
	require.Len(t, doc.Blocks, 1)
	q := doc.Blocks[0].(*ast.QuotedParagraph)
	assert.Equal(t, "Poet", q.Citation)
	assert.Equal(t, []ast.Inline{text("Roses are red")}, q.Content)

	doc = parse(t, "[verse]\n\"Roses are red\"\n-- Poet\n")
	require.Len(t, doc.Blocks, 1)
	v := doc.Blocks[0].(*ast.Verse)
	assert.Equal(t, ast.ContextVerse, v.Context)
	assert.Equal(t, "Poet", v.Attribution)
}

func TestCrossReference(t *testing.T) {
	doc := parse(t, "See <<intro,the intro>> and <<intro>>.\n")
	require.Len(t, doc.Blocks, 1)
	content := doc.Blocks[0].(*ast.Paragraph).Content
	require.Len(t, content, 5)

	withText := content[1].(*ast.CrossReference)
	assert.Equal(t, "intro", withText.ID)
	require.NotNil(t, withText.Text)
	assert.Equal(t, "the intro", *withText.Text)

	bare := content[3].(*ast.CrossReference)
	assert.Equal(t, "intro", bare.ID)
	assert.Nil(t, bare.Text)
}

func TestUnconstrainedMarks(t *testing.T) {
	doc := parse(t, "**bold**")
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, []ast.Inline{
		&ast.UnconstrainedBold{Content: []ast.Inline{
			&ast.ConstrainedBold{Content: []ast.Inline{text("bold")}},
		}},
	}, doc.Blocks[0].(*ast.Paragraph).Content)

	doc = parse(t, "__it__")
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, []ast.Inline{
		&ast.UnconstrainedItalic{Content: []ast.Inline{
			&ast.ConstrainedItalic{Content: []ast.Inline{text("it")}},
		}},
	}, doc.Blocks[0].(*ast.Paragraph).Content)
}

func TestIntrawordMarks(t *testing.T) {
	doc := parse(t, "snake_case_name and a*b*c\n")
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, []ast.Inline{text("snake_case_name and a*b*c")}, doc.Blocks[0].(*ast.Paragraph).Content)
}

func TestParagraphLines(t *testing.T) {
	doc := parse(t, "first line\nsecond _line_\n")
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, []ast.Inline{
		text("first line\nsecond "),
		&ast.ConstrainedItalic{Content: []ast.Inline{text("line")}},
	}, doc.Blocks[0].(*ast.Paragraph).Content)
}

func TestMetadata(t *testing.T) {
	doc := parse(t, ".Example title\n[source#hello.primary%linenums,ruby,role=extra]\n----\nputs 1\n----\n")
	require.Len(t, doc.Blocks, 1)
	meta := doc.Blocks[0].Common().Metadata
	require.NotNil(t, meta)
	assert.Equal(t, "Example title", meta.Title)
	assert.Equal(t, "source", meta.Style())
	assert.Equal(t, "hello", meta.ID)
	assert.Equal(t, []string{"primary", "extra"}, meta.Roles)
	assert.Equal(t, []string{"linenums"}, meta.Options)

	src := doc.Blocks[0].(*ast.Source)
	assert.Equal(t, "ruby", src.Language)
}

func TestDocumentAttributes(t *testing.T) {
	doc := parse(t, ":toc: left\n:empty:\n\nText\n")
	require.Len(t, doc.Attributes, 2)
	assert.Equal(t, "toc", doc.Attributes[0].Name)
	assert.Equal(t, []ast.Inline{text("left")}, doc.Attributes[0].Value)
	assert.Equal(t, "empty", doc.Attributes[1].Name)
	assert.Nil(t, doc.Attributes[1].Value)
	require.Len(t, doc.Blocks, 1)
	assert.IsType(t, &ast.Paragraph{}, doc.Blocks[0])
}

func TestDanglingBlockPrefix(t *testing.T) {
	doc := parse(t, "[[a]]\n[x]\n")
	require.Len(t, doc.Blocks, 1)
	p := doc.Blocks[0].(*ast.Paragraph)
	assert.Equal(t, &ast.Anchor{ID: "a"}, p.Anchor)
	assert.Nil(t, p.Metadata)
	assert.Equal(t, []ast.Inline{text("[x]")}, p.Content)

	doc = parse(t, "[[a]]\n")
	require.Len(t, doc.Blocks, 1)
	p = doc.Blocks[0].(*ast.Paragraph)
	assert.Nil(t, p.Anchor)
	assert.Equal(t, []ast.Inline{text("[[a]]")}, p.Content)
}

func TestTable(t *testing.T) {
	doc := parse(t, "|===\n|a |*b*\n|===\n")
	require.Len(t, doc.Blocks, 1)
	table := doc.Blocks[0].(*ast.Table)
	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	require.Len(t, row.Cells, 2)
	assert.Equal(t, []ast.Inline{text("a")}, row.Cells[0].Content)
	assert.Equal(t, []ast.Inline{
		&ast.ConstrainedBold{Content: []ast.Inline{text("b")}},
	}, row.Cells[1].Content)
}

func TestImages(t *testing.T) {
	doc := parse(t, "image::logo.png[Logo,200,0]\n\nSee image:icon.png[] here.\n")
	require.Len(t, doc.Blocks, 2)

	img := doc.Blocks[0].(*ast.BlockImage)
	assert.Equal(t, "logo.png", img.URL)
	assert.Equal(t, "Logo", img.Alt)
	require.NotNil(t, img.Width)
	assert.Equal(t, 200, *img.Width)
	require.NotNil(t, img.Height)
	assert.Equal(t, 0, *img.Height)

	content := doc.Blocks[1].(*ast.Paragraph).Content
	require.Len(t, content, 3)
	inline := content[1].(*ast.InlineImage)
	assert.Equal(t, "icon.png", inline.URL)
	assert.Nil(t, inline.Width)
}

func TestFootnoteAndLinks(t *testing.T) {
	doc := parse(t, "A footnote:1[*note*] link:http://x.org[X] https://example.com[home] {name}\n")
	require.Len(t, doc.Blocks, 1)
	content := doc.Blocks[0].(*ast.Paragraph).Content

	fn := ast.Collect[*ast.Footnote](doc)
	require.Len(t, fn, 1)
	require.NotNil(t, fn[0].ID)
	assert.Equal(t, 1, *fn[0].ID)
	assert.IsType(t, &ast.ConstrainedBold{}, fn[0].Text[0])

	links := ast.Collect[*ast.Link](doc)
	require.Len(t, links, 1)
	assert.Equal(t, "http://x.org", links[0].URL)
	assert.Equal(t, "X", links[0].Text)

	urls := ast.Collect[*ast.UrlMacro](doc)
	require.Len(t, urls, 1)
	assert.Equal(t, "https", urls[0].Scheme)
	assert.Equal(t, "https://example.com", urls[0].URL)
	require.Len(t, urls[0].Attributes, 1)
	assert.Equal(t, "home", urls[0].Attributes[0].Name)

	refs := ast.Collect[*ast.AttributeReference](doc)
	require.Len(t, refs, 1)
	assert.Equal(t, "name", refs[0].Name)
	assert.NotEmpty(t, content)
}

func TestValue(t *testing.T) {
	conf := newConfig(t)
	src := source.FromString("test", "a *b*")
	n, e := conf.Parser.Match(context.Background(), src, "InlineLines")
	require.NoError(t, e)
	v, e := Value(context.Background(), conf, src, n)
	require.NoError(t, e)
	assert.Equal(t, []ast.Inline{
		text("a "),
		&ast.ConstrainedBold{Content: []ast.Inline{text("b")}},
	}, v)

	src = source.FromString("test", "----\nx\n----\n")
	n, e = conf.Parser.Match(context.Background(), src, "Block")
	require.NoError(t, e)
	v, e = Value(context.Background(), conf, src, n)
	require.NoError(t, e)
	assert.Equal(t, &ast.Listing{
		BlockBase: ast.BlockBase{Context: ast.ContextListing, Delimiter: "----"},
		Content:   "x",
	}, v)
}

func TestInternalErrors(t *testing.T) {
	samples := []struct {
		grammar string
		code    int
	}{
		{`Document = Block* end; Block = "x";`, ErrMissingNode},
		{`Document = Foo end; Foo = "x";`, ErrUnhandledRule},
		{`Document = Blocks end; Blocks = "x";`, ErrUnexpectedValue},
	}

	for i, s := range samples {
		g, e := langdef.ParseString("grammar", s.grammar)
		require.NoError(t, e, "sample #%d", i)
		p, e := parser.New(g)
		require.NoError(t, e, "sample #%d", i)

		src := source.FromString("input", "x")
		root, e := p.Match(context.Background(), src, "")
		require.NoError(t, e, "sample #%d", i)
		_, e = Document(context.Background(), Config{Parser: p}, src, root)
		test.ExpectErrorCode(t, s.code, e)
		assert.True(t, err.IsInternal(e), "sample #%d", i)
	}
}
