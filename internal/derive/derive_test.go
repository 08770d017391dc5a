package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/adoc/ast"
	err "github.com/ava12/adoc/errors"
)

func TestResolve(t *testing.T) {
	samples := []struct {
		shape    Shape
		expected ast.Context
	}{
		{Shape{Delimiter: "____"}, ast.ContextQuote},
		{Shape{Delimiter: "----"}, ast.ContextListing},
		{Shape{Delimiter: "...."}, ast.ContextLiteral},
		{Shape{Delimiter: "****"}, ast.ContextSidebar},
		{Shape{Delimiter: "////"}, ast.ContextComment},
		{Shape{Delimiter: "++++"}, ast.ContextPass},
		{Shape{Delimiter: "===="}, ast.ContextExample},
		{Shape{Delimiter: "====", Style: "NOTE"}, ast.ContextAdmonition},
		{Shape{Delimiter: "====", Style: "warning"}, ast.ContextAdmonition},
		{Shape{Delimiter: "====", Style: "quote"}, ast.ContextExample},
		{Shape{Delimiter: "====", Style: "example"}, ast.ContextExample},
		{Shape{Delimiter: "----", Style: "source"}, ast.ContextSource},
		{Shape{Delimiter: "----", Style: "literal"}, ast.ContextLiteral},
		{Shape{Delimiter: "....", Style: "listing"}, ast.ContextListing},
		{Shape{Delimiter: "....", Style: "source"}, ast.ContextLiteral},
		{Shape{Delimiter: "++++", Style: "stem"}, ast.ContextStem},
		{Shape{Delimiter: "++++", Style: "latexmath"}, ast.ContextLatexmath},
		{Shape{Delimiter: "____", Style: "verse"}, ast.ContextVerse},
		{Shape{Delimiter: "____", Style: "sidebar"}, ast.ContextQuote},
		{Shape{Context: ast.ContextOpen, Delimiter: "--"}, ast.ContextOpen},
		{Shape{Context: ast.ContextOpen, Delimiter: "--", Style: "abstract"}, ast.ContextAbstract},
		{Shape{Context: ast.ContextOpen, Delimiter: "--", Style: "TIP"}, ast.ContextAdmonition},
		{Shape{Context: ast.ContextOpen, Delimiter: "--", Style: "source"}, ast.ContextOpen},
		{Shape{Context: ast.ContextQuote, Style: "verse"}, ast.ContextVerse},
		{Shape{Context: ast.ContextParagraph, Style: "verse"}, ast.ContextParagraph},
		{Shape{Context: ast.ContextSection}, ast.ContextSection},
	}

	for i, s := range samples {
		shape, e := Resolve(s.shape)
		require.NoError(t, e, "sample #%d", i)
		assert.Equal(t, s.expected, shape.Context, "sample #%d", i)
		assert.Equal(t, s.shape.Delimiter, shape.Delimiter, "sample #%d", i)
	}
}

func TestStagesReturnNewValues(t *testing.T) {
	s := Shape{Delimiter: "----", Style: "literal"}
	d, e := WithDefault(s)
	require.NoError(t, e)
	assert.Equal(t, ast.Context(""), s.Context)
	assert.Equal(t, ast.ContextListing, d.Context)

	m := Masquerade(d)
	assert.Equal(t, ast.ContextListing, d.Context)
	assert.Equal(t, ast.ContextLiteral, m.Context)
}

func TestNoContext(t *testing.T) {
	for _, delimiter := range []string{"", "|==="} {
		_, e := Resolve(Shape{Delimiter: delimiter})
		require.Error(t, e)
		assert.Equal(t, ErrNoContext, err.Code(e))
		assert.True(t, err.IsInternal(e))
	}
}
