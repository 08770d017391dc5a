package lexer

import (
	"regexp"
	"strings"
	"testing"

	err "github.com/ava12/adoc/errors"
	"github.com/ava12/adoc/internal/test"
	"github.com/ava12/adoc/source"
)

var (
	tokenRe    = regexp.MustCompile(`(?s:[\s]+|(\d+)|([a-z_][a-z0-9_]*)|('.*?')|('.{0,10}))`)
	tokenTypes = []TokenType{{1, "number"}, {2, "name"}, {3, "string"}, {ErrorTokenType, ErrorTokenName}}
)

func scan(text string) *Scanner {
	return New(tokenRe, tokenTypes).Scan(source.FromString("src", text))
}

func TestEmpty(t *testing.T) {
	sources := []string{"", " ", "  ", " \t\r\n "}
	for _, src := range sources {
		tok, e := scan(src).Next()
		test.Assert(t, e == nil, "source %q: unexpected error: %s", src, e)
		test.Assert(t, tok.IsEof(), "source %q: unexpected token %s", src, tok.TypeName())
		test.ExpectString(t, EofTokenName, tok.TypeName())
	}
}

func TestTokenSamples(t *testing.T) {
	s := scan("123 foo 'bar'")
	expected := []struct {
		typ  int
		text string
	}{
		{1, "123"},
		{2, "foo"},
		{3, "'bar'"},
	}
	for i, exp := range expected {
		tok, e := s.Next()
		test.Assert(t, e == nil, "token #%d: unexpected error: %s", i, e)
		test.ExpectInt(t, exp.typ, tok.Type())
		test.ExpectString(t, exp.text, tok.Text())
	}

	tok, e := s.Next()
	test.Assert(t, e == nil, "unexpected error: %s", e)
	test.Assert(t, tok.IsEof(), "expecting EoF, got %s", tok.TypeName())

	tok, e = s.Next()
	test.Assert(t, e == nil, "unexpected error: %s", e)
	test.Assert(t, tok.IsEof(), "EoF must repeat")
}

func TestTokenPos(t *testing.T) {
	s := scan("foo\n  bar")
	_, e := s.Next()
	test.Assert(t, e == nil, "unexpected error: %s", e)
	tok, e := s.Next()
	test.Assert(t, e == nil, "unexpected error: %s", e)
	test.ExpectString(t, "bar", tok.Text())
	test.ExpectInt(t, 2, tok.Line())
	test.ExpectInt(t, 3, tok.Col())
	test.ExpectInt(t, 6, tok.Offset())
	test.ExpectString(t, "src", tok.SourceName())
}

func TestBrokenToken(t *testing.T) {
	tok, e := scan("\n  '*  *").Next()
	test.Assert(t, tok == nil, "unexpected token %v", tok)
	test.ExpectErrorCode(t, ErrBadToken, e)

	ee := e.(*err.Error)
	test.ExpectInt(t, 2, ee.Line)
	test.ExpectInt(t, 3, ee.Col)
	test.Assert(t, strings.Contains(ee.Message, `"'*  *"`), "unexpected message: %s", ee.Message)
}

func TestWrongChar(t *testing.T) {
	re := regexp.MustCompile(`(\s+)|(\w+)`)
	s := New(re, []TokenType{{0, "space"}, {1, "word"}}).Scan(source.FromString("src", "foo &bar"))
	_, e := s.Next()
	test.Assert(t, e == nil, "unexpected error: %s", e)
	_, e = s.Next()
	test.Assert(t, e == nil, "unexpected error: %s", e)
	_, e = s.Next()
	test.ExpectErrorCode(t, ErrWrongChar, e)
	test.Assert(t, strings.Contains(e.Error(), "in src at line 1 col 5"), "unexpected message: %s", e)
}
