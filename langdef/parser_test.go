package langdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	err "github.com/ava12/adoc/errors"
	"github.com/ava12/adoc/grammar"
	"github.com/ava12/adoc/lexer"
)

func checkErrorCode(t *testing.T, samples []string, code int) {
	t.Helper()
	for i, src := range samples {
		_, e := ParseString("string", src)
		if code == 0 {
			assert.NoError(t, e, "input #%d", i)
			continue
		}

		require.Error(t, e, "input #%d", i)
		assert.Equal(t, code, err.Code(e), "input #%d: %s", i, e)
	}
}

func TestValid(t *testing.T) {
	samples := []string{
		`a = "x";`,
		`a = "x" | "y" "z";  # comment`,
		`a = b* end; b = "0".."9" | any;`,
		`a = ~"x" &"y" any?;`,
		`A = (B | "x")+; B = "b"; C = "c";`,
		`a = "\"\\\n\r\t\x41Ж\U0001F600";`,
	}
	checkErrorCode(t, samples, 0)
}

func TestUnexpectedEof(t *testing.T) {
	samples := []string{
		"",
		" ",
		"# comment only\n",
		"foo",
		"foo = ",
		`foo = "bar"`,
		`foo = ("bar"`,
		`foo = "a"..`,
	}
	checkErrorCode(t, samples, ErrUnexpectedEof)
}

func TestUnexpectedToken(t *testing.T) {
	samples := []string{
		`"foo" = "bar";`,
		`foo "bar";`,
		`foo = ;`,
		`foo = | "x";`,
		`foo = "x" );`,
		`foo = "a"..b;`,
		`foo = "x" @;`,
		`foo = "unterminated;`,
	}
	for i, src := range samples {
		_, e := ParseString("string", src)
		require.Error(t, e, "input #%d", i)
		code := err.Code(e)
		assert.True(t, code == ErrUnexpectedToken || code == lexer.ErrBadToken, "input #%d: %s", i, e)
	}
}

func TestInvalidEscape(t *testing.T) {
	checkErrorCode(t, []string{`a = "\q";`, `a = "\x4";`, `a = "\uD800";`}, ErrInvalidEscape)
}

func TestInvalidRange(t *testing.T) {
	checkErrorCode(t, []string{`a = "z".."a";`, `a = "ab".."z";`, `a = "".."z";`}, ErrInvalidRange)
}

func TestReservedName(t *testing.T) {
	checkErrorCode(t, []string{`any = "x";`, `end = "x";`}, ErrReservedName)
}

func TestRuleDefined(t *testing.T) {
	checkErrorCode(t, []string{`a = b; b = "x"; b = "y";`}, ErrRuleDefined)
}

func TestUndefinedRule(t *testing.T) {
	_, e := ParseString("string", `a = b c b;`)
	require.Error(t, e)
	assert.Equal(t, ErrUndefinedRule, err.Code(e))
	assert.Equal(t, "undefined rules: b, c", e.Error())
}

func TestUnusedRule(t *testing.T) {
	checkErrorCode(t, []string{`a = "x"; b = "y";`}, ErrUnusedRule)
	checkErrorCode(t, []string{`a = "x"; B = "y";`}, 0)
}

func TestLeftRecursion(t *testing.T) {
	samples := []string{
		`a = a "x";`,
		`a = b | "x"; b = "y"? a;`,
		`a = &a "x";`,
		`a = (b "x")*; b = ""? a;`,
	}
	checkErrorCode(t, samples, ErrLeftRecursion)
	checkErrorCode(t, []string{`a = "x" a | "y";`}, 0)
}

func TestEmptyRepetition(t *testing.T) {
	samples := []string{
		`a = "x"**;`,
		`a = b+; b = "x"?;`,
		`a = (end)*;`,
		`a = (~"x")*;`,
	}
	checkErrorCode(t, samples, ErrEmptyRepetition)
}

func TestStructure(t *testing.T) {
	g, e := ParseString("string", `Doc = (item | "-")+ end; item = "a".."z" ~"!";`)
	require.NoError(t, e)
	require.Len(t, g.Rules, 2)

	x := g.Rules[0].Expr
	assert.Equal(t, grammar.Seq, x.Kind)
	require.Len(t, x.Items, 2)
	plus := x.Items[0]
	assert.Equal(t, grammar.Plus, plus.Kind)
	choice := plus.Items[0]
	assert.Equal(t, grammar.Choice, choice.Kind)
	assert.Equal(t, grammar.Ref, choice.Items[0].Kind)
	assert.Equal(t, 1, choice.Items[0].Rule)
	assert.Equal(t, "-", choice.Items[1].Text)
	assert.Equal(t, grammar.End, x.Items[1].Kind)

	item := g.Rules[1].Expr
	assert.Equal(t, grammar.Range, item.Items[0].Kind)
	assert.Equal(t, 'a', item.Items[0].Low)
	assert.Equal(t, 'z', item.Items[0].High)
	assert.Equal(t, grammar.Not, item.Items[1].Kind)

	assert.True(t, g.Rules[0].IsStructural())
	assert.False(t, g.Rules[1].IsStructural())
	assert.Equal(t, []string{"Doc"}, g.StructuralRules())
	assert.Equal(t, 1, g.RuleIndex("item"))
	assert.Equal(t, -1, g.RuleIndex("missing"))
}

func TestEscapes(t *testing.T) {
	g, e := ParseString("string", `a = "\"\\\n\r\t\x41Ж\U0001F600";`)
	require.NoError(t, e)
	assert.Equal(t, "\"\\\n\r\tAЖ\U0001F600", g.Rules[0].Expr.Text)
}

func TestErrorPosition(t *testing.T) {
	_, e := ParseString("grammar.peg", "a = \"x\";\nb = ;")
	require.Error(t, e)
	ee := e.(*err.Error)
	assert.Equal(t, ErrUnexpectedToken, ee.Code)
	assert.Equal(t, "grammar.peg", ee.SourceName)
	assert.Equal(t, 2, ee.Line)
	assert.Equal(t, 5, ee.Col)
}
