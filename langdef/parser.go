package langdef

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ava12/adoc/grammar"
	"github.com/ava12/adoc/lexer"
	"github.com/ava12/adoc/source"
)

const (
	stringTok = "string"
	nameTok   = "name"
	opTok     = "op"
	wrongTok  = ""
)

const (
	equTok       = "="
	semicolonTok = ";"
	pipeTok      = "|"
	notTok       = "~"
	andTok       = "&"
	starTok      = "*"
	plusTok      = "+"
	optTok       = "?"
	rangeTok     = ".."
	lParenTok    = "("
	rParenTok    = ")"
)

const (
	anyName = "any"
	endName = "end"
)

type escapeCharEntry struct {
	substitute byte
	hexLen     int
}

var escapeCharMap = map[byte]escapeCharEntry{
	'\\': {'\\', 0},
	'"':  {'"', 0},
	'n':  {'\n', 0},
	'r':  {'\r', 0},
	't':  {'\t', 0},
	'x':  {0, 2},
	'u':  {0, 4},
	'U':  {0, 8},
}

var pegLexer *lexer.Lexer

func init() {
	tokenTypes := []lexer.TokenType{
		{Type: 1, TypeName: stringTok},
		{Type: 2, TypeName: nameTok},
		{Type: 3, TypeName: opTok},
		{Type: lexer.ErrorTokenType, TypeName: wrongTok},
	}

	re := regexp.MustCompile(
		`^(?:\s+|#[^\n]*|` +
			`("(?:[^\\"\n]|\\.)*")|` +
			`([a-zA-Z_][a-zA-Z_0-9]*)|` +
			`(\.\.|[=;|~&*+?()])|` +
			`("[^\n]{0,10}|.))`)

	pegLexer = lexer.New(re, tokenTypes)
}

// ParseString parses grammar description and returns a grammar on success.
// Returns nil and *errors.Error on error.
func ParseString(name, content string) (*grammar.Grammar, error) {
	return Parse(source.FromString(name, content))
}

// ParseBytes parses grammar description and returns a grammar on success.
// Returns nil and *errors.Error on error.
func ParseBytes(name string, content []byte) (*grammar.Grammar, error) {
	return Parse(source.New(name, content))
}

// Parse parses grammar description and returns a grammar on success.
// Returns nil and *errors.Error on error.
func Parse(s *source.Source) (*grammar.Grammar, error) {
	c := newParseContext(s)
	g, e := c.parse()
	if e != nil {
		return nil, e
	}

	e = c.resolveRefs(e)
	e = findUnusedRules(g, e)
	nullable := findNullableRules(g)
	e = findEmptyRepetitions(g, nullable, e)
	e = findLeftRecursions(g, nullable, e)
	if e != nil {
		return nil, e
	}

	return g, nil
}

type refRec struct {
	expr  *grammar.Expr
	token *lexer.Token
}

type parseContext struct {
	s     *lexer.Scanner
	saved *lexer.Token
	g     *grammar.Grammar
	index map[string]int
	refs  []refRec
}

func newParseContext(s *source.Source) *parseContext {
	return &parseContext{
		s:     pegLexer.Scan(s),
		g:     &grammar.Grammar{},
		index: make(map[string]int),
	}
}

func (c *parseContext) fetch() (*lexer.Token, error) {
	if c.saved != nil {
		t := c.saved
		c.saved = nil
		return t, nil
	}

	return c.s.Next()
}

func (c *parseContext) peek() (*lexer.Token, error) {
	t, e := c.fetch()
	if e == nil {
		c.saved = t
	}
	return t, e
}

func (c *parseContext) expect(text string) error {
	t, e := c.fetch()
	if e != nil {
		return e
	}
	if t.IsEof() {
		return eofError(t)
	}
	if t.TypeName() != opTok || t.Text() != text {
		return unexpectedTokenError(t, strconv.Quote(text))
	}
	return nil
}

func (c *parseContext) parse() (*grammar.Grammar, error) {
	for {
		t, e := c.fetch()
		if e != nil {
			return nil, e
		}

		if t.IsEof() {
			if len(c.g.Rules) == 0 {
				return nil, eofError(t)
			}
			return c.g, nil
		}

		if t.TypeName() != nameTok {
			return nil, unexpectedTokenError(t, "rule name")
		}

		e = c.parseRule(t)
		if e != nil {
			return nil, e
		}
	}
}

func (c *parseContext) parseRule(name *lexer.Token) error {
	if name.Text() == anyName || name.Text() == endName {
		return reservedNameError(name)
	}
	if _, has := c.index[name.Text()]; has {
		return ruleDefinedError(name)
	}

	c.index[name.Text()] = len(c.g.Rules)
	c.g.Rules = append(c.g.Rules, grammar.Rule{Name: name.Text()})

	e := c.expect(equTok)
	if e != nil {
		return e
	}

	expr, e := c.parseChoice()
	if e != nil {
		return e
	}

	c.g.Rules[c.index[name.Text()]].Expr = expr
	return c.expect(semicolonTok)
}

func (c *parseContext) parseChoice() (*grammar.Expr, error) {
	var items []*grammar.Expr
	for {
		item, e := c.parseSequence()
		if e != nil {
			return nil, e
		}

		items = append(items, item)
		t, e := c.peek()
		if e != nil {
			return nil, e
		}
		if t.TypeName() != opTok || t.Text() != pipeTok {
			break
		}
		c.saved = nil
	}

	if len(items) == 1 {
		return items[0], nil
	}
	return &grammar.Expr{Kind: grammar.Choice, Items: items}, nil
}

func startsPrefixed(t *lexer.Token) bool {
	switch t.TypeName() {
	case stringTok, nameTok:
		return true
	case opTok:
		switch t.Text() {
		case notTok, andTok, lParenTok:
			return true
		}
	}
	return false
}

func (c *parseContext) parseSequence() (*grammar.Expr, error) {
	var items []*grammar.Expr
	for {
		t, e := c.peek()
		if e != nil {
			return nil, e
		}
		if !startsPrefixed(t) {
			if len(items) == 0 {
				if t.IsEof() {
					return nil, eofError(t)
				}
				return nil, unexpectedTokenError(t, "expression")
			}
			break
		}

		item, e := c.parsePrefixed()
		if e != nil {
			return nil, e
		}
		items = append(items, item)
	}

	if len(items) == 1 {
		return items[0], nil
	}
	return &grammar.Expr{Kind: grammar.Seq, Items: items}, nil
}

func (c *parseContext) parsePrefixed() (*grammar.Expr, error) {
	t, e := c.peek()
	if e != nil {
		return nil, e
	}

	kind := grammar.Seq
	if t.TypeName() == opTok {
		switch t.Text() {
		case notTok:
			kind = grammar.Not
		case andTok:
			kind = grammar.And
		}
	}
	if kind != grammar.Seq {
		c.saved = nil
	}

	item, e := c.parseSuffixed()
	if e != nil || kind == grammar.Seq {
		return item, e
	}
	return &grammar.Expr{Kind: kind, Items: []*grammar.Expr{item}}, nil
}

var suffixKinds = map[string]grammar.ExprKind{
	starTok: grammar.Star,
	plusTok: grammar.Plus,
	optTok:  grammar.Opt,
}

func (c *parseContext) parseSuffixed() (*grammar.Expr, error) {
	item, e := c.parsePrimary()
	if e != nil {
		return nil, e
	}

	for {
		t, e := c.peek()
		if e != nil {
			return nil, e
		}
		kind, has := suffixKinds[t.Text()]
		if !has || t.TypeName() != opTok {
			return item, nil
		}

		c.saved = nil
		item = &grammar.Expr{Kind: kind, Items: []*grammar.Expr{item}}
	}
}

func (c *parseContext) parsePrimary() (*grammar.Expr, error) {
	t, e := c.fetch()
	if e != nil {
		return nil, e
	}
	if t.IsEof() {
		return nil, eofError(t)
	}

	switch t.TypeName() {
	case stringTok:
		return c.parseString(t)

	case nameTok:
		switch t.Text() {
		case anyName:
			return &grammar.Expr{Kind: grammar.Any}, nil
		case endName:
			return &grammar.Expr{Kind: grammar.End}, nil
		}
		expr := &grammar.Expr{Kind: grammar.Ref, Text: t.Text()}
		c.refs = append(c.refs, refRec{expr, t})
		return expr, nil

	case opTok:
		if t.Text() == lParenTok {
			expr, e := c.parseChoice()
			if e != nil {
				return nil, e
			}
			return expr, c.expect(rParenTok)
		}
	}

	return nil, unexpectedTokenError(t, "expression")
}

func (c *parseContext) parseString(t *lexer.Token) (*grammar.Expr, error) {
	low, e := unquote(t)
	if e != nil {
		return nil, e
	}

	next, e := c.peek()
	if e != nil {
		return nil, e
	}
	if next.TypeName() != opTok || next.Text() != rangeTok {
		return &grammar.Expr{Kind: grammar.Literal, Text: low}, nil
	}

	c.saved = nil
	ht, e := c.fetch()
	if e != nil {
		return nil, e
	}
	if ht.IsEof() {
		return nil, eofError(ht)
	}
	if ht.TypeName() != stringTok {
		return nil, unexpectedTokenError(ht, "string")
	}
	high, e := unquote(ht)
	if e != nil {
		return nil, e
	}

	lr, ls := utf8.DecodeRuneInString(low)
	hr, hs := utf8.DecodeRuneInString(high)
	if ls == 0 || hs == 0 || ls != len(low) || hs != len(high) || lr > hr {
		return nil, invalidRangeError(t, low, high)
	}
	return &grammar.Expr{Kind: grammar.Range, Low: lr, High: hr}, nil
}

func unquote(t *lexer.Token) (string, error) {
	content := t.Text()
	content = content[1 : len(content)-1]
	if strings.IndexByte(content, '\\') < 0 {
		return content, nil
	}

	var result strings.Builder
	for {
		slashPos := strings.IndexByte(content, '\\')
		if slashPos < 0 {
			result.WriteString(content)
			break
		}

		result.WriteString(content[:slashPos])
		content = content[slashPos:]
		entry, valid := escapeCharMap[content[1]]
		if !valid {
			return "", invalidEscapeError(t, content[:2])
		}

		if entry.hexLen == 0 {
			result.WriteByte(entry.substitute)
			content = content[2:]
			continue
		}

		if len(content) < entry.hexLen+2 {
			return "", invalidEscapeError(t, content)
		}
		codePoint, e := strconv.ParseUint(content[2:entry.hexLen+2], 16, 32)
		if e != nil || !utf8.ValidRune(rune(codePoint)) {
			return "", invalidEscapeError(t, content[:entry.hexLen+2])
		}
		result.WriteRune(rune(codePoint))
		content = content[entry.hexLen+2:]
	}
	return result.String(), nil
}

func (c *parseContext) resolveRefs(e error) error {
	if e != nil {
		return e
	}

	var undefined []string
	seen := make(map[string]bool)
	for _, ref := range c.refs {
		index, has := c.index[ref.expr.Text]
		if has {
			ref.expr.Rule = index
		} else if !seen[ref.expr.Text] {
			seen[ref.expr.Text] = true
			undefined = append(undefined, ref.expr.Text)
		}
	}

	if len(undefined) > 0 {
		return undefinedRuleError(undefined)
	}
	return nil
}
