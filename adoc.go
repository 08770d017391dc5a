/*
Package adoc parses a subset of AsciiDoc markup into a typed syntax tree.

Consists of subpackages:
  - ast: typed syntax tree (blocks, inline elements, attributes) and its JSON encoding;
  - cmd/adoc: console utility converting AsciiDoc files to JSON or YAML syntax trees;
  - cmd/adocgen: console utility generating Go bindings of grammar structural rules;
  - errors: error type and error code classes shared by subpackages;
  - grammar: defines grammar structure: rules and parsing expressions;
  - langdef: converts grammar description (written in PEG-like language) to grammar structure;
  - lexer: lexical analyzer of grammar descriptions;
  - parser: memoizing ordered choice parser producing concrete parse trees;
  - source: defines source text and positions;
  - tree: concrete parse tree types and functions.

Typical usage is:

	doc, e := adoc.ParseDocument(text)

or, to reuse parser and control logging and cancellation:

	p, e := adoc.New(adoc.WithLogger(logger))
	doc, e := p.Parse(ctx, "README.adoc", text)

Parser is safe for concurrent use.
*/
package adoc

import (
	"context"

	"go.uber.org/zap"

	"github.com/ava12/adoc/ast"
	"github.com/ava12/adoc/grammar"
	"github.com/ava12/adoc/internal/asciidoc"
	"github.com/ava12/adoc/internal/build"
	"github.com/ava12/adoc/parser"
	"github.com/ava12/adoc/source"
	"github.com/ava12/adoc/tree"
)

// DefaultSourceName is used when source name is not provided.
const DefaultSourceName = "input"

// Parser converts AsciiDoc text to syntax trees.
type Parser struct {
	grammar *grammar.Grammar
	parser  *parser.Parser
	logger  *zap.Logger
}

type config struct {
	grammar *grammar.Grammar
	logger  *zap.Logger
}

// Option configures a Parser.
type Option func(*config)

// WithLogger sets the logger used for debug messages, default is no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithGrammar replaces built-in grammar.
// g must define all structural rules of built-in grammar with the same structure.
func WithGrammar(g *grammar.Grammar) Option {
	return func(c *config) {
		c.grammar = g
	}
}

// New creates a parser.
func New(opts ...Option) (*Parser, error) {
	c := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	if c.grammar == nil {
		g, e := asciidoc.Load()
		if e != nil {
			return nil, e
		}
		c.grammar = g
	}

	p, e := parser.New(c.grammar, parser.WithLogger(c.logger))
	if e != nil {
		return nil, e
	}
	return &Parser{grammar: c.grammar, parser: p, logger: c.logger}, nil
}

// Grammar returns parser grammar.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.grammar
}

func (p *Parser) buildConfig() build.Config {
	return build.Config{Parser: p.parser, Logger: p.logger}
}

// Parse parses whole text as a document.
// Returns *parser.MatchError if text does not conform to the grammar, ctx error if ctx is done.
func (p *Parser) Parse(ctx context.Context, name, text string) (*ast.Document, error) {
	if name == "" {
		name = DefaultSourceName
	}
	src := source.FromString(name, text)
	root, e := p.parser.Match(ctx, src, "Document")
	if e != nil {
		return nil, e
	}
	return build.Document(ctx, p.buildConfig(), src, root)
}

// ParseRule matches whole text against named structural or lexical rule and returns constructed value.
// Block rules return ast.Block, inline rules return ast.Inline,
// rules for lines and paragraph segments return []ast.Inline, lexical rules return matched text.
func (p *Parser) ParseRule(ctx context.Context, name, text, rule string) (any, error) {
	if name == "" {
		name = DefaultSourceName
	}
	src := source.FromString(name, text)
	root, e := p.parser.Match(ctx, src, rule)
	if e != nil {
		return nil, e
	}
	return build.Value(ctx, p.buildConfig(), src, root)
}

// ParseTree matches whole text against named rule and returns concrete parse tree.
// Empty rule name means the default start rule.
func (p *Parser) ParseTree(ctx context.Context, name, text, rule string) (*tree.Node, error) {
	if name == "" {
		name = DefaultSourceName
	}
	return p.parser.Match(ctx, source.FromString(name, text), rule)
}

// ParseDocument parses text with built-in grammar.
func ParseDocument(text string) (*ast.Document, error) {
	p, e := New()
	if e != nil {
		return nil, e
	}
	return p.Parse(context.Background(), DefaultSourceName, text)
}
