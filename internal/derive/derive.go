// Package derive resolves the final context of a block from its delimiter and style.
//
// Resolution runs in order: default context inference, masquerading, promotion.
// Each stage returns a new Shape.
package derive

import (
	"strings"

	"github.com/ava12/adoc/ast"
	err "github.com/ava12/adoc/errors"
)

const ErrNoContext = err.BuildErrors + iota

// Shape is the part of a block that takes part in context resolution.
type Shape struct {
	// Context is the explicit context of a dedicated block or the context resolved so far.
	Context ast.Context

	// Delimiter is the opening fence of a delimited block.
	Delimiter string

	// Style is the block style (the first positional attribute).
	Style string
}

var defaultContexts = map[byte]ast.Context{
	'_': ast.ContextQuote,
	'-': ast.ContextListing,
	'.': ast.ContextLiteral,
	'*': ast.ContextSidebar,
	'/': ast.ContextComment,
	'+': ast.ContextPass,
	'=': ast.ContextExample,
}

var masquerades = map[ast.Context][]ast.Context{
	ast.ContextExample: {ast.ContextAdmonition},
	ast.ContextListing: {ast.ContextLiteral},
	ast.ContextLiteral: {ast.ContextListing},
	ast.ContextOpen: {
		ast.ContextAbstract, ast.ContextAdmonition, ast.ContextPartintro, ast.ContextPass,
		ast.ContextQuote, ast.ContextSidebar, ast.ContextVerse,
	},
	ast.ContextPass:  {ast.ContextStem, ast.ContextLatexmath, ast.ContextAsciimath},
	ast.ContextQuote: {ast.ContextVerse},
}

// DefaultContext returns the context implied by the first delimiter character.
func DefaultContext(delimiter string) (ast.Context, bool) {
	if delimiter == "" {
		return "", false
	}
	c, has := defaultContexts[delimiter[0]]
	return c, has
}

// StyleContext returns the context named by block style, admonition labels name the admonition context.
func StyleContext(style string) ast.Context {
	if ast.IsAdmonitionKind(style) {
		return ast.ContextAdmonition
	}
	return ast.Context(strings.ToLower(style))
}

// WithDefault fills in the context implied by the delimiter unless s already has a context.
func WithDefault(s Shape) (Shape, error) {
	if s.Context != "" {
		return s, nil
	}

	c, has := DefaultContext(s.Delimiter)
	if !has {
		return s, err.Internal(ErrNoContext, "cannot resolve context of block with delimiter %q", s.Delimiter)
	}
	s.Context = c
	return s, nil
}

// Masquerade replaces s context with the one named by block style if the former allows it.
func Masquerade(s Shape) Shape {
	if s.Style == "" {
		return s
	}

	target := StyleContext(s.Style)
	def, _ := DefaultContext(s.Delimiter)
	if target == s.Context || target == def {
		return s
	}

	for _, c := range masquerades[s.Context] {
		if c == target {
			s.Context = target
			break
		}
	}
	return s
}

// Promote turns a listing with "source" style into a source block.
func Promote(s Shape) Shape {
	if s.Context == ast.ContextListing && s.Style == "source" {
		s.Context = ast.ContextSource
	}
	return s
}

// Resolve runs all stages.
func Resolve(s Shape) (Shape, error) {
	s, e := WithDefault(s)
	if e != nil {
		return s, e
	}
	return Promote(Masquerade(s)), nil
}
