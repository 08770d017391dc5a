// Package build constructs the typed syntax tree from a parse tree produced with the asciidoc grammar.
package build

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ava12/adoc/ast"
	"github.com/ava12/adoc/grammar"
	"github.com/ava12/adoc/internal/asciidoc"
	"github.com/ava12/adoc/internal/normalize"
	"github.com/ava12/adoc/parser"
	"github.com/ava12/adoc/source"
	"github.com/ava12/adoc/tree"
)

// Config contains dependencies shared by all builders.
type Config struct {
	// Parser is used to match nested content (delimited block bodies, table cells, footnotes).
	Parser *parser.Parser
	Logger *zap.Logger
}

type builder struct {
	ctx  context.Context
	conf Config
	src  *source.Source
}

var _ asciidoc.Actions = (*builder)(nil)

func newBuilder(ctx context.Context, conf Config, src *source.Source) *builder {
	if conf.Logger == nil {
		conf.Logger = zap.NewNop()
	}
	return &builder{ctx: ctx, conf: conf, src: src}
}

// Document builds a document from root node matched with Document rule against src.
func Document(ctx context.Context, conf Config, src *source.Source, root *tree.Node) (*ast.Document, error) {
	v, e := newBuilder(ctx, conf, src).value(root)
	if e != nil {
		return nil, e
	}
	doc, ok := v.(*ast.Document)
	if !ok {
		return nil, unexpectedValueError(root.Rule, "document", v)
	}
	return doc, nil
}

// Value builds the value of n matched with any rule against src.
// Blocks are returned as ast.Block, paragraph segments as []ast.Inline,
// lexical rules as matched text.
func Value(ctx context.Context, conf Config, src *source.Source, n *tree.Node) (any, error) {
	b := newBuilder(ctx, conf, src)
	v, e := b.value(n)
	if e != nil {
		return nil, e
	}

	switch v := v.(type) {
	case *pending:
		return b.finish(v, nil, nil)
	case *normalize.Segment:
		return normalize.MergeText(normalize.Flatten([]any{v})), nil
	}
	return v, nil
}

// value returns the value of n: matched text for terminals and lexical rules,
// folded child values for iterations and sequences, and action result for structural rules.
func (b *builder) value(n *tree.Node) (any, error) {
	switch n.Kind {
	case tree.TerminalNode:
		return n.Text, nil

	case tree.IterNode:
		values, e := b.values(n.Children)
		if e != nil {
			return nil, e
		}
		return foldIter(values), nil

	case tree.SeqNode:
		return b.values(n.Children)
	}

	if !grammar.IsStructural(n.Rule) {
		return n.Text, nil
	}
	v, handled, e := asciidoc.Dispatch(b, n)
	if !handled {
		return nil, unhandledRuleError(n.Rule)
	}
	return v, e
}

func (b *builder) values(nodes []*tree.Node) ([]any, error) {
	result := make([]any, 0, len(nodes))
	for _, n := range nodes {
		v, e := b.value(n)
		if e != nil {
			return nil, e
		}
		result = append(result, v)
	}
	return result, nil
}

// foldIter joins values into PlainText if all of them are strings.
func foldIter(values []any) any {
	if len(values) == 0 {
		return values
	}

	var text strings.Builder
	for _, v := range values {
		s, isString := v.(string)
		if !isString {
			return values
		}
		text.WriteString(s)
	}
	return &ast.PlainText{Content: text.String()}
}

// find returns rule nodes named rule among children of n, descending into iterations and sequences only.
func find(n *tree.Node, rule string) []*tree.Node {
	var result []*tree.Node
	for _, c := range ruleNodes(n) {
		if c.Rule == rule {
			result = append(result, c)
		}
	}
	return result
}

func first(n *tree.Node, rule string) *tree.Node {
	for _, c := range ruleNodes(n) {
		if c.Rule == rule {
			return c
		}
	}
	return nil
}

// ruleNodes returns rule nodes among children of n, descending into iterations and sequences.
func ruleNodes(n *tree.Node) []*tree.Node {
	var result []*tree.Node
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		switch c.Kind {
		case tree.RuleNode:
			result = append(result, c)
		case tree.IterNode, tree.SeqNode:
			result = append(result, ruleNodes(c)...)
		}
	}
	return result
}

func textOf(n *tree.Node) string {
	if n == nil {
		return ""
	}
	return n.Text
}

// only returns the value of the single rule child of n.
func (b *builder) only(n *tree.Node) (any, error) {
	children := ruleNodes(n)
	if len(children) != 1 {
		return nil, missingNodeError(n.Rule, "single rule")
	}
	return b.value(children[0])
}

// inlines returns values of nodes as inline elements with adjacent plain text merged.
func (b *builder) inlines(rule string, nodes []*tree.Node) ([]ast.Inline, error) {
	result := make([]ast.Inline, 0, len(nodes))
	for _, n := range nodes {
		v, e := b.value(n)
		if e != nil {
			return nil, e
		}
		in, ok := v.(ast.Inline)
		if !ok {
			return nil, unexpectedValueError(rule, "inline element", v)
		}
		result = append(result, in)
	}

	result = normalize.MergeText(result)
	if result == nil {
		result = []ast.Inline{}
	}
	return result, nil
}

// inlineChildren returns inline elements and plain text of n.
func (b *builder) inlineChildren(n *tree.Node) ([]ast.Inline, error) {
	return b.inlines(n.Rule, find(n, "InlineElementOrText"))
}

// nested matches the text of n against rule and returns the value.
func (b *builder) nested(n *tree.Node, rule string) (any, error) {
	return b.nestedRange(n.Start, n.End, rule)
}

func (b *builder) nestedRange(from, to int, rule string) (any, error) {
	b.conf.Logger.Debug("nested match", zap.String("rule", rule), zap.Int("from", from), zap.Int("to", to))
	n, e := b.conf.Parser.MatchRange(b.ctx, b.src, from, to, rule)
	if e != nil {
		return nil, e
	}
	return b.value(n)
}

// nestedInlines matches text between from and to as inline lines.
func (b *builder) nestedInlines(from, to int) ([]ast.Inline, error) {
	if from >= to {
		return []ast.Inline{}, nil
	}

	v, e := b.nestedRange(from, to, "InlineLines")
	if e != nil {
		return nil, e
	}
	result, ok := v.([]ast.Inline)
	if !ok {
		return nil, unexpectedValueError("InlineLines", "inline elements", v)
	}
	return result, nil
}

// optional returns pointer to v if v is defined, zero values count as defined.
func optional[T any](v T, defined bool) *T {
	if !defined {
		return nil
	}
	return &v
}
