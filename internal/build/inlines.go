package build

import (
	"strconv"

	"github.com/ava12/adoc/ast"
	"github.com/ava12/adoc/tree"
)

func (b *builder) InlineElementOrText(n *tree.Node) (any, error) {
	return b.only(n)
}

func (b *builder) InlineElement(n *tree.Node) (any, error) {
	return b.only(n)
}

func (b *builder) PlainText(n *tree.Node) (any, error) {
	return &ast.PlainText{Content: n.Text}, nil
}

func (b *builder) ConstrainedBold(n *tree.Node) (any, error) {
	content, e := b.inlineChildren(n)
	if e != nil {
		return nil, e
	}
	return &ast.ConstrainedBold{Content: content}, nil
}

func (b *builder) UnconstrainedBold(n *tree.Node) (any, error) {
	inner, e := b.inner(n, "ConstrainedBold")
	if e != nil {
		return nil, e
	}
	return &ast.UnconstrainedBold{Content: []ast.Inline{inner}}, nil
}

func (b *builder) ConstrainedItalic(n *tree.Node) (any, error) {
	content, e := b.inlineChildren(n)
	if e != nil {
		return nil, e
	}
	return &ast.ConstrainedItalic{Content: content}, nil
}

func (b *builder) UnconstrainedItalic(n *tree.Node) (any, error) {
	inner, e := b.inner(n, "ConstrainedItalic")
	if e != nil {
		return nil, e
	}
	return &ast.UnconstrainedItalic{Content: []ast.Inline{inner}}, nil
}

// inner returns the constrained element enclosed in unconstrained one.
func (b *builder) inner(n *tree.Node, rule string) (ast.Inline, error) {
	in := first(n, rule)
	if in == nil {
		return nil, missingNodeError(n.Rule, rule)
	}
	v, e := b.value(in)
	if e != nil {
		return nil, e
	}
	result, ok := v.(ast.Inline)
	if !ok {
		return nil, unexpectedValueError(n.Rule, rule, v)
	}
	return result, nil
}

func (b *builder) MonospaceText(n *tree.Node) (any, error) {
	content, e := b.inlineChildren(n)
	if e != nil {
		return nil, e
	}
	return &ast.MonospaceText{Content: content}, nil
}

func (b *builder) SubscriptText(n *tree.Node) (any, error) {
	content, e := b.inlineChildren(n)
	if e != nil {
		return nil, e
	}
	return &ast.SubscriptText{Content: content}, nil
}

func (b *builder) SuperscriptText(n *tree.Node) (any, error) {
	content, e := b.inlineChildren(n)
	if e != nil {
		return nil, e
	}
	return &ast.SuperscriptText{Content: content}, nil
}

func (b *builder) Link(n *tree.Node) (any, error) {
	return &ast.Link{
		URL:  textOf(first(n, "link_target")),
		Text: textOf(first(n, "link_text")),
	}, nil
}

func (b *builder) InlineImage(n *tree.Node) (any, error) {
	attrs, e := b.imageAttributes(n)
	if e != nil {
		return nil, e
	}
	return &ast.InlineImage{
		URL:    textOf(first(n, "image_target")),
		Alt:    attrs.alt,
		Width:  attrs.width,
		Height: attrs.height,
	}, nil
}

func (b *builder) Footnote(n *tree.Node) (any, error) {
	id, ide := strconv.Atoi(textOf(first(n, "footnote_id")))
	text := first(n, "footnote_text")
	if text == nil {
		return nil, missingNodeError(n.Rule, "footnote_text")
	}
	content, e := b.nestedInlines(text.Start, text.End)
	if e != nil {
		return nil, e
	}
	return &ast.Footnote{ID: optional(id, ide == nil), Text: content}, nil
}

func (b *builder) CrossReference(n *tree.Node) (any, error) {
	xref := &ast.CrossReference{ID: textOf(first(n, "xref_id"))}
	if text := textOf(first(n, "xref_text")); text != "" {
		xref.Text = &text
	}
	return xref, nil
}

func (b *builder) InlinePassthrough(n *tree.Node) (any, error) {
	return &ast.InlinePassthrough{Content: textOf(first(n, "passthrough_text"))}, nil
}

func (b *builder) AttributeReference(n *tree.Node) (any, error) {
	return &ast.AttributeReference{Name: textOf(first(n, "attribute_name"))}, nil
}

func (b *builder) UrlMacro(n *tree.Node) (any, error) {
	scheme := textOf(first(n, "url_scheme"))
	m := &ast.UrlMacro{
		Scheme: scheme,
		URL:    scheme + ":" + textOf(first(n, "url_rest")),
	}
	if list := first(n, "AttributeList"); list != nil {
		attrs, e := b.attributeList(list)
		if e != nil {
			return nil, e
		}
		m.Attributes = attrs
	}
	return m, nil
}
