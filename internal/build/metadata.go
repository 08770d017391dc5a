package build

import (
	"strconv"
	"strings"

	"github.com/ava12/adoc/ast"
	"github.com/ava12/adoc/tree"
)

func (b *builder) BlockAnchor(n *tree.Node) (any, error) {
	return &ast.Anchor{
		ID:      textOf(first(n, "anchor_id")),
		Reftext: strings.TrimSpace(textOf(first(n, "anchor_reftext"))),
	}, nil
}

func (b *builder) BlockMetaData(n *tree.Node) (any, error) {
	meta := &ast.Metadata{}
	for _, c := range ruleNodes(n) {
		v, e := b.value(c)
		if e != nil {
			return nil, e
		}

		switch v := v.(type) {
		case string:
			meta.Title = v
		case []ast.AttributeEntry:
			meta.Attributes = append(meta.Attributes, v...)
		default:
			return nil, unexpectedValueError(n.Rule, "title or attributes", v)
		}
	}

	applyShorthands(meta)
	return meta, nil
}

// applyShorthands fills ID, Roles, and Options from the first positional attribute
// (style#id.role%option) and from id, role, and options named attributes.
func applyShorthands(meta *ast.Metadata) {
	if len(meta.Attributes) > 0 && meta.Attributes[0].IsPositional() {
		parseShorthand(meta, meta.Attributes[0].Name)
	}

	for _, a := range meta.Attributes {
		if a.IsPositional() {
			continue
		}

		switch a.Name {
		case "id":
			meta.ID = a.Text()
		case "role":
			meta.Roles = append(meta.Roles, strings.Fields(a.Text())...)
		case "options", "opts":
			for _, opt := range strings.Split(a.Text(), ",") {
				if opt = strings.TrimSpace(opt); opt != "" {
					meta.Options = append(meta.Options, opt)
				}
			}
		}
	}
}

func parseShorthand(meta *ast.Metadata, text string) {
	i := strings.IndexAny(text, "#.%")
	for i >= 0 {
		marker := text[i]
		text = text[i+1:]
		i = strings.IndexAny(text, "#.%")
		value := text
		if i >= 0 {
			value = text[:i]
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch marker {
		case '#':
			meta.ID = value
		case '.':
			meta.Roles = append(meta.Roles, value)
		case '%':
			meta.Options = append(meta.Options, value)
		}
	}
}

func (b *builder) BlockTitle(n *tree.Node) (any, error) {
	return strings.TrimSpace(textOf(first(n, "title_text"))), nil
}

func (b *builder) BlockAttributeLine(n *tree.Node) (any, error) {
	list := first(n, "AttributeList")
	if list == nil {
		return nil, missingNodeError(n.Rule, "AttributeList")
	}
	return b.value(list)
}

func (b *builder) AttributeList(n *tree.Node) (any, error) {
	return b.attributeList(n)
}

func (b *builder) attributeList(n *tree.Node) ([]ast.AttributeEntry, error) {
	attrs := []ast.AttributeEntry{}
	if n.Text == "[]" {
		return attrs, nil
	}

	for _, an := range find(n, "Attribute") {
		v, e := b.value(an)
		if e != nil {
			return nil, e
		}
		attrs = append(attrs, v.(ast.AttributeEntry))
	}
	return attrs, nil
}

func (b *builder) Attribute(n *tree.Node) (any, error) {
	return b.only(n)
}

func (b *builder) AttributeNamed(n *tree.Node) (any, error) {
	entry := ast.AttributeEntry{
		Name:  textOf(first(n, "attribute_name")),
		Value: []ast.Inline{},
	}
	if value := attributeValue(first(n, "attribute_value")); value != "" {
		entry.Value = append(entry.Value, &ast.PlainText{Content: value})
	}
	return entry, nil
}

func (b *builder) AttributePositional(n *tree.Node) (any, error) {
	return ast.AttributeEntry{Name: attributeValue(first(n, "attribute_value"))}, nil
}

// attributeValue returns trimmed value text with enclosing double quotes removed.
func attributeValue(n *tree.Node) string {
	value := strings.TrimSpace(textOf(n))
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return value
}

type imageAttributes struct {
	alt           string
	width, height *int
}

func (b *builder) ImageAttributes(n *tree.Node) (any, error) {
	attrs := imageAttributes{alt: strings.TrimSpace(textOf(first(n, "image_alt")))}
	dims := find(n, "image_dim")
	if len(dims) > 0 {
		attrs.width = dimension(dims[0])
	}
	if len(dims) > 1 {
		attrs.height = dimension(dims[1])
	}
	return attrs, nil
}

func dimension(n *tree.Node) *int {
	v, e := strconv.Atoi(strings.TrimSpace(n.Text))
	return optional(v, e == nil)
}

func (b *builder) imageAttributes(n *tree.Node) (imageAttributes, error) {
	an := first(n, "ImageAttributes")
	if an == nil {
		return imageAttributes{}, missingNodeError(n.Rule, "ImageAttributes")
	}
	v, e := b.value(an)
	if e != nil {
		return imageAttributes{}, e
	}
	return v.(imageAttributes), nil
}
