// Package ast defines the typed syntax tree of an AsciiDoc document.
//
// Block and Inline are closed unions: only types of this package implement them.
// Every node encodes to JSON as an object with "type" member holding the name of its Go type.
package ast

import "strings"

// Node is a document, a block, an inline element, or a part of a block.
type Node interface {
	// Type returns node type name used as "type" JSON member.
	Type() string
}

// Block is a block element.
type Block interface {
	Node
	// Common returns a copy of the fields shared by all blocks.
	Common() BlockBase
	block()
}

// Inline is an inline element.
type Inline interface {
	Node
	inline()
}

// Document is the root node.
type Document struct {
	// Attributes contains document attribute entries (:name: value) in source order.
	Attributes []AttributeEntry `json:"attributes,omitempty"`
	Blocks     []Block          `json:"blocks"`
}

func (*Document) Type() string { return "Document" }

// BlockBase contains fields shared by all blocks.
type BlockBase struct {
	Context  Context   `json:"context"`
	Anchor   *Anchor   `json:"anchor,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`

	// Delimiter contains the opening fence of a delimited block.
	Delimiter string `json:"delimiter,omitempty"`
}

func (b BlockBase) Common() BlockBase { return b }
func (BlockBase) block()              {}

// Anchor is a cross reference target declared before a block: [[id]] or [[id, reftext]].
type Anchor struct {
	ID      string `json:"id"`
	Reftext string `json:"reftext,omitempty"`
}

// Metadata contains block title and attributes declared before a block.
type Metadata struct {
	Title      string           `json:"title,omitempty"`
	Attributes []AttributeEntry `json:"attributes,omitempty"`
	ID         string           `json:"id,omitempty"`
	Roles      []string         `json:"roles,omitempty"`
	Options    []string         `json:"options,omitempty"`
}

// Style returns the block style: the first attribute if it is positional, without #id, .role, and %option shorthands.
// Returns empty string if m is nil or there is no style.
func (m *Metadata) Style() string {
	if m == nil || len(m.Attributes) == 0 || !m.Attributes[0].IsPositional() {
		return ""
	}
	style := m.Attributes[0].Name
	if i := strings.IndexAny(style, "#.%"); i >= 0 {
		style = style[:i]
	}
	return strings.TrimSpace(style)
}

// Positional returns i-th positional attribute (zero-based) or empty string.
func (m *Metadata) Positional(i int) string {
	if m == nil {
		return ""
	}
	for _, a := range m.Attributes {
		if !a.IsPositional() {
			continue
		}
		if i == 0 {
			return a.Name
		}
		i--
	}
	return ""
}

// AttributeEntry is a positional (Value is nil) or named attribute.
// Positional attribute text is stored in Name.
type AttributeEntry struct {
	Name  string   `json:"name"`
	Value []Inline `json:"value,omitempty"`
}

func (*AttributeEntry) Type() string { return "AttributeEntry" }

// IsPositional reports whether e has no value.
func (e AttributeEntry) IsPositional() bool {
	return e.Value == nil
}

// Text returns concatenated plain text of attribute value.
func (e AttributeEntry) Text() string {
	return PlainTextOf(e.Value)
}

// PlainTextOf returns concatenated content of PlainText elements found in inlines, recursively.
func PlainTextOf(inlines []Inline) string {
	var b strings.Builder
	for _, i := range inlines {
		Inspect(i, func(n Node) bool {
			if pt, ok := n.(*PlainText); ok {
				b.WriteString(pt.Content)
			}
			return true
		})
	}
	return b.String()
}
