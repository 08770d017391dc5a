package ast

import (
	"bytes"
	"encoding/json"
)

// marshalTyped encodes v (an alias of n type without MarshalJSON method) and inserts "type" member.
func marshalTyped(n Node, v any) ([]byte, error) {
	content, e := json.Marshal(v)
	if e != nil {
		return nil, e
	}

	var b bytes.Buffer
	b.WriteString(`{"type":`)
	typ, _ := json.Marshal(n.Type())
	b.Write(typ)
	content = bytes.TrimPrefix(content, []byte{'{'})
	if len(content) > 1 {
		b.WriteByte(',')
	}
	b.Write(content)
	return b.Bytes(), nil
}

func (n *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	return marshalTyped(n, (*alias)(n))
}

func (n *AttributeEntry) MarshalJSON() ([]byte, error) {
	type alias AttributeEntry
	return marshalTyped(n, (*alias)(n))
}

func (n *ListItem) MarshalJSON() ([]byte, error) {
	type alias ListItem
	return marshalTyped(n, (*alias)(n))
}

func (n *DescriptionItem) MarshalJSON() ([]byte, error) {
	type alias DescriptionItem
	return marshalTyped(n, (*alias)(n))
}

func (n *TableRow) MarshalJSON() ([]byte, error) {
	type alias TableRow
	return marshalTyped(n, (*alias)(n))
}

func (n *TableCell) MarshalJSON() ([]byte, error) {
	type alias TableCell
	return marshalTyped(n, (*alias)(n))
}

func (n *Header) MarshalJSON() ([]byte, error) {
	type alias Header
	return marshalTyped(n, (*alias)(n))
}

func (n *HeaderSetext) MarshalJSON() ([]byte, error) {
	type alias HeaderSetext
	return marshalTyped(n, (*alias)(n))
}

func (n *Paragraph) MarshalJSON() ([]byte, error) {
	type alias Paragraph
	return marshalTyped(n, (*alias)(n))
}

func (n *QuotedParagraph) MarshalJSON() ([]byte, error) {
	type alias QuotedParagraph
	return marshalTyped(n, (*alias)(n))
}

func (n *Verse) MarshalJSON() ([]byte, error) {
	type alias Verse
	return marshalTyped(n, (*alias)(n))
}

func (n *List) MarshalJSON() ([]byte, error) {
	type alias List
	return marshalTyped(n, (*alias)(n))
}

func (n *DescriptionList) MarshalJSON() ([]byte, error) {
	type alias DescriptionList
	return marshalTyped(n, (*alias)(n))
}

func (n *Listing) MarshalJSON() ([]byte, error) {
	type alias Listing
	return marshalTyped(n, (*alias)(n))
}

func (n *Source) MarshalJSON() ([]byte, error) {
	type alias Source
	return marshalTyped(n, (*alias)(n))
}

func (n *Literal) MarshalJSON() ([]byte, error) {
	type alias Literal
	return marshalTyped(n, (*alias)(n))
}

func (n *Passthrough) MarshalJSON() ([]byte, error) {
	type alias Passthrough
	return marshalTyped(n, (*alias)(n))
}

func (n *Comment) MarshalJSON() ([]byte, error) {
	type alias Comment
	return marshalTyped(n, (*alias)(n))
}

func (n *Quote) MarshalJSON() ([]byte, error) {
	type alias Quote
	return marshalTyped(n, (*alias)(n))
}

func (n *Example) MarshalJSON() ([]byte, error) {
	type alias Example
	return marshalTyped(n, (*alias)(n))
}

func (n *Sidebar) MarshalJSON() ([]byte, error) {
	type alias Sidebar
	return marshalTyped(n, (*alias)(n))
}

func (n *Open) MarshalJSON() ([]byte, error) {
	type alias Open
	return marshalTyped(n, (*alias)(n))
}

func (n *Abstract) MarshalJSON() ([]byte, error) {
	type alias Abstract
	return marshalTyped(n, (*alias)(n))
}

func (n *Partintro) MarshalJSON() ([]byte, error) {
	type alias Partintro
	return marshalTyped(n, (*alias)(n))
}

func (n *Admonition) MarshalJSON() ([]byte, error) {
	type alias Admonition
	return marshalTyped(n, (*alias)(n))
}

func (n *Table) MarshalJSON() ([]byte, error) {
	type alias Table
	return marshalTyped(n, (*alias)(n))
}

func (n *HorizontalRule) MarshalJSON() ([]byte, error) {
	type alias HorizontalRule
	return marshalTyped(n, (*alias)(n))
}

func (n *BlankLine) MarshalJSON() ([]byte, error) {
	type alias BlankLine
	return marshalTyped(n, (*alias)(n))
}

func (n *Macro) MarshalJSON() ([]byte, error) {
	type alias Macro
	return marshalTyped(n, (*alias)(n))
}

func (n *BlockImage) MarshalJSON() ([]byte, error) {
	type alias BlockImage
	return marshalTyped(n, (*alias)(n))
}

func (n *PlainText) MarshalJSON() ([]byte, error) {
	type alias PlainText
	return marshalTyped(n, (*alias)(n))
}

func (n *ConstrainedBold) MarshalJSON() ([]byte, error) {
	type alias ConstrainedBold
	return marshalTyped(n, (*alias)(n))
}

func (n *UnconstrainedBold) MarshalJSON() ([]byte, error) {
	type alias UnconstrainedBold
	return marshalTyped(n, (*alias)(n))
}

func (n *ConstrainedItalic) MarshalJSON() ([]byte, error) {
	type alias ConstrainedItalic
	return marshalTyped(n, (*alias)(n))
}

func (n *UnconstrainedItalic) MarshalJSON() ([]byte, error) {
	type alias UnconstrainedItalic
	return marshalTyped(n, (*alias)(n))
}

func (n *MonospaceText) MarshalJSON() ([]byte, error) {
	type alias MonospaceText
	return marshalTyped(n, (*alias)(n))
}

func (n *SubscriptText) MarshalJSON() ([]byte, error) {
	type alias SubscriptText
	return marshalTyped(n, (*alias)(n))
}

func (n *SuperscriptText) MarshalJSON() ([]byte, error) {
	type alias SuperscriptText
	return marshalTyped(n, (*alias)(n))
}

func (n *Link) MarshalJSON() ([]byte, error) {
	type alias Link
	return marshalTyped(n, (*alias)(n))
}

func (n *InlineImage) MarshalJSON() ([]byte, error) {
	type alias InlineImage
	return marshalTyped(n, (*alias)(n))
}

func (n *Footnote) MarshalJSON() ([]byte, error) {
	type alias Footnote
	return marshalTyped(n, (*alias)(n))
}

func (n *CrossReference) MarshalJSON() ([]byte, error) {
	type alias CrossReference
	return marshalTyped(n, (*alias)(n))
}

func (n *InlinePassthrough) MarshalJSON() ([]byte, error) {
	type alias InlinePassthrough
	return marshalTyped(n, (*alias)(n))
}

func (n *AttributeReference) MarshalJSON() ([]byte, error) {
	type alias AttributeReference
	return marshalTyped(n, (*alias)(n))
}

func (n *UrlMacro) MarshalJSON() ([]byte, error) {
	type alias UrlMacro
	return marshalTyped(n, (*alias)(n))
}
