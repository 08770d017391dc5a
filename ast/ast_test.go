package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func sampleDocument() *Document {
	custom := "Custom"
	return &Document{
		Attributes: []AttributeEntry{{Name: "toc", Value: []Inline{&PlainText{Content: "left"}}}},
		Blocks: []Block{
			&Header{
				BlockBase: BlockBase{Context: ContextSection, Anchor: &Anchor{ID: "id"}},
				Level:     1,
				Content:   []Inline{&PlainText{Content: "Title"}},
			},
			&Paragraph{
				BlockBase: BlockBase{Context: ContextParagraph},
				Content: []Inline{
					&PlainText{Content: "Some "},
					&ConstrainedBold{Content: []Inline{&PlainText{Content: "bold"}}},
					&CrossReference{ID: "a"},
					&CrossReference{ID: "b", Text: &custom},
				},
			},
			&List{
				BlockBase: BlockBase{Context: ContextUlist},
				Items:     []ListItem{{Depth: 0, Content: []Inline{&Footnote{ID: intPtr(0)}}}},
			},
			&HorizontalRule{BlockBase{Context: ContextThematicBreak}},
		},
	}
}

func TestMarshalJSON(t *testing.T) {
	data, e := json.Marshal(sampleDocument())
	require.NoError(t, e)
	expected := `{
		"type": "Document",
		"attributes": [{"type": "AttributeEntry", "name": "toc", "value": [{"type": "PlainText", "content": "left"}]}],
		"blocks": [
			{"type": "Header", "context": "section", "anchor": {"id": "id"}, "level": 1,
				"content": [{"type": "PlainText", "content": "Title"}]},
			{"type": "Paragraph", "context": "paragraph", "content": [
				{"type": "PlainText", "content": "Some "},
				{"type": "ConstrainedBold", "content": [{"type": "PlainText", "content": "bold"}]},
				{"type": "CrossReference", "id": "a"},
				{"type": "CrossReference", "id": "b", "text": "Custom"}
			]},
			{"type": "List", "context": "ulist", "ordered": false, "content": [
				{"type": "ListItem", "depth": 0, "content": [{"type": "Footnote", "id": 0, "text": null}]}
			]},
			{"type": "HorizontalRule", "context": "thematic_break"}
		]
	}`
	assert.JSONEq(t, expected, string(data))
}

func TestMetadataStyle(t *testing.T) {
	samples := []struct {
		attrs []AttributeEntry
		style string
		lang  string
	}{
		{nil, "", ""},
		{[]AttributeEntry{{Name: "source"}, {Name: "go"}}, "source", "go"},
		{[]AttributeEntry{{Name: "quote#intro.lead%hardbreaks"}}, "quote", ""},
		{[]AttributeEntry{{Name: "#intro"}}, "", ""},
		{[]AttributeEntry{{Name: "role", Value: []Inline{}}, {Name: "source"}, {Name: "go"}}, "", "go"},
	}

	for i, s := range samples {
		m := &Metadata{Attributes: s.attrs}
		assert.Equal(t, s.style, m.Style(), "sample #%d", i)
		assert.Equal(t, s.lang, m.Positional(1), "sample #%d", i)
	}

	var m *Metadata
	assert.Equal(t, "", m.Style())
}

func TestContentModel(t *testing.T) {
	assert.Equal(t, Compound, ContextExample.Model())
	assert.Equal(t, Simple, ContextVerse.Model())
	assert.Equal(t, Verbatim, ContextSource.Model())
	assert.Equal(t, Raw, ContextStem.Model())
	assert.Equal(t, TableRows, ContextTable.Model())
	assert.Equal(t, Empty, ContextBlankLine.Model())
	assert.Equal(t, Unknown, Context("video").Model())
	assert.False(t, ContextUnknown.IsKnown())
	assert.True(t, IsAdmonitionKind("note"))
	assert.False(t, IsAdmonitionKind("quote"))
}

func TestCollect(t *testing.T) {
	doc := sampleDocument()
	refs := Collect[*CrossReference](doc)
	require.Len(t, refs, 2)
	assert.Equal(t, "b", refs[1].ID)

	assert.Len(t, Collect[Block](doc), 4)
	assert.Len(t, Collect[*ListItem](doc), 1)

	var types []string
	Inspect(doc, func(n Node) bool {
		types = append(types, n.Type())
		_, isPara := n.(*Paragraph)
		return !isPara
	})
	assert.Equal(t, []string{"Document", "Header", "PlainText", "Paragraph", "List", "ListItem", "Footnote", "HorizontalRule"}, types)
}

func TestPlainTextOf(t *testing.T) {
	inlines := []Inline{
		&PlainText{Content: "a "},
		&UnconstrainedBold{Content: []Inline{&ConstrainedBold{Content: []Inline{&PlainText{Content: "b"}}}}},
		&AttributeReference{Name: "c"},
	}
	assert.Equal(t, "a b", PlainTextOf(inlines))
}
