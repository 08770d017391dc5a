package ast

// Header is a section title: = Title ... ====== Title.
type Header struct {
	BlockBase
	Level   int      `json:"level"`
	Content []Inline `json:"content"`
}

// HeaderSetext is a section title underlined with === (level 1) or --- (level 2).
type HeaderSetext struct {
	BlockBase
	Level   int      `json:"level"`
	Content []Inline `json:"content"`
}

type Paragraph struct {
	BlockBase
	Content []Inline `json:"content"`
}

// QuotedParagraph is a "quoted text" followed by -- citation line.
type QuotedParagraph struct {
	BlockBase
	Citation string   `json:"citation"`
	Content  []Inline `json:"content"`
}

type Verse struct {
	BlockBase
	Attribution string   `json:"attribution,omitempty"`
	Content     []Inline `json:"content"`
}

// List is an ordered or unordered list.
type List struct {
	BlockBase
	Ordered bool       `json:"ordered"`
	Items   []ListItem `json:"content"`
}

// ListItem is a list item, Depth is zero-based nesting level derived from marker length.
type ListItem struct {
	Depth   int      `json:"depth"`
	Content []Inline `json:"content"`
}

func (*ListItem) Type() string { return "ListItem" }

type DescriptionList struct {
	BlockBase
	Items []DescriptionItem `json:"content"`
}

type DescriptionItem struct {
	Term        string   `json:"term"`
	Description []Inline `json:"description"`
}

func (*DescriptionItem) Type() string { return "DescriptionItem" }

// Listing is a verbatim block delimited with ----.
type Listing struct {
	BlockBase
	Content string `json:"content"`
}

// Source is a listing block with "source" style, Language is the second positional attribute.
type Source struct {
	BlockBase
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
}

// Literal is a verbatim block delimited with .... or a listing with "literal" style.
type Literal struct {
	BlockBase
	Content string `json:"content"`
}

// Passthrough is a raw block, its context is one of pass, stem, latexmath, asciimath.
type Passthrough struct {
	BlockBase
	Content string `json:"content"`
}

// Comment is a comment block or a line comment.
type Comment struct {
	BlockBase
	Content string `json:"content"`
}

type Quote struct {
	BlockBase
	Content []Block `json:"content"`
}

type Example struct {
	BlockBase
	Content []Block `json:"content"`
}

type Sidebar struct {
	BlockBase
	Content []Block `json:"content"`
}

type Open struct {
	BlockBase
	Content []Block `json:"content"`
}

type Abstract struct {
	BlockBase
	Content []Block `json:"content"`
}

type Partintro struct {
	BlockBase
	Content []Block `json:"content"`
}

// Admonition is a NOTE: paragraph or a compound block with admonition style.
type Admonition struct {
	BlockBase
	Kind    string  `json:"admonitionType"`
	Content []Block `json:"content"`
}

type Table struct {
	BlockBase
	Rows []TableRow `json:"content"`
}

type TableRow struct {
	Cells []TableCell `json:"content"`
}

func (*TableRow) Type() string { return "TableRow" }

type TableCell struct {
	Content []Inline `json:"content"`
}

func (*TableCell) Type() string { return "TableCell" }

// HorizontalRule is a thematic break: '''.
type HorizontalRule struct {
	BlockBase
}

type BlankLine struct {
	BlockBase
}

// Macro is a block macro: name::target[attributes].
// Content contains raw text between the brackets.
type Macro struct {
	BlockBase
	Name       string           `json:"name"`
	Target     string           `json:"target,omitempty"`
	Attributes []AttributeEntry `json:"attributes,omitempty"`
	Content    string           `json:"content"`
}

// BlockImage is an image::url[alt,width,height] block.
type BlockImage struct {
	BlockBase
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  *int   `json:"width,omitempty"`
	Height *int   `json:"height,omitempty"`
}

func (*Header) Type() string          { return "Header" }
func (*HeaderSetext) Type() string    { return "HeaderSetext" }
func (*Paragraph) Type() string       { return "Paragraph" }
func (*QuotedParagraph) Type() string { return "QuotedParagraph" }
func (*Verse) Type() string           { return "Verse" }
func (*List) Type() string            { return "List" }
func (*DescriptionList) Type() string { return "DescriptionList" }
func (*Listing) Type() string         { return "Listing" }
func (*Source) Type() string          { return "Source" }
func (*Literal) Type() string         { return "Literal" }
func (*Passthrough) Type() string     { return "Passthrough" }
func (*Comment) Type() string         { return "Comment" }
func (*Quote) Type() string           { return "Quote" }
func (*Example) Type() string         { return "Example" }
func (*Sidebar) Type() string         { return "Sidebar" }
func (*Open) Type() string            { return "Open" }
func (*Abstract) Type() string        { return "Abstract" }
func (*Partintro) Type() string       { return "Partintro" }
func (*Admonition) Type() string      { return "Admonition" }
func (*Table) Type() string           { return "Table" }
func (*HorizontalRule) Type() string  { return "HorizontalRule" }
func (*BlankLine) Type() string       { return "BlankLine" }
func (*Macro) Type() string           { return "Macro" }
func (*BlockImage) Type() string      { return "BlockImage" }

// interface check
var _ = []Block{
	&Header{},
	&HeaderSetext{},
	&Paragraph{},
	&QuotedParagraph{},
	&Verse{},
	&List{},
	&DescriptionList{},
	&Listing{},
	&Source{},
	&Literal{},
	&Passthrough{},
	&Comment{},
	&Quote{},
	&Example{},
	&Sidebar{},
	&Open{},
	&Abstract{},
	&Partintro{},
	&Admonition{},
	&Table{},
	&HorizontalRule{},
	&BlankLine{},
	&Macro{},
	&BlockImage{},
}
