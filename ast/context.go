package ast

import "strings"

// Context is the semantic category of a block.
type Context string

const (
	ContextSection       Context = "section"
	ContextParagraph     Context = "paragraph"
	ContextListing       Context = "listing"
	ContextSource        Context = "source"
	ContextLiteral       Context = "literal"
	ContextQuote         Context = "quote"
	ContextVerse         Context = "verse"
	ContextTable         Context = "table"
	ContextAdmonition    Context = "admonition"
	ContextSidebar       Context = "sidebar"
	ContextPass          Context = "pass"
	ContextStem          Context = "stem"
	ContextLatexmath     Context = "latexmath"
	ContextAsciimath     Context = "asciimath"
	ContextComment       Context = "comment"
	ContextExample       Context = "example"
	ContextOpen          Context = "open"
	ContextMacro         Context = "macro"
	ContextImage         Context = "image"
	ContextThematicBreak Context = "thematic_break"
	ContextBlankLine     Context = "blank_line"
	ContextUlist         Context = "ulist"
	ContextOlist         Context = "olist"
	ContextDlist         Context = "dlist"
	ContextAbstract      Context = "abstract"
	ContextPartintro     Context = "partintro"
	ContextUnknown       Context = "unknown"
)

// ContentModel defines the shape of block content.
type ContentModel string

const (
	Compound  ContentModel = "compound" // []Block
	Simple    ContentModel = "simple"   // []Inline
	Verbatim  ContentModel = "verbatim" // string
	Raw       ContentModel = "raw"      // string
	Empty     ContentModel = "empty"    // no content
	TableRows ContentModel = "table"    // []TableRow
	Items     ContentModel = "list"     // list items
	Unknown   ContentModel = "unknown"
)

var contentModels = map[Context]ContentModel{
	ContextSection:       Simple,
	ContextParagraph:     Simple,
	ContextVerse:         Simple,
	ContextListing:       Verbatim,
	ContextSource:        Verbatim,
	ContextLiteral:       Verbatim,
	ContextQuote:         Compound,
	ContextExample:       Compound,
	ContextSidebar:       Compound,
	ContextOpen:          Compound,
	ContextAdmonition:    Compound,
	ContextAbstract:      Compound,
	ContextPartintro:     Compound,
	ContextPass:          Raw,
	ContextStem:          Raw,
	ContextLatexmath:     Raw,
	ContextAsciimath:     Raw,
	ContextComment:       Raw,
	ContextMacro:         Raw,
	ContextTable:         TableRows,
	ContextUlist:         Items,
	ContextOlist:         Items,
	ContextDlist:         Items,
	ContextImage:         Empty,
	ContextThematicBreak: Empty,
	ContextBlankLine:     Empty,
}

// Model returns the content model of blocks having context c.
func (c Context) Model() ContentModel {
	if m, has := contentModels[c]; has {
		return m
	}
	return Unknown
}

// IsKnown reports whether c is one of the defined contexts other than ContextUnknown.
func (c Context) IsKnown() bool {
	_, has := contentModels[c]
	return has
}

// AdmonitionKinds lists admonition labels.
var AdmonitionKinds = []string{"NOTE", "TIP", "IMPORTANT", "WARNING", "CAUTION"}

// IsAdmonitionKind reports whether style (in any letter case) is an admonition label.
func IsAdmonitionKind(style string) bool {
	style = strings.ToUpper(style)
	for _, k := range AdmonitionKinds {
		if k == style {
			return true
		}
	}
	return false
}
