package ast

type PlainText struct {
	Content string `json:"content"`
}

// ConstrainedBold is *text* bounded by non-word characters.
type ConstrainedBold struct {
	Content []Inline `json:"content"`
}

// UnconstrainedBold is **text**.
type UnconstrainedBold struct {
	Content []Inline `json:"content"`
}

// ConstrainedItalic is _text_ bounded by non-word characters.
type ConstrainedItalic struct {
	Content []Inline `json:"content"`
}

// UnconstrainedItalic is __text__.
type UnconstrainedItalic struct {
	Content []Inline `json:"content"`
}

type MonospaceText struct {
	Content []Inline `json:"content"`
}

type SubscriptText struct {
	Content []Inline `json:"content"`
}

type SuperscriptText struct {
	Content []Inline `json:"content"`
}

// Link is link:url[text].
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// InlineImage is image:url[alt,width,height].
type InlineImage struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  *int   `json:"width,omitempty"`
	Height *int   `json:"height,omitempty"`
}

// Footnote is footnote:id[text], ID is nil if omitted.
type Footnote struct {
	ID   *int     `json:"id,omitempty"`
	Text []Inline `json:"text"`
}

// CrossReference is <<id>> or <<id,text>>. Text is nil unless display text is not empty.
type CrossReference struct {
	ID   string  `json:"id"`
	Text *string `json:"text,omitempty"`
}

// InlinePassthrough is +++text+++.
type InlinePassthrough struct {
	Content string `json:"content"`
}

// AttributeReference is {name}, left unresolved.
type AttributeReference struct {
	Name string `json:"name"`
}

// UrlMacro is a bare URL with optional attribute list: https://host/path[text].
// URL includes the scheme.
type UrlMacro struct {
	Scheme     string           `json:"scheme"`
	URL        string           `json:"url"`
	Attributes []AttributeEntry `json:"attributes,omitempty"`
}

func (*PlainText) Type() string           { return "PlainText" }
func (*ConstrainedBold) Type() string     { return "ConstrainedBold" }
func (*UnconstrainedBold) Type() string   { return "UnconstrainedBold" }
func (*ConstrainedItalic) Type() string   { return "ConstrainedItalic" }
func (*UnconstrainedItalic) Type() string { return "UnconstrainedItalic" }
func (*MonospaceText) Type() string       { return "MonospaceText" }
func (*SubscriptText) Type() string       { return "SubscriptText" }
func (*SuperscriptText) Type() string     { return "SuperscriptText" }
func (*Link) Type() string                { return "Link" }
func (*InlineImage) Type() string         { return "InlineImage" }
func (*Footnote) Type() string            { return "Footnote" }
func (*CrossReference) Type() string      { return "CrossReference" }
func (*InlinePassthrough) Type() string   { return "InlinePassthrough" }
func (*AttributeReference) Type() string  { return "AttributeReference" }
func (*UrlMacro) Type() string            { return "UrlMacro" }

func (*PlainText) inline()           {}
func (*ConstrainedBold) inline()     {}
func (*UnconstrainedBold) inline()   {}
func (*ConstrainedItalic) inline()   {}
func (*UnconstrainedItalic) inline() {}
func (*MonospaceText) inline()       {}
func (*SubscriptText) inline()       {}
func (*SuperscriptText) inline()     {}
func (*Link) inline()                {}
func (*InlineImage) inline()         {}
func (*Footnote) inline()            {}
func (*CrossReference) inline()      {}
func (*InlinePassthrough) inline()   {}
func (*AttributeReference) inline()  {}
func (*UrlMacro) inline()            {}
