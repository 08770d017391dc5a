package build

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ava12/adoc/ast"
	"github.com/ava12/adoc/internal/derive"
	"github.com/ava12/adoc/internal/normalize"
	"github.com/ava12/adoc/source"
	"github.com/ava12/adoc/tree"
)

// pending is a block waiting for its anchor, metadata, and resolved context.
type pending struct {
	shape derive.Shape

	// body is the content of a delimited block, construct is nil in this case.
	body *tree.Node

	// construct builds a dedicated block.
	construct func(base ast.BlockBase) ast.Block
}

func dedicated(c ast.Context, construct func(base ast.BlockBase) ast.Block) *pending {
	return &pending{shape: derive.Shape{Context: c}, construct: construct}
}

func (b *builder) Document(n *tree.Node) (any, error) {
	doc := &ast.Document{Blocks: []ast.Block{}}
	values, e := b.values(ruleNodes(n))
	if e != nil {
		return nil, e
	}

	for _, v := range values {
		switch v := v.(type) {
		case ast.Block:
			doc.Blocks = append(doc.Blocks, v)
		case ast.AttributeEntry:
			doc.Attributes = append(doc.Attributes, v)
		case string:
			if strings.TrimSpace(v) != "" {
				return nil, unexpectedValueError(n.Rule, "block", v)
			}
		default:
			return nil, unexpectedValueError(n.Rule, "block", v)
		}
	}
	return doc, nil
}

func (b *builder) Blocks(n *tree.Node) (any, error) {
	return b.blocks(n.Rule, ruleNodes(n))
}

func (b *builder) blocks(rule string, nodes []*tree.Node) ([]ast.Block, error) {
	result := make([]ast.Block, 0, len(nodes))
	for _, n := range nodes {
		v, e := b.value(n)
		if e != nil {
			return nil, e
		}
		block, ok := v.(ast.Block)
		if !ok {
			return nil, unexpectedValueError(rule, "block", v)
		}
		result = append(result, block)
	}
	return result, nil
}

// InlineLines returns the content of all lines, lines are joined with line feeds.
func (b *builder) InlineLines(n *tree.Node) (any, error) {
	var result []ast.Inline
	for i, line := range find(n, "InlineLine") {
		v, e := b.value(line)
		if e != nil {
			return nil, e
		}
		if i > 0 {
			result = append(result, &ast.PlainText{Content: "\n"})
		}
		result = append(result, v.([]ast.Inline)...)
	}

	result = normalize.MergeText(result)
	if result == nil {
		result = []ast.Inline{}
	}
	return result, nil
}

func (b *builder) InlineLine(n *tree.Node) (any, error) {
	return b.inlineChildren(n)
}

func (b *builder) Block(n *tree.Node) (any, error) {
	var (
		anchor *ast.Anchor
		meta   *ast.Metadata
	)
	if an := first(n, "BlockAnchor"); an != nil {
		v, e := b.value(an)
		if e != nil {
			return nil, e
		}
		anchor = v.(*ast.Anchor)
	}
	if mn := first(n, "BlockMetaData"); mn != nil {
		v, e := b.value(mn)
		if e != nil {
			return nil, e
		}
		meta = v.(*ast.Metadata)
	}

	kn := first(n, "BlockKind")
	if kn == nil {
		return nil, missingNodeError(n.Rule, "BlockKind")
	}
	v, e := b.value(kn)
	if e != nil {
		return nil, e
	}
	p, ok := v.(*pending)
	if !ok {
		return nil, unexpectedValueError(n.Rule, "block", v)
	}
	return b.finish(p, anchor, meta)
}

// finish resolves block context and builds the block.
func (b *builder) finish(p *pending, anchor *ast.Anchor, meta *ast.Metadata) (ast.Block, error) {
	shape := p.shape
	shape.Style = meta.Style()
	shape, e := derive.Resolve(shape)
	if e != nil {
		return nil, e
	}

	base := ast.BlockBase{
		Context:   shape.Context,
		Anchor:    anchor,
		Metadata:  meta,
		Delimiter: shape.Delimiter,
	}
	if p.construct != nil {
		return p.construct(base), nil
	}
	return b.delimited(base, shape, p.body, meta)
}

// delimited builds the block of resolved context with body content shaped by the context content model.
func (b *builder) delimited(base ast.BlockBase, shape derive.Shape, body *tree.Node, meta *ast.Metadata) (ast.Block, error) {
	var (
		text    string
		blocks  []ast.Block
		inlines []ast.Inline
	)
	switch shape.Context.Model() {
	case ast.Verbatim, ast.Raw:
		text = verbatim(body.Text)

	case ast.Compound:
		v, e := b.nested(body, "Blocks")
		if e != nil {
			return nil, e
		}
		blocks = v.([]ast.Block)

	case ast.Simple:
		var e error
		inlines, e = b.nestedInlines(body.Start, body.End)
		if e != nil {
			return nil, e
		}

	default:
		return nil, contentModelError(string(shape.Context))
	}

	switch shape.Context {
	case ast.ContextListing:
		return &ast.Listing{BlockBase: base, Content: text}, nil
	case ast.ContextSource:
		return &ast.Source{BlockBase: base, Language: meta.Positional(1), Content: text}, nil
	case ast.ContextLiteral:
		return &ast.Literal{BlockBase: base, Content: text}, nil
	case ast.ContextPass, ast.ContextStem, ast.ContextLatexmath, ast.ContextAsciimath:
		return &ast.Passthrough{BlockBase: base, Content: text}, nil
	case ast.ContextComment:
		return &ast.Comment{BlockBase: base, Content: text}, nil
	case ast.ContextQuote:
		return &ast.Quote{BlockBase: base, Content: blocks}, nil
	case ast.ContextExample:
		return &ast.Example{BlockBase: base, Content: blocks}, nil
	case ast.ContextSidebar:
		return &ast.Sidebar{BlockBase: base, Content: blocks}, nil
	case ast.ContextOpen:
		return &ast.Open{BlockBase: base, Content: blocks}, nil
	case ast.ContextAbstract:
		return &ast.Abstract{BlockBase: base, Content: blocks}, nil
	case ast.ContextPartintro:
		return &ast.Partintro{BlockBase: base, Content: blocks}, nil
	case ast.ContextAdmonition:
		return &ast.Admonition{BlockBase: base, Kind: strings.ToUpper(shape.Style), Content: blocks}, nil
	case ast.ContextVerse:
		return &ast.Verse{BlockBase: base, Content: inlines}, nil
	}
	return nil, contentModelError(string(shape.Context))
}

// verbatim returns body text without the final line break.
func verbatim(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}

func (b *builder) BlockKind(n *tree.Node) (any, error) {
	return b.only(n)
}

func (b *builder) Header(n *tree.Node) (any, error) {
	level := len(textOf(first(n, "header_marker")))
	content, e := b.inlineChildren(n)
	if e != nil {
		return nil, e
	}

	return dedicated(ast.ContextSection, func(base ast.BlockBase) ast.Block {
		return &ast.Header{BlockBase: base, Level: level, Content: content}
	}), nil
}

func (b *builder) HeaderSetext(n *tree.Node) (any, error) {
	level := 2
	if strings.HasPrefix(textOf(first(n, "setext_underline")), "=") {
		level = 1
	}
	content, e := b.inlineChildren(n)
	if e != nil {
		return nil, e
	}

	return dedicated(ast.ContextSection, func(base ast.BlockBase) ast.Block {
		return &ast.HeaderSetext{BlockBase: base, Level: level, Content: content}
	}), nil
}

func (b *builder) Admonition(n *tree.Node) (any, error) {
	kind := textOf(first(n, "admonition_label"))
	content, e := b.segmentContent(n)
	if e != nil {
		return nil, e
	}

	return dedicated(ast.ContextAdmonition, func(base ast.BlockBase) ast.Block {
		para := &ast.Paragraph{BlockBase: ast.BlockBase{Context: ast.ContextParagraph}, Content: content}
		return &ast.Admonition{BlockBase: base, Kind: kind, Content: []ast.Block{para}}
	}), nil
}

func (b *builder) BlockImage(n *tree.Node) (any, error) {
	attrs, e := b.imageAttributes(n)
	if e != nil {
		return nil, e
	}
	url := textOf(first(n, "image_target"))

	return dedicated(ast.ContextImage, func(base ast.BlockBase) ast.Block {
		return &ast.BlockImage{BlockBase: base, URL: url, Alt: attrs.alt, Width: attrs.width, Height: attrs.height}
	}), nil
}

func (b *builder) BlockMacro(n *tree.Node) (any, error) {
	name := textOf(first(n, "macro_name"))
	target := textOf(first(n, "macro_target"))
	list := first(n, "AttributeList")
	if list == nil {
		return nil, missingNodeError(n.Rule, "AttributeList")
	}
	attrs, e := b.attributeList(list)
	if e != nil {
		return nil, e
	}
	content := list.Text[1 : len(list.Text)-1]

	return dedicated(ast.ContextMacro, func(base ast.BlockBase) ast.Block {
		return &ast.Macro{BlockBase: base, Name: name, Target: target, Attributes: attrs, Content: content}
	}), nil
}

func (b *builder) DelimitedBlock(n *tree.Node) (any, error) {
	fence := n.Child(0)
	body := n.Child(2)
	if fence == nil || body == nil {
		return nil, missingNodeError(n.Rule, "fence or body")
	}

	p := &pending{shape: derive.Shape{Delimiter: fence.Text}, body: body}
	if fence.Text == "--" {
		p.shape.Context = ast.ContextOpen
	}
	return p, nil
}

func (b *builder) Table(n *tree.Node) (any, error) {
	rows := []ast.TableRow{}
	for _, rn := range find(n, "TableRow") {
		v, e := b.value(rn)
		if e != nil {
			return nil, e
		}
		rows = append(rows, v.(ast.TableRow))
	}

	return dedicated(ast.ContextTable, func(base ast.BlockBase) ast.Block {
		return &ast.Table{BlockBase: base, Rows: rows}
	}), nil
}

func (b *builder) TableRow(n *tree.Node) (any, error) {
	row := ast.TableRow{Cells: []ast.TableCell{}}
	for _, cn := range find(n, "TableCell") {
		v, e := b.value(cn)
		if e != nil {
			return nil, e
		}
		row.Cells = append(row.Cells, v.(ast.TableCell))
	}
	return row, nil
}

func (b *builder) TableCell(n *tree.Node) (any, error) {
	cell := first(n, "cell_text")
	if cell == nil {
		return nil, missingNodeError(n.Rule, "cell_text")
	}

	from, to := cell.Start, cell.End
	text := cell.Text
	trimmed := strings.TrimLeft(text, " \t")
	from += len(text) - len(trimmed)
	to -= len(trimmed) - len(strings.TrimRight(trimmed, " \t"))

	content, e := b.nestedInlines(from, to)
	if e != nil {
		return nil, e
	}
	return ast.TableCell{Content: content}, nil
}

func (b *builder) HorizontalRule(n *tree.Node) (any, error) {
	return dedicated(ast.ContextThematicBreak, func(base ast.BlockBase) ast.Block {
		return &ast.HorizontalRule{BlockBase: base}
	}), nil
}

func (b *builder) LineComment(n *tree.Node) (any, error) {
	text := textOf(first(n, "comment_text"))
	return dedicated(ast.ContextComment, func(base ast.BlockBase) ast.Block {
		return &ast.Comment{BlockBase: base, Content: text}
	}), nil
}

func (b *builder) List(n *tree.Node) (any, error) {
	return b.only(n)
}

func (b *builder) listItems(n *tree.Node, rule string) ([]ast.ListItem, error) {
	items := []ast.ListItem{}
	for _, in := range find(n, rule) {
		v, e := b.value(in)
		if e != nil {
			return nil, e
		}
		items = append(items, v.(ast.ListItem))
	}
	return normalize.Depths(items), nil
}

func (b *builder) UnorderedList(n *tree.Node) (any, error) {
	items, e := b.listItems(n, "UnorderedItem")
	if e != nil {
		return nil, e
	}
	return dedicated(ast.ContextUlist, func(base ast.BlockBase) ast.Block {
		return &ast.List{BlockBase: base, Items: items}
	}), nil
}

func (b *builder) UnorderedItem(n *tree.Node) (any, error) {
	content, e := b.inlineChildren(n)
	if e != nil {
		return nil, e
	}
	depth := utf8.RuneCountInString(textOf(first(n, "ulist_marker")))
	return ast.ListItem{Depth: depth, Content: content}, nil
}

func (b *builder) OrderedList(n *tree.Node) (any, error) {
	items, e := b.listItems(n, "OrderedItem")
	if e != nil {
		return nil, e
	}
	return dedicated(ast.ContextOlist, func(base ast.BlockBase) ast.Block {
		return &ast.List{BlockBase: base, Ordered: true, Items: items}
	}), nil
}

func (b *builder) OrderedItem(n *tree.Node) (any, error) {
	content, e := b.inlineChildren(n)
	if e != nil {
		return nil, e
	}

	marker := first(n, "olist_marker")
	depth := normalize.DecimalDepth
	if first(marker, "decimal_marker") == nil {
		depth = utf8.RuneCountInString(textOf(marker))
	}
	return ast.ListItem{Depth: depth, Content: content}, nil
}

func (b *builder) DescriptionList(n *tree.Node) (any, error) {
	items := []ast.DescriptionItem{}
	for _, in := range find(n, "DescriptionItem") {
		v, e := b.value(in)
		if e != nil {
			return nil, e
		}
		items = append(items, v.(ast.DescriptionItem))
	}

	return dedicated(ast.ContextDlist, func(base ast.BlockBase) ast.Block {
		return &ast.DescriptionList{BlockBase: base, Items: items}
	}), nil
}

func (b *builder) DescriptionItem(n *tree.Node) (any, error) {
	content, e := b.inlineChildren(n)
	if e != nil {
		return nil, e
	}
	term := strings.TrimSpace(textOf(first(n, "dlist_term")))
	return ast.DescriptionItem{Term: term, Description: content}, nil
}

func (b *builder) QuotedParagraph(n *tree.Node) (any, error) {
	quoted := first(n, "quoted_text")
	if quoted == nil {
		return nil, missingNodeError(n.Rule, "quoted_text")
	}
	content, e := b.nestedInlines(quoted.Start, quoted.End)
	if e != nil {
		return nil, e
	}
	citation := strings.TrimSpace(textOf(first(n, "citation")))

	return dedicated(ast.ContextQuote, func(base ast.BlockBase) ast.Block {
		if base.Context == ast.ContextVerse {
			return &ast.Verse{BlockBase: base, Attribution: citation, Content: content}
		}
		return &ast.QuotedParagraph{BlockBase: base, Citation: citation, Content: content}
	}), nil
}

func (b *builder) Paragraph(n *tree.Node) (any, error) {
	content, e := b.segmentContent(n)
	if e != nil {
		return nil, e
	}
	return dedicated(ast.ContextParagraph, func(base ast.BlockBase) ast.Block {
		return &ast.Paragraph{BlockBase: base, Content: content}
	}), nil
}

// segmentContent returns flattened content of ParagraphSegment child of n.
func (b *builder) segmentContent(n *tree.Node) ([]ast.Inline, error) {
	sn := first(n, "ParagraphSegment")
	if sn == nil {
		return nil, missingNodeError(n.Rule, "ParagraphSegment")
	}
	v, e := b.value(sn)
	if e != nil {
		return nil, e
	}
	content := normalize.MergeText(normalize.Flatten([]any{v}))
	if content == nil {
		content = []ast.Inline{}
	}
	return content, nil
}

func (b *builder) ParagraphSegment(n *tree.Node) (any, error) {
	content, e := b.inlineChildren(n)
	if e != nil {
		return nil, e
	}

	seg := &normalize.Segment{Items: make([]any, 0, len(content)+2)}
	for _, in := range content {
		seg.Items = append(seg.Items, in)
	}
	if next := first(n, "ParagraphSegment"); next != nil {
		v, e := b.value(next)
		if e != nil {
			return nil, e
		}
		seg.Items = append(seg.Items, &ast.PlainText{Content: "\n"}, v)
	}
	return seg, nil
}

func (b *builder) BlankLine(n *tree.Node) (any, error) {
	return dedicated(ast.ContextBlankLine, func(base ast.BlockBase) ast.Block {
		return &ast.BlankLine{BlockBase: base}
	}), nil
}

var continuationRe = regexp.MustCompile(`[ \t]*\\\r?\n[ \t]*`)

func (b *builder) DocumentAttribute(n *tree.Node) (any, error) {
	entry := ast.AttributeEntry{Name: textOf(first(n, "attribute_name"))}
	value := continuationRe.ReplaceAllString(textOf(first(n, "document_attribute_value")), " ")
	value = strings.TrimSpace(value)
	if value == "" {
		return entry, nil
	}

	src := source.FromString(b.src.Name(), value)
	root, e := b.conf.Parser.Match(b.ctx, src, "InlineLines")
	if e != nil {
		return nil, e
	}
	v, e := newBuilder(b.ctx, b.conf, src).value(root)
	if e != nil {
		return nil, e
	}
	entry.Value = v.([]ast.Inline)
	return entry, nil
}
