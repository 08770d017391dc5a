package ast

// Children returns direct child nodes of n in document order.
// Attribute values and metadata are not children.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Document:
		return blockNodes(n.Blocks)
	case *Header:
		return inlineNodes(n.Content)
	case *HeaderSetext:
		return inlineNodes(n.Content)
	case *Paragraph:
		return inlineNodes(n.Content)
	case *QuotedParagraph:
		return inlineNodes(n.Content)
	case *Verse:
		return inlineNodes(n.Content)
	case *List:
		result := make([]Node, len(n.Items))
		for i := range n.Items {
			result[i] = &n.Items[i]
		}
		return result
	case *ListItem:
		return inlineNodes(n.Content)
	case *DescriptionList:
		result := make([]Node, len(n.Items))
		for i := range n.Items {
			result[i] = &n.Items[i]
		}
		return result
	case *DescriptionItem:
		return inlineNodes(n.Description)
	case *Quote:
		return blockNodes(n.Content)
	case *Example:
		return blockNodes(n.Content)
	case *Sidebar:
		return blockNodes(n.Content)
	case *Open:
		return blockNodes(n.Content)
	case *Abstract:
		return blockNodes(n.Content)
	case *Partintro:
		return blockNodes(n.Content)
	case *Admonition:
		return blockNodes(n.Content)
	case *Table:
		result := make([]Node, len(n.Rows))
		for i := range n.Rows {
			result[i] = &n.Rows[i]
		}
		return result
	case *TableRow:
		result := make([]Node, len(n.Cells))
		for i := range n.Cells {
			result[i] = &n.Cells[i]
		}
		return result
	case *TableCell:
		return inlineNodes(n.Content)
	case *ConstrainedBold:
		return inlineNodes(n.Content)
	case *UnconstrainedBold:
		return inlineNodes(n.Content)
	case *ConstrainedItalic:
		return inlineNodes(n.Content)
	case *UnconstrainedItalic:
		return inlineNodes(n.Content)
	case *MonospaceText:
		return inlineNodes(n.Content)
	case *SubscriptText:
		return inlineNodes(n.Content)
	case *SuperscriptText:
		return inlineNodes(n.Content)
	case *Footnote:
		return inlineNodes(n.Text)
	}
	return nil
}

func blockNodes(blocks []Block) []Node {
	result := make([]Node, len(blocks))
	for i, b := range blocks {
		result[i] = b
	}
	return result
}

func inlineNodes(inlines []Inline) []Node {
	result := make([]Node, len(inlines))
	for i, in := range inlines {
		result[i] = in
	}
	return result
}

// Inspect calls f for n and its descendants in depth-first order.
// Children of a node are skipped if f returns false for it.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// Collect returns descendants of n (n included) having type P in document order.
//
// Example:
//
//	refs := ast.Collect[*ast.CrossReference](doc)
func Collect[P Node](n Node) []P {
	var result []P
	Inspect(n, func(c Node) bool {
		if p, ok := c.(P); ok {
			result = append(result, p)
		}
		return true
	})
	return result
}
