// Package normalize contains post-processing passes applied to constructed lists and paragraphs.
package normalize

import "github.com/ava12/adoc/ast"

// DecimalDepth is the raw depth of items with strictly decimal markers (1., 22.).
const DecimalDepth = 1

// Depths returns list items with the minimum depth subtracted from each depth if the minimum exceeds 1.
// items are not modified.
func Depths(items []ast.ListItem) []ast.ListItem {
	if len(items) == 0 {
		return items
	}

	base := items[0].Depth
	for _, item := range items[1:] {
		if item.Depth < base {
			base = item.Depth
		}
	}

	result := make([]ast.ListItem, len(items))
	copy(result, items)
	if base > 1 {
		for i := range result {
			result[i].Depth -= base
		}
	}
	return result
}

// Segment is a paragraph segment: the content of one line followed by the continuation segment if any.
type Segment struct {
	Items []any
}

// Flatten returns inline elements of items with segments recursively replaced by their content.
// Items other than ast.Inline and *Segment are dropped.
func Flatten(items []any) []ast.Inline {
	var result []ast.Inline
	for _, item := range items {
		switch item := item.(type) {
		case *Segment:
			result = append(result, Flatten(item.Items)...)
		case ast.Inline:
			result = append(result, item)
		}
	}
	return result
}

// FlattenInlines is Flatten for already flat content, used to check idempotence.
func FlattenInlines(inlines []ast.Inline) []ast.Inline {
	items := make([]any, len(inlines))
	for i, in := range inlines {
		items[i] = in
	}
	return Flatten(items)
}

// MergeText joins adjacent PlainText elements.
// Returned slice shares no PlainText elements with inlines that were merged.
func MergeText(inlines []ast.Inline) []ast.Inline {
	var result []ast.Inline
	for _, in := range inlines {
		pt, isText := in.(*ast.PlainText)
		if isText && len(result) > 0 {
			if last, lastIsText := result[len(result)-1].(*ast.PlainText); lastIsText {
				result[len(result)-1] = &ast.PlainText{Content: last.Content + pt.Content}
				continue
			}
		}
		result = append(result, in)
	}
	return result
}
