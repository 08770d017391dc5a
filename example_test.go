package adoc_test

import (
	"fmt"

	"github.com/ava12/adoc"
	"github.com/ava12/adoc/ast"
)

func Example() {
	input := `= Notes

[[first]]
Some *bold* text.

* one
** two
`
	doc, e := adoc.ParseDocument(input)
	if e != nil {
		fmt.Println(e)
		return
	}

	for _, b := range doc.Blocks {
		switch b := b.(type) {
		case *ast.Header:
			fmt.Println(b.Type(), b.Level, ast.PlainTextOf(b.Content))
		case *ast.Paragraph:
			fmt.Println(b.Type(), b.Anchor.ID, ast.PlainTextOf(b.Content))
		case *ast.List:
			for _, item := range b.Items {
				fmt.Println(b.Type(), item.Depth, ast.PlainTextOf(item.Content))
			}
		}
	}

	// Output:
	// Header 1 Notes
	// Paragraph first Some bold text.
	// List 0 one
	// List 1 two
}
