// Package gen generates Go bindings and JSON dumps of grammars.
package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"regexp"

	"github.com/ava12/adoc/grammar"
)

// Options define generated Go file.
type Options struct {
	// Package is Go package name.
	Package string

	// SourceName is the grammar description file name mentioned in file header.
	SourceName string
}

var identRe = regexp.MustCompile("^[A-Za-z_][A-Za-z_0-9]*$")

// Go returns Go source declaring StructuralRules list, Actions interface with a method per structural rule,
// and Dispatch function calling the method named after node rule.
func Go(g *grammar.Grammar, opts Options) ([]byte, error) {
	if !identRe.MatchString(opts.Package) {
		return nil, fmt.Errorf("invalid package name: %s", opts.Package)
	}
	names := g.StructuralRules()
	for _, name := range names {
		if !identRe.MatchString(name) {
			return nil, fmt.Errorf("invalid method name: %s", name)
		}
	}

	var buffer bytes.Buffer
	buffer.WriteString("// Code generated by adocgen from " + opts.SourceName + ". DO NOT EDIT.\n\n" +
		"package " + opts.Package + "\n\n" +
		"import \"github.com/ava12/adoc/tree\"\n\n")

	buffer.WriteString("// StructuralRules lists structural rule names in grammar order.\n" +
		"var StructuralRules = []string{\n")
	for _, name := range names {
		buffer.WriteString(fmt.Sprintf("\t%q,\n", name))
	}
	buffer.WriteString("}\n\n")

	buffer.WriteString("// Actions builds values of structural rule nodes, one method per rule.\n" +
		"type Actions interface {\n")
	for _, name := range names {
		buffer.WriteString("\t" + name + "(n *tree.Node) (any, error)\n")
	}
	buffer.WriteString("}\n\n")

	buffer.WriteString("// Dispatch calls the method of a named after n.Rule.\n" +
		"// handled is false if n.Rule is not a structural rule.\n" +
		"func Dispatch(a Actions, n *tree.Node) (result any, handled bool, e error) {\n" +
		"\tswitch n.Rule {\n")
	for _, name := range names {
		buffer.WriteString(fmt.Sprintf("\tcase %q:\n\t\tresult, e = a.%s(n)\n", name, name))
	}
	buffer.WriteString("\tdefault:\n\t\treturn nil, false, nil\n\t}\n" +
		"\treturn result, true, e\n}\n")

	return format.Source(buffer.Bytes())
}

// JSON returns indented JSON encoding of g.
func JSON(g *grammar.Grammar) ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}
