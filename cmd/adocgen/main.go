/*
adocgen is a console utility translating grammar description to Go bindings of structural rules or to JSON file.
Usage is

	adocgen ([-j] | [-p <name>]) [-o <name>] <file>

-j flag instructs adocgen to output JSON dump of the grammar instead of Go source;

-o <name> defines output file name, default is the name of input file with _gen.go or .json suffix;

-p <name> defines Go package name, default is directory name of output file;

<file> defines grammar description file parsable by langdef.Parse().

Generated Go file declares StructuralRules list, Actions interface, and Dispatch function.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ava12/adoc/internal/gen"
	"github.com/ava12/adoc/langdef"
)

var (
	generateJSON             bool
	outFileName, packageName string
)

var root = &cobra.Command{
	Use:           "adocgen ([-j] | [-p <name>]) [-o <name>] <file>",
	Short:         "generate Go bindings or JSON dump of grammar description",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(args[0])
	},
}

func init() {
	root.Flags().BoolVarP(&generateJSON, "json", "j", false, "output JSON instead of Go")
	root.Flags().StringVarP(&outFileName, "output", "o", "", "output file name, default is the name of input file with _gen.go or .json suffix")
	root.Flags().StringVarP(&packageName, "package", "p", "", "Go package name, default is dir name of output file")
}

func generate(inFileName string) error {
	if outFileName == "" {
		outFileName = defaultOutput(inFileName, generateJSON)
	}

	src, e := os.ReadFile(inFileName)
	if e != nil {
		return e
	}
	g, e := langdef.ParseBytes(filepath.Base(inFileName), src)
	if e != nil {
		return e
	}

	var content []byte
	if generateJSON {
		content, e = gen.JSON(g)
	} else {
		if packageName == "" {
			packageName, e = dirName(outFileName)
			if e != nil {
				return e
			}
		}
		content, e = gen.Go(g, gen.Options{Package: packageName, SourceName: filepath.Base(inFileName)})
	}
	if e != nil {
		return e
	}
	return os.WriteFile(outFileName, content, 0o666)
}

func defaultOutput(inFileName string, json bool) string {
	ext := filepath.Ext(inFileName)
	base := inFileName[:len(inFileName)-len(ext)]
	if json {
		return base + ".json"
	}
	return base + "_gen.go"
}

func dirName(fileName string) (string, error) {
	path, e := filepath.Abs(fileName)
	if e != nil {
		return "", e
	}
	return filepath.Base(filepath.Dir(path)), nil
}

func main() {
	if e := root.Execute(); e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(3)
	}
}
