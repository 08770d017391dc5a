package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ava12/adoc/internal/asciidoc"
	"github.com/ava12/adoc/internal/gen"
)

var grammarJSON bool

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "write built-in grammar description",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if grammarJSON {
			return dumpGrammar(cmd.OutOrStdout())
		}
		_, e := cmd.OutOrStdout().Write(asciidoc.Description())
		return e
	},
}

func init() {
	grammarCmd.Flags().BoolVarP(&grammarJSON, "json", "j", false, "write JSON dump instead of description")
}

func dumpGrammar(w io.Writer) error {
	g, e := asciidoc.Load()
	if e != nil {
		return e
	}
	data, e := gen.JSON(g)
	if e != nil {
		return e
	}
	_, e = w.Write(append(data, '\n'))
	return e
}
