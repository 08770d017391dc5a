package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/adoc/tree"
)

var (
	treeRule  string
	treeSexpr bool
)

var treeCmd = &cobra.Command{
	Use:   "tree [<file>]",
	Short: "write concrete parse tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := stdinName
		if len(args) > 0 {
			name = args[0]
		}
		text, e := readInput(name, cmd.InOrStdin())
		if e != nil {
			return e
		}

		p, e := newParser()
		if e != nil {
			return e
		}
		n, e := p.ParseTree(cmd.Context(), name, text, treeRule)
		if e != nil {
			return e
		}

		if treeSexpr {
			_, e = fmt.Fprintln(cmd.OutOrStdout(), tree.Sexpr(n))
			return e
		}
		return tree.Dump(cmd.OutOrStdout(), n)
	},
}

func init() {
	treeCmd.Flags().StringVarP(&treeRule, "rule", "r", "", "start rule, default is Document")
	treeCmd.Flags().BoolVarP(&treeSexpr, "sexpr", "s", false, "write tree as a single line S-expression")
}
