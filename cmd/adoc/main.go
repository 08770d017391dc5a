/*
adoc is a console utility converting AsciiDoc files to syntax trees.
Usage is

	adoc parse [--format json|yaml] [<file or glob>...]
	adoc tree [--rule <name>] [--sexpr] [<file>]
	adoc grammar [--json]

parse reads files matching globs (** is supported) or stdin and writes one syntax tree per file;

tree writes concrete parse tree of a file or stdin;

grammar writes built-in grammar description or its JSON dump.

--verbose flag enables debug logging to stderr.
Non-empty ADOC_DUMP_GRAMMAR environment variable makes every command dump grammar JSON to stderr,
non-empty ADOC_DUMP_AST makes parse dump concrete parse trees to stderr.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava12/adoc"
)

const (
	dumpGrammarEnv = "ADOC_DUMP_GRAMMAR"
	dumpAstEnv     = "ADOC_DUMP_AST"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var root = &cobra.Command{
	Use:           "adoc",
	Short:         "convert AsciiDoc files to syntax trees",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, e := newLogger(verbose)
		if e != nil {
			return e
		}
		logger = l

		if os.Getenv(dumpGrammarEnv) != "" {
			return dumpGrammar(cmd.ErrOrStderr())
		}
		return nil
	},
}

func init() {
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(parseCmd, treeCmd, grammarCmd)
}

func newParser() (*adoc.Parser, error) {
	return adoc.New(adoc.WithLogger(logger))
}

func main() {
	e := root.ExecuteContext(context.Background())
	_ = logger.Sync()
	if e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(1)
	}
}
