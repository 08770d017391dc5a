package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ava12/adoc"
	"github.com/ava12/adoc/ast"
	"github.com/ava12/adoc/tree"
)

const stdinName = "-"

var outputFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [<file or glob>...]",
	Short: "parse files and write syntax trees",
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFormat != "json" && outputFormat != "yaml" {
			return fmt.Errorf("unknown format: %s", outputFormat)
		}

		names, e := expandGlobs(args)
		if e != nil {
			return e
		}
		return parseFiles(cmd.Context(), names, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	parseCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format: json or yaml")
}

// expandGlobs returns file names matching patterns in pattern order.
// Patterns without matches are kept as is so that missing files are reported.
func expandGlobs(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return []string{stdinName}, nil
	}

	var names []string
	for _, pattern := range patterns {
		if pattern == stdinName {
			names = append(names, pattern)
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob: %s", pattern)
		}

		matches, e := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if e != nil {
			return nil, errors.Wrapf(e, "cannot expand %s", pattern)
		}
		if len(matches) == 0 {
			matches = []string{pattern}
		}
		names = append(names, matches...)
	}
	return names, nil
}

func readInput(name string, stdin io.Reader) (string, error) {
	var (
		data []byte
		e    error
	)
	if name == stdinName {
		data, e = io.ReadAll(stdin)
	} else {
		data, e = os.ReadFile(name)
	}
	return string(data), e
}

// parseFiles parses files concurrently and writes results in input order.
// Files that fail are reported together after all results are written.
func parseFiles(ctx context.Context, names []string, stdin io.Reader, stdout, stderr io.Writer) error {
	p, e := newParser()
	if e != nil {
		return e
	}

	dumpTrees := os.Getenv(dumpAstEnv) != ""
	outputs := make([][]byte, len(names))
	dumps := make([][]byte, len(names))
	errs := make([]error, len(names))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			text, e := readInput(name, stdin)
			if e != nil {
				errs[i] = e
				return nil
			}

			if dumpTrees {
				dumps[i], errs[i] = dumpTree(ctx, p, name, text)
				if errs[i] != nil {
					return nil
				}
			}

			doc, e := p.Parse(ctx, name, text)
			if e != nil {
				errs[i] = e
				return nil
			}
			logger.Debug("parsed", zap.String("source", name), zap.Int("blocks", len(doc.Blocks)))
			outputs[i], errs[i] = encode(doc, outputFormat)
			return nil
		})
	}
	_ = g.Wait()

	for i := range names {
		if dumps[i] != nil {
			if _, e := stderr.Write(dumps[i]); e != nil {
				return e
			}
		}
		if outputs[i] != nil {
			if _, e := stdout.Write(outputs[i]); e != nil {
				return e
			}
		}
	}
	return multierr.Combine(errs...)
}

func dumpTree(ctx context.Context, p *adoc.Parser, name, text string) ([]byte, error) {
	n, e := p.ParseTree(ctx, name, text, "")
	if e != nil {
		return nil, e
	}
	var buf bytes.Buffer
	e = tree.Dump(&buf, n)
	return buf.Bytes(), e
}

// encode returns doc in format, YAML keeps member order of JSON encoding.
func encode(doc *ast.Document, format string) ([]byte, error) {
	data, e := json.MarshalIndent(doc, "", "  ")
	if e != nil || format == "json" {
		return append(data, '\n'), e
	}

	var node yaml.Node
	if e = yaml.Unmarshal(data, &node); e != nil {
		return nil, e
	}
	resetStyle(&node)
	return yaml.Marshal(&node)
}

// resetStyle replaces flow styles and quoting inherited from JSON with default block style.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}
