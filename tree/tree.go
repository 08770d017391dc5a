// Package tree defines the concrete parse tree produced by the parser and helpers to traverse it.
package tree

import (
	"fmt"
	"io"
	"strings"
)

// Kind is the kind of parse tree node.
type Kind int

const (
	// RuleNode is a successful rule match.
	RuleNode Kind = iota
	// TerminalNode is a matched literal, rune range, or any rune.
	TerminalNode
	// IterNode holds one child per iteration of *, +, or ?.
	IterNode
	// SeqNode groups the items matched in a single iteration of a multi-item expression.
	SeqNode
)

func (k Kind) String() string {
	switch k {
	case RuleNode:
		return "rule"
	case TerminalNode:
		return "terminal"
	case IterNode:
		return "iter"
	case SeqNode:
		return "seq"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is a parse tree node. Nodes are never modified after the parser returns them.
type Node struct {
	Kind Kind

	// Rule contains rule name for RuleNode.
	Rule string

	// Start and End are byte offsets of matched text in the source.
	Start, End int

	// Text contains matched source text.
	Text string

	Children []*Node
}

// Child returns i-th child or nil, negative i counts from the end.
func (n *Node) Child(i int) *Node {
	if n == nil {
		return nil
	}
	if i < 0 {
		i += len(n.Children)
	}
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// IsRule reports whether n is a match of the named rule.
func (n *Node) IsRule(name string) bool {
	return n != nil && n.Kind == RuleNode && n.Rule == name
}

// Walk calls f for n and its descendants in depth-first order.
// Children of a node are skipped if f returns false for it.
func Walk(n *Node, f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, f)
	}
}

// Find returns matches of named rule among descendants of n in source order.
// Descendants of found nodes are not searched.
func Find(n *Node, rule string) []*Node {
	var result []*Node
	for _, c := range n.Children {
		Walk(c, func(d *Node) bool {
			if d.IsRule(rule) {
				result = append(result, d)
				return false
			}
			return true
		})
	}
	return result
}

// First returns the first match of named rule among descendants of n or nil.
func First(n *Node, rule string) *Node {
	var result *Node
	for _, c := range n.Children {
		Walk(c, func(d *Node) bool {
			if result != nil {
				return false
			}
			if d.IsRule(rule) {
				result = d
				return false
			}
			return true
		})
		if result != nil {
			break
		}
	}
	return result
}

// Dump writes indented textual representation of the tree.
func Dump(w io.Writer, n *Node) error {
	return dump(w, n, 0)
}

func dump(w io.Writer, n *Node, level int) error {
	label := n.Kind.String()
	if n.Kind == RuleNode {
		label = n.Rule
	}
	_, e := fmt.Fprintf(w, "%s%s [%d:%d] %q\n", strings.Repeat("  ", level), label, n.Start, n.End, n.Text)
	for _, c := range n.Children {
		if e != nil {
			break
		}
		e = dump(w, c, level+1)
	}
	return e
}

// Sexpr returns compact s-expression form of the tree: rule nodes as (Name children...),
// iterations as [children...], sequences as {children...}, terminals as quoted text.
func Sexpr(n *Node) string {
	var b strings.Builder
	sexpr(&b, n)
	return b.String()
}

func sexpr(b *strings.Builder, n *Node) {
	var open, close string
	switch n.Kind {
	case TerminalNode:
		b.WriteString("'" + n.Text + "'")
		return
	case RuleNode:
		open, close = "("+n.Rule, ")"
	case IterNode:
		open, close = "[", "]"
	default:
		open, close = "{", "}"
	}

	b.WriteString(open)
	for i, c := range n.Children {
		if i > 0 || n.Kind == RuleNode {
			b.WriteByte(' ')
		}
		sexpr(b, c)
	}
	b.WriteString(close)
}
