// Package grammar defines the structure of a parsing expression grammar.
// A Grammar is immutable once built and may be shared between goroutines.
package grammar

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// DefaultRule is the index of the start rule used when none is specified.
const DefaultRule = 0

// ExprKind is the kind of parsing expression.
type ExprKind int

const (
	Seq     ExprKind = iota // all items in order
	Choice                  // first matching item
	Literal                 // exact text
	Range                   // single rune in [Low, High]
	Any                     // any single rune
	End                     // end of input, consumes nothing
	Ref                     // rule reference
	Star                    // zero or more repetitions of Items[0]
	Plus                    // one or more repetitions of Items[0]
	Opt                     // optional Items[0]
	Not                     // negative lookahead on Items[0]
	And                     // positive lookahead on Items[0]
)

var kindNames = [...]string{
	Seq:     "seq",
	Choice:  "choice",
	Literal: "literal",
	Range:   "range",
	Any:     "any",
	End:     "end",
	Ref:     "ref",
	Star:    "star",
	Plus:    "plus",
	Opt:     "opt",
	Not:     "not",
	And:     "and",
}

func (k ExprKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ExprKind(%d)", int(k))
}

func (k ExprKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ExprKind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = ExprKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown expression kind %q", text)
}

// Expr is a parsing expression.
type Expr struct {
	Kind ExprKind `json:"kind"`

	// Text contains literal text for Literal and rule name for Ref.
	Text string `json:"text,omitempty"`

	// Low and High define rune range for Range.
	Low  rune `json:"low,omitempty"`
	High rune `json:"high,omitempty"`

	// Rule contains rule index for Ref.
	Rule int `json:"rule,omitempty"`

	// Items contains operands for Seq and Choice, or the single operand of unary expressions.
	Items []*Expr `json:"items,omitempty"`
}

// Rule is a named parsing expression.
type Rule struct {
	Name string `json:"name"`
	Expr *Expr  `json:"expr"`
}

// IsStructural reports whether the rule produces a semantic value of its own.
// Structural rule names start with an upper-case letter, other rules are lexical.
func (r Rule) IsStructural() bool {
	return IsStructural(r.Name)
}

// IsStructural reports whether name is a structural rule name.
func IsStructural(name string) bool {
	first, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(first)
}

// Grammar is a list of rules, the first one is the default start rule.
type Grammar struct {
	Rules []Rule `json:"rules"`
}

// RuleIndex returns index of named rule or -1.
func (g *Grammar) RuleIndex(name string) int {
	for i, r := range g.Rules {
		if r.Name == name {
			return i
		}
	}
	return -1
}

// StructuralRules returns names of structural rules in definition order.
func (g *Grammar) StructuralRules() []string {
	var names []string
	for _, r := range g.Rules {
		if r.IsStructural() {
			names = append(names, r.Name)
		}
	}
	return names
}
