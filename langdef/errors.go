package langdef

import (
	"strings"

	err "github.com/ava12/adoc/errors"
	"github.com/ava12/adoc/lexer"
)

const (
	ErrUnexpectedEof = err.GrammarErrors + iota
	ErrUnexpectedToken
	ErrInvalidEscape
	ErrInvalidRange
	ErrReservedName
	ErrRuleDefined
	ErrUndefinedRule
	ErrUnusedRule
	ErrLeftRecursion
	ErrEmptyRepetition
)

func eofError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, ErrUnexpectedEof, "unexpected end of grammar description")
}

func unexpectedTokenError(t *lexer.Token, expected string) *err.Error {
	return err.FormatPos(t, ErrUnexpectedToken, "unexpected %s %q, expecting %s", t.TypeName(), t.Text(), expected)
}

func invalidEscapeError(t *lexer.Token, seq string) *err.Error {
	return err.FormatPos(t, ErrInvalidEscape, "invalid escape sequence %q", seq)
}

func invalidRangeError(t *lexer.Token, low, high string) *err.Error {
	return err.FormatPos(t, ErrInvalidRange, "invalid rune range %q..%q", low, high)
}

func reservedNameError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, ErrReservedName, "cannot define reserved name %q", t.Text())
}

func ruleDefinedError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, ErrRuleDefined, "rule %q already defined", t.Text())
}

func undefinedRuleError(names []string) *err.Error {
	return err.Format(ErrUndefinedRule, "undefined rules: "+strings.Join(names, ", "))
}

func unusedRuleError(names []string) *err.Error {
	return err.Format(ErrUnusedRule, "unused lexical rules: "+strings.Join(names, ", "))
}

func leftRecursionError(names []string) *err.Error {
	return err.Format(ErrLeftRecursion, "found left-recursive rules: "+strings.Join(names, ", "))
}

func emptyRepetitionError(names []string) *err.Error {
	return err.Format(ErrEmptyRepetition, "repetition of expressions matching empty input in rules: "+strings.Join(names, ", "))
}
