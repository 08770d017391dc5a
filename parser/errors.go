package parser

import (
	"strings"

	err "github.com/ava12/adoc/errors"
	"github.com/ava12/adoc/source"
)

const (
	ErrNoMatch = err.MatchErrors + iota
	ErrUnknownRule
	ErrInvalidRange
	ErrEmptyGrammar
)

// MatchError is returned when input does not conform to the grammar.
type MatchError struct {
	// Cause contains error code, message, and position.
	Cause *err.Error

	// Offset is the byte offset of the furthest position reached by the parser.
	Offset int

	// Expected contains sorted names of rules that failed at Offset, or EndOfInput.
	Expected []string
}

func (e *MatchError) Error() string {
	return e.Cause.Message
}

// Unwrap returns e.Cause.
func (e *MatchError) Unwrap() error {
	return e.Cause
}

func newMatchError(pos source.Pos, expected []string) *MatchError {
	return &MatchError{
		Cause:    err.FormatPos(pos, ErrNoMatch, "expected %s", expectedList(expected)),
		Offset:   pos.Pos(),
		Expected: expected,
	}
}

func expectedList(names []string) string {
	switch len(names) {
	case 0:
		return "valid input"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

func unknownRuleError(name string) *err.Error {
	return err.Format(ErrUnknownRule, "unknown rule %q", name)
}

func invalidRangeError(from, to, size int) *err.Error {
	return err.Format(ErrInvalidRange, "invalid range [%d:%d] for source of %d bytes", from, to, size)
}

func emptyGrammarError() *err.Error {
	return err.Format(ErrEmptyGrammar, "grammar contains no rules")
}
