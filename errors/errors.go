// Package errors defines the error type shared by adoc subpackages.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarErrors = 1   // used by langdef
	LexicalErrors = 101 // used by lexer
	MatchErrors   = 201 // used by parser
	BuildErrors   = 301 // used by semantic construction and block derivation
)

// Error is the error type used by adoc subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source or 0.
	Line int

	// Col contains column number in source or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	SourceName() string
	Line() int
	Col() int
}

// New creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func New(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name == "" {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		} else {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		}
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Format creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func Format(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return New(code, msg, "", 0, 0)
}

// FormatPos creates Error structure with source and position information.
// pos must not be nil.
func FormatPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return New(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}

// Internal creates an internal consistency error carrying a stack trace.
// These errors signal a mismatch between the grammar and the AST construction code,
// not malformed input.
func Internal(code int, msg string, params ...any) error {
	return errors.WithStack(Format(code, msg, params...))
}

// Code returns the code of the first *Error in err chain or 0.
func Code(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

// IsInternal reports whether err is an internal consistency error.
func IsInternal(err error) bool {
	c := Code(err)
	return c >= BuildErrors && c < BuildErrors+100
}
