// Package lexer defines a regexp-driven lexical analyzer.
package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	err "github.com/ava12/adoc/errors"
	"github.com/ava12/adoc/source"
)

const (
	// ErrorTokenType is the type for fake tokens capturing broken lexemes (e.g. unterminated string literals).
	// Lexer never returns a token of this type, an error with message containing token text is returned instead.
	ErrorTokenType = -1

	// EofTokenType is the type of the token returned at the end of source.
	EofTokenType = -2
)

const (
	ErrorTokenName = "-error-"
	EofTokenName   = "-end-of-file-"
)

// Error codes used by lexer:
const (
	// ErrWrongChar indicates that lexer cannot fetch any token at current position.
	ErrWrongChar = err.LexicalErrors + iota

	// ErrBadToken indicates that lexer has fetched a token of ErrorTokenType.
	ErrBadToken
)

// TokenType describes token type for specific capturing group of regular expression.
type TokenType struct {
	Type     int
	TypeName string
}

// Lexer splits source text into tokens using regexp.Regexp.
// Each token type maps to its own capturing group.
// A match with no captured groups is an insignificant lexeme (whitespace, comment) and is skipped.
// Every byte of the source must belong to some lexeme.
// Lexer is immutable and safe for concurrent use.
type Lexer struct {
	types []TokenType
	re    *regexp.Regexp
}

// New creates new Lexer.
// n-th element of types describes token type for (n+1)-th capturing group.
// A group that has no description is treated as ErrorTokenType.
func New(re *regexp.Regexp, types []TokenType) *Lexer {
	ts := make([]TokenType, len(types))
	copy(ts, types)
	return &Lexer{types: ts, re: re}
}

// Scanner holds lexing state for a single source.
type Scanner struct {
	l   *Lexer
	src *source.Source
	pos int
}

// Scan creates a scanner positioned at the start of src.
func (l *Lexer) Scan(src *source.Source) *Scanner {
	return &Scanner{l: l, src: src}
}

func wrongCharError(pos source.Pos, text string) *err.Error {
	r, _ := utf8.DecodeRuneInString(text)
	return err.FormatPos(pos, ErrWrongChar, fmt.Sprintf("wrong char %q (u+%x)", r, r))
}

func badTokenError(t *Token) *err.Error {
	return err.FormatPos(t, ErrBadToken, "bad token %q", t.Text())
}

// Next fetches the token at current position and advances past it.
// Returns EoF token at the end of source, every subsequent call returns EoF token again.
// Returns nil and *errors.Error if no token can be fetched, the position is not changed then.
func (s *Scanner) Next() (*Token, error) {
	text := s.src.Text()
	for s.pos < len(text) {
		rest := text[s.pos:]
		match := s.l.re.FindStringSubmatchIndex(rest)
		if len(match) == 0 || match[0] != 0 || match[1] == 0 {
			return nil, wrongCharError(source.NewPos(s.src, s.pos), rest)
		}

		for i := 2; i < len(match); i += 2 {
			if match[i] < 0 {
				continue
			}

			tt := TokenType{ErrorTokenType, ErrorTokenName}
			if gi := i/2 - 1; gi < len(s.l.types) {
				tt = s.l.types[gi]
			}
			t := NewToken(tt.Type, tt.TypeName, rest[match[i]:match[i+1]], source.NewPos(s.src, s.pos+match[i]))
			if tt.Type == ErrorTokenType {
				return nil, badTokenError(t)
			}

			s.pos += match[1]
			return t, nil
		}

		s.pos += match[1]
	}

	return EofToken(s.src), nil
}
