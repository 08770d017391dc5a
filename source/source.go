// Package source defines named source text with byte offset to line/column conversion.
package source

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// Source is an immutable named text. Safe for concurrent use.
type Source struct {
	name       string
	text       string
	lineStarts []int
}

// New creates a source from byte content.
func New(name string, content []byte) *Source {
	return FromString(name, string(content))
}

// FromString creates a source from string content.
func FromString(name, text string) *Source {
	s := &Source{name: name, text: text}
	s.lineStarts = make([]int, 1, strings.Count(text, "\n")+1)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Text() string {
	return s.text
}

func (s *Source) Content() []byte {
	return []byte(s.text)
}

func (s *Source) Len() int {
	return len(s.text)
}

// Slice returns source text between byte offsets, both are clamped to source bounds.
func (s *Source) Slice(from, to int) string {
	from = s.clamp(from)
	to = s.clamp(to)
	if to < from {
		return ""
	}
	return s.text[from:to]
}

func (s *Source) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(s.text) {
		return len(s.text)
	}
	return pos
}

// LineCol converts byte offset to 1-based line and column numbers.
// Columns count grapheme clusters, so a combined character or an emoji sequence is a single column.
func (s *Source) LineCol(pos int) (line, col int) {
	pos = s.clamp(pos)
	index := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	return index + 1, uniseg.GraphemeClusterCount(s.text[s.lineStarts[index]:pos]) + 1
}

// Pos converts 1-based line and column numbers to byte offset.
// Returns 0 for non-positive values and source length for positions beyond the end.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}
	if line > len(s.lineStarts) {
		return len(s.text)
	}

	pos := s.lineStarts[line-1]
	gr := uniseg.NewGraphemes(s.text[pos:])
	for col > 1 && gr.Next() {
		from, to := gr.Positions()
		if c := s.text[s.lineStarts[line-1]+from]; c == '\n' || c == '\r' {
			break
		}
		pos = s.lineStarts[line-1] + to
		col--
	}
	return pos
}

// Pos is a position inside a source.
type Pos struct {
	src            *Source
	pos, line, col int
}

// NewPos creates position for byte offset pos.
func NewPos(s *Source, pos int) Pos {
	line, col := s.LineCol(pos)
	return Pos{s, pos, line, col}
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
