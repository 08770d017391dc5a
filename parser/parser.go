// Package parser matches text against a grammar.Grammar using memoized ordered choice (packrat parsing)
// and builds a concrete parse tree.
package parser

import (
	"context"
	"sort"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ava12/adoc/grammar"
	"github.com/ava12/adoc/source"
	"github.com/ava12/adoc/tree"
)

// EndOfInput is reported as the expected item when the start rule stops before the end of input.
const EndOfInput = "end of input"

// cancelCheckInterval is the number of rule invocations between context checks.
const cancelCheckInterval = 1024

// Parser is immutable and safe for concurrent use.
type Parser struct {
	grammar *grammar.Grammar
	index   map[string]int
	logger  *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for debug messages, default is no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a parser for g. g must not be modified afterwards.
func New(g *grammar.Grammar, opts ...Option) (*Parser, error) {
	if g == nil || len(g.Rules) == 0 {
		return nil, emptyGrammarError()
	}

	p := &Parser{
		grammar: g,
		index:   make(map[string]int, len(g.Rules)),
		logger:  zap.NewNop(),
	}
	for i, r := range g.Rules {
		p.index[r.Name] = i
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Grammar returns parser grammar.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.grammar
}

// HasRule reports whether grammar contains named rule.
func (p *Parser) HasRule(name string) bool {
	_, has := p.index[name]
	return has
}

// Match matches whole src against named rule, empty name means the default start rule.
// Returns the rule node on success or *MatchError if src does not conform to the grammar.
func (p *Parser) Match(ctx context.Context, src *source.Source, rule string) (*tree.Node, error) {
	return p.MatchRange(ctx, src, 0, src.Len(), rule)
}

// MatchRange matches src text between byte offsets from and to against named rule.
// Node and error positions are offsets in the whole src.
func (p *Parser) MatchRange(ctx context.Context, src *source.Source, from, to int, rule string) (*tree.Node, error) {
	ri := grammar.DefaultRule
	if rule != "" {
		var has bool
		ri, has = p.index[rule]
		if !has {
			return nil, unknownRuleError(rule)
		}
	}
	if from < 0 || to > src.Len() || from > to {
		return nil, invalidRangeError(from, to, src.Len())
	}

	started := time.Now()
	m := &matcher{
		p:       p,
		ctx:     ctx,
		text:    src.Text(),
		to:      to,
		memo:    make(map[memoKey]memoEntry),
		failPos: -1,
	}
	n, end, ok := m.callRule(ri, from)
	p.logger.Debug("match",
		zap.String("source", src.Name()),
		zap.String("rule", p.grammar.Rules[ri].Name),
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int("memo", len(m.memo)),
		zap.Bool("ok", ok && end == to),
		zap.Duration("elapsed", time.Since(started)),
	)

	if m.err != nil {
		return nil, m.err
	}
	if ok && end == to {
		return n, nil
	}
	if ok && end > m.failPos {
		m.failPos = end
		m.expected = map[string]bool{EndOfInput: true}
	}
	return nil, m.matchError(src)
}

type memoKey struct {
	rule, pos int
	lookahead bool
}

type memoEntry struct {
	node *tree.Node
	end  int
	ok   bool
}

type matcher struct {
	p         *Parser
	ctx       context.Context
	text      string
	to        int
	memo      map[memoKey]memoEntry
	stack     []int
	lookahead int
	calls     int
	err       error
	failPos   int
	expected  map[string]bool
}

func (m *matcher) fail(pos int) {
	if m.lookahead > 0 || pos < m.failPos || len(m.stack) == 0 {
		return
	}

	if pos > m.failPos {
		m.failPos = pos
		m.expected = make(map[string]bool)
	}
	m.expected[m.p.grammar.Rules[m.stack[len(m.stack)-1]].Name] = true
}

func (m *matcher) matchError(src *source.Source) *MatchError {
	expected := make([]string, 0, len(m.expected))
	for name := range m.expected {
		expected = append(expected, name)
	}
	sort.Strings(expected)
	pos := m.failPos
	if pos < 0 {
		pos = 0
	}
	return newMatchError(source.NewPos(src, pos), expected)
}

func (m *matcher) callRule(ri, pos int) (*tree.Node, int, bool) {
	if m.err != nil {
		return nil, pos, false
	}

	m.calls++
	if m.calls%cancelCheckInterval == 0 {
		if e := m.ctx.Err(); e != nil {
			m.err = e
			return nil, pos, false
		}
	}

	key := memoKey{ri, pos, m.lookahead > 0}
	if entry, has := m.memo[key]; has {
		return entry.node, entry.end, entry.ok
	}

	m.stack = append(m.stack, ri)
	items, end, ok := m.eval(m.p.grammar.Rules[ri].Expr, pos)
	m.stack = m.stack[:len(m.stack)-1]

	var n *tree.Node
	if ok {
		n = &tree.Node{
			Kind:     tree.RuleNode,
			Rule:     m.p.grammar.Rules[ri].Name,
			Start:    pos,
			End:      end,
			Text:     m.text[pos:end],
			Children: items,
		}
	}
	m.memo[key] = memoEntry{n, end, ok}
	return n, end, ok
}

func (m *matcher) terminal(pos, end int) []*tree.Node {
	return []*tree.Node{{Kind: tree.TerminalNode, Start: pos, End: end, Text: m.text[pos:end]}}
}

// eval matches x at pos and returns the nodes x contributes to its parent.
func (m *matcher) eval(x *grammar.Expr, pos int) ([]*tree.Node, int, bool) {
	switch x.Kind {
	case grammar.Literal:
		end := pos + len(x.Text)
		if end <= m.to && m.text[pos:end] == x.Text {
			return m.terminal(pos, end), end, true
		}

	case grammar.Range, grammar.Any:
		if pos < m.to {
			r, size := utf8.DecodeRuneInString(m.text[pos:m.to])
			if x.Kind == grammar.Any || (r >= x.Low && r <= x.High) {
				return m.terminal(pos, pos+size), pos + size, true
			}
		}

	case grammar.End:
		if pos == m.to {
			return nil, pos, true
		}

	case grammar.Ref:
		n, end, ok := m.callRule(x.Rule, pos)
		if ok {
			return []*tree.Node{n}, end, true
		}
		return nil, pos, false

	case grammar.Seq:
		var items []*tree.Node
		end := pos
		for _, item := range x.Items {
			nodes, next, ok := m.eval(item, end)
			if !ok {
				return nil, pos, false
			}
			items = append(items, nodes...)
			end = next
		}
		return items, end, true

	case grammar.Choice:
		for _, item := range x.Items {
			nodes, end, ok := m.eval(item, pos)
			if ok {
				return nodes, end, true
			}
			if m.err != nil {
				break
			}
		}
		return nil, pos, false

	case grammar.Star, grammar.Plus, grammar.Opt:
		return m.repeat(x, pos)

	case grammar.Not, grammar.And:
		m.lookahead++
		_, _, ok := m.eval(x.Items[0], pos)
		m.lookahead--
		if ok == (x.Kind == grammar.And) && m.err == nil {
			return nil, pos, true
		}
		return nil, pos, false
	}

	m.fail(pos)
	return nil, pos, false
}

func (m *matcher) repeat(x *grammar.Expr, pos int) ([]*tree.Node, int, bool) {
	iter := &tree.Node{Kind: tree.IterNode, Start: pos}
	end := pos
	for {
		nodes, next, ok := m.eval(x.Items[0], end)
		if !ok || next == end {
			break
		}

		if len(nodes) == 1 {
			iter.Children = append(iter.Children, nodes[0])
		} else {
			iter.Children = append(iter.Children, &tree.Node{
				Kind: tree.SeqNode, Start: end, End: next, Text: m.text[end:next], Children: nodes,
			})
		}
		end = next
		if x.Kind == grammar.Opt {
			break
		}
	}

	if m.err != nil || (x.Kind == grammar.Plus && len(iter.Children) == 0) {
		return nil, pos, false
	}
	iter.End = end
	iter.Text = m.text[pos:end]
	return []*tree.Node{iter}, end, true
}
