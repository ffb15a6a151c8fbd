// Package parser recognizes Scala compilation units. It is a scannerless
// recursive-descent recognizer: the grammar consumes raw characters, choice
// is ordered and backtracking is unrestricted. The parser builds no tree; it
// answers whether the whole input parses and, when it does not, reports the
// deepest point reached together with the tokens that would have allowed the
// parse to continue.
package parser

import (
	"fmt"
	"sort"
)

// parser walks an Input with a single cursor. Every rule restores the cursor
// exactly on failure, so a false return always leaves the parser where the
// rule started. The frontier only ever moves forward.
type parser struct {
	in  *Input
	pos int

	// deepest failure seen so far
	frontier int
	expected map[string]struct{}
	deepest  []string

	frames   []string
	atoms    int
	atomName string
	quiet    int

	tracer *Tracer
}

// Parse reports whether source is a syntactically valid compilation unit.
// A nil result means the entire input was consumed.
func Parse(name, source string) *ParseError {
	return runParse(name, source, nil)
}

// ParseTraced runs Parse with a rule-invocation tracer attached.
func ParseTraced(name, source string, t *Tracer) *ParseError {
	return runParse(name, source, t)
}

func runParse(name, source string, t *Tracer) *ParseError {
	p := newParser(name, source)
	p.tracer = t
	if p.compilationUnit() {
		if p.pos != p.in.Len() {
			// The top rule ends on an end-of-input match, so stopping
			// short is a grammar bug, not a malformed input.
			panic(fmt.Sprintf("parser: incomplete parse of %s: stopped at %d of %d",
				name, p.pos, p.in.Len()))
		}
		return nil
	}
	return p.parseError()
}

func newParser(name, source string) *parser {
	return &parser{
		in:       NewInput(name, source),
		expected: make(map[string]struct{}),
	}
}

func (p *parser) parseError() *ParseError {
	expected := make([]string, 0, len(p.expected))
	for name := range p.expected {
		expected = append(expected, name)
	}
	sort.Strings(expected)
	text, line, column := p.in.LineOf(p.frontier)
	return &ParseError{
		Name:     p.in.Name(),
		Offset:   p.frontier,
		Line:     line,
		Column:   column,
		Expected: expected,
		Trace:    append([]string(nil), p.deepest...),
		lineText: text,
	}
}

func (p *parser) to(m int) { p.pos = m }

func (p *parser) cur() rune { return p.in.At(p.pos) }

func (p *parser) at(i int) rune { return p.in.At(i) }

func (p *parser) eof() bool { return p.pos >= p.in.Len() }

// fail records expected at the current cursor when it is at or beyond the
// deepest failure seen so far. Always returns false.
func (p *parser) fail(expected string) bool {
	if p.quiet > 0 {
		return false
	}
	if p.atoms > 0 {
		expected = p.atomName
	}
	switch {
	case p.pos > p.frontier:
		p.frontier = p.pos
		p.expected = map[string]struct{}{expected: {}}
		p.deepest = append(p.deepest[:0], p.frames...)
	case p.pos == p.frontier:
		p.expected[expected] = struct{}{}
	}
	return false
}

// rule names a grammar production. The active names form the trace reported
// with a parse error, innermost last.
func (p *parser) rule(name string, body func() bool) bool {
	if p.tracer != nil {
		p.tracer.enter(name, p.pos)
	}
	p.frames = append(p.frames, name)
	ok := body()
	p.frames = p.frames[:len(p.frames)-1]
	return ok
}

// atom treats body as a single token: failures inside it surface only the
// atom's name in the expected set, never its internal alternatives.
func (p *parser) atom(name string, body func() bool) bool {
	p.atoms++
	if p.atoms == 1 {
		p.atomName = name
	}
	ok := body()
	p.atoms--
	return ok
}

// opt tries f and backs the cursor out if it fails.
func (p *parser) opt(f func() bool) bool {
	m := p.pos
	if !f() {
		p.to(m)
	}
	return true
}

// rep0 applies f until it fails or stops advancing.
func (p *parser) rep0(f func() bool) bool {
	for {
		m := p.pos
		if !f() || p.pos == m {
			p.to(m)
			return true
		}
	}
}

func (p *parser) rep1(f func() bool) bool {
	if !f() {
		return false
	}
	return p.rep0(f)
}

// repSep matches f (sep f)*. A trailing separator is left unconsumed.
func (p *parser) repSep(f, sep func() bool) bool {
	if !f() {
		return false
	}
	return p.rep0(func() bool {
		m := p.pos
		if !sep() {
			return false
		}
		if !f() {
			p.to(m)
			return false
		}
		return true
	})
}

// peek is positive lookahead: the cursor never moves, but frontier updates
// made while looking ahead are kept.
func (p *parser) peek(f func() bool) bool {
	m := p.pos
	ok := f()
	p.to(m)
	return ok
}

// not is negative lookahead. It records nothing on the frontier either way.
func (p *parser) not(f func() bool) bool {
	m := p.pos
	p.quiet++
	ok := f()
	p.quiet--
	p.to(m)
	return !ok
}

// capture runs f and returns the text it consumed.
func (p *parser) capture(f func() bool) (string, bool) {
	start := p.pos
	if !f() {
		return "", false
	}
	return p.in.Slice(start, p.pos), true
}

// matchStr consumes the literal s, recording a failure at the first
// mismatching offset.
func (p *parser) matchStr(s string) bool {
	j := p.pos
	for _, r := range s {
		if p.in.At(j) != r {
			save := p.pos
			p.pos = j
			p.fail(s)
			p.pos = save
			return false
		}
		j++
	}
	p.pos = j
	return true
}
