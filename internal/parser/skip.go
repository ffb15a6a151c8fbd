package parser

// The grammar uses two skip policies. WS consumes spaces, tabs and comments
// but never a bare newline; WL also consumes newlines. Token primitives skip
// WL implicitly, and the newline-sensitive parts of the expression grammar
// guard their tokens with notNewline and oneNLMax instead of using a
// different skip.

// matchNewline consumes a single "\n" or "\r\n" without touching the
// frontier.
func (p *parser) matchNewline() bool {
	if p.cur() == '\n' {
		p.pos++
		return true
	}
	if p.cur() == '\r' && p.at(p.pos+1) == '\n' {
		p.pos += 2
		return true
	}
	return false
}

func (p *parser) rawNewline() bool {
	if p.matchNewline() {
		return true
	}
	return p.fail("newline")
}

// comment consumes a line comment, excluding its terminating newline, or a
// block comment. Block comments nest.
func (p *parser) comment() bool {
	if p.cur() != '/' {
		return false
	}
	switch p.at(p.pos + 1) {
	case '/':
		p.pos += 2
		for !p.eof() && !isNewlineStart(p.cur()) {
			p.pos++
		}
		return true
	case '*':
		return p.blockComment()
	}
	return false
}

func (p *parser) blockComment() bool {
	m := p.pos
	p.pos += 2
	depth := 1
	for depth > 0 {
		switch {
		case p.eof():
			p.fail("*/")
			p.to(m)
			return false
		case p.cur() == '/' && p.at(p.pos+1) == '*':
			depth++
			p.pos += 2
		case p.cur() == '*' && p.at(p.pos+1) == '/':
			depth--
			p.pos += 2
		default:
			p.pos++
		}
	}
	return true
}

// ws skips spaces, tabs and comments without crossing a bare newline.
func (p *parser) ws() {
	for {
		r := p.cur()
		if isWSChar(r) {
			p.pos++
			continue
		}
		if r == '/' {
			m := p.pos
			if p.comment() {
				continue
			}
			p.to(m)
		}
		return
	}
}

// wl skips spaces, tabs, comments and newlines.
func (p *parser) wl() {
	for {
		r := p.cur()
		if isWSChar(r) {
			p.pos++
			continue
		}
		if p.matchNewline() {
			continue
		}
		if r == '/' {
			m := p.pos
			if p.comment() {
				continue
			}
			p.to(m)
		}
		return
	}
}

// semi matches an explicit semicolon or a run of inferred newlines.
func (p *parser) semi() bool {
	m := p.pos
	p.ws()
	if p.cur() == ';' {
		p.pos++
		return true
	}
	if p.matchNewline() {
		for p.matchNewline() {
		}
		return true
	}
	p.fail(";")
	p.to(m)
	return false
}

func (p *parser) semis() bool { return p.rep1(p.semi) }

func (p *parser) optSemis() bool {
	p.opt(p.semis)
	return true
}

// notNewline succeeds when the next token sits on the current line. It never
// consumes input.
func (p *parser) notNewline() bool {
	m := p.pos
	p.ws()
	r := p.cur()
	p.to(m)
	return !isNewlineStart(r)
}

// oneNLMax permits at most one newline before the next token. Lines holding
// only a comment do not count against the budget.
func (p *parser) oneNLMax() bool {
	m := p.pos
	p.ws()
	p.matchNewline()
	for {
		mm := p.pos
		for isWSChar(p.cur()) {
			p.pos++
		}
		if !p.comment() {
			p.to(mm)
			break
		}
		for isWSChar(p.cur()) {
			p.pos++
		}
		if !p.matchNewline() {
			p.to(mm)
			break
		}
	}
	if !p.notNewline() {
		p.to(m)
		return false
	}
	return true
}

// maybeNotNewline is notNewline in semicolon-inference mode and a no-op
// otherwise.
func (p *parser) maybeNotNewline(sensitive bool) bool {
	if !sensitive {
		return true
	}
	return p.notNewline()
}

// maybeOneNL is oneNLMax in semicolon-inference mode and a no-op otherwise.
func (p *parser) maybeOneNL(sensitive bool) bool {
	if !sensitive {
		return true
	}
	return p.oneNLMax()
}
