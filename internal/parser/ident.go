package parser

import "unicode"

// keywords are the reserved words of the language. None of them can be
// matched by Id, although an identifier may contain one as a prefix.
var keywords = map[string]bool{
	"abstract": true, "case": true, "catch": true, "class": true,
	"def": true, "do": true, "else": true, "extends": true,
	"false": true, "final": true, "finally": true, "for": true,
	"forSome": true, "if": true, "implicit": true, "import": true,
	"lazy": true, "macro": true, "match": true, "new": true,
	"null": true, "object": true, "override": true, "package": true,
	"private": true, "protected": true, "return": true, "sealed": true,
	"super": true, "this": true, "throw": true, "trait": true,
	"try": true, "true": true, "type": true, "val": true,
	"var": true, "while": true, "with": true, "yield": true,
	"_": true,
}

// reservedOps are operator shapes claimed by the grammar itself. "==" or
// "::" remain ordinary operator identifiers.
var reservedOps = map[string]bool{
	"=": true, "=>": true, "⇒": true, "<-": true, "←": true,
	"<:": true, ">:": true, "<%": true, "#": true, "@": true, ":": true,
}

// identText consumes one raw identifier shape: backtick-quoted, plain with
// an optional underscore-operator tail, or a run of operator characters.
func (p *parser) identText() (string, bool) {
	start := p.pos
	r := p.cur()
	switch {
	case r == '`':
		p.pos++
		for p.cur() != '`' {
			if p.eof() || isNewlineStart(p.cur()) {
				p.to(start)
				return "", false
			}
			p.pos++
		}
		if p.pos == start+1 {
			p.to(start)
			return "", false
		}
		p.pos++
		return p.in.Slice(start, p.pos), true
	case isLetterChar(r):
		p.pos++
		for isIdentChar(p.cur()) {
			p.pos++
		}
		if p.at(p.pos-1) == '_' && isOpChar(p.cur()) {
			for isOpChar(p.cur()) {
				p.pos++
			}
		}
		return p.in.Slice(start, p.pos), true
	case isOpChar(r):
		for isOpChar(p.cur()) {
			p.pos++
		}
		return p.in.Slice(start, p.pos), true
	}
	return "", false
}

// id matches any identifier that is not a reserved word or operator.
func (p *parser) id() bool {
	m := p.pos
	p.wl()
	start := p.pos
	ok := p.atom("Id", func() bool {
		text, ok := p.identText()
		if !ok {
			return p.fail("Id")
		}
		if text[0] != '`' && (keywords[text] || reservedOps[text]) {
			p.to(start)
			return p.fail("Id")
		}
		return true
	})
	if !ok {
		p.to(m)
	}
	return ok
}

// varId matches an identifier starting with a lowercase letter, the shape
// patterns treat as a binder.
func (p *parser) varId() bool {
	m := p.pos
	p.wl()
	start := p.pos
	ok := p.atom("VarId", func() bool {
		if !unicode.IsLower(p.cur()) {
			return p.fail("VarId")
		}
		p.pos++
		for isIdentChar(p.cur()) {
			p.pos++
		}
		if p.at(p.pos-1) == '_' && isOpChar(p.cur()) {
			for isOpChar(p.cur()) {
				p.pos++
			}
		}
		if keywords[p.in.Slice(start, p.pos)] {
			p.to(start)
			return p.fail("VarId")
		}
		return true
	})
	if !ok {
		p.to(m)
	}
	return ok
}

// qualId matches a dot-separated identifier path.
func (p *parser) qualId() bool {
	return p.rule("QualId", func() bool {
		return p.repSep(p.id, func() bool { return p.tok(".") })
	})
}

// stableId matches a path that may route through this or super.
func (p *parser) stableId() bool {
	return p.rule("StableId", func() bool {
		thisSuper := func() bool {
			if p.kw("this") {
				return true
			}
			if p.kw("super") {
				p.opt(func() bool {
					m := p.pos
					if p.tok("[") && p.id() && p.tok("]") {
						return true
					}
					p.to(m)
					return false
				})
				return true
			}
			return false
		}
		m := p.pos
		p.rep0(func() bool {
			mm := p.pos
			if p.id() && p.tok(".") {
				return true
			}
			p.to(mm)
			return false
		})
		if thisSuper() {
			p.rep0(func() bool {
				mm := p.pos
				if p.tok(".") && p.id() {
					return true
				}
				p.to(mm)
				return false
			})
			return true
		}
		p.to(m)
		return p.repSep(p.id, func() bool { return p.tok(".") })
	})
}
