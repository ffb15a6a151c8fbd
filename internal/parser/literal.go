package parser

// literal matches any literal token: numbers with an optional leading minus,
// booleans, null, characters, strings (plain, triple-quoted and
// interpolated) and symbols.
func (p *parser) literal() bool {
	m := p.pos
	p.wl()
	mm := p.pos
	if p.cur() == '-' {
		p.pos++
	}
	if p.floatLit() || p.intLit() {
		return true
	}
	p.to(mm)
	if p.kw("true") || p.kw("false") || p.kw("null") {
		return true
	}
	if p.stringLit() || p.charLit() || p.symbolLit() {
		return true
	}
	p.to(m)
	return false
}

func (p *parser) digits() bool {
	if !isDigitChar(p.cur()) {
		return false
	}
	for isDigitChar(p.cur()) {
		p.pos++
	}
	return true
}

func (p *parser) hexDigits() bool {
	if !isHexDigitChar(p.cur()) {
		return false
	}
	for isHexDigitChar(p.cur()) {
		p.pos++
	}
	return true
}

// exponent consumes [eE][+-]?digits as a unit.
func (p *parser) exponent() bool {
	m := p.pos
	if p.cur() != 'e' && p.cur() != 'E' {
		return false
	}
	p.pos++
	if p.cur() == '+' || p.cur() == '-' {
		p.pos++
	}
	if !p.digits() {
		p.to(m)
		return false
	}
	return true
}

func (p *parser) floatSuffix() bool {
	switch p.cur() {
	case 'f', 'F', 'd', 'D':
		p.pos++
		return true
	}
	return false
}

// floatLit requires at least one of a fraction, an exponent or a float
// suffix, so plain integers fall through to intLit.
func (p *parser) floatLit() bool {
	m := p.pos
	ok := p.atom("FloatLiteral", func() bool {
		if !p.digits() {
			if p.cur() != '.' || !isDigitChar(p.at(p.pos+1)) {
				return false
			}
			p.pos++
			p.digits()
			p.exponent()
			p.floatSuffix()
			return true
		}
		hasPart := false
		if p.cur() == '.' && isDigitChar(p.at(p.pos+1)) {
			p.pos++
			p.digits()
			hasPart = true
		}
		if p.exponent() {
			hasPart = true
		}
		if p.floatSuffix() {
			hasPart = true
		}
		return hasPart
	})
	if !ok {
		p.to(m)
	}
	return ok
}

func (p *parser) intLit() bool {
	m := p.pos
	ok := p.atom("IntegerLiteral", func() bool {
		if p.cur() == '0' && (p.at(p.pos+1) == 'x' || p.at(p.pos+1) == 'X') {
			p.pos += 2
			if !p.hexDigits() {
				return p.fail("IntegerLiteral")
			}
		} else if !p.digits() {
			return p.fail("IntegerLiteral")
		}
		if p.cur() == 'L' || p.cur() == 'l' {
			p.pos++
		}
		return true
	})
	if !ok {
		p.to(m)
	}
	return ok
}

// unicodeEscape consumes \u+XXXX. The escape is matched textually; it is
// never expanded.
func (p *parser) unicodeEscape() bool {
	m := p.pos
	if p.cur() != '\\' || p.at(p.pos+1) != 'u' {
		return false
	}
	p.pos++
	for p.cur() == 'u' {
		p.pos++
	}
	for i := 0; i < 4; i++ {
		if !isHexDigitChar(p.cur()) {
			p.to(m)
			return false
		}
		p.pos++
	}
	return true
}

func (p *parser) charLit() bool {
	m := p.pos
	ok := p.atom("CharLiteral", func() bool {
		if p.cur() != '\'' {
			return p.fail("CharLiteral")
		}
		p.pos++
		switch {
		case p.unicodeEscape():
		case p.cur() == '\\':
			if p.at(p.pos+1) == -1 {
				return p.fail("CharLiteral")
			}
			p.pos += 2
		case p.cur() == '\'' || p.eof() || isNewlineStart(p.cur()):
			return p.fail("CharLiteral")
		default:
			p.pos++
		}
		if p.cur() != '\'' {
			return p.fail("'")
		}
		p.pos++
		return true
	})
	if !ok {
		p.to(m)
	}
	return ok
}

// symbolLit matches a quote followed by an identifier with no closing quote.
func (p *parser) symbolLit() bool {
	m := p.pos
	ok := p.atom("SymbolLiteral", func() bool {
		if p.cur() != '\'' {
			return p.fail("SymbolLiteral")
		}
		p.pos++
		switch {
		case isLetterChar(p.cur()):
			p.pos++
			for isIdentChar(p.cur()) {
				p.pos++
			}
		case isOpChar(p.cur()):
			for isOpChar(p.cur()) {
				p.pos++
			}
		default:
			return p.fail("SymbolLiteral")
		}
		return true
	})
	if !ok {
		p.to(m)
	}
	return ok
}

// stringLit matches plain, triple-quoted and interpolated strings. An
// interpolation prefix is an identifier glued directly to the opening quote;
// the interior of an interpolated string is scanned as raw text.
func (p *parser) stringLit() bool {
	m := p.pos
	ok := p.atom("StringLiteral", func() bool {
		if isLetterChar(p.cur()) {
			p.pos++
			for isIdentChar(p.cur()) {
				p.pos++
			}
			if p.cur() != '"' {
				p.to(m)
				return false
			}
		}
		if p.cur() != '"' {
			return p.fail("StringLiteral")
		}
		if p.at(p.pos+1) == '"' && p.at(p.pos+2) == '"' {
			return p.tripleString()
		}
		p.pos++
		for {
			switch {
			case p.cur() == '"':
				p.pos++
				return true
			case p.eof() || isNewlineStart(p.cur()):
				return p.fail("\"")
			case p.cur() == '\\':
				if p.at(p.pos+1) == -1 {
					return p.fail("\"")
				}
				p.pos += 2
			default:
				p.pos++
			}
		}
	})
	if !ok {
		p.to(m)
	}
	return ok
}

// tripleString consumes everything up to the last closing triple quote in
// the input. Greedy repetition with backtracking resolves to the final
// occurrence, so the scan mirrors that directly.
func (p *parser) tripleString() bool {
	p.pos += 3
	last := -1
	for i := p.in.Len() - 3; i >= p.pos; i-- {
		if p.at(i) == '"' && p.at(i+1) == '"' && p.at(i+2) == '"' {
			last = i
			break
		}
	}
	if last < 0 {
		p.pos = p.in.Len()
		return p.fail(`"""`)
	}
	p.pos = last + 3
	return true
}
