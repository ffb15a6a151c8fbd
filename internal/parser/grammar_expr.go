package parser

// The expression grammar runs in two modes that differ only in how they
// treat newlines. Inside braces (blocks, case bodies, template bodies,
// brace-delimited for-enumerators) the sensitive flag is true and a newline
// can terminate a statement; inside parentheses it is false and newlines are
// plain whitespace. The flag is threaded explicitly so that backtracking
// never has to undo it.

// Expr = LambdaHead* (If | While | Try | Do | For | Throw | Return | Assign
//                     | PostfixExpr ExprTrailer?)
func (p *parser) expr(sensitive bool) bool {
	return p.rule("Expr", func() bool {
		heads := 0
		for p.lambdaHead(sensitive) {
			heads++
		}
		if p.exprBody(sensitive) {
			return true
		}
		// a lambda may have an empty body, as in `foo { x => }`
		return heads > 0
	})
}

func (p *parser) exprBody(sensitive bool) bool {
	if p.ifExpr(sensitive) || p.whileExpr(sensitive) || p.tryExpr(sensitive) ||
		p.doWhileExpr(sensitive) || p.forExpr(sensitive) ||
		p.throwExpr(sensitive) || p.returnExpr(sensitive) {
		return true
	}
	if p.assignExpr(sensitive) {
		return true
	}
	if !p.postfixExpr(sensitive) {
		return false
	}
	p.opt(func() bool { return p.exprTrailer(sensitive) })
	return true
}

// LambdaHead = (Bindings | 'implicit'? (Id | '_') (':' InfixType)?) '=>'
func (p *parser) lambdaHead(sensitive bool) bool {
	m := p.pos
	ok := func() bool {
		if p.bindings() {
			return true
		}
		p.opt(func() bool { return p.kw("implicit") })
		if !p.id() && !p.kw("_") {
			return false
		}
		p.opt(func() bool {
			mm := p.pos
			if p.colon() && p.infixType() {
				return true
			}
			p.to(mm)
			return false
		})
		return true
	}()
	if !ok || !p.rightArrow() {
		p.to(m)
		return false
	}
	return true
}

// Bindings = '(' (Binding (',' Binding)*)? ')'
func (p *parser) bindings() bool {
	m := p.pos
	if !p.tok("(") {
		return false
	}
	p.opt(func() bool { return p.repSep(p.binding, p.comma) })
	if !p.tok(")") {
		p.to(m)
		return false
	}
	return true
}

// Binding = (Id | '_') (':' Type)?
func (p *parser) binding() bool {
	if !p.id() && !p.kw("_") {
		return false
	}
	p.opt(func() bool {
		m := p.pos
		if p.colon() && p.typ() {
			return true
		}
		p.to(m)
		return false
	})
	return true
}

// If = 'if' '(' Expr ')' Expr (Semi? 'else' Expr)?
func (p *parser) ifExpr(sensitive bool) bool {
	m := p.pos
	if !p.kw("if") {
		return false
	}
	if !p.tok("(") || !p.expr(false) || !p.tok(")") || !p.expr(sensitive) {
		p.to(m)
		return false
	}
	p.opt(func() bool {
		mm := p.pos
		p.opt(p.semi)
		if p.kw("else") && p.expr(sensitive) {
			return true
		}
		p.to(mm)
		return false
	})
	return true
}

// While = 'while' '(' Expr ')' Expr
func (p *parser) whileExpr(sensitive bool) bool {
	m := p.pos
	if !p.kw("while") {
		return false
	}
	if !p.tok("(") || !p.expr(false) || !p.tok(")") || !p.expr(sensitive) {
		p.to(m)
		return false
	}
	return true
}

// Try = 'try' Expr ('catch' Expr)? ('finally' Expr)?
func (p *parser) tryExpr(sensitive bool) bool {
	m := p.pos
	if !p.kw("try") {
		return false
	}
	if !p.expr(sensitive) {
		p.to(m)
		return false
	}
	p.opt(func() bool {
		mm := p.pos
		if p.kw("catch") && p.expr(sensitive) {
			return true
		}
		p.to(mm)
		return false
	})
	p.opt(func() bool {
		mm := p.pos
		if p.kw("finally") && p.expr(sensitive) {
			return true
		}
		p.to(mm)
		return false
	})
	return true
}

// Do = 'do' Expr Semi? 'while' '(' Expr ')'
func (p *parser) doWhileExpr(sensitive bool) bool {
	m := p.pos
	if !p.kw("do") {
		return false
	}
	if !p.expr(sensitive) {
		p.to(m)
		return false
	}
	p.opt(p.semi)
	if !p.kw("while") || !p.tok("(") || !p.expr(false) || !p.tok(")") {
		p.to(m)
		return false
	}
	return true
}

// For = 'for' ('(' Enumerators ')' | '{' Enumerators '}') 'yield'? Expr
func (p *parser) forExpr(sensitive bool) bool {
	m := p.pos
	if !p.kw("for") {
		return false
	}
	ok := func() bool {
		mm := p.pos
		if p.tok("(") && p.enumerators(false) && p.tok(")") {
			return true
		}
		p.to(mm)
		if p.tok("{") && p.enumerators(true) && p.optSemis() && p.tok("}") {
			return true
		}
		p.to(mm)
		return false
	}()
	if !ok {
		p.to(m)
		return false
	}
	p.opt(func() bool { return p.kw("yield") })
	if !p.expr(sensitive) {
		p.to(m)
		return false
	}
	return true
}

func (p *parser) throwExpr(sensitive bool) bool {
	m := p.pos
	if !p.kw("throw") {
		return false
	}
	if !p.expr(sensitive) {
		p.to(m)
		return false
	}
	return true
}

// Return = 'return' Expr? — the operand must start on the same line in
// semicolon-inference mode.
func (p *parser) returnExpr(sensitive bool) bool {
	if !p.kw("return") {
		return false
	}
	p.opt(func() bool {
		m := p.pos
		if p.maybeNotNewline(sensitive) && p.expr(sensitive) {
			return true
		}
		p.to(m)
		return false
	})
	return true
}

// Assign = SimpleExpr '=' Expr. The left-hand side is always parsed in
// insensitive mode; the sensitive rule set delegates here.
func (p *parser) assignExpr(sensitive bool) bool {
	m := p.pos
	if !p.simpleExpr(false) {
		return false
	}
	if !p.opTok("=") || !p.expr(sensitive) {
		p.to(m)
		return false
	}
	return true
}

// ExprTrailer = 'match' '{' CaseClauses '}' | Ascription
func (p *parser) exprTrailer(sensitive bool) bool {
	m := p.pos
	if p.kw("match") {
		if p.tok("{") && p.caseClauses() && p.tok("}") {
			return true
		}
		p.to(m)
		return false
	}
	return p.ascription()
}

// Ascription = ':' ('_' '*' | Annotation+ | InfixType)
func (p *parser) ascription() bool {
	m := p.pos
	if !p.colon() {
		return false
	}
	mm := p.pos
	if p.kw("_") && p.opTok("*") {
		return true
	}
	p.to(mm)
	if p.annot() {
		p.rep0(p.annot)
		return true
	}
	if p.infixType() {
		return true
	}
	p.to(m)
	return false
}

// PostfixExpr = PrefixExpr InfixPart* PostfixPart?
// InfixPart   = MaybeNotNewline Id TypeArgs? MaybeOneNewline PrefixExpr
// PostfixPart = NotNewline Id Newline?
func (p *parser) postfixExpr(sensitive bool) bool {
	return p.rule("PostfixExpr", func() bool {
		if !p.prefixExpr(sensitive) {
			return false
		}
		p.rep0(func() bool {
			m := p.pos
			if !p.maybeNotNewline(sensitive) {
				return false
			}
			if !p.id() {
				p.to(m)
				return false
			}
			p.opt(p.typeArgs)
			if !p.maybeOneNL(sensitive) || !p.prefixExpr(sensitive) {
				p.to(m)
				return false
			}
			return true
		})
		m := p.pos
		if p.notNewline() && p.id() {
			p.opt(func() bool {
				mm := p.pos
				p.ws()
				if p.matchNewline() {
					return true
				}
				p.to(mm)
				return false
			})
		} else {
			p.to(m)
		}
		return true
	})
}

// PrefixExpr = ('-' | '+' | '~' | '!')? SimpleExpr. A prefix operator must
// not be glued to further operator characters.
func (p *parser) prefixExpr(sensitive bool) bool {
	m := p.pos
	p.wl()
	r := p.cur()
	if (r == '-' || r == '+' || r == '~' || r == '!') && !isOpChar(p.at(p.pos+1)) {
		p.pos++
		p.ws()
	} else {
		p.to(m)
	}
	if p.simpleExpr(sensitive) {
		return true
	}
	p.to(m)
	return false
}

// SimpleExpr = SimpleExprStart ('.' Id | TypeArgs | MaybeNotNewline ArgumentExprs)*
//              (MaybeNotNewline '_')?
func (p *parser) simpleExpr(sensitive bool) bool {
	return p.rule("SimpleExpr", func() bool {
		if !p.simpleExprStart(sensitive) {
			return false
		}
		p.rep0(func() bool {
			m := p.pos
			if p.tok(".") {
				if p.id() {
					return true
				}
				p.to(m)
				return false
			}
			if p.typeArgs() {
				return true
			}
			if p.maybeNotNewline(sensitive) && p.argList(sensitive) {
				return true
			}
			p.to(m)
			return false
		})
		m := p.pos
		if !(p.maybeNotNewline(sensitive) && p.kw("_")) {
			p.to(m)
		}
		return true
	})
}

func (p *parser) simpleExprStart(sensitive bool) bool {
	if p.newExpr() {
		return true
	}
	if p.blockExpr() {
		return true
	}
	if p.literal() {
		return true
	}
	if p.stableId() {
		return true
	}
	if p.kw("_") {
		return true
	}
	return p.parenExpr()
}

// '(' (Expr (',' Expr)*)? ')' — unit, a parenthesized expression or a tuple
func (p *parser) parenExpr() bool {
	m := p.pos
	if !p.tok("(") {
		return false
	}
	p.opt(p.exprs)
	if !p.tok(")") {
		p.to(m)
		return false
	}
	return true
}

func (p *parser) exprs() bool {
	return p.repSep(func() bool { return p.expr(false) }, p.comma)
}

// ArgumentExprs = '(' (Exprs (':' '_' '*')?)? ')' | OneNewlineMax BlockExpr
func (p *parser) argList(sensitive bool) bool {
	m := p.pos
	if p.tok("(") {
		p.opt(func() bool {
			if !p.exprs() {
				return false
			}
			p.opt(func() bool {
				mm := p.pos
				if p.colon() && p.kw("_") && p.opTok("*") {
					return true
				}
				p.to(mm)
				return false
			})
			return true
		})
		if p.tok(")") {
			return true
		}
		p.to(m)
		return false
	}
	if p.oneNLMax() && p.blockExpr() {
		return true
	}
	p.to(m)
	return false
}

// parenArgList is the parenthesized form alone, used by constructors and
// annotations where a trailing block would be ambiguous.
func (p *parser) parenArgList() bool {
	m := p.pos
	if !p.tok("(") {
		return false
	}
	p.opt(p.exprs)
	if !p.tok(")") {
		p.to(m)
		return false
	}
	return true
}

// BlockExpr = '{' (CaseClauses | Block) '}'
func (p *parser) blockExpr() bool {
	return p.rule("BlockExpr", func() bool {
		m := p.pos
		if !p.tok("{") {
			return false
		}
		mm := p.pos
		if p.caseClauses() && p.tok("}") {
			return true
		}
		p.to(mm)
		if p.block() && p.tok("}") {
			return true
		}
		p.to(m)
		return false
	})
}

// Block = optSemis (BlockStat (Semis BlockStat)*)? BlockEnd
func (p *parser) block() bool {
	return p.rule("Block", func() bool {
		m := p.pos
		p.optSemis()
		p.opt(func() bool { return p.repSep(p.blockStat, p.semis) })
		if !p.blockEnd() {
			p.to(m)
			return false
		}
		return true
	})
}

// BlockEnd = optSemis &('}' | 'case')
func (p *parser) blockEnd() bool {
	p.optSemis()
	return p.peek(func() bool { return p.tok("}") || p.kw("case") })
}

// BlockStat = Import | Prelude (Def | TmplDef) | Expr
func (p *parser) blockStat() bool {
	if p.importStmt() {
		return true
	}
	m := p.pos
	p.prelude()
	if p.defStmt() || p.tmplDef() {
		return true
	}
	p.to(m)
	return p.expr(true)
}

func (p *parser) caseClauses() bool {
	return p.rule("CaseClauses", func() bool { return p.rep1(p.caseClause) })
}

// CaseClause = 'case' !('class' | 'object') Pattern Guard? '=>' Block
func (p *parser) caseClause() bool {
	return p.rule("CaseClause", func() bool {
		m := p.pos
		if !p.kw("case") {
			return false
		}
		if !p.not(func() bool { return p.kw("class") || p.kw("object") }) {
			p.to(m)
			return false
		}
		if !p.pattern() {
			p.to(m)
			return false
		}
		p.opt(func() bool { return p.guard(false) })
		if !p.rightArrow() || !p.block() {
			p.to(m)
			return false
		}
		return true
	})
}

// Guard = 'if' PostfixExpr
func (p *parser) guard(sensitive bool) bool {
	m := p.pos
	if !p.kw("if") {
		return false
	}
	if !p.postfixExpr(sensitive) {
		p.to(m)
		return false
	}
	return true
}

// Enumerators = Generator (Semis Enumerator)*
func (p *parser) enumerators(sensitive bool) bool {
	return p.rule("Enumerators", func() bool {
		if !p.generator(sensitive) {
			return false
		}
		p.rep0(func() bool {
			m := p.pos
			if p.semis() && p.enumerator(sensitive) {
				return true
			}
			p.to(m)
			return false
		})
		return true
	})
}

// Generator = Pattern '<-' Expr Guard?
func (p *parser) generator(sensitive bool) bool {
	m := p.pos
	if !p.pattern() {
		return false
	}
	if !p.leftArrow() || !p.expr(sensitive) {
		p.to(m)
		return false
	}
	p.opt(func() bool { return p.guard(sensitive) })
	return true
}

// Enumerator = Generator | Guard | Pattern '=' Expr
func (p *parser) enumerator(sensitive bool) bool {
	if p.generator(sensitive) {
		return true
	}
	if p.guard(sensitive) {
		return true
	}
	m := p.pos
	if p.pattern() && p.opTok("=") && p.expr(sensitive) {
		return true
	}
	p.to(m)
	return false
}

// New = 'new' AnonTmpl
func (p *parser) newExpr() bool {
	m := p.pos
	if !p.kw("new") {
		return false
	}
	if !p.anonTmpl() {
		p.to(m)
		return false
	}
	return true
}
