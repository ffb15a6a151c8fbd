package parser

// Type = ('_' | FunctionArgTypes '=>' Type | InfixType ('=>' Type | ExistentialClause)?) TypeBounds
func (p *parser) typ() bool {
	return p.rule("Type", func() bool {
		m := p.pos
		ok := func() bool {
			if p.kw("_") {
				return true
			}
			mm := p.pos
			if p.parenParamTypes() && p.rightArrow() && p.typ() {
				return true
			}
			p.to(mm)
			if !p.infixType() {
				return false
			}
			mm = p.pos
			if p.rightArrow() {
				if p.typ() {
					return true
				}
				p.to(mm)
			}
			p.opt(p.existentialClause)
			return true
		}()
		if !ok {
			p.to(m)
			return false
		}
		p.typeBounds()
		return true
	})
}

// FunctionArgTypes = '(' (ParamType (',' ParamType)*)? ')'
func (p *parser) parenParamTypes() bool {
	m := p.pos
	if !p.tok("(") {
		return false
	}
	p.opt(func() bool { return p.repSep(p.paramType, p.comma) })
	if !p.tok(")") {
		p.to(m)
		return false
	}
	return true
}

// ParamType = '=>' Type | Type '*'?
func (p *parser) paramType() bool {
	return p.rule("ParamType", func() bool {
		m := p.pos
		if p.rightArrow() {
			if p.typ() {
				return true
			}
			p.to(m)
		}
		if !p.typ() {
			return false
		}
		p.opt(func() bool { return p.opTok("*") })
		return true
	})
}

// InfixType = CompoundType (Id OneNewlineMax CompoundType)*
func (p *parser) infixType() bool {
	return p.rule("InfixType", func() bool {
		if !p.compoundType() {
			return false
		}
		p.rep0(func() bool {
			m := p.pos
			if p.id() && p.oneNLMax() && p.compoundType() {
				return true
			}
			p.to(m)
			return false
		})
		return true
	})
}

// CompoundType = AnnotType ('with' AnnotType)* Refinement? | Refinement
func (p *parser) compoundType() bool {
	return p.rule("CompoundType", func() bool {
		if !p.annotType() {
			return p.refinement()
		}
		p.rep0(func() bool {
			m := p.pos
			if p.kw("with") && p.annotType() {
				return true
			}
			p.to(m)
			return false
		})
		p.opt(p.refinement)
		return true
	})
}

// Refinement = OneNewlineMax '{' (RefineStat (Semis RefineStat)*)? '}'
func (p *parser) refinement() bool {
	return p.rule("Refinement", func() bool {
		m := p.pos
		if !p.oneNLMax() {
			return false
		}
		if !p.tok("{") {
			p.to(m)
			return false
		}
		p.optSemis()
		p.opt(func() bool { return p.repSep(p.defStmt, p.semis) })
		p.optSemis()
		if !p.tok("}") {
			p.to(m)
			return false
		}
		return true
	})
}

// AnnotType = SimpleType Annotation*
func (p *parser) annotType() bool {
	return p.rule("AnnotType", func() bool {
		if !p.simpleType() {
			return false
		}
		p.rep0(func() bool {
			m := p.pos
			if p.notNewline() && p.annot() {
				return true
			}
			p.to(m)
			return false
		})
		return true
	})
}

// Annotation = '@' SimpleType ArgumentExprs*
func (p *parser) annot() bool {
	m := p.pos
	if !p.opTok("@") {
		return false
	}
	if !p.simpleType() {
		p.to(m)
		return false
	}
	p.rep0(func() bool {
		mm := p.pos
		if p.notNewline() && p.parenArgList() {
			return true
		}
		p.to(mm)
		return false
	})
	return true
}

// SimpleType = (ProductType | SingletonType | StableId) (TypeArgs | '#' Id)*
func (p *parser) simpleType() bool {
	return p.rule("SimpleType", func() bool {
		ok := func() bool {
			if p.productType() {
				return true
			}
			if !p.stableId() {
				return false
			}
			m := p.pos
			if p.tok(".") && p.kw("type") {
				return true
			}
			p.to(m)
			return true
		}()
		if !ok {
			return false
		}
		p.rep0(func() bool {
			m := p.pos
			if p.typeArgs() {
				return true
			}
			if p.opTok("#") && p.id() {
				return true
			}
			p.to(m)
			return false
		})
		return true
	})
}

// ProductType = '(' (Type (',' Type)*)? ')'
func (p *parser) productType() bool {
	m := p.pos
	if !p.tok("(") {
		return false
	}
	p.opt(func() bool { return p.repSep(p.typ, p.comma) })
	if !p.tok(")") {
		p.to(m)
		return false
	}
	return true
}

// TypeArgs = '[' Type (',' Type)* ']'
func (p *parser) typeArgs() bool {
	m := p.pos
	if !p.tok("[") {
		return false
	}
	if !p.repSep(p.typ, p.comma) {
		p.to(m)
		return false
	}
	if !p.tok("]") {
		p.to(m)
		return false
	}
	return true
}

// TypeBounds = ('>:' Type)? ('<:' Type)?
func (p *parser) typeBounds() bool {
	p.opt(func() bool {
		m := p.pos
		if p.opTok(">:") && p.typ() {
			return true
		}
		p.to(m)
		return false
	})
	p.opt(func() bool {
		m := p.pos
		if p.opTok("<:") && p.typ() {
			return true
		}
		p.to(m)
		return false
	})
	return true
}

// ExistentialClause = 'forSome' '{' ExistentialDcl (Semis? ExistentialDcl)* '}'
func (p *parser) existentialClause() bool {
	m := p.pos
	if !p.kw("forSome") {
		return false
	}
	if !p.tok("{") {
		p.to(m)
		return false
	}
	p.optSemis()
	if !p.repSep(p.existentialDcl, p.optSemis) {
		p.to(m)
		return false
	}
	p.optSemis()
	if !p.tok("}") {
		p.to(m)
		return false
	}
	return true
}

// ExistentialDcl = 'type' Id TypeParamClause? TypeBounds | 'val' Id ':' Type
func (p *parser) existentialDcl() bool {
	m := p.pos
	if p.kw("type") {
		if p.id() {
			p.opt(p.typeParamClause)
			p.typeBounds()
			return true
		}
		p.to(m)
		return false
	}
	if p.kw("val") {
		if p.id() && p.colon() && p.typ() {
			return true
		}
		p.to(m)
	}
	return false
}

// TypePat restricts ascribed pattern types to compound types so that '|'
// keeps its pattern-alternation meaning.
func (p *parser) typePat() bool {
	return p.compoundType()
}
