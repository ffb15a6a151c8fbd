package parser

// prelude consumes leading annotations and modifiers. Each annotation may be
// followed by at most one newline so that an annotation on its own line
// still attaches to the definition below it.
func (p *parser) prelude() {
	p.rep0(func() bool {
		m := p.pos
		if p.annot() {
			p.opt(p.oneNLMax)
			return true
		}
		p.to(m)
		return false
	})
	p.rep0(p.mod)
}

// Modifier = 'abstract' | 'final' | 'sealed' | 'implicit' | 'lazy'
//          | 'override' | AccessModifier
func (p *parser) mod() bool {
	if p.kw("abstract") || p.kw("final") || p.kw("sealed") ||
		p.kw("implicit") || p.kw("lazy") || p.kw("override") {
		return true
	}
	return p.accessMod()
}

// AccessModifier = ('private' | 'protected') ('[' (Id | 'this') ']')?
func (p *parser) accessMod() bool {
	if !p.kw("private") && !p.kw("protected") {
		return false
	}
	p.opt(func() bool {
		m := p.pos
		if p.tok("[") && (p.id() || p.kw("this")) && p.tok("]") {
			return true
		}
		p.to(m)
		return false
	})
	return true
}

// Def = ('val' | 'var') ValVarDef | 'def' FunDef | 'type' TypeDef.
// Declarations without a right-hand side take the same shape with the
// optional pieces absent.
func (p *parser) defStmt() bool {
	return p.rule("Def", func() bool {
		return p.valVarDef() || p.funDef() || p.typeDefStmt()
	})
}

// ValVarDef = ('val' | 'var') Pattern2 (',' Pattern2)* (':' Type)? ('=' Expr)?
func (p *parser) valVarDef() bool {
	m := p.pos
	if !p.kw("val") && !p.kw("var") {
		return false
	}
	if !p.repSep(p.pattern2, p.comma) {
		p.to(m)
		return false
	}
	p.opt(func() bool {
		mm := p.pos
		if p.colon() && p.typ() {
			return true
		}
		p.to(mm)
		return false
	})
	p.opt(func() bool {
		mm := p.pos
		if p.opTok("=") && p.expr(true) {
			return true
		}
		p.to(mm)
		return false
	})
	return true
}

// FunDef = 'def' FunSig (':' Type)?
//          ('=' 'macro'? Expr | OneNewlineMax '{' Block '}')?
func (p *parser) funDef() bool {
	m := p.pos
	if !p.kw("def") {
		return false
	}
	if !p.funSig() {
		p.to(m)
		return false
	}
	p.opt(func() bool {
		mm := p.pos
		if p.colon() && p.typ() {
			return true
		}
		p.to(mm)
		return false
	})
	p.opt(func() bool {
		mm := p.pos
		if p.opTok("=") {
			p.opt(func() bool { return p.kw("macro") })
			if p.expr(true) {
				return true
			}
			p.to(mm)
			return false
		}
		if p.oneNLMax() && p.tok("{") && p.block() && p.tok("}") {
			return true
		}
		p.to(mm)
		return false
	})
	return true
}

// FunSig = (Id | 'this') TypeParamClause? ParamClause*
func (p *parser) funSig() bool {
	if !p.id() && !p.kw("this") {
		return false
	}
	p.opt(p.typeParamClause)
	p.rep0(p.paramClause)
	return true
}

// ParamClause = OneNewlineMax '(' 'implicit'? (Param (',' Param)*)? ')'
func (p *parser) paramClause() bool {
	m := p.pos
	if !p.oneNLMax() {
		return false
	}
	if !p.tok("(") {
		p.to(m)
		return false
	}
	p.opt(func() bool { return p.kw("implicit") })
	p.opt(func() bool { return p.repSep(p.param, p.comma) })
	if !p.tok(")") {
		p.to(m)
		return false
	}
	return true
}

// Param = Annotation* Id ':' ParamType ('=' Expr)?
func (p *parser) param() bool {
	m := p.pos
	p.rep0(p.annot)
	if !p.id() {
		p.to(m)
		return false
	}
	if !p.colon() || !p.paramType() {
		p.to(m)
		return false
	}
	p.opt(func() bool {
		mm := p.pos
		if p.opTok("=") && p.expr(false) {
			return true
		}
		p.to(mm)
		return false
	})
	return true
}

// TypeParamClause = '[' TypeParam (',' TypeParam)* ']'
func (p *parser) typeParamClause() bool {
	m := p.pos
	if !p.tok("[") {
		return false
	}
	if !p.repSep(p.typeParam, p.comma) {
		p.to(m)
		return false
	}
	if !p.tok("]") {
		p.to(m)
		return false
	}
	return true
}

// TypeParam = Annotation* ('+' | '-')? (Id | '_') TypeParamClause?
//             TypeBounds ('<%' Type)* (':' Type)*
// The variance annotation binds to the parameter name alone.
func (p *parser) typeParam() bool {
	m := p.pos
	p.rep0(p.annot)
	p.opt(func() bool { return p.opTok("+") || p.opTok("-") })
	if !p.id() && !p.kw("_") {
		p.to(m)
		return false
	}
	p.opt(p.typeParamClause)
	p.typeBounds()
	p.rep0(func() bool {
		mm := p.pos
		if p.opTok("<%") && p.typ() {
			return true
		}
		p.to(mm)
		return false
	})
	p.rep0(func() bool {
		mm := p.pos
		if p.colon() && p.typ() {
			return true
		}
		p.to(mm)
		return false
	})
	return true
}

// TypeDef = 'type' Id TypeParamClause? ('=' Type | TypeBounds)
func (p *parser) typeDefStmt() bool {
	m := p.pos
	if !p.kw("type") {
		return false
	}
	if !p.id() {
		p.to(m)
		return false
	}
	p.opt(p.typeParamClause)
	mm := p.pos
	if p.opTok("=") {
		if p.typ() {
			return true
		}
		p.to(mm)
	}
	p.typeBounds()
	return true
}

// TmplDef = 'trait' TraitDef | 'case'? 'class' ClassDef
//         | 'case'? 'object' ObjectDef
func (p *parser) tmplDef() bool {
	return p.rule("TmplDef", func() bool {
		m := p.pos
		if p.kw("trait") {
			if p.traitDefRest() {
				return true
			}
			p.to(m)
			return false
		}
		p.opt(func() bool { return p.kw("case") })
		if p.kw("class") {
			if p.classDefRest() {
				return true
			}
		} else if p.kw("object") {
			if p.objDefRest() {
				return true
			}
		}
		p.to(m)
		return false
	})
}

func (p *parser) traitDefRest() bool {
	if !p.id() {
		return false
	}
	p.opt(p.typeParamClause)
	p.opt(p.defTmpl)
	return true
}

func (p *parser) classDefRest() bool {
	if !p.id() {
		return false
	}
	p.opt(p.typeParamClause)
	p.opt(p.ctorPrelude)
	p.rep0(p.ctorArgClause)
	p.opt(p.defTmpl)
	return true
}

func (p *parser) objDefRest() bool {
	if !p.id() {
		return false
	}
	p.opt(p.defTmpl)
	return true
}

// constructor annotations and an access modifier may sit between the class
// name and its parameter lists
func (p *parser) ctorPrelude() bool {
	m := p.pos
	if !p.notNewline() {
		return false
	}
	if p.annot() {
		p.rep0(p.annot)
		p.opt(p.accessMod)
		return true
	}
	if p.accessMod() {
		return true
	}
	p.to(m)
	return false
}

// ClassArgClause = OneNewlineMax '(' 'implicit'? (ClassArg (',' ClassArg)*)? ')'
func (p *parser) ctorArgClause() bool {
	m := p.pos
	if !p.oneNLMax() {
		return false
	}
	if !p.tok("(") {
		p.to(m)
		return false
	}
	p.opt(func() bool { return p.kw("implicit") })
	p.opt(func() bool { return p.repSep(p.ctorArg, p.comma) })
	if !p.tok(")") {
		p.to(m)
		return false
	}
	return true
}

// ClassArg = Annotation* (Modifier* ('val' | 'var'))? Id ':' ParamType
//            ('=' Expr)?
func (p *parser) ctorArg() bool {
	m := p.pos
	p.rep0(p.annot)
	p.opt(func() bool {
		mm := p.pos
		p.rep0(p.mod)
		if p.kw("val") || p.kw("var") {
			return true
		}
		p.to(mm)
		return false
	})
	if !p.id() {
		p.to(m)
		return false
	}
	if !p.colon() || !p.paramType() {
		p.to(m)
		return false
	}
	p.opt(func() bool {
		mm := p.pos
		if p.opTok("=") && p.expr(false) {
			return true
		}
		p.to(mm)
		return false
	})
	return true
}

// DefTmpl = ('extends' | '<:') AnonTmpl | TmplBody
func (p *parser) defTmpl() bool {
	m := p.pos
	if p.kw("extends") || p.opTok("<:") {
		if p.anonTmpl() {
			return true
		}
		p.to(m)
		return false
	}
	return p.tmplBody()
}

// AnonTmpl = EarlyDefs ('with' Constr)+ TmplBody? | Constr ('with' Constr)*
//            TmplBody? | TmplBody
func (p *parser) anonTmpl() bool {
	if p.tmplBody() {
		p.opt(func() bool {
			if !p.rep1(func() bool {
				m := p.pos
				if p.kw("with") && p.constr() {
					return true
				}
				p.to(m)
				return false
			}) {
				return false
			}
			p.opt(p.tmplBody)
			return true
		})
		return true
	}
	return p.namedTmpl()
}

func (p *parser) namedTmpl() bool {
	if !p.repSep(p.constr, func() bool { return p.kw("with") }) {
		return false
	}
	p.opt(p.tmplBody)
	return true
}

// Constr = AnnotType ArgumentExprs*
func (p *parser) constr() bool {
	if !p.annotType() {
		return false
	}
	p.rep0(func() bool {
		m := p.pos
		if p.notNewline() && p.parenArgList() {
			return true
		}
		p.to(m)
		return false
	})
	return true
}

// TmplBody = '{' Self? (TmplStat (Semis TmplStat)*)? '}'
func (p *parser) tmplBody() bool {
	return p.rule("TmplBody", func() bool {
		m := p.pos
		if !p.tok("{") {
			return false
		}
		p.opt(p.selfType)
		p.optSemis()
		p.opt(func() bool { return p.repSep(p.tmplStat, p.semis) })
		p.optSemis()
		if !p.tok("}") {
			p.to(m)
			return false
		}
		return true
	})
}

// Self = ('this' | Id | '_') (':' InfixType)? '=>'
func (p *parser) selfType() bool {
	m := p.pos
	if !p.kw("this") && !p.id() && !p.kw("_") {
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
	if !p.rightArrow() {
		p.to(m)
		return false
	}
	return true
}

// TmplStat = Import | Prelude (Def | TmplDef) | Expr
func (p *parser) tmplStat() bool {
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

// Import = 'import' ImportExpr (',' ImportExpr)*
func (p *parser) importStmt() bool {
	return p.rule("Import", func() bool {
		m := p.pos
		if !p.kw("import") {
			return false
		}
		if !p.repSep(p.importExpr, p.comma) {
			p.to(m)
			return false
		}
		return true
	})
}

// ImportExpr = StableId ('.' ('_' | ImportSelectors))?
func (p *parser) importExpr() bool {
	if !p.stableId() {
		return false
	}
	p.opt(func() bool {
		m := p.pos
		if !p.tok(".") {
			return false
		}
		if p.kw("_") || p.importSelectors() {
			return true
		}
		p.to(m)
		return false
	})
	return true
}

// ImportSelectors = '{' ImportSelector (',' ImportSelector)* '}'
func (p *parser) importSelectors() bool {
	m := p.pos
	if !p.tok("{") {
		return false
	}
	if !p.repSep(p.importSelector, p.comma) {
		p.to(m)
		return false
	}
	if !p.tok("}") {
		p.to(m)
		return false
	}
	return true
}

// ImportSelector = '_' | Id ('=>' (Id | '_'))?
func (p *parser) importSelector() bool {
	if p.kw("_") {
		return true
	}
	if !p.id() {
		return false
	}
	p.opt(func() bool {
		m := p.pos
		if p.rightArrow() && (p.id() || p.kw("_")) {
			return true
		}
		p.to(m)
		return false
	})
	return true
}

// CompilationUnit = optSemis (TopPackageSeq (Semis TopStatSeq)? | TopStatSeq)?
//                   optSemis EOI
func (p *parser) compilationUnit() bool {
	return p.rule("CompilationUnit", func() bool {
		p.optSemis()
		m := p.pos
		if p.topPackageSeq() {
			p.opt(func() bool {
				mm := p.pos
				if p.semis() && p.topStatSeq() {
					return true
				}
				p.to(mm)
				return false
			})
		} else {
			p.to(m)
			p.opt(p.topStatSeq)
		}
		p.optSemis()
		return p.eoi()
	})
}

// TopPackageSeq = FlatPackageStat (Semis FlatPackageStat)*
func (p *parser) topPackageSeq() bool {
	return p.repSep(p.flatPackageStat, p.semis)
}

// FlatPackageStat = 'package' QualId !'{' — a braced package is a Packaging
// and belongs to the statement sequence instead.
func (p *parser) flatPackageStat() bool {
	m := p.pos
	if !p.kw("package") {
		return false
	}
	if !p.qualId() {
		p.to(m)
		return false
	}
	if !p.not(func() bool { return p.tok("{") }) {
		p.to(m)
		return false
	}
	return true
}

func (p *parser) topStatSeq() bool {
	return p.rule("TopStatSeq", func() bool { return p.repSep(p.topStat, p.semis) })
}

// TopStat = Packaging | PackageObject | Import | Prelude (TmplDef | Def)
func (p *parser) topStat() bool {
	if p.packaging() || p.packageObject() || p.importStmt() {
		return true
	}
	m := p.pos
	p.prelude()
	if p.tmplDef() || p.defStmt() {
		return true
	}
	p.to(m)
	return false
}

// Packaging = 'package' QualId '{' TopStatSeq? '}'
func (p *parser) packaging() bool {
	return p.rule("Packaging", func() bool {
		m := p.pos
		if !p.kw("package") {
			return false
		}
		if !p.qualId() || !p.tok("{") {
			p.to(m)
			return false
		}
		p.optSemis()
		p.opt(p.topStatSeq)
		p.optSemis()
		if !p.tok("}") {
			p.to(m)
			return false
		}
		return true
	})
}

// PackageObject = 'package' 'object' ObjectDef
func (p *parser) packageObject() bool {
	m := p.pos
	if !p.kw("package") {
		return false
	}
	if !p.kw("object") || !p.objDefRest() {
		p.to(m)
		return false
	}
	return true
}
