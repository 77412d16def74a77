package parser

import "jackal/internal/token"

// compileClass parses: 'class' className '{' classVarDec* subroutineDec* '}'
// Entered with 'class' current.
func (p *Parser) compileClass() error {
	if err := p.addKeyword(false, "class", token.KwClass); err != nil {
		return err
	}
	if err := p.addIdentifier(true, "class", "class name"); err != nil {
		return err
	}
	if err := p.addSymbol(true, "class", "{"); err != nil {
		return err
	}
	p.b.Open("class")

	// Arm the first probe. Each iteration probes the already-current token,
	// so the token that ends a repetition stays current for what follows.
	if err := p.advance("class"); err != nil {
		return err
	}
	for {
		err := p.compileClassVarDec()
		if isStop(err) {
			break
		}
		if err != nil {
			return err
		}
		if err := p.advance("class"); err != nil {
			return err
		}
	}
	for {
		err := p.compileSubroutineDec()
		if isStop(err) {
			break
		}
		if err != nil {
			return err
		}
		if err := p.advance("class"); err != nil {
			return err
		}
	}

	if err := p.addSymbol(false, "class", "}"); err != nil {
		return err
	}
	p.b.Close()
	return nil
}

// compileClassVarDec parses: ('static'|'field') type varName (',' varName)* ';'
// Probe production: a mismatch on the leading keyword is the stop signal.
func (p *Parser) compileClassVarDec() error {
	if err := p.addKeyword(false, "classVarDec", token.KwStatic, token.KwField); err != nil {
		return asStop(err)
	}
	if err := p.addType(true, "classVarDec", false); err != nil {
		return err
	}
	if err := p.addIdentifier(true, "classVarDec", "variable name"); err != nil {
		return err
	}
	for {
		if err := p.addSymbol(true, "classVarDec", ",", ";"); err != nil {
			return err
		}
		if p.tz.Current().Is(";") {
			break
		}
		if err := p.addIdentifier(true, "classVarDec", "variable name"); err != nil {
			return err
		}
	}
	p.b.Open("classVarDec")
	p.b.Close()
	return nil
}

// compileSubroutineDec parses:
//
//	('constructor'|'function'|'method') ('void'|type) subroutineName
//	'(' parameterList ')' subroutineBody
//
// Probe production.
func (p *Parser) compileSubroutineDec() error {
	if err := p.addKeyword(false, "subroutineDec",
		token.KwConstructor, token.KwFunction, token.KwMethod); err != nil {
		return asStop(err)
	}
	if err := p.addType(true, "subroutineDec", true); err != nil {
		return err
	}
	if err := p.addIdentifier(true, "subroutineDec", "subroutine name"); err != nil {
		return err
	}
	if err := p.addSymbol(true, "subroutineDec", "("); err != nil {
		return err
	}
	p.b.Open("subroutineDec")

	if err := p.advance("subroutineDec"); err != nil {
		return err
	}
	if err := p.compileParameterList(); err != nil {
		return err
	}
	// The ')' sits between two non-terminals, so it is drained explicitly
	// before subroutineBody opens its own wrapper.
	if err := p.addSymbol(false, "subroutineDec", ")"); err != nil {
		return err
	}
	p.b.Drain()

	if err := p.advance("subroutineDec"); err != nil {
		return err
	}
	if err := p.compileSubroutineBody(); err != nil {
		return err
	}
	p.b.Close()
	return nil
}

// compileParameterList parses: ((type varName) (',' type varName)*)?
// Entered with either the first type token or the closing ')' current;
// returns with the token after the last parameter current (the ')' is the
// caller's to consume).
func (p *Parser) compileParameterList() error {
	p.b.Open("parameterList")
	if !p.isTypeStart(p.tz.Current()) {
		p.b.Close()
		return nil
	}
	if err := p.addType(false, "parameterList", false); err != nil {
		return err
	}
	if err := p.addIdentifier(true, "parameterList", "parameter name"); err != nil {
		return err
	}
	for {
		if err := p.advance("parameterList"); err != nil {
			return err
		}
		if !p.tz.Current().Is(",") {
			break
		}
		p.pendSymbol(p.tz.Current())
		if err := p.addType(true, "parameterList", false); err != nil {
			return err
		}
		if err := p.addIdentifier(true, "parameterList", "parameter name"); err != nil {
			return err
		}
	}
	p.b.Close()
	return nil
}

// compileSubroutineBody parses: '{' varDec* statements '}'
// Entered with '{' current.
func (p *Parser) compileSubroutineBody() error {
	if err := p.addSymbol(false, "subroutineBody", "{"); err != nil {
		return err
	}
	p.b.Open("subroutineBody")

	if err := p.advance("subroutineBody"); err != nil {
		return err
	}
	for {
		err := p.compileVarDec()
		if isStop(err) {
			break
		}
		if err != nil {
			return err
		}
		if err := p.advance("subroutineBody"); err != nil {
			return err
		}
	}

	if err := p.compileStatements(); err != nil {
		return err
	}
	if err := p.addSymbol(false, "subroutineBody", "}"); err != nil {
		return err
	}
	p.b.Close()
	return nil
}

// compileVarDec parses: 'var' type varName (',' varName)* ';'
// Probe production.
func (p *Parser) compileVarDec() error {
	if err := p.addKeyword(false, "varDec", token.KwVar); err != nil {
		return asStop(err)
	}
	if err := p.addType(true, "varDec", false); err != nil {
		return err
	}
	if err := p.addIdentifier(true, "varDec", "variable name"); err != nil {
		return err
	}
	for {
		if err := p.addSymbol(true, "varDec", ",", ";"); err != nil {
			return err
		}
		if p.tz.Current().Is(";") {
			break
		}
		if err := p.addIdentifier(true, "varDec", "variable name"); err != nil {
			return err
		}
	}
	p.b.Open("varDec")
	p.b.Close()
	return nil
}
