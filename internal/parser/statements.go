package parser

import "jackal/internal/token"

// compileStatements parses statement* and always emits the wrapper, even
// when empty. Entered with the probe token already current; returns with
// the first non-statement token still current for the caller.
func (p *Parser) compileStatements() error {
	p.b.Open("statements")
loop:
	for {
		w, err := p.tz.Current().Keyword()
		if err != nil {
			break
		}
		var serr error
		switch w {
		case token.KwLet:
			serr = p.compileLet()
		case token.KwIf:
			serr = p.compileIf()
		case token.KwWhile:
			serr = p.compileWhile()
		case token.KwDo:
			serr = p.compileDo()
		case token.KwReturn:
			serr = p.compileReturn()
		default:
			break loop
		}
		if serr != nil {
			return serr
		}
		if err := p.advance("statements"); err != nil {
			return err
		}
	}
	p.b.Close()
	return nil
}

// compileLet parses: 'let' varName ('[' expression ']')? '=' expression ';'
func (p *Parser) compileLet() error {
	if err := p.addKeyword(false, "letStatement", token.KwLet); err != nil {
		return err
	}
	if err := p.addIdentifier(true, "letStatement", "variable name"); err != nil {
		return err
	}
	p.b.Open("letStatement")

	if err := p.advance("letStatement"); err != nil {
		return err
	}
	if p.tz.Current().Is("[") {
		p.pendSymbol(p.tz.Current())
		p.b.Drain()
		if err := p.advance("letStatement"); err != nil {
			return err
		}
		if err := p.compileExpression(); err != nil {
			return err
		}
		if err := p.addSymbol(false, "letStatement", "]"); err != nil {
			return err
		}
		p.b.Drain()
		if err := p.advance("letStatement"); err != nil {
			return err
		}
	}

	if err := p.addSymbol(false, "letStatement", "="); err != nil {
		return err
	}
	p.b.Drain()
	if err := p.advance("letStatement"); err != nil {
		return err
	}
	if err := p.compileExpression(); err != nil {
		return err
	}
	if err := p.addSymbol(false, "letStatement", ";"); err != nil {
		return err
	}
	p.b.Close()
	return nil
}

// compileIf parses:
//
//	'if' '(' expression ')' '{' statements '}' ('else' '{' statements '}')?
//
// The else clause is picked up by lookahead, so a '}'-terminated if leaves
// nothing of the next statement consumed.
func (p *Parser) compileIf() error {
	if err := p.addKeyword(false, "ifStatement", token.KwIf); err != nil {
		return err
	}
	if err := p.addSymbol(true, "ifStatement", "("); err != nil {
		return err
	}
	p.b.Open("ifStatement")

	if err := p.advance("ifStatement"); err != nil {
		return err
	}
	if err := p.compileExpression(); err != nil {
		return err
	}
	if err := p.addSymbol(false, "ifStatement", ")"); err != nil {
		return err
	}
	if err := p.addSymbol(true, "ifStatement", "{"); err != nil {
		return err
	}
	p.b.Drain()
	if err := p.advance("ifStatement"); err != nil {
		return err
	}
	if err := p.compileStatements(); err != nil {
		return err
	}
	if err := p.addSymbol(false, "ifStatement", "}"); err != nil {
		return err
	}

	if p.tz.PeekText() == "else" {
		if err := p.addKeyword(true, "ifStatement", token.KwElse); err != nil {
			return err
		}
		if err := p.addSymbol(true, "ifStatement", "{"); err != nil {
			return err
		}
		p.b.Drain()
		if err := p.advance("ifStatement"); err != nil {
			return err
		}
		if err := p.compileStatements(); err != nil {
			return err
		}
		if err := p.addSymbol(false, "ifStatement", "}"); err != nil {
			return err
		}
	}
	p.b.Close()
	return nil
}

// compileWhile parses: 'while' '(' expression ')' '{' statements '}'
func (p *Parser) compileWhile() error {
	if err := p.addKeyword(false, "whileStatement", token.KwWhile); err != nil {
		return err
	}
	if err := p.addSymbol(true, "whileStatement", "("); err != nil {
		return err
	}
	p.b.Open("whileStatement")

	if err := p.advance("whileStatement"); err != nil {
		return err
	}
	if err := p.compileExpression(); err != nil {
		return err
	}
	if err := p.addSymbol(false, "whileStatement", ")"); err != nil {
		return err
	}
	if err := p.addSymbol(true, "whileStatement", "{"); err != nil {
		return err
	}
	p.b.Drain()
	if err := p.advance("whileStatement"); err != nil {
		return err
	}
	if err := p.compileStatements(); err != nil {
		return err
	}
	if err := p.addSymbol(false, "whileStatement", "}"); err != nil {
		return err
	}
	p.b.Close()
	return nil
}

// compileDo parses: 'do' subroutineCall ';'
func (p *Parser) compileDo() error {
	if err := p.addKeyword(false, "doStatement", token.KwDo); err != nil {
		return err
	}
	if err := p.addIdentifier(true, "doStatement", "subroutine name"); err != nil {
		return err
	}
	p.b.Open("doStatement")
	if err := p.compileSubroutineCall("doStatement"); err != nil {
		return err
	}
	if err := p.addSymbol(true, "doStatement", ";"); err != nil {
		return err
	}
	p.b.Close()
	return nil
}

// compileReturn parses: 'return' expression? ';'
func (p *Parser) compileReturn() error {
	if err := p.addKeyword(false, "returnStatement", token.KwReturn); err != nil {
		return err
	}
	p.b.Open("returnStatement")

	if err := p.advance("returnStatement"); err != nil {
		return err
	}
	if !p.tz.Current().Is(";") {
		if err := p.compileExpression(); err != nil {
			return err
		}
	}
	if err := p.addSymbol(false, "returnStatement", ";"); err != nil {
		return err
	}
	p.b.Close()
	return nil
}
