package parser

import (
	"strconv"
	"strings"

	"jackal/internal/token"
)

// Binary operators of the expression grammar.
const ops = "+-*/&|<>="

func isOp(t token.Token) bool {
	return t.Kind == token.Symbol && strings.Contains(ops, t.Text)
}

// compileExpression parses: term (op term)*
// Entered with the first token of the expression current. Returns with the
// token following the expression current: the end of the (op term)* group
// is only visible once a non-operator token has been read.
func (p *Parser) compileExpression() error {
	p.b.Open("expression")
	if err := p.compileTerm(); err != nil {
		return err
	}
	for {
		if err := p.advance("expression"); err != nil {
			return err
		}
		if !isOp(p.tz.Current()) {
			break
		}
		p.pendSymbol(p.tz.Current())
		p.b.Drain()
		if err := p.advance("expression"); err != nil {
			return err
		}
		if err := p.compileTerm(); err != nil {
			return err
		}
	}
	p.b.Close()
	return nil
}

// compileTerm parses one term. Entered with the term's first token current;
// returns with the term's last token current.
//
// When that first token is an identifier the routine consults the lookahead
// without consuming the identifier: '[' selects the array-index form, '('
// a direct call, '.' a qualified call, anything else a bare variable
// reference. This is the only place the grammar needs lookahead to choose
// an alternative.
func (p *Parser) compileTerm() error {
	cur := p.tz.Current()
	switch {
	case cur.Kind == token.IntConst:
		v, err := cur.IntVal()
		if err != nil {
			return err
		}
		p.b.Pend("integerConstant", strconv.Itoa(int(v)), cur.Text)
		p.b.Open("term")
		p.b.Close()
		return nil

	case cur.Kind == token.StringConst:
		s, err := cur.StringVal()
		if err != nil {
			return err
		}
		p.b.Pend("stringConstant", s, cur.Text)
		p.b.Open("term")
		p.b.Close()
		return nil

	case cur.Kind == token.Keyword:
		if err := p.addKeyword(false, "term",
			token.KwTrue, token.KwFalse, token.KwNull, token.KwThis); err != nil {
			return err
		}
		p.b.Open("term")
		p.b.Close()
		return nil

	case cur.Is("("):
		p.pendSymbol(cur)
		p.b.Open("term")
		if err := p.advance("term"); err != nil {
			return err
		}
		if err := p.compileExpression(); err != nil {
			return err
		}
		if err := p.addSymbol(false, "term", ")"); err != nil {
			return err
		}
		p.b.Close()
		return nil

	case cur.Is("-") || cur.Is("~"):
		p.pendSymbol(cur)
		p.b.Open("term")
		if err := p.advance("term"); err != nil {
			return err
		}
		if err := p.compileTerm(); err != nil {
			return err
		}
		p.b.Close()
		return nil

	case cur.Kind == token.Identifier:
		switch p.tz.PeekText() {
		case "[":
			p.b.Pend("identifier", cur.Text, cur.Text)
			p.b.Open("term")
			if err := p.addSymbol(true, "term", "["); err != nil {
				return err
			}
			p.b.Drain()
			if err := p.advance("term"); err != nil {
				return err
			}
			if err := p.compileExpression(); err != nil {
				return err
			}
			if err := p.addSymbol(false, "term", "]"); err != nil {
				return err
			}
			p.b.Close()
			return nil

		case "(", ".":
			p.b.Pend("identifier", cur.Text, cur.Text)
			p.b.Open("term")
			if err := p.compileSubroutineCall("term"); err != nil {
				return err
			}
			p.b.Close()
			return nil

		default:
			p.b.Pend("identifier", cur.Text, cur.Text)
			p.b.Open("term")
			p.b.Close()
			return nil
		}

	default:
		return p.mismatch("term", []string{
			"integer constant", "string constant", "keyword constant",
			"variable name", "subroutine call", "'('", "unary operator",
		})
	}
}

// compileSubroutineCall parses the remainder of:
//
//	subroutineName '(' expressionList ')'
//	(className|varName) '.' subroutineName '(' expressionList ')'
//
// Entered with the leading identifier current and already pended by the
// caller; returns with the ')' current and pended.
func (p *Parser) compileSubroutineCall(construct string) error {
	if err := p.advance(construct); err != nil {
		return err
	}
	if p.tz.Current().Is(".") {
		p.pendSymbol(p.tz.Current())
		if err := p.addIdentifier(true, construct, "subroutine name"); err != nil {
			return err
		}
		if err := p.advance(construct); err != nil {
			return err
		}
	}
	if err := p.addSymbol(false, construct, "("); err != nil {
		return err
	}
	p.b.Drain()
	if err := p.advance(construct); err != nil {
		return err
	}
	if err := p.compileExpressionList(); err != nil {
		return err
	}
	return p.addSymbol(false, construct, ")")
}

// compileExpressionList parses: (expression (',' expression)*)?
// Entered with either the first expression token or the closing ')'
// current; returns with the ')' current, unconsumed.
func (p *Parser) compileExpressionList() error {
	p.b.Open("expressionList")
	if p.tz.Current().Is(")") {
		p.b.Close()
		return nil
	}
	for {
		if err := p.compileExpression(); err != nil {
			return err
		}
		if !p.tz.Current().Is(",") {
			break
		}
		p.pendSymbol(p.tz.Current())
		p.b.Drain()
		if err := p.advance("expressionList"); err != nil {
			return err
		}
	}
	p.b.Close()
	return nil
}
