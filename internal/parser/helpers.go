package parser

import (
	"fmt"
	"slices"

	"jackal/internal/token"
)

// The typed add helpers validate the current token against an accepted set
// and pend it as a terminal leaf. step=true advances first; step=false
// examines the token already current (the form probe matchers use, so a
// failed probe consumes nothing).

func (p *Parser) addKeyword(step bool, construct string, words ...token.Word) error {
	if step {
		if err := p.advance(construct); err != nil {
			return err
		}
	}
	cur := p.tz.Current()
	if w, err := cur.Keyword(); err == nil && slices.Contains(words, w) {
		p.b.Pend("keyword", cur.Text, cur.Text)
		return nil
	}
	expected := make([]string, len(words))
	for i, w := range words {
		expected[i] = fmt.Sprintf("'%s'", w)
	}
	return p.mismatch(construct, expected)
}

func (p *Parser) addSymbol(step bool, construct string, syms ...string) error {
	if step {
		if err := p.advance(construct); err != nil {
			return err
		}
	}
	cur := p.tz.Current()
	if cur.Kind == token.Symbol && slices.Contains(syms, cur.Text) {
		p.pendSymbol(cur)
		return nil
	}
	expected := make([]string, len(syms))
	for i, s := range syms {
		expected[i] = fmt.Sprintf("'%s'", s)
	}
	return p.mismatch(construct, expected)
}

func (p *Parser) addIdentifier(step bool, construct, what string) error {
	if step {
		if err := p.advance(construct); err != nil {
			return err
		}
	}
	cur := p.tz.Current()
	if name, err := cur.Identifier(); err == nil {
		p.b.Pend("identifier", name, cur.Text)
		return nil
	}
	return p.mismatch(construct, []string{what})
}

// addType matches 'int' | 'char' | 'boolean' | className, plus 'void' for
// subroutine return types.
func (p *Parser) addType(step bool, construct string, void bool) error {
	if step {
		if err := p.advance(construct); err != nil {
			return err
		}
	}
	words := []token.Word{token.KwInt, token.KwChar, token.KwBoolean}
	if void {
		words = append(words, token.KwVoid)
	}
	cur := p.tz.Current()
	if w, err := cur.Keyword(); err == nil && slices.Contains(words, w) {
		p.b.Pend("keyword", cur.Text, cur.Text)
		return nil
	}
	if name, err := cur.Identifier(); err == nil {
		p.b.Pend("identifier", name, cur.Text)
		return nil
	}
	expected := make([]string, len(words), len(words)+1)
	for i, w := range words {
		expected[i] = fmt.Sprintf("'%s'", w)
	}
	expected = append(expected, "class name")
	return p.mismatch(construct, expected)
}

func (p *Parser) pendSymbol(cur token.Token) {
	p.b.Pend("symbol", token.Escape(cur.Text), cur.Text)
}

func (p *Parser) mismatch(construct string, expected []string) error {
	cur := p.tz.Current()
	return &Mismatch{
		Construct: construct,
		Expected:  expected,
		Found:     fmt.Sprintf("%s %q", cur.Kind, cur.Text),
		Line:      cur.Line,
		Committed: true,
	}
}

// isTypeStart reports whether cur can begin a type (used to detect an
// empty parameterList without consuming the closing parenthesis).
func (p *Parser) isTypeStart(cur token.Token) bool {
	if cur.Kind == token.Identifier {
		return true
	}
	w, err := cur.Keyword()
	if err != nil {
		return false
	}
	return w == token.KwInt || w == token.KwChar || w == token.KwBoolean
}
