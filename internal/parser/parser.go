package parser

import (
	"errors"

	"jackal/internal/ast"
	"jackal/internal/diag"
	"jackal/internal/lexer"
	"jackal/internal/token"
)

// Options configures a Parser.
type Options struct {
	// Reporter receives the diagnostic for a failed parse. Defaults to
	// NopReporter.
	Reporter diag.Reporter
}

// Parser is a recursive-descent parser over one tokenized file, one
// compileXxx routine per grammar production.
//
// The contract between the routines: each compileXxx is entered with the
// first token of its construct already current (the caller advanced past
// the preceding token) and consumes exactly the tokens of that construct.
// The exceptions are spelled out where they occur: repetition drivers arm
// the probe token themselves, and the expression family returns with the
// token following the construct current, because an expression's end is
// only visible one token late.
type Parser struct {
	tz  *lexer.Tokenizer
	b   *ast.Builder
	rep diag.Reporter
}

// New creates a Parser over tz.
func New(tz *lexer.Tokenizer, opts Options) *Parser {
	rep := opts.Reporter
	if rep == nil {
		rep = diag.NopReporter{}
	}
	return &Parser{
		tz:  tz,
		b:   ast.NewBuilder(),
		rep: rep,
	}
}

// CompileClass parses one complete class and returns the parse-tree root.
// On failure the diagnostic is delivered to the reporter and no tree is
// returned.
func (p *Parser) CompileClass() (*ast.Node, error) {
	if err := p.advance("class"); err != nil {
		p.reportFailure(err)
		return nil, err
	}
	if err := p.compileClass(); err != nil {
		p.reportFailure(err)
		return nil, err
	}
	return p.b.Root(), nil
}

// advance makes the next token current, converting end of input into a
// committed mismatch attributed to the active construct.
func (p *Parser) advance(construct string) error {
	if err := p.tz.Advance(); err != nil {
		if errors.Is(err, lexer.ErrEndOfInput) {
			return &Mismatch{Construct: construct, Found: "end of input", Line: p.tz.Current().Line, EOF: true, Committed: true}
		}
		return err
	}
	return nil
}

// reportFailure converts the aborting error into a diagnostic. Lexical
// failures were already reported by the tokenizer and pass through.
func (p *Parser) reportFailure(err error) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return
	}

	d := diag.Diagnostic{
		Severity: diag.SevError,
		Path:     p.tz.Path(),
		Line:     p.tz.Current().Line,
		Message:  err.Error(),
	}

	var m *Mismatch
	var rangeErr *token.RangeError
	var kindErr *token.KindError
	switch {
	case errors.As(err, &m):
		d.Code = diag.SynExpectedToken
		d.Line = m.Line
		if m.EOF {
			d.Code = diag.SynUnexpectedEOF
		}
	case errors.As(err, &rangeErr):
		d.Code = diag.LexIntOutOfRange
	case errors.As(err, &kindErr):
		d.Code = diag.LexWrongKind
	default:
		d.Code = diag.UnknownCode
	}
	p.rep.Report(d)
}
