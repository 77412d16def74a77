package lexer

import (
	"errors"
	"fmt"
	"strings"

	"jackal/internal/diag"
	"jackal/internal/source"
	"jackal/internal/token"
)

// ErrEndOfInput is returned by Advance once no tokens remain. The condition
// is permanent: every later Advance fails the same way.
var ErrEndOfInput = errors.New("no more tokens")

// Error is a fatal lexical failure (unclassifiable text, unterminated
// string or block comment). It is also delivered to the Reporter.
type Error struct {
	Code diag.Code
	Line uint32
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// lexeme is split-but-not-yet-classified token text.
type lexeme struct {
	text string
	line uint32
}

// Tokenizer turns one source file into an ordered token stream with
// one-token lookahead. After a successful Advance, Current holds the token
// to act on and PeekText holds the following raw lexeme ("" means the
// current token is the last one).
type Tokenizer struct {
	file  *source.File
	cl    *cleaner
	cache *token.Cache
	queue []lexeme
	rep   diag.Reporter

	cur     token.Token
	look    lexeme
	started bool
	done    bool
}

// New creates a Tokenizer over file.
func New(file *source.File, opts Options) *Tokenizer {
	return &Tokenizer{
		file:  file,
		cl:    newCleaner(file.Content),
		cache: token.NewCache(),
		rep:   opts.reporter(),
	}
}

// HasMoreTokens reports whether Advance can yield another token.
func (tz *Tokenizer) HasMoreTokens() bool {
	return !tz.done
}

// Advance makes the next lexeme the current token and repopulates the
// lookahead. Fails with ErrEndOfInput when no tokens remain.
func (tz *Tokenizer) Advance() error {
	if tz.done {
		return ErrEndOfInput
	}

	var cur lexeme
	if !tz.started {
		if err := tz.fill(1); err != nil {
			return err
		}
		if len(tz.queue) == 0 {
			tz.done = true
			return ErrEndOfInput
		}
		cur = tz.pop()
		tz.started = true
	} else {
		cur = tz.look
	}

	tok := tz.cache.Get(cur.text)
	tok.Line = cur.line
	if tok.Kind == token.Invalid {
		return tz.fail(diag.LexUnknownToken, cur.line, fmt.Sprintf("unrecognized token %q", cur.text))
	}
	tz.cur = tok

	if err := tz.fill(1); err != nil {
		return err
	}
	if len(tz.queue) == 0 {
		tz.look = lexeme{}
		tz.done = true
	} else {
		tz.look = tz.pop()
	}
	return nil
}

// Current returns the token made current by the last successful Advance.
func (tz *Tokenizer) Current() token.Token {
	return tz.cur
}

// PeekText returns the raw text of the token one past current, without
// consuming anything. Empty string means end of input.
func (tz *Tokenizer) PeekText() string {
	return tz.look.text
}

// Path returns the path of the file being tokenized.
func (tz *Tokenizer) Path() string {
	return tz.file.Path
}

func (tz *Tokenizer) pop() lexeme {
	lx := tz.queue[0]
	tz.queue = tz.queue[1:]
	return lx
}

// fill pulls cleaned lines until the queue holds at least n lexemes or the
// input runs dry.
func (tz *Tokenizer) fill(n int) error {
	for len(tz.queue) < n {
		cl, ok, err := tz.cl.nextClean()
		if err != nil {
			var unterm *errUnterminated
			if errors.As(err, &unterm) {
				return tz.fail(diag.LexUnterminatedComment, unterm.Line, "unterminated block comment")
			}
			return err
		}
		if !ok {
			return nil
		}
		lexs, err := tz.splitLine(cl)
		if err != nil {
			return err
		}
		tz.queue = append(tz.queue, lexs...)
	}
	return nil
}

// splitLine applies the composite lexeme pattern greedily left-to-right and
// rejects any non-whitespace text the pattern skipped over: the grammar's
// character set is closed, so a gap is malformed input.
func (tz *Tokenizer) splitLine(cl cleanLine) ([]lexeme, error) {
	matches := lexemePat.FindAllStringIndex(cl.Text, -1)
	out := make([]lexeme, 0, len(matches))
	prev := 0
	for _, m := range matches {
		if gap := strings.TrimSpace(cl.Text[prev:m[0]]); gap != "" {
			return nil, tz.gapError(gap, cl.Line)
		}
		out = append(out, lexeme{text: cl.Text[m[0]:m[1]], line: cl.Line})
		prev = m[1]
	}
	if gap := strings.TrimSpace(cl.Text[prev:]); gap != "" {
		return nil, tz.gapError(gap, cl.Line)
	}
	return out, nil
}

func (tz *Tokenizer) gapError(gap string, line uint32) error {
	if strings.HasPrefix(gap, `"`) {
		return tz.fail(diag.LexUnterminatedString, line, fmt.Sprintf("unterminated string constant %s", gap))
	}
	return tz.fail(diag.LexUnknownToken, line, fmt.Sprintf("unrecognized token %q", gap))
}

// fail reports a fatal lexical error and exhausts the stream.
func (tz *Tokenizer) fail(code diag.Code, line uint32, msg string) error {
	tz.done = true
	tz.rep.Report(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Path:     tz.file.Path,
		Line:     line,
		Message:  msg,
	})
	return &Error{Code: code, Line: line, Msg: msg}
}
