package token

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// MaxIntConst is the largest representable integer constant.
const MaxIntConst = 32767

// Token is an immutable lexical unit: the exact source text plus its Kind.
// Line is the 1-based physical line the token's cleaned line started on.
type Token struct {
	Text string
	Kind Kind
	Line uint32
}

// KindError reports an accessor called against the wrong token kind.
type KindError struct {
	Want Kind
	Got  Kind
	Text string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("token %q is %s, not %s", e.Text, e.Got, e.Want)
}

// RangeError reports an integer constant outside 0..32767.
type RangeError struct {
	Text string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("integer constant %s out of range (max %d)", e.Text, MaxIntConst)
}

func (t Token) kindErr(want Kind) error {
	return &KindError{Want: want, Got: t.Kind, Text: t.Text}
}

// Keyword returns the reserved word. Valid only when Kind is Keyword.
func (t Token) Keyword() (Word, error) {
	if t.Kind != Keyword {
		return KwNone, t.kindErr(Keyword)
	}
	w, _ := LookupKeyword(t.Text)
	return w, nil
}

// Symbol returns the symbol character with markup metacharacters escaped.
// Valid only when Kind is Symbol.
func (t Token) Symbol() (string, error) {
	if t.Kind != Symbol {
		return "", t.kindErr(Symbol)
	}
	return Escape(t.Text), nil
}

// Identifier returns the identifier name. Valid only when Kind is Identifier.
func (t Token) Identifier() (string, error) {
	if t.Kind != Identifier {
		return "", t.kindErr(Identifier)
	}
	return t.Text, nil
}

// IntVal returns the parsed integer value, range-checked to 0..32767.
// Valid only when Kind is IntConst.
func (t Token) IntVal() (int16, error) {
	if t.Kind != IntConst {
		return 0, t.kindErr(IntConst)
	}
	v, err := strconv.ParseUint(t.Text, 10, 64)
	if err != nil {
		return 0, &RangeError{Text: t.Text}
	}
	n, err := safecast.Conv[int16](v)
	if err != nil {
		return 0, &RangeError{Text: t.Text}
	}
	return n, nil
}

// StringVal returns the string value with the surrounding quotes stripped.
// Valid only when Kind is StringConst.
func (t Token) StringVal() (string, error) {
	if t.Kind != StringConst {
		return "", t.kindErr(StringConst)
	}
	return t.Text[1 : len(t.Text)-1], nil
}

// Is reports whether the token is the given symbol character.
func (t Token) Is(sym string) bool {
	return t.Kind == Symbol && t.Text == sym
}

// IsWord reports whether the token is the given keyword.
func (t Token) IsWord(w Word) bool {
	return t.Kind == Keyword && t.Text == w.String()
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces the markup metacharacters & < > with entities.
func Escape(s string) string {
	return escaper.Replace(s)
}
