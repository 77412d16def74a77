package token

import "regexp"

// The grammar's symbol set is closed: exactly these nineteen characters.
const symbolChars = "{}()[].,;+-*/&|<>=~"

var (
	intPat    = regexp.MustCompile(`^[0-9]+$`)
	stringPat = regexp.MustCompile(`^"[^"\n]*"$`)
	identPat  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// IsSymbol reports whether text is a single-character symbol token.
func IsSymbol(text string) bool {
	if len(text) != 1 {
		return false
	}
	for i := 0; i < len(symbolChars); i++ {
		if symbolChars[i] == text[0] {
			return true
		}
	}
	return false
}

// Classify maps raw lexeme text to its Kind. It is a pure function of the
// text; alternatives are tried in priority order: keyword, symbol, integer
// constant, string constant, identifier. Text matching none of them is
// Invalid.
func Classify(text string) Kind {
	if _, ok := LookupKeyword(text); ok {
		return Keyword
	}
	if IsSymbol(text) {
		return Symbol
	}
	if intPat.MatchString(text) {
		return IntConst
	}
	if stringPat.MatchString(text) {
		return StringConst
	}
	if identPat.MatchString(text) {
		return Identifier
	}
	return Invalid
}

// Cache memoizes Classify per raw text. Classification depends only on the
// lexeme text, so repeated lexemes reuse one result. A Cache belongs to a
// single tokenizer and is not safe for concurrent use.
type Cache struct {
	tokens map[string]Token
}

// NewCache creates an empty classification cache.
func NewCache() *Cache {
	return &Cache{tokens: make(map[string]Token)}
}

// Get returns the classified token for text, classifying on first sight.
func (c *Cache) Get(text string) Token {
	if tok, ok := c.tokens[text]; ok {
		return tok
	}
	tok := Token{Text: text, Kind: Classify(text)}
	c.tokens[text] = tok
	return tok
}

// Len returns the number of distinct lexemes classified so far.
func (c *Cache) Len() int {
	return len(c.tokens)
}
