package token

// Kind represents the lexical category of a source token.
type Kind uint8

const (
	// Invalid indicates text that matches no lexical category.
	Invalid Kind = iota
	// Keyword is a reserved word of the language.
	Keyword
	// Symbol is one of the single-character punctuation or operator tokens.
	Symbol
	// IntConst is a decimal integer constant in 0..32767.
	IntConst
	// StringConst is a double-quoted string constant.
	StringConst
	// Identifier is a user-defined name.
	Identifier
)

// String returns the markup label used for the kind in emitted output.
func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case Symbol:
		return "symbol"
	case IntConst:
		return "integerConstant"
	case StringConst:
		return "stringConstant"
	case Identifier:
		return "identifier"
	}
	return "invalid"
}
