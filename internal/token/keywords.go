package token

// Word identifies one of the reserved keywords.
type Word uint8

const (
	// KwNone is the zero Word; no keyword.
	KwNone Word = iota
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwConstructor represents the 'constructor' keyword.
	KwConstructor // constructor
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwMethod represents the 'method' keyword.
	KwMethod // method
	// KwField represents the 'field' keyword.
	KwField // field
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwInt represents the 'int' keyword.
	KwInt // int
	// KwChar represents the 'char' keyword.
	KwChar // char
	// KwBoolean represents the 'boolean' keyword.
	KwBoolean // boolean
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwReturn represents the 'return' keyword.
	KwReturn // return
)

var keywords = map[string]Word{
	"class":       KwClass,
	"constructor": KwConstructor,
	"function":    KwFunction,
	"method":      KwMethod,
	"field":       KwField,
	"static":      KwStatic,
	"var":         KwVar,
	"int":         KwInt,
	"char":        KwChar,
	"boolean":     KwBoolean,
	"void":        KwVoid,
	"true":        KwTrue,
	"false":       KwFalse,
	"null":        KwNull,
	"this":        KwThis,
	"let":         KwLet,
	"do":          KwDo,
	"if":          KwIf,
	"else":        KwElse,
	"while":       KwWhile,
	"return":      KwReturn,
}

var keywordNames = func() map[Word]string {
	names := make(map[Word]string, len(keywords))
	for text, w := range keywords {
		names[w] = text
	}
	return names
}()

// LookupKeyword returns the Word for an identifier-shaped text and whether
// it is a keyword. Keywords are case-sensitive; only lowercase forms match.
func LookupKeyword(text string) (Word, bool) {
	w, ok := keywords[text]
	return w, ok
}

// String returns the source spelling of the keyword.
func (w Word) String() string {
	if name, ok := keywordNames[w]; ok {
		return name
	}
	return "none"
}
