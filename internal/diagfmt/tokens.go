package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"jackal/internal/token"
)

// DisplayValue returns the markup label and display value for a token:
// keyword and identifier text verbatim, symbols escaped, integer constants
// range-checked, string constants with quotes stripped.
func DisplayValue(t token.Token) (label, value string, err error) {
	label = t.Kind.String()
	switch t.Kind {
	case token.Keyword:
		value = t.Text
	case token.Symbol:
		value, err = t.Symbol()
	case token.IntConst:
		var v int16
		v, err = t.IntVal()
		value = strconv.Itoa(int(v))
	case token.StringConst:
		value, err = t.StringVal()
	case token.Identifier:
		value, err = t.Identifier()
	default:
		err = fmt.Errorf("cannot display %s token %q", t.Kind, t.Text)
	}
	return label, value, err
}

// WriteTokens emits the token stream in the analyzer's markup form:
//
//	<tokens>
//	<keyword> class </keyword>
//	...
//	</tokens>
func WriteTokens(w io.Writer, tokens []token.Token) error {
	if _, err := fmt.Fprintln(w, "<tokens>"); err != nil {
		return err
	}
	for _, t := range tokens {
		label, value, err := DisplayValue(t)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<%s> %s </%s>\n", label, value, label); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</tokens>")
	return err
}
