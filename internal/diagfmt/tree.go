package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"jackal/internal/ast"
)

// indentWidth is the number of spaces per nesting level.
const indentWidth = 2

// WriteTree emits the parse tree in the analyzer's markup form: every
// non-terminal bracketed by start/end markers carrying its grammar-element
// name, every terminal on one line carrying its classification label and
// display value, indentation tracking nesting depth.
func WriteTree(w io.Writer, root *ast.Node) error {
	return writeNode(w, root, 0)
}

func writeNode(w io.Writer, n *ast.Node, depth int) error {
	pad := strings.Repeat(" ", depth*indentWidth)
	if _, err := fmt.Fprintf(w, "%s<%s>\n", pad, n.Name); err != nil {
		return err
	}
	inner := strings.Repeat(" ", (depth+1)*indentWidth)
	for _, c := range n.Children {
		switch c := c.(type) {
		case *ast.Node:
			if err := writeNode(w, c, depth+1); err != nil {
				return err
			}
		case ast.Leaf:
			if _, err := fmt.Fprintf(w, "%s<%s> %s </%s>\n", inner, c.Label, c.Value, c.Label); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%s</%s>\n", pad, n.Name)
	return err
}
