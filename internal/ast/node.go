package ast

// Child is either a *Node (non-terminal) or a Leaf (terminal).
type Child interface {
	child()
}

// Node is a non-terminal parse-tree node: a grammar-element name plus an
// ordered sequence of children.
type Node struct {
	Name     string
	Children []Child
}

func (*Node) child() {}

// Leaf is a terminal: a classification label, the display value, and the
// raw source lexeme. The concatenation of all leaves' Text fields, in tree
// order, reproduces the exact token sequence the subtree consumed.
type Leaf struct {
	Label string
	Value string
	Text  string
}

func (Leaf) child() {}

// Terminals returns every leaf of the tree in emission order.
func Terminals(root *Node) []Leaf {
	var out []Leaf
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			switch c := c.(type) {
			case *Node:
				walk(c)
			case Leaf:
				out = append(out, c)
			}
		}
	}
	walk(root)
	return out
}
