package ast

// Builder assembles a parse tree while a production reads its terminals.
// Terminals first accumulate in a pending buffer; opening a non-terminal
// wrapper drains the buffer into the new node in order. The buffer is
// appendable and lazily drained: a production may pend terminals, recurse
// into a child non-terminal, and drain the remainder afterwards.
type Builder struct {
	root    *Node
	stack   []*Node
	pending []Leaf
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Pend appends a terminal to the pending buffer.
func (b *Builder) Pend(label, value, text string) {
	b.pending = append(b.pending, Leaf{Label: label, Value: value, Text: text})
}

// Open starts a non-terminal node, attaches it to the currently open node
// (or makes it the root), drains the pending buffer into it, and makes it
// the open node.
func (b *Builder) Open(name string) {
	n := &Node{Name: name}
	if len(b.stack) == 0 {
		b.root = n
	} else {
		top := b.stack[len(b.stack)-1]
		top.Children = append(top.Children, n)
	}
	b.stack = append(b.stack, n)
	b.drainInto(n)
}

// Drain flushes the pending buffer into the currently open node. Needed
// when a production reads terminals after opening its wrapper but before
// recursing into a child non-terminal.
func (b *Builder) Drain() {
	if len(b.stack) == 0 {
		return
	}
	b.drainInto(b.stack[len(b.stack)-1])
}

// Close drains any remaining pending terminals into the open node and pops
// it. Every Open must be balanced by exactly one Close.
func (b *Builder) Close() {
	if len(b.stack) == 0 {
		return
	}
	b.drainInto(b.stack[len(b.stack)-1])
	b.stack = b.stack[:len(b.stack)-1]
}

// Depth returns the number of currently open nodes.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Root returns the completed tree. Valid once Depth has returned to zero.
func (b *Builder) Root() *Node {
	return b.root
}

func (b *Builder) drainInto(n *Node) {
	for _, leaf := range b.pending {
		n.Children = append(n.Children, leaf)
	}
	b.pending = b.pending[:0]
}
