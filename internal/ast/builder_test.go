package ast_test

import (
	"testing"

	"jackal/internal/ast"
)

func TestBuilderPendOpenClose(t *testing.T) {
	b := ast.NewBuilder()
	b.Pend("keyword", "class", "class")
	b.Pend("identifier", "Main", "Main")
	b.Open("class") // drains the two pending leaves
	if b.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", b.Depth())
	}
	b.Pend("symbol", "}", "}")
	b.Close() // drains the trailing leaf
	if b.Depth() != 0 {
		t.Fatalf("depth = %d, want 0", b.Depth())
	}

	root := b.Root()
	if root.Name != "class" {
		t.Fatalf("root = %q", root.Name)
	}
	if len(root.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(root.Children))
	}
	leaf, ok := root.Children[0].(ast.Leaf)
	if !ok || leaf.Label != "keyword" || leaf.Value != "class" {
		t.Fatalf("first child = %#v", root.Children[0])
	}
}

func TestBuilderInterleavedDrain(t *testing.T) {
	// The subroutineDec shape: buffered terminals, a child non-terminal,
	// then more terminals drained explicitly before the next child.
	b := ast.NewBuilder()
	b.Pend("keyword", "function", "function")
	b.Open("subroutineDec")
	b.Open("parameterList")
	b.Close()
	b.Pend("symbol", ")", ")")
	b.Drain()
	b.Open("subroutineBody")
	b.Close()
	b.Close()

	root := b.Root()
	if len(root.Children) != 4 {
		t.Fatalf("children = %d, want 4", len(root.Children))
	}
	if n, ok := root.Children[1].(*ast.Node); !ok || n.Name != "parameterList" {
		t.Fatalf("child 1 = %#v", root.Children[1])
	}
	if l, ok := root.Children[2].(ast.Leaf); !ok || l.Text != ")" {
		t.Fatalf("child 2 = %#v, want the drained ')'", root.Children[2])
	}
	if n, ok := root.Children[3].(*ast.Node); !ok || n.Name != "subroutineBody" {
		t.Fatalf("child 3 = %#v", root.Children[3])
	}
}

func TestTerminalsOrder(t *testing.T) {
	b := ast.NewBuilder()
	b.Pend("keyword", "let", "let")
	b.Pend("identifier", "x", "x")
	b.Open("letStatement")
	b.Pend("symbol", "=", "=")
	b.Drain()
	b.Pend("integerConstant", "1", "1")
	b.Open("expression")
	b.Close()
	b.Pend("symbol", ";", ";")
	b.Close()

	var texts []string
	for _, leaf := range ast.Terminals(b.Root()) {
		texts = append(texts, leaf.Text)
	}
	want := []string{"let", "x", "=", "1", ";"}
	if len(texts) != len(want) {
		t.Fatalf("terminals = %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("terminal %d = %q, want %q", i, texts[i], want[i])
		}
	}
}
