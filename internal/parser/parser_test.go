package parser_test

import (
	"errors"
	"strings"
	"testing"

	"jackal/internal/ast"
	"jackal/internal/diag"
	"jackal/internal/lexer"
	"jackal/internal/parser"
	"jackal/internal/source"
)

// parseSource runs the full front end over an in-memory file and returns
// the tree, the diagnostics bag, and the parse error if any.
func parseSource(t *testing.T, input string) (*ast.Node, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.jack", []byte(input))
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}
	tz := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	p := parser.New(tz, parser.Options{Reporter: rep})
	root, err := p.CompileClass()
	return root, bag, err
}

func mustParse(t *testing.T, input string) *ast.Node {
	t.Helper()
	root, bag, err := parseSource(t, input)
	if err != nil {
		t.Fatalf("parse failed: %v (diags: %v)", err, bag.Items())
	}
	return root
}

// findNode returns the first node named name, in depth-first order.
func findNode(n *ast.Node, name string) *ast.Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if child, ok := c.(*ast.Node); ok {
			if found := findNode(child, name); found != nil {
				return found
			}
		}
	}
	return nil
}

// childShapes renders each direct child as either its node name or its
// leaf text, so a production's exact output shape can be asserted.
func childShapes(n *ast.Node) []string {
	out := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		switch c := c.(type) {
		case *ast.Node:
			out = append(out, c.Name)
		case ast.Leaf:
			out = append(out, c.Text)
		}
	}
	return out
}

func leafTexts(n *ast.Node) []string {
	leaves := ast.Terminals(n)
	out := make([]string, len(leaves))
	for i, l := range leaves {
		out[i] = l.Text
	}
	return out
}

func expectShapes(t *testing.T, n *ast.Node, want []string) {
	t.Helper()
	got := childShapes(n)
	if len(got) != len(want) {
		t.Fatalf("%s children = %v, want %v", n.Name, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s child %d = %q, want %q (full: %v)", n.Name, i, got[i], want[i], got)
		}
	}
}

func TestMinimalClass(t *testing.T) {
	root := mustParse(t, "class Main { }")
	if root.Name != "class" {
		t.Fatalf("root = %q, want class", root.Name)
	}
	expectShapes(t, root, []string{"class", "Main", "{", "}"})
}

func TestClassVarDecCommaList(t *testing.T) {
	root := mustParse(t, "class C { field int x, y; static boolean done; }")
	dec := findNode(root, "classVarDec")
	if dec == nil {
		t.Fatal("no classVarDec node")
	}
	expectShapes(t, dec, []string{"field", "int", "x", ",", "y", ";"})
}

func TestSubroutineDecShape(t *testing.T) {
	root := mustParse(t, "class C { function void main() { return; } }")
	dec := findNode(root, "subroutineDec")
	if dec == nil {
		t.Fatal("no subroutineDec node")
	}
	expectShapes(t, dec, []string{"function", "void", "main", "(", "parameterList", ")", "subroutineBody"})
}

func TestParameterList(t *testing.T) {
	root := mustParse(t, "class C { method int sum(int a, boolean b, Point p) { return a; } }")
	params := findNode(root, "parameterList")
	if params == nil {
		t.Fatal("no parameterList node")
	}
	expectShapes(t, params, []string{"int", "a", ",", "boolean", "b", ",", "Point", "p"})
}

func TestEmptyParameterList(t *testing.T) {
	root := mustParse(t, "class C { function void f() { return; } }")
	params := findNode(root, "parameterList")
	if params == nil {
		t.Fatal("no parameterList node")
	}
	if len(params.Children) != 0 {
		t.Fatalf("parameterList children = %v, want none", childShapes(params))
	}
}

func TestLetWithArrayIndex(t *testing.T) {
	root := mustParse(t, "class C { function void f() { let x[1] = 2; return; } }")
	let := findNode(root, "letStatement")
	if let == nil {
		t.Fatal("no letStatement node")
	}
	expectShapes(t, let, []string{"let", "x", "[", "expression", "]", "=", "expression", ";"})

	// The index and the assigned value are distinct subtrees.
	index, value := let.Children[3].(*ast.Node), let.Children[6].(*ast.Node)
	if got := leafTexts(index); len(got) != 1 || got[0] != "1" {
		t.Fatalf("index expression leaves = %v, want [1]", got)
	}
	if got := leafTexts(value); len(got) != 1 || got[0] != "2" {
		t.Fatalf("value expression leaves = %v, want [2]", got)
	}
}

func TestVarDecRepetition(t *testing.T) {
	root := mustParse(t, "class C { function void f() { var int i, j; var Array a; return; } }")
	body := findNode(root, "subroutineBody")
	if body == nil {
		t.Fatal("no subroutineBody node")
	}
	expectShapes(t, body, []string{"{", "varDec", "varDec", "statements", "}"})
}

func TestIfElse(t *testing.T) {
	root := mustParse(t, "class C { function void f() { if (x) { let y = 1; } else { let y = 2; } return; } }")
	ifs := findNode(root, "ifStatement")
	if ifs == nil {
		t.Fatal("no ifStatement node")
	}
	expectShapes(t, ifs, []string{
		"if", "(", "expression", ")",
		"{", "statements", "}",
		"else", "{", "statements", "}",
	})
}

func TestIfWithoutElseLeavesFollowerIntact(t *testing.T) {
	root := mustParse(t, "class C { function void f() { if (x) { } let y = 1; return; } }")
	stmts := findNode(root, "statements")
	if stmts == nil {
		t.Fatal("no statements node")
	}
	expectShapes(t, stmts, []string{"ifStatement", "letStatement", "returnStatement"})
}

func TestWhile(t *testing.T) {
	root := mustParse(t, "class C { function void f() { while (i < n) { let i = i + 1; } return; } }")
	w := findNode(root, "whileStatement")
	if w == nil {
		t.Fatal("no whileStatement node")
	}
	expectShapes(t, w, []string{"while", "(", "expression", ")", "{", "statements", "}"})
}

func TestDoCallAndExpressionList(t *testing.T) {
	root := mustParse(t, "class C { function void f() { do Output.printInt(a, b + 1); return; } }")
	call := findNode(root, "doStatement")
	if call == nil {
		t.Fatal("no doStatement node")
	}
	expectShapes(t, call, []string{"do", "Output", ".", "printInt", "(", "expressionList", ")", ";"})

	list := findNode(call, "expressionList")
	expectShapes(t, list, []string{"expression", ",", "expression"})
}

func TestEmptyExpressionList(t *testing.T) {
	root := mustParse(t, "class C { function void f() { do go(); return; } }")
	list := findNode(root, "expressionList")
	if list == nil {
		t.Fatal("no expressionList node")
	}
	if len(list.Children) != 0 {
		t.Fatalf("expressionList children = %v, want none", childShapes(list))
	}
}

func TestTermForms(t *testing.T) {
	root := mustParse(t, `class C { function void f() { let v = (a + b[i]) * -c.get(x, true) + "hi" - ~null; return; } }`)
	let := findNode(root, "letStatement")
	if let == nil {
		t.Fatal("no letStatement node")
	}
	// Flat left-to-right operator chaining: term (op term)*.
	expr := let.Children[3].(*ast.Node)
	expectShapes(t, expr, []string{"term", "*", "term", "+", "term", "-", "term"})

	// (a + b[i]): parenthesized expression inside the first term.
	paren := expr.Children[0].(*ast.Node)
	expectShapes(t, paren, []string{"(", "expression", ")"})
	inner := paren.Children[1].(*ast.Node)
	expectShapes(t, inner, []string{"term", "+", "term"})
	indexed := inner.Children[2].(*ast.Node)
	expectShapes(t, indexed, []string{"b", "[", "expression", "]"})

	// -c.get(x, true): unary operator wrapping a qualified-call term.
	unary := expr.Children[2].(*ast.Node)
	expectShapes(t, unary, []string{"-", "term"})
	call := unary.Children[1].(*ast.Node)
	expectShapes(t, call, []string{"c", ".", "get", "(", "expressionList", ")"})
}

func TestStringConstantTerm(t *testing.T) {
	root := mustParse(t, `class C { function void f() { let s = "hello there"; return; } }`)
	term := findNode(findNode(root, "letStatement"), "term")
	if term == nil {
		t.Fatal("no term node")
	}
	leaf, ok := term.Children[0].(ast.Leaf)
	if !ok {
		t.Fatalf("term child = %#v, want a leaf", term.Children[0])
	}
	if leaf.Label != "stringConstant" {
		t.Fatalf("label = %q, want stringConstant", leaf.Label)
	}
	if leaf.Value != "hello there" {
		t.Fatalf("value = %q, want the quotes stripped", leaf.Value)
	}
}

func TestKeywordConstantTerm(t *testing.T) {
	root := mustParse(t, "class C { function void f() { return this; } }")
	term := findNode(findNode(root, "returnStatement"), "term")
	if term == nil {
		t.Fatal("no term node")
	}
	leaf, ok := term.Children[0].(ast.Leaf)
	if !ok || leaf.Label != "keyword" || leaf.Text != "this" {
		t.Fatalf("term child = %#v, want keyword this", term.Children[0])
	}
}

const losslessProgram = `
// A program touching every construct.
class Game {
    static Game instance;
    field int score, lives;
    field boolean over;

    constructor Game new(int start) {
        var int i;
        let score = start;
        let lives = 3;
        let over = false;
        return this;
    }

    method void run(Array moves, int count) {
        var int i;
        var char c;
        let i = 0;
        while (i < count) {
            let c = moves[i];
            if (c = 113) {
                let over = true;
            } else {
                do Output.printChar(c);
            }
            let i = i + 1;
        }
        return;
    }

    function int clamp(int v) {
        if (v > 100) { return 100; }
        if (v < (-100)) { return -100; }
        return v;
    }
}
`

// The tree is lossless: concatenating its leaves left to right reproduces
// the exact token sequence of the input.
func TestTreeIsLossless(t *testing.T) {
	root := mustParse(t, losslessProgram)

	fs := source.NewFileSet()
	id := fs.AddVirtual("again.jack", []byte(losslessProgram))
	tz := lexer.New(fs.Get(id), lexer.Options{})
	var want []string
	for tz.HasMoreTokens() {
		if err := tz.Advance(); err != nil {
			if errors.Is(err, lexer.ErrEndOfInput) {
				break
			}
			t.Fatalf("Advance: %v", err)
		}
		want = append(want, tz.Current().Text)
	}

	got := leafTexts(root)
	if len(got) != len(want) {
		t.Fatalf("tree has %d leaves, input has %d tokens", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("leaf %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMissingVarNameAborts(t *testing.T) {
	root, bag, err := parseSource(t, "class C { field int ; }")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if root != nil {
		t.Fatal("no tree should be returned on failure")
	}
	if !strings.Contains(err.Error(), "variable name") {
		t.Fatalf("error = %q, want it to name the missing variable name", err)
	}
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("diags = %v, want exactly one", items)
	}
	if items[0].Code != diag.SynExpectedToken {
		t.Fatalf("code = %v, want SynExpectedToken", items[0].Code)
	}
}

func TestUnexpectedEOF(t *testing.T) {
	_, bag, err := parseSource(t, "class Main {")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var m *parser.Mismatch
	if !errors.As(err, &m) || !m.EOF {
		t.Fatalf("error = %#v, want an end-of-input mismatch", err)
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynUnexpectedEOF {
		t.Fatalf("diags = %v, want one SynUnexpectedEOF", items)
	}
}

func TestIntOutOfRangeAborts(t *testing.T) {
	_, bag, err := parseSource(t, "class C { function void f() { let x = 32768; return; } }")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexIntOutOfRange {
		t.Fatalf("diags = %v, want one LexIntOutOfRange", items)
	}
}

func TestLexicalErrorReportedOnce(t *testing.T) {
	// The tokenizer reports the bad character itself; the parser must not
	// report it a second time.
	_, bag, err := parseSource(t, "class C { field int x # y; }")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexUnknownToken {
		t.Fatalf("diags = %v, want one LexUnknownToken", items)
	}
}

func TestMismatchLineNumber(t *testing.T) {
	input := "class C {\n    field int x;\n    field int ;\n}\n"
	_, bag, err := parseSource(t, input)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("diags = %v, want exactly one", items)
	}
	if items[0].Line != 3 {
		t.Fatalf("line = %d, want 3", items[0].Line)
	}
}
