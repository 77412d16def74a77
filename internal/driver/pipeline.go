package driver

import (
	"errors"

	"jackal/internal/ast"
	"jackal/internal/diag"
	"jackal/internal/lexer"
	"jackal/internal/parser"
	"jackal/internal/source"
	"jackal/internal/token"
)

// TokenizeResult is the outcome of tokenizing one file.
type TokenizeResult struct {
	Path   string
	Tokens []token.Token
	Bag    *diag.Bag
}

// ParseResult is the outcome of parsing one file. Tree is nil when the
// parse aborted; the bag then holds the diagnostic.
type ParseResult struct {
	Path string
	Tree *ast.Node
	Bag  *diag.Bag
}

// Tokenize loads and tokenizes a single file. Lexical failures land in the
// result's bag; the returned error is reserved for I/O problems.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	tokens := tokenizeFile(fileSet.Get(id), bag)
	return &TokenizeResult{Path: path, Tokens: tokens, Bag: bag}, nil
}

// Parse loads and parses a single file. Grammar and lexical failures land
// in the result's bag; the returned error is reserved for I/O problems.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	tree := parseFile(fileSet.Get(id), bag)
	return &ParseResult{Path: path, Tree: tree, Bag: bag}, nil
}

// tokenizeFile drains a fresh tokenizer over file. On a lexical error the
// tokens collected so far are returned and the bag holds the diagnostic.
func tokenizeFile(file *source.File, bag *diag.Bag) []token.Token {
	tz := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	var tokens []token.Token
	for tz.HasMoreTokens() {
		if err := tz.Advance(); err != nil {
			if errors.Is(err, lexer.ErrEndOfInput) {
				break
			}
			return tokens // reported via the bag
		}
		tokens = append(tokens, tz.Current())
	}
	return tokens
}

// parseFile runs the full front-end over an already-loaded file.
func parseFile(file *source.File, bag *diag.Bag) *ast.Node {
	rep := diag.BagReporter{Bag: bag}
	tz := lexer.New(file, lexer.Options{Reporter: rep})
	p := parser.New(tz, parser.Options{Reporter: rep})
	tree, err := p.CompileClass()
	if err != nil {
		return nil
	}
	return tree
}
