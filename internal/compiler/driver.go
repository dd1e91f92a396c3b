package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ourlang/ourlang/internal/compiler/analyzer"
	"github.com/ourlang/ourlang/internal/compiler/ast"
	"github.com/ourlang/ourlang/internal/compiler/lexer"
	"github.com/ourlang/ourlang/internal/compiler/parser"
)

// SourceExt is the required extension for OurLang source files.
const SourceExt = ".our"

// Check runs the full front-end pipeline over raw source text and returns
// the diagnostic list plus a success flag. A syntax error aborts before
// analysis and becomes the sole diagnostic; semantic problems are all
// collected in order of detection.
func Check(src string) ([]string, bool) {
	prog, err := Parse(src)
	if err != nil {
		return []string{err.Error()}, false
	}

	a := analyzer.NewAnalyzer()
	ok := a.Analyze(prog)
	return a.Errors(), ok
}

// CheckFile validates the extension, reads the file, and checks it.
func CheckFile(path string) ([]string, bool, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, false, err
	}
	diags, ok := Check(src)
	return diags, ok, nil
}

// Parse turns source text into a program, or returns the first syntax
// error.
func Parse(src string) (*ast.Program, error) {
	l := lexer.NewLexer(src)
	p := parser.NewParser(l)
	return p.ParseProgram()
}

// ParseFile validates the extension, reads the file, and parses it.
func ParseFile(path string) (*ast.Program, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}

func readSource(path string) (string, error) {
	if filepath.Ext(path) != SourceExt {
		return "", fmt.Errorf("source must have %s extension", SourceExt)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
