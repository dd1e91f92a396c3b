package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ourlang/ourlang/internal/compiler/ast"
	"github.com/ourlang/ourlang/internal/compiler/lexer"
	"github.com/ourlang/ourlang/internal/compiler/symbols"
	"github.com/ourlang/ourlang/internal/compiler/token"
)

// Precedence levels for Pratt parsing, lowest to highest.
const (
	_ int = iota
	PrecLowest
	PrecAssign     // =, +=, -=, *=, /= (right-associative)
	PrecOr         // ||
	PrecAnd        // &&
	PrecEquality   // ==, !=
	PrecComparison // <, <=, >, >=
	PrecSum        // +, -
	PrecProduct    // *, /, %
	PrecUnary      // -x, !x
	PrecPostfix    // arr[i], name(...)
)

// Map tokens to precedence levels.
var precedences = map[token.TokenType]int{
	token.TokenAssign:      PrecAssign,
	token.TokenPlusAssign:  PrecAssign,
	token.TokenMinusAssign: PrecAssign,
	token.TokenStarAssign:  PrecAssign,
	token.TokenSlashAssign: PrecAssign,
	token.TokenOr:          PrecOr,
	token.TokenAnd:         PrecAnd,
	token.TokenEq:          PrecEquality,
	token.TokenNotEq:       PrecEquality,
	token.TokenLt:          PrecComparison,
	token.TokenLte:         PrecComparison,
	token.TokenGt:          PrecComparison,
	token.TokenGte:         PrecComparison,
	token.TokenPlus:        PrecSum,
	token.TokenMinus:       PrecSum,
	token.TokenAsterisk:    PrecProduct,
	token.TokenSlash:       PrecProduct,
	token.TokenPercent:     PrecProduct,
	token.TokenLBracket:    PrecPostfix,
	token.TokenLParen:      PrecPostfix,
}

// Error is a fatal syntax error. The first one encountered aborts the
// whole parse; no partial AST is returned.
type Error struct {
	Msg    string
	Line   int
	Column int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: Syntax Error: %s", e.Line, e.Column, e.Msg)
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l       *lexer.Lexer
	curTok  token.Token
	peekTok token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.TokenNumber:   p.parseNumberLiteral,
		token.TokenString:   p.parseStringLiteral,
		token.TokenHaan:     p.parseBooleanLiteral,
		token.TokenNa:       p.parseBooleanLiteral,
		token.TokenIdent:    p.parseIdentifier,
		token.TokenDekh:     p.parseIdentifier, // builtin keywords are callable names
		token.TokenLou:      p.parseIdentifier,
		token.TokenBand:     p.parseIdentifier,
		token.TokenMinus:    p.parseUnaryExpression,
		token.TokenBang:     p.parseUnaryExpression,
		token.TokenLParen:   p.parseGroupedExpression,
		token.TokenLBracket: p.parseArrayLiteral,
		token.TokenLBrace:   p.parseObjectLiteral,
	}

	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.TokenPlus:        p.parseBinaryExpression,
		token.TokenMinus:       p.parseBinaryExpression,
		token.TokenAsterisk:    p.parseBinaryExpression,
		token.TokenSlash:       p.parseBinaryExpression,
		token.TokenPercent:     p.parseBinaryExpression,
		token.TokenEq:          p.parseBinaryExpression,
		token.TokenNotEq:       p.parseBinaryExpression,
		token.TokenLt:          p.parseBinaryExpression,
		token.TokenLte:         p.parseBinaryExpression,
		token.TokenGt:          p.parseBinaryExpression,
		token.TokenGte:         p.parseBinaryExpression,
		token.TokenAnd:         p.parseBinaryExpression,
		token.TokenOr:          p.parseBinaryExpression,
		token.TokenAssign:      p.parseAssignmentExpression,
		token.TokenPlusAssign:  p.parseCompoundAssignment,
		token.TokenMinusAssign: p.parseCompoundAssignment,
		token.TokenStarAssign:  p.parseCompoundAssignment,
		token.TokenSlashAssign: p.parseCompoundAssignment,
		token.TokenLParen:      p.parseCallExpression,
		token.TokenLBracket:    p.parseIndexExpression,
	}

	// Prime curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

// ParseProgram consumes the whole token stream and returns the program, or
// a *Error describing the first syntax error. Parse errors abort
// immediately; internally they travel as a bailout panic so the grammar
// functions stay free of error plumbing.
func (p *Parser) ParseProgram() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			prog = nil
			err = perr
		}
	}()

	prog = &ast.Program{Statements: []ast.Statement{}}
	for p.curTok.Type != token.TokenEOF {
		stmt := p.parseStatement()
		prog.Statements = append(prog.Statements, stmt)
		p.nextToken()
	}
	return prog, nil
}

// --- Token handling ---

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

func (p *Parser) errorf(tok token.Token, format string, args ...any) {
	panic(&Error{Msg: fmt.Sprintf(format, args...), Line: tok.Line, Column: tok.Column})
}

// expectPeek advances onto the peek token when it has the expected type and
// aborts the parse otherwise. context names what was being parsed, e.g.
// "'(' after 'agar'".
func (p *Parser) expectPeek(expected token.TokenType, context string) {
	if p.peekTok.Type != expected {
		p.errorf(p.peekTok, "Expected %s, got '%s'", context, describe(p.peekTok))
	}
	p.nextToken()
}

func describe(tok token.Token) string {
	if tok.Type == token.TokenEOF {
		return "end of input"
	}
	return tok.Literal
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curTok.Type]; ok {
		return prec
	}
	return PrecLowest
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}
	return PrecLowest
}

// --- Statements ---

// parseStatement selects by leading keyword and falls through to an
// expression statement. Every statement parse leaves curTok on the last
// token of the statement (';' or '}').
func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Type {
	case token.TokenBanao:
		return p.parseDeclarationStatement()
	case token.TokenKaam:
		return p.parseFuncDeclarationStatement()
	case token.TokenAgar:
		return p.parseIfStatement()
	case token.TokenDaura:
		return p.parseLoopStatement()
	case token.TokenWapas:
		return p.parseReturnStatement()
	case token.TokenLBrace:
		// A bare block is a real statement; its contents get their own
		// scope during analysis.
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseDeclarationStatement() ast.Statement {
	stmt := &ast.DeclarationStatement{Token: p.curTok}

	p.expectPeek(token.TokenIdent, "identifier after 'banao'")
	stmt.Name = &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}

	if p.peekTok.Type == token.TokenAssign {
		p.nextToken()
		p.nextToken()
		stmt.Value = p.parseExpression(PrecLowest)
	}

	p.expectPeek(token.TokenSemicolon, "';' after variable declaration")
	return stmt
}

func (p *Parser) parseFuncDeclarationStatement() ast.Statement {
	stmt := &ast.FuncDeclarationStatement{Token: p.curTok}

	p.expectPeek(token.TokenIdent, "function name after 'kaam'")
	stmt.Name = &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}

	p.expectPeek(token.TokenLParen, "'(' after function name")
	stmt.Parameters = p.parseParameterList()

	p.expectPeek(token.TokenLBrace, "'{' before function body")
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// parseParameterList parses a comma-separated list of parameter names.
// curTok is '(' on entry and ')' on exit.
func (p *Parser) parseParameterList() []*ast.Identifier {
	params := []*ast.Identifier{}

	if p.peekTok.Type == token.TokenRParen {
		p.nextToken()
		return params
	}

	p.expectPeek(token.TokenIdent, "parameter name")
	params = append(params, &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal})

	for p.peekTok.Type == token.TokenComma {
		p.nextToken()
		p.expectPeek(token.TokenIdent, "parameter name after ','")
		params = append(params, &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal})
	}

	p.expectPeek(token.TokenRParen, "')' after parameters")
	return params
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curTok}

	p.expectPeek(token.TokenLParen, "'(' after 'agar'")
	p.nextToken()
	stmt.Condition = p.parseExpression(PrecLowest)
	p.expectPeek(token.TokenRParen, "')' after if condition")

	p.expectPeek(token.TokenLBrace, "'{' before if body")
	stmt.Consequence = p.parseBlockStatement()

	if p.peekTok.Type == token.TokenWarnah {
		p.nextToken()
		p.expectPeek(token.TokenLBrace, "'{' before else body")
		stmt.Alternative = p.parseBlockStatement()
	}
	return stmt
}

func (p *Parser) parseLoopStatement() ast.Statement {
	stmt := &ast.LoopStatement{Token: p.curTok}

	p.expectPeek(token.TokenLParen, "'(' after 'daura'")
	p.nextToken()
	stmt.Condition = p.parseExpression(PrecLowest)
	p.expectPeek(token.TokenRParen, "')' after loop condition")

	p.expectPeek(token.TokenLBrace, "'{' before loop body")
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curTok}

	if p.peekTok.Type != token.TokenSemicolon {
		p.nextToken()
		stmt.ReturnValue = p.parseExpression(PrecLowest)
	}

	p.expectPeek(token.TokenSemicolon, "';' after return statement")
	return stmt
}

// parseBlockStatement parses a brace-delimited statement list. curTok is
// '{' on entry and '}' on exit.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curTok, Statements: []ast.Statement{}}

	p.nextToken()
	for p.curTok.Type != token.TokenRBrace {
		if p.curTok.Type == token.TokenEOF {
			p.errorf(p.curTok, "Expected '}', got end of input")
		}
		stmt := p.parseStatement()
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}
	return block
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curTok}
	stmt.Expression = p.parseExpression(PrecLowest)
	p.expectPeek(token.TokenSemicolon, "';' after expression")
	return stmt
}

// --- Expressions ---

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curTok.Type]
	if prefix == nil {
		p.errorf(p.curTok, "Expected expression, got '%s'", describe(p.curTok))
	}
	left := prefix()

	for p.peekTok.Type != token.TokenSemicolon && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekTok.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.curTok.Literal, 64)
	if err != nil {
		p.errorf(p.curTok, "Could not parse '%s' as a number", p.curTok.Literal)
	}
	return &ast.NumberLiteral{Token: p.curTok, Value: value, Typ: symbols.TypeNumber}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curTok, Value: p.curTok.Literal, Typ: symbols.TypeString}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{
		Token: p.curTok,
		Value: p.curTok.Type == token.TokenHaan,
		Typ:   symbols.TypeBoolean,
	}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	expr := &ast.UnaryExpression{Token: p.curTok, Operator: p.curTok.Literal}
	p.nextToken()
	expr.Operand = p.parseExpression(PrecUnary)
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	expr := &ast.GroupedExpression{Token: p.curTok}
	p.nextToken()
	expr.Expression = p.parseExpression(PrecLowest)
	p.expectPeek(token.TokenRParen, "')' after expression")
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.curTok, Typ: symbols.TypeArray}
	arr.Elements = p.parseExpressionList(token.TokenRBracket, "']' after array elements")
	return arr
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	obj := &ast.ObjectLiteral{Token: p.curTok, Typ: symbols.TypeObject}

	if p.peekTok.Type == token.TokenRBrace {
		p.nextToken()
		return obj
	}

	for {
		p.expectPeek(token.TokenIdent, "property name")
		key := p.curTok
		p.expectPeek(token.TokenColon, "':' after property name")
		p.nextToken()
		value := p.parseExpression(PrecLowest)
		obj.Members = append(obj.Members, ast.ObjectMember{Key: key, Value: value})

		if p.peekTok.Type != token.TokenComma {
			break
		}
		p.nextToken()
	}

	p.expectPeek(token.TokenRBrace, "'}' after object members")
	return obj
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{
		Token:    p.curTok,
		Left:     left,
		Operator: p.curTok.Literal,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

// parseAssignmentExpression handles `name = value`. Assignment is
// right-associative and only a plain name is a valid target.
func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	name, ok := left.(*ast.Identifier)
	if !ok {
		p.errorf(p.curTok, "Invalid assignment target")
	}

	expr := &ast.AssignmentExpression{Token: p.curTok, Name: name}
	p.nextToken()
	expr.Value = p.parseExpression(PrecAssign - 1)
	return expr
}

// parseCompoundAssignment desugars `name op= value` to
// `name = name op value`.
func (p *Parser) parseCompoundAssignment(left ast.Expression) ast.Expression {
	name, ok := left.(*ast.Identifier)
	if !ok {
		p.errorf(p.curTok, "Invalid assignment target")
	}

	opTok := p.curTok
	op := strings.TrimSuffix(opTok.Literal, "=")
	p.nextToken()
	value := p.parseExpression(PrecAssign - 1)

	return &ast.AssignmentExpression{
		Token: opTok,
		Name:  name,
		Value: &ast.BinaryExpression{
			Token:    opTok,
			Left:     &ast.Identifier{Token: name.Token, Value: name.Value},
			Operator: op,
			Right:    value,
		},
	}
}

// parseCallExpression handles `name(args)`. The callee must reduce to a
// plain identifier: calling the result of a grouping, a previous call or
// an index is a parse error.
func (p *Parser) parseCallExpression(left ast.Expression) ast.Expression {
	fn, ok := left.(*ast.Identifier)
	if !ok {
		p.errorf(p.curTok, "Call target must be a plain function name")
	}

	call := &ast.CallExpression{Token: fn.Token, Function: fn}
	call.Arguments = p.parseExpressionList(token.TokenRParen, "')' after function arguments")
	return call
}

// parseIndexExpression handles `name[index]` with the same plain-name
// target restriction as calls.
func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	arr, ok := left.(*ast.Identifier)
	if !ok {
		p.errorf(p.curTok, "Index target must be a plain array name")
	}

	expr := &ast.IndexExpression{Token: p.curTok, Left: arr}
	p.nextToken()
	expr.Index = p.parseExpression(PrecLowest)
	p.expectPeek(token.TokenRBracket, "']' after array index")
	return expr
}

// parseExpressionList parses a comma-separated expression list terminated
// by end. curTok is the opening delimiter on entry and end on exit.
func (p *Parser) parseExpressionList(end token.TokenType, context string) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTok.Type == end {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(PrecLowest))

	for p.peekTok.Type == token.TokenComma {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(PrecLowest))
	}

	p.expectPeek(end, context)
	return list
}
