package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ourlang/ourlang/internal/compiler/symbols"
	"github.com/ourlang/ourlang/internal/compiler/token"
)

// --- Interfaces ---

type Node interface {
	TokenLiteral() string
	String() string
}

type Statement interface {
	Node
	statementNode()
}

// Expression nodes carry a mutable inferred type, zero-valued to
// symbols.TypeUnknown and stamped once by the semantic analyzer.
type Expression interface {
	Node
	expressionNode()
	ResultType() symbols.DataType
	GetToken() token.Token
}

// --- Program ---

type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// --- Statements ---

// DeclarationStatement -> banao x = 5; or banao x;
type DeclarationStatement struct {
	Token token.Token // banao
	Name  *Identifier
	Value Expression // nil when declared without an initializer
}

func (ds *DeclarationStatement) statementNode()       {}
func (ds *DeclarationStatement) TokenLiteral() string { return ds.Token.Literal }
func (ds *DeclarationStatement) String() string {
	var out bytes.Buffer
	out.WriteString(ds.TokenLiteral() + " ")
	if ds.Name != nil {
		out.WriteString(ds.Name.String())
	}
	if ds.Value != nil {
		out.WriteString(" = ")
		out.WriteString(ds.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// FuncDeclarationStatement -> kaam name(a, b) { body }
type FuncDeclarationStatement struct {
	Token      token.Token // kaam
	Name       *Identifier
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fd *FuncDeclarationStatement) statementNode()       {}
func (fd *FuncDeclarationStatement) TokenLiteral() string { return fd.Token.Literal }
func (fd *FuncDeclarationStatement) String() string {
	var out bytes.Buffer
	out.WriteString(fd.TokenLiteral() + " ")
	if fd.Name != nil {
		out.WriteString(fd.Name.String())
	}
	params := []string{}
	for _, p := range fd.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	if fd.Body != nil {
		out.WriteString(fd.Body.String())
	}
	return out.String()
}

// IfStatement -> agar (cond) { } warnah { }
type IfStatement struct {
	Token       token.Token // agar
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // nil when there is no warnah branch
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString(is.TokenLiteral() + " (")
	if is.Condition != nil {
		out.WriteString(is.Condition.String())
	}
	out.WriteString(") ")
	if is.Consequence != nil {
		out.WriteString(is.Consequence.String())
	}
	if is.Alternative != nil {
		out.WriteString(" warnah ")
		out.WriteString(is.Alternative.String())
	}
	return out.String()
}

// LoopStatement -> daura (cond) { body }. Condition-only, like a while loop.
type LoopStatement struct {
	Token     token.Token // daura
	Condition Expression
	Body      *BlockStatement
}

func (ls *LoopStatement) statementNode()       {}
func (ls *LoopStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LoopStatement) String() string {
	var out bytes.Buffer
	out.WriteString(ls.TokenLiteral() + " (")
	if ls.Condition != nil {
		out.WriteString(ls.Condition.String())
	}
	out.WriteString(") ")
	if ls.Body != nil {
		out.WriteString(ls.Body.String())
	}
	return out.String()
}

// ReturnStatement -> wapas expr; or wapas;
type ReturnStatement struct {
	Token       token.Token // wapas
	ReturnValue Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	var out bytes.Buffer
	out.WriteString(rs.TokenLiteral())
	if rs.ReturnValue != nil {
		out.WriteString(" ")
		out.WriteString(rs.ReturnValue.String())
	}
	out.WriteString(";")
	return out.String()
}

// BlockStatement -> { statement1 statement2 }. Also usable bare at
// statement position, where it introduces its own scope.
type BlockStatement struct {
	Token      token.Token // {
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range bs.Statements {
		out.WriteString("\t" + s.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// ExpressionStatement wraps an expression used as a statement.
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String() + ";"
	}
	return ";"
}

// --- Expressions ---

// NumberLiteral -> 42 or 3.14
type NumberLiteral struct {
	Token token.Token
	Value float64
	Typ   symbols.DataType
}

func (nl *NumberLiteral) expressionNode()             {}
func (nl *NumberLiteral) TokenLiteral() string        { return nl.Token.Literal }
func (nl *NumberLiteral) String() string              { return nl.Token.Literal }
func (nl *NumberLiteral) ResultType() symbols.DataType { return nl.Typ }
func (nl *NumberLiteral) GetToken() token.Token       { return nl.Token }

// StringLiteral -> 'hello'
type StringLiteral struct {
	Token token.Token
	Value string
	Typ   symbols.DataType
}

func (sl *StringLiteral) expressionNode()             {}
func (sl *StringLiteral) TokenLiteral() string        { return sl.Token.Literal }
func (sl *StringLiteral) String() string              { return fmt.Sprintf("%q", sl.Value) }
func (sl *StringLiteral) ResultType() symbols.DataType { return sl.Typ }
func (sl *StringLiteral) GetToken() token.Token       { return sl.Token }

// BooleanLiteral -> haan or na
type BooleanLiteral struct {
	Token token.Token
	Value bool
	Typ   symbols.DataType
}

func (bl *BooleanLiteral) expressionNode()             {}
func (bl *BooleanLiteral) TokenLiteral() string        { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string              { return bl.Token.Literal }
func (bl *BooleanLiteral) ResultType() symbols.DataType { return bl.Typ }
func (bl *BooleanLiteral) GetToken() token.Token       { return bl.Token }

// Identifier -> varName
type Identifier struct {
	Token token.Token // IDENT
	Value string
	Typ   symbols.DataType
}

func (i *Identifier) expressionNode()             {}
func (i *Identifier) TokenLiteral() string        { return i.Token.Literal }
func (i *Identifier) String() string              { return i.Value }
func (i *Identifier) ResultType() symbols.DataType { return i.Typ }
func (i *Identifier) GetToken() token.Token       { return i.Token }

// BinaryExpression -> (left op right)
type BinaryExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
	Typ      symbols.DataType
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	if be.Left != nil {
		out.WriteString(be.Left.String())
	}
	out.WriteString(" " + be.Operator + " ")
	if be.Right != nil {
		out.WriteString(be.Right.String())
	}
	out.WriteString(")")
	return out.String()
}
func (be *BinaryExpression) ResultType() symbols.DataType { return be.Typ }
func (be *BinaryExpression) GetToken() token.Token        { return be.Token }

// UnaryExpression -> (-x) or (!flag)
type UnaryExpression struct {
	Token    token.Token // the operator token
	Operator string
	Operand  Expression
	Typ      symbols.DataType
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ue.Operator)
	if ue.Operand != nil {
		out.WriteString(ue.Operand.String())
	}
	out.WriteString(")")
	return out.String()
}
func (ue *UnaryExpression) ResultType() symbols.DataType { return ue.Typ }
func (ue *UnaryExpression) GetToken() token.Token        { return ue.Token }

// AssignmentExpression -> name = value. Compound assignments are desugared
// by the parser, so `x += 1` arrives here as `x = (x + 1)`.
type AssignmentExpression struct {
	Token token.Token // =
	Name  *Identifier
	Value Expression
	Typ   symbols.DataType
}

func (ae *AssignmentExpression) expressionNode()      {}
func (ae *AssignmentExpression) TokenLiteral() string { return ae.Token.Literal }
func (ae *AssignmentExpression) String() string {
	var out bytes.Buffer
	if ae.Name != nil {
		out.WriteString(ae.Name.String())
	}
	out.WriteString(" = ")
	if ae.Value != nil {
		out.WriteString(ae.Value.String())
	}
	return out.String()
}
func (ae *AssignmentExpression) ResultType() symbols.DataType { return ae.Typ }
func (ae *AssignmentExpression) GetToken() token.Token        { return ae.Token }

// CallExpression -> funcName(arg1, arg2). The callee is restricted to a
// plain identifier by the parser.
type CallExpression struct {
	Token     token.Token // the function name token
	Function  *Identifier
	Arguments []Expression
	Typ       symbols.DataType
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	var out bytes.Buffer
	args := []string{}
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	if ce.Function != nil {
		out.WriteString(ce.Function.String())
	}
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}
func (ce *CallExpression) ResultType() symbols.DataType { return ce.Typ }
func (ce *CallExpression) GetToken() token.Token        { return ce.Token }

// ArrayLiteral -> [1, 2, 3]
type ArrayLiteral struct {
	Token    token.Token // [
	Elements []Expression
	Typ      symbols.DataType
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) String() string {
	elems := []string{}
	for _, e := range al.Elements {
		elems = append(elems, e.String())
	}
	return "[" + strings.Join(elems, ", ") + "]"
}
func (al *ArrayLiteral) ResultType() symbols.DataType { return al.Typ }
func (al *ArrayLiteral) GetToken() token.Token        { return al.Token }

// ObjectMember is one key: value pair of an object literal. Member order
// is preserved.
type ObjectMember struct {
	Key   token.Token // IDENT
	Value Expression
}

// ObjectLiteral -> {name: expr, age: expr}
type ObjectLiteral struct {
	Token   token.Token // {
	Members []ObjectMember
	Typ     symbols.DataType
}

func (ol *ObjectLiteral) expressionNode()      {}
func (ol *ObjectLiteral) TokenLiteral() string { return ol.Token.Literal }
func (ol *ObjectLiteral) String() string {
	members := []string{}
	for _, m := range ol.Members {
		members = append(members, m.Key.Literal+": "+m.Value.String())
	}
	return "{" + strings.Join(members, ", ") + "}"
}
func (ol *ObjectLiteral) ResultType() symbols.DataType { return ol.Typ }
func (ol *ObjectLiteral) GetToken() token.Token        { return ol.Token }

// IndexExpression -> arr[i]. The indexing target is restricted to a plain
// identifier by the parser; element types are not tracked, so the result
// type stays unknown.
type IndexExpression struct {
	Token token.Token // [
	Left  *Identifier
	Index Expression
	Typ   symbols.DataType
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) String() string {
	var out bytes.Buffer
	if ie.Left != nil {
		out.WriteString(ie.Left.String())
	}
	out.WriteString("[")
	if ie.Index != nil {
		out.WriteString(ie.Index.String())
	}
	out.WriteString("]")
	return out.String()
}
func (ie *IndexExpression) ResultType() symbols.DataType { return ie.Typ }
func (ie *IndexExpression) GetToken() token.Token        { return ie.Token }

// GroupedExpression -> (expression). Kept as a real node so that postfix
// call/index target checks can tell `(f)(x)` apart from `f(x)`. String()
// delegates to the inner expression: binary and unary nodes already print
// their own parentheses, which keeps the pretty-printed form stable under
// reparsing.
type GroupedExpression struct {
	Token      token.Token // (
	Expression Expression
}

func (ge *GroupedExpression) expressionNode()      {}
func (ge *GroupedExpression) TokenLiteral() string { return ge.Token.Literal }
func (ge *GroupedExpression) String() string {
	if ge.Expression != nil {
		return ge.Expression.String()
	}
	return "()"
}

func (ge *GroupedExpression) ResultType() symbols.DataType {
	if ge.Expression != nil {
		return ge.Expression.ResultType()
	}
	return symbols.TypeUnknown
}
func (ge *GroupedExpression) GetToken() token.Token { return ge.Token }
