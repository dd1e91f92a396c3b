package analyzer

import (
	"fmt"

	"github.com/ourlang/ourlang/internal/compiler/ast"
	"github.com/ourlang/ourlang/internal/compiler/scope"
	"github.com/ourlang/ourlang/internal/compiler/symbols"
)

// Analyzer walks a parsed program once, resolving names against the symbol
// table and synthesizing a type for every expression. All problems are
// accumulated as diagnostics; analysis never stops at the first error.
type Analyzer struct {
	symbolTable *scope.SymbolTable
	errors      []string

	// Informational only: tracked and restored around nested function
	// declarations, never checked against a declared return type.
	inFunction        bool
	currentReturnType symbols.DataType
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		symbolTable:       scope.NewSymbolTable(),
		currentReturnType: symbols.TypeVoid,
	}
}

// Analyze checks the program and reports whether it is semantically valid.
// A program without a global function named main always fails. A panic out
// of the traversal (a malformed tree) is converted into a single EXCEPTION
// diagnostic.
func (a *Analyzer) Analyze(program *ast.Program) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			a.errors = append(a.errors, fmt.Sprintf("EXCEPTION: %v", r))
			ok = false
		}
	}()

	for _, stmt := range program.Statements {
		a.analyzeStatement(stmt)
	}

	if _, found := a.symbolTable.Lookup("main"); !found {
		a.errors = append(a.errors, "ERROR: Main function 'kaam main()' not found")
		return false
	}

	return len(a.errors) == 0
}

// Errors returns the accumulated diagnostics in order of detection.
func (a *Analyzer) Errors() []string {
	return a.errors
}

func (a *Analyzer) errorf(format string, args ...any) {
	a.errors = append(a.errors, "ERROR: "+fmt.Sprintf(format, args...))
}

// --- Statements ---

func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.DeclarationStatement:
		a.analyzeDeclaration(s)
	case *ast.FuncDeclarationStatement:
		a.analyzeFuncDeclaration(s)
	case *ast.IfStatement:
		a.analyzeIfStatement(s)
	case *ast.LoopStatement:
		a.analyzeLoopStatement(s)
	case *ast.ReturnStatement:
		a.analyzeReturnStatement(s)
	case *ast.BlockStatement:
		a.analyzeBlockStatement(s)
	case *ast.ExpressionStatement:
		a.analyzeExpression(s.Expression)
	default:
		panic(fmt.Sprintf("unhandled statement node %T", stmt))
	}
}

func (a *Analyzer) analyzeDeclaration(s *ast.DeclarationStatement) {
	varType := symbols.TypeUnknown
	initialized := false

	if s.Value != nil {
		varType = a.analyzeExpression(s.Value)
		initialized = true
	}

	if !a.symbolTable.Define(s.Name.Value, varType, false, initialized) {
		a.errorf("Variable '%s' already defined in current scope", s.Name.Value)
	}
	s.Name.Typ = varType
}

func (a *Analyzer) analyzeFuncDeclaration(s *ast.FuncDeclarationStatement) {
	// Parameter types are never inferred from call sites or usage; the
	// signature registers globally with all-unknown parameters and a void
	// return type.
	paramTypes := make([]symbols.DataType, len(s.Parameters))
	a.symbolTable.AddFunctionSignature(s.Name.Value, paramTypes, symbols.TypeVoid)

	a.symbolTable.EnterScope(s.Name.Value)
	defer a.symbolTable.ExitScope()

	prevInFunction := a.inFunction
	prevReturnType := a.currentReturnType
	a.inFunction = true
	a.currentReturnType = symbols.TypeUnknown
	defer func() {
		a.inFunction = prevInFunction
		a.currentReturnType = prevReturnType
	}()

	for _, param := range s.Parameters {
		a.symbolTable.Define(param.Value, symbols.TypeUnknown, false, true)
	}

	for _, stmt := range s.Body.Statements {
		a.analyzeStatement(stmt)
	}
}

func (a *Analyzer) analyzeIfStatement(s *ast.IfStatement) {
	condType := a.analyzeExpression(s.Condition)
	if condType != symbols.TypeBoolean && condType != symbols.TypeUnknown && condType != symbols.TypeVoid {
		a.errorf("If condition must be boolean, got %s", condType)
	}

	a.analyzeBlockStatement(s.Consequence)
	if s.Alternative != nil {
		a.analyzeBlockStatement(s.Alternative)
	}
}

func (a *Analyzer) analyzeLoopStatement(s *ast.LoopStatement) {
	condType := a.analyzeExpression(s.Condition)
	if condType != symbols.TypeBoolean && condType != symbols.TypeUnknown && condType != symbols.TypeVoid {
		a.errorf("Loop condition must be boolean, got %s", condType)
	}

	a.analyzeBlockStatement(s.Body)
}

func (a *Analyzer) analyzeReturnStatement(s *ast.ReturnStatement) {
	if !a.inFunction {
		a.errorf("Return statement outside function")
		return
	}

	if s.ReturnValue != nil {
		// Synthesized for its own diagnostics; the result is recorded but
		// never enforced against a declared return type.
		a.currentReturnType = a.analyzeExpression(s.ReturnValue)
	}
}

// analyzeBlockStatement analyzes a brace block in its own scope.
func (a *Analyzer) analyzeBlockStatement(s *ast.BlockStatement) {
	a.symbolTable.EnterScope("block")
	defer a.symbolTable.ExitScope()

	for _, stmt := range s.Statements {
		a.analyzeStatement(stmt)
	}
}

// --- Expressions ---

// analyzeExpression synthesizes the expression's type bottom-up, stamping
// it onto the node. TypeUnknown is the safe fallback wherever a sound type
// cannot be determined.
func (a *Analyzer) analyzeExpression(expr ast.Expression) symbols.DataType {
	switch e := expr.(type) {
	case nil:
		return symbols.TypeUnknown
	case *ast.NumberLiteral:
		return symbols.TypeNumber
	case *ast.StringLiteral:
		return symbols.TypeString
	case *ast.BooleanLiteral:
		return symbols.TypeBoolean
	case *ast.Identifier:
		return a.analyzeIdentifier(e)
	case *ast.BinaryExpression:
		e.Typ = a.analyzeBinaryExpression(e)
		return e.Typ
	case *ast.UnaryExpression:
		e.Typ = a.analyzeUnaryExpression(e)
		return e.Typ
	case *ast.AssignmentExpression:
		e.Typ = a.analyzeAssignment(e)
		return e.Typ
	case *ast.CallExpression:
		e.Typ = a.analyzeCall(e)
		return e.Typ
	case *ast.ArrayLiteral:
		for _, elem := range e.Elements {
			a.analyzeExpression(elem)
		}
		return symbols.TypeArray
	case *ast.ObjectLiteral:
		for _, m := range e.Members {
			a.analyzeExpression(m.Value)
		}
		return symbols.TypeObject
	case *ast.IndexExpression:
		e.Typ = a.analyzeIndexExpression(e)
		return e.Typ
	case *ast.GroupedExpression:
		return a.analyzeExpression(e.Expression)
	default:
		panic(fmt.Sprintf("unhandled expression node %T", expr))
	}
}

func (a *Analyzer) analyzeIdentifier(e *ast.Identifier) symbols.DataType {
	sym, found := a.symbolTable.Lookup(e.Value)
	if !found {
		a.errorf("Undefined variable '%s'", e.Value)
		return symbols.TypeUnknown
	}
	e.Typ = sym.Type
	return sym.Type
}

func (a *Analyzer) analyzeBinaryExpression(e *ast.BinaryExpression) symbols.DataType {
	leftType := a.analyzeExpression(e.Left)
	rightType := a.analyzeExpression(e.Right)

	switch e.Operator {
	case "+", "-", "*", "/", "%":
		// Unknown and void pass so recursive and forward calls stay
		// type-clean.
		if leftType != symbols.TypeNumber && leftType != symbols.TypeUnknown && leftType != symbols.TypeVoid {
			a.errorf("Left operand of '%s' must be number", e.Operator)
		}
		if rightType != symbols.TypeNumber && rightType != symbols.TypeUnknown && rightType != symbols.TypeVoid {
			a.errorf("Right operand of '%s' must be number", e.Operator)
		}
		return symbols.TypeNumber

	case "<", "<=", ">", ">=":
		if leftType != symbols.TypeNumber && leftType != symbols.TypeUnknown {
			a.errorf("Left operand of '%s' must be number", e.Operator)
		}
		if rightType != symbols.TypeNumber && rightType != symbols.TypeUnknown {
			a.errorf("Right operand of '%s' must be number", e.Operator)
		}
		return symbols.TypeBoolean

	case "==", "!=":
		// No operand check: any two values may be compared.
		return symbols.TypeBoolean

	case "&&", "||":
		if leftType != symbols.TypeBoolean && leftType != symbols.TypeUnknown {
			a.errorf("Left operand of '%s' must be boolean", e.Operator)
		}
		if rightType != symbols.TypeBoolean && rightType != symbols.TypeUnknown {
			a.errorf("Right operand of '%s' must be boolean", e.Operator)
		}
		return symbols.TypeBoolean
	}

	return symbols.TypeUnknown
}

func (a *Analyzer) analyzeUnaryExpression(e *ast.UnaryExpression) symbols.DataType {
	operandType := a.analyzeExpression(e.Operand)

	switch e.Operator {
	case "-":
		if operandType != symbols.TypeNumber && operandType != symbols.TypeUnknown {
			a.errorf("Operand of '-' must be number")
		}
		return symbols.TypeNumber
	case "!":
		if operandType != symbols.TypeBoolean && operandType != symbols.TypeUnknown {
			a.errorf("Operand of '!' must be boolean")
		}
		return symbols.TypeBoolean
	}

	return symbols.TypeUnknown
}

// analyzeAssignment requires the target to already be defined; assignment
// never implicitly declares.
func (a *Analyzer) analyzeAssignment(e *ast.AssignmentExpression) symbols.DataType {
	sym, found := a.symbolTable.Lookup(e.Name.Value)
	if !found {
		a.errorf("Undefined variable '%s'", e.Name.Value)
		return symbols.TypeUnknown
	}

	valueType := a.analyzeExpression(e.Value)

	if sym.Type != symbols.TypeUnknown && valueType != symbols.TypeUnknown && sym.Type != valueType {
		a.errorf("Type mismatch in assignment to '%s': expected %s, got %s",
			e.Name.Value, sym.Type, valueType)
	}

	a.symbolTable.Update(e.Name.Value)
	e.Name.Typ = sym.Type
	return valueType
}

func (a *Analyzer) analyzeCall(e *ast.CallExpression) symbols.DataType {
	name := e.Function.Value

	funcSym, found := a.symbolTable.Lookup(name)
	if !found {
		a.errorf("Undefined function '%s'", name)
		return symbols.TypeUnknown
	}
	if !funcSym.IsFunction {
		a.errorf("'%s' is not a function", name)
		return symbols.TypeUnknown
	}

	// Builtins get hard-coded arity and type rules.
	switch name {
	case "dekh":
		// Any number of arguments of any type.
		for _, arg := range e.Arguments {
			a.analyzeExpression(arg)
		}
		return symbols.TypeVoid

	case "lou":
		if len(e.Arguments) > 0 {
			a.analyzeExpression(e.Arguments[0])
		}
		return symbols.TypeNumber

	case "nikal":
		if len(e.Arguments) != 1 {
			a.errorf("nikal() expects 1 argument, got %d", len(e.Arguments))
		} else {
			a.analyzeExpression(e.Arguments[0])
		}
		return symbols.TypeNumber

	case "band":
		return symbols.TypeVoid

	case "abs", "sqrt", "round":
		if len(e.Arguments) != 1 {
			a.errorf("%s() expects 1 argument", name)
		} else {
			argType := a.analyzeExpression(e.Arguments[0])
			if argType != symbols.TypeNumber && argType != symbols.TypeUnknown {
				a.errorf("%s() expects number argument", name)
			}
		}
		return symbols.TypeNumber

	case "pow", "max", "min":
		if len(e.Arguments) != 2 {
			a.errorf("%s() expects 2 arguments", name)
		} else {
			for _, arg := range e.Arguments {
				argType := a.analyzeExpression(arg)
				if argType != symbols.TypeNumber && argType != symbols.TypeUnknown {
					a.errorf("%s() expects number arguments", name)
				}
			}
		}
		return symbols.TypeNumber

	case "random":
		return symbols.TypeNumber
	}

	// User-defined calls check argument count only; arguments are still
	// analyzed for their own diagnostics.
	if len(e.Arguments) != len(funcSym.ParamTypes) {
		a.errorf("Function '%s' expects %d arguments, got %d",
			name, len(funcSym.ParamTypes), len(e.Arguments))
	}

	for _, arg := range e.Arguments {
		a.analyzeExpression(arg)
	}

	return funcSym.ReturnType
}

func (a *Analyzer) analyzeIndexExpression(e *ast.IndexExpression) symbols.DataType {
	sym, found := a.symbolTable.Lookup(e.Left.Value)
	if !found {
		a.errorf("Undefined array '%s'", e.Left.Value)
		return symbols.TypeUnknown
	}

	if sym.Type != symbols.TypeArray && sym.Type != symbols.TypeUnknown {
		a.errorf("Cannot index non-array type '%s'", e.Left.Value)
	}

	indexType := a.analyzeExpression(e.Index)
	if indexType != symbols.TypeNumber && indexType != symbols.TypeUnknown {
		a.errorf("Array index must be number, got %s", indexType)
	}

	// No element-type tracking.
	e.Left.Typ = sym.Type
	return symbols.TypeUnknown
}
