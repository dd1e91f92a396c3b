package ast

import (
	"fmt"
	"io"
)

// Dump writes an indented rendering of the tree, one node per line, with
// inferred types where the analyzer has stamped them.
func Dump(w io.Writer, node Node, indent string) {
	switch n := node.(type) {
	case *Program:
		fmt.Fprintln(w, indent+"Program")
		for _, stmt := range n.Statements {
			Dump(w, stmt, indent+"  ")
		}

	case *DeclarationStatement:
		fmt.Fprintln(w, indent+"Declaration:", n.Name.Value)
		if n.Value != nil {
			Dump(w, n.Value, indent+"  ")
		}

	case *FuncDeclarationStatement:
		fmt.Fprintln(w, indent+"FuncDeclaration:", n.Name.Value)
		for _, p := range n.Parameters {
			fmt.Fprintln(w, indent+"  Param:", p.Value)
		}
		Dump(w, n.Body, indent+"  ")

	case *IfStatement:
		fmt.Fprintln(w, indent+"If")
		fmt.Fprintln(w, indent+"  Condition:")
		Dump(w, n.Condition, indent+"    ")
		fmt.Fprintln(w, indent+"  Then:")
		Dump(w, n.Consequence, indent+"    ")
		if n.Alternative != nil {
			fmt.Fprintln(w, indent+"  Else:")
			Dump(w, n.Alternative, indent+"    ")
		}

	case *LoopStatement:
		fmt.Fprintln(w, indent+"Loop")
		fmt.Fprintln(w, indent+"  Condition:")
		Dump(w, n.Condition, indent+"    ")
		Dump(w, n.Body, indent+"  ")

	case *ReturnStatement:
		fmt.Fprintln(w, indent+"Return")
		if n.ReturnValue != nil {
			Dump(w, n.ReturnValue, indent+"  ")
		}

	case *BlockStatement:
		fmt.Fprintln(w, indent+"Block")
		for _, stmt := range n.Statements {
			Dump(w, stmt, indent+"  ")
		}

	case *ExpressionStatement:
		fmt.Fprintln(w, indent+"ExpressionStatement")
		Dump(w, n.Expression, indent+"  ")

	case *NumberLiteral:
		fmt.Fprintln(w, indent+"Number:", n.Token.Literal)

	case *StringLiteral:
		fmt.Fprintf(w, "%sString: %q\n", indent, n.Value)

	case *BooleanLiteral:
		fmt.Fprintln(w, indent+"Boolean:", n.Token.Literal)

	case *Identifier:
		fmt.Fprintf(w, "%sIdentifier: %s (%s)\n", indent, n.Value, n.Typ)

	case *BinaryExpression:
		fmt.Fprintln(w, indent+"Binary:", n.Operator)
		Dump(w, n.Left, indent+"  ")
		Dump(w, n.Right, indent+"  ")

	case *UnaryExpression:
		fmt.Fprintln(w, indent+"Unary:", n.Operator)
		Dump(w, n.Operand, indent+"  ")

	case *AssignmentExpression:
		fmt.Fprintln(w, indent+"Assignment:", n.Name.Value)
		Dump(w, n.Value, indent+"  ")

	case *CallExpression:
		fmt.Fprintln(w, indent+"Call:", n.Function.Value)
		for i, arg := range n.Arguments {
			fmt.Fprintf(w, "%s  Arg[%d]:\n", indent, i)
			Dump(w, arg, indent+"    ")
		}

	case *ArrayLiteral:
		fmt.Fprintln(w, indent+"Array")
		for _, e := range n.Elements {
			Dump(w, e, indent+"  ")
		}

	case *ObjectLiteral:
		fmt.Fprintln(w, indent+"Object")
		for _, m := range n.Members {
			fmt.Fprintln(w, indent+"  Member:", m.Key.Literal)
			Dump(w, m.Value, indent+"    ")
		}

	case *IndexExpression:
		fmt.Fprintln(w, indent+"Index:", n.Left.Value)
		Dump(w, n.Index, indent+"  ")

	case *GroupedExpression:
		fmt.Fprintln(w, indent+"Grouped")
		Dump(w, n.Expression, indent+"  ")

	default:
		fmt.Fprintf(w, "%s<unknown node type: %T>\n", indent, n)
	}
}
