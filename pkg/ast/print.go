package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// PrintExpr renders an expression as a parenthesized prefix form, e.g.
// "1 + 2 * 3" becomes "(+ 1 (* 2 3))". Used by parser tests and the
// playground's tree view.
func PrintExpr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return formatLiteral(n.Value)
	case *Grouping:
		return "(group " + PrintExpr(n.Inner) + ")"
	case *Unary:
		return "(" + n.Op.Lexeme + " " + PrintExpr(n.Right) + ")"
	case *Binary:
		return "(" + n.Op.Lexeme + " " + PrintExpr(n.Left) + " " + PrintExpr(n.Right) + ")"
	case *Logical:
		return "(" + n.Op.Lexeme + " " + PrintExpr(n.Left) + " " + PrintExpr(n.Right) + ")"
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return "(= " + n.Name.Lexeme + " " + PrintExpr(n.Value) + ")"
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

// PrintStmt renders a statement in the same prefix form.
func PrintStmt(s Stmt) string {
	switch n := s.(type) {
	case *Expression:
		return "(expr " + PrintExpr(n.Expr) + ")"
	case *Print:
		return "(print " + PrintExpr(n.Expr) + ")"
	case *Var:
		if n.Initializer == nil {
			return "(var " + n.Name.Lexeme + ")"
		}
		return "(var " + n.Name.Lexeme + " " + PrintExpr(n.Initializer) + ")"
	case *Block:
		parts := make([]string, len(n.Statements))
		for i, st := range n.Statements {
			parts[i] = PrintStmt(st)
		}
		return "(block " + strings.Join(parts, " ") + ")"
	case *If:
		if n.Else == nil {
			return "(if " + PrintExpr(n.Condition) + " " + PrintStmt(n.Then) + ")"
		}
		return "(if " + PrintExpr(n.Condition) + " " + PrintStmt(n.Then) + " " + PrintStmt(n.Else) + ")"
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

// PrintProgram renders a whole program, one statement per line.
func PrintProgram(program []Stmt) string {
	parts := make([]string, len(program))
	for i, s := range program {
		parts[i] = PrintStmt(s)
	}
	return strings.Join(parts, "\n")
}

func formatLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return strconv.Quote(val)
	default:
		return fmt.Sprintf("%v", v)
	}
}
