package ast

import (
	"testing"

	"github.com/slatelang/slate/pkg/token"
)

func num(v float64) *Literal { return &Literal{Value: v} }

func op(t token.Type, lexeme string) token.Token {
	return token.Token{Type: t, Lexeme: lexeme, Line: 1}
}

func ident(name string) token.Token {
	return token.Token{Type: token.Identifier, Lexeme: name, Line: 1}
}

func TestPrintExpr(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"number", num(2), "2"},
		{"fractional number", num(2.5), "2.5"},
		{"string is quoted", &Literal{Value: "hi"}, `"hi"`},
		{"nil", &Literal{Value: nil}, "nil"},
		{"bool", &Literal{Value: true}, "true"},
		{"variable", &Variable{Name: ident("x")}, "x"},
		{
			"binary",
			&Binary{Left: num(1), Op: op(token.Plus, "+"), Right: &Binary{Left: num(2), Op: op(token.Star, "*"), Right: num(3)}},
			"(+ 1 (* 2 3))",
		},
		{"unary", &Unary{Op: op(token.Minus, "-"), Right: num(1)}, "(- 1)"},
		{"grouping", &Grouping{Inner: num(4)}, "(group 4)"},
		{
			"logical",
			&Logical{Left: &Literal{Value: true}, Op: op(token.Or, "or"), Right: &Literal{Value: false}},
			"(or true false)",
		},
		{"assign", &Assign{Name: ident("a"), Value: num(7)}, "(= a 7)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrintExpr(tt.expr); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPrintStmt(t *testing.T) {
	tests := []struct {
		name string
		stmt Stmt
		want string
	}{
		{"expression", &Expression{Expr: num(1)}, "(expr 1)"},
		{"print", &Print{Expr: num(1)}, "(print 1)"},
		{"var without initializer", &Var{Name: ident("x")}, "(var x)"},
		{"var with initializer", &Var{Name: ident("x"), Initializer: num(3)}, "(var x 3)"},
		{
			"block",
			&Block{Statements: []Stmt{&Print{Expr: num(1)}, &Print{Expr: num(2)}}},
			"(block (print 1) (print 2))",
		},
		{
			"if without else",
			&If{Condition: &Variable{Name: ident("c")}, Then: &Print{Expr: num(1)}},
			"(if c (print 1))",
		},
		{
			"if with else",
			&If{Condition: &Variable{Name: ident("c")}, Then: &Print{Expr: num(1)}, Else: &Print{Expr: num(2)}},
			"(if c (print 1) (print 2))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrintStmt(tt.stmt); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPrintProgram(t *testing.T) {
	program := []Stmt{
		&Var{Name: ident("x"), Initializer: num(1)},
		&Print{Expr: &Variable{Name: ident("x")}},
	}
	want := "(var x 1)\n(print x)"
	if got := PrintProgram(program); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
