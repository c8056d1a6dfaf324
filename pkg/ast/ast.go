// Package ast defines the syntax tree for parsed Slate programs. The variant
// sets are small and fixed, so the node shapes are hand-declared; evaluation
// dispatches by exhaustive type switch over them.
package ast

import "github.com/slatelang/slate/pkg/token"

// Expr is the interface for all expression nodes. Each node owns its
// sub-expressions exclusively; the parser never shares subtrees.
type Expr interface {
	exprNode()
}

// Literal represents a literal value: nil, bool, float64, or string.
type Literal struct {
	Value any
}

// Grouping represents a parenthesized expression.
type Grouping struct {
	Inner Expr
}

// Unary represents a prefix operation (e.g., -x, !x).
type Unary struct {
	Op    token.Token
	Right Expr
}

// Binary represents an arithmetic, comparison, or equality operation.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Logical represents a short-circuiting "and"/"or" operation. It is kept
// apart from Binary because its right operand is evaluated conditionally.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Variable represents a variable reference.
type Variable struct {
	Name token.Token
}

// Assign represents an assignment to an existing variable.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	stmtNode()
}

// Expression represents an expression evaluated for its side effects.
type Expression struct {
	Expr Expr
}

// Print represents a print statement.
type Print struct {
	Expr Expr
}

// Var represents a variable declaration. Initializer is nil when the
// declaration has no "= expression" part.
type Var struct {
	Name        token.Token
	Initializer Expr
}

// Block represents a braced statement list executed in a child scope.
type Block struct {
	Statements []Stmt
}

// If represents a conditional. Else is nil when there is no else branch.
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (*Expression) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Var) stmtNode()        {}
func (*Block) stmtNode()      {}
func (*If) stmtNode()         {}
