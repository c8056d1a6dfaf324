package runtime

import (
	"errors"
	"fmt"
	"io"

	"github.com/slatelang/slate/pkg/ast"
	"github.com/slatelang/slate/pkg/diag"
	"github.com/slatelang/slate/pkg/token"
	"github.com/slatelang/slate/pkg/types"
)

// Interp walks a parsed program and executes it against a scope chain.
// Output from print statements goes to the injected writer, one line per
// statement; the interpreter owns no buffering or terminal state.
type Interp struct {
	scope    *Scope
	out      io.Writer
	reporter diag.Reporter
}

// NewInterp creates an interpreter with a fresh global scope.
func NewInterp(out io.Writer, reporter diag.Reporter) *Interp {
	return &Interp{scope: NewScope(), out: out, reporter: reporter}
}

// Interpret executes the program's statements in order. The first runtime
// error aborts the remaining statements, is reported through the sink with
// the offending token's line, and leaves the interpreter reusable for the
// next input with its environment otherwise intact.
func (i *Interp) Interpret(program []ast.Stmt) {
	for _, stmt := range program {
		if err := i.execute(stmt); err != nil {
			var rerr *types.RuntimeError
			if errors.As(err, &rerr) {
				i.reporter.ReportRuntimeError(rerr.Line, rerr.Message)
			} else {
				i.reporter.ReportRuntimeError(0, err.Error())
			}
			return
		}
	}
}

func (i *Interp) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := i.evaluate(s.Expr)
		return err

	case *ast.Print:
		v, err := i.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, v.String())
		return nil

	case *ast.Var:
		value := types.Null
		if s.Initializer != nil {
			var err error
			value, err = i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.scope.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return i.executeBlock(s.Statements, i.scope.NewChildScope())

	case *ast.If:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return i.execute(s.Then)
		}
		if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil

	default:
		return fmt.Errorf("unsupported statement node type: %T", stmt)
	}
}

// executeBlock runs statements against the given scope, restoring the
// previous scope even when an error propagates out.
func (i *Interp) executeBlock(stmts []ast.Stmt, scope *Scope) error {
	prev := i.scope
	i.scope = scope
	defer func() { i.scope = prev }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interp) evaluate(expr ast.Expr) (types.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return i.evaluate(e.Inner)

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Logical:
		return i.evalLogical(e)

	case *ast.Variable:
		v, ok := i.scope.Get(e.Name.Lexeme)
		if !ok {
			return types.Null, undefinedVariable(e.Name)
		}
		return v, nil

	case *ast.Assign:
		value, err := i.evaluate(e.Value)
		if err != nil {
			return types.Null, err
		}
		if !i.scope.Assign(e.Name.Lexeme, value) {
			return types.Null, undefinedVariable(e.Name)
		}
		return value, nil

	default:
		return types.Null, fmt.Errorf("unsupported expression node type: %T", expr)
	}
}

func (i *Interp) evalUnary(e *ast.Unary) (types.Value, error) {
	operand, err := i.evaluate(e.Right)
	if err != nil {
		return types.Null, err
	}

	switch e.Op.Type {
	case token.Minus:
		if operand.Kind() != types.KindNumber {
			return types.Null, types.NewTypeError(e.Op.Line, "Operand must be a number.")
		}
		return types.NewNumber(-operand.AsNumber()), nil
	case token.Bang:
		return types.NewBool(!operand.Truthy()), nil
	default:
		return types.Null, fmt.Errorf("unsupported unary operator: %s", e.Op.Type)
	}
}

func (i *Interp) evalBinary(e *ast.Binary) (types.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return types.Null, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return types.Null, err
	}

	switch e.Op.Type {
	case token.Plus:
		return evalAdd(e.Op, left, right)
	case token.Minus:
		return evalArith(e.Op, left, right, func(a, b float64) float64 { return a - b })
	case token.Star:
		return evalArith(e.Op, left, right, func(a, b float64) float64 { return a * b })
	case token.Slash:
		// type-checked like the other arithmetic operators; division by
		// zero follows IEEE semantics and yields an infinity
		return evalArith(e.Op, left, right, func(a, b float64) float64 { return a / b })
	case token.Greater:
		return evalCompare(e.Op, left, right, func(a, b float64) bool { return a > b })
	case token.GreaterEqual:
		return evalCompare(e.Op, left, right, func(a, b float64) bool { return a >= b })
	case token.Less:
		return evalCompare(e.Op, left, right, func(a, b float64) bool { return a < b })
	case token.LessEqual:
		return evalCompare(e.Op, left, right, func(a, b float64) bool { return a <= b })
	case token.EqualEqual:
		return types.NewBool(left.Equal(right)), nil
	case token.BangEqual:
		return types.NewBool(!left.Equal(right)), nil
	default:
		return types.Null, fmt.Errorf("unsupported binary operator: %s", e.Op.Type)
	}
}

// evalLogical short-circuits: the left operand decides whether the right is
// evaluated at all, and operand values pass through unconverted.
func (i *Interp) evalLogical(e *ast.Logical) (types.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return types.Null, err
	}

	if e.Op.Type == token.Or {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func evalAdd(op token.Token, left, right types.Value) (types.Value, error) {
	if left.Kind() == types.KindNumber && right.Kind() == types.KindNumber {
		return types.NewNumber(left.AsNumber() + right.AsNumber()), nil
	}
	if left.Kind() == types.KindString && right.Kind() == types.KindString {
		return types.NewString(left.AsString() + right.AsString()), nil
	}
	return types.Null, types.NewTypeError(op.Line, "Operands must be two numbers or two strings.")
}

func evalArith(op token.Token, left, right types.Value, f func(a, b float64) float64) (types.Value, error) {
	if left.Kind() != types.KindNumber || right.Kind() != types.KindNumber {
		return types.Null, types.NewTypeError(op.Line, "Operands must be numbers.")
	}
	return types.NewNumber(f(left.AsNumber(), right.AsNumber())), nil
}

func evalCompare(op token.Token, left, right types.Value, f func(a, b float64) bool) (types.Value, error) {
	if left.Kind() != types.KindNumber || right.Kind() != types.KindNumber {
		return types.Null, types.NewTypeError(op.Line, "Operands must be numbers.")
	}
	return types.NewBool(f(left.AsNumber(), right.AsNumber())), nil
}

func undefinedVariable(name token.Token) *types.RuntimeError {
	return types.NewNameError(name.Line, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}

// literalValue converts a parsed literal into a runtime value.
func literalValue(v any) types.Value {
	switch val := v.(type) {
	case nil:
		return types.Null
	case bool:
		return types.NewBool(val)
	case float64:
		return types.NewNumber(val)
	case string:
		return types.NewString(val)
	default:
		// the scanner only produces the four literal kinds above
		return types.Null
	}
}
