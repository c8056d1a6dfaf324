package syntax

import (
	"fmt"

	"github.com/slatelang/slate/pkg/ast"
	"github.com/slatelang/slate/pkg/diag"
	"github.com/slatelang/slate/pkg/token"
)

// MaxNestingDepth bounds recursion through the grammar. Every production
// that re-enters itself counts against it: expression grouping, unary
// chains, chained assignment, and statement nesting through blocks and if
// branches. Parse recursion (and the evaluator recursion that mirrors the
// tree) stays within the native stack.
const MaxNestingDepth = 200

// Parser is a recursive descent parser with one-token lookahead.
//
// Grammar, lowest to highest precedence:
//
//	program     := declaration* EOF
//	declaration := "var" IDENT ("=" expression)? ";" | statement
//	statement   := ifStmt | printStmt | block | exprStmt
//	expression  := assignment
//	assignment  := IDENT "=" assignment | logicOr
//	logicOr     := logicAnd ("or" logicAnd)*
//	logicAnd    := equality ("and" equality)*
//	equality    := comparison (("!=" | "==") comparison)*
//	comparison  := term ((">" | ">=" | "<" | "<=") term)*
//	term        := factor (("-" | "+") factor)*
//	factor      := unary (("/" | "*") unary)*
//	unary       := ("!" | "-") unary | primary
//	primary     := NUMBER | STRING | "true" | "false" | "nil" | IDENT | "(" expression ")"
//
// Productions return an explicit error instead of panicking; declaration
// is the only place that recovers, by synchronizing to the next statement
// boundary and continuing, so one malformed statement does not hide
// independent errors later in the source.
type Parser struct {
	tokens   []token.Token
	reporter diag.Reporter

	pos     int
	depth   int
	tooDeep bool
}

// parseError is a local parse failure carrying the token it occurred at.
// It propagates up to declaration, where recovery happens.
type parseError struct {
	tok token.Token
	msg string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error at %q: %s", e.tok.Lexeme, e.msg)
}

// NewParser creates a parser over a scanned token sequence.
func NewParser(tokens []token.Token, reporter diag.Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse consumes the whole token sequence and returns the program
// statements in source order. Statements that failed to parse are reported
// and omitted; the caller must not execute the program if the reporter saw
// any static error.
func (p *Parser) Parse() []ast.Stmt {
	var program []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			program = append(program, stmt)
		}
	}
	return program
}

// declaration parses one declaration or statement, recovering from parse
// failures by panic-mode synchronization. Returns nil when the declaration
// could not be parsed.
func (p *Parser) declaration() ast.Stmt {
	var stmt ast.Stmt
	var err error
	if p.match(token.Var) {
		stmt, err = p.varDeclaration()
	} else {
		stmt, err = p.statement()
	}
	if err != nil {
		if !p.tooDeep {
			p.report(err)
		}
		p.synchronize()
		return nil
	}
	return stmt
}

// nestingExceeded reports the depth overflow once and fails the current
// production. The overflow is terminal: input this deeply nested has no
// statement boundary worth synchronizing to, so the rest is discarded
// without further diagnostics.
func (p *Parser) nestingExceeded(msg string) error {
	if !p.tooDeep {
		p.tooDeep = true
		p.reportAt(p.peek(), msg)
	}
	return p.errorAt(p.peek(), msg)
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.Var{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxNestingDepth {
		return nil, p.nestingExceeded("Statement nesting too deep.")
	}

	switch {
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Statements: stmts}, nil
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Condition: condition, Then: then, Else: elseBranch}, nil
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.Print{Expr: value}, nil
}

// block parses declarations until the closing brace. Each inner
// declaration recovers on its own, so a bad statement inside a block does
// not abandon the rest of the block.
func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if _, err := p.consume(token.RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.Expression{Expr: expr}, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxNestingDepth {
		return nil, p.nestingExceeded("Expression nesting too deep.")
	}
	return p.assignment()
}

// assignment is right-associative via direct recursion. An invalid target
// is a recoverable semantic check: the error is reported but the parsed
// left-hand expression is still returned.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		equals := p.previous()
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > MaxNestingDepth {
			return nil, p.nestingExceeded("Expression nesting too deep.")
		}

		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}, nil
		}
		p.reportAt(equals, "Invalid assignment target.")
	}

	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}

	for p.match(token.Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = &ast.Logical{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) and() (ast.Expr, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}

	for p.match(token.And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = &ast.Logical{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) term() (ast.Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > MaxNestingDepth {
			return nil, p.nestingExceeded("Expression nesting too deep.")
		}

		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: false}, nil
	case p.match(token.True):
		return &ast.Literal{Value: true}, nil
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}, nil
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: expr}, nil
	default:
		return nil, p.errorAt(p.peek(), "Expect expression.")
	}
}

// synchronize discards tokens until a likely statement boundary: just past
// a semicolon, or just before a statement-starting keyword. After a depth
// overflow it discards the rest of the input instead.
func (p *Parser) synchronize() {
	if p.tooDeep {
		p.pos = len(p.tokens) - 1
		return
	}

	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.Semicolon {
			return
		}

		switch p.peek().Type {
		case token.Class, token.Fun, token.Var, token.For,
			token.If, token.While, token.Print, token.Return:
			return
		}

		p.advance()
	}
}

// consume advances over a token of the expected type or fails.
func (p *Parser) consume(tt token.Type, msg string) (token.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(p.peek(), msg)
}

func (p *Parser) errorAt(tok token.Token, msg string) error {
	return &parseError{tok: tok, msg: msg}
}

// report sends a parse failure to the diagnostic sink with its source
// location. Each failure is reported exactly once.
func (p *Parser) report(err error) {
	if pe, ok := err.(*parseError); ok {
		p.reportAt(pe.tok, pe.msg)
		return
	}
	p.reporter.ReportError(0, err.Error())
}

func (p *Parser) reportAt(tok token.Token, msg string) {
	if tok.Type == token.EOF {
		p.reporter.ReportError(tok.Line, "at end: "+msg)
	} else {
		p.reporter.ReportError(tok.Line, fmt.Sprintf("at '%s': %s", tok.Lexeme, msg))
	}
}

func (p *Parser) match(types ...token.Type) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(tt token.Type) bool {
	return p.peek().Type == tt
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}
