// Package token defines the lexical token types produced by the Slate scanner.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int

const (
	// Single-character punctuation and operators
	LeftParen  Type = iota // (
	RightParen             // )
	LeftBrace              // {
	RightBrace             // }
	Comma                  // ,
	Dot                    // .
	Minus                  // -
	Plus                   // +
	Semicolon              // ;
	Slash                  // /
	Star                   // *

	// One- or two-character operators
	Bang         // !
	BangEqual    // !=
	Equal        // =
	EqualEqual   // ==
	Greater      // >
	GreaterEqual // >=
	Less         // <
	LessEqual    // <=

	// Literals
	Identifier // identifier (variable name)
	String     // string literal
	Number     // number literal

	// Keywords
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// Special
	EOF // end of input
)

// Token represents a single lexical token. Tokens are immutable once produced
// by the scanner.
type Token struct {
	Type    Type
	Lexeme  string // raw source text
	Literal any    // parsed value for Number (float64) and String (string)
	Line    int    // 1-based source line
}

// String returns a debug-friendly representation of the token.
func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s %q (%v)", t.Type, t.Lexeme, t.Literal)
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}

// String returns a debug-friendly representation of the token type.
func (t Type) String() string {
	switch t {
	case LeftParen:
		return "LPAREN"
	case RightParen:
		return "RPAREN"
	case LeftBrace:
		return "LBRACE"
	case RightBrace:
		return "RBRACE"
	case Comma:
		return "COMMA"
	case Dot:
		return "DOT"
	case Minus:
		return "MINUS"
	case Plus:
		return "PLUS"
	case Semicolon:
		return "SEMICOLON"
	case Slash:
		return "SLASH"
	case Star:
		return "STAR"
	case Bang:
		return "BANG"
	case BangEqual:
		return "BANG_EQUAL"
	case Equal:
		return "EQUAL"
	case EqualEqual:
		return "EQUAL_EQUAL"
	case Greater:
		return "GREATER"
	case GreaterEqual:
		return "GREATER_EQUAL"
	case Less:
		return "LESS"
	case LessEqual:
		return "LESS_EQUAL"
	case Identifier:
		return "IDENT"
	case String:
		return "STRING"
	case Number:
		return "NUMBER"
	case And:
		return "AND"
	case Class:
		return "CLASS"
	case Else:
		return "ELSE"
	case False:
		return "FALSE"
	case For:
		return "FOR"
	case Fun:
		return "FUN"
	case If:
		return "IF"
	case Nil:
		return "NIL"
	case Or:
		return "OR"
	case Print:
		return "PRINT"
	case Return:
		return "RETURN"
	case Super:
		return "SUPER"
	case This:
		return "THIS"
	case True:
		return "TRUE"
	case Var:
		return "VAR"
	case While:
		return "WHILE"
	case EOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}
