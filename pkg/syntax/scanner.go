// Package syntax implements the Slate front end: the scanner that turns
// source text into tokens and the recursive descent parser that turns
// tokens into a syntax tree.
package syntax

import (
	"fmt"
	"strconv"

	"github.com/slatelang/slate/pkg/diag"
	"github.com/slatelang/slate/pkg/token"
)

// Scanner tokenizes Slate source text in a single left-to-right pass.
// Lexical errors are reported through the diagnostic sink and scanning
// continues, so one bad character does not hide later errors.
type Scanner struct {
	source   string
	reporter diag.Reporter
	tokens   []token.Token

	start   int
	current int
	line    int
}

var keywords = map[string]token.Type{
	"and":    token.And,
	"class":  token.Class,
	"else":   token.Else,
	"false":  token.False,
	"for":    token.For,
	"fun":    token.Fun,
	"if":     token.If,
	"nil":    token.Nil,
	"or":     token.Or,
	"print":  token.Print,
	"return": token.Return,
	"super":  token.Super,
	"this":   token.This,
	"true":   token.True,
	"var":    token.Var,
	"while":  token.While,
}

// NewScanner creates a scanner for the given source text.
func NewScanner(source string, reporter diag.Reporter) *Scanner {
	return &Scanner{source: source, reporter: reporter, line: 1}
}

// Scan tokenizes the entire input. The returned sequence always ends with
// a synthetic EOF token at the final line.
func (s *Scanner) Scan() []token.Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.Token{Type: token.EOF, Line: s.line})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()

	switch c {
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '-':
		s.addToken(token.Minus)
	case '+':
		s.addToken(token.Plus)
	case ';':
		s.addToken(token.Semicolon)
	case '*':
		s.addToken(token.Star)

	// two-character operators match before their single-character forms
	case '!':
		if s.match('=') {
			s.addToken(token.BangEqual)
		} else {
			s.addToken(token.Bang)
		}
	case '=':
		if s.match('=') {
			s.addToken(token.EqualEqual)
		} else {
			s.addToken(token.Equal)
		}
	case '<':
		if s.match('=') {
			s.addToken(token.LessEqual)
		} else {
			s.addToken(token.Less)
		}
	case '>':
		if s.match('=') {
			s.addToken(token.GreaterEqual)
		} else {
			s.addToken(token.Greater)
		}

	case '/':
		if s.match('/') {
			// line comment, no token produced
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(token.Slash)
		}

	case ' ', '\t', '\r':
		// whitespace discarded

	case '\n':
		s.line++

	case '"':
		s.string()

	default:
		if isDigit(c) {
			s.number()
		} else if isAlpha(c) {
			s.identifier()
		} else {
			s.reporter.ReportError(s.line, fmt.Sprintf("Unexpected character %q.", string(c)))
		}
	}
}

// string scans from the opening quote to the next quote. There is no
// escape-sequence support. An unterminated string is reported and the
// partial token dropped.
func (s *Scanner) string() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.reporter.ReportError(s.line, "Unterminated string.")
		return
	}

	s.advance() // closing quote
	s.addLiteral(token.String, s.source[s.start+1:s.current-1])
}

// number scans a run of digits with an optional fractional part. The dot is
// consumed only when followed by another digit, so "123." scans as the
// number 123 and a Dot token.
func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	num, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addLiteral(token.Number, num)
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	kind, ok := keywords[text]
	if !ok {
		kind = token.Identifier
	}
	s.addToken(kind)
}

func (s *Scanner) addToken(kind token.Type) {
	s.addLiteral(kind, nil)
}

func (s *Scanner) addLiteral(kind token.Type, literal any) {
	s.tokens = append(s.tokens, token.Token{
		Type:    kind,
		Lexeme:  s.source[s.start:s.current],
		Literal: literal,
		Line:    s.line,
	})
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
