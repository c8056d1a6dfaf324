package syntax

import (
	"strings"
	"testing"

	"github.com/slatelang/slate/pkg/diag"
	"github.com/slatelang/slate/pkg/token"
)

func scan(t *testing.T, source string) ([]token.Token, *diag.Collect) {
	t.Helper()
	rep := diag.NewCollect()
	tokens := NewScanner(source, rep).Scan()
	return tokens, rep
}

func tokenTypes(tokens []token.Token) []token.Type {
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanOperators(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Type
	}{
		{"(", []token.Type{token.LeftParen, token.EOF}},
		{"){},.-+;*/", []token.Type{
			token.RightParen, token.LeftBrace, token.RightBrace, token.Comma,
			token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
			token.Slash, token.EOF,
		}},
		{"! != = == < <= > >=", []token.Type{
			token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
			token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
			token.EOF,
		}},
		// greedy matching: no space between
		{"==!=<=>=", []token.Type{
			token.EqualEqual, token.BangEqual, token.LessEqual, token.GreaterEqual,
			token.EOF,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, rep := scan(t, tt.input)
			if rep.HadError() {
				t.Fatalf("unexpected errors: %v", rep.Errors)
			}
			got := tokenTypes(tokens)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	tokens, rep := scan(t, "var foo = nil; if (true and false) print _bar2;")
	if rep.HadError() {
		t.Fatalf("unexpected errors: %v", rep.Errors)
	}

	want := []token.Type{
		token.Var, token.Identifier, token.Equal, token.Nil, token.Semicolon,
		token.If, token.LeftParen, token.True, token.And, token.False,
		token.RightParen, token.Print, token.Identifier, token.Semicolon,
		token.EOF,
	}
	got := tokenTypes(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}

	if tokens[1].Lexeme != "foo" {
		t.Errorf("identifier lexeme: got %q, want %q", tokens[1].Lexeme, "foo")
	}
	if tokens[12].Lexeme != "_bar2" {
		t.Errorf("identifier lexeme: got %q, want %q", tokens[12].Lexeme, "_bar2")
	}
}

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.14", 3.14},
		{"123.456", 123.456},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, rep := scan(t, tt.input)
			if rep.HadError() {
				t.Fatalf("unexpected errors: %v", rep.Errors)
			}
			if tokens[0].Type != token.Number {
				t.Fatalf("got %s, want NUMBER", tokens[0].Type)
			}
			if got := tokens[0].Literal.(float64); got != tt.want {
				t.Errorf("literal: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanTrailingDotNotPartOfNumber(t *testing.T) {
	tokens, rep := scan(t, "123.")
	if rep.HadError() {
		t.Fatalf("unexpected errors: %v", rep.Errors)
	}

	want := []token.Type{token.Number, token.Dot, token.EOF}
	got := tokenTypes(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if num := tokens[0].Literal.(float64); num != 123 {
		t.Errorf("literal: got %v, want 123", num)
	}
}

func TestScanStrings(t *testing.T) {
	tokens, rep := scan(t, `"hello world"`)
	if rep.HadError() {
		t.Fatalf("unexpected errors: %v", rep.Errors)
	}
	if tokens[0].Type != token.String {
		t.Fatalf("got %s, want STRING", tokens[0].Type)
	}
	if got := tokens[0].Literal.(string); got != "hello world" {
		t.Errorf("literal: got %q, want %q", got, "hello world")
	}
	if tokens[0].Lexeme != `"hello world"` {
		t.Errorf("lexeme: got %q", tokens[0].Lexeme)
	}
}

func TestScanMultilineStringTracksLine(t *testing.T) {
	tokens, rep := scan(t, "\"a\nb\" x")
	if rep.HadError() {
		t.Fatalf("unexpected errors: %v", rep.Errors)
	}
	// the identifier after the string sits on line 2
	if tokens[1].Line != 2 {
		t.Errorf("identifier line: got %d, want 2", tokens[1].Line)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	tokens, rep := scan(t, `print "oops`)
	if len(rep.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", rep.Errors)
	}
	if !strings.Contains(rep.Errors[0], "Unterminated string.") {
		t.Errorf("unexpected message: %s", rep.Errors[0])
	}

	// partial token dropped: only print and EOF remain
	want := []token.Type{token.Print, token.EOF}
	got := tokenTypes(tokens)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	tokens, rep := scan(t, "var x = 1 @ 2;")
	if len(rep.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", rep.Errors)
	}
	if !strings.Contains(rep.Errors[0], "Unexpected character") {
		t.Errorf("unexpected message: %s", rep.Errors[0])
	}

	// scanning continues past the bad character
	got := tokenTypes(tokens)
	want := []token.Type{
		token.Var, token.Identifier, token.Equal, token.Number,
		token.Number, token.Semicolon, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanComments(t *testing.T) {
	tokens, rep := scan(t, "1 // comment to end of line\n2")
	if rep.HadError() {
		t.Fatalf("unexpected errors: %v", rep.Errors)
	}
	got := tokenTypes(tokens)
	want := []token.Type{token.Number, token.Number, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if tokens[1].Line != 2 {
		t.Errorf("second number line: got %d, want 2", tokens[1].Line)
	}
}

func TestScanLineNumbers(t *testing.T) {
	tokens, rep := scan(t, "1\n2\n\n3")
	if rep.HadError() {
		t.Fatalf("unexpected errors: %v", rep.Errors)
	}
	wantLines := []int{1, 2, 4, 4} // three numbers plus EOF
	for i, tok := range tokens {
		if tok.Line != wantLines[i] {
			t.Errorf("token %d (%s): line %d, want %d", i, tok.Type, tok.Line, wantLines[i])
		}
	}
}

// Lexemes appear in source order: walking the source with each token's
// lexeme in turn reproduces the scanned substrings.
func TestScanLexemesReproduceSource(t *testing.T) {
	source := "var answer = (1 + 2.5) * 4; // trailing\nprint answer <= 14;"
	tokens, rep := scan(t, source)
	if rep.HadError() {
		t.Fatalf("unexpected errors: %v", rep.Errors)
	}

	cursor := 0
	for _, tok := range tokens {
		if tok.Type == token.EOF {
			continue
		}
		idx := strings.Index(source[cursor:], tok.Lexeme)
		if idx < 0 {
			t.Fatalf("lexeme %q not found in source after offset %d", tok.Lexeme, cursor)
		}
		cursor += idx + len(tok.Lexeme)
	}
}
