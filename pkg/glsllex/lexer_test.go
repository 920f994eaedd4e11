package glsllex

import "testing"

func TestNextToken(t *testing.T) {
	input := `uniform float a; void main() { a += 1.0; }`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{KwUniform, "uniform"},
		{Ident, "float"},
		{Ident, "a"},
		{Semicolon, ";"},
		{KwVoid, "void"},
		{Ident, "main"},
		{LParen, "("},
		{RParen, ")"},
		{LBrace, "{"},
		{Ident, "a"},
		{PlusAssign, "+="},
		{FloatLiteral, "1.0"},
		{Semicolon, ";"},
		{RBrace, "}"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestHiddenChannelCollectsComments(t *testing.T) {
	l := New("// hello\nint x;")
	tok := l.NextToken()
	if tok.Type != Ident || tok.Literal != "int" {
		t.Fatalf("expected leading IDENT int, got %v %q", tok.Type, tok.Literal)
	}
	hidden := l.PendingHidden()
	if len(hidden) < 2 {
		t.Fatalf("expected comment + newline trivia before first token, got %d", len(hidden))
	}
	if hidden[0].Type != LineComment || hidden[0].Literal != "// hello" {
		t.Fatalf("expected line comment trivia, got %v %q", hidden[0].Type, hidden[0].Literal)
	}
}

func TestVersionDirectiveIsDefaultChannel(t *testing.T) {
	l := New("#version 330 core\nvoid main(){}")
	tok := l.NextToken()
	if tok.Type != HashVersion {
		t.Fatalf("expected #version on default channel, got %v", tok.Type)
	}
	if tok.Literal != "#version 330 core" {
		t.Fatalf("unexpected literal %q", tok.Literal)
	}
}

func TestNumberLiteralSuffixes(t *testing.T) {
	tests := []struct {
		src  string
		typ  TokenType
		lit  string
	}{
		{"7u", UintLiteral, "7u"},
		{"1.0", FloatLiteral, "1.0"},
		{"1.0lf", DoubleLiteral, "1.0lf"},
		{"42", IntLiteral, "42"},
	}
	for _, tt := range tests {
		l := New(tt.src)
		tok := l.NextToken()
		if tok.Type != tt.typ || tok.Literal != tt.lit {
			t.Errorf("New(%q): got %v %q, want %v %q", tt.src, tok.Type, tok.Literal, tt.typ, tt.lit)
		}
	}
}

func TestTokenFilterCanDropTokens(t *testing.T) {
	l := New("a b c")
	l.SetTokenFilter(func(tok Token) (Token, bool) {
		return tok, tok.Literal != "b"
	})
	var got []string
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		got = append(got, tok.Literal)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("expected [a c] with b filtered out, got %v", got)
	}
}
