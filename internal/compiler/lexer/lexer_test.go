package lexer

import (
	"testing"

	"github.com/ourlang/ourlang/internal/compiler/token"
)

func TestNextToken(t *testing.T) {
	input := `banao x = 5;
kaam add(a, b) {
	wapas a + b;
}
agar (x <= 10 && haan) {
	x += 1;
} warnah {
	dekh('bye');
}
daura (x != 0 || na) {
	x = x - 1;
}
banao arr = [1, 2.5];
banao obj = {naam: 'ali'};
arr[0] * 2 / 3 % 4;
!x >= 1 < 2 > 3 -= 1 *= 2 /= 3 == lou band . 9
`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.TokenBanao, "banao"},
		{token.TokenIdent, "x"},
		{token.TokenAssign, "="},
		{token.TokenNumber, "5"},
		{token.TokenSemicolon, ";"},
		{token.TokenKaam, "kaam"},
		{token.TokenIdent, "add"},
		{token.TokenLParen, "("},
		{token.TokenIdent, "a"},
		{token.TokenComma, ","},
		{token.TokenIdent, "b"},
		{token.TokenRParen, ")"},
		{token.TokenLBrace, "{"},
		{token.TokenWapas, "wapas"},
		{token.TokenIdent, "a"},
		{token.TokenPlus, "+"},
		{token.TokenIdent, "b"},
		{token.TokenSemicolon, ";"},
		{token.TokenRBrace, "}"},
		{token.TokenAgar, "agar"},
		{token.TokenLParen, "("},
		{token.TokenIdent, "x"},
		{token.TokenLte, "<="},
		{token.TokenNumber, "10"},
		{token.TokenAnd, "&&"},
		{token.TokenHaan, "haan"},
		{token.TokenRParen, ")"},
		{token.TokenLBrace, "{"},
		{token.TokenIdent, "x"},
		{token.TokenPlusAssign, "+="},
		{token.TokenNumber, "1"},
		{token.TokenSemicolon, ";"},
		{token.TokenRBrace, "}"},
		{token.TokenWarnah, "warnah"},
		{token.TokenLBrace, "{"},
		{token.TokenDekh, "dekh"},
		{token.TokenLParen, "("},
		{token.TokenString, "bye"},
		{token.TokenRParen, ")"},
		{token.TokenSemicolon, ";"},
		{token.TokenRBrace, "}"},
		{token.TokenDaura, "daura"},
		{token.TokenLParen, "("},
		{token.TokenIdent, "x"},
		{token.TokenNotEq, "!="},
		{token.TokenNumber, "0"},
		{token.TokenOr, "||"},
		{token.TokenNa, "na"},
		{token.TokenRParen, ")"},
		{token.TokenLBrace, "{"},
		{token.TokenIdent, "x"},
		{token.TokenAssign, "="},
		{token.TokenIdent, "x"},
		{token.TokenMinus, "-"},
		{token.TokenNumber, "1"},
		{token.TokenSemicolon, ";"},
		{token.TokenRBrace, "}"},
		{token.TokenBanao, "banao"},
		{token.TokenIdent, "arr"},
		{token.TokenAssign, "="},
		{token.TokenLBracket, "["},
		{token.TokenNumber, "1"},
		{token.TokenComma, ","},
		{token.TokenNumber, "2.5"},
		{token.TokenRBracket, "]"},
		{token.TokenSemicolon, ";"},
		{token.TokenBanao, "banao"},
		{token.TokenIdent, "obj"},
		{token.TokenAssign, "="},
		{token.TokenLBrace, "{"},
		{token.TokenIdent, "naam"},
		{token.TokenColon, ":"},
		{token.TokenString, "ali"},
		{token.TokenRBrace, "}"},
		{token.TokenSemicolon, ";"},
		{token.TokenIdent, "arr"},
		{token.TokenLBracket, "["},
		{token.TokenNumber, "0"},
		{token.TokenRBracket, "]"},
		{token.TokenAsterisk, "*"},
		{token.TokenNumber, "2"},
		{token.TokenSlash, "/"},
		{token.TokenNumber, "3"},
		{token.TokenPercent, "%"},
		{token.TokenNumber, "4"},
		{token.TokenSemicolon, ";"},
		{token.TokenBang, "!"},
		{token.TokenIdent, "x"},
		{token.TokenGte, ">="},
		{token.TokenNumber, "1"},
		{token.TokenLt, "<"},
		{token.TokenNumber, "2"},
		{token.TokenGt, ">"},
		{token.TokenNumber, "3"},
		{token.TokenMinusAssign, "-="},
		{token.TokenNumber, "1"},
		{token.TokenStarAssign, "*="},
		{token.TokenNumber, "2"},
		{token.TokenSlashAssign, "/="},
		{token.TokenNumber, "3"},
		{token.TokenEq, "=="},
		{token.TokenLou, "lou"},
		{token.TokenBand, "band"},
		{token.TokenDot, "."},
		{token.TokenNumber, "9"},
		{token.TokenEOF, ""},
	}

	l := NewLexer(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong type. expected=%q, got=%q (literal %q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	input := "banao x = 5;\nx = 6;"

	tests := []struct {
		line   int
		column int
	}{
		{1, 1},  // banao
		{1, 7},  // x
		{1, 9},  // =
		{1, 11}, // 5
		{1, 12}, // ;
		{2, 1},  // x
		{2, 3},  // =
		{2, 5},  // 6
		{2, 6},  // ;
	}

	l := NewLexer(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Line != tt.line || tok.Column != tt.column {
			t.Errorf("tests[%d] (%q) - expected position %d:%d, got=%d:%d",
				i, tok.Literal, tt.line, tt.column, tok.Line, tok.Column)
		}
	}
}

func TestCommentsSkipped(t *testing.T) {
	input := "// leading comment\nbanao x; // trailing\n// another\nx;"

	l := NewLexer(input)
	var kinds []token.TokenType
	for {
		tok := l.NextToken()
		if tok.Type == token.TokenEOF {
			break
		}
		kinds = append(kinds, tok.Type)
	}

	want := []token.TokenType{
		token.TokenBanao, token.TokenIdent, token.TokenSemicolon,
		token.TokenIdent, token.TokenSemicolon,
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d tokens, got=%d (%v)", len(want), len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: expected=%q, got=%q", i, want[i], kinds[i])
		}
	}
}

func TestStringQuoteVariants(t *testing.T) {
	l := NewLexer(`'single' "double" 'mixed "inner"'`)

	for i, want := range []string{"single", "double", `mixed "inner"`} {
		tok := l.NextToken()
		if tok.Type != token.TokenString {
			t.Fatalf("tests[%d] - expected STRING, got=%q", i, tok.Type)
		}
		if tok.Literal != want {
			t.Errorf("tests[%d] - expected literal %q, got=%q", i, want, tok.Literal)
		}
	}
}

func TestUnterminatedStringConsumesToEOF(t *testing.T) {
	l := NewLexer("'never closed")

	tok := l.NextToken()
	if tok.Type != token.TokenString {
		t.Fatalf("expected STRING, got=%q", tok.Type)
	}
	if tok.Literal != "never closed" {
		t.Errorf("expected literal %q, got=%q", "never closed", tok.Literal)
	}
	if next := l.NextToken(); next.Type != token.TokenEOF {
		t.Errorf("expected EOF after unterminated string, got=%q", next.Type)
	}
}

func TestNumberWithMultipleDots(t *testing.T) {
	// The lexer performs no validation; "1.2.3" is one token and the
	// parser rejects it later.
	l := NewLexer("1.2.3")

	tok := l.NextToken()
	if tok.Type != token.TokenNumber {
		t.Fatalf("expected NUMBER, got=%q", tok.Type)
	}
	if tok.Literal != "1.2.3" {
		t.Errorf("expected literal %q, got=%q", "1.2.3", tok.Literal)
	}
}

func TestOperatorAtEndOfInput(t *testing.T) {
	// Lookahead must not read past the buffer when an operator character
	// is the last byte of the source.
	tests := []struct {
		input    string
		lastType token.TokenType
		lastLit  string
	}{
		{"1 +", token.TokenPlus, "+"},
		{"x =", token.TokenAssign, "="},
		{"x <", token.TokenLt, "<"},
		{"x !", token.TokenBang, "!"},
		{"a &", token.TokenIllegal, "&"},
		{"a |", token.TokenIllegal, "|"},
	}

	for _, tt := range tests {
		l := NewLexer(tt.input)
		var last token.Token
		for {
			tok := l.NextToken()
			if tok.Type == token.TokenEOF {
				break
			}
			last = tok
		}
		if last.Type != tt.lastType || last.Literal != tt.lastLit {
			t.Errorf("input %q: expected last token %q (%q), got=%q (%q)",
				tt.input, tt.lastType, tt.lastLit, last.Type, last.Literal)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := NewLexer("banao @ x;")

	l.NextToken() // banao
	tok := l.NextToken()
	if tok.Type != token.TokenIllegal {
		t.Fatalf("expected ILLEGAL, got=%q", tok.Type)
	}
	if tok.Literal != "@" {
		t.Errorf("expected the offending character %q, got=%q", "@", tok.Literal)
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := NewLexer("x")

	l.NextToken() // x
	for i := 0; i < 5; i++ {
		if tok := l.NextToken(); tok.Type != token.TokenEOF {
			t.Fatalf("call %d after exhaustion: expected EOF, got=%q", i, tok.Type)
		}
	}
}
