package lexer

import "github.com/ourlang/ourlang/internal/compiler/token"

type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// readChar advances the lexer's position and updates the current character.
// It handles EOF and tracks line/column numbers.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL (EOF)
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else if l.ch != 0 {
		l.column++
	}
}

// peekChar returns the next character without consuming it. Returning 0 past
// the end of the buffer is what keeps multi-character operator lookahead safe
// when the operator character is the last byte of the source.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken returns the next token in the input. After the input is
// exhausted it returns EOF tokens indefinitely. The lexer itself never
// fails: unrecognized characters come back as TokenIllegal and are left for
// the parser to reject.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	startLine := l.line
	startCol := l.column

	switch l.ch {
	case 0:
		return token.Token{Type: token.TokenEOF, Literal: "", Line: startLine, Column: startCol}
	case '\'', '"':
		return l.readString(l.ch, startLine, startCol)
	case '+':
		return l.readOperator(token.TokenPlus, token.TokenPlusAssign, '=', startLine, startCol)
	case '-':
		return l.readOperator(token.TokenMinus, token.TokenMinusAssign, '=', startLine, startCol)
	case '*':
		return l.readOperator(token.TokenAsterisk, token.TokenStarAssign, '=', startLine, startCol)
	case '/':
		return l.readOperator(token.TokenSlash, token.TokenSlashAssign, '=', startLine, startCol)
	case '%':
		return l.single(token.TokenPercent, startLine, startCol)
	case '=':
		return l.readOperator(token.TokenAssign, token.TokenEq, '=', startLine, startCol)
	case '!':
		return l.readOperator(token.TokenBang, token.TokenNotEq, '=', startLine, startCol)
	case '<':
		return l.readOperator(token.TokenLt, token.TokenLte, '=', startLine, startCol)
	case '>':
		return l.readOperator(token.TokenGt, token.TokenGte, '=', startLine, startCol)
	case '&':
		return l.readOperator(token.TokenIllegal, token.TokenAnd, '&', startLine, startCol)
	case '|':
		return l.readOperator(token.TokenIllegal, token.TokenOr, '|', startLine, startCol)
	case '(':
		return l.single(token.TokenLParen, startLine, startCol)
	case ')':
		return l.single(token.TokenRParen, startLine, startCol)
	case '{':
		return l.single(token.TokenLBrace, startLine, startCol)
	case '}':
		return l.single(token.TokenRBrace, startLine, startCol)
	case '[':
		return l.single(token.TokenLBracket, startLine, startCol)
	case ']':
		return l.single(token.TokenRBracket, startLine, startCol)
	case ';':
		return l.single(token.TokenSemicolon, startLine, startCol)
	case ',':
		return l.single(token.TokenComma, startLine, startCol)
	case ':':
		return l.single(token.TokenColon, startLine, startCol)
	case '.':
		return l.single(token.TokenDot, startLine, startCol)
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(ident), Literal: ident, Line: startLine, Column: startCol}
		}
		if isDigit(l.ch) {
			return l.readNumber(startLine, startCol)
		}
		return l.single(token.TokenIllegal, startLine, startCol)
	}
}

// single emits a one-character token and consumes the character.
func (l *Lexer) single(tokenType token.TokenType, line, col int) token.Token {
	tok := token.Token{Type: tokenType, Literal: string(l.ch), Line: line, Column: col}
	l.readChar()
	return tok
}

// readOperator emits twoType when the current character is followed by
// follow, else oneType. oneType may be TokenIllegal for characters like '&'
// that are only legal doubled.
func (l *Lexer) readOperator(oneType, twoType token.TokenType, follow byte, line, col int) token.Token {
	if l.peekChar() == follow {
		lit := string(l.ch) + string(follow)
		l.readChar()
		l.readChar()
		return token.Token{Type: twoType, Literal: lit, Line: line, Column: col}
	}
	return l.single(oneType, line, col)
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString scans verbatim up to the next matching quote. There is no
// escape processing. An unterminated string consumes to end of input and
// still yields a string token with what was read.
func (l *Lexer) readString(quote byte, startLine, startCol int) token.Token {
	start := l.position + 1
	l.readChar() // consume opening quote

	for l.ch != quote && l.ch != 0 {
		l.readChar()
	}

	lit := l.input[start:l.position]
	if l.ch == quote {
		l.readChar() // consume closing quote
	}
	return token.Token{Type: token.TokenString, Literal: lit, Line: startLine, Column: startCol}
}

// readNumber accepts digits and decimal points with no validation, so
// "1.2.3" lexes as a single token. The parser rejects it there.
func (l *Lexer) readNumber(startLine, startCol int) token.Token {
	start := l.position
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	return token.Token{Type: token.TokenNumber, Literal: l.input[start:l.position], Line: startLine, Column: startCol}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
