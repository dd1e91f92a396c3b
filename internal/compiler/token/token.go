package token

type TokenType string

const (
	// Keywords
	TokenBanao  TokenType = "BANAO"  // banao - variable declaration
	TokenKaam   TokenType = "KAAM"   // kaam - function declaration
	TokenAgar   TokenType = "AGAR"   // agar - if
	TokenWarnah TokenType = "WARNAH" // warnah - else
	TokenDaura  TokenType = "DAURA"  // daura - loop
	TokenWapas  TokenType = "WAPAS"  // wapas - return
	TokenDekh   TokenType = "DEKH"   // dekh - print builtin
	TokenLou    TokenType = "LOU"    // lou - read-line builtin
	TokenHaan   TokenType = "HAAN"   // haan - true
	TokenNa     TokenType = "NA"     // na - false
	TokenBand   TokenType = "BAND"   // band - exit builtin

	// Literals & Identifiers
	TokenNumber TokenType = "NUMBER" // 42, 3.14
	TokenString TokenType = "STRING" // '...' or "..."
	TokenIdent  TokenType = "IDENT"

	// Operators
	TokenPlus        TokenType = "PLUS"         // +
	TokenMinus       TokenType = "MINUS"        // -
	TokenAsterisk    TokenType = "ASTERISK"     // *
	TokenSlash       TokenType = "SLASH"        // /
	TokenPercent     TokenType = "PERCENT"      // %
	TokenAssign      TokenType = "ASSIGN"       // =
	TokenPlusAssign  TokenType = "PLUS_ASSIGN"  // +=
	TokenMinusAssign TokenType = "MINUS_ASSIGN" // -=
	TokenStarAssign  TokenType = "STAR_ASSIGN"  // *=
	TokenSlashAssign TokenType = "SLASH_ASSIGN" // /=
	TokenEq          TokenType = "EQ"           // ==
	TokenNotEq       TokenType = "NOT_EQ"       // !=
	TokenLt          TokenType = "LT"           // <
	TokenGt          TokenType = "GT"           // >
	TokenLte         TokenType = "LTE"          // <=
	TokenGte         TokenType = "GTE"          // >=
	TokenAnd         TokenType = "AND"          // &&
	TokenOr          TokenType = "OR"           // ||
	TokenBang        TokenType = "BANG"         // !

	// Delimiters
	TokenLParen    TokenType = "LPAREN"    // (
	TokenRParen    TokenType = "RPAREN"    // )
	TokenLBrace    TokenType = "LBRACE"    // {
	TokenRBrace    TokenType = "RBRACE"    // }
	TokenLBracket  TokenType = "LBRACKET"  // [
	TokenRBracket  TokenType = "RBRACKET"  // ]
	TokenSemicolon TokenType = "SEMICOLON" // ;
	TokenComma     TokenType = "COMMA"     // ,
	TokenColon     TokenType = "COLON"     // :
	TokenDot       TokenType = "DOT"       // .

	// Special
	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL" // carries the offending character
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// keywords maps identifier strings to their corresponding token types.
// Only a subset of builtin names are keywords; the rest (nikal, abs, pow,
// ...) stay plain identifiers and resolve through the global scope.
var keywords = map[string]TokenType{
	"banao":  TokenBanao,
	"kaam":   TokenKaam,
	"agar":   TokenAgar,
	"warnah": TokenWarnah,
	"daura":  TokenDaura,
	"wapas":  TokenWapas,
	"dekh":   TokenDekh,
	"lou":    TokenLou,
	"haan":   TokenHaan,
	"na":     TokenNa,
	"band":   TokenBand,
}

// LookupIdent checks if an identifier is a keyword, returning the keyword's
// token type or TokenIdent if it's not a keyword.
func LookupIdent(ident string) TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return TokenIdent
}
