package compiler

import "fmt"

// TokenKind identifies the category of a lexed token.
type TokenKind int

const (
	EOF TokenKind = iota // sentinel: end of input, returned indefinitely once reached

	// Literals
	IDENTIFIER
	INTLIT
	FLOATLIT
	STRINGLIT
	BOOLLIT

	// Keywords
	FN
	INT
	FLOAT
	BOOL
	STRING
	IF
	ELSE
	WHILE
	FOR
	RETURN

	// Paired delimiters
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET

	// Punctuation
	COMMA
	SEMICOLON

	// Operators
	ASSIGN       // =
	EQUALS       // ==
	NOT_EQ       // !=
	LESS         // <
	GREATER      // >
	LESS_EQ      // <=
	GREATER_EQ   // >=
	AND_LOGICAL  // &&
	OR_LOGICAL   // ||
	PLUS         // +
	MINUS        // -
	STAR         // *
	SLASH        // /
	PLUS_ASSIGN  // +=
	MINUS_ASSIGN // -=
	STAR_ASSIGN  // *=
	SLASH_ASSIGN // /=
	PLUS_PLUS    // ++
	MINUS_MINUS  // --

	// Error markers, never seen by the parser: Lex stops and reports an
	// error before either of these would be handed off.
	INVALID
	UNTERMINATED_STRING
)

var tokenNames = [...]string{
	EOF:                 "EOF",
	IDENTIFIER:          "IDENTIFIER",
	INTLIT:              "INTLIT",
	FLOATLIT:            "FLOATLIT",
	STRINGLIT:           "STRINGLIT",
	BOOLLIT:             "BOOLLIT",
	FN:                  "FN",
	INT:                 "INT",
	FLOAT:               "FLOAT",
	BOOL:                "BOOL",
	STRING:              "STRING",
	IF:                  "IF",
	ELSE:                "ELSE",
	WHILE:               "WHILE",
	FOR:                 "FOR",
	RETURN:              "RETURN",
	LPAREN:              "LPAREN",
	RPAREN:              "RPAREN",
	LBRACE:              "LBRACE",
	RBRACE:              "RBRACE",
	LBRACKET:            "LBRACKET",
	RBRACKET:            "RBRACKET",
	COMMA:               "COMMA",
	SEMICOLON:           "SEMICOLON",
	ASSIGN:              "ASSIGN",
	EQUALS:              "EQUALS",
	NOT_EQ:              "NOT_EQ",
	LESS:                "LESS",
	GREATER:             "GREATER",
	LESS_EQ:             "LESS_EQ",
	GREATER_EQ:          "GREATER_EQ",
	AND_LOGICAL:         "AND_LOGICAL",
	OR_LOGICAL:          "OR_LOGICAL",
	PLUS:                "PLUS",
	MINUS:               "MINUS",
	STAR:                "STAR",
	SLASH:               "SLASH",
	PLUS_ASSIGN:         "PLUS_ASSIGN",
	MINUS_ASSIGN:        "MINUS_ASSIGN",
	STAR_ASSIGN:         "STAR_ASSIGN",
	SLASH_ASSIGN:        "SLASH_ASSIGN",
	PLUS_PLUS:           "PLUS_PLUS",
	MINUS_MINUS:         "MINUS_MINUS",
	INVALID:             "INVALID",
	UNTERMINATED_STRING: "UNTERMINATED_STRING",
}

func (k TokenKind) String() string {
	if int(k) >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// keywords maps reserved words to their keyword kind. "true"/"false" are
// handled separately by the lexer since they lex as BOOLLIT, not a keyword.
var keywords = map[string]TokenKind{
	"fn":     FN,
	"int":    INT,
	"float":  FLOAT,
	"bool":   BOOL,
	"string": STRING,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"return": RETURN,
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind   TokenKind
	Lexeme string // exact source slice for identifiers, literals, and multi-form operators
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-12s %-14q line %d", t.Kind, t.Lexeme, t.Line)
}
