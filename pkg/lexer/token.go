package lexer

import (
	"fmt"
	"math/big"
)

// TokenType represents the classification of lexical tokens in the
// source language. Each token type corresponds to a specific
// syntactic element the parser can recognize and process.
type TokenType int

// Token type constants: one per variant of the language's fixed
// token alphabet, plus the two lexer-control tokens EOF and ILLEGAL.
const (
	// Special tokens for lexical analysis control.
	TOKEN_EOF     TokenType = iota // end of input
	TOKEN_ILLEGAL                  // unrecognized character

	// Literal value tokens.
	TOKEN_INTEGER // integer literal (128-bit signed)
	TOKEN_IDENT   // bare identifier
	TOKEN_WORD    // 'identifier symbolic atom

	// Grouping delimiters.
	TOKEN_LPAREN   // "("
	TOKEN_RPAREN   // ")"
	TOKEN_LBRACE   // "{"
	TOKEN_RBRACE   // "}"
	TOKEN_LBRACKET // "["
	TOKEN_RBRACKET // "]"

	// Prefix/structural operators.
	TOKEN_EXCLAM     // "!" print
	TOKEN_BAR        // "|"
	TOKEN_UNDERSCORE // "_"
	TOKEN_LAMBDA     // "λ" or "\"
	TOKEN_PERIOD     // "."
	TOKEN_DOLLAR     // "$" switch
	TOKEN_ARROW      // "->" or "→"

	// Arithmetic operators.
	TOKEN_PLUS       // "+"
	TOKEN_MINUS      // "-"
	TOKEN_ASTERISK   // "*"
	TOKEN_SLASH      // "/"
	TOKEN_CIRCUMFLEX // "^"

	// Comparison operators.
	TOKEN_EQUAL        // "="
	TOKEN_NOT_EQUAL    // "<>" / "!=" / "≠"
	TOKEN_LESS         // "<"
	TOKEN_GREATER      // ">"
	TOKEN_LESS_EQUAL   // "<=" / "⩽ ≦ ≤ ≯" / "!>"
	TOKEN_GREATER_EQUAL // ">=" / "⩾ ≧ ≥ ≮" / "!<"
)

// Token is a complete lexical unit from the source code: its
// classification, the literal text it was scanned from, an integer
// payload for TOKEN_INTEGER, and source position for error reporting.
type Token struct {
	Type    TokenType
	Literal string
	Int     *big.Int // populated only for TOKEN_INTEGER
	Line    int
	Column  int
}

var tokenNames = map[TokenType]string{
	TOKEN_EOF:            "EOF",
	TOKEN_ILLEGAL:        "ILLEGAL",
	TOKEN_INTEGER:        "INTEGER",
	TOKEN_IDENT:          "IDENT",
	TOKEN_WORD:           "WORD",
	TOKEN_LPAREN:         "LPAREN",
	TOKEN_RPAREN:         "RPAREN",
	TOKEN_LBRACE:         "LBRACE",
	TOKEN_RBRACE:         "RBRACE",
	TOKEN_LBRACKET:       "LBRACKET",
	TOKEN_RBRACKET:       "RBRACKET",
	TOKEN_EXCLAM:         "EXCLAM",
	TOKEN_BAR:            "BAR",
	TOKEN_UNDERSCORE:     "UNDERSCORE",
	TOKEN_LAMBDA:         "LAMBDA",
	TOKEN_PERIOD:         "PERIOD",
	TOKEN_DOLLAR:         "DOLLAR",
	TOKEN_ARROW:          "ARROW",
	TOKEN_PLUS:           "PLUS",
	TOKEN_MINUS:          "MINUS",
	TOKEN_ASTERISK:       "ASTERISK",
	TOKEN_SLASH:          "SLASH",
	TOKEN_CIRCUMFLEX:     "CIRCUMFLEX",
	TOKEN_EQUAL:          "EQUAL",
	TOKEN_NOT_EQUAL:      "NOT_EQUAL",
	TOKEN_LESS:           "LESS",
	TOKEN_GREATER:        "GREATER",
	TOKEN_LESS_EQUAL:     "LESS_EQUAL",
	TOKEN_GREATER_EQUAL:  "GREATER_EQUAL",
}

// String returns a human-readable name for the token type, used in
// error messages and debugging.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsOperation reports whether t begins a binary operator, the set
// the parser consults to decide whether to continue an expression
// with parse_operation.
func (t TokenType) IsOperation() bool {
	switch t {
	case TOKEN_PLUS, TOKEN_MINUS, TOKEN_ASTERISK, TOKEN_SLASH, TOKEN_CIRCUMFLEX,
		TOKEN_EQUAL, TOKEN_NOT_EQUAL, TOKEN_LESS_EQUAL, TOKEN_LESS,
		TOKEN_GREATER_EQUAL, TOKEN_GREATER:
		return true
	default:
		return false
	}
}

// IsDelimiter reports whether t closes an enclosing construct or ends
// a juxtaposed argument list: ) ] } $.
func (t TokenType) IsDelimiter() bool {
	switch t {
	case TOKEN_RPAREN, TOKEN_RBRACKET, TOKEN_RBRACE, TOKEN_DOLLAR:
		return true
	default:
		return false
	}
}

// isIdentStart/isIdentPart classify ASCII-alphanumeric identifier runs.
func isIdentStart(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
