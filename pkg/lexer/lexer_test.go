package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := `x = 5.
! x+2
f = λab. a+b.
x $ { 1 -> 'one  2 -> 'two }
## a multi
   line comment ##
# a line comment
<= >= <> != !< !>
⩾ ⩽ ≥ ≤ ≮ ≯ ≱ ≰ ≠ → \
'word
`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_IDENT, "x"},
		{TOKEN_EQUAL, "="},
		{TOKEN_INTEGER, "5"},
		{TOKEN_PERIOD, "."},
		{TOKEN_EXCLAM, "!"},
		{TOKEN_IDENT, "x"},
		{TOKEN_PLUS, "+"},
		{TOKEN_INTEGER, "2"},
		{TOKEN_IDENT, "f"},
		{TOKEN_EQUAL, "="},
		{TOKEN_LAMBDA, "λ"},
		{TOKEN_IDENT, "ab"},
		{TOKEN_PERIOD, "."},
		{TOKEN_IDENT, "a"},
		{TOKEN_PLUS, "+"},
		{TOKEN_IDENT, "b"},
		{TOKEN_PERIOD, "."},
		{TOKEN_IDENT, "x"},
		{TOKEN_DOLLAR, "$"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_INTEGER, "1"},
		{TOKEN_ARROW, "->"},
		{TOKEN_WORD, "one"},
		{TOKEN_INTEGER, "2"},
		{TOKEN_ARROW, "->"},
		{TOKEN_WORD, "two"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_LESS_EQUAL, "<="},
		{TOKEN_GREATER_EQUAL, ">="},
		{TOKEN_NOT_EQUAL, "<>"},
		{TOKEN_NOT_EQUAL, "!="},
		{TOKEN_GREATER_EQUAL, "!<"},
		{TOKEN_LESS_EQUAL, "!>"},
		{TOKEN_GREATER_EQUAL, "⩾"},
		{TOKEN_LESS_EQUAL, "⩽"},
		{TOKEN_GREATER_EQUAL, "≥"},
		{TOKEN_LESS_EQUAL, "≤"},
		{TOKEN_GREATER_EQUAL, "≮"},
		{TOKEN_LESS_EQUAL, "≯"},
		{TOKEN_LESS, "≱"},
		{TOKEN_GREATER, "≰"},
		{TOKEN_NOT_EQUAL, "≠"},
		{TOKEN_ARROW, "→"},
		{TOKEN_LAMBDA, "\\"},
		{TOKEN_WORD, "word"},
		{TOKEN_EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok, err := l.NextToken()
		require.NoErrorf(t, err, "tests[%d]", i)
		require.Equalf(t, tt.expectedType, tok.Type, "tests[%d] - tokentype wrong", i)
		require.Equalf(t, tt.expectedLiteral, tok.Literal, "tests[%d] - literal wrong", i)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	tokens, err := Tokenize("# just a comment\n## block\ncomment ##\n")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, TOKEN_EOF, tokens[0].Type)
}

func TestIllegalCharacterIsALexError(t *testing.T) {
	_, err := Tokenize("@")
	require.Error(t, err)

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, '@', lexErr.Char)
}

func TestIntegerLiteralValue(t *testing.T) {
	tokens, err := Tokenize("170141183460469231731687303715884105727")
	require.NoError(t, err)
	require.Equal(t, TOKEN_INTEGER, tokens[0].Type)
	require.Equal(t, "170141183460469231731687303715884105727", tokens[0].Int.String())
}
