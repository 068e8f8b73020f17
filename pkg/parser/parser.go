// Package parser implements a recursive-descent parser for the
// interpreter's expression grammar.
//
// Unlike a Pratt parser keyed by a precedence table, this grammar
// encodes precedence with a pair of booleans threaded through
// parseExpression and parseOperation (allow_operations, allow_repeat):
// + and - chain freely and permit further operators on their right;
// * / ^ chain but forbid further operators on their right;
// comparisons neither chain nor combine. See operators.go.
//
// The parser operates over a fully-tokenized slice (not a
// lexer-driven cur/peek window) so that the one place the grammar
// needs to backtrack — partial operator application when an
// operator's right operand fails to parse — can simply save and
// restore an integer index (see parseOperation in operators.go).
package parser

import (
	"github.com/eldyj/lambis/internal/types"
	"github.com/eldyj/lambis/pkg/lexer"
)

// Parser consumes a pre-lexed token slice by index.
type Parser struct {
	tokens []lexer.Token
	pos    int
	errSink
}

// New builds a Parser over an already-tokenized program. Tokenize
// (or Parse, below) is the usual way to obtain the token slice.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse lexes and parses source into its sequence of top-level AST
// expressions.
func Parse(source string) ([]types.Expr, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}

	return New(tokens).ParseProgram()
}

// ParseProgram parses the whole token stream into an ordered sequence
// of top-level expressions, stopping at the first parse error.
func (p *Parser) ParseProgram() ([]types.Expr, error) {
	var program []types.Expr
	for !p.atEOF() {
		expr := p.parseExpression(false, true)
		if p.failed() {
			return nil, p.err
		}
		program = append(program, expr)
	}

	return program, nil
}

func (p *Parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) atEOF() bool {
	return p.cur().Type == lexer.TOKEN_EOF
}

// advance consumes the current token, moving to the next one. It is
// a no-op at EOF so callers never walk off the end of the slice.
func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

// mark/reset implement the cursor save/restore used by the partial
// operator application fallback.
func (p *Parser) mark() int      { return p.pos }
func (p *Parser) reset(m int)    { p.pos = m }

// expect consumes the current token if it matches t, else fails.
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.failed() {
		return false
	}
	if p.cur().Type == t {
		p.advance()

		return true
	}
	tok := p.cur()
	p.fail(tok.Line, tok.Column, "expected %v, got %v", t, tok.Type)

	return false
}
