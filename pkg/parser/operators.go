package parser

import (
	"github.com/eldyj/lambis/internal/types"
	"github.com/eldyj/lambis/pkg/lexer"
)

// operatorInfo captures the boolean-pair precedence convention this
// grammar uses instead of a numeric precedence table: allowOperations
// says whether the operator's right-hand operand may itself be
// extended by a further infix operator (so 1+2*3 nests 2*3 as the
// right-hand side of +), and
// allowRepeat says whether a further operator may follow once this
// one's right-hand side is parsed.
type operatorInfo struct {
	op              types.Operation
	allowOperations bool
	allowRepeat     bool
}

var operatorTable = map[lexer.TokenType]operatorInfo{
	lexer.TOKEN_PLUS:           {types.OpAddition, true, true},
	lexer.TOKEN_MINUS:         {types.OpSubtraction, true, true},
	lexer.TOKEN_ASTERISK:       {types.OpMultiplication, false, true},
	lexer.TOKEN_SLASH:          {types.OpDivision, false, true},
	lexer.TOKEN_CIRCUMFLEX:     {types.OpExponent, false, true},
	lexer.TOKEN_LESS:           {types.OpLess, false, false},
	lexer.TOKEN_LESS_EQUAL:     {types.OpLessEqual, false, false},
	lexer.TOKEN_GREATER:        {types.OpGreater, false, false},
	lexer.TOKEN_GREATER_EQUAL:  {types.OpGreaterEqual, false, false},
	lexer.TOKEN_EQUAL:          {types.OpEqual, false, false},
	lexer.TOKEN_NOT_EQUAL:      {types.OpNotEqual, false, false},
}

// parseOperation consumes the operator token at the cursor and builds
// an OperationExpr with left as its left-hand side.
//
// If the right-hand operand fails to parse (e.g. "(2+)" where the
// closing paren follows immediately), the cursor is rewound and the
// whole thing instead becomes a fresh-parameter lambda: λY. left OP Y.
// This is the one place in the grammar that needs to backtrack, which
// is why the parser walks a token slice by index rather than a
// lexer-driven stream.
func (p *Parser) parseOperation(left types.Expr) types.Expr {
	opTok := p.cur()
	info, ok := operatorTable[opTok.Type]
	if !ok {
		p.fail(opTok.Line, opTok.Column, "unexpected operator %v", opTok.Type)

		return nil
	}
	p.advance()

	mark := p.mark()
	right := p.parseExpression(true, info.allowOperations)
	if p.failed() {
		p.err = nil
		p.reset(mark)

		return lambdaOf("Y", &types.OperationExpr{
			Left:  left,
			Op:    info.op,
			Right: variableLeaf("Y"),
		})
	}

	node := types.Expr(&types.OperationExpr{Left: left, Op: info.op, Right: right})
	if info.allowRepeat && p.cur().Type.IsOperation() {
		return p.parseOperation(node)
	}
	if p.cur().Type == lexer.TOKEN_DOLLAR {
		return p.parseSwitch(node)
	}

	return node
}

// parseSwitch parses the postfix pattern-match construct following an
// already-parsed Compared expression: "$ { pattern -> result ... }".
func (p *Parser) parseSwitch(compared types.Expr) types.Expr {
	if !p.expect(lexer.TOKEN_DOLLAR) {
		return nil
	}
	if !p.expect(lexer.TOKEN_LBRACE) {
		return nil
	}

	var cases []types.SwitchCase
	for p.cur().Type != lexer.TOKEN_RBRACE {
		if p.failed() || p.atEOF() {
			tok := p.cur()
			p.fail(tok.Line, tok.Column, "unterminated switch, expected %v", lexer.TOKEN_RBRACE)

			return nil
		}

		pattern := p.parseExpression(true, false)
		if p.failed() {
			return nil
		}
		if !p.expect(lexer.TOKEN_ARROW) {
			return nil
		}
		result := p.parseExpression(true, true)
		if p.failed() {
			return nil
		}

		cases = append(cases, types.SwitchCase{Pattern: pattern, Result: result})
	}
	if !p.expect(lexer.TOKEN_RBRACE) {
		return nil
	}

	return &types.SwitchExpr{Compared: compared, Cases: cases}
}
