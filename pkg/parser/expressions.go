package parser

import (
	"math/big"

	"github.com/eldyj/lambis/internal/types"
	"github.com/eldyj/lambis/internal/value"
	"github.com/eldyj/lambis/pkg/lexer"
)

// parseExpression is the central dispatcher, matched on the current
// token. fromCall suppresses juxtaposition-argument collection at
// this level (we are already parsing one argument of an enclosing
// call); allowOperations permits a trailing infix operator to extend
// the expression just parsed.
func (p *Parser) parseExpression(fromCall, allowOperations bool) types.Expr {
	if p.failed() {
		return nil
	}

	tok := p.cur()
	switch {
	case tok.Type == lexer.TOKEN_EOF:
		return &types.NothingExpr{}

	case tok.Type == lexer.TOKEN_EXCLAM:
		p.advance()
		operand := p.parseExpression(false, true)
		if p.failed() {
			return nil
		}

		return &types.PrintExpr{Operand: operand}

	case tok.Type == lexer.TOKEN_LBRACKET:
		return p.parsePartExpression(lexer.TOKEN_RBRACKET, false, allowOperations)

	case tok.Type == lexer.TOKEN_LBRACE:
		return p.parsePartExpression(lexer.TOKEN_RBRACE, true, allowOperations)

	case tok.Type == lexer.TOKEN_LPAREN:
		return p.parseParenExpression(fromCall, allowOperations)

	case tok.Type == lexer.TOKEN_LAMBDA:
		return p.parseLambdaExpression()

	case tok.Type == lexer.TOKEN_INTEGER:
		return p.parseNumberExpression(fromCall, allowOperations)

	case tok.Type == lexer.TOKEN_IDENT:
		return p.parseIdentExpression(fromCall, allowOperations)

	case tok.Type == lexer.TOKEN_WORD:
		return p.parseWordExpression(fromCall, allowOperations)

	case tok.Type.IsOperation():
		// Partial operator application with the left operand missing:
		// "(+2)" parses as a fresh-parameter lambda λX. X + 2.
		return p.parsePartialLeftOperation()

	default:
		p.fail(tok.Line, tok.Column, "expected expression start, got %v", tok.Type)

		return nil
	}
}

// parsePartExpression handles both [E] (IntegerPart) and {E}
// (RationalPart); rational selects which wrapper node to build.
// An immediately-closed form ([] or {}) is the partial-application
// shorthand λX. [X] / λX. {X}.
func (p *Parser) parsePartExpression(closeTok lexer.TokenType, rational bool, allowOperations bool) types.Expr {
	p.advance() // consume '[' or '{'

	if p.cur().Type == closeTok {
		p.advance()

		return lambdaOf("X", wrapPart(variableLeaf("X"), rational))
	}

	inner := p.parseExpression(false, true)
	if p.failed() {
		return nil
	}
	if !p.expect(closeTok) {
		return nil
	}

	node := wrapPart(inner, rational)
	if allowOperations && p.cur().Type.IsOperation() {
		return p.parseOperation(node)
	}
	if p.cur().Type == lexer.TOKEN_DOLLAR {
		return p.parseSwitch(node)
	}

	return node
}

func wrapPart(operand types.Expr, rational bool) types.Expr {
	if rational {
		return &types.RationalPartExpr{Operand: operand}
	}

	return &types.IntegerPartExpr{Operand: operand}
}

// parseParenExpression handles "(" expr ")", including the juxtaposed
// call it may introduce when the parenthesized value is a Lambda.
func (p *Parser) parseParenExpression(fromCall, allowOperations bool) types.Expr {
	p.advance() // consume '('

	if p.cur().Type == lexer.TOKEN_RPAREN {
		p.advance()

		return p.afterParen(&types.ValueExpr{Value: value.None{}}, fromCall, allowOperations)
	}

	inner := p.parseExpression(false, true)
	if p.failed() {
		return nil
	}
	if !p.expect(lexer.TOKEN_RPAREN) {
		return nil
	}

	res := inner
	if ve, ok := inner.(*types.ValueExpr); ok {
		if fromCall {
			return inner
		}
		if lam, ok := ve.Value.(value.Lambda); ok {
			args := p.collectJuxtaposedArgs()
			if p.failed() {
				return nil
			}
			if len(args) > 0 {
				res = &types.LambdaCallExpr{Lambda: lam, Args: args}
			}
		}
	}

	return p.afterParen(res, fromCall, allowOperations)
}

// afterParen applies the mutually-exclusive continuation a
// parenthesized result may have: a further operator, a switch, or a
// single consumed trailing period.
func (p *Parser) afterParen(res types.Expr, _ bool, allowOperations bool) types.Expr {
	switch {
	case allowOperations && p.cur().Type.IsOperation():
		return p.parseOperation(res)
	case p.cur().Type == lexer.TOKEN_DOLLAR:
		return p.parseSwitch(res)
	case p.cur().Type == lexer.TOKEN_PERIOD:
		p.advance()

		return res
	default:
		return res
	}
}

// parseLambdaExpression handles "λ" ident "." body, fusing nested
// curried lambda literals (λa. λb. body becomes a single λab. body).
func (p *Parser) parseLambdaExpression() types.Expr {
	p.advance() // consume 'λ'/'\'

	if p.cur().Type != lexer.TOKEN_IDENT {
		tok := p.cur()
		p.fail(tok.Line, tok.Column, "expected parameter name after lambda, got %v", tok.Type)

		return nil
	}
	params := p.cur().Literal
	p.advance()

	if !p.expect(lexer.TOKEN_PERIOD) {
		return nil
	}

	body := p.parseExpression(false, true)
	if p.failed() {
		return nil
	}

	if ve, ok := body.(*types.ValueExpr); ok {
		if inner, ok := ve.Value.(value.Lambda); ok {
			params += inner.ArgsDef
			body = inner.Body.(types.Expr)
		}
	}

	if p.cur().Type == lexer.TOKEN_PERIOD {
		p.advance()
	}

	return lambdaOf(params, body)
}

// parseNumberExpression handles an Integer literal, optionally
// composed with a following ". Integer" into a Decimal.
func (p *Parser) parseNumberExpression(fromCall, allowOperations bool) types.Expr {
	intTok := p.cur()
	p.advance()

	var leaf types.Expr
	if p.cur().Type == lexer.TOKEN_PERIOD && p.peekIsInteger() {
		p.advance() // consume '.'
		fracTok := p.cur()
		p.advance()
		leaf = &types.ValueExpr{Value: value.Decimal(parseDecimalLiteral(intTok.Int, fracTok.Literal))}
	} else {
		leaf = &types.ValueExpr{Value: value.NewInteger(intTok.Int)}
	}

	if allowOperations && p.cur().Type.IsOperation() {
		return p.parseOperation(leaf)
	}
	if !fromCall && p.cur().Type == lexer.TOKEN_DOLLAR {
		return p.parseSwitch(leaf)
	}

	return leaf
}

// parseWordExpression handles a 'symbolic-atom literal, the leaf form
// patterns in a switch are most commonly built from.
func (p *Parser) parseWordExpression(fromCall, allowOperations bool) types.Expr {
	leaf := &types.ValueExpr{Value: value.Word(p.cur().Literal)}
	p.advance()

	if allowOperations && p.cur().Type.IsOperation() {
		return p.parseOperation(leaf)
	}
	if !fromCall && p.cur().Type == lexer.TOKEN_DOLLAR {
		return p.parseSwitch(leaf)
	}

	return leaf
}

// peekIsInteger reports whether the token one past '.' is itself an
// Integer — the lookahead that distinguishes "3.75" from a bare "3"
// followed by some unrelated period.
func (p *Parser) peekIsInteger() bool {
	if p.pos+1 >= len(p.tokens) {
		return false
	}

	return p.tokens[p.pos+1].Type == lexer.TOKEN_INTEGER
}

func parseDecimalLiteral(intPart *big.Int, fracLiteral string) float64 {
	f, _ := new(big.Float).SetString(intPart.String() + "." + fracLiteral)
	out, _ := f.Float64()

	return out
}

// parseIdentExpression handles a bare identifier: a Definition, a
// juxtaposed Call, or (when fromCall) a bare Variable reference.
func (p *Parser) parseIdentExpression(fromCall, allowOperations bool) types.Expr {
	name := p.cur().Literal
	p.advance()

	if fromCall {
		leaf := variableLeaf(name)
		if allowOperations && p.cur().Type.IsOperation() {
			return p.parseOperation(leaf)
		}
		if p.cur().Type == lexer.TOKEN_DOLLAR {
			return p.parseSwitch(leaf)
		}

		return leaf
	}

	if p.cur().Type == lexer.TOKEN_EQUAL {
		p.advance()
		val := p.parseExpression(false, true)
		if p.failed() {
			return nil
		}
		if p.cur().Type == lexer.TOKEN_PERIOD {
			p.advance()
		}

		return &types.DefinitionExpr{Name: name, Value: val}
	}

	args := p.collectJuxtaposedArgs()
	if p.failed() {
		return nil
	}

	var res types.Expr
	if len(args) == 0 {
		res = variableLeaf(name)
	} else {
		res = &types.CallExpr{Name: name, Args: args}
	}

	if allowOperations && p.cur().Type.IsOperation() {
		return p.parseOperation(res)
	}
	if p.cur().Type == lexer.TOKEN_DOLLAR {
		return p.parseSwitch(res)
	}
	if p.cur().Type == lexer.TOKEN_PERIOD {
		p.advance()
	}

	return res
}

// collectJuxtaposedArgs gathers the juxtaposed-call argument list,
// stopping at a delimiter, an operator, a period, or end of input —
// the stop set shared by every juxtaposition-collecting form.
func (p *Parser) collectJuxtaposedArgs() []types.Expr {
	var args []types.Expr
	for !p.atEOF() && !p.cur().Type.IsDelimiter() && !p.cur().Type.IsOperation() && p.cur().Type != lexer.TOKEN_PERIOD {
		args = append(args, p.parseExpression(true, true))
		if p.failed() {
			return nil
		}
	}

	return args
}

// parsePartialLeftOperation handles an operator token appearing where
// an expression was expected: the missing left operand becomes a
// fresh parameter X, e.g. "+2" parses as λX. X + 2.
func (p *Parser) parsePartialLeftOperation() types.Expr {
	left := variableLeaf("X")
	node := p.parseOperation(left)
	if p.failed() {
		return nil
	}

	return lambdaOf("X", node)
}

func variableLeaf(name string) types.Expr {
	return &types.ValueExpr{Value: value.Variable(name)}
}

func lambdaOf(params string, body types.Expr) types.Expr {
	return &types.ValueExpr{Value: value.Lambda{ArgsDef: params, Body: body}}
}
