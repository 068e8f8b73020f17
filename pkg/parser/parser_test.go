package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eldyj/lambis/internal/types"
	"github.com/eldyj/lambis/internal/value"
)

func mustParseOne(t *testing.T, source string) types.Expr {
	t.Helper()
	program, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, program, 1)

	return program[0]
}

func TestParseIntegerLiteral(t *testing.T) {
	expr := mustParseOne(t, "42")
	ve, ok := expr.(*types.ValueExpr)
	require.True(t, ok)
	integ, ok := ve.Value.(value.Integer)
	require.True(t, ok)
	require.Equal(t, "42", integ.N.String())
}

func TestParseDecimalComposition(t *testing.T) {
	expr := mustParseOne(t, "3.5")
	ve, ok := expr.(*types.ValueExpr)
	require.True(t, ok)
	dec, ok := ve.Value.(value.Decimal)
	require.True(t, ok)
	require.InDelta(t, 3.5, float64(dec), 1e-9)
}

func TestParseDefinition(t *testing.T) {
	expr := mustParseOne(t, "x = 5")
	def, ok := expr.(*types.DefinitionExpr)
	require.True(t, ok)
	require.Equal(t, "x", def.Name)
}

func TestParseJuxtaposedCall(t *testing.T) {
	expr := mustParseOne(t, "f 1 2")
	call, ok := expr.(*types.CallExpr)
	require.True(t, ok)
	require.Equal(t, "f", call.Name)
	require.Len(t, call.Args, 2)
}

func TestParseBareVariable(t *testing.T) {
	expr := mustParseOne(t, "x")
	ve, ok := expr.(*types.ValueExpr)
	require.True(t, ok)
	_, ok = ve.Value.(value.Variable)
	require.True(t, ok)
}

func TestParseLambdaCurryFusion(t *testing.T) {
	expr := mustParseOne(t, `\ab. a+b`)
	ve, ok := expr.(*types.ValueExpr)
	require.True(t, ok)
	lam, ok := ve.Value.(value.Lambda)
	require.True(t, ok)
	require.Equal(t, "ab", lam.ArgsDef)

	body, ok := lam.Body.(*types.OperationExpr)
	require.True(t, ok)
	require.Equal(t, types.OpAddition, body.Op)
}

func TestParseNestedLambdaFusesIntoSingleArgsDef(t *testing.T) {
	expr := mustParseOne(t, `\a. \b. a+b`)
	ve, ok := expr.(*types.ValueExpr)
	require.True(t, ok)
	lam, ok := ve.Value.(value.Lambda)
	require.True(t, ok)
	require.Equal(t, "ab", lam.ArgsDef)
}

func TestParsePartialApplicationLeadingOperator(t *testing.T) {
	expr := mustParseOne(t, "(+2)")
	ve, ok := expr.(*types.ValueExpr)
	require.True(t, ok)
	lam, ok := ve.Value.(value.Lambda)
	require.True(t, ok)
	require.Equal(t, "X", lam.ArgsDef)

	op, ok := lam.Body.(*types.OperationExpr)
	require.True(t, ok)
	require.Equal(t, types.OpAddition, op.Op)
}

func TestParsePartialApplicationTrailingOperator(t *testing.T) {
	expr := mustParseOne(t, "(2+)")
	ve, ok := expr.(*types.ValueExpr)
	require.True(t, ok)
	lam, ok := ve.Value.(value.Lambda)
	require.True(t, ok)
	require.Equal(t, "Y", lam.ArgsDef)

	op, ok := lam.Body.(*types.OperationExpr)
	require.True(t, ok)
	require.Equal(t, types.OpAddition, op.Op)
}

func TestParseEmptyBracketIsPartialIntegerPart(t *testing.T) {
	expr := mustParseOne(t, "[]")
	ve, ok := expr.(*types.ValueExpr)
	require.True(t, ok)
	lam, ok := ve.Value.(value.Lambda)
	require.True(t, ok)
	require.Equal(t, "X", lam.ArgsDef)
	_, ok = lam.Body.(*types.IntegerPartExpr)
	require.True(t, ok)
}

func TestParseIntegerAndRationalPart(t *testing.T) {
	expr := mustParseOne(t, "[3.5]")
	_, ok := expr.(*types.IntegerPartExpr)
	require.True(t, ok)

	expr = mustParseOne(t, "{3.5}")
	_, ok = expr.(*types.RationalPartExpr)
	require.True(t, ok)
}

func TestParsePrint(t *testing.T) {
	expr := mustParseOne(t, "!42")
	_, ok := expr.(*types.PrintExpr)
	require.True(t, ok)
}

func TestParseBareWord(t *testing.T) {
	expr := mustParseOne(t, "'hello")
	ve, ok := expr.(*types.ValueExpr)
	require.True(t, ok)
	require.Equal(t, value.Word("hello"), ve.Value)
}

func TestParseSwitch(t *testing.T) {
	expr := mustParseOne(t, "x $ { 1 -> 'one  2 -> 'two }")
	sw, ok := expr.(*types.SwitchExpr)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)
}

func TestParseMultipleTopLevelExpressions(t *testing.T) {
	program, err := Parse("x = 1\ny = 2\nx+y")
	require.NoError(t, err)
	require.Len(t, program, 3)
}

func TestParseErrorOnUnclosedParen(t *testing.T) {
	_, err := Parse("(1+2")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseErrorStopsAtFirstFailure(t *testing.T) {
	_, err := Parse("(")
	require.Error(t, err)
}
