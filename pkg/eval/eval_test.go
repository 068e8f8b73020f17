package eval_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eldyj/lambis/internal/value"
	"github.com/eldyj/lambis/pkg/eval"
	"github.com/eldyj/lambis/pkg/parser"
)

func run(t *testing.T, source string) []value.Value {
	t.Helper()
	program, err := parser.Parse(source)
	require.NoError(t, err)
	results, err := eval.New().Run(program)
	require.NoError(t, err)

	return results
}

func runLast(t *testing.T, source string) value.Value {
	t.Helper()
	results := run(t, source)
	require.NotEmpty(t, results)

	return results[len(results)-1]
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"2+3", "5"},
		{"10-4", "6"},
		{"3*4", "12"},
		{"6/3", "2"},
		{"7/2", "3.5"},
		{"2^10", "1024"},
		{"2.5+1.5", "4"},
		{"1+2*3", "7"},
	}

	for _, tt := range tests {
		got := runLast(t, tt.source)
		require.Equal(t, tt.want, got.String(), tt.source)
	}
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1<2", "1"},
		{"2<1", "0"},
		{"2<=2", "1"},
		{"3>2", "1"},
		{"3>=4", "0"},
		{"3=3", "1"},
		{"3<>3", "0"},
	}

	for _, tt := range tests {
		got := runLast(t, tt.source)
		require.Equal(t, tt.want, got.String(), tt.source)
	}
}

func TestDivisionByZero(t *testing.T) {
	program, err := parser.Parse("1/0")
	require.NoError(t, err)
	_, err = eval.New().Run(program)
	require.Error(t, err)
}

func TestIntegerOverflow(t *testing.T) {
	program, err := parser.Parse("170141183460469231731687303715884105727+1")
	require.NoError(t, err)
	_, err = eval.New().Run(program)
	require.Error(t, err)
}

func TestDefinitionAndReference(t *testing.T) {
	got := runLast(t, "x = 5\nx+1")
	require.Equal(t, "6", got.String())
}

func TestUndefinedVariable(t *testing.T) {
	program, err := parser.Parse("y")
	require.NoError(t, err)
	_, err = eval.New().Run(program)
	require.Error(t, err)
}

func TestLambdaCallSaturated(t *testing.T) {
	got := runLast(t, "f = \\ab. a+b\nf 2 3")
	require.Equal(t, "5", got.String())
}

func TestLambdaCurryingUnderApplication(t *testing.T) {
	got := runLast(t, "f = \\ab. a+b\ng = f 2.\ng 3")
	require.Equal(t, "5", got.String())
}

func TestPartialOperatorApplicationLeading(t *testing.T) {
	got := runLast(t, "h = (+2).\nh 3")
	require.Equal(t, "5", got.String())
}

func TestPartialOperatorApplicationTrailing(t *testing.T) {
	got := runLast(t, "h = (2+).\nh 3")
	require.Equal(t, "5", got.String())
}

func TestSwitchMatchesFirstEqualCase(t *testing.T) {
	got := runLast(t, "x = 2\nx $ { 1 -> 'one  2 -> 'two }")
	require.Equal(t, "'two", got.String())
}

func TestSwitchUnmatchedYieldsNone(t *testing.T) {
	got := runLast(t, "x = 9\nx $ { 1 -> 'one  2 -> 'two }")
	require.Equal(t, "Nothing", got.String())
}

func TestIntegerAndRationalParts(t *testing.T) {
	require.Equal(t, "3", runLast(t, "[3.75]").String())
	require.Equal(t, "3", runLast(t, "[3]").String())

	rat, ok := runLast(t, "{3.75}").(value.Decimal)
	require.True(t, ok)
	require.InDelta(t, 0.75, float64(rat), 1e-9)
}

func TestPrintWritesOperandAndYieldsNone(t *testing.T) {
	program, err := parser.Parse("!42")
	require.NoError(t, err)

	var buf bytes.Buffer
	results, err := eval.NewWithWriter(&buf).Run(program)
	require.NoError(t, err)
	require.Equal(t, "42\n", buf.String())
	require.Equal(t, "Nothing", results[0].String())
}

func TestTrueFalseGlobalsPreseeded(t *testing.T) {
	require.Equal(t, "1", runLast(t, "true").String())
	require.Equal(t, "0", runLast(t, "false").String())
}

func TestFactorialViaRecursiveSwitch(t *testing.T) {
	got := runLast(t, "factorial = \\x. x $ { 0 -> 1  x -> (factorial x-1)*x }.\nfactorial 5")
	require.Equal(t, "120", got.String())
}

func TestOverApplicationFails(t *testing.T) {
	program, err := parser.Parse("pick = \\x. x $ { 1 -> (\\a. a+1)  2 -> (\\a. a+2) }.\npick 1 5")
	require.NoError(t, err)
	_, err = eval.New().Run(program)
	require.Error(t, err)
}

func TestIdentityLambdaPreservesWord(t *testing.T) {
	got := runLast(t, "(\\x. x) 'hello")
	require.Equal(t, "'hello", got.String())
}
