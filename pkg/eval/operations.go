package eval

import (
	"math"
	"math/big"

	"github.com/eldyj/lambis/internal/types"
	"github.com/eldyj/lambis/internal/value"
)

// evalOperation evaluates both operands and dispatches to the integer
// or decimal arithmetic, promoting an Integer operand to Decimal
// whenever the other side is already a Decimal.
func (e *Evaluator) evalOperation(n *types.OperationExpr, env *value.Environment) (value.Value, error) {
	left, err := e.eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(n.Right, env)
	if err != nil {
		return nil, err
	}

	li, lIsInt := left.(value.Integer)
	ri, rIsInt := right.(value.Integer)
	if lIsInt && rIsInt {
		return integerOperation(n.Op, li.N, ri.N)
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if lok && rok {
		return decimalOperation(n.Op, lf, rf)
	}

	return nil, errf("operator %s cannot apply to %s and %s", n.Op, describe(left), describe(right))
}

func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Integer:
		f := new(big.Float).SetInt(n.N)
		out, _ := f.Float64()

		return out, true
	case value.Decimal:
		return float64(n), true
	default:
		return 0, false
	}
}

func describe(v value.Value) string {
	return v.Type().String() + " " + v.String()
}

func boolInteger(b bool) value.Value {
	if b {
		return value.IntegerFromInt64(1)
	}

	return value.IntegerFromInt64(0)
}

func boolDecimal(b bool) value.Value {
	if b {
		return value.Decimal(1)
	}

	return value.Decimal(0)
}

// integerOperation implements the eleven binary operators over two
// 128-bit signed integers, range-checking every arithmetic result.
// Division is exact (Integer) only when it divides evenly; otherwise
// it falls through to the float64 quotient, and Exponent always
// produces a Decimal — both per the reference semantics, not a
// rounded or truncated Integer result.
func integerOperation(op types.Operation, a, b *big.Int) (value.Value, error) {
	switch op {
	case types.OpAddition:
		return rangedInt(new(big.Int).Add(a, b))
	case types.OpSubtraction:
		return rangedInt(new(big.Int).Sub(a, b))
	case types.OpMultiplication:
		return rangedInt(new(big.Int).Mul(a, b))
	case types.OpDivision:
		if b.Sign() == 0 {
			return nil, errf("division by zero")
		}
		if new(big.Int).Mod(a, b).Sign() == 0 {
			return rangedInt(new(big.Int).Quo(a, b))
		}

		return value.Decimal(bigToFloat(a) / bigToFloat(b)), nil
	case types.OpExponent:
		return value.Decimal(math.Pow(bigToFloat(a), bigToFloat(b))), nil
	case types.OpLess:
		return boolInteger(a.Cmp(b) < 0), nil
	case types.OpLessEqual:
		return boolInteger(a.Cmp(b) <= 0), nil
	case types.OpGreater:
		return boolInteger(a.Cmp(b) > 0), nil
	case types.OpGreaterEqual:
		return boolInteger(a.Cmp(b) >= 0), nil
	case types.OpEqual:
		return boolInteger(a.Cmp(b) == 0), nil
	case types.OpNotEqual:
		return boolInteger(a.Cmp(b) != 0), nil
	default:
		return nil, errf("unknown operator %s", op)
	}
}

func bigToFloat(n *big.Int) float64 {
	f := new(big.Float).SetInt(n)
	out, _ := f.Float64()

	return out
}

func rangedInt(n *big.Int) (value.Value, error) {
	if !value.InRange128(n) {
		return nil, errf("integer overflow: %s is outside the 128-bit signed range", n)
	}

	return value.Integer{N: n}, nil
}

// decimalOperation implements the same eleven operators over 64-bit
// floats. Comparisons yield Decimal(1)/Decimal(0) here (not Integer),
// matching the reference's "everything stays Decimal once either
// operand was" rule; division and exponentiation follow ordinary
// IEEE-754 semantics (0.0, Inf and NaN propagate rather than
// erroring).
func decimalOperation(op types.Operation, a, b float64) (value.Value, error) {
	switch op {
	case types.OpAddition:
		return value.Decimal(a + b), nil
	case types.OpSubtraction:
		return value.Decimal(a - b), nil
	case types.OpMultiplication:
		return value.Decimal(a * b), nil
	case types.OpDivision:
		return value.Decimal(a / b), nil
	case types.OpExponent:
		return value.Decimal(math.Pow(a, b)), nil
	case types.OpLess:
		return boolDecimal(a < b), nil
	case types.OpLessEqual:
		return boolDecimal(a <= b), nil
	case types.OpGreater:
		return boolDecimal(a > b), nil
	case types.OpGreaterEqual:
		return boolDecimal(a >= b), nil
	case types.OpEqual:
		return boolDecimal(value.Decimal(a).Equals(value.Decimal(b))), nil
	case types.OpNotEqual:
		return boolDecimal(!value.Decimal(a).Equals(value.Decimal(b))), nil
	default:
		return nil, errf("unknown operator %s", op)
	}
}

// evalIntegerPart implements [e]: the integer part of a Decimal, or
// an Integer unchanged.
func (e *Evaluator) evalIntegerPart(n *types.IntegerPartExpr, env *value.Environment) (value.Value, error) {
	v, err := e.eval(n.Operand, env)
	if err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case value.Integer:
		return t, nil
	case value.Decimal:
		whole, _ := big.NewFloat(math.Floor(float64(t))).Int(nil)

		return rangedInt(whole)
	default:
		return nil, errf("[...] requires a number, got %s", describe(v))
	}
}

// evalRationalPart implements {e}: the fractional remainder of a
// Decimal, or 0 for an Integer.
func (e *Evaluator) evalRationalPart(n *types.RationalPartExpr, env *value.Environment) (value.Value, error) {
	v, err := e.eval(n.Operand, env)
	if err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case value.Integer:
		return value.IntegerFromInt64(0), nil
	case value.Decimal:
		f := float64(t)

		return value.Decimal(f - math.Floor(f)), nil
	default:
		return nil, errf("{...} requires a number, got %s", describe(v))
	}
}
