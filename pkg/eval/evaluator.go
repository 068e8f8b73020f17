package eval

import (
	"fmt"
	"io"

	"github.com/eldyj/lambis/internal/types"
	"github.com/eldyj/lambis/internal/value"
)

// Evaluator walks a parsed program and computes its values. Out
// receives the side-effecting output of print expressions (!e); it
// defaults to nothing written when constructed with New and no
// writer, callers that care use NewWithWriter.
type Evaluator struct {
	out io.Writer
}

// New creates an Evaluator that discards print output.
func New() *Evaluator {
	return &Evaluator{out: io.Discard}
}

// NewWithWriter creates an Evaluator whose print expressions write to out.
func NewWithWriter(out io.Writer) *Evaluator {
	return &Evaluator{out: out}
}

// Run evaluates a top-level program: each expression in turn, against
// one shared global environment, so later expressions see earlier
// Definitions. It returns the value each expression produced, in
// order, stopping at the first error.
func (e *Evaluator) Run(program []types.Expr) ([]value.Value, error) {
	env := value.NewEnvironment()
	results := make([]value.Value, 0, len(program))

	for _, expr := range program {
		v, err := e.eval(expr, env)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}

	return results, nil
}

// eval is the central dispatcher, matched on the AST node's concrete type.
func (e *Evaluator) eval(expr types.Expr, env *value.Environment) (value.Value, error) {
	switch n := expr.(type) {
	case *types.NothingExpr:
		return value.None{}, nil

	case *types.ValueExpr:
		return e.evalValueExpr(n, env)

	case *types.DefinitionExpr:
		val, err := e.eval(n.Value, env)
		if err != nil {
			return nil, err
		}
		env.Define(n.Name, val)

		return val, nil

	case *types.CallExpr:
		return e.evalCall(n, env)

	case *types.LambdaCallExpr:
		return e.evalLambdaCall(n, env)

	case *types.SwitchExpr:
		return e.evalSwitch(n, env)

	case *types.IntegerPartExpr:
		return e.evalIntegerPart(n, env)

	case *types.RationalPartExpr:
		return e.evalRationalPart(n, env)

	case *types.PrintExpr:
		return e.evalPrint(n, env)

	case *types.OperationExpr:
		return e.evalOperation(n, env)

	default:
		return nil, errf("unknown expression type: %T", expr)
	}
}

// evalValueExpr resolves a ValueExpr leaf. Every variant except
// Variable already is the result value; Variable is resolved against
// the environment, because it only ever appears as an unresolved AST
// leaf, never as a value produced by evaluation.
func (e *Evaluator) evalValueExpr(n *types.ValueExpr, env *value.Environment) (value.Value, error) {
	v, ok := n.Value.(value.Variable)
	if !ok {
		return n.Value, nil
	}

	resolved, found := env.Lookup(string(v))
	if !found {
		return nil, errf("undefined variable: %s", string(v))
	}

	return resolved, nil
}

// evalCall resolves Name to a Lambda in env, evaluates its arguments,
// and applies it.
func (e *Evaluator) evalCall(n *types.CallExpr, env *value.Environment) (value.Value, error) {
	callee, found := env.Lookup(n.Name)
	if !found {
		return nil, errf("undefined variable: %s", n.Name)
	}
	lam, ok := callee.(value.Lambda)
	if !ok {
		return nil, errf("%s is not a lambda, got a value of type %v", n.Name, callee.Type())
	}

	args, err := e.evalArgs(n.Args, env)
	if err != nil {
		return nil, err
	}

	return e.apply(lam, args, env)
}

// evalLambdaCall applies an already-known Lambda value to a list of
// argument expressions.
func (e *Evaluator) evalLambdaCall(n *types.LambdaCallExpr, env *value.Environment) (value.Value, error) {
	args, err := e.evalArgs(n.Args, env)
	if err != nil {
		return nil, err
	}

	return e.apply(n.Lambda, args, env)
}

func (e *Evaluator) evalArgs(exprs []types.Expr, env *value.Environment) ([]value.Value, error) {
	vals := make([]value.Value, len(exprs))
	for i, a := range exprs {
		v, err := e.eval(a, env)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}

	return vals, nil
}

// apply binds lam's parameters to args. Under-application curries:
// the already-evaluated args are captured as Value leaves and a new
// Lambda is returned over the remaining parameters. Exact application
// evaluates the body in a fresh argument frame. Over-application is a
// hard failure: this language never implicitly reapplies a lambda's
// result to leftover arguments.
func (e *Evaluator) apply(lam value.Lambda, args []value.Value, env *value.Environment) (value.Value, error) {
	want := len(lam.ArgsDef)
	got := len(args)

	switch {
	case got < want:
		return curry(lam, args), nil

	case got == want:
		body, ok := lam.Body.(types.Expr)
		if !ok {
			return nil, errf("malformed lambda body")
		}
		callEnv := env.WithArgs([]byte(lam.ArgsDef), args)

		return e.eval(body, callEnv)

	default:
		return nil, errf("too many arguments: %s does not accept more than %d", lam, want)
	}
}

// curry returns a Lambda over the parameters not yet supplied, whose
// body re-applies the original lambda to the evaluated args (captured
// as Value leaves) followed by the remaining parameters (captured as
// Variable leaves, one per remaining character).
func curry(lam value.Lambda, args []value.Value) value.Lambda {
	remaining := lam.ArgsDef[len(args):]

	callArgs := make([]types.Expr, 0, len(lam.ArgsDef))
	for _, a := range args {
		callArgs = append(callArgs, &types.ValueExpr{Value: a})
	}
	for _, c := range []byte(remaining) {
		callArgs = append(callArgs, &types.ValueExpr{Value: value.Variable(string(c))})
	}

	return value.Lambda{
		ArgsDef: remaining,
		Body:    types.Expr(&types.LambdaCallExpr{Lambda: lam, Args: callArgs}),
	}
}

// evalSwitch evaluates Compared once, then each case's Pattern in
// order; the first Pattern that structurally equals Compared's value
// wins and its Result is evaluated and returned. An unmatched switch
// evaluates to None.
func (e *Evaluator) evalSwitch(n *types.SwitchExpr, env *value.Environment) (value.Value, error) {
	compared, err := e.eval(n.Compared, env)
	if err != nil {
		return nil, err
	}

	for _, c := range n.Cases {
		pattern, err := e.eval(c.Pattern, env)
		if err != nil {
			return nil, err
		}
		if pattern.Equals(compared) {
			return e.eval(c.Result, env)
		}
	}

	return value.None{}, nil
}

func (e *Evaluator) evalPrint(n *types.PrintExpr, env *value.Environment) (value.Value, error) {
	v, err := e.eval(n.Operand, env)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(e.out, v.String())

	return value.None{}, nil
}
