// Package eval provides the tree-walking evaluator that computes the
// runtime values of a parsed program.
//
// Architecture:
//
// Run evaluates a program's top-level expressions in order against
// one shared Environment, so a later Definition sees an earlier one.
// eval is the central dispatcher, matched on the AST node's concrete
// type:
//
//	evaluator.go:  dispatch, Definition/Call/LambdaCall/Switch/Print
//	operations.go: integer and decimal arithmetic and comparison,
//	               IntegerPart/RationalPart
//
// Lambda application (apply, in evaluator.go) is exact, curried, or a
// failure depending on how the argument count compares to the
// parameter count:
//
//	fewer args than params   curry: return a Lambda over the remaining
//	                         parameters, whose body reapplies the
//	                         original lambda to the already-evaluated
//	                         arguments plus the remaining parameters
//	exact match               bind params to args in a fresh argument
//	                          frame and evaluate the body there
//	more args than params     *EvalError: over-application is rejected
//	                          outright, never saturated and reapplied
//
// Values and Numeric Semantics:
//
// Integer arithmetic is checked against the 128-bit signed range
// after every operation; overflow is an EvalError, not silent
// wraparound. Mixing an Integer with a Decimal promotes the Integer
// to float64 for the operation. Decimal equality is machine-epsilon
// tolerant (see internal/value).
//
// Error Handling:
//
// Every failure mode — undefined variable, operator/operand type
// mismatch, division by zero, 128-bit overflow, arity misuse against
// a non-lambda — is reported as an *EvalError and aborts the whole
// Run call; there is no recovery within a single evaluation.
//
// Usage:
//
//	program, err := parser.Parse(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	results, err := eval.New().Run(program)
package eval
