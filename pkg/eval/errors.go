package eval

import "fmt"

// EvalError reports a runtime condition the evaluator cannot recover
// from: an undefined variable, a type mismatch between an operator
// and its operands, arity misuse, or a 128-bit overflow.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string { return e.Message }

func errf(format string, args ...interface{}) error {
	return &EvalError{Message: fmt.Sprintf(format, args...)}
}
