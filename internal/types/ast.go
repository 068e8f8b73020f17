package types

import (
	"fmt"
	"strings"

	"github.com/eldyj/lambis/internal/value"
)

// Node represents any node in the AST.
// All AST nodes must implement this interface.
type Node interface {
	// String returns a string representation of the node
	String() string
}

// Expr represents an expression node in the AST.
// All expression types must implement this interface.
type Expr interface {
	Node
	// exprNode is a marker method to ensure only expression types implement this interface
	exprNode()
}

// ============================================================================
// Leaf expressions
// ============================================================================

// NothingExpr is the empty placeholder AST node, produced when the
// token stream runs out mid-expression-list.
type NothingExpr struct{}

func (e *NothingExpr) String() string { return "<nothing>" }
func (e *NothingExpr) exprNode()      {}

// ValueExpr wraps an already-known runtime Value as an AST leaf: a
// literal integer, decimal, word, bare variable reference, or a
// synthesized Lambda (as produced by currying or partial operator
// application).
type ValueExpr struct {
	Value value.Value
}

func (e *ValueExpr) String() string { return e.Value.String() }
func (e *ValueExpr) exprNode()      {}

// ============================================================================
// Bindings and calls
// ============================================================================

// DefinitionExpr binds Name to the result of evaluating Value in the
// global environment; evaluating it yields that same value.
type DefinitionExpr struct {
	Name  string
	Value Expr
}

func (e *DefinitionExpr) String() string { return fmt.Sprintf("%s = %s", e.Name, e.Value) }
func (e *DefinitionExpr) exprNode()      {}

// CallExpr is a named juxtaposed call: name arg1 arg2 ... The
// callee is resolved as a variable and must evaluate to a Lambda.
type CallExpr struct {
	Name string
	Args []Expr
}

func (e *CallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}

	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(parts, ", "))
}
func (e *CallExpr) exprNode() {}

// LambdaCallExpr applies an already-evaluated Lambda value to a list
// of argument expressions. The parser synthesizes these directly when
// parenthesized lambdas are juxtaposed with arguments, and the
// evaluator synthesizes them again internally to encode currying.
type LambdaCallExpr struct {
	Lambda value.Lambda
	Args   []Expr
}

func (e *LambdaCallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}

	return fmt.Sprintf("(%s)(%s)", e.Lambda.String(), strings.Join(parts, ", "))
}
func (e *LambdaCallExpr) exprNode() {}

// ============================================================================
// Switch
// ============================================================================

// SwitchCase pairs one pattern expression with the result expression
// to evaluate when the pattern matches the compared value.
type SwitchCase struct {
	Pattern Expr
	Result  Expr
}

// SwitchExpr is the postfix pattern construct: compared $ { case ->
// result ... }. Cases are tried in order; the first whose evaluated
// pattern structurally equals the evaluated Compared wins.
type SwitchExpr struct {
	Compared Expr
	Cases    []SwitchCase
}

func (e *SwitchExpr) String() string {
	parts := make([]string, len(e.Cases))
	for i, c := range e.Cases {
		parts[i] = fmt.Sprintf("%s -> %s", c.Pattern, c.Result)
	}

	return fmt.Sprintf("%s $ { %s }", e.Compared, strings.Join(parts, "  "))
}
func (e *SwitchExpr) exprNode() {}

// ============================================================================
// Unary forms
// ============================================================================

// RationalPartExpr extracts the fractional part: {E}.
type RationalPartExpr struct {
	Operand Expr
}

func (e *RationalPartExpr) String() string { return fmt.Sprintf("{%s}", e.Operand) }
func (e *RationalPartExpr) exprNode()      {}

// IntegerPartExpr extracts the integer part: [E].
type IntegerPartExpr struct {
	Operand Expr
}

func (e *IntegerPartExpr) String() string { return fmt.Sprintf("[%s]", e.Operand) }
func (e *IntegerPartExpr) exprNode()      {}

// PrintExpr prints the evaluated operand and yields None: !E.
type PrintExpr struct {
	Operand Expr
}

func (e *PrintExpr) String() string { return fmt.Sprintf("!%s", e.Operand) }
func (e *PrintExpr) exprNode()      {}

// ============================================================================
// Binary operations
// ============================================================================

// Operation identifies one of the eleven binary operators.
type Operation int

const (
	OpAddition Operation = iota
	OpSubtraction
	OpMultiplication
	OpDivision
	OpExponent
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpEqual
	OpNotEqual
)

var operationSymbols = [...]string{
	"+", "-", "*", "/", "^", "<", "<=", ">", ">=", "=", "<>",
}

func (op Operation) String() string {
	if int(op) < len(operationSymbols) {
		return operationSymbols[op]
	}

	return fmt.Sprintf("Operation(%d)", int(op))
}

// OperationExpr is a binary operator application.
type OperationExpr struct {
	Left  Expr
	Op    Operation
	Right Expr
}

func (e *OperationExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}
func (e *OperationExpr) exprNode() {}
