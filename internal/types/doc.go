// Package types provides the Abstract Syntax Tree node definitions
// that the parser produces and the evaluator consumes.
//
// Ten node kinds cover the whole grammar: NothingExpr (an empty
// placeholder), ValueExpr (a literal or already-resolved Value
// wrapped as a leaf), DefinitionExpr (name = value), CallExpr (a
// named juxtaposed call), LambdaCallExpr (applying an already-known
// Lambda value to arguments — how the evaluator encodes currying),
// SwitchExpr (the postfix $ { case -> result } construct),
// RationalPartExpr/IntegerPartExpr ({E} / [E]), PrintExpr (!E), and
// OperationExpr (binary arithmetic/comparison).
//
// All node kinds implement Expr (String() plus the unexported
// exprNode marker), so only this package can add new variants — the
// evaluator type-switches exhaustively over the fixed set.
package types
