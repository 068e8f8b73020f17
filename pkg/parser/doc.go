// Package parser transforms a token stream from the lexer into the
// program's top-level sequence of expressions.
//
// Architecture:
//
// Parse tokenizes the whole source up front and hands the resulting
// slice to a Parser that walks it by integer index. Each top-level
// statement is one call to parseExpression, dispatched on the current
// token's type (see expressions.go). Binary operators use a pair of
// booleans threaded through parseExpression/parseOperation rather than
// a numeric precedence table:
//
//	+ -             allowOperations=true,  allowRepeat=true
//	* / ^           allowOperations=false, allowRepeat=true
//	comparisons     allowOperations=false, allowRepeat=false
//
// That is, the right-hand operand of + and - may itself continue with
// further operators, and + and - may be followed by another operator;
// * / ^ take a single operand on their right but may chain after
// themselves; the six comparisons do neither.
//
// Partial operator application ("(+2)", "(2+)") is resolved with a
// single rewind: when an operator's right-hand operand fails to
// parse, the token index is reset to just past the operator and the
// whole operation is rebuilt as a fresh-parameter lambda closing over
// the left operand. An operator token appearing where an expression
// was expected is the symmetric case on the left.
//
// Language Support:
//
//	Integer literals        42
//	Decimal composition      3.14  (two adjacent Integer tokens around a Period)
//	Words                    'ok
//	Lambdas                  λx. x+1   (curried bodies fuse: λa. λb. e == λab. e)
//	Definitions              name = expr
//	Juxtaposed calls         f x y
//	Switch                   e $ { 0 -> 'zero  x -> x }
//	Integer/rational parts   [e]  {e}
//	Print                    !e
//
// Error Handling:
//
// A Parser stops at its first error (errSink) rather than
// resynchronizing and collecting more; this language has no natural
// recovery point, so a second error after the first is almost always
// a cascade rather than independent information.
//
// Usage:
//
//	program, err := parser.Parse("f = λx. x+1. f 41")
//	if err != nil {
//	    log.Fatal(err)
//	}
package parser
