// Package value provides the runtime value system for the interpreter.
//
// Five variants make up the value space: None (the unit value),
// Integer (128-bit signed, backed by math/big.Int), Decimal (64-bit
// float), Word (a symbolic atom written 'name), and Lambda (a
// user-defined function carrying its parameter characters and body).
// Variable exists only transiently inside unevaluated AST leaves and
// is never the result of a completed evaluation.
//
// Equality is structural via Equals: Integer/Integer compares exact,
// Decimal/Decimal compares within machine epsilon, Word/Word compares
// by string, None only equals None, and Lambda never equals anything
// (not even another Lambda with identical source).
//
// Environment holds the two maps evaluation threads through: Globals
// (shared, mutated in place by top-level Definitions) and Args (the
// current lambda's single-character parameter frame, copy-on-write
// per invocation via WithArgs). There is no parent-chain scoping here;
// everything a running expression can see is either in Globals or in
// the one flat Args frame it was handed.
package value
