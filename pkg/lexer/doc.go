// Package lexer converts source text into a stream of tokens.
//
// Token Recognition:
//   - Identifiers: ASCII-alphanumeric runs starting with a letter.
//   - Words: an identifier run prefixed with an apostrophe ('name).
//   - Integers: ASCII-digit runs, parsed as 128-bit signed values via
//     math/big; decimal composition happens one level up, in the
//     parser, by combining two adjacent Integer tokens around a
//     Period.
//   - Operators and delimiters per the fixed token alphabet, including
//     ASCII (+ - * / ^ = < > !) and Unicode spellings of the same
//     comparisons (⩾ ≧ ≥ ≮, ⩽ ≦ ≤ ≯, ≱, ≰, ≠) and the lambda
//     introducer (λ or \) and arrow (-> or →).
//
// Comment Handling:
//   - "# ..." runs to end of line.
//   - "## ... ##" is a multi-line comment, closed by the next "##".
//
// Position Tracking: every token carries 1-based line and 1-based
// column for error reporting.
//
// Unlike an ASCII/byte scanner, Lexer iterates []rune so the Unicode
// comparison glyphs and non-breaking-space whitespace are recognized
// as single lexical units rather than split across UTF-8 byte
// boundaries.
//
// Usage:
//
//	tokens, err := lexer.Tokenize("! 1+2")
//	if err != nil {
//	    log.Fatal(err)
//	}
package lexer
