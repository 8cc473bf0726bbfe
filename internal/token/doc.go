// Package token defines the lexical vocabulary of the PROTO language:
// token kinds, keyword lookup, and the Token value produced by the lexer.
//
// Does not: scan source text (internal/lexer) or build trees (internal/cst).
package token
