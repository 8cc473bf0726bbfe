// Package fuzztests houses Go fuzz harnesses that exercise the front
// half of the formatting pipeline (source -> lexer -> parser -> format).
// Its goal is to smoke test robustness and guard against panics or
// non-termination on arbitrary inputs.
package fuzztests
