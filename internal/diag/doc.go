// Package diag defines the diagnostic model shared by the lexer, parser,
// and formatter.
//
//   - Diagnostic: severity, numeric code, message, primary span, notes.
//   - Reporter: emission contract decoupling producers from storage.
//   - Bag: capacity-bounded accumulator with deterministic ordering.
//
// Package diag performs no formatting or IO; rendering lives in
// internal/diagfmt, orchestration in internal/driver.
package diag
