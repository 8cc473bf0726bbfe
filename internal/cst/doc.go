// Package cst defines the concrete syntax tree for PROTO files: an arena
// of nodes addressed by NodeID, a closed Kind enum, and read-only queries
// (text slices, line/column resolution, tagged-child lookup).
//
// Trees are built by internal/parser and consumed by internal/format and
// internal/diagfmt. A tree is immutable once built.
package cst
