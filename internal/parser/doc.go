// Package parser builds a lossless concrete syntax tree from a token
// stream. Every token that appears in the input, punctuation and
// comments included, is attached to the tree so later passes can
// reconstruct the source layout.
package parser
