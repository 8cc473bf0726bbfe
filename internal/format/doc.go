// Package format is the layout engine: it walks a concrete syntax
// tree and re-emits canonical, whitespace-normalized text. Layout
// decisions (column alignment, one-line vs multi-line rendering,
// comment placement) depend on the shape of the original source, so
// reformatting already-formatted output is a no-op.
package format
