package parser

import (
	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/token"
)

// parseJS parses an embedded code block. `%<` opens a statement block
// and `%<=` an expression; both end with `>%`. The raw body is one
// child tagged FieldCode.
func (p *Parser) parseJS() cst.NodeID {
	kind := cst.KindJSBlock
	if p.at(token.JSOpenExpr) {
		kind = cst.KindJSExpr
	}
	children := []cst.NodeID{p.leaf(cst.FieldNone)}
	if p.at(token.Code) {
		children = append(children, p.leaf(cst.FieldCode))
	}
	children = append(children, p.expect(token.JSClose, cst.FieldNone,
		diag.SynUnexpectedToken, "expected '>%' to close the embedded code block"))
	return p.finish(kind, cst.FieldNone, children, p.tok.Span)
}
