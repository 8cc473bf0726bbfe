package parser

import (
	"fmt"

	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/token"
)

// parseFieldValue parses the default value of a field declaration.
// The value is always a single child: runs of scalars such as
// "0 0 1" are wrapped into one property node so the declaration
// keeps its four-part shape.
func (p *Parser) parseFieldValue() cst.NodeID {
	switch p.tok.Kind {
	case token.LBracket:
		id := p.parseVector()
		p.tree.Get(id).Tag = cst.FieldValue
		return id
	case token.KwDef, token.KwUse:
		id := p.parseNode()
		p.tree.Get(id).Tag = cst.FieldValue
		return id
	case token.JSOpen, token.JSOpenExpr:
		id := p.parseJS()
		p.tree.Get(id).Tag = cst.FieldValue
		return id
	case token.KwIs:
		run := []cst.NodeID{p.leaf(cst.FieldNone)}
		run = append(run, p.expect(token.Ident, cst.FieldName,
			diag.SynExpectIdentifier, "expected parameter name after IS"))
		return p.finish(cst.KindProperty, cst.FieldValue, run, p.tok.Span)
	case token.Number:
		run := []cst.NodeID{p.leaf(cst.FieldNone)}
		for p.at(token.Number) {
			run = append(run, p.leaf(cst.FieldNone))
		}
		if len(run) == 1 {
			p.tree.Get(run[0]).Tag = cst.FieldValue
			return run[0]
		}
		return p.finish(cst.KindProperty, cst.FieldValue, run, p.tok.Span)
	case token.String, token.KwTrue, token.KwFalse, token.KwNull:
		return p.leaf(cst.FieldValue)
	case token.Ident:
		if p.peek().Kind == token.LBrace {
			id := p.parseNode()
			p.tree.Get(id).Tag = cst.FieldValue
			return id
		}
		return p.errorHere(diag.SynExpectValue, "expected a default value in field declaration")
	default:
		return p.errorHere(diag.SynExpectValue, "expected a default value in field declaration")
	}
}

// parseVector parses `[ ... ]`. Brackets, commas and comments stay in
// the tree as children so the original layout can be inspected.
func (p *Parser) parseVector() cst.NodeID {
	children := []cst.NodeID{p.leaf(cst.FieldNone)}
	open := p.tree.Get(children[0]).Span
	for !p.tok.IsEOF() && !p.at(token.RBracket) {
		switch p.tok.Kind {
		case token.Comma:
			children = append(children, p.leaf(cst.FieldNone))
		case token.Comment:
			children = append(children, p.comment())
		case token.Number, token.String, token.KwTrue, token.KwFalse, token.KwNull:
			children = append(children, p.leaf(cst.FieldNone))
		case token.LBracket:
			children = append(children, p.parseVector())
		case token.KwDef, token.KwUse:
			children = append(children, p.parseNode())
		case token.JSOpen, token.JSOpenExpr:
			children = append(children, p.parseJS())
		case token.Ident:
			if p.peek().Kind == token.LBrace {
				children = append(children, p.parseNode())
			} else {
				children = append(children, p.skipError(diag.SynUnexpectedToken,
					fmt.Sprintf("unexpected %s in vector", p.tok.Kind)))
			}
		default:
			children = append(children, p.skipError(diag.SynUnexpectedToken,
				fmt.Sprintf("unexpected %s in vector", p.tok.Kind)))
		}
	}
	if p.at(token.RBracket) {
		children = append(children, p.leaf(cst.FieldNone))
	} else {
		children = append(children, p.errorAt(diag.SynUnclosedBracket, open,
			"vector is never closed"))
	}
	return p.finish(cst.KindVector, cst.FieldNone, children, p.tok.Span)
}
