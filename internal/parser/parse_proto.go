package parser

import (
	"fmt"

	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/token"
)

func (p *Parser) parseProto() cst.NodeID {
	children := []cst.NodeID{p.leaf(cst.FieldNone)}
	children = append(children, p.expect(token.Ident, cst.FieldName,
		diag.SynExpectIdentifier, "expected prototype name after PROTO"))

	// Interface block: [ field declarations ].
	open := p.tok.Span
	children = append(children, p.expect(token.LBracket, cst.FieldNone,
		diag.SynUnexpectedToken, "expected '[' to open the prototype interface"))
	for !p.tok.IsEOF() && !p.at(token.RBracket) {
		switch {
		case p.at(token.Comment):
			children = append(children, p.comment())
		case p.tok.Kind.IsFieldKind():
			children = append(children, p.parseField())
		default:
			children = append(children, p.skipError(diag.SynUnexpectedToken,
				fmt.Sprintf("unexpected %s in prototype interface", p.tok.Kind)))
		}
	}
	if p.at(token.RBracket) {
		children = append(children, p.leaf(cst.FieldNone))
	} else {
		children = append(children, p.errorAt(diag.SynUnclosedBracket, open,
			"prototype interface is never closed"))
	}

	// Body: { exactly one root node, plus comments and embedded code }.
	open = p.tok.Span
	children = append(children, p.expect(token.LBrace, cst.FieldNone,
		diag.SynUnexpectedToken, "expected '{' to open the prototype body"))
	for !p.tok.IsEOF() && !p.at(token.RBrace) {
		switch p.tok.Kind {
		case token.Comment:
			children = append(children, p.comment())
		case token.KwDef, token.KwUse, token.Ident:
			children = append(children, p.parseNode())
		case token.JSOpen, token.JSOpenExpr:
			children = append(children, p.parseJS())
		default:
			children = append(children, p.skipError(diag.SynUnexpectedToken,
				fmt.Sprintf("unexpected %s in prototype body", p.tok.Kind)))
		}
	}
	if p.at(token.RBrace) {
		children = append(children, p.leaf(cst.FieldNone))
	} else {
		children = append(children, p.errorAt(diag.SynUnclosedBrace, open,
			"prototype body is never closed"))
	}
	return p.finish(cst.KindProto, cst.FieldNone, children, p.tok.Span)
}

func (p *Parser) parseField() cst.NodeID {
	children := []cst.NodeID{p.leaf(cst.FieldKind)}
	children = append(children, p.expect(token.Ident, cst.FieldType,
		diag.SynExpectIdentifier, "expected value type in field declaration"))
	children = append(children, p.expect(token.Ident, cst.FieldName,
		diag.SynExpectIdentifier, "expected field name in field declaration"))
	children = append(children, p.parseFieldValue())
	return p.finish(cst.KindField, cst.FieldNone, children, p.tok.Span)
}
