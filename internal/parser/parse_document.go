package parser

import (
	"fmt"

	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/source"
	"wbprotofmt/internal/token"
)

func (p *Parser) parseDocument() cst.NodeID {
	var children []cst.NodeID
	for !p.tok.IsEOF() {
		switch p.tok.Kind {
		case token.Comment:
			children = append(children, p.comment())
		case token.KwExternproto:
			children = append(children, p.parseExtern())
		case token.KwProto:
			children = append(children, p.parseProto())
		case token.KwDef, token.KwUse:
			children = append(children, p.parseNode())
		case token.JSOpen, token.JSOpenExpr:
			children = append(children, p.parseJS())
		case token.Ident:
			if p.peek().Kind == token.LBrace {
				children = append(children, p.parseNode())
			} else {
				children = append(children, p.parseProperty())
			}
		default:
			children = append(children, p.skipError(diag.SynUnexpectedTopLevel,
				fmt.Sprintf("unexpected %s at top level", p.tok.Kind)))
		}
	}
	fileSpan := source.Span{File: p.file.ID, Start: 0, End: uint32(len(p.file.Content))}
	return p.finish(cst.KindDocument, cst.FieldNone, children, fileSpan)
}

func (p *Parser) parseExtern() cst.NodeID {
	children := []cst.NodeID{p.leaf(cst.FieldNone)}
	children = append(children, p.expect(token.Ident, cst.FieldName,
		diag.SynExpectIdentifier, "expected prototype name after EXTERNPROTO"))
	children = append(children, p.expect(token.String, cst.FieldValue,
		diag.SynExpectString, "expected quoted path after EXTERNPROTO name"))
	return p.finish(cst.KindExtern, cst.FieldNone, children, p.tok.Span)
}
