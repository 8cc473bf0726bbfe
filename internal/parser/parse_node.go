package parser

import (
	"fmt"

	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/token"
)

// parseNode parses a node instance: `DEF Name Type { ... }`,
// `USE Name` or `Type { ... }`.
func (p *Parser) parseNode() cst.NodeID {
	var children []cst.NodeID
	switch p.tok.Kind {
	case token.KwUse:
		children = append(children, p.leaf(cst.FieldNone))
		children = append(children, p.expect(token.Ident, cst.FieldName,
			diag.SynExpectIdentifier, "expected node name after USE"))
		return p.finish(cst.KindNode, cst.FieldNone, children, p.tok.Span)
	case token.KwDef:
		children = append(children, p.leaf(cst.FieldNone))
		children = append(children, p.expect(token.Ident, cst.FieldName,
			diag.SynExpectIdentifier, "expected node name after DEF"))
	}
	children = append(children, p.expect(token.Ident, cst.FieldType,
		diag.SynExpectIdentifier, "expected node type"))

	open := p.tok.Span
	children = append(children, p.expect(token.LBrace, cst.FieldNone,
		diag.SynUnexpectedToken, "expected '{' to open the node body"))
	for !p.tok.IsEOF() && !p.at(token.RBrace) {
		switch p.tok.Kind {
		case token.Comment:
			children = append(children, p.comment())
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
			children = append(children, p.skipError(diag.SynUnexpectedToken,
				fmt.Sprintf("unexpected %s in node body", p.tok.Kind)))
		}
	}
	if p.at(token.RBrace) {
		children = append(children, p.leaf(cst.FieldNone))
	} else {
		children = append(children, p.errorAt(diag.SynUnclosedBrace, open,
			"node body is never closed"))
	}
	return p.finish(cst.KindNode, cst.FieldNone, children, p.tok.Span)
}

// parseProperty parses `name value+` inside a node body. A run of
// scalar tokens forms the value list; IS bindings, vectors, embedded
// expressions and nested nodes are single values.
func (p *Parser) parseProperty() cst.NodeID {
	children := []cst.NodeID{p.leaf(cst.FieldName)}
	count := 0
	for {
		switch p.tok.Kind {
		case token.Number, token.String, token.KwTrue, token.KwFalse, token.KwNull:
			children = append(children, p.leaf(cst.FieldNone))
		case token.KwIs:
			children = append(children, p.leaf(cst.FieldNone))
			children = append(children, p.expect(token.Ident, cst.FieldName,
				diag.SynExpectIdentifier, "expected parameter name after IS"))
		case token.LBracket:
			children = append(children, p.parseVector())
		case token.KwDef, token.KwUse:
			children = append(children, p.parseNode())
		case token.JSOpen, token.JSOpenExpr:
			children = append(children, p.parseJS())
		case token.Ident:
			if p.peek().Kind != token.LBrace {
				if count == 0 {
					children = append(children, p.errorHere(diag.SynExpectValue,
						fmt.Sprintf("expected a value for property %q", p.tree.Text(children[0]))))
				}
				return p.finish(cst.KindProperty, cst.FieldNone, children, p.tok.Span)
			}
			children = append(children, p.parseNode())
		default:
			if count == 0 {
				children = append(children, p.errorHere(diag.SynExpectValue,
					fmt.Sprintf("expected a value for property %q", p.tree.Text(children[0]))))
			}
			return p.finish(cst.KindProperty, cst.FieldNone, children, p.tok.Span)
		}
		count++
	}
}
