package parser

import (
	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/lexer"
	"wbprotofmt/internal/source"
	"wbprotofmt/internal/token"
)

// Parser turns a token stream into a cst.Tree.
type Parser struct {
	file *source.File
	lx   *lexer.Lexer
	tree *cst.Tree
	opts Options

	tok    token.Token
	errors uint
}

// ParseFile lexes and parses one file into a concrete syntax tree.
// Syntax errors become ERROR nodes in the tree and diagnostics on the
// reporter; the returned tree always covers the whole input.
func ParseFile(file *source.File, opts Options) *cst.Tree {
	lx := lexer.New(file, lexer.Options{Reporter: opts.reporter()})
	p := &Parser{
		file: file,
		lx:   lx,
		tree: cst.NewTree(file),
		opts: opts,
	}
	p.tok = lx.Next()
	root := p.parseDocument()
	p.tree.SetRoot(root)
	return p.tree
}

func (p *Parser) bump() {
	if !p.tok.IsEOF() {
		p.tok = p.lx.Next()
	}
}

func (p *Parser) at(kind token.Kind) bool { return p.tok.Kind == kind }

// peek looks one token past the current one.
func (p *Parser) peek() token.Token { return p.lx.Peek() }

// leaf records the current token as a KindToken child and advances.
func (p *Parser) leaf(tag cst.Field) cst.NodeID {
	id := p.tree.Add(cst.Node{
		Kind:  cst.KindToken,
		Tag:   tag,
		Token: p.tok.Kind,
		Span:  p.tok.Span,
	})
	p.bump()
	return id
}

// comment records the current Comment token as a KindComment node.
func (p *Parser) comment() cst.NodeID {
	id := p.tree.Add(cst.Node{
		Kind:  cst.KindComment,
		Token: p.tok.Kind,
		Span:  p.tok.Span,
	})
	p.bump()
	return id
}

// expect consumes a token of the given kind, or records an ERROR node
// in its place without consuming anything.
func (p *Parser) expect(kind token.Kind, tag cst.Field, code diag.Code, msg string) cst.NodeID {
	if p.at(kind) {
		return p.leaf(tag)
	}
	return p.errorHere(code, msg)
}

// errorHere reports a syntax error at the current token and returns an
// ERROR node spanning it. The offending token is not consumed.
func (p *Parser) errorHere(code diag.Code, msg string) cst.NodeID {
	p.report(code, p.tok.Span, msg)
	return p.tree.Add(cst.Node{Kind: cst.KindError, Span: p.tok.Span})
}

// errorAt reports a syntax error at the given span and returns an
// ERROR node spanning it.
func (p *Parser) errorAt(code diag.Code, span source.Span, msg string) cst.NodeID {
	p.report(code, span, msg)
	return p.tree.Add(cst.Node{Kind: cst.KindError, Span: span})
}

// skipError reports a syntax error, wraps the offending token in an
// ERROR node and consumes it so parsing can continue.
func (p *Parser) skipError(code diag.Code, msg string) cst.NodeID {
	id := p.errorHere(code, msg)
	p.bump()
	return id
}

func (p *Parser) report(code diag.Code, span source.Span, msg string) {
	p.errors++
	if p.opts.MaxErrors > 0 && p.errors > p.opts.MaxErrors {
		return
	}
	p.opts.reporter().Report(code, diag.SevError, span, msg, nil)
}

// finish builds a composite node covering all of its children.
func (p *Parser) finish(kind cst.Kind, tag cst.Field, children []cst.NodeID, fallback source.Span) cst.NodeID {
	span := fallback
	for i, child := range children {
		cs := p.tree.Get(child).Span
		if i == 0 {
			span = cs
		} else {
			span = span.Cover(cs)
		}
	}
	return p.tree.Add(cst.Node{Kind: kind, Tag: tag, Span: span, Children: children})
}
