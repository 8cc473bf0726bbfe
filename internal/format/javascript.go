package format

import (
	"strings"

	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
)

// formatJavascript re-emits an embedded code block. The body is piped
// through the configured CodeFilter, trimmed, and re-indented at the
// current level. A one-line source block renders as
// `%< code >%`; otherwise opener, body lines and closer each get
// their own line.
func (e *engine) formatJavascript(id cst.NodeID) error {
	node := e.tree.Get(id)
	oneliner := e.oneliner(id)
	if len(node.Children) == 0 {
		return errAt(diag.FmtMissingCode, node.Span, "embedded code block has no opener")
	}
	opener := e.tree.Text(node.Children[0])
	codeID, ok := e.tree.ChildByTag(id, cst.FieldCode)
	if !ok {
		return errAt(diag.FmtMissingCode, node.Span, "embedded code block has no body")
	}

	code, err := e.filterCode(e.tree.Text(codeID))
	if err != nil {
		return errAt(diag.FmtCodeFilter, e.tree.Get(codeID).Span,
			"external code formatter failed: %v", err)
	}

	if oneliner {
		e.p.print(opener)
		e.p.print(" ")
		e.p.print(code)
		e.p.print(" >%")
		return nil
	}
	e.p.println(opener)
	e.p.level++
	if code != "" {
		for _, line := range strings.Split(code, "\n") {
			e.p.indent()
			e.p.println(line)
		}
	}
	e.p.level--
	e.p.indent()
	e.p.print(">%")
	return nil
}

// filterCode runs the external formatter once per distinct body; the
// measurement pass reuses the cached result.
func (e *engine) filterCode(raw string) (string, error) {
	if cached, ok := e.codeCache[raw]; ok {
		return cached, nil
	}
	out := strings.TrimSpace(raw)
	if e.opts.CodeFilter != nil {
		formatted, err := e.opts.CodeFilter.FormatCode(e.ctx, raw)
		if err != nil {
			return "", err
		}
		out = strings.TrimSpace(formatted)
	}
	e.codeCache[raw] = out
	return out, nil
}
