// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the lowerer: a closed sum type per node category, each
// variant able to print itself as an indented tree.
package ast

import "github.com/conifer0us/cnf49-compiler/report"

// Node is the interface implemented by every AST node.
type Node interface {
	// Span is the text span over which the node occurs.
	Span() *report.TextSpan

	// Print writes an indented textual representation of the node to w,
	// indented by ind spaces.
	Print(w Writer, ind int)
}

// Writer is the minimal output sink the AST printer writes to. Satisfied
// by *strings.Builder and *bufio.Writer alike.
type Writer interface {
	WriteString(string) (int, error)
}

// Base is embedded by every concrete node to supply Span().
type Base struct {
	span *report.TextSpan
}

// NewBaseOn returns a Base anchored on a single span.
func NewBaseOn(span *report.TextSpan) Base {
	return Base{span: span}
}

// NewBaseOver returns a Base spanning over two other spans.
func NewBaseOver(start, end *report.TextSpan) Base {
	return Base{span: report.NewSpanOver(start, end)}
}

func (b Base) Span() *report.TextSpan {
	return b.span
}

// indent writes n spaces to w.
func indent(w Writer, n int) {
	for i := 0; i < n; i++ {
		w.WriteString(" ")
	}
}
