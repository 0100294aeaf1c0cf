package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented tree dump of prog to w, one node per line,
// annotated with its source position. It exists for the parse diagnostic
// command; nothing in the compiler depends on it.
func Fprint(w io.Writer, prog *Program) {
	p := &printer{w: w}
	for _, s := range prog.Body {
		p.stmt(s, 0)
	}
}

type printer struct {
	w io.Writer
}

func (p *printer) line(depth int, format string, args ...any) {
	fmt.Fprint(p.w, strings.Repeat("  ", depth))
	fmt.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}

func (p *printer) pos(n Node) string {
	start, _ := n.Span()
	line, col := start.LineCol()
	return fmt.Sprintf("%d:%d", line, col)
}

func (p *printer) block(body []Stmt, depth int) {
	for _, s := range body {
		p.stmt(s, depth)
	}
}

func (p *printer) stmt(s Stmt, depth int) {
	switch n := s.(type) {
	case *Return:
		p.line(depth, "Return @%s", p.pos(n))
		p.expr(n.Expr, depth+1)
	case *Let:
		p.line(depth, "Let %s @%s", n.Name, p.pos(n))
		p.expr(n.Expr, depth+1)
	case *Assign:
		p.line(depth, "Assign %s @%s", n.Name, p.pos(n))
		p.expr(n.Expr, depth+1)
	case *Scope:
		p.line(depth, "Scope @%s", p.pos(n))
		p.block(n.Body, depth+1)
	case *If:
		p.line(depth, "If @%s", p.pos(n))
		p.expr(n.Cond, depth+1)
		p.block(n.Body, depth+1)
		p.ifRest(n.Rest, depth)
	case *FunctionDef:
		p.line(depth, "FunctionDef %s(%s) @%s", n.Name, strings.Join(n.Params, ", "), p.pos(n))
		p.block(n.Body, depth+1)
	default:
		p.line(depth, "<unknown stmt %T>", s)
	}
}

func (p *printer) ifRest(rest IfRest, depth int) {
	switch n := rest.(type) {
	case nil:
	case *ElseIf:
		p.line(depth, "ElseIf @%s", p.pos(n))
		p.expr(n.Cond, depth+1)
		p.block(n.Body, depth+1)
		p.ifRest(n.Rest, depth)
	case *Else:
		p.line(depth, "Else @%s", p.pos(n))
		p.block(n.Body, depth+1)
	}
}

func (p *printer) expr(e Expr, depth int) {
	switch n := e.(type) {
	case *BinExpr:
		p.line(depth, "BinExpr %s", n.Op)
		p.expr(n.Lhs, depth+1)
		p.expr(n.Rhs, depth+1)
	case *IntLit:
		p.line(depth, "IntLit %d @%s", n.Value, p.pos(n))
	case *DoubleLit:
		p.line(depth, "DoubleLit %g @%s", n.Value, p.pos(n))
	case *StringLit:
		p.line(depth, "StringLit %q @%s", n.Value, p.pos(n))
	case *BoolLit:
		p.line(depth, "BoolLit %t @%s", n.Value, p.pos(n))
	case *NullLit:
		p.line(depth, "NullLit @%s", p.pos(n))
	case *Identifier:
		p.line(depth, "Identifier %s @%s", n.Name, p.pos(n))
	case *ParenExpr:
		p.line(depth, "ParenExpr @%s", p.pos(n))
		p.expr(n.Inner, depth+1)
	case *FunctionCall:
		p.line(depth, "FunctionCall %s @%s", n.Name, p.pos(n))
		for _, a := range n.Args {
			p.expr(a, depth+1)
		}
	default:
		p.line(depth, "<unknown expr %T>", e)
	}
}
