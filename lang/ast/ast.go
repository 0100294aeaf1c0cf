// Package ast defines the abstract syntax tree produced by the parser: a
// tree of tagged node types with no virtual dispatch, matching the
// language's closed grammar.
package ast

import "github.com/darrenclark/dang/lang/token"

// Node is implemented by every AST node.
type Node interface {
	// Span reports the start and end position of the node.
	Span() (start, end token.Pos)
}

// Expr is implemented by every expression node (terms and BinExpr).
type Expr interface {
	Node
	expr()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmt()
}

// Program is the root of the tree: a flat sequence of top-level statements.
type Program struct {
	Body []Stmt
}

func (p *Program) Span() (start, end token.Pos) {
	if len(p.Body) == 0 {
		return 0, 0
	}
	start, _ = p.Body[0].Span()
	_, end = p.Body[len(p.Body)-1].Span()
	return start, end
}

// BinOp identifies the binary arithmetic operator of a BinExpr.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
)

// Prec returns the binary operator's precedence, used by the parser's
// precedence-climbing algorithm. Add and Sub share precedence 0; Mul and Div
// share precedence 1.
func (op BinOp) Prec() int {
	switch op {
	case Mul, Div:
		return 1
	default:
		return 0
	}
}

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}
