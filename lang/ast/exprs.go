package ast

import "github.com/darrenclark/dang/lang/token"

type (
	// BinExpr is a binary arithmetic expression `lhs op rhs`.
	BinExpr struct {
		Lhs, Rhs Expr
		Op       BinOp
	}

	// IntLit is an integer literal term.
	IntLit struct {
		Value    int64
		Start    token.Pos
		Raw      string
	}

	// DoubleLit is a floating-point literal term.
	DoubleLit struct {
		Value float64
		Start token.Pos
		Raw   string
	}

	// StringLit is a string literal term.
	StringLit struct {
		Value string
		Start token.Pos
	}

	// BoolLit is a `true` or `false` literal term.
	BoolLit struct {
		Value bool
		Start token.Pos
	}

	// NullLit is a `null` literal term.
	NullLit struct {
		Start token.Pos
	}

	// Identifier is a bare name reference term.
	Identifier struct {
		Name  string
		Start token.Pos
	}

	// ParenExpr is a `(expr)` parenthesized term.
	ParenExpr struct {
		Inner Expr
		Start token.Pos
		End   token.Pos
	}

	// FunctionCall is a `name(args...)` call term.
	FunctionCall struct {
		Name  string
		Args  []Expr
		Start token.Pos
		End   token.Pos
	}
)

func (*BinExpr) expr()      {}
func (*IntLit) expr()       {}
func (*DoubleLit) expr()    {}
func (*StringLit) expr()    {}
func (*BoolLit) expr()      {}
func (*NullLit) expr()      {}
func (*Identifier) expr()   {}
func (*ParenExpr) expr()    {}
func (*FunctionCall) expr() {}

func (n *BinExpr) Span() (start, end token.Pos) {
	start, _ = n.Lhs.Span()
	_, end = n.Rhs.Span()
	return start, end
}

func (n *IntLit) Span() (start, end token.Pos)     { return n.Start, n.Start }
func (n *DoubleLit) Span() (start, end token.Pos)  { return n.Start, n.Start }
func (n *StringLit) Span() (start, end token.Pos)  { return n.Start, n.Start }
func (n *BoolLit) Span() (start, end token.Pos)     { return n.Start, n.Start }
func (n *NullLit) Span() (start, end token.Pos)     { return n.Start, n.Start }
func (n *Identifier) Span() (start, end token.Pos)  { return n.Start, n.Start }
func (n *ParenExpr) Span() (start, end token.Pos)   { return n.Start, n.End }
func (n *FunctionCall) Span() (start, end token.Pos) { return n.Start, n.End }
