package parser

import (
	"strconv"

	"github.com/darrenclark/dang/lang/ast"
	"github.com/darrenclark/dang/lang/token"
)

func binOpFor(tok token.Token) (ast.BinOp, bool) {
	switch tok {
	case token.PLUS:
		return ast.Add, true
	case token.MINUS:
		return ast.Sub, true
	case token.STAR:
		return ast.Mul, true
	case token.SLASH:
		return ast.Div, true
	default:
		return 0, false
	}
}

// parseExpr implements precedence climbing: parse a term as lhs, then while
// the next token is a binary operator whose precedence is >= minPrec,
// consume it and recurse for the rhs with minPrec = prec + 1, building a
// left-associating BinExpr.
func (p *parser) parseExpr(minPrec int) ast.Expr {
	lhs := p.parseTerm()
	for {
		op, ok := binOpFor(p.tok)
		if !ok {
			break
		}
		prec := op.Prec()
		if prec < minPrec {
			break
		}
		p.advance()
		rhs := p.parseExpr(prec + 1)
		lhs = &ast.BinExpr{Lhs: lhs, Rhs: rhs, Op: op}
	}
	return lhs
}

// parseTerm parses a single term:
//
//	term = INT | DOUBLE | STRING | "true" | "false" | "null"
//	     | IDENT | IDENT "(" (expr ("," expr)*)? ")"
//	     | "(" expr ")" ;
func (p *parser) parseTerm() ast.Expr {
	pos := p.val.Pos
	switch p.tok {
	case token.INT:
		raw := p.val.Raw
		p.advance()
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			p.error(pos, "integer literal out of range")
		}
		return &ast.IntLit{Value: v, Start: pos, Raw: raw}

	case token.DOUBLE:
		raw := p.val.Raw
		p.advance()
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			p.error(pos, "double literal out of range")
		}
		return &ast.DoubleLit{Value: v, Start: pos, Raw: raw}

	case token.STRING:
		v := p.val.Raw
		p.advance()
		return &ast.StringLit{Value: v, Start: pos}

	case token.TRUE:
		p.advance()
		return &ast.BoolLit{Value: true, Start: pos}

	case token.FALSE:
		p.advance()
		return &ast.BoolLit{Value: false, Start: pos}

	case token.NULL:
		p.advance()
		return &ast.NullLit{Start: pos}

	case token.IDENT:
		name := p.val.Raw
		p.advance()
		if p.tok == token.LPAREN {
			return p.parseCallArgs(name, pos)
		}
		return &ast.Identifier{Name: name, Start: pos}

	case token.LPAREN:
		p.advance()
		inner := p.parseExpr(0)
		end := p.expect(token.RPAREN)
		return &ast.ParenExpr{Inner: inner, Start: pos, End: end}

	default:
		p.errorExpected(pos, "expression")
		panic(errPanicMode)
	}
}

func (p *parser) parseCallArgs(name string, start token.Pos) *ast.FunctionCall {
	p.expect(token.LPAREN)
	var args []ast.Expr
	if p.tok != token.RPAREN {
		args = append(args, p.parseExpr(0))
		for p.tok == token.COMMA {
			p.advance()
			args = append(args, p.parseExpr(0))
		}
	}
	end := p.expect(token.RPAREN)
	return &ast.FunctionCall{Name: name, Args: args, Start: start, End: end}
}
