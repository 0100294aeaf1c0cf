package parser

import (
	"github.com/darrenclark/dang/lang/ast"
	"github.com/darrenclark/dang/lang/token"
)

// parseStmt dispatches on the current token, per the grammar:
//
//	stmt = "return" expr ";" | "let" IDENT "=" expr ";"
//	     | IDENT "=" expr ";" | scope | if_stmt | fn_def ;
func (p *parser) parseStmt() ast.Stmt {
	switch p.tok {
	case token.RETURN:
		return p.parseReturn()
	case token.LET:
		return p.parseLet()
	case token.IDENT:
		return p.parseAssign()
	case token.LBRACE:
		return p.parseScopeStmt()
	case token.IF:
		return p.parseIf()
	case token.FN:
		return p.parseFunctionDef()
	default:
		p.errorExpected(p.val.Pos, "statement")
		panic(errPanicMode)
	}
}

func (p *parser) parseReturn() *ast.Return {
	start := p.expect(token.RETURN)
	expr := p.parseExpr(0)
	semi := p.expect(token.SEMI)
	return &ast.Return{Expr: expr, Start: start, Semi: semi}
}

func (p *parser) parseLet() *ast.Let {
	start := p.expect(token.LET)
	name := p.val.Raw
	p.expect(token.IDENT)
	p.expect(token.EQ)
	expr := p.parseExpr(0)
	semi := p.expect(token.SEMI)
	return &ast.Let{Name: name, Expr: expr, Start: start, Semi: semi}
}

func (p *parser) parseAssign() *ast.Assign {
	start := p.val.Pos
	name := p.val.Raw
	p.expect(token.IDENT)
	p.expect(token.EQ)
	expr := p.parseExpr(0)
	semi := p.expect(token.SEMI)
	return &ast.Assign{Name: name, Expr: expr, Start: start, Semi: semi}
}

// parseBlock parses the `{ stmt* }` common to Scope, If/ElseIf/Else bodies
// and function bodies.
func (p *parser) parseBlock() ([]ast.Stmt, token.Pos, token.Pos) {
	start := p.expect(token.LBRACE)
	var body []ast.Stmt
	for p.tok != token.RBRACE && p.tok != token.EOF {
		if s := p.parseStmtRecover(); s != nil {
			body = append(body, s)
		}
	}
	end := p.expect(token.RBRACE)
	return body, start, end
}

func (p *parser) parseScopeStmt() *ast.Scope {
	body, start, end := p.parseBlock()
	return &ast.Scope{Body: body, Start: start, End: end}
}

// parseIf parses `if expr scope (else if expr scope)* (else scope)?`.
func (p *parser) parseIf() *ast.If {
	start := p.expect(token.IF)
	cond := p.parseExpr(0)
	body, _, end := p.parseBlock()
	rest := p.parseIfRest()
	return &ast.If{Cond: cond, Body: body, Rest: rest, Start: start, End: end}
}

func (p *parser) parseIfRest() ast.IfRest {
	if p.tok != token.ELSE {
		return nil
	}
	elseStart := p.expect(token.ELSE)
	if p.tok == token.IF {
		p.advance()
		cond := p.parseExpr(0)
		body, _, end := p.parseBlock()
		rest := p.parseIfRest()
		return &ast.ElseIf{Cond: cond, Body: body, Rest: rest, Start: elseStart, End: end}
	}
	body, _, end := p.parseBlock()
	return &ast.Else{Body: body, Start: elseStart, End: end}
}

// parseFunctionDef parses `fn IDENT ( IDENT (, IDENT)* )? ) scope`.
func (p *parser) parseFunctionDef() *ast.FunctionDef {
	start := p.expect(token.FN)
	name := p.val.Raw
	p.expect(token.IDENT)
	p.expect(token.LPAREN)

	var params []string
	if p.tok != token.RPAREN {
		params = append(params, p.val.Raw)
		p.expect(token.IDENT)
		for p.tok == token.COMMA {
			p.advance()
			params = append(params, p.val.Raw)
			p.expect(token.IDENT)
		}
	}
	p.expect(token.RPAREN)

	body, _, end := p.parseBlock()
	return &ast.FunctionDef{Name: name, Params: params, Body: body, Start: start, End: end}
}
