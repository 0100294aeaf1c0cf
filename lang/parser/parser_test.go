package parser_test

import (
	"context"
	"testing"

	"github.com/darrenclark/dang/lang/ast"
	"github.com/darrenclark/dang/lang/parser"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseSource(context.Background(), []byte(src))
	require.NoError(t, err)
	return prog
}

func TestParseReturn(t *testing.T) {
	prog := parse(t, "return 123;")
	require.Len(t, prog.Body, 1)
	ret := prog.Body[0].(*ast.Return)
	lit := ret.Expr.(*ast.IntLit)
	require.Equal(t, int64(123), lit.Value)
}

func TestParsePrecedence(t *testing.T) {
	// 9 + (16 - 6) / 2 * 9
	prog := parse(t, "return 9 + (16 - 6) / 2 * 9;")
	ret := prog.Body[0].(*ast.Return)
	bin := ret.Expr.(*ast.BinExpr)
	require.Equal(t, ast.Add, bin.Op)
	require.IsType(t, &ast.IntLit{}, bin.Lhs)

	rhs := bin.Rhs.(*ast.BinExpr)
	require.Equal(t, ast.Mul, rhs.Op)
	div := rhs.Lhs.(*ast.BinExpr)
	require.Equal(t, ast.Div, div.Op)
	paren := div.Lhs.(*ast.ParenExpr)
	inner := paren.Inner.(*ast.BinExpr)
	require.Equal(t, ast.Sub, inner.Op)
}

func TestParseLetAndAssign(t *testing.T) {
	prog := parse(t, `let x = 5; x = x * x;`)
	require.Len(t, prog.Body, 2)
	let := prog.Body[0].(*ast.Let)
	require.Equal(t, "x", let.Name)
	assign := prog.Body[1].(*ast.Assign)
	require.Equal(t, "x", assign.Name)
}

func TestParseScope(t *testing.T) {
	prog := parse(t, `let x = 5; { x = x * x; }`)
	scope := prog.Body[1].(*ast.Scope)
	require.Len(t, scope.Body, 1)
}

func TestParseIfElseIfElse(t *testing.T) {
	prog := parse(t, `
		let x = 0;
		if 1 { x = 1; } else if 2 { x = 2; } else { x = 3; }
	`)
	ifStmt := prog.Body[1].(*ast.If)
	require.NotNil(t, ifStmt.Rest)
	elseIf, ok := ifStmt.Rest.(*ast.ElseIf)
	require.True(t, ok)
	_, ok = elseIf.Rest.(*ast.Else)
	require.True(t, ok)
}

func TestParseFunctionDefAndCall(t *testing.T) {
	prog := parse(t, `
		fn add(a, b) { return a + b; }
		return add(2, 3);
	`)
	fn := prog.Body[0].(*ast.FunctionDef)
	require.Equal(t, "add", fn.Name)
	require.Equal(t, []string{"a", "b"}, fn.Params)

	ret := prog.Body[1].(*ast.Return)
	call := ret.Expr.(*ast.FunctionCall)
	require.Equal(t, "add", call.Name)
	require.Len(t, call.Args, 2)
}

func TestParseLiterals(t *testing.T) {
	prog := parse(t, `return true;`)
	b := prog.Body[0].(*ast.Return).Expr.(*ast.BoolLit)
	require.True(t, b.Value)

	prog = parse(t, `return null;`)
	require.IsType(t, &ast.NullLit{}, prog.Body[0].(*ast.Return).Expr)

	prog = parse(t, `return "Hello, world";`)
	s := prog.Body[0].(*ast.Return).Expr.(*ast.StringLit)
	require.Equal(t, "Hello, world", s.Value)
}

func TestParseErrorMissingSemicolon(t *testing.T) {
	_, err := parser.ParseSource(context.Background(), []byte("return 1"))
	require.Error(t, err)
}

func TestParseErrorUnexpectedToken(t *testing.T) {
	_, err := parser.ParseSource(context.Background(), []byte("let = 1;"))
	require.Error(t, err)
}
