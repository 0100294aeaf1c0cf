package compiler_test

import (
	"testing"

	"github.com/darrenclark/dang/lang/ast"
	"github.com/darrenclark/dang/lang/compiler"
	"github.com/darrenclark/dang/lang/machine"
	"github.com/stretchr/testify/require"
)

func TestCompileScenario10OpcodeSequence(t *testing.T) {
	// let x = 5; { let y = x; x = y * 2; } return x;
	prog := &ast.Program{Body: []ast.Stmt{
		&ast.Let{Name: "x", Expr: &ast.IntLit{Value: 5}},
		&ast.Scope{Body: []ast.Stmt{
			&ast.Let{Name: "y", Expr: &ast.Identifier{Name: "x"}},
			&ast.Assign{Name: "x", Expr: &ast.BinExpr{
				Lhs: &ast.Identifier{Name: "y"},
				Rhs: &ast.IntLit{Value: 2},
				Op:  ast.Mul,
			}},
		}},
		&ast.Return{Expr: &ast.Identifier{Name: "x"}},
	}}

	fn, err := compiler.CompileProgram(prog)
	require.NoError(t, err)

	wantOps := []machine.Opcode{
		machine.LOAD_CONST,
		machine.DEFINE_GLOBAL,
		machine.GET_GLOBAL,
		machine.GET_LOCAL,
		machine.LOAD_CONST,
		machine.MULTIPLY,
		machine.SET_GLOBAL,
		machine.POP,
		machine.GET_GLOBAL,
		machine.RETURN,
	}

	var gotOps []machine.Opcode
	code := fn.Chunk.Code
	for i := 0; i < len(code); {
		op := machine.Opcode(code[i])
		gotOps = append(gotOps, op)
		i += 1 + op.OperandCount()
	}
	require.Equal(t, wantOps, gotOps)

	// Indices 1, 2, 4, 5 (the four global-name operands) all reference
	// constant-pool copies of the name "x".
	for _, idx := range []int{1, 2, 4, 5} {
		require.Equal(t, machine.String("x"), fn.Chunk.Constants[idx])
	}
}

func TestCompileReturnLiteral(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{
		&ast.Return{Expr: &ast.IntLit{Value: 123}},
	}}
	fn, err := compiler.CompileProgram(prog)
	require.NoError(t, err)
	require.Equal(t, machine.Int(123), fn.Chunk.Constants[0])

	last := len(fn.Chunk.Code) - 1
	require.Equal(t, machine.RETURN, machine.Opcode(fn.Chunk.Code[last]))
}

func TestCompileFallsOffEndEmitsImplicitReturn(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{
		&ast.Let{Name: "x", Expr: &ast.IntLit{Value: 1}},
	}}
	fn, err := compiler.CompileProgram(prog)
	require.NoError(t, err)

	last := len(fn.Chunk.Code) - 1
	require.Equal(t, machine.RETURN, machine.Opcode(fn.Chunk.Code[last]))
}

func TestCompileIfElseIfElseChain(t *testing.T) {
	// if (false) { return 1; } else if (false) { return 2; } else { return 3; }
	prog := &ast.Program{Body: []ast.Stmt{
		&ast.If{
			Cond: &ast.BoolLit{Value: false},
			Body: []ast.Stmt{&ast.Return{Expr: &ast.IntLit{Value: 1}}},
			Rest: &ast.ElseIf{
				Cond: &ast.BoolLit{Value: false},
				Body: []ast.Stmt{&ast.Return{Expr: &ast.IntLit{Value: 2}}},
				Rest: &ast.Else{
					Body: []ast.Stmt{&ast.Return{Expr: &ast.IntLit{Value: 3}}},
				},
			},
		},
	}}

	fn, err := compiler.CompileProgram(prog)
	require.NoError(t, err)
	require.NotEmpty(t, fn.Chunk.Code)
}

func TestCompileFunctionDefAndCall(t *testing.T) {
	// fn double(n) { return n * 2; } return double(21);
	prog := &ast.Program{Body: []ast.Stmt{
		&ast.FunctionDef{
			Name:   "double",
			Params: []string{"n"},
			Body: []ast.Stmt{
				&ast.Return{Expr: &ast.BinExpr{
					Lhs: &ast.Identifier{Name: "n"},
					Rhs: &ast.IntLit{Value: 2},
					Op:  ast.Mul,
				}},
			},
		},
		&ast.Return{Expr: &ast.FunctionCall{
			Name: "double",
			Args: []ast.Expr{&ast.IntLit{Value: 21}},
		}},
	}}

	fn, err := compiler.CompileProgram(prog)
	require.NoError(t, err)

	var foundFn *machine.Function
	for _, c := range fn.Chunk.Constants {
		if f, ok := c.(*machine.Function); ok {
			foundFn = f
		}
	}
	require.NotNil(t, foundFn)
	require.Equal(t, "double", foundFn.Name)
	require.Equal(t, 1, foundFn.Arity)
}

func TestCompileDuplicateLocalInSameScopeErrors(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{
		&ast.Scope{Body: []ast.Stmt{
			&ast.Let{Name: "a", Expr: &ast.IntLit{Value: 1}},
			&ast.Let{Name: "a", Expr: &ast.IntLit{Value: 2}},
		}},
		&ast.Return{Expr: &ast.IntLit{Value: 0}},
	}}

	_, err := compiler.CompileProgram(prog)
	require.Error(t, err)
}
