// Package compiler takes a parsed and resolved AST and compiles it to the
// bytecode format defined by the machine package.
package compiler

import (
	"errors"
	"fmt"

	"github.com/darrenclark/dang/lang/ast"
	"github.com/darrenclark/dang/lang/machine"
	"github.com/darrenclark/dang/lang/resolver"
	"github.com/darrenclark/dang/lang/token"
)

// CompileProgram resolves and compiles a top-level script. The outermost
// scope of the program is script mode: names defined at depth 1 are
// globals.
func CompileProgram(prog *ast.Program) (*machine.Function, error) {
	var errs []error
	res := resolver.Resolve(prog.Body, resolveErrHandler(&errs))
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	c := &compiler{chunk: &machine.Chunk{}, res: res, errs: &errs}
	c.block(prog.Body)
	c.finish()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &machine.Function{Name: "script", Chunk: c.chunk}, nil
}

func resolveErrHandler(errs *[]error) func(token.Pos, string) {
	return func(pos token.Pos, msg string) {
		line, col := pos.LineCol()
		*errs = append(*errs, fmt.Errorf("%d:%d: %s", line, col, msg))
	}
}

// compileFunction compiles a nested FunctionDef's body into its own Chunk.
// Resolve errors discovered here (e.g. a duplicate parameter name) are
// appended to errs rather than returned directly, since a FunctionDef is
// compiled as a side effect of compiling the statement that defines it.
func compileFunction(name string, params []string, paramPos token.Pos, body []ast.Stmt, errs *[]error) *machine.Function {
	res := resolver.ResolveFunction(params, paramPos, body, resolveErrHandler(errs))

	c := &compiler{chunk: &machine.Chunk{}, res: res, errs: errs}
	c.block(body)
	c.finish()
	return &machine.Function{Name: name, Arity: len(params), Chunk: c.chunk}
}

// compiler holds the state needed to emit one Chunk: the resolver's
// bindings for this scope, and the running chunk being built. Nested
// FunctionDefs get their own compiler instance, one per Chunk.
type compiler struct {
	chunk *machine.Chunk
	res   *resolver.Result
	errs  *[]error
}

// finish appends a fallback `load_const null; return_` if the body's last
// instruction is not a return, or if a jump lands just past the end of the
// code, so execution never runs off the end of a Chunk.
func (c *compiler) finish() {
	code := c.chunk.Code
	endsWithReturn, jumpsToEnd := false, false
	for i := 0; i < len(code); i += 1 + machine.Opcode(code[i]).OperandCount() {
		op := machine.Opcode(code[i])
		endsWithReturn = op == machine.RETURN
		if op.IsJump() && i+2+code[i+1] == len(code) {
			jumpsToEnd = true
		}
	}
	if endsWithReturn && !jumpsToEnd {
		return
	}
	k := c.chunk.AddConstant(machine.Null)
	c.chunk.Emit(machine.LOAD_CONST, k)
	c.chunk.Emit(machine.RETURN)
}

func (c *compiler) block(stmts []ast.Stmt) {
	for _, s := range stmts {
		c.stmt(s)
	}
}

func (c *compiler) emitPops(n int) {
	for i := 0; i < n; i++ {
		c.chunk.Emit(machine.POP)
	}
}

func (c *compiler) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Return:
		c.expr(n.Expr)
		c.chunk.Emit(machine.RETURN)

	case *ast.Let:
		c.expr(n.Expr)
		b := c.res.Bindings[n]
		if b.Scope == resolver.Global {
			k := c.chunk.AddConstant(machine.String(b.Name))
			c.chunk.Emit(machine.DEFINE_GLOBAL, k)
		}
		// Local: the expression's value is already sitting on top of the
		// stack at exactly the slot this local occupies; nothing more to emit.

	case *ast.Assign:
		c.expr(n.Expr)
		b := c.res.Bindings[n]
		if b.Scope == resolver.Global {
			k := c.chunk.AddConstant(machine.String(b.Name))
			c.chunk.Emit(machine.SET_GLOBAL, k)
		} else {
			c.chunk.Emit(machine.SET_LOCAL, b.Index)
		}

	case *ast.Scope:
		c.block(n.Body)
		c.emitPops(c.res.Pops[n])

	case *ast.If:
		c.ifChain(n)

	case *ast.FunctionDef:
		fn := compileFunction(n.Name, n.Params, n.Start, n.Body, c.errs)
		k := c.chunk.AddConstant(fn)
		c.chunk.Emit(machine.LOAD_CONST, k)
		b := c.res.Bindings[n]
		if b.Scope == resolver.Global {
			nameK := c.chunk.AddConstant(machine.String(b.Name))
			c.chunk.Emit(machine.DEFINE_GLOBAL, nameK)
		}
		// Local: same as Let(local) — the function value itself becomes the slot.

	default:
		panic(fmt.Sprintf("compiler: unhandled statement %T", s))
	}
}

// ifChain compiles an If / ElseIf* / Else? chain. See the per-arm walk in
// ifRest: every conditional arm's jump_if_zero is patched to land at the
// start of the arm that follows it (or, for the last conditional arm with
// no else, to land past the whole chain alongside every other arm's
// end-of-body jump).
func (c *compiler) ifChain(n *ast.If) {
	var endJumps []int

	c.expr(n.Cond)
	jz := c.chunk.Emit(machine.JUMP_IF_ZERO, 0)
	c.block(n.Body)
	c.emitPops(c.res.Pops[n])
	c.ifRest(n.Rest, jz, &endJumps)

	end := len(c.chunk.Code)
	for _, ej := range endJumps {
		c.chunk.PatchOperand(ej, end-(ej+2))
	}
}

func (c *compiler) ifRest(rest ast.IfRest, prevJZ int, endJumps *[]int) {
	switch n := rest.(type) {
	case nil:
		*endJumps = append(*endJumps, prevJZ)

	case *ast.ElseIf:
		ej := c.chunk.Emit(machine.JUMP, 0)
		*endJumps = append(*endJumps, ej)
		c.chunk.PatchOperand(prevJZ, len(c.chunk.Code)-(prevJZ+2))

		c.expr(n.Cond)
		jz := c.chunk.Emit(machine.JUMP_IF_ZERO, 0)
		c.block(n.Body)
		c.emitPops(c.res.Pops[n])
		c.ifRest(n.Rest, jz, endJumps)

	case *ast.Else:
		ej := c.chunk.Emit(machine.JUMP, 0)
		*endJumps = append(*endJumps, ej)
		c.chunk.PatchOperand(prevJZ, len(c.chunk.Code)-(prevJZ+2))

		c.block(n.Body)
		c.emitPops(c.res.Pops[n])

	default:
		panic(fmt.Sprintf("compiler: unhandled if-rest %T", rest))
	}
}

func (c *compiler) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.IntLit:
		k := c.chunk.AddConstant(machine.Int(n.Value))
		c.chunk.Emit(machine.LOAD_CONST, k)

	case *ast.DoubleLit:
		k := c.chunk.AddConstant(machine.Double(n.Value))
		c.chunk.Emit(machine.LOAD_CONST, k)

	case *ast.StringLit:
		k := c.chunk.AddConstant(machine.String(n.Value))
		c.chunk.Emit(machine.LOAD_CONST, k)

	case *ast.BoolLit:
		k := c.chunk.AddConstant(machine.Bool(n.Value))
		c.chunk.Emit(machine.LOAD_CONST, k)

	case *ast.NullLit:
		k := c.chunk.AddConstant(machine.Null)
		c.chunk.Emit(machine.LOAD_CONST, k)

	case *ast.Identifier:
		c.emitLoad(c.res.Bindings[n])

	case *ast.ParenExpr:
		c.expr(n.Inner)

	case *ast.BinExpr:
		c.expr(n.Lhs)
		c.expr(n.Rhs)
		switch n.Op {
		case ast.Add:
			c.chunk.Emit(machine.ADD)
		case ast.Sub:
			c.chunk.Emit(machine.SUBTRACT)
		case ast.Mul:
			c.chunk.Emit(machine.MULTIPLY)
		case ast.Div:
			c.chunk.Emit(machine.DIVIDE)
		default:
			panic(fmt.Sprintf("compiler: unhandled binop %v", n.Op))
		}

	case *ast.FunctionCall:
		c.emitLoad(c.res.Bindings[n])
		for _, a := range n.Args {
			c.expr(a)
		}
		c.chunk.Emit(machine.CALL, len(n.Args))

	default:
		panic(fmt.Sprintf("compiler: unhandled expression %T", e))
	}
}

func (c *compiler) emitLoad(b resolver.Binding) {
	if b.Scope == resolver.Local {
		c.chunk.Emit(machine.GET_LOCAL, b.Index)
		return
	}
	k := c.chunk.AddConstant(machine.String(b.Name))
	c.chunk.Emit(machine.GET_GLOBAL, k)
}
