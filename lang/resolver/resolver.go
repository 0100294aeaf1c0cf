// Package resolver implements the Dang scope resolver (`Vars`). It walks
// the AST once, before compilation, and assigns every name reference a
// Binding that says whether it occupies a local stack slot (relative to
// the enclosing frame) or lives in the VM's global table. The compiler
// consumes the Result and never has to reason about scoping itself.
package resolver

import (
	"fmt"

	"github.com/darrenclark/dang/lang/ast"
	"github.com/darrenclark/dang/lang/token"
)

// Result is the output of a resolve pass over one chunk of code (the
// top-level script, or one function body).
type Result struct {
	// Bindings maps each *ast.Let, *ast.Assign, *ast.Identifier,
	// *ast.FunctionCall (its callee name) and *ast.FunctionDef (the
	// definition of its own name) to its resolved Binding.
	Bindings map[ast.Node]Binding

	// Pops maps each *ast.Scope, *ast.If, *ast.ElseIf and *ast.Else to the
	// number of `pop` instructions its body's end_scope produced.
	Pops map[ast.Node]int
}

type scopeFrame struct {
	boundary int
	defined  map[string]bool
}

type resolver struct {
	kind   Kind
	vars   []string
	scopes []scopeFrame
	res    *Result
	err    func(pos token.Pos, msg string)
}

// Resolve resolves a top-level script body: the outermost scope defines
// globals.
func Resolve(body []ast.Stmt, errHandler func(token.Pos, string)) *Result {
	r := newResolver(Script, errHandler)
	r.block(body)
	return r.res
}

// ResolveFunction resolves a function body: params are bound as locals, in
// order, before the body is walked, and every scope (including the
// outermost) is local.
func ResolveFunction(params []string, paramPos token.Pos, body []ast.Stmt, errHandler func(token.Pos, string)) *Result {
	r := newResolver(Function, errHandler)
	for _, p := range params {
		r.define(paramPos, p)
	}
	r.block(body)
	return r.res
}

func newResolver(kind Kind, errHandler func(token.Pos, string)) *resolver {
	r := &resolver{
		kind: kind,
		res: &Result{
			Bindings: map[ast.Node]Binding{},
			Pops:     map[ast.Node]int{},
		},
		err: errHandler,
	}
	r.scopes = append(r.scopes, scopeFrame{defined: map[string]bool{}})
	return r
}

func (r *resolver) error(pos token.Pos, msg string) {
	if r.err != nil {
		r.err(pos, msg)
	}
}

// startScope pushes a new scope boundary at the current top of vars.
func (r *resolver) startScope() {
	r.scopes = append(r.scopes, scopeFrame{boundary: len(r.vars), defined: map[string]bool{}})
}

// endScope pops the innermost scope and returns the count of names defined
// since its matching startScope.
func (r *resolver) endScope() int {
	top := r.scopes[len(r.scopes)-1]
	r.scopes = r.scopes[:len(r.scopes)-1]
	n := len(r.vars) - top.boundary
	r.vars = r.vars[:top.boundary]
	return n
}

// define binds name in the current innermost scope. CompilerKind::script
// treats only the outermost scope (scope-stack size 1) as global; every
// other scope, and every scope in function mode, is local.
func (r *resolver) define(pos token.Pos, name string) Binding {
	top := &r.scopes[len(r.scopes)-1]
	if top.defined[name] {
		r.error(pos, fmt.Sprintf("%q already defined in this scope", name))
	}
	top.defined[name] = true

	if r.kind == Script && len(r.scopes) == 1 {
		return Binding{Scope: Global, Name: name}
	}
	idx := len(r.vars)
	r.vars = append(r.vars, name)
	return Binding{Scope: Local, Index: idx, Name: name}
}

// lookup walks vars from most recent to oldest; an unmatched name resolves
// to a Global reference by name.
func (r *resolver) lookup(name string) Binding {
	for i := len(r.vars) - 1; i >= 0; i-- {
		if r.vars[i] == name {
			return Binding{Scope: Local, Index: i, Name: name}
		}
	}
	return Binding{Scope: Global, Name: name}
}

func (r *resolver) block(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.stmt(s)
	}
}

func (r *resolver) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Return:
		r.expr(n.Expr)
	case *ast.Let:
		r.expr(n.Expr)
		r.res.Bindings[n] = r.define(n.Start, n.Name)
	case *ast.Assign:
		r.expr(n.Expr)
		b := r.lookup(n.Name)
		if r.kind == Function && b.Scope == Global {
			// Undefined-at-resolve-time global writes from inside a function
			// are allowed to reach the VM: set_global fails at run time if the
			// name was never defined, which is where this is ultimately caught.
			_ = b
		}
		r.res.Bindings[n] = b
	case *ast.Scope:
		r.startScope()
		r.block(n.Body)
		r.res.Pops[n] = r.endScope()
	case *ast.If:
		r.expr(n.Cond)
		r.startScope()
		r.block(n.Body)
		r.res.Pops[n] = r.endScope()
		r.ifRest(n.Rest)
	case *ast.FunctionDef:
		// The function's own body is resolved independently by
		// ResolveFunction when the compiler compiles it into its own chunk;
		// here we only bind the function's name in the enclosing scope.
		r.res.Bindings[n] = r.define(n.Start, n.Name)
	default:
		panic(fmt.Sprintf("resolver: unhandled statement %T", s))
	}
}

func (r *resolver) ifRest(rest ast.IfRest) {
	switch n := rest.(type) {
	case nil:
	case *ast.ElseIf:
		r.expr(n.Cond)
		r.startScope()
		r.block(n.Body)
		r.res.Pops[n] = r.endScope()
		r.ifRest(n.Rest)
	case *ast.Else:
		r.startScope()
		r.block(n.Body)
		r.res.Pops[n] = r.endScope()
	default:
		panic(fmt.Sprintf("resolver: unhandled if-rest %T", rest))
	}
}

func (r *resolver) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.BinExpr:
		r.expr(n.Lhs)
		r.expr(n.Rhs)
	case *ast.IntLit, *ast.DoubleLit, *ast.StringLit, *ast.BoolLit, *ast.NullLit:
		// no identifiers to resolve
	case *ast.Identifier:
		r.res.Bindings[n] = r.lookup(n.Name)
	case *ast.ParenExpr:
		r.expr(n.Inner)
	case *ast.FunctionCall:
		r.res.Bindings[n] = r.lookup(n.Name)
		for _, a := range n.Args {
			r.expr(a)
		}
	default:
		panic(fmt.Sprintf("resolver: unhandled expression %T", e))
	}
}
