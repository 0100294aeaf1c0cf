// Package runctx wires the scan, parse, compile and execute phases
// together into the single call the CLI and REPL both need.
package runctx

import (
	"context"

	"github.com/darrenclark/dang/lang/compiler"
	"github.com/darrenclark/dang/lang/machine"
	"github.com/darrenclark/dang/lang/parser"
)

// Result holds the value returned from a run alongside the compiled
// function, so callers (the REPL in particular) can disassemble or inspect
// a program that ran successfully.
type Result struct {
	Script *machine.Function
	Value  machine.Value
}

// Source parses, compiles and runs src on th, so globals defined by an
// earlier run on the same Thread remain visible. The returned
// error is either a parser error (a scanner.ErrorList), a compiler error,
// or a *machine.RuntimeError.
func Source(ctx context.Context, th *machine.Thread, src []byte) (Result, error) {
	prog, err := parser.ParseSource(ctx, src)
	if err != nil {
		return Result{}, err
	}

	script, err := compiler.CompileProgram(prog)
	if err != nil {
		return Result{}, err
	}

	val, err := th.Run(ctx, script)
	return Result{Script: script, Value: val}, err
}

// File reads path (or stdin if path is "-") and runs it on th.
func File(ctx context.Context, th *machine.Thread, path string) (Result, error) {
	prog, err := parser.ParseFile(ctx, path)
	if err != nil {
		return Result{}, err
	}

	script, err := compiler.CompileProgram(prog)
	if err != nil {
		return Result{}, err
	}

	val, err := th.Run(ctx, script)
	return Result{Script: script, Value: val}, err
}
