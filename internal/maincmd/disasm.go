package maincmd

import (
	"context"

	"github.com/mna/mainer"

	"github.com/darrenclark/dang/lang/compiler"
	"github.com/darrenclark/dang/lang/disasm"
	"github.com/darrenclark/dang/lang/parser"
)

// Disasm parses and compiles each file and prints a linear disassembly of
// its bytecode.
func (c *Cmd) Disasm(ctx context.Context, stdio mainer.Stdio, args []string) error {
	for _, path := range args {
		prog, err := parser.ParseFile(ctx, path)
		if err != nil {
			return printError(stdio, err)
		}

		script, err := compiler.CompileProgram(prog)
		if err != nil {
			return printError(stdio, err)
		}

		if err := disasm.Disassemble(stdio.Stdout, path, script.Chunk); err != nil {
			return printError(stdio, err)
		}
	}
	return nil
}
