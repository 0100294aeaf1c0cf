package maincmd

import (
	"context"

	"github.com/mna/mainer"

	"github.com/darrenclark/dang/lang/ast"
	"github.com/darrenclark/dang/lang/parser"
)

// Parse runs the parser over each file and prints the resulting AST.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	for _, path := range args {
		prog, err := parser.ParseFile(ctx, path)
		if err != nil {
			return printError(stdio, err)
		}
		ast.Fprint(stdio.Stdout, prog)
	}
	return nil
}
