package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/darrenclark/dang/internal/runctx"
	"github.com/darrenclark/dang/lang/machine"
)

// Run compiles and executes each file in turn, on a fresh Thread per file.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	for _, path := range args {
		th := machine.NewThread()
		th.Stdout = stdio.Stdout
		th.Stderr = stdio.Stderr
		th.Stdin = stdio.Stdin

		result, err := runctx.File(ctx, th, path)
		if err != nil {
			return printError(stdio, err)
		}
		if _, isNull := result.Value.(machine.NullType); !isNull {
			fmt.Fprintln(stdio.Stdout, result.Value.String())
		}
	}
	return nil
}
