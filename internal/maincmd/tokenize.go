package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/darrenclark/dang/lang/scanner"
)

// Tokenize runs the scanner over each file and prints its tokens.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	for _, path := range args {
		toks, err := scanner.ScanFile(ctx, path)
		for _, tv := range toks {
			line, col := tv.Value.Pos.LineCol()
			fmt.Fprintf(stdio.Stdout, "%d:%d: %s", line, col, tv.Token)
			if lit := tv.Token.Literal(tv.Value); lit != "" {
				fmt.Fprintf(stdio.Stdout, " %s", lit)
			}
			fmt.Fprintln(stdio.Stdout)
		}
		if err != nil {
			return printError(stdio, err)
		}
	}
	return nil
}
