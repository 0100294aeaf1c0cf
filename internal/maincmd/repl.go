package maincmd

import (
	"context"

	"github.com/mna/mainer"

	"github.com/darrenclark/dang/internal/replio"
)

// Repl starts the interactive read-eval-print loop. It is only reachable
// as the default when no command is given; it is not a selectable named
// command.
func (c *Cmd) Repl(ctx context.Context, stdio mainer.Stdio, args []string) error {
	r := replio.Repl{}
	return r.Run(ctx, stdio.Stdout, stdio.Stderr)
}
