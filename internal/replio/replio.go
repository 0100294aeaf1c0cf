// Package replio implements Dang's interactive read-eval-print loop.
package replio

import (
	"context"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/darrenclark/dang/internal/runctx"
	"github.com/darrenclark/dang/lang/machine"
)

var (
	errColor    = color.New(color.FgRed)
	valColor    = color.New(color.FgYellow)
	promptColor = color.New(color.FgCyan)
)

const banner = `dang -- a small scripting language
type '.exit' or press Ctrl+D to quit`

// Repl runs Dang source interactively, keeping one Thread (and therefore
// one global environment) alive across inputs.
type Repl struct {
	Prompt string
}

// Run prints the banner and drives the loop until the user exits or input
// is exhausted. Each successfully evaluated line prints its result value;
// parse, compile and runtime errors are printed and otherwise ignored so
// the session keeps going.
func (r *Repl) Run(ctx context.Context, stdout, stderr io.Writer) error {
	prompt := r.Prompt
	if prompt == "" {
		prompt = "dang> "
	}

	promptColor.Fprintln(stdout, banner)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	th := machine.NewThread()
	th.Stdout = stdout
	th.Stderr = stderr

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return nil
		}
		rl.SaveHistory(line)

		result, err := runctx.Source(ctx, th, []byte(line))
		if err != nil {
			errColor.Fprintf(stderr, "%s\n", err)
			continue
		}
		valColor.Fprintf(stdout, "%s\n", result.Value.String())
	}
}
