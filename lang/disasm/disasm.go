// Package disasm prints a human-readable linear disassembly of a compiled
// Chunk, for diagnostics only: the VM never consults it.
package disasm

import (
	"fmt"
	"io"

	"github.com/darrenclark/dang/lang/machine"
)

const opColumnWidth = 14

// Disassemble writes chunk's instructions, one per line, to w. name is the
// label printed above the chunk (e.g. "script" or a function's name). Every
// constant whose value is a *machine.Function is recursively disassembled
// after the chunk's own instructions.
func Disassemble(w io.Writer, name string, chunk *machine.Chunk) error {
	fmt.Fprintf(w, "== %s ==\n", name)

	code := chunk.Code
	for offset := 0; offset < len(code); {
		op := machine.Opcode(code[offset])
		opStr := op.String()
		fmt.Fprint(w, opStr)
		for i := len(opStr); i < opColumnWidth; i++ {
			fmt.Fprint(w, " ")
		}
		offset++

		n := op.OperandCount()
		for i := 0; i < n; i++ {
			if offset >= len(code) {
				fmt.Fprintln(w, "[ERROR: end of code, expected operand]")
				return fmt.Errorf("disasm: %s: truncated operand for %s at offset %d", name, opStr, offset)
			}
			operand := code[offset]
			fmt.Fprintf(w, " %d", operand)
			if op == machine.LOAD_CONST && operand >= 0 && operand < len(chunk.Constants) {
				fmt.Fprintf(w, " (%s)", constantString(chunk.Constants[operand]))
			}
			offset++
		}
		fmt.Fprintln(w)
	}

	for _, c := range chunk.Constants {
		if fn, ok := c.(*machine.Function); ok {
			fmt.Fprintln(w)
			fnName := fn.Name
			if fnName == "" {
				fnName = "<anonymous>"
			}
			if err := Disassemble(w, fnName, fn.Chunk); err != nil {
				return err
			}
		}
	}
	return nil
}

func constantString(v machine.Value) string {
	if s, ok := v.(machine.String); ok {
		return s.Quote()
	}
	return v.String()
}
