package machine

import "fmt"

// Function is a compiled, callable Dang function. Script-level code is
// itself represented as a Function with Arity 0, so the VM has a single
// entry-point shape for both top-level execution and calls.
type Function struct {
	Name  string
	Arity int
	Chunk *Chunk
}

var _ Value = (*Function)(nil)

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.Name) }
func (f *Function) Type() string   { return "function" }
