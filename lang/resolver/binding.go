// Package resolver implements the Dang scope resolver (`Vars`): it walks
// the AST assigning each variable reference a Binding that says whether it
// is a local stack slot or a named global, so the compiler never has to
// reason about scoping itself.
package resolver

import "fmt"

// Scope indicates the residency of a Binding.
type Scope uint8

const (
	Undefined Scope = iota // name is not defined
	Local                  // name occupies a stack slot relative to the frame pointer
	Global                 // name lives in the VM's global table
)

var scopeNames = [...]string{
	Undefined: "undefined",
	Local:     "local",
	Global:    "global",
}

func (s Scope) String() string {
	if int(s) >= len(scopeNames) {
		return fmt.Sprintf("<invalid Scope %d>", s)
	}
	return scopeNames[s]
}

// Binding records how a name resolves: either a Local slot index (relative
// to the enclosing frame) or a Global name.
type Binding struct {
	Scope Scope
	Index int // slot index, meaningful only when Scope == Local
	Name  string
}

// Kind selects how the outermost scope is treated: in script mode, the
// outermost scope defines globals; in function mode, every scope --
// including the outermost, which holds the parameters -- defines locals.
type Kind uint8

const (
	Script Kind = iota
	Function
)
