package machine

import "github.com/dolthub/swiss"

// Globals is the VM's global environment: a name-to-value table whose
// lifetime ties to the owning VM instance, which is what lets a REPL
// persist state by reusing one VM across inputs.
type Globals struct {
	m *swiss.Map[string, Value]
}

// NewGlobals returns an empty global environment.
func NewGlobals() *Globals {
	return &Globals{m: swiss.NewMap[string, Value](32)}
}

func (g *Globals) Get(name string) (Value, bool) {
	return g.m.Get(name)
}

func (g *Globals) Define(name string, v Value) bool {
	if _, ok := g.m.Get(name); ok {
		return false
	}
	g.m.Put(name, v)
	return true
}

func (g *Globals) Set(name string, v Value) bool {
	if _, ok := g.m.Get(name); !ok {
		return false
	}
	g.m.Put(name, v)
	return true
}
