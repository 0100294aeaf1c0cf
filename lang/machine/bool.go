package machine

// Bool is the type of a boolean value, kept as its own Value tag (not
// int-backed) so that Bool and Int are never structurally equal.
type Bool bool

var _ Value = Bool(false)

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Type() string { return "bool" }
