// Package machine implements the Dang bytecode format (Opcode, Chunk), the
// Value model, and the stack-based dispatch loop that executes a Chunk.
package machine

// Value is the interface implemented by every Dang runtime value: Int,
// Double, String, Bool, *Function and Null.
type Value interface {
	// String returns a human-readable representation of the value.
	String() string

	// Type returns a short name for the value's dynamic type, used in
	// diagnostics such as "invalid operands" errors.
	Type() string
}

// Truthy reports whether v is considered true in a boolean context:
// nonzero Int, nonzero Double, non-empty String, any Function and true
// Bool are true; zero numbers, the empty String, false Bool and Null are
// false.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Int:
		return x != 0
	case Double:
		return x != 0
	case String:
		return x != ""
	case Bool:
		return bool(x)
	case *Function:
		return true
	case NullType:
		return false
	default:
		return false
	}
}

// Equal reports structural, type-strict equality: values of different
// dynamic types are never equal (Int(3) != Double(3.0)).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case Double:
		y, ok := b.(Double)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case NullType:
		_, ok := b.(NullType)
		return ok
	case *Function:
		y, ok := b.(*Function)
		return ok && x == y
	default:
		return false
	}
}
