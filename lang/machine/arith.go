package machine

import "fmt"

// ArithError reports an invalid combination of operand types to an
// arithmetic operator.
type ArithError struct {
	Op       string
	Lhs, Rhs string
}

func (e *ArithError) Error() string {
	return fmt.Sprintf("invalid operands to %s: %s and %s", e.Op, e.Lhs, e.Rhs)
}

func isNumeric(v Value) bool {
	switch v.(type) {
	case Int, Double:
		return true
	default:
		return false
	}
}

func asDouble(v Value) Double {
	switch x := v.(type) {
	case Int:
		return Double(x)
	case Double:
		return x
	default:
		panic("asDouble: not numeric")
	}
}

// Add implements lhs + rhs: int+int yields Int, any other numeric
// combination yields Double, string+string concatenates, anything else is
// an ArithError.
func Add(lhs, rhs Value) (Value, error) {
	if li, ok := lhs.(Int); ok {
		if ri, ok := rhs.(Int); ok {
			return li + ri, nil
		}
	}
	if isNumeric(lhs) && isNumeric(rhs) {
		return asDouble(lhs) + asDouble(rhs), nil
	}
	if ls, ok := lhs.(String); ok {
		if rs, ok := rhs.(String); ok {
			return ls + rs, nil
		}
	}
	return nil, &ArithError{Op: "+", Lhs: lhs.Type(), Rhs: rhs.Type()}
}

// Sub implements lhs - rhs.
func Sub(lhs, rhs Value) (Value, error) {
	if li, ok := lhs.(Int); ok {
		if ri, ok := rhs.(Int); ok {
			return li - ri, nil
		}
	}
	if isNumeric(lhs) && isNumeric(rhs) {
		return asDouble(lhs) - asDouble(rhs), nil
	}
	return nil, &ArithError{Op: "-", Lhs: lhs.Type(), Rhs: rhs.Type()}
}

// Mul implements lhs * rhs.
func Mul(lhs, rhs Value) (Value, error) {
	if li, ok := lhs.(Int); ok {
		if ri, ok := rhs.(Int); ok {
			return li * ri, nil
		}
	}
	if isNumeric(lhs) && isNumeric(rhs) {
		return asDouble(lhs) * asDouble(rhs), nil
	}
	return nil, &ArithError{Op: "*", Lhs: lhs.Type(), Rhs: rhs.Type()}
}

// Div implements lhs / rhs. Integer division truncates toward zero;
// division by zero between two Ints is a fatal error.
func Div(lhs, rhs Value) (Value, error) {
	if li, ok := lhs.(Int); ok {
		if ri, ok := rhs.(Int); ok {
			if ri == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			return li / ri, nil
		}
	}
	if isNumeric(lhs) && isNumeric(rhs) {
		return asDouble(lhs) / asDouble(rhs), nil
	}
	return nil, &ArithError{Op: "/", Lhs: lhs.Type(), Rhs: rhs.Type()}
}
