package machine

import "fmt"

// Opcode identifies a single VM instruction. Every opcode is followed by a
// fixed number of int operands, given by OperandCount.
type Opcode int

const (
	LOAD_CONST Opcode = iota
	DEFINE_GLOBAL
	GET_GLOBAL
	SET_GLOBAL
	GET_LOCAL
	SET_LOCAL
	ADD
	SUBTRACT
	MULTIPLY
	DIVIDE
	POP
	JUMP
	JUMP_IF_ZERO
	CALL
	RETURN
	maxOpcode
)

var opcodeNames = [...]string{
	LOAD_CONST:    "load_const",
	DEFINE_GLOBAL: "define_global",
	GET_GLOBAL:    "get_global",
	SET_GLOBAL:    "set_global",
	GET_LOCAL:     "get_local",
	SET_LOCAL:     "set_local",
	ADD:           "add",
	SUBTRACT:      "subtract",
	MULTIPLY:      "multiply",
	DIVIDE:        "divide",
	POP:           "pop",
	JUMP:          "jump",
	JUMP_IF_ZERO:  "jump_if_zero",
	CALL:          "call",
	RETURN:        "return_",
}

func (op Opcode) String() string {
	if op < 0 || op >= maxOpcode {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return opcodeNames[op]
}

// OperandCount returns the number of int operands that follow op in a
// Chunk's Code.
func (op Opcode) OperandCount() int {
	switch op {
	case LOAD_CONST, DEFINE_GLOBAL, GET_GLOBAL, SET_GLOBAL, GET_LOCAL, SET_LOCAL,
		JUMP, JUMP_IF_ZERO, CALL:
		return 1
	case ADD, SUBTRACT, MULTIPLY, DIVIDE, POP, RETURN:
		return 0
	default:
		return 0
	}
}

// IsJump reports whether op's single operand is a relative jump offset
// rather than a constant/global/local index.
func (op Opcode) IsJump() bool {
	return op == JUMP || op == JUMP_IF_ZERO
}
