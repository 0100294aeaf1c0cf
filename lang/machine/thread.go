package machine

import (
	"context"
	"fmt"
	"io"
	"os"
)

// StackSize is the fixed capacity of a Thread's value stack, in slots.
const StackSize = 1024

// RuntimeError reports a failure detected while executing a Chunk: an
// invalid arithmetic operand pairing, stack overflow, an undefined global,
// or a wrong-arity call.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

// Thread is one instance of the virtual machine: a value stack, a frame
// stack, and a global environment. Each Thread owns independent globals,
// which is what lets a REPL reuse one Thread across inputs to retain
// state, while a fresh one-shot run gets a clean Thread.
type Thread struct {
	// Name optionally identifies the thread for diagnostics.
	Name string

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	// MaxSteps bounds the number of dispatch-loop iterations before the
	// thread is cancelled. A value <= 0 means no limit.
	MaxSteps int

	// MaxCallDepth bounds the number of nested frames. A value <= 0 means
	// no limit.
	MaxCallDepth int

	Globals *Globals

	stack []Value
	sp    int
	calls []Frame

	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader
}

// NewThread returns a ready-to-use Thread with a fresh global environment.
func NewThread() *Thread {
	return &Thread{Globals: NewGlobals()}
}

func (th *Thread) init() {
	if th.stack == nil {
		th.stack = make([]Value, StackSize)
	}
	if th.Globals == nil {
		th.Globals = NewGlobals()
	}
	if th.stdout == nil {
		if th.Stdout != nil {
			th.stdout = th.Stdout
		} else {
			th.stdout = os.Stdout
		}
	}
	if th.stderr == nil {
		if th.Stderr != nil {
			th.stderr = th.Stderr
		} else {
			th.stderr = os.Stderr
		}
	}
	if th.stdin == nil {
		if th.Stdin != nil {
			th.stdin = th.Stdin
		} else {
			th.stdin = os.Stdin
		}
	}
}

func (th *Thread) push(v Value) error {
	if th.sp >= len(th.stack) {
		return &RuntimeError{Msg: "stack overflow"}
	}
	th.stack[th.sp] = v
	th.sp++
	return nil
}

func (th *Thread) pop() Value {
	th.sp--
	return th.stack[th.sp]
}

// Run executes fn (typically the top-level script Function) to completion
// and returns the value of its return statement. Running past the end of a
// chunk without a RETURN is a RuntimeError; chunks built by the compiler
// end in an implicit `return null` wherever execution could reach the end.
func (th *Thread) Run(ctx context.Context, fn *Function) (Value, error) {
	th.init()

	done := make(chan struct{})
	cancelled := make(chan struct{}, 1)
	go func() {
		select {
		case <-ctx.Done():
			select {
			case cancelled <- struct{}{}:
			default:
			}
		case <-done:
		}
	}()
	defer close(done)

	fr := Frame{Function: fn, IP: 0, FP: th.sp}
	th.calls = append(th.calls, fr)

	var steps int
	for len(th.calls) > 0 {
		select {
		case <-cancelled:
			return nil, &RuntimeError{Msg: fmt.Sprintf("execution cancelled: %v", ctx.Err())}
		default:
		}

		if th.MaxSteps > 0 {
			steps++
			if steps > th.MaxSteps {
				return nil, &RuntimeError{Msg: "step limit exceeded"}
			}
		}

		frIdx := len(th.calls) - 1
		frame := &th.calls[frIdx]
		code := frame.Function.Chunk.Code

		if frame.IP >= len(code) {
			return nil, &RuntimeError{Msg: "fell off end of chunk without return"}
		}

		op := Opcode(code[frame.IP])
		frame.IP++

		var operand int
		if op.OperandCount() == 1 {
			operand = code[frame.IP]
			frame.IP++
		}

		switch op {
		case LOAD_CONST:
			if err := th.push(frame.Function.Chunk.Constants[operand]); err != nil {
				return nil, err
			}

		case DEFINE_GLOBAL:
			name := string(frame.Function.Chunk.Constants[operand].(String))
			v := th.pop()
			if !th.Globals.Define(name, v) {
				return nil, &RuntimeError{Msg: fmt.Sprintf("global %q already defined", name)}
			}

		case GET_GLOBAL:
			name := string(frame.Function.Chunk.Constants[operand].(String))
			v, ok := th.Globals.Get(name)
			if !ok {
				return nil, &RuntimeError{Msg: fmt.Sprintf("undefined global %q", name)}
			}
			if err := th.push(v); err != nil {
				return nil, err
			}

		case SET_GLOBAL:
			name := string(frame.Function.Chunk.Constants[operand].(String))
			v := th.pop()
			if !th.Globals.Set(name, v) {
				return nil, &RuntimeError{Msg: fmt.Sprintf("undefined global %q", name)}
			}

		case GET_LOCAL:
			if err := th.push(th.stack[frame.FP+operand]); err != nil {
				return nil, err
			}

		case SET_LOCAL:
			th.stack[frame.FP+operand] = th.pop()

		case ADD, SUBTRACT, MULTIPLY, DIVIDE:
			rhs := th.pop()
			lhs := th.pop()
			var (
				res Value
				err error
			)
			switch op {
			case ADD:
				res, err = Add(lhs, rhs)
			case SUBTRACT:
				res, err = Sub(lhs, rhs)
			case MULTIPLY:
				res, err = Mul(lhs, rhs)
			case DIVIDE:
				res, err = Div(lhs, rhs)
			}
			if err != nil {
				return nil, &RuntimeError{Msg: err.Error()}
			}
			if err := th.push(res); err != nil {
				return nil, err
			}

		case POP:
			th.pop()

		case JUMP:
			frame.IP += operand

		case JUMP_IF_ZERO:
			v := th.pop()
			if !Truthy(v) {
				frame.IP += operand
			}

		case CALL:
			arity := operand
			calleeIdx := th.sp - arity - 1
			callee, ok := th.stack[calleeIdx].(*Function)
			if !ok {
				return nil, &RuntimeError{Msg: fmt.Sprintf("cannot call value of type %s", th.stack[calleeIdx].Type())}
			}
			if callee.Arity != arity {
				return nil, &RuntimeError{Msg: fmt.Sprintf("function %s expects %d argument(s), got %d", callee.Name, callee.Arity, arity)}
			}
			if th.MaxCallDepth > 0 && len(th.calls) >= th.MaxCallDepth {
				return nil, &RuntimeError{Msg: "call stack depth exceeded"}
			}
			newFP := calleeIdx + 1
			th.calls = append(th.calls, Frame{Function: callee, IP: 0, FP: newFP})

		case RETURN:
			retVal := th.pop()
			if frIdx == 0 {
				th.calls = th.calls[:0]
				return retVal, nil
			}
			// The callee itself sits at fp-1, one slot below where its
			// arguments begin; dropping sp there too (rather than to fp)
			// removes the callee along with its args and locals instead of
			// leaking the callee slot on every call.
			th.sp = th.calls[frIdx].FP - 1
			th.calls = th.calls[:frIdx]
			if err := th.push(retVal); err != nil {
				return nil, err
			}

		default:
			return nil, &RuntimeError{Msg: fmt.Sprintf("unknown opcode %d", op)}
		}
	}

	return Null, nil
}
