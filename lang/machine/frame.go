package machine

// Frame records one active call: the Function being executed, its
// instruction pointer into Function.Chunk.Code, and the stack index its
// locals begin at.
type Frame struct {
	Function *Function
	IP       int
	FP       int
}
