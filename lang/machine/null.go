package machine

// NullType is the type of Null. Its only legal value is Null; it is
// represented as a byte rather than struct{} so Null can be a constant.
type NullType byte

const Null = NullType(0)

var _ Value = Null

func (NullType) String() string { return "null" }
func (NullType) Type() string   { return "null" }
