package machine

import "strconv"

// String is the type of a string value.
type String string

var _ Value = String("")

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }

// Quote returns s formatted as a Dang string literal, used by the
// disassembler when printing string constants.
func (s String) Quote() string { return strconv.Quote(string(s)) }
