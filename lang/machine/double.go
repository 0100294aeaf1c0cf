package machine

import "strconv"

// Double is the type of a floating-point value (float64).
type Double float64

var _ Value = Double(0)

func (d Double) String() string { return strconv.FormatFloat(float64(d), 'g', -1, 64) }
func (d Double) Type() string  { return "double" }
