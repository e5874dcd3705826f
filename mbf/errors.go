package mbf

import "errors"

// ErrOverflow is returned (alongside the signed-maximum substitute value)
// when an arithmetic result exceeds the representable exponent range.
var ErrOverflow = errors.New("Overflow")

// ErrDivByZero is returned (alongside the signed-maximum substitute value)
// when a float division's divisor is zero.
var ErrDivByZero = errors.New("Division by Zero")
