package mbf

import "math"

// bridgeSingle converts to host float64, applies fn, and converts back,
// translating host arithmetic exceptions (Inf/NaN) to ErrOverflow with a
// sign-preserving signed maximum.
func bridgeSingle(x Single, fn func(float64) float64) (Single, error) {
	r := fn(x.ToValue())
	if math.IsNaN(r) {
		return signedMaxSingle(x.IsNegative()), ErrOverflow
	}
	return SingleFromValue(r)
}

func bridgeSingle2(a, b Single, fn func(float64, float64) float64) (Single, error) {
	r := fn(a.ToValue(), b.ToValue())
	if math.IsNaN(r) {
		return signedMaxSingle(a.IsNegative()), ErrOverflow
	}
	return SingleFromValue(r)
}

func bridgeDouble(x Double, fn func(float64) float64) (Double, error) {
	r := fn(x.ToValue())
	if math.IsNaN(r) {
		return signedMaxDouble(x.IsNegative()), ErrOverflow
	}
	return DoubleFromValue(r)
}

func bridgeDouble2(a, b Double, fn func(float64, float64) float64) (Double, error) {
	r := fn(a.ToValue(), b.ToValue())
	if math.IsNaN(r) {
		return signedMaxDouble(a.IsNegative()), ErrOverflow
	}
	return DoubleFromValue(r)
}

func (a Single) Sqrt() (Single, error) { return bridgeSingle(a, math.Sqrt) }
func (a Single) Exp() (Single, error)  { return bridgeSingle(a, math.Exp) }
func (a Single) Sin() (Single, error)  { return bridgeSingle(a, math.Sin) }
func (a Single) Cos() (Single, error)  { return bridgeSingle(a, math.Cos) }
func (a Single) Tan() (Single, error)  { return bridgeSingle(a, math.Tan) }
func (a Single) Atan() (Single, error) { return bridgeSingle(a, math.Atan) }
func (a Single) Log() (Single, error)  { return bridgeSingle(a, math.Log) }

// Pow computes a**b via host IEEE math, used when neither operand forces
// integer square-and-multiply (see Single.PowInt) nor double-precision math.
func (a Single) Pow(b Single) (Single, error) { return bridgeSingle2(a, b, math.Pow) }

func (a Double) Sqrt() (Double, error) { return bridgeDouble(a, math.Sqrt) }
func (a Double) Exp() (Double, error)  { return bridgeDouble(a, math.Exp) }
func (a Double) Sin() (Double, error)  { return bridgeDouble(a, math.Sin) }
func (a Double) Cos() (Double, error)  { return bridgeDouble(a, math.Cos) }
func (a Double) Tan() (Double, error)  { return bridgeDouble(a, math.Tan) }
func (a Double) Atan() (Double, error) { return bridgeDouble(a, math.Atan) }
func (a Double) Log() (Double, error)  { return bridgeDouble(a, math.Log) }
func (a Double) Pow(b Double) (Double, error) { return bridgeDouble2(a, b, math.Pow) }
