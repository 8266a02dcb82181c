//go:build !exacto_float

package ballistic

import "exacto/fraction"

// Scalar is the numeric backend used by the firmware.
//
// The default backend is the saturating int32 fraction, which needs no FPU.
// Build with the `exacto_float` tag to switch to Real.
type Scalar = fraction.Fraction

// ScalarFromInt returns n as a Scalar.
func ScalarFromInt(n int32) Scalar { return fraction.FromInt(n) }

// ScalarFromRatio returns num/den as a normalized Scalar.
func ScalarFromRatio(num, den int32) Scalar { return fraction.New(num, den).Normalized() }

// ScalarFloat converts s for host-side display. It must not be used on the
// device hot path.
func ScalarFloat(s Scalar) float64 {
	if s.Denominator == 0 {
		return 0
	}
	return float64(s.Numerator) / float64(s.Denominator)
}
