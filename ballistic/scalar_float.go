//go:build exacto_float

package ballistic

// Scalar is the numeric backend used by the firmware.
//
// The float backend is selected with the `exacto_float` build tag and needs
// an FPU (or soft-float) on the target.
type Scalar = Real

// ScalarFromInt returns n as a Scalar.
func ScalarFromInt(n int32) Scalar { return Real(n) }

// ScalarFromRatio returns num/den as a Scalar.
func ScalarFromRatio(num, den int32) Scalar { return Real(num) / Real(den) }

// ScalarFloat converts s for host-side display.
func ScalarFloat(s Scalar) float64 { return float64(s) }
